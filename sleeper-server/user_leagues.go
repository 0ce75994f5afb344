package main

import (
	"context"
	"fmt"

	"sleeper-mcp/internal/lineup"
	"sleeper-mcp/internal/sleeper"
)

// LeagueSettings is the roster/scoring subset surfaced per league.
type LeagueSettings struct {
	TotalRosters    int                `json:"total_rosters"`
	RosterPositions []string           `json:"roster_positions"`
	ScoringSettings map[string]float64 `json:"scoring_settings"`
}

// LeagueInfo is one entry in the get_user_leagues output.
type LeagueInfo struct {
	LeagueID string         `json:"league_id"`
	Name     string         `json:"name"`
	Season   string         `json:"season"`
	Status   string         `json:"status"`
	Settings LeagueSettings `json:"settings"`
}

// buildUserLeagues lists a user's leagues for the given season. An
// empty season defaults to the current one from NFL state. A user
// with no leagues yields an empty (not nil) slice.
func buildUserLeagues(ctx context.Context, api *sleeper.Client, username, season string) ([]LeagueInfo, error) {
	if season == "" {
		state, err := api.GetNFLState(ctx)
		if err != nil {
			return nil, fmt.Errorf("fetch nfl state: %w", err)
		}
		if state == nil {
			return nil, lineup.ErrNoState
		}
		season = state.Season
	}

	user, err := api.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("fetch user %s: %w", username, err)
	}
	if user == nil {
		return nil, fmt.Errorf("%q: %w", username, lineup.ErrUserNotFound)
	}

	leagues, err := api.GetUserLeagues(ctx, user.UserID, season)
	if err != nil {
		return nil, fmt.Errorf("fetch leagues for %s/%s: %w", username, season, err)
	}
	out := make([]LeagueInfo, 0, len(leagues))
	for _, l := range leagues {
		out = append(out, LeagueInfo{
			LeagueID: l.LeagueID,
			Name:     l.Name,
			Season:   l.Season,
			Status:   l.Status,
			Settings: LeagueSettings{
				TotalRosters:    l.TotalRosters,
				RosterPositions: l.RosterPositions,
				ScoringSettings: l.ScoringSettings,
			},
		})
	}
	return out, nil
}
