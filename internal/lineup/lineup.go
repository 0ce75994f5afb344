// Package lineup assembles weekly fantasy lineups by composing
// Sleeper API lookups: it cross-references a user's roster with the
// week's matchups and resolves player ids against the player catalog.
package lineup

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"sleeper-mcp/internal/sleeper"
)

// API is the subset of the Sleeper client the assembler needs.
type API interface {
	GetUserByUsername(ctx context.Context, username string) (*sleeper.User, error)
	GetUserLeagues(ctx context.Context, userID, season string) ([]sleeper.League, error)
	GetLeagueRosters(ctx context.Context, leagueID string) ([]sleeper.Roster, error)
	GetLeagueUsers(ctx context.Context, leagueID string) ([]sleeper.User, error)
	GetLeagueMatchups(ctx context.Context, leagueID string, week int) ([]sleeper.Matchup, error)
	GetNFLState(ctx context.Context) (*sleeper.NFLState, error)
	GetAllPlayers(ctx context.Context) (map[string]sleeper.Player, error)
}

var (
	// ErrUserNotFound reports an unknown Sleeper username.
	ErrUserNotFound = errors.New("user not found")
	// ErrNoRoster reports that the user owns no roster in the league.
	ErrNoRoster = errors.New("no roster for user in league")
	// ErrNoState reports that the NFL state endpoint returned nothing,
	// so the current week cannot be determined.
	ErrNoState = errors.New("nfl state unavailable")
)

// PlayerSlot is a roster slot resolved against the player catalog.
type PlayerSlot struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
	Position string `json:"position,omitempty"`
	Team     string `json:"team,omitempty"`
}

// Opponent identifies the roster on the other side of the matchup.
type Opponent struct {
	RosterID    int     `json:"roster_id"`
	Username    string  `json:"username"`
	DisplayName string  `json:"display_name"`
	Points      float64 `json:"points"`
}

// LeagueLineup is one league's current-week lineup for a user.
// Opponent is nil on a bye week or before matchups are published.
type LeagueLineup struct {
	LeagueID   string       `json:"league_id"`
	LeagueName string       `json:"league_name,omitempty"`
	Season     string       `json:"season"`
	Week       int          `json:"week"`
	RosterID   int          `json:"roster_id"`
	Points     float64      `json:"points"`
	Starters   []PlayerSlot `json:"starters"`
	Bench      []PlayerSlot `json:"bench"`
	Opponent   *Opponent    `json:"opponent,omitempty"`
}

// WeeklyLineups collects a user's lineup in every league where they
// hold a roster this season.
type WeeklyLineups struct {
	Username    string         `json:"username"`
	DisplayName string         `json:"display_name"`
	Season      string         `json:"season"`
	Week        int            `json:"week"`
	Leagues     []LeagueLineup `json:"leagues"`
}

// ForUser assembles the current-week lineup for one league. The
// league name is filled in from the user's season league list when
// the league appears there.
func ForUser(ctx context.Context, api API, username, leagueID string) (*LeagueLineup, error) {
	state, err := api.GetNFLState(ctx)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, ErrNoState
	}
	user, err := api.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%q: %w", username, ErrUserNotFound)
	}

	league := sleeper.League{LeagueID: leagueID}
	leagues, err := api.GetUserLeagues(ctx, user.UserID, state.Season)
	if err != nil {
		return nil, err
	}
	for _, l := range leagues {
		if l.LeagueID == leagueID {
			league = l
			break
		}
	}

	players, err := api.GetAllPlayers(ctx)
	if err != nil {
		return nil, err
	}
	return ForLeague(ctx, api, user, state, players, league)
}

// ForAllLeagues assembles the user's lineup across every league of
// the current season. The NFL state, user, league list, and player
// catalog are fetched once and shared. Leagues where the user has no
// roster are skipped rather than failing the call.
func ForAllLeagues(ctx context.Context, api API, username string) (*WeeklyLineups, error) {
	state, err := api.GetNFLState(ctx)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, ErrNoState
	}
	user, err := api.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%q: %w", username, ErrUserNotFound)
	}
	leagues, err := api.GetUserLeagues(ctx, user.UserID, state.Season)
	if err != nil {
		return nil, err
	}

	out := &WeeklyLineups{
		Username:    user.Username,
		DisplayName: displayName(user),
		Season:      state.Season,
		Week:        state.Week,
		Leagues:     []LeagueLineup{},
	}
	if len(leagues) == 0 {
		return out, nil
	}

	players, err := api.GetAllPlayers(ctx)
	if err != nil {
		return nil, err
	}
	for _, league := range leagues {
		ll, err := ForLeague(ctx, api, user, state, players, league)
		if errors.Is(err, ErrNoRoster) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out.Leagues = append(out.Leagues, *ll)
	}
	return out, nil
}

// ForLeague builds one league's lineup from prefetched user, state,
// and player catalog.
func ForLeague(ctx context.Context, api API, user *sleeper.User, state *sleeper.NFLState, players map[string]sleeper.Player, league sleeper.League) (*LeagueLineup, error) {
	rosters, err := api.GetLeagueRosters(ctx, league.LeagueID)
	if err != nil {
		return nil, err
	}
	var mine *sleeper.Roster
	for i := range rosters {
		if rosters[i].OwnerID == user.UserID {
			mine = &rosters[i]
			break
		}
	}
	if mine == nil {
		return nil, fmt.Errorf("league %s: %w", league.LeagueID, ErrNoRoster)
	}

	out := &LeagueLineup{
		LeagueID:   league.LeagueID,
		LeagueName: league.Name,
		Season:     state.Season,
		Week:       state.Week,
		RosterID:   mine.RosterID,
		Starters:   []PlayerSlot{},
		Bench:      []PlayerSlot{},
	}

	matchups, err := api.GetLeagueMatchups(ctx, league.LeagueID, state.Week)
	if err != nil {
		return nil, err
	}
	var ours, theirs *sleeper.Matchup
	for i := range matchups {
		if matchups[i].RosterID == mine.RosterID {
			ours = &matchups[i]
			break
		}
	}
	if ours != nil {
		out.Points = ours.Points
		if ours.MatchupID != 0 {
			for i := range matchups {
				if matchups[i].MatchupID == ours.MatchupID && matchups[i].RosterID != mine.RosterID {
					theirs = &matchups[i]
					break
				}
			}
		}
	}
	if theirs != nil {
		opp := &Opponent{
			RosterID:    theirs.RosterID,
			Username:    "Unknown",
			DisplayName: "Unknown",
			Points:      theirs.Points,
		}
		users, err := api.GetLeagueUsers(ctx, league.LeagueID)
		if err != nil {
			return nil, err
		}
		for i := range rosters {
			if rosters[i].RosterID != theirs.RosterID {
				continue
			}
			for j := range users {
				if users[j].UserID == rosters[i].OwnerID {
					opp.Username = users[j].Username
					opp.DisplayName = displayName(&users[j])
				}
			}
			break
		}
		out.Opponent = opp
	}

	started := make(map[string]bool, len(mine.Starters))
	for _, id := range mine.Starters {
		if emptySlot(id) {
			continue
		}
		started[id] = true
		out.Starters = append(out.Starters, resolvePlayer(players, id))
	}
	for _, id := range mine.Players {
		if emptySlot(id) || started[id] {
			continue
		}
		out.Bench = append(out.Bench, resolvePlayer(players, id))
	}
	return out, nil
}

// resolvePlayer maps a player id to name/position/team. Ids missing
// from the catalog get a placeholder name instead of failing the
// whole assembly.
func resolvePlayer(players map[string]sleeper.Player, id string) PlayerSlot {
	p, ok := players[id]
	if !ok {
		return PlayerSlot{PlayerID: id, Name: "Unknown (" + id + ")"}
	}
	name := p.FullName
	if name == "" {
		// Team defenses only carry first/last (city/nickname).
		name = strings.TrimSpace(p.FirstName + " " + p.LastName)
	}
	return PlayerSlot{PlayerID: id, Name: name, Position: p.Position, Team: p.Team}
}

func displayName(u *sleeper.User) string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Username
}

// Sleeper fills vacant starting slots with "0".
func emptySlot(id string) bool {
	return id == "" || id == "0"
}
