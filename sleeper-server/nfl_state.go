package main

import (
	"context"
	"fmt"

	"sleeper-mcp/internal/lineup"
	"sleeper-mcp/internal/sleeper"
)

// NFLStateResult is the output of the get_nfl_state tool. Fields are
// passed through from upstream unmodified.
type NFLStateResult struct {
	Season      string `json:"season"`
	Week        int    `json:"week"`
	SeasonType  string `json:"season_type"`
	DisplayWeek int    `json:"display_week"`
	Leg         int    `json:"leg"`
}

func buildNFLState(ctx context.Context, api *sleeper.Client) (*NFLStateResult, error) {
	state, err := api.GetNFLState(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch nfl state: %w", err)
	}
	if state == nil {
		return nil, lineup.ErrNoState
	}
	return &NFLStateResult{
		Season:      state.Season,
		Week:        state.Week,
		SeasonType:  state.SeasonType,
		DisplayWeek: state.DisplayWeek,
		Leg:         state.Leg,
	}, nil
}
