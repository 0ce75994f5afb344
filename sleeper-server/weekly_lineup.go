package main

import (
	"context"

	"sleeper-mcp/internal/lineup"
	"sleeper-mcp/internal/sleeper"
)

func buildWeeklyLineup(ctx context.Context, api *sleeper.Client, username string) (*lineup.WeeklyLineups, error) {
	return lineup.ForAllLeagues(ctx, api, username)
}
