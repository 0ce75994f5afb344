package main

import (
	"context"

	"sleeper-mcp/internal/lineup"
	"sleeper-mcp/internal/sleeper"
)

func buildUserLineup(ctx context.Context, api *sleeper.Client, username, leagueID string) (*lineup.LeagueLineup, error) {
	return lineup.ForUser(ctx, api, username, leagueID)
}
