package main

import (
	"context"
	"fmt"

	"sleeper-mcp/internal/lineup"
	"sleeper-mcp/internal/sleeper"
)

// UserInfoResult is the output of the get_user_info tool.
type UserInfoResult struct {
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Avatar      string `json:"avatar,omitempty"`
}

func buildUserInfo(ctx context.Context, api *sleeper.Client, username string) (*UserInfoResult, error) {
	user, err := api.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("fetch user %s: %w", username, err)
	}
	if user == nil {
		return nil, fmt.Errorf("%q: %w", username, lineup.ErrUserNotFound)
	}
	return &UserInfoResult{
		UserID:      user.UserID,
		Username:    user.Username,
		DisplayName: user.DisplayName,
		Avatar:      user.Avatar,
	}, nil
}
