package sleeper

import (
	"context"
	"fmt"
	"net/url"
)

// GetUserByUsername fetches /user/{username}. Returns nil (no error)
// when the user does not exist; Sleeper answers unknown usernames with
// either a 404 or a literal null body, and both collapse to nil here.
func (c *Client) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	var u User
	found, err := c.getJSON(ctx, "user", "/user/"+url.PathEscape(username), &u)
	if err != nil || !found || u.UserID == "" {
		return nil, err
	}
	return &u, nil
}

// GetUserLeagues fetches /user/{user_id}/leagues/nfl/{season}.
func (c *Client) GetUserLeagues(ctx context.Context, userID, season string) ([]League, error) {
	var leagues []League
	path := fmt.Sprintf("/user/%s/leagues/nfl/%s", url.PathEscape(userID), url.PathEscape(season))
	if _, err := c.getJSON(ctx, "user_leagues", path, &leagues); err != nil {
		return nil, err
	}
	return leagues, nil
}

// GetLeagueRosters fetches /league/{league_id}/rosters.
func (c *Client) GetLeagueRosters(ctx context.Context, leagueID string) ([]Roster, error) {
	var rosters []Roster
	path := fmt.Sprintf("/league/%s/rosters", url.PathEscape(leagueID))
	if _, err := c.getJSON(ctx, "league_rosters", path, &rosters); err != nil {
		return nil, err
	}
	return rosters, nil
}

// GetLeagueUsers fetches /league/{league_id}/users.
func (c *Client) GetLeagueUsers(ctx context.Context, leagueID string) ([]User, error) {
	var users []User
	path := fmt.Sprintf("/league/%s/users", url.PathEscape(leagueID))
	if _, err := c.getJSON(ctx, "league_users", path, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetLeagueMatchups fetches /league/{league_id}/matchups/{week}.
func (c *Client) GetLeagueMatchups(ctx context.Context, leagueID string, week int) ([]Matchup, error) {
	var matchups []Matchup
	path := fmt.Sprintf("/league/%s/matchups/%d", url.PathEscape(leagueID), week)
	if _, err := c.getJSON(ctx, "league_matchups", path, &matchups); err != nil {
		return nil, err
	}
	return matchups, nil
}

// GetNFLState fetches /state/nfl.
func (c *Client) GetNFLState(ctx context.Context) (*NFLState, error) {
	var state NFLState
	found, err := c.getJSON(ctx, "nfl_state", "/state/nfl", &state)
	if err != nil || !found {
		return nil, err
	}
	return &state, nil
}

// GetAllPlayers fetches the full /players/nfl catalog keyed by player
// id. The payload is large (~5MB); callers fetch it at most once per
// tool invocation and never persist it.
func (c *Client) GetAllPlayers(ctx context.Context) (map[string]Player, error) {
	var players map[string]Player
	if _, err := c.getJSON(ctx, "players", "/players/nfl", &players); err != nil {
		return nil, err
	}
	return players, nil
}
