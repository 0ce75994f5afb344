package sleeper

// User is a Sleeper account as returned by /user/{username} and
// /league/{league_id}/users.
type User struct {
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Avatar      string `json:"avatar"`
}

// League is one entry from /user/{user_id}/leagues/nfl/{season}.
type League struct {
	LeagueID        string             `json:"league_id"`
	Name            string             `json:"name"`
	Season          string             `json:"season"`
	Status          string             `json:"status"`
	TotalRosters    int                `json:"total_rosters"`
	RosterPositions []string           `json:"roster_positions"`
	ScoringSettings map[string]float64 `json:"scoring_settings"`
}

// Roster is one entry from /league/{league_id}/rosters. Starters is
// ordered by slot; Players is every player id the roster owns,
// including the starters. Sleeper fills empty starting slots with "0".
type Roster struct {
	RosterID int      `json:"roster_id"`
	LeagueID string   `json:"league_id"`
	OwnerID  string   `json:"owner_id"`
	Players  []string `json:"players"`
	Starters []string `json:"starters"`
	Reserve  []string `json:"reserve"`
	Taxi     []string `json:"taxi"`
}

// Matchup is one side of a weekly pairing from
// /league/{league_id}/matchups/{week}. The two rosters facing each
// other share a MatchupID; it is 0 on a bye week.
type Matchup struct {
	RosterID  int      `json:"roster_id"`
	MatchupID int      `json:"matchup_id"`
	Points    float64  `json:"points"`
	Starters  []string `json:"starters"`
	Players   []string `json:"players"`
}

// Player is one entry of the /players/nfl catalog, keyed by player id.
// Team defenses carry no FullName; their city/nickname arrive in
// FirstName/LastName instead.
type Player struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	FullName  string `json:"full_name"`
	Position  string `json:"position"`
	Team      string `json:"team"`
	Status    string `json:"status"`
}

// NFLState is the /state/nfl response.
type NFLState struct {
	Week           int    `json:"week"`
	DisplayWeek    int    `json:"display_week"`
	Season         string `json:"season"`
	PreviousSeason string `json:"previous_season"`
	SeasonType     string `json:"season_type"`
	Leg            int    `json:"leg"`
}
