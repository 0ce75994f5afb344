package lineup

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sleeper-mcp/internal/sleeper"
)

// fakeAPI is an in-memory API with per-endpoint call counters.
type fakeAPI struct {
	user     *sleeper.User
	state    *sleeper.NFLState
	leagues  []sleeper.League
	rosters  map[string][]sleeper.Roster
	users    map[string][]sleeper.User
	matchups map[string][]sleeper.Matchup
	players  map[string]sleeper.Player

	playerCalls int
	stateCalls  int
	userCalls   int
}

func (f *fakeAPI) GetUserByUsername(ctx context.Context, username string) (*sleeper.User, error) {
	f.userCalls++
	if f.user != nil && f.user.Username == username {
		return f.user, nil
	}
	return nil, nil
}

func (f *fakeAPI) GetUserLeagues(ctx context.Context, userID, season string) ([]sleeper.League, error) {
	return f.leagues, nil
}

func (f *fakeAPI) GetLeagueRosters(ctx context.Context, leagueID string) ([]sleeper.Roster, error) {
	return f.rosters[leagueID], nil
}

func (f *fakeAPI) GetLeagueUsers(ctx context.Context, leagueID string) ([]sleeper.User, error) {
	return f.users[leagueID], nil
}

func (f *fakeAPI) GetLeagueMatchups(ctx context.Context, leagueID string, week int) ([]sleeper.Matchup, error) {
	return f.matchups[leagueID], nil
}

func (f *fakeAPI) GetNFLState(ctx context.Context) (*sleeper.NFLState, error) {
	f.stateCalls++
	return f.state, nil
}

func (f *fakeAPI) GetAllPlayers(ctx context.Context) (map[string]sleeper.Player, error) {
	f.playerCalls++
	return f.players, nil
}

// newFakeAPI builds a league L1 where alice (roster 1) faces bob
// (roster 2) in week 7 via matchup id 3.
func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		user:  &sleeper.User{UserID: "U1", Username: "alice", DisplayName: "Alice"},
		state: &sleeper.NFLState{Week: 7, Season: "2025", SeasonType: "regular"},
		leagues: []sleeper.League{
			{LeagueID: "L1", Name: "Main Street League", Season: "2025"},
		},
		rosters: map[string][]sleeper.Roster{
			"L1": {
				{RosterID: 1, OwnerID: "U1", Starters: []string{"p1", "p2"}, Players: []string{"p1", "p2", "p3", "p4"}},
				{RosterID: 2, OwnerID: "U2", Starters: []string{"p5"}, Players: []string{"p5"}},
			},
		},
		users: map[string][]sleeper.User{
			"L1": {
				{UserID: "U1", Username: "alice", DisplayName: "Alice"},
				{UserID: "U2", Username: "bob", DisplayName: "Bob the GM"},
			},
		},
		matchups: map[string][]sleeper.Matchup{
			"L1": {
				{RosterID: 1, MatchupID: 3, Points: 101.5},
				{RosterID: 2, MatchupID: 3, Points: 98.2},
			},
		},
		players: map[string]sleeper.Player{
			"p1": {FullName: "Christian McCaffrey", Position: "RB", Team: "SF"},
			"p2": {FullName: "Justin Jefferson", Position: "WR", Team: "MIN"},
			"p3": {FullName: "Jake Browning", Position: "QB", Team: "CIN"},
			"p4": {FirstName: "San Francisco", LastName: "49ers", Position: "DEF", Team: "SF"},
			"p5": {FullName: "Josh Allen", Position: "QB", Team: "BUF"},
		},
	}
}

func TestForUser(t *testing.T) {
	t.Run("AssemblesLineup", func(t *testing.T) {
		api := newFakeAPI()
		ll, err := ForUser(context.Background(), api, "alice", "L1")
		require.NoError(t, err)

		assert.Equal(t, "Main Street League", ll.LeagueName)
		assert.Equal(t, 7, ll.Week)
		assert.Equal(t, "2025", ll.Season)
		assert.Equal(t, 1, ll.RosterID)
		assert.Equal(t, 101.5, ll.Points)

		require.Len(t, ll.Starters, 2)
		assert.Equal(t, "Christian McCaffrey", ll.Starters[0].Name)
		assert.Equal(t, "Justin Jefferson", ll.Starters[1].Name)

		// Bench is owned players minus starters, in roster order.
		require.Len(t, ll.Bench, 2)
		assert.Equal(t, "Jake Browning", ll.Bench[0].Name)
		assert.Equal(t, "San Francisco 49ers", ll.Bench[1].Name)

		require.NotNil(t, ll.Opponent)
		assert.Equal(t, 2, ll.Opponent.RosterID)
		assert.Equal(t, "Bob the GM", ll.Opponent.DisplayName)
		assert.Equal(t, 98.2, ll.Opponent.Points)
	})

	t.Run("UnknownUser", func(t *testing.T) {
		api := newFakeAPI()
		_, err := ForUser(context.Background(), api, "mallory", "L1")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("NoRosterInLeague", func(t *testing.T) {
		api := newFakeAPI()
		api.rosters["L1"] = []sleeper.Roster{
			{RosterID: 2, OwnerID: "U2", Starters: []string{"p5"}, Players: []string{"p5"}},
		}
		_, err := ForUser(context.Background(), api, "alice", "L1")
		assert.ErrorIs(t, err, ErrNoRoster)
	})

	t.Run("LeagueNotInSeasonList", func(t *testing.T) {
		// Rosters exist but the league is absent from the user's
		// season leagues; the lineup still assembles, name unknown.
		api := newFakeAPI()
		api.leagues = nil
		ll, err := ForUser(context.Background(), api, "alice", "L1")
		require.NoError(t, err)
		assert.Empty(t, ll.LeagueName)
		assert.Len(t, ll.Starters, 2)
	})
}

func TestForLeague(t *testing.T) {
	t.Run("UnknownPlayerGetsPlaceholder", func(t *testing.T) {
		api := newFakeAPI()
		delete(api.players, "p2")
		ll, err := ForLeague(context.Background(), api, api.user, api.state, api.players, api.leagues[0])
		require.NoError(t, err)
		require.Len(t, ll.Starters, 2)
		assert.Equal(t, "Unknown (p2)", ll.Starters[1].Name)
		assert.Empty(t, ll.Starters[1].Position)
	})

	t.Run("EmptyStartingSlotSkipped", func(t *testing.T) {
		api := newFakeAPI()
		api.rosters["L1"][0].Starters = []string{"p1", "0"}
		ll, err := ForLeague(context.Background(), api, api.user, api.state, api.players, api.leagues[0])
		require.NoError(t, err)
		require.Len(t, ll.Starters, 1)
		assert.Equal(t, "p1", ll.Starters[0].PlayerID)
	})

	t.Run("ByeWeekHasNoOpponent", func(t *testing.T) {
		api := newFakeAPI()
		api.matchups["L1"] = []sleeper.Matchup{
			{RosterID: 1, MatchupID: 0, Points: 0},
		}
		ll, err := ForLeague(context.Background(), api, api.user, api.state, api.players, api.leagues[0])
		require.NoError(t, err)
		assert.Nil(t, ll.Opponent)
	})

	t.Run("NoMatchupsPublished", func(t *testing.T) {
		api := newFakeAPI()
		api.matchups["L1"] = nil
		ll, err := ForLeague(context.Background(), api, api.user, api.state, api.players, api.leagues[0])
		require.NoError(t, err)
		assert.Nil(t, ll.Opponent)
		assert.Zero(t, ll.Points)
		assert.Len(t, ll.Starters, 2)
	})

	t.Run("OpponentOwnerMissingFromLeagueUsers", func(t *testing.T) {
		api := newFakeAPI()
		api.users["L1"] = []sleeper.User{{UserID: "U1", Username: "alice"}}
		ll, err := ForLeague(context.Background(), api, api.user, api.state, api.players, api.leagues[0])
		require.NoError(t, err)
		require.NotNil(t, ll.Opponent)
		assert.Equal(t, "Unknown", ll.Opponent.DisplayName)
	})
}

func TestForAllLeagues(t *testing.T) {
	t.Run("SkipsLeaguesWithoutRoster", func(t *testing.T) {
		api := newFakeAPI()
		api.leagues = []sleeper.League{
			{LeagueID: "L1", Name: "Main Street League"},
			{LeagueID: "L2", Name: "Work League"},
			{LeagueID: "L3", Name: "Family League"},
		}
		// alice holds rosters in L1 and L3 only.
		api.rosters["L2"] = []sleeper.Roster{{RosterID: 9, OwnerID: "U9"}}
		api.rosters["L3"] = []sleeper.Roster{
			{RosterID: 4, OwnerID: "U1", Starters: []string{"p1"}, Players: []string{"p1"}},
		}

		out, err := ForAllLeagues(context.Background(), api, "alice")
		require.NoError(t, err)
		require.Len(t, out.Leagues, 2)
		assert.Equal(t, "L1", out.Leagues[0].LeagueID)
		assert.Equal(t, "L3", out.Leagues[1].LeagueID)
		assert.Equal(t, "Alice", out.DisplayName)
		assert.Equal(t, 7, out.Week)
	})

	t.Run("CatalogFetchedOnce", func(t *testing.T) {
		api := newFakeAPI()
		api.leagues = []sleeper.League{
			{LeagueID: "L1"}, {LeagueID: "L1"}, {LeagueID: "L1"},
		}
		_, err := ForAllLeagues(context.Background(), api, "alice")
		require.NoError(t, err)
		assert.Equal(t, 1, api.playerCalls)
		assert.Equal(t, 1, api.stateCalls)
		assert.Equal(t, 1, api.userCalls)
	})

	t.Run("NoLeagues", func(t *testing.T) {
		api := newFakeAPI()
		api.leagues = nil
		out, err := ForAllLeagues(context.Background(), api, "alice")
		require.NoError(t, err)
		assert.Empty(t, out.Leagues)
		// No point pulling the 5MB catalog for zero leagues.
		assert.Zero(t, api.playerCalls)
	})

	t.Run("UnknownUser", func(t *testing.T) {
		api := newFakeAPI()
		_, err := ForAllLeagues(context.Background(), api, "mallory")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}
