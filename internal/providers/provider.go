package providers

import (
	"context"

	"sleeper-log/internal/domain"
)

// LeagueProvider defines how upstream fantasy league data is fetched and
// normalized. Implementations must be safe for sequential reuse across calls;
// concurrent use is not required.
type LeagueProvider interface {
	// FetchLeague returns league metadata for the given league id.
	FetchLeague(ctx context.Context, leagueID string) (domain.League, error)
	// FetchState returns the current NFL season state (week, season).
	FetchState(ctx context.Context) (domain.SeasonState, error)
	// FetchUsers returns the league's member profiles.
	FetchUsers(ctx context.Context, leagueID string) ([]domain.User, error)
	// FetchRosters returns the league's rosters.
	FetchRosters(ctx context.Context, leagueID string) ([]domain.Roster, error)
	// FetchMatchups returns one week's matchups for the league.
	FetchMatchups(ctx context.Context, leagueID string, week int) ([]domain.Matchup, error)
	// FetchPlayers returns the full NFL players catalog keyed by player id.
	FetchPlayers(ctx context.Context) (map[string]domain.Player, error)
	// FetchUserByName resolves a username to a user profile.
	FetchUserByName(ctx context.Context, username string) (domain.User, error)
	// FetchUserLeagues lists a user's leagues for a season.
	FetchUserLeagues(ctx context.Context, userID, season string) ([]domain.LeagueSummary, error)
}
