package testutil

import (
	"context"

	"sleeper-log/internal/domain"
)

// StubProvider implements providers.LeagueProvider with injectable behavior.
// Any nil func falls back to the LeagueData fixture, so tests only override
// what they care about.
type StubProvider struct {
	LeagueFn      func(ctx context.Context, leagueID string) (domain.League, error)
	StateFn       func(ctx context.Context) (domain.SeasonState, error)
	UsersFn       func(ctx context.Context, leagueID string) ([]domain.User, error)
	RostersFn     func(ctx context.Context, leagueID string) ([]domain.Roster, error)
	MatchupsFn    func(ctx context.Context, leagueID string, week int) ([]domain.Matchup, error)
	PlayersFn     func(ctx context.Context) (map[string]domain.Player, error)
	UserByNameFn  func(ctx context.Context, username string) (domain.User, error)
	UserLeaguesFn func(ctx context.Context, userID, season string) ([]domain.LeagueSummary, error)
}

func (p *StubProvider) FetchLeague(ctx context.Context, leagueID string) (domain.League, error) {
	if p.LeagueFn != nil {
		return p.LeagueFn(ctx, leagueID)
	}
	return LeagueData().League, nil
}

func (p *StubProvider) FetchState(ctx context.Context) (domain.SeasonState, error) {
	if p.StateFn != nil {
		return p.StateFn(ctx)
	}
	fixture := LeagueData()
	return domain.SeasonState{Week: fixture.CurrentWeek, Season: fixture.League.Season}, nil
}

func (p *StubProvider) FetchUsers(ctx context.Context, leagueID string) ([]domain.User, error) {
	if p.UsersFn != nil {
		return p.UsersFn(ctx, leagueID)
	}
	fixture := LeagueData()
	users := make([]domain.User, 0, len(fixture.Users))
	for _, user := range fixture.Users {
		users = append(users, user)
	}
	return users, nil
}

func (p *StubProvider) FetchRosters(ctx context.Context, leagueID string) ([]domain.Roster, error) {
	if p.RostersFn != nil {
		return p.RostersFn(ctx, leagueID)
	}
	return LeagueData().Rosters, nil
}

func (p *StubProvider) FetchMatchups(ctx context.Context, leagueID string, week int) ([]domain.Matchup, error) {
	if p.MatchupsFn != nil {
		return p.MatchupsFn(ctx, leagueID, week)
	}
	return LeagueData().Matchups[week], nil
}

func (p *StubProvider) FetchPlayers(ctx context.Context) (map[string]domain.Player, error) {
	if p.PlayersFn != nil {
		return p.PlayersFn(ctx)
	}
	return LeagueData().Players, nil
}

func (p *StubProvider) FetchUserByName(ctx context.Context, username string) (domain.User, error) {
	if p.UserByNameFn != nil {
		return p.UserByNameFn(ctx, username)
	}
	return domain.User{ID: "u1", Username: username, DisplayName: "Kid"}, nil
}

func (p *StubProvider) FetchUserLeagues(ctx context.Context, userID, season string) ([]domain.LeagueSummary, error) {
	if p.UserLeaguesFn != nil {
		return p.UserLeaguesFn(ctx, userID, season)
	}
	fixture := LeagueData()
	return []domain.LeagueSummary{
		{ID: fixture.League.ID, Name: fixture.League.Name, Season: fixture.League.Season},
	}, nil
}
