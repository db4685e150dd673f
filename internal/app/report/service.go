package report

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"sleeper-log/internal/domain"
	"sleeper-log/internal/logging"
	"sleeper-log/internal/providers"
	render "sleeper-log/internal/report"
)

// maxSeasonWeeks caps how many matchup weeks are fetched; Sleeper leagues
// never run past week 18.
const maxSeasonWeeks = 18

// Service coordinates one report run: fetch league data from the provider,
// assemble the domain aggregate, render the report, and write it out.
type Service struct {
	provider providers.LeagueProvider
	logger   *slog.Logger
	stdout   io.Writer
	now      func() time.Time
}

// NewService constructs a Service. stdout receives the rendered text report;
// pass io.Discard to suppress the echo.
func NewService(provider providers.LeagueProvider, logger *slog.Logger, stdout io.Writer) *Service {
	if stdout == nil {
		stdout = io.Discard
	}
	return &Service{
		provider: provider,
		logger:   logger,
		stdout:   stdout,
		now:      time.Now,
	}
}

// Run fetches everything for the league, renders the report, echoes the text
// version to stdout, and writes the HTML report plus a .txt companion next
// to it.
func (s *Service) Run(ctx context.Context, leagueID, htmlPath string) error {
	data, err := s.Collect(ctx, leagueID)
	if err != nil {
		return err
	}

	text := render.BuildText(data)
	fmt.Fprintln(s.stdout, text)

	page, err := render.BuildHTML(data.League.Name, text)
	if err != nil {
		return fmt.Errorf("rendering html report: %w", err)
	}

	if err := render.WriteFile(htmlPath, page); err != nil {
		return fmt.Errorf("writing html report: %w", err)
	}
	textPath := render.TextPathFor(htmlPath)
	if err := render.WriteFile(textPath, text); err != nil {
		return fmt.Errorf("writing text report: %w", err)
	}

	logging.Info(s.logger, "report written",
		logging.FieldLeagueID, leagueID,
		logging.FieldPath, htmlPath,
	)
	return nil
}

// Collect fetches and assembles all league data needed for a report. Matchup
// weeks that fail to fetch are skipped with a warning; a missing players
// catalog degrades player names rather than aborting.
func (s *Service) Collect(ctx context.Context, leagueID string) (*domain.LeagueData, error) {
	league, err := s.provider.FetchLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("fetching league %s: %w", leagueID, err)
	}
	logging.Info(s.logger, "fetched league",
		logging.FieldLeagueID, leagueID,
		logging.FieldSeason, league.Season,
	)

	state, err := s.provider.FetchState(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching nfl state: %w", err)
	}

	users, err := s.provider.FetchUsers(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("fetching league users: %w", err)
	}
	userIndex := make(map[string]domain.User, len(users))
	for _, user := range users {
		userIndex[user.ID] = user
	}

	rosters, err := s.provider.FetchRosters(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("fetching rosters: %w", err)
	}

	matchups := s.collectMatchups(ctx, leagueID, state.Week)

	players, err := s.provider.FetchPlayers(ctx)
	if err != nil {
		logging.Warn(s.logger, "players catalog unavailable, player names will be unknown",
			"error", err,
		)
		players = map[string]domain.Player{}
	}

	return &domain.LeagueData{
		League:      league,
		CurrentWeek: state.Week,
		Users:       userIndex,
		Rosters:     rosters,
		Matchups:    matchups,
		Players:     players,
		GeneratedAt: s.now(),
	}, nil
}

// collectMatchups fetches weeks 1..min(currentWeek, maxSeasonWeeks). A week
// that fails to fetch is logged and left out so one bad week does not sink
// the whole report.
func (s *Service) collectMatchups(ctx context.Context, leagueID string, currentWeek int) map[int][]domain.Matchup {
	lastWeek := currentWeek
	if lastWeek > maxSeasonWeeks {
		lastWeek = maxSeasonWeeks
	}

	matchups := make(map[int][]domain.Matchup)
	for week := 1; week <= lastWeek; week++ {
		weekMatchups, err := s.provider.FetchMatchups(ctx, leagueID, week)
		if err != nil {
			logging.Warn(s.logger, "skipping matchup week",
				logging.FieldWeek, week,
				"error", err,
			)
			continue
		}
		matchups[week] = weekMatchups
	}
	return matchups
}
