package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"sleeper-log/internal/domain"
	"sleeper-log/internal/logging"
	"sleeper-log/internal/providers"
	"sleeper-log/internal/timeutil"
)

var errNoLeague = errors.New("no league ID provided: pass --league-id, set LEAGUE_ID, or pass --username")

// resolveLeagueID picks the league to report on. Precedence: --league-id
// flag, LEAGUE_ID from the environment, then a lookup of --username's
// leagues for the season.
func (a *App) resolveLeagueID(ctx context.Context, provider providers.LeagueProvider, opts runOptions) (string, error) {
	if opts.leagueID != "" {
		return opts.leagueID, nil
	}
	if a.cfg.LeagueID != "" {
		return a.cfg.LeagueID, nil
	}
	if opts.username == "" {
		return "", errNoLeague
	}
	return a.lookupLeague(ctx, provider, opts.username, opts.year)
}

// lookupLeague resolves a username to one of their leagues. A single league
// is used directly; multiple leagues prompt an interactive pick.
func (a *App) lookupLeague(ctx context.Context, provider providers.LeagueProvider, username, season string) (string, error) {
	user, err := provider.FetchUserByName(ctx, username)
	if err != nil {
		return "", fmt.Errorf("looking up user %s: %w", username, err)
	}

	if season == "" {
		season = timeutil.CurrentSeason(a.now())
	}

	leagues, err := provider.FetchUserLeagues(ctx, user.ID, season)
	if err != nil {
		return "", fmt.Errorf("listing leagues for %s: %w", username, err)
	}

	switch len(leagues) {
	case 0:
		return "", fmt.Errorf("no leagues found for %s in %s", username, season)
	case 1:
		logging.Info(a.logger, "resolved league from username",
			logging.FieldUsername, username,
			logging.FieldLeagueID, leagues[0].ID,
		)
		return leagues[0].ID, nil
	default:
		return a.pickLeague(username, season, leagues)
	}
}

// pickLeague prompts for a numbered choice when the user belongs to more
// than one league.
func (a *App) pickLeague(username, season string, leagues []domain.LeagueSummary) (string, error) {
	fmt.Fprintf(a.stdout, "\n%s has %d leagues in %s:\n", username, len(leagues), season)
	for i, league := range leagues {
		fmt.Fprintf(a.stdout, "  %d. %s\n", i+1, league.Name)
	}
	fmt.Fprint(a.stdout, "\nPick a league (number): ")

	line, err := bufio.NewReader(a.stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading league choice: %w", err)
	}

	choice, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || choice < 1 || choice > len(leagues) {
		return "", fmt.Errorf("invalid league choice %q: pick 1-%d", strings.TrimSpace(line), len(leagues))
	}
	return leagues[choice-1].ID, nil
}
