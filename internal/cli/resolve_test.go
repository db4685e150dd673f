package cli

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"sleeper-log/internal/config"
	"sleeper-log/internal/domain"
	"sleeper-log/internal/testutil"
)

func TestResolveLeagueIDPrecedence(t *testing.T) {
	provider := &testutil.StubProvider{}

	t.Run("flag wins over env", func(t *testing.T) {
		app, _ := newTestApp(config.Config{LeagueID: "env-league"}, provider, nil)
		got, err := app.resolveLeagueID(context.Background(), provider, runOptions{leagueID: "flag-league"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got != "flag-league" {
			t.Fatalf("expected flag league, got %q", got)
		}
	})

	t.Run("env wins over username", func(t *testing.T) {
		app, _ := newTestApp(config.Config{LeagueID: "env-league"}, provider, nil)
		got, err := app.resolveLeagueID(context.Background(), provider, runOptions{username: "kid"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got != "env-league" {
			t.Fatalf("expected env league, got %q", got)
		}
	})

	t.Run("nothing provided errors", func(t *testing.T) {
		app, _ := newTestApp(config.Config{}, provider, nil)
		if _, err := app.resolveLeagueID(context.Background(), provider, runOptions{}); !errors.Is(err, errNoLeague) {
			t.Fatalf("expected errNoLeague, got %v", err)
		}
	})
}

func TestLookupLeagueSingle(t *testing.T) {
	provider := &testutil.StubProvider{}
	app, _ := newTestApp(config.Config{}, provider, nil)

	got, err := app.resolveLeagueID(context.Background(), provider, runOptions{username: "kid"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got != "123456789012345678" {
		t.Fatalf("expected the single league, got %q", got)
	}
}

func TestLookupLeagueSeasonDefault(t *testing.T) {
	var gotSeason string
	provider := &testutil.StubProvider{
		UserLeaguesFn: func(ctx context.Context, userID, season string) ([]domain.LeagueSummary, error) {
			gotSeason = season
			return []domain.LeagueSummary{{ID: "l1", Name: "Only League"}}, nil
		},
	}
	app, _ := newTestApp(config.Config{}, provider, nil)
	app.now = testutil.NowAt(time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC))

	if _, err := app.resolveLeagueID(context.Background(), provider, runOptions{username: "kid"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	// January is still the prior NFL season.
	if gotSeason != "2024" {
		t.Fatalf("expected season 2024, got %q", gotSeason)
	}
}

func TestLookupLeagueNone(t *testing.T) {
	provider := &testutil.StubProvider{
		UserLeaguesFn: func(ctx context.Context, userID, season string) ([]domain.LeagueSummary, error) {
			return nil, nil
		},
	}
	app, _ := newTestApp(config.Config{}, provider, nil)

	_, err := app.resolveLeagueID(context.Background(), provider, runOptions{username: "kid", year: "2024"})
	if err == nil || !strings.Contains(err.Error(), "no leagues found") {
		t.Fatalf("expected no-leagues error, got %v", err)
	}
}

func TestPickLeagueInteractive(t *testing.T) {
	leagues := []domain.LeagueSummary{
		{ID: "l1", Name: "First League"},
		{ID: "l2", Name: "Second League"},
		{ID: "l3", Name: "Third League"},
	}
	provider := &testutil.StubProvider{
		UserLeaguesFn: func(ctx context.Context, userID, season string) ([]domain.LeagueSummary, error) {
			return leagues, nil
		},
	}

	t.Run("valid choice", func(t *testing.T) {
		app, stdout := newTestApp(config.Config{}, provider, strings.NewReader("2\n"))
		got, err := app.resolveLeagueID(context.Background(), provider, runOptions{username: "kid", year: "2024"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got != "l2" {
			t.Fatalf("expected l2, got %q", got)
		}
		if !strings.Contains(stdout.String(), "2. Second League") {
			t.Fatal("expected numbered league listing")
		}
	})

	t.Run("out of range", func(t *testing.T) {
		app, _ := newTestApp(config.Config{}, provider, strings.NewReader("7\n"))
		if _, err := app.resolveLeagueID(context.Background(), provider, runOptions{username: "kid", year: "2024"}); err == nil {
			t.Fatal("expected error for out-of-range choice")
		}
	})

	t.Run("not a number", func(t *testing.T) {
		app, _ := newTestApp(config.Config{}, provider, strings.NewReader("nope\n"))
		if _, err := app.resolveLeagueID(context.Background(), provider, runOptions{username: "kid", year: "2024"}); err == nil {
			t.Fatal("expected error for non-numeric choice")
		}
	})

	t.Run("choice without trailing newline", func(t *testing.T) {
		app, _ := newTestApp(config.Config{}, provider, strings.NewReader("3"))
		got, err := app.resolveLeagueID(context.Background(), provider, runOptions{username: "kid", year: "2024"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got != "l3" {
			t.Fatalf("expected l3, got %q", got)
		}
	})
}

func TestLookupLeagueUserError(t *testing.T) {
	provider := &testutil.StubProvider{
		UserByNameFn: func(ctx context.Context, username string) (domain.User, error) {
			return domain.User{}, errors.New("no such user")
		},
	}
	app, _ := newTestApp(config.Config{}, provider, nil)

	_, err := app.resolveLeagueID(context.Background(), provider, runOptions{username: "ghost"})
	if err == nil || !strings.Contains(err.Error(), "looking up user ghost") {
		t.Fatalf("expected user lookup error, got %v", err)
	}
}
