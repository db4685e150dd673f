package report

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"sleeper-log/internal/domain"
	"sleeper-log/internal/testutil"
)

func TestRunWritesReports(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	var stdout bytes.Buffer
	svc := NewService(&testutil.StubProvider{}, logger, &stdout)
	svc.now = testutil.NowAt(time.Date(2024, 9, 24, 18, 45, 0, 0, time.UTC))

	htmlPath := filepath.Join(t.TempDir(), "sleeper_log.html")
	if err := svc.Run(context.Background(), "123456789012345678", htmlPath); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if !strings.Contains(stdout.String(), "The Gridiron Gang") {
		t.Fatal("expected text report echoed to stdout")
	}

	page, err := os.ReadFile(htmlPath)
	if err != nil {
		t.Fatalf("expected html report on disk, got %v", err)
	}
	if !strings.Contains(string(page), "<title>The Gridiron Gang - sleeper-log Report</title>") {
		t.Fatal("expected html title from league name")
	}

	text, err := os.ReadFile(strings.TrimSuffix(htmlPath, ".html") + ".txt")
	if err != nil {
		t.Fatalf("expected text report on disk, got %v", err)
	}
	if !strings.Contains(string(text), "POWER RANKINGS") {
		t.Fatal("expected standings section in text report")
	}
}

func TestCollectAssemblesLeagueData(t *testing.T) {
	svc := NewService(&testutil.StubProvider{}, nil, nil)
	generatedAt := time.Date(2024, 9, 24, 18, 45, 0, 0, time.UTC)
	svc.now = testutil.NowAt(generatedAt)

	data, err := svc.Collect(context.Background(), "123456789012345678")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if data.League.Name != "The Gridiron Gang" {
		t.Fatalf("unexpected league %q", data.League.Name)
	}
	if data.CurrentWeek != 3 {
		t.Fatalf("expected current week 3, got %d", data.CurrentWeek)
	}
	if len(data.Users) != 4 {
		t.Fatalf("expected 4 users keyed by id, got %d", len(data.Users))
	}
	if got := len(data.Matchups[1]); got != 4 {
		t.Fatalf("expected 4 week-1 matchups, got %d", got)
	}
	if !data.GeneratedAt.Equal(generatedAt) {
		t.Fatalf("expected generated-at %v, got %v", generatedAt, data.GeneratedAt)
	}
}

func TestCollectSkipsFailedMatchupWeek(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	provider := &testutil.StubProvider{
		MatchupsFn: func(ctx context.Context, leagueID string, week int) ([]domain.Matchup, error) {
			if week == 2 {
				return nil, errors.New("upstream hiccup")
			}
			return testutil.LeagueData().Matchups[week], nil
		},
	}
	svc := NewService(provider, logger, nil)

	data, err := svc.Collect(context.Background(), "123456789012345678")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if _, ok := data.Matchups[2]; ok {
		t.Fatal("expected failed week to be absent")
	}
	if len(data.Matchups[1]) != 4 {
		t.Fatal("expected surviving weeks to remain")
	}
	if !strings.Contains(buf.String(), "skipping matchup week") {
		t.Fatal("expected a warning for the failed week")
	}
}

func TestCollectDegradesWithoutPlayersCatalog(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	provider := &testutil.StubProvider{
		PlayersFn: func(ctx context.Context) (map[string]domain.Player, error) {
			return nil, errors.New("catalog down")
		},
	}
	svc := NewService(provider, logger, nil)

	data, err := svc.Collect(context.Background(), "123456789012345678")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(data.Players) != 0 {
		t.Fatal("expected empty players catalog")
	}
	if data.PlayerName("qb1") != "Unknown Player" {
		t.Fatal("expected unknown-player fallback")
	}
	if !strings.Contains(buf.String(), "players catalog unavailable") {
		t.Fatal("expected a warning about the players catalog")
	}
}

func TestCollectFailsWhenLeagueFetchFails(t *testing.T) {
	provider := &testutil.StubProvider{
		LeagueFn: func(ctx context.Context, leagueID string) (domain.League, error) {
			return domain.League{}, errors.New("not today")
		},
	}
	svc := NewService(provider, nil, nil)

	if _, err := svc.Collect(context.Background(), "bad"); err == nil {
		t.Fatal("expected error when league fetch fails")
	}
}

func TestCollectCapsMatchupWeeks(t *testing.T) {
	var fetched []int
	provider := &testutil.StubProvider{
		StateFn: func(ctx context.Context) (domain.SeasonState, error) {
			return domain.SeasonState{Week: 25, Season: "2024"}, nil
		},
		MatchupsFn: func(ctx context.Context, leagueID string, week int) ([]domain.Matchup, error) {
			fetched = append(fetched, week)
			return nil, nil
		},
	}
	svc := NewService(provider, nil, nil)

	if _, err := svc.Collect(context.Background(), "123456789012345678"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(fetched) != maxSeasonWeeks {
		t.Fatalf("expected %d weeks fetched, got %d", maxSeasonWeeks, len(fetched))
	}
	if fetched[len(fetched)-1] != maxSeasonWeeks {
		t.Fatalf("expected last fetched week %d, got %d", maxSeasonWeeks, fetched[len(fetched)-1])
	}
}
