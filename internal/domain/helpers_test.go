package domain

import (
	"math"
	"testing"
	"time"
)

// testLeague builds a four-team league with three played weeks.
//
// Pairings: roster 1 vs 2 (matchup 1) and 3 vs 4 (matchup 2) every week.
//
//	week 1: 100-90, 80-120
//	week 2: 110-110 (tie), 95-85
//	week 3: 130-70, 60-100
func testLeague() *LeagueData {
	return &LeagueData{
		League:      League{ID: "league-1", Name: "Test League", Season: "2024"},
		CurrentWeek: 4,
		Users: map[string]User{
			"u1": {ID: "u1", Username: "kid", DisplayName: "Kid", TeamName: "Comeback Kids"},
			"u2": {ID: "u2", Username: "gramps", DisplayName: "Gridiron Grandpas"},
			"u3": {ID: "u3", Username: "coolguy"},
		},
		Rosters: []Roster{
			{RosterID: 1, OwnerID: "u1", Wins: 2, Ties: 1, PointsAgainst: 270},
			{RosterID: 2, OwnerID: "u2", Losses: 2, Ties: 1, PointsAgainst: 340},
			{RosterID: 3, OwnerID: "u3", Wins: 1, Losses: 2, PointsAgainst: 305},
			{RosterID: 4, OwnerID: "u4", Wins: 2, Losses: 1, PointsAgainst: 235},
		},
		Matchups: map[int][]Matchup{
			1: {
				{RosterID: 1, MatchupID: 1, Points: 100},
				{RosterID: 2, MatchupID: 1, Points: 90},
				{RosterID: 3, MatchupID: 2, Points: 80},
				{RosterID: 4, MatchupID: 2, Points: 120},
			},
			2: {
				{RosterID: 1, MatchupID: 1, Points: 110},
				{RosterID: 2, MatchupID: 1, Points: 110},
				{RosterID: 3, MatchupID: 2, Points: 95},
				{RosterID: 4, MatchupID: 2, Points: 85},
			},
			3: {
				{RosterID: 1, MatchupID: 1, Points: 130},
				{RosterID: 2, MatchupID: 1, Points: 70},
				{RosterID: 3, MatchupID: 2, Points: 60},
				{RosterID: 4, MatchupID: 2, Points: 100},
			},
		},
		Players:     map[string]Player{},
		GeneratedAt: time.Date(2024, 10, 1, 12, 0, 0, 0, time.UTC),
	}
}

func almostEqual(t *testing.T, got, want float64, label string) {
	t.Helper()
	if math.Abs(got-want) > 0.01 {
		t.Fatalf("%s: expected %.2f, got %.2f", label, want, got)
	}
}
