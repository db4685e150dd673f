package testutil

import (
	"time"

	"sleeper-log/internal/domain"
)

// LeagueData returns a small two-week, four-team league for renderer and
// service tests.
func LeagueData() *domain.LeagueData {
	return &domain.LeagueData{
		League:      domain.League{ID: "123456789012345678", Name: "The Gridiron Gang", Season: "2024"},
		CurrentWeek: 3,
		Users: map[string]domain.User{
			"u1": {ID: "u1", Username: "kid", DisplayName: "Kid", TeamName: "Comeback Kids"},
			"u2": {ID: "u2", Username: "gramps", DisplayName: "Gridiron Grandpas"},
			"u3": {ID: "u3", Username: "coolguy"},
			"u4": {ID: "u4", Username: "fourth", DisplayName: "Fourth Wheel"},
		},
		Rosters: []domain.Roster{
			{
				RosterID: 1, OwnerID: "u1", Wins: 2, PointsAgainst: 175,
				Players:  []string{"qb1", "rb1", "bn1"},
				Starters: []string{"qb1", "rb1"},
			},
			{RosterID: 2, OwnerID: "u2", Losses: 2, PointsAgainst: 230},
			{RosterID: 3, OwnerID: "u3", Wins: 1, Losses: 1, PointsAgainst: 205},
			{RosterID: 4, OwnerID: "u4", Wins: 1, Losses: 1, PointsAgainst: 195},
		},
		Matchups: map[int][]domain.Matchup{
			1: {
				{RosterID: 1, MatchupID: 1, Points: 120},
				{RosterID: 2, MatchupID: 1, Points: 90},
				{RosterID: 3, MatchupID: 2, Points: 100},
				{RosterID: 4, MatchupID: 2, Points: 95},
			},
			2: {
				{RosterID: 1, MatchupID: 1, Points: 110, PlayerPoints: map[string]float64{"qb1": 25.5, "rb1": 14.0, "bn1": 7.5}},
				{RosterID: 2, MatchupID: 1, Points: 85},
				{RosterID: 3, MatchupID: 2, Points: 95},
				{RosterID: 4, MatchupID: 2, Points: 100},
			},
		},
		Players: map[string]domain.Player{
			"qb1": {FirstName: "Josh", LastName: "Allen", Position: "QB", Team: "BUF"},
			"rb1": {FirstName: "Bijan", LastName: "Robinson", Position: "RB", Team: "ATL"},
			"bn1": {FirstName: "Jaylen", LastName: "Warren", Position: "RB", Team: "PIT"},
		},
		GeneratedAt: time.Date(2024, 9, 24, 18, 45, 0, 0, time.UTC),
	}
}
