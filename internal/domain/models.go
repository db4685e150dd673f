package domain

import (
	"fmt"
	"strings"
	"time"
)

// League holds the subset of league metadata the report needs.
type League struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Season string `json:"season"`
}

// User is a league member profile.
type User struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	TeamName    string `json:"teamName"`
}

// Roster is one fantasy team's roster and season settings.
type Roster struct {
	RosterID      int      `json:"rosterId"`
	OwnerID       string   `json:"ownerId"`
	Wins          int      `json:"wins"`
	Losses        int      `json:"losses"`
	Ties          int      `json:"ties"`
	PointsAgainst float64  `json:"pointsAgainst"`
	Players       []string `json:"players"`
	Starters      []string `json:"starters"`
	Taxi          []string `json:"taxi"`
	Reserve       []string `json:"reserve"`
}

// Matchup is one team's side of a weekly head-to-head pairing. Two matchups
// in the same week share a MatchupID.
type Matchup struct {
	RosterID     int                `json:"rosterId"`
	MatchupID    int                `json:"matchupId"`
	Points       float64            `json:"points"`
	PlayerPoints map[string]float64 `json:"playerPoints"`
}

// Player is an entry from the NFL players catalog.
type Player struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Position  string `json:"position"`
	Team      string `json:"team"`
}

// LeagueData aggregates everything fetched for one report run.
type LeagueData struct {
	League      League
	CurrentWeek int
	Users       map[string]User
	Rosters     []Roster
	Matchups    map[int][]Matchup
	Players     map[string]Player
	GeneratedAt time.Time
}

// SeasonState mirrors the slice of /state/nfl the report cares about.
type SeasonState struct {
	Week   int    `json:"week"`
	Season string `json:"season"`
}

// LeagueSummary identifies a league in a user's league listing.
type LeagueSummary struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Season string `json:"season"`
}

// TeamName resolves the display name for a roster, preferring the owner's
// custom team name, then display name, then username.
func (d *LeagueData) TeamName(rosterID int) string {
	roster := d.rosterByID(rosterID)
	if roster == nil {
		return fallbackTeamName(rosterID)
	}

	user, ok := d.Users[roster.OwnerID]
	if !ok {
		return fallbackTeamName(rosterID)
	}

	for _, candidate := range []string{user.TeamName, user.DisplayName, user.Username} {
		if candidate != "" {
			return candidate
		}
	}
	return fallbackTeamName(rosterID)
}

// PlayerName returns "First Last" for a catalog player.
func (d *LeagueData) PlayerName(playerID string) string {
	player, ok := d.Players[playerID]
	if playerID == "" || !ok {
		return "Unknown Player"
	}
	name := strings.TrimSpace(player.FirstName + " " + player.LastName)
	if name == "" {
		return "Unknown Player"
	}
	return name
}

// PlayerPositionTeam returns a player's position and NFL team abbreviation.
func (d *LeagueData) PlayerPositionTeam(playerID string) (position, team string) {
	player, ok := d.Players[playerID]
	if playerID == "" || !ok {
		return "UNK", "UNK"
	}
	position, team = player.Position, player.Team
	if position == "" {
		position = "UNK"
	}
	if team == "" {
		team = "UNK"
	}
	return position, team
}

func (d *LeagueData) rosterByID(rosterID int) *Roster {
	for i := range d.Rosters {
		if d.Rosters[i].RosterID == rosterID {
			return &d.Rosters[i]
		}
	}
	return nil
}

func fallbackTeamName(rosterID int) string {
	return fmt.Sprintf("Team %d", rosterID)
}
