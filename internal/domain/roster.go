package domain

import (
	"fmt"
	"sort"
)

// baseStarterSlots is the conventional starting lineup order used when Sleeper
// does not report slot labels alongside starter ids.
var baseStarterSlots = []string{"QB", "RB", "RB", "WR", "WR", "TE", "FLEX", "K", "DEF"}

// benchPositionOrder controls how bench players are grouped in the report.
var benchPositionOrder = []string{"QB", "RB", "WR", "TE", "K", "DEF"}

// RosterSlot is one line of a lineup listing. Position is empty on
// continuation lines where several bench players share a position group.
type RosterSlot struct {
	Position string  `json:"position"`
	Name     string  `json:"name"`
	NFLTeam  string  `json:"nflTeam"`
	Points   float64 `json:"points"`
	IR       bool    `json:"ir"`
	Empty    bool    `json:"empty"`
}

// TeamRoster is the shaped lineup for one team: starters in slot order, bench
// grouped by position (IR included), and the taxi squad.
type TeamRoster struct {
	Team       string
	Starters   []RosterSlot
	Bench      []RosterSlot
	Taxi       []RosterSlot
	Projection float64
	HasPlayers bool
}

// TeamRosters shapes every roster into displayable lineups. Player points are
// the previous week's scoring from that week's matchup data.
func (d *LeagueData) TeamRosters() []TeamRoster {
	rosters := make([]TeamRoster, 0, len(d.Rosters))
	for _, roster := range d.Rosters {
		rosters = append(rosters, d.shapeRoster(roster))
	}
	return rosters
}

func (d *LeagueData) shapeRoster(roster Roster) TeamRoster {
	shaped := TeamRoster{
		Team:       d.TeamName(roster.RosterID),
		HasPlayers: len(roster.Players) > 0,
	}
	if !shaped.HasPlayers {
		return shaped
	}

	shaped.Starters, shaped.Projection = d.shapeStarters(roster)
	shaped.Bench = d.shapeBench(roster)
	shaped.Taxi = d.shapeTaxi(roster)
	return shaped
}

func (d *LeagueData) shapeStarters(roster Roster) ([]RosterSlot, float64) {
	slots := baseStarterSlots
	if len(roster.Starters) < len(slots) {
		slots = slots[:len(roster.Starters)]
	}

	var (
		shaped         []RosterSlot
		projection     float64
		positionCounts = make(map[string]int)
	)

	for i, playerID := range roster.Starters {
		if playerID == "" || playerID == "0" {
			display := "???"
			if i < len(slots) {
				display = slots[i]
			}
			shaped = append(shaped, RosterSlot{Position: display, Name: "[Empty]", NFLTeam: "---", Empty: true})
			continue
		}

		position, nflTeam := d.PlayerPositionTeam(playerID)
		display := position
		if i < len(slots) {
			display = slots[i]
		} else {
			positionCounts[position]++
			if positionCounts[position] > 1 {
				display = fmt.Sprintf("%s%d", position, positionCounts[position])
			}
		}
		if position == "DEF" {
			display = "DST"
		}

		points := d.lastWeekPoints(playerID, roster.RosterID)
		projection += points
		shaped = append(shaped, RosterSlot{
			Position: display,
			Name:     d.PlayerName(playerID),
			NFLTeam:  nflTeam,
			Points:   points,
		})
	}

	return shaped, projection
}

func (d *LeagueData) shapeBench(roster Roster) []RosterSlot {
	starters := make(map[string]struct{}, len(roster.Starters))
	for _, id := range roster.Starters {
		starters[id] = struct{}{}
	}
	taxi := make(map[string]struct{}, len(roster.Taxi))
	for _, id := range roster.Taxi {
		taxi[id] = struct{}{}
	}
	ir := make(map[string]struct{}, len(roster.Reserve))
	for _, id := range roster.Reserve {
		ir[id] = struct{}{}
	}

	var benchIDs []string
	for _, id := range roster.Players {
		if _, isStarter := starters[id]; isStarter {
			continue
		}
		if _, isTaxi := taxi[id]; isTaxi {
			continue
		}
		benchIDs = append(benchIDs, id)
	}
	benchIDs = append(benchIDs, roster.Reserve...)

	byPosition := make(map[string][]RosterSlot)
	for _, id := range benchIDs {
		position, nflTeam := d.PlayerPositionTeam(id)
		_, onIR := ir[id]
		byPosition[position] = append(byPosition[position], RosterSlot{
			Position: position,
			Name:     d.PlayerName(id),
			NFLTeam:  nflTeam,
			Points:   d.lastWeekPoints(id, roster.RosterID),
			IR:       onIR,
		})
	}

	var shaped []RosterSlot
	appendGroup := func(position string) {
		group, ok := byPosition[position]
		if !ok {
			return
		}
		display := position
		if position == "DEF" {
			display = "DST"
		}
		for i, slot := range group {
			if i == 0 {
				slot.Position = display
			} else {
				slot.Position = ""
			}
			shaped = append(shaped, slot)
		}
		delete(byPosition, position)
	}

	for _, position := range benchPositionOrder {
		appendGroup(position)
	}
	for _, position := range sortedPositions(byPosition) {
		for _, slot := range byPosition[position] {
			shaped = append(shaped, slot)
		}
	}

	return shaped
}

func (d *LeagueData) shapeTaxi(roster Roster) []RosterSlot {
	var shaped []RosterSlot
	for _, id := range roster.Taxi {
		position, nflTeam := d.PlayerPositionTeam(id)
		display := position
		if position == "DEF" {
			display = "DST"
		}
		shaped = append(shaped, RosterSlot{
			Position: display,
			Name:     d.PlayerName(id),
			NFLTeam:  nflTeam,
			Points:   d.lastWeekPoints(id, roster.RosterID),
		})
	}
	return shaped
}

// lastWeekPoints looks up a player's points from the previous week's matchup.
func (d *LeagueData) lastWeekPoints(playerID string, rosterID int) float64 {
	if d.CurrentWeek <= 1 {
		return 0
	}
	matchups, ok := d.Matchups[d.CurrentWeek-1]
	if !ok {
		return 0
	}
	for _, matchup := range matchups {
		if matchup.RosterID == rosterID {
			return matchup.PlayerPoints[playerID]
		}
	}
	return 0
}

func sortedPositions(groups map[string][]RosterSlot) []string {
	positions := make([]string, 0, len(groups))
	for position := range groups {
		positions = append(positions, position)
	}
	sort.Strings(positions)
	return positions
}
