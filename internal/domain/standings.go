package domain

import (
	"fmt"
	"sort"
)

// regularSeasonWeeks is the number of weeks shown in the power-rankings game log.
const regularSeasonWeeks = 16

// WeekResult is the outcome of one week for one team.
type WeekResult byte

const (
	ResultWin    WeekResult = 'W'
	ResultLoss   WeekResult = 'L'
	ResultTie    WeekResult = 'T'
	ResultNoGame WeekResult = '-'
)

// Standing is one row of the league table.
type Standing struct {
	RosterID      int     `json:"rosterId"`
	Team          string  `json:"team"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	Ties          int     `json:"ties"`
	PointsFor     float64 `json:"pointsFor"`
	PointsAgainst float64 `json:"pointsAgainst"`
}

// GamesPlayed returns the number of decided games for the team.
func (s Standing) GamesPlayed() int {
	return s.Wins + s.Losses + s.Ties
}

// Record formats the W-L(-T) record, omitting ties when there are none.
func (s Standing) Record() string {
	record := fmt.Sprintf("%d-%d", s.Wins, s.Losses)
	if s.Ties > 0 {
		record += fmt.Sprintf("-%d", s.Ties)
	}
	return record
}

// Standings computes the league table: win/loss records from roster settings
// and points-for summed across every played matchup, sorted by wins then
// points-for, both descending.
func (d *LeagueData) Standings() []Standing {
	standings := make([]Standing, 0, len(d.Rosters))

	for _, roster := range d.Rosters {
		var pointsFor float64
		for _, week := range d.Matchups {
			for _, matchup := range week {
				if matchup.RosterID == roster.RosterID {
					pointsFor += matchup.Points
				}
			}
		}

		standings = append(standings, Standing{
			RosterID:      roster.RosterID,
			Team:          d.TeamName(roster.RosterID),
			Wins:          roster.Wins,
			Losses:        roster.Losses,
			Ties:          roster.Ties,
			PointsFor:     pointsFor,
			PointsAgainst: roster.PointsAgainst,
		})
	}

	sort.SliceStable(standings, func(i, j int) bool {
		if standings[i].Wins != standings[j].Wins {
			return standings[i].Wins > standings[j].Wins
		}
		return standings[i].PointsFor > standings[j].PointsFor
	})

	return standings
}

// WeeklyResults derives the W/L/T outcome for each regular-season week by
// comparing the team's points to the opponent sharing its matchup id. Weeks
// with no data yield ResultNoGame.
func (d *LeagueData) WeeklyResults(rosterID int) []WeekResult {
	results := make([]WeekResult, 0, regularSeasonWeeks)

	for week := 1; week <= regularSeasonWeeks; week++ {
		matchups, ok := d.Matchups[week]
		if !ok {
			results = append(results, ResultNoGame)
			continue
		}

		var own *Matchup
		for i := range matchups {
			if matchups[i].RosterID == rosterID {
				own = &matchups[i]
				break
			}
		}
		if own == nil {
			results = append(results, ResultNoGame)
			continue
		}

		var opponentPoints float64
		for i := range matchups {
			if matchups[i].MatchupID == own.MatchupID && matchups[i].RosterID != rosterID {
				opponentPoints = matchups[i].Points
				break
			}
		}

		switch {
		case own.Points > opponentPoints:
			results = append(results, ResultWin)
		case own.Points < opponentPoints:
			results = append(results, ResultLoss)
		default:
			results = append(results, ResultTie)
		}
	}

	return results
}
