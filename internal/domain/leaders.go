package domain

import (
	"math"
	"sort"
)

// ConsistencyStats summarizes a team's weekly scoring distribution.
type ConsistencyStats struct {
	Avg  float64 `json:"avg"`
	Std  float64 `json:"std"`
	High float64 `json:"high"`
	Low  float64 `json:"low"`
}

// TeamConsistency pairs a team with its scoring distribution.
type TeamConsistency struct {
	Team  string           `json:"team"`
	Stats ConsistencyStats `json:"stats"`
}

// WeekScore is a single team's score for one week.
type WeekScore struct {
	Team   string  `json:"team"`
	Points float64 `json:"points"`
}

// ExpectedWins compares a team's actual record to the record its scoring
// would predict.
type ExpectedWins struct {
	Team        string  `json:"team"`
	ActualWins  int     `json:"actualWins"`
	Expected    float64 `json:"expected"`
	Difference  float64 `json:"difference"`
	GamesPlayed int     `json:"gamesPlayed"`
}

// Leaders collects the derived award-style stats for the leaders section.
type Leaders struct {
	HighestScorer   Standing
	LowestScorer    Standing
	MostConsistent  *TeamConsistency
	MostVolatile    *TeamConsistency
	WeeklyHighs     map[int]WeekScore
	WeeklyLows      map[int]WeekScore
	Consistency     map[string]ConsistencyStats
	OverPerformers  []ExpectedWins
	UnderPerformers []ExpectedWins
}

// Leaders computes league leaders, per-week highs/lows, consistency stats,
// and over/under performers from the played matchups.
func (d *LeagueData) Leaders() Leaders {
	standings := d.Standings()
	leaders := Leaders{
		WeeklyHighs: make(map[int]WeekScore),
		WeeklyLows:  make(map[int]WeekScore),
		Consistency: make(map[string]ConsistencyStats),
	}
	if len(standings) == 0 {
		return leaders
	}

	leaders.HighestScorer = standings[0]
	leaders.LowestScorer = standings[0]
	for _, s := range standings[1:] {
		if s.PointsFor > leaders.HighestScorer.PointsFor {
			leaders.HighestScorer = s
		}
		if s.PointsFor < leaders.LowestScorer.PointsFor {
			leaders.LowestScorer = s
		}
	}

	weeklyScores := make(map[string][]float64)
	for _, week := range sortedWeeks(d.Matchups) {
		var scores []WeekScore
		for _, matchup := range d.Matchups[week] {
			ws := WeekScore{Team: d.TeamName(matchup.RosterID), Points: matchup.Points}
			weeklyScores[ws.Team] = append(weeklyScores[ws.Team], ws.Points)
			scores = append(scores, ws)
		}
		if len(scores) == 0 {
			continue
		}
		sort.SliceStable(scores, func(i, j int) bool { return scores[i].Points > scores[j].Points })
		leaders.WeeklyHighs[week] = scores[0]
		leaders.WeeklyLows[week] = scores[len(scores)-1]
	}

	for team, scores := range weeklyScores {
		if len(scores) == 0 {
			continue
		}
		leaders.Consistency[team] = summarize(scores)
	}

	// Iterate teams in sorted order so ties break deterministically.
	for _, team := range sortedTeams(leaders.Consistency) {
		stats := leaders.Consistency[team]
		if leaders.MostConsistent == nil || stats.Std < leaders.MostConsistent.Stats.Std {
			leaders.MostConsistent = &TeamConsistency{Team: team, Stats: stats}
		}
		if leaders.MostVolatile == nil || stats.Std > leaders.MostVolatile.Stats.Std {
			leaders.MostVolatile = &TeamConsistency{Team: team, Stats: stats}
		}
	}

	leaders.OverPerformers, leaders.UnderPerformers = expectedWinsSplit(standings)
	return leaders
}

// expectedWinsSplit scores each team's luck: expected win percentage is the
// share of the league it outscored, scaled by games played. Teams more than
// half a win ahead of expectation are over-performers, more than half a win
// behind are under-performers.
func expectedWinsSplit(standings []Standing) (over, under []ExpectedWins) {
	for _, team := range standings {
		betterRecords := 0
		for _, other := range standings {
			if other.PointsFor > team.PointsFor {
				betterRecords++
			}
		}
		expectedPct := 1 - float64(betterRecords)/float64(len(standings))

		games := team.GamesPlayed()
		var expected float64
		if games > 0 {
			expected = expectedPct * float64(games)
		}

		ew := ExpectedWins{
			Team:        team.Team,
			ActualWins:  team.Wins,
			Expected:    expected,
			Difference:  float64(team.Wins) - expected,
			GamesPlayed: games,
		}
		switch {
		case ew.Difference > 0.5:
			over = append(over, ew)
		case ew.Difference < -0.5:
			under = append(under, ew)
		}
	}

	sort.SliceStable(over, func(i, j int) bool { return over[i].Difference > over[j].Difference })
	sort.SliceStable(under, func(i, j int) bool { return under[i].Difference < under[j].Difference })
	return over, under
}

// summarize computes mean, population standard deviation, high, and low.
func summarize(scores []float64) ConsistencyStats {
	stats := ConsistencyStats{High: scores[0], Low: scores[0]}

	var sum float64
	for _, s := range scores {
		sum += s
		if s > stats.High {
			stats.High = s
		}
		if s < stats.Low {
			stats.Low = s
		}
	}
	stats.Avg = sum / float64(len(scores))

	var sq float64
	for _, s := range scores {
		diff := s - stats.Avg
		sq += diff * diff
	}
	stats.Std = math.Sqrt(sq / float64(len(scores)))

	return stats
}

func sortedWeeks(matchups map[int][]Matchup) []int {
	weeks := make([]int, 0, len(matchups))
	for week := range matchups {
		weeks = append(weeks, week)
	}
	sort.Ints(weeks)
	return weeks
}

func sortedTeams(consistency map[string]ConsistencyStats) []string {
	teams := make([]string, 0, len(consistency))
	for team := range consistency {
		teams = append(teams, team)
	}
	sort.Strings(teams)
	return teams
}
