package domain

// FunStats holds the aggregate trivia rendered in the nerdy-stats section.
type FunStats struct {
	LeagueAverage float64
	AboveAverage  int
	BelowAverage  int
	HighScore     float64
	LowScore      float64
	ScoreRange    float64
	TotalMatchups int
	HasScores     bool
}

// FunStats derives league-wide trivia from the consistency stats and the
// matchup counts.
func (d *LeagueData) FunStats() FunStats {
	leaders := d.Leaders()
	stats := FunStats{}

	if len(leaders.Consistency) > 0 {
		stats.HasScores = true

		var sum float64
		var first = true
		for _, team := range sortedTeams(leaders.Consistency) {
			c := leaders.Consistency[team]
			sum += c.Avg
			if first {
				stats.HighScore = c.High
				stats.LowScore = c.Low
				first = false
				continue
			}
			if c.High > stats.HighScore {
				stats.HighScore = c.High
			}
			if c.Low < stats.LowScore {
				stats.LowScore = c.Low
			}
		}

		stats.LeagueAverage = sum / float64(len(leaders.Consistency))
		for _, c := range leaders.Consistency {
			if c.Avg > stats.LeagueAverage {
				stats.AboveAverage++
			} else {
				stats.BelowAverage++
			}
		}
		stats.ScoreRange = stats.HighScore - stats.LowScore
	}

	for _, week := range d.Matchups {
		stats.TotalMatchups += len(week) / 2
	}

	return stats
}
