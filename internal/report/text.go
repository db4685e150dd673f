package report

import (
	"fmt"
	"sort"
	"strings"

	"sleeper-log/internal/domain"
	"sleeper-log/internal/timeutil"
)

const (
	sectionWidth  = 79
	starterColumn = 47
	benchColumn   = 31
	nameWidth     = 15
)

const asciiHeader = `
           /ZZ                                                    /ZZ
          | ZZ                                                   | ZZ
  /ZZZZZZZ| ZZ  /ZZZZZZ   /ZZZZZZ   /ZZZZZZ   /ZZZZZZ   /ZZZZZZ  | ZZ  /ZZZZZZ   /ZZZZZZ
 /ZZ_____/| ZZ /ZZ__  ZZ /ZZ__  ZZ /ZZ__  ZZ /ZZ__  ZZ /ZZ__  ZZ | ZZ /ZZ__  ZZ /ZZ__  ZZ
|  ZZZZZZ | ZZ| ZZZZZZZZ| ZZZZZZZZ| ZZ  \ ZZ| ZZZZZZZZ| ZZ  \__/ | ZZ| ZZ  \ ZZ| ZZ  \ ZZ
 \____  ZZ| ZZ| ZZ_____/| ZZ_____/| ZZ  | ZZ| ZZ_____/| ZZ       | ZZ| ZZ  | ZZ| ZZ  | ZZ
 /ZZZZZZZ/| ZZ|  ZZZZZZZ|  ZZZZZZZ| ZZZZZZZ/|  ZZZZZZZ| ZZ       | ZZ|  ZZZZZZ/|  ZZZZZZZ
|_______/ |__/ \_______/ \_______/| ZZ____/  \_______/|__//ZZZZZZ|__/ \______/  \____  ZZ
                                  | ZZ                   |______/               /ZZ  \ ZZ
                                  | ZZ                                         |  ZZZZZZ/
                                  |__/                                          \______/
`

// BuildText renders the complete terminal report for a league.
func BuildText(data *domain.LeagueData) string {
	var b strings.Builder
	writeHeader(&b, data)
	writeStandingsTable(&b, data)
	writeLeadersSection(&b, data)
	writeFunStatsSection(&b, data)
	writeRostersSection(&b, data)
	writeFooter(&b)
	return b.String()
}

func writeHeader(b *strings.Builder, data *domain.LeagueData) {
	b.WriteString(asciiHeader)
	b.WriteString("\n")

	name := data.League.Name
	if name == "" {
		name = "Fantasy League"
	}
	fmt.Fprintf(b, "🏟️ League: %s\n", name)
	fmt.Fprintf(b, "📅 Season: %s\n", data.League.Season)
	fmt.Fprintf(b, "⏰ Generated: %s\n", timeutil.FormatHeader(data.GeneratedAt))
	fmt.Fprintf(b, "📊 Current Week: %d\n\n", data.CurrentWeek)
}

func writeBanner(b *strings.Builder, title string) {
	b.WriteString("\n┌" + strings.Repeat("─", sectionWidth-2) + "┐\n")
	padding := sectionWidth - 2 - runeLen(title)
	left := padding / 2
	right := padding - left
	b.WriteString("│" + strings.Repeat(" ", left) + title + strings.Repeat(" ", right) + "│\n")
	b.WriteString("└" + strings.Repeat("─", sectionWidth-2) + "┘\n\n")
}

func writeStandingsTable(b *strings.Builder, data *domain.LeagueData) {
	writeBanner(b, "🏆 POWER RANKINGS 🏆")

	rule := strings.Repeat("─", sectionWidth+2)
	b.WriteString(">> POWER RANKINGS\n")
	b.WriteString(rule + "\n")
	b.WriteString("    Team Name      1  2  3  4  5  6  7  8  9 10 11 12 13 14 15 16  Record   Points\n")
	b.WriteString(rule + "\n")

	for i, team := range data.Standings() {
		rank := i + 1
		rankDisplay := fmt.Sprintf("#%2d", rank)
		if rank <= 3 {
			rankDisplay = fmt.Sprintf("#%d ", rank)
		}

		gameLog := buildGameLog(data.WeeklyResults(team.RosterID))
		fmt.Fprintf(b, "%s %-13s %s %6s %8.1f\n",
			rankDisplay, truncate(team.Team, 13), gameLog, team.Record(), team.PointsFor)
	}
	b.WriteString(rule + "\n")
}

// buildGameLog renders 16 weeks as colored blocks: green wins, red losses,
// yellow ties, hollow blocks for weeks without a game.
func buildGameLog(results []domain.WeekResult) string {
	var log strings.Builder
	for _, result := range results {
		switch result {
		case domain.ResultWin:
			log.WriteString(ansiGreen + "███" + ansiReset)
		case domain.ResultLoss:
			log.WriteString(ansiRed + "███" + ansiReset)
		case domain.ResultTie:
			log.WriteString(ansiYellow + "███" + ansiReset)
		default:
			log.WriteString("░░░")
		}
	}
	return log.String()
}

func writeLeadersSection(b *strings.Builder, data *domain.LeagueData) {
	writeBanner(b, "🌟 LEAGUE LEADERS 🌟")
	leaders := data.Leaders()

	if leaders.HighestScorer.Team != "" {
		fmt.Fprintf(b, "🔥 HIGHEST SCORER: %s\n", leaders.HighestScorer.Team)
		fmt.Fprintf(b, "   └─ %.1f total points\n\n", leaders.HighestScorer.PointsFor)
	}

	if leaders.MostConsistent != nil {
		fmt.Fprintf(b, "📈 MOST CONSISTENT: %s\n", leaders.MostConsistent.Team)
		fmt.Fprintf(b, "   └─ %.1f avg ± %.1f std dev\n\n",
			leaders.MostConsistent.Stats.Avg, leaders.MostConsistent.Stats.Std)
	}

	if leaders.MostVolatile != nil {
		fmt.Fprintf(b, "🎢 BOOM OR BUST: %s\n", leaders.MostVolatile.Team)
		fmt.Fprintf(b, "   └─ %.1f high, %.1f low (±%.1f)\n\n",
			leaders.MostVolatile.Stats.High, leaders.MostVolatile.Stats.Low, leaders.MostVolatile.Stats.Std)
	}

	if len(leaders.OverPerformers) > 0 {
		b.WriteString("🚀 OVER-PERFORMERS (Lucky with record vs points):\n")
		for _, perf := range top(leaders.OverPerformers, 3) {
			fmt.Fprintf(b, "   %s: %d-%d record (+%.1f wins above expected)\n",
				truncate(perf.Team, 25), perf.ActualWins, perf.GamesPlayed-perf.ActualWins, perf.Difference)
		}
		b.WriteString("\n")
	}

	if len(leaders.UnderPerformers) > 0 {
		b.WriteString("😤 UNDER-PERFORMERS (Unlucky with record vs points):\n")
		for _, perf := range top(leaders.UnderPerformers, 3) {
			fmt.Fprintf(b, "   %s: %d-%d record (%.1f wins below expected)\n",
				truncate(perf.Team, 25), perf.ActualWins, perf.GamesPlayed-perf.ActualWins, perf.Difference)
		}
		b.WriteString("\n")
	}

	if len(leaders.WeeklyHighs) > 0 {
		b.WriteString("🚀 WEEKLY HIGH SCORES:\n")
		weeks := make([]int, 0, len(leaders.WeeklyHighs))
		for week := range leaders.WeeklyHighs {
			weeks = append(weeks, week)
		}
		sort.Ints(weeks)
		for _, week := range weeks {
			if week > data.CurrentWeek {
				continue
			}
			high := leaders.WeeklyHighs[week]
			fmt.Fprintf(b, "   Week %2d: %s (%.1f pts)\n", week, truncate(high.Team, 20), high.Points)
		}
		b.WriteString("\n")
	}
}

func writeFunStatsSection(b *strings.Builder, data *domain.LeagueData) {
	writeBanner(b, "🤓 NERDY STATS 🤓")
	stats := data.FunStats()

	if stats.HasScores {
		fmt.Fprintf(b, "📊 League Average Score: %.1f points\n", stats.LeagueAverage)
		fmt.Fprintf(b, "📈 Teams Above Average: %d\n", stats.AboveAverage)
		fmt.Fprintf(b, "📉 Teams Below Average: %d\n\n", stats.BelowAverage)

		fmt.Fprintf(b, "🎯 League High Score: %.1f\n", stats.HighScore)
		fmt.Fprintf(b, "💀 League Low Score: %.1f\n", stats.LowScore)
		fmt.Fprintf(b, "📊 Score Range: %.1f points\n\n", stats.ScoreRange)
	}

	fmt.Fprintf(b, "⚔️ Total Matchups Played: %d\n", stats.TotalMatchups)
}

func writeRostersSection(b *strings.Builder, data *domain.LeagueData) {
	writeBanner(b, "👥 TEAM ROSTERS 👥")

	for _, team := range data.TeamRosters() {
		if !team.HasPlayers {
			fmt.Fprintf(b, ">> %s\n", strings.ToUpper(team.Team))
			b.WriteString(strings.Repeat("─", sectionWidth) + "\n")
			b.WriteString("No players found\n\n")
			continue
		}

		writeLineup(b, team)
		writeTaxi(b, team)
	}
}

func writeLineup(b *strings.Builder, team domain.TeamRoster) {
	starterLines := make([]string, 0, len(team.Starters))
	for _, slot := range team.Starters {
		starterLines = append(starterLines, formatSlot(slot))
	}
	benchLines := make([]string, 0, len(team.Bench))
	for _, slot := range team.Bench {
		benchLines = append(benchLines, formatSlot(slot))
	}

	title := fmt.Sprintf(">> STARTING LINEUP :: %s", strings.ToUpper(team.Team))
	if len(benchLines) > 0 {
		fmt.Fprintf(b, "%s>> BENCH :: %s\n", padRight(title, starterColumn), strings.ToUpper(team.Team))
	} else {
		b.WriteString(title + "\n")
	}

	writeColumnRule(b, len(benchLines) > 0)

	maxLines := len(starterLines)
	if len(benchLines) > maxLines {
		maxLines = len(benchLines)
	}
	for i := 0; i < maxLines; i++ {
		line := strings.Repeat(" ", starterColumn)
		if i < len(starterLines) {
			line = starterLines[i]
		}
		if i < len(benchLines) {
			line = padRight(line, starterColumn) + " " + benchLines[i]
		}
		b.WriteString(strings.TrimRight(line, " ") + "\n")
	}

	writeColumnRule(b, len(benchLines) > 0)

	projection := fmt.Sprintf("TEAM PROJECTION: %.1f pts", team.Projection)
	b.WriteString(projection + "\n\n")
}

func writeTaxi(b *strings.Builder, team domain.TeamRoster) {
	if len(team.Taxi) == 0 {
		return
	}

	fmt.Fprintf(b, ">> TAXI SQUAD :: %s\n", strings.ToUpper(team.Team))
	b.WriteString(strings.Repeat("─", starterColumn) + "\n")
	for _, slot := range team.Taxi {
		b.WriteString(formatSlot(slot) + "\n")
	}
	b.WriteString(strings.Repeat("─", starterColumn) + "\n\n")
}

func writeColumnRule(b *strings.Builder, withBench bool) {
	b.WriteString(strings.Repeat("─", starterColumn))
	if withBench {
		b.WriteString(" " + strings.Repeat("─", benchColumn))
	}
	b.WriteString("\n")
}

// formatSlot renders one lineup line: "POS  :: Name            (TEA)  12.3".
// Continuation lines (bench players sharing a position group) swap the
// position label and separator for spaces.
func formatSlot(slot domain.RosterSlot) string {
	name := truncate(slot.Name, nameWidth)
	if slot.IR {
		name = truncate(name+" (IR)", nameWidth)
	}
	team := slot.NFLTeam
	if slot.Empty {
		team = "---"
	}

	if slot.Position == "" {
		return fmt.Sprintf("%4s    %-15s (%3s) %5.1f", "", name, team, slot.Points)
	}
	return fmt.Sprintf("%-4s :: %-15s (%3s) %5.1f", slot.Position, name, team, slot.Points)
}

func writeFooter(b *strings.Builder) {
	b.WriteString("\n\n┌" + strings.Repeat("─", sectionWidth-2) + "┐\n")
	b.WriteString("│                     Generated by sleeper-log v1.0 🔥                       │\n")
	b.WriteString("│                        Keep grinding, fantasy legends! 🏆                   │\n")
	b.WriteString("└" + strings.Repeat("─", sectionWidth-2) + "┘\n\n")
}

func top[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}

// truncate shortens a string to at most n runes.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func padRight(s string, width int) string {
	if diff := width - runeLen(s); diff > 0 {
		return s + strings.Repeat(" ", diff)
	}
	return s
}

func runeLen(s string) int {
	return len([]rune(s))
}
