package sleeper

import "sleeper-log/internal/domain"

func mapLeague(l leagueResponse) domain.League {
	return domain.League{
		ID:     l.LeagueID,
		Name:   l.Name,
		Season: l.Season,
	}
}

func mapState(s stateResponse) domain.SeasonState {
	return domain.SeasonState{
		Week:   s.Week,
		Season: s.Season,
	}
}

func mapUser(u userResponse) domain.User {
	return domain.User{
		ID:          u.UserID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		TeamName:    u.Metadata.TeamName,
	}
}

func mapRoster(r rosterResponse) domain.Roster {
	return domain.Roster{
		RosterID:      r.RosterID,
		OwnerID:       r.OwnerID,
		Wins:          r.Settings.Wins,
		Losses:        r.Settings.Losses,
		Ties:          r.Settings.Ties,
		PointsAgainst: combinePoints(r.Settings.FptsAgainst, r.Settings.FptsAgainstDecimal),
		Players:       r.Players,
		Starters:      r.Starters,
		Taxi:          r.Taxi,
		Reserve:       r.Reserve,
	}
}

func mapMatchup(m matchupResponse) domain.Matchup {
	return domain.Matchup{
		RosterID:     m.RosterID,
		MatchupID:    m.MatchupID,
		Points:       m.Points,
		PlayerPoints: m.PlayersPoints,
	}
}

func mapPlayer(p playerResponse) domain.Player {
	return domain.Player{
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Position:  p.Position,
		Team:      p.Team,
	}
}

func mapLeagueSummary(l leagueSummaryResponse) domain.LeagueSummary {
	return domain.LeagueSummary{
		ID:     l.LeagueID,
		Name:   l.Name,
		Season: l.Season,
	}
}

// combinePoints joins Sleeper's split integer/decimal point fields, where the
// decimal part is expressed in hundredths.
func combinePoints(whole, decimal int) float64 {
	return float64(whole) + float64(decimal)/100
}
