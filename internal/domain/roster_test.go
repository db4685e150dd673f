package domain

import "testing"

func rosterLeague() *LeagueData {
	data := testLeague()
	data.Players = map[string]Player{
		"qb1": {FirstName: "Josh", LastName: "Allen", Position: "QB", Team: "BUF"},
		"rb1": {FirstName: "Bijan", LastName: "Robinson", Position: "RB", Team: "ATL"},
		"rb2": {FirstName: "Breece", LastName: "Hall", Position: "RB", Team: "NYJ"},
		"wr1": {FirstName: "Justin", LastName: "Jefferson", Position: "WR", Team: "MIN"},
		"wr2": {FirstName: "CeeDee", LastName: "Lamb", Position: "WR", Team: "DAL"},
		"te1": {FirstName: "Sam", LastName: "LaPorta", Position: "TE", Team: "DET"},
		"fx1": {FirstName: "Puka", LastName: "Nacua", Position: "WR", Team: "LAR"},
		"k1":  {FirstName: "Justin", LastName: "Tucker", Position: "K", Team: "BAL"},
		"dst": {FirstName: "San Francisco", LastName: "49ers", Position: "DEF", Team: "SF"},
		"bn1": {FirstName: "Jaylen", LastName: "Warren", Position: "RB", Team: "PIT"},
		"bn2": {FirstName: "Romeo", LastName: "Doubs", Position: "WR", Team: "GB"},
		"ir1": {FirstName: "Nick", LastName: "Chubb", Position: "RB", Team: "CLE"},
		"tx1": {FirstName: "Will", LastName: "Shipley", Position: "RB", Team: "PHI"},
	}

	starters := []string{"qb1", "rb1", "rb2", "wr1", "wr2", "te1", "fx1", "k1", "dst"}
	players := append(append([]string{}, starters...), "bn1", "bn2", "tx1")
	data.Rosters[0] = Roster{
		RosterID: 1,
		OwnerID:  "u1",
		Wins:     2,
		Ties:     1,
		Players:  players,
		Starters: starters,
		Taxi:     []string{"tx1"},
		Reserve:  []string{"ir1"},
	}

	// Week 3 is the "last week" for current week 4.
	data.Matchups[3][0].PlayerPoints = map[string]float64{
		"qb1": 24.5, "rb1": 18.2, "rb2": 9.1, "wr1": 21.0, "wr2": 15.4,
		"te1": 7.6, "fx1": 12.3, "k1": 8.0, "dst": 14.0, "bn1": 6.5, "ir1": 0,
	}
	return data
}

func TestShapeStarters(t *testing.T) {
	data := rosterLeague()
	rosters := data.TeamRosters()
	team := rosters[0]

	if !team.HasPlayers {
		t.Fatal("expected roster to have players")
	}
	if len(team.Starters) != 9 {
		t.Fatalf("expected 9 starters, got %d", len(team.Starters))
	}

	wantPositions := []string{"QB", "RB", "RB", "WR", "WR", "TE", "FLEX", "K", "DST"}
	for i, want := range wantPositions {
		if team.Starters[i].Position != want {
			t.Fatalf("slot %d: expected %s, got %s", i, want, team.Starters[i].Position)
		}
	}

	if team.Starters[0].Name != "Josh Allen" || team.Starters[0].NFLTeam != "BUF" {
		t.Fatalf("unexpected QB slot %+v", team.Starters[0])
	}
	almostEqual(t, team.Starters[0].Points, 24.5, "QB last week points")
	almostEqual(t, team.Projection, 130.1, "team projection")
}

func TestShapeStartersEmptySlot(t *testing.T) {
	data := rosterLeague()
	data.Rosters[0].Starters[7] = ""
	team := data.TeamRosters()[0]

	slot := team.Starters[7]
	if !slot.Empty || slot.Name != "[Empty]" || slot.NFLTeam != "---" {
		t.Fatalf("unexpected empty slot %+v", slot)
	}
	if slot.Position != "K" {
		t.Fatalf("expected empty slot to keep K label, got %s", slot.Position)
	}
}

func TestShapeBenchGroupsAndIR(t *testing.T) {
	data := rosterLeague()
	team := data.TeamRosters()[0]

	if len(team.Bench) != 3 {
		t.Fatalf("expected 3 bench slots (2 bench + 1 IR), got %d", len(team.Bench))
	}

	// RB group first: bn1 leads with the label, IR player continues unlabeled.
	if team.Bench[0].Position != "RB" || team.Bench[0].Name != "Jaylen Warren" {
		t.Fatalf("unexpected first bench slot %+v", team.Bench[0])
	}
	if team.Bench[1].Position != "" || team.Bench[1].Name != "Nick Chubb" || !team.Bench[1].IR {
		t.Fatalf("expected IR continuation slot, got %+v", team.Bench[1])
	}
	if team.Bench[2].Position != "WR" || team.Bench[2].Name != "Romeo Doubs" {
		t.Fatalf("unexpected WR bench slot %+v", team.Bench[2])
	}
	almostEqual(t, team.Bench[0].Points, 6.5, "bench points")
}

func TestShapeTaxi(t *testing.T) {
	data := rosterLeague()
	team := data.TeamRosters()[0]

	if len(team.Taxi) != 1 {
		t.Fatalf("expected 1 taxi slot, got %d", len(team.Taxi))
	}
	if team.Taxi[0].Name != "Will Shipley" || team.Taxi[0].Position != "RB" {
		t.Fatalf("unexpected taxi slot %+v", team.Taxi[0])
	}
}

func TestShapeRosterWithoutPlayers(t *testing.T) {
	data := testLeague()
	team := data.TeamRosters()[0]

	if team.HasPlayers {
		t.Fatal("expected HasPlayers false for empty roster")
	}
	if len(team.Starters) != 0 || len(team.Bench) != 0 {
		t.Fatal("expected no shaped slots for empty roster")
	}
}

func TestLastWeekPointsFirstWeek(t *testing.T) {
	data := rosterLeague()
	data.CurrentWeek = 1

	team := data.TeamRosters()[0]
	almostEqual(t, team.Projection, 0, "projection before any games")
}
