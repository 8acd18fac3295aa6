package leaderboard

import (
	"testing"
	"time"

	"github.com/soccerstats/dashboard-api/internal/domain/match"
	"github.com/soccerstats/dashboard-api/internal/domain/playerstats"
	"github.com/soccerstats/dashboard-api/internal/domain/teamstats"
)

func TestAggregatePlayers(t *testing.T) {
	t.Parallel()

	rows := []playerstats.MatchStat{
		{PlayerID: 1, MatchID: 10, Goals: 2, Assists: 0},
		{PlayerID: 1, MatchID: 11, Goals: 1, Assists: 2},
		{PlayerID: 2, MatchID: 10, Goals: 0, Assists: 1},
	}

	got := AggregatePlayers(rows)
	if len(got) != 2 {
		t.Fatalf("expected 2 players, got %d", len(got))
	}
	if got[0].PlayerID != 1 || got[0].Goals != 3 || got[0].Assists != 2 || got[0].Matches != 2 {
		t.Fatalf("unexpected totals for player 1: %+v", got[0])
	}
	if got[0].GoalContribution() != 5 {
		t.Fatalf("expected G/A 5, got %d", got[0].GoalContribution())
	}
	if got[1].PlayerID != 2 || got[1].Matches != 1 {
		t.Fatalf("unexpected totals for player 2: %+v", got[1])
	}
}

func TestAggregatePlayers_EmptyInput(t *testing.T) {
	t.Parallel()

	if got := AggregatePlayers(nil); len(got) != 0 {
		t.Fatalf("expected empty output, got %+v", got)
	}
}

func TestAggregateKeepers_ExcludesZeroSaves(t *testing.T) {
	t.Parallel()

	rows := []playerstats.MatchStat{
		{PlayerID: 1, MatchID: 10, Keeper: &playerstats.KeeperStat{Saves: 4, GoalsConceded: 1}},
		{PlayerID: 1, MatchID: 11, Keeper: &playerstats.KeeperStat{Saves: 2, GoalsConceded: 0}},
		// Outfield row, no keeper sub-record.
		{PlayerID: 2, MatchID: 10, Goals: 1},
		// Keeper that never made a save is excluded regardless of
		// goals conceded.
		{PlayerID: 3, MatchID: 11, Keeper: &playerstats.KeeperStat{Saves: 0, GoalsConceded: 5}},
	}

	got := AggregateKeepers(rows)
	if len(got) != 1 {
		t.Fatalf("expected 1 keeper, got %+v", got)
	}
	if got[0].PlayerID != 1 || got[0].Saves != 6 || got[0].GoalsConceded != 1 || got[0].Matches != 2 {
		t.Fatalf("unexpected keeper totals: %+v", got[0])
	}
}

func TestAggregateTeams(t *testing.T) {
	t.Parallel()

	kickoff := time.Date(2025, 6, 15, 18, 0, 0, 0, time.UTC)
	matches := []match.Match{
		{ID: 10, HomeTeamID: 1, AwayTeamID: 2, HomeScore: 2, AwayScore: 1, Date: kickoff},
		{ID: 11, HomeTeamID: 2, AwayTeamID: 1, HomeScore: 0, AwayScore: 0, Date: kickoff.Add(72 * time.Hour)},
	}
	rows := []teamstats.MatchStat{
		{TeamID: 1, MatchID: 10, Tackles: 10, PossessionPct: 60, PassPct: 85, Offsides: 2, Shots: 12},
		{TeamID: 2, MatchID: 10, Tackles: 14, PossessionPct: 40, PassPct: 78, Offsides: 3, Shots: 6},
		{TeamID: 1, MatchID: 11, Tackles: 8, PossessionPct: 50, PassPct: 81, Offsides: 1, Shots: 8},
		{TeamID: 2, MatchID: 11, Tackles: 9, PossessionPct: 50, PassPct: 80, Offsides: 0, Shots: 10},
	}

	got := AggregateTeams(rows, matches)
	if len(got) != 2 {
		t.Fatalf("expected 2 teams, got %d", len(got))
	}

	teamOne := got[0]
	if teamOne.TeamID != 1 {
		t.Fatalf("expected team 1 first, got %+v", teamOne)
	}
	// Home win in match 10 (2-1), away draw in match 11 (0-0).
	if teamOne.Matches != 2 || teamOne.Wins != 1 || teamOne.GoalsScored != 2 || teamOne.GoalsConceded != 1 {
		t.Fatalf("unexpected derived results for team 1: %+v", teamOne)
	}
	// Offsides against team 1 come from team 2's rows: 3 + 0.
	if teamOne.OffsidesAgainst != 3 {
		t.Fatalf("expected offsides against 3, got %d", teamOne.OffsidesAgainst)
	}
	if teamOne.Tackles != 18 {
		t.Fatalf("expected summed tackles 18, got %d", teamOne.Tackles)
	}
	// Percentages are averaged, never summed.
	if teamOne.AvgPossessionPct != 55 || teamOne.AvgPassPct != 83 {
		t.Fatalf("unexpected averages for team 1: %+v", teamOne)
	}
	if teamOne.AvgShots != 10 {
		t.Fatalf("expected avg shots 10, got %v", teamOne.AvgShots)
	}
}

func TestAggregateTeams_SkipsRowsWithoutMatch(t *testing.T) {
	t.Parallel()

	rows := []teamstats.MatchStat{{TeamID: 1, MatchID: 99, Tackles: 5}}
	if got := AggregateTeams(rows, nil); len(got) != 0 {
		t.Fatalf("expected rows without a match to be skipped, got %+v", got)
	}
}
