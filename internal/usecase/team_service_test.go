package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/soccerstats/dashboard-api/internal/domain/match"
	"github.com/soccerstats/dashboard-api/internal/domain/team"
	"github.com/soccerstats/dashboard-api/internal/domain/teamstats"
	"github.com/soccerstats/dashboard-api/internal/platform/cache"
)

func newTeamFixture() *TeamService {
	kickoff := time.Date(2025, 6, 20, 17, 0, 0, 0, time.UTC)
	matches := &stubMatchRepository{matches: []match.Match{
		// Stored out of date order on purpose.
		{ID: 2, HomeTeamID: 20, AwayTeamID: 10, HomeScore: 1, AwayScore: 4, Date: kickoff.Add(96 * time.Hour)},
		{ID: 1, HomeTeamID: 10, AwayTeamID: 20, HomeScore: 0, AwayScore: 2, Date: kickoff},
	}}
	teams := &stubTeamRepository{teams: []team.Team{
		{ID: 10, Name: "Fluminense", Logo: "flu.png"},
		{ID: 20, Name: "Al Hilal", Logo: "hilal.png"},
	}}
	stats := &stubTeamStatsRepository{rows: []teamstats.MatchStat{
		{TeamID: 10, MatchID: 1, PossessionPct: 60, PassPct: 88, Shots: 10, Corners: 3},
		{TeamID: 20, MatchID: 1, PossessionPct: 40, PassPct: 70, Shots: 8, Corners: 4},
		{TeamID: 10, MatchID: 2, PossessionPct: 50, PassPct: 84, Shots: 16, Corners: 7},
		{TeamID: 20, MatchID: 2, PossessionPct: 50, PassPct: 72, Shots: 6, Corners: 2},
	}}
	return NewTeamService(teams, matches, stats)
}

func TestTeamService_Overview(t *testing.T) {
	t.Parallel()

	service := newTeamFixture()

	got, err := service.Overview(context.Background(), 10)
	if err != nil {
		t.Fatalf("Overview error: %v", err)
	}
	if got.Name != "Fluminense" || got.Matches != 2 {
		t.Fatalf("unexpected overview: %+v", got)
	}
	// Lost 0-2 at home, won 4-1 away.
	if got.Wins != 1 || got.GoalsScored != 4 || got.GoalsConceded != 3 {
		t.Fatalf("unexpected derived results: %+v", got)
	}
	if got.AvgPossessionPct != 55 || got.AvgPassPct != 86 || got.AvgShots != 13 {
		t.Fatalf("unexpected averages: %+v", got)
	}
	if got.Corners != 10 {
		t.Fatalf("expected summed corners 10, got %d", got.Corners)
	}
}

func TestTeamService_Overview_UnknownTeam(t *testing.T) {
	t.Parallel()

	service := newTeamFixture()

	_, err := service.Overview(context.Background(), 404)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTeamService_Overview_NoMatchesIsZeroValue(t *testing.T) {
	t.Parallel()

	service := NewTeamService(
		&stubTeamRepository{teams: []team.Team{{ID: 30, Name: "Auckland City"}}},
		&stubMatchRepository{},
		&stubTeamStatsRepository{},
	)

	got, err := service.Overview(context.Background(), 30)
	if err != nil {
		t.Fatalf("empty scope must not error: %v", err)
	}
	if got.Matches != 0 || got.GoalsScored != 0 || got.Name != "Auckland City" {
		t.Fatalf("expected zero-value overview, got %+v", got)
	}
}

func TestTeamService_GoalsByMatch_Chronological(t *testing.T) {
	t.Parallel()

	service := newTeamFixture()

	got, err := service.GoalsByMatch(context.Background(), 10)
	if err != nil {
		t.Fatalf("GoalsByMatch error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 points, got %+v", got)
	}
	// Oldest match first regardless of storage order.
	if got[0].MatchNumber != 1 || got[0].MatchID != 1 || got[0].GoalsScored != 0 {
		t.Fatalf("unexpected first point: %+v", got[0])
	}
	if got[1].MatchNumber != 2 || got[1].MatchID != 2 || got[1].GoalsScored != 4 {
		t.Fatalf("unexpected second point: %+v", got[1])
	}
}

func TestTeamService_ListTeams(t *testing.T) {
	t.Parallel()

	service := newTeamFixture()

	got, err := service.ListTeams(context.Background())
	if err != nil {
		t.Fatalf("ListTeams error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 teams, got %+v", got)
	}
}

func TestTeamService_ListTeams_Cached(t *testing.T) {
	t.Parallel()

	teams := &stubTeamRepository{teams: []team.Team{{ID: 10, Name: "Fluminense"}}}
	service := NewTeamService(teams, &stubMatchRepository{}, &stubTeamStatsRepository{}).
		WithCache(cache.NewStore(time.Minute))

	for i := 0; i < 3; i++ {
		got, err := service.ListTeams(context.Background())
		if err != nil {
			t.Fatalf("ListTeams error: %v", err)
		}
		if len(got) != 1 {
			t.Fatalf("expected 1 team, got %+v", got)
		}
	}
	if teams.listCalls != 1 {
		t.Fatalf("expected one repository hit, got %d", teams.listCalls)
	}
}
