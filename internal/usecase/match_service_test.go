package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/soccerstats/dashboard-api/internal/domain/match"
	"github.com/soccerstats/dashboard-api/internal/domain/team"
	"github.com/soccerstats/dashboard-api/internal/domain/teamstats"
)

func TestMatchService_ListRecent(t *testing.T) {
	t.Parallel()

	kickoff := time.Date(2025, 6, 14, 20, 0, 0, 0, time.UTC)
	matches := make([]match.Match, 0, 4)
	for i := 0; i < 4; i++ {
		matches = append(matches, match.Match{
			ID:   int64(i + 1),
			Date: kickoff.Add(time.Duration(i) * 24 * time.Hour),
		})
	}
	service := NewMatchService(
		&stubMatchRepository{matches: matches},
		&stubTeamRepository{},
		&stubTeamStatsRepository{},
		3,
	)

	got, err := service.ListRecent(context.Background())
	if err != nil {
		t.Fatalf("ListRecent error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected list capped at 3, got %d", len(got))
	}
	if got[0].ID != 4 || got[1].ID != 3 {
		t.Fatalf("expected newest first, got %+v", got)
	}
}

func TestMatchService_TeamStatsByMatch(t *testing.T) {
	t.Parallel()

	service := NewMatchService(
		&stubMatchRepository{matches: []match.Match{{ID: 1, HomeTeamID: 10, AwayTeamID: 20}}},
		&stubTeamRepository{teams: []team.Team{
			{ID: 10, Name: "Chelsea", Logo: "chelsea.png"},
			{ID: 20, Name: "PSG", Logo: "psg.png"},
		}},
		&stubTeamStatsRepository{rows: []teamstats.MatchStat{
			{TeamID: 10, MatchID: 1, Shots: 12, PossessionPct: 45},
			{TeamID: 20, MatchID: 1, Shots: 9, PossessionPct: 55},
		}},
		0,
	)

	got, err := service.TeamStatsByMatch(context.Background(), 1)
	if err != nil {
		t.Fatalf("TeamStatsByMatch error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected the paired rows, got %+v", got)
	}
	if got[0].TeamName != "Chelsea" || got[0].Stat.Shots != 12 {
		t.Fatalf("unexpected first line: %+v", got[0])
	}
	if got[1].TeamName != "PSG" || got[1].Stat.PossessionPct != 55 {
		t.Fatalf("unexpected second line: %+v", got[1])
	}
}

func TestMatchService_TeamStatsByMatch_UnknownMatch(t *testing.T) {
	t.Parallel()

	service := NewMatchService(
		&stubMatchRepository{},
		&stubTeamRepository{},
		&stubTeamStatsRepository{},
		0,
	)

	_, err := service.TeamStatsByMatch(context.Background(), 42)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
