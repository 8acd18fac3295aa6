package memory

import (
	"context"
	"testing"
)

func TestMatchRepository_ListRecent(t *testing.T) {
	t.Parallel()

	repo := NewMatchRepository(SeedMatches())

	matches, err := repo.ListRecent(context.Background(), 3)
	if err != nil {
		t.Fatalf("ListRecent: %v", err)
	}
	if len(matches) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(matches))
	}
	for i := 1; i < len(matches); i++ {
		prev, cur := matches[i-1], matches[i]
		if cur.Date.After(prev.Date) {
			t.Fatalf("matches not in descending date order: %v then %v", prev.Date, cur.Date)
		}
	}
}

func TestMatchRepository_GetByID(t *testing.T) {
	t.Parallel()

	repo := NewMatchRepository(SeedMatches())

	m, ok, err := repo.GetByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if !ok {
		t.Fatalf("expected match 1 to exist")
	}
	if m.HomeTeam != "River Plate" {
		t.Fatalf("unexpected home team: %s", m.HomeTeam)
	}

	_, ok, err = repo.GetByID(context.Background(), 999)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if ok {
		t.Fatalf("expected match 999 to be missing")
	}
}

func TestTeamStatsRepository_ListByMatch(t *testing.T) {
	t.Parallel()

	repo := NewTeamStatsRepository(SeedTeamStats())

	for _, m := range SeedMatches() {
		rows, err := repo.ListByMatch(context.Background(), m.ID)
		if err != nil {
			t.Fatalf("ListByMatch(%d): %v", m.ID, err)
		}
		if len(rows) != 2 {
			t.Fatalf("match %d: expected 2 team stat rows, got %d", m.ID, len(rows))
		}
	}
}

func TestSeedPlayerStats_KeeperRowsConsistent(t *testing.T) {
	t.Parallel()

	keepers := map[int64]bool{2: true, 4: true, 6: true, 8: true}
	for _, row := range SeedPlayerStats() {
		if keepers[row.PlayerID] && row.Keeper == nil {
			t.Fatalf("keeper player %d match %d missing keeper record", row.PlayerID, row.MatchID)
		}
		if !keepers[row.PlayerID] && row.Keeper != nil {
			t.Fatalf("outfield player %d match %d has keeper record", row.PlayerID, row.MatchID)
		}
	}
}

func TestTeamRepository_ListSortedByName(t *testing.T) {
	t.Parallel()

	repo := NewTeamRepository(SeedTeams())

	teams, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(teams) != 4 {
		t.Fatalf("expected 4 teams, got %d", len(teams))
	}
	for i := 1; i < len(teams); i++ {
		if teams[i-1].Name > teams[i].Name {
			t.Fatalf("teams not sorted by name: %s before %s", teams[i-1].Name, teams[i].Name)
		}
	}
}
