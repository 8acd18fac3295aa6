package memory

import (
	"context"
	"sync"

	"github.com/soccerstats/dashboard-api/internal/domain/playerstats"
)

type PlayerStatsRepository struct {
	mu   sync.RWMutex
	rows []playerstats.MatchStat
}

func NewPlayerStatsRepository(rows []playerstats.MatchStat) *PlayerStatsRepository {
	out := make([]playerstats.MatchStat, len(rows))
	copy(out, rows)

	return &PlayerStatsRepository{rows: out}
}

func (r *PlayerStatsRepository) ListAll(_ context.Context) ([]playerstats.MatchStat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]playerstats.MatchStat, len(r.rows))
	copy(out, r.rows)

	return out, nil
}

func (r *PlayerStatsRepository) ListByMatch(_ context.Context, matchID int64) ([]playerstats.MatchStat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]playerstats.MatchStat, 0, len(r.rows))
	for _, row := range r.rows {
		if row.MatchID == matchID {
			out = append(out, row)
		}
	}

	return out, nil
}
