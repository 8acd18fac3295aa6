package memory

import (
	"context"
	"sync"

	"github.com/soccerstats/dashboard-api/internal/domain/teamstats"
)

type TeamStatsRepository struct {
	mu   sync.RWMutex
	rows []teamstats.MatchStat
}

func NewTeamStatsRepository(rows []teamstats.MatchStat) *TeamStatsRepository {
	out := make([]teamstats.MatchStat, len(rows))
	copy(out, rows)

	return &TeamStatsRepository{rows: out}
}

func (r *TeamStatsRepository) ListAll(_ context.Context) ([]teamstats.MatchStat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]teamstats.MatchStat, len(r.rows))
	copy(out, r.rows)

	return out, nil
}

func (r *TeamStatsRepository) ListByMatch(_ context.Context, matchID int64) ([]teamstats.MatchStat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]teamstats.MatchStat, 0, 2)
	for _, row := range r.rows {
		if row.MatchID == matchID {
			out = append(out, row)
		}
	}

	return out, nil
}

func (r *TeamStatsRepository) ListByTeam(_ context.Context, teamID int64) ([]teamstats.MatchStat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]teamstats.MatchStat, 0, len(r.rows))
	for _, row := range r.rows {
		if row.TeamID == teamID {
			out = append(out, row)
		}
	}

	return out, nil
}
