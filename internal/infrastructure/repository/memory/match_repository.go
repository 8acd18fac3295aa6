package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/soccerstats/dashboard-api/internal/domain/match"
)

type MatchRepository struct {
	mu      sync.RWMutex
	matches []match.Match
}

func NewMatchRepository(matches []match.Match) *MatchRepository {
	out := make([]match.Match, len(matches))
	copy(out, matches)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})

	return &MatchRepository{matches: out}
}

func (r *MatchRepository) ListRecent(_ context.Context, limit int) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0, len(r.matches))
	for i := len(r.matches) - 1; i >= 0; i-- {
		out = append(out, r.matches[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}

	return out, nil
}

func (r *MatchRepository) ListAll(_ context.Context) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, len(r.matches))
	copy(out, r.matches)

	return out, nil
}

func (r *MatchRepository) GetByID(_ context.Context, matchID int64) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.matches {
		if item.ID == matchID {
			return item, true, nil
		}
	}

	return match.Match{}, false, nil
}
