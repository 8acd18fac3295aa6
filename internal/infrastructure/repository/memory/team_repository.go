package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/soccerstats/dashboard-api/internal/domain/team"
)

type TeamRepository struct {
	mu    sync.RWMutex
	teams []team.Team
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	out := make([]team.Team, len(teams))
	copy(out, teams)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})

	return &TeamRepository{teams: out}
}

func (r *TeamRepository) List(_ context.Context) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, len(r.teams))
	copy(out, r.teams)

	return out, nil
}

func (r *TeamRepository) GetByID(_ context.Context, teamID int64) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.teams {
		if item.ID == teamID {
			return item, true, nil
		}
	}

	return team.Team{}, false, nil
}
