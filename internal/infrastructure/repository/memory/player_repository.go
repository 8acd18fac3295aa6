package memory

import (
	"context"
	"sync"

	"github.com/soccerstats/dashboard-api/internal/domain/player"
)

type PlayerRepository struct {
	mu      sync.RWMutex
	players []player.Player
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	out := make([]player.Player, len(players))
	copy(out, players)

	return &PlayerRepository{players: out}
}

func (r *PlayerRepository) List(_ context.Context) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, len(r.players))
	copy(out, r.players)

	return out, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID int64) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.players {
		if item.ID == playerID {
			return item, true, nil
		}
	}

	return player.Player{}, false, nil
}
