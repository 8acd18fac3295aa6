package usecase

import (
	"context"
	"fmt"

	"github.com/soccerstats/dashboard-api/internal/domain/leaderboard"
	"github.com/soccerstats/dashboard-api/internal/platform/cache"
)

// CachedLeaderboards is a read-through decorator over a Leaderboards
// implementation. Keys combine category, scope and limit; expiry is the
// store's fixed TTL. The inner service stays cache-free and side-effect
// free, so serving a cached result is indistinguishable from recomputing
// it inside the TTL window.
type CachedLeaderboards struct {
	inner Leaderboards
	store *cache.Store
}

func NewCachedLeaderboards(inner Leaderboards, store *cache.Store) *CachedLeaderboards {
	return &CachedLeaderboards{inner: inner, store: store}
}

func (c *CachedLeaderboards) TopPlayersByMatch(ctx context.Context, matchID int64, limit int) ([]PlayerRow, error) {
	key := fmt.Sprintf("leaderboard:%s:match=%d:limit=%d", leaderboard.CategoryGoalContribution, matchID, limit)
	return cachedLoad(ctx, c.store, key, func(ctx context.Context) ([]PlayerRow, error) {
		return c.inner.TopPlayersByMatch(ctx, matchID, limit)
	})
}

func (c *CachedLeaderboards) TopPlayersOverall(ctx context.Context, limit int) ([]PlayerRow, error) {
	key := fmt.Sprintf("leaderboard:%s:all:limit=%d", leaderboard.CategoryGoalContribution, limit)
	return cachedLoad(ctx, c.store, key, func(ctx context.Context) ([]PlayerRow, error) {
		return c.inner.TopPlayersOverall(ctx, limit)
	})
}

func (c *CachedLeaderboards) TopGoalkeepers(ctx context.Context, limit int) ([]KeeperRow, error) {
	key := fmt.Sprintf("leaderboard:%s:all:limit=%d", leaderboard.CategorySavePct, limit)
	return cachedLoad(ctx, c.store, key, func(ctx context.Context) ([]KeeperRow, error) {
		return c.inner.TopGoalkeepers(ctx, limit)
	})
}

func (c *CachedLeaderboards) MostAggressiveTeams(ctx context.Context, limit int) ([]TeamRow, error) {
	return c.cachedTeams(ctx, leaderboard.CategoryAggression, limit, c.inner.MostAggressiveTeams)
}

func (c *CachedLeaderboards) BestDefensiveTeams(ctx context.Context, limit int) ([]TeamRow, error) {
	return c.cachedTeams(ctx, leaderboard.CategoryDefense, limit, c.inner.BestDefensiveTeams)
}

func (c *CachedLeaderboards) BestAttackingTeams(ctx context.Context, limit int) ([]TeamRow, error) {
	return c.cachedTeams(ctx, leaderboard.CategoryAttack, limit, c.inner.BestAttackingTeams)
}

func (c *CachedLeaderboards) cachedTeams(
	ctx context.Context,
	category leaderboard.Category,
	limit int,
	load func(context.Context, int) ([]TeamRow, error),
) ([]TeamRow, error) {
	key := fmt.Sprintf("leaderboard:%s:all:limit=%d", category, limit)
	return cachedLoad(ctx, c.store, key, func(ctx context.Context) ([]TeamRow, error) {
		return load(ctx, limit)
	})
}

func cachedLoad[T any](ctx context.Context, store *cache.Store, key string, load func(context.Context) (T, error)) (T, error) {
	value, err := store.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return load(ctx)
	})
	if err != nil {
		var zero T
		return zero, err
	}

	typed, ok := value.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("unexpected cached value type for key %s", key)
	}
	return typed, nil
}
