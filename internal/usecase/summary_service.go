package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
)

// TournamentSummary bundles every leaderboard for the tournament page so
// the presentation layer needs a single round trip.
type TournamentSummary struct {
	TopPlayers     []PlayerRow
	TopGoalkeepers []KeeperRow
	MostAggressive []TeamRow
	BestDefensive  []TeamRow
	BestAttacking  []TeamRow
}

const summaryWorkerCount = 5

type SummaryService struct {
	leaderboards Leaderboards
}

func NewSummaryService(leaderboards Leaderboards) *SummaryService {
	return &SummaryService{leaderboards: leaderboards}
}

// Get computes the five leaderboards concurrently. Each computation is a
// pure read, so failures are independent; the first error wins and the
// rest are discarded.
func (s *SummaryService) Get(ctx context.Context, limit int) (TournamentSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SummaryService.Get")
	defer span.End()

	var summary TournamentSummary
	if limit <= 0 {
		return summary, nil
	}

	pool, err := ants.NewPool(summaryWorkerCount)
	if err != nil {
		return TournamentSummary{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var (
		workers  sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	run := func(task func() error) {
		workers.Add(1)
		submitErr := pool.Submit(func() {
			defer workers.Done()
			if err := task(); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		})
		if submitErr != nil {
			workers.Done()
			mu.Lock()
			if firstErr == nil {
				firstErr = fmt.Errorf("submit summary task: %w", submitErr)
			}
			mu.Unlock()
		}
	}

	run(func() (err error) {
		summary.TopPlayers, err = s.leaderboards.TopPlayersOverall(ctx, limit)
		return err
	})
	run(func() (err error) {
		summary.TopGoalkeepers, err = s.leaderboards.TopGoalkeepers(ctx, limit)
		return err
	})
	run(func() (err error) {
		summary.MostAggressive, err = s.leaderboards.MostAggressiveTeams(ctx, limit)
		return err
	})
	run(func() (err error) {
		summary.BestDefensive, err = s.leaderboards.BestDefensiveTeams(ctx, limit)
		return err
	})
	run(func() (err error) {
		summary.BestAttacking, err = s.leaderboards.BestAttackingTeams(ctx, limit)
		return err
	})

	workers.Wait()
	if firstErr != nil {
		return TournamentSummary{}, firstErr
	}
	return summary, nil
}
