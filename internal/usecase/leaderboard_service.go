package usecase

import (
	"context"
	"fmt"
	"math"

	"github.com/soccerstats/dashboard-api/internal/domain/leaderboard"
	"github.com/soccerstats/dashboard-api/internal/domain/match"
	"github.com/soccerstats/dashboard-api/internal/domain/player"
	"github.com/soccerstats/dashboard-api/internal/domain/playerstats"
	"github.com/soccerstats/dashboard-api/internal/domain/team"
	"github.com/soccerstats/dashboard-api/internal/domain/teamstats"
)

// PlayerRow is one G/A leaderboard entry with display metadata resolved.
type PlayerRow struct {
	PlayerID         int64
	Name             string
	TeamName         string
	Logo             string
	Matches          int
	Goals            int
	Assists          int
	GoalContribution int
}

// KeeperRow is one save-percentage leaderboard entry. SavePct is rounded
// to two decimals, matching the documented formula output.
type KeeperRow struct {
	PlayerID      int64
	Name          string
	TeamName      string
	Logo          string
	Matches       int
	Saves         int
	GoalsConceded int
	SavePct       float64
}

// TeamRow is one team leaderboard entry. Totals carries the aggregated
// counters that support the score so presentation can show them.
type TeamRow struct {
	TeamID int64
	Name   string
	Logo   string
	Score  float64
	Totals leaderboard.TeamTotals
}

// Leaderboards is the read side every leaderboard consumer depends on.
// CachedLeaderboards decorates it; handlers only see the interface.
type Leaderboards interface {
	TopPlayersByMatch(ctx context.Context, matchID int64, limit int) ([]PlayerRow, error)
	TopPlayersOverall(ctx context.Context, limit int) ([]PlayerRow, error)
	TopGoalkeepers(ctx context.Context, limit int) ([]KeeperRow, error)
	MostAggressiveTeams(ctx context.Context, limit int) ([]TeamRow, error)
	BestDefensiveTeams(ctx context.Context, limit int) ([]TeamRow, error)
	BestAttackingTeams(ctx context.Context, limit int) ([]TeamRow, error)
}

type LeaderboardService struct {
	matchRepo       match.Repository
	teamRepo        team.Repository
	playerRepo      player.Repository
	teamStatsRepo   teamstats.Repository
	playerStatsRepo playerstats.Repository
}

func NewLeaderboardService(
	matchRepo match.Repository,
	teamRepo team.Repository,
	playerRepo player.Repository,
	teamStatsRepo teamstats.Repository,
	playerStatsRepo playerstats.Repository,
) *LeaderboardService {
	return &LeaderboardService{
		matchRepo:       matchRepo,
		teamRepo:        teamRepo,
		playerRepo:      playerRepo,
		teamStatsRepo:   teamStatsRepo,
		playerStatsRepo: playerStatsRepo,
	}
}

// TopPlayersByMatch ranks players of one match by G/A. An unknown match
// id is ErrNotFound; a known match with no player rows yields an empty
// leaderboard.
func (s *LeaderboardService) TopPlayersByMatch(ctx context.Context, matchID int64, limit int) ([]PlayerRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.TopPlayersByMatch")
	defer span.End()

	if limit <= 0 {
		return []PlayerRow{}, nil
	}

	_, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: match=%d", ErrNotFound, matchID)
	}

	rows, err := s.playerStatsRepo.ListByMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("list player stats by match: %w", err)
	}

	ranked := leaderboard.RankPlayersByGoalContribution(leaderboard.AggregatePlayers(rows), limit)
	return s.resolvePlayerRows(ctx, ranked)
}

func (s *LeaderboardService) TopPlayersOverall(ctx context.Context, limit int) ([]PlayerRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.TopPlayersOverall")
	defer span.End()

	if limit <= 0 {
		return []PlayerRow{}, nil
	}

	rows, err := s.playerStatsRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list player stats: %w", err)
	}

	ranked := leaderboard.RankPlayersByGoalContribution(leaderboard.AggregatePlayers(rows), limit)
	return s.resolvePlayerRows(ctx, ranked)
}

// TopGoalkeepers ranks goalkeepers by save percentage. The aggregation
// already excludes keepers with zero saves.
func (s *LeaderboardService) TopGoalkeepers(ctx context.Context, limit int) ([]KeeperRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.TopGoalkeepers")
	defer span.End()

	if limit <= 0 {
		return []KeeperRow{}, nil
	}

	rows, err := s.playerStatsRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list player stats: %w", err)
	}

	ranked := leaderboard.RankKeepersBySavePct(leaderboard.AggregateKeepers(rows), limit)

	out := make([]KeeperRow, 0, len(ranked))
	for _, totals := range ranked {
		name, teamName, logo, err := s.resolvePlayerMeta(ctx, totals.PlayerID)
		if err != nil {
			return nil, err
		}

		pct, _ := leaderboard.SavePct(totals)
		out = append(out, KeeperRow{
			PlayerID:      totals.PlayerID,
			Name:          name,
			TeamName:      teamName,
			Logo:          logo,
			Matches:       totals.Matches,
			Saves:         totals.Saves,
			GoalsConceded: totals.GoalsConceded,
			SavePct:       math.Round(pct*100) / 100,
		})
	}
	return out, nil
}

func (s *LeaderboardService) MostAggressiveTeams(ctx context.Context, limit int) ([]TeamRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.MostAggressiveTeams")
	defer span.End()

	return s.rankTeams(ctx, leaderboard.CategoryAggression, leaderboard.AggressionScore, limit)
}

func (s *LeaderboardService) BestDefensiveTeams(ctx context.Context, limit int) ([]TeamRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.BestDefensiveTeams")
	defer span.End()

	return s.rankTeams(ctx, leaderboard.CategoryDefense, leaderboard.DefensiveScore, limit)
}

func (s *LeaderboardService) BestAttackingTeams(ctx context.Context, limit int) ([]TeamRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.BestAttackingTeams")
	defer span.End()

	return s.rankTeams(ctx, leaderboard.CategoryAttack, leaderboard.AttackingScore, limit)
}

func (s *LeaderboardService) rankTeams(
	ctx context.Context,
	category leaderboard.Category,
	score func(leaderboard.TeamTotals) float64,
	limit int,
) ([]TeamRow, error) {
	if limit <= 0 {
		return []TeamRow{}, nil
	}

	stats, err := s.teamStatsRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list team stats: %w", err)
	}
	matches, err := s.matchRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	ranked := leaderboard.RankTeams(leaderboard.AggregateTeams(stats, matches), category, limit)

	out := make([]TeamRow, 0, len(ranked))
	for _, totals := range ranked {
		t, exists, err := s.teamRepo.GetByID(ctx, totals.TeamID)
		if err != nil {
			return nil, fmt.Errorf("get team: %w", err)
		}
		row := TeamRow{TeamID: totals.TeamID, Score: score(totals), Totals: totals}
		if exists {
			row.Name = t.Name
			row.Logo = t.Logo
		}
		out = append(out, row)
	}
	return out, nil
}

func (s *LeaderboardService) resolvePlayerRows(ctx context.Context, ranked []leaderboard.PlayerTotals) ([]PlayerRow, error) {
	out := make([]PlayerRow, 0, len(ranked))
	for _, totals := range ranked {
		name, teamName, logo, err := s.resolvePlayerMeta(ctx, totals.PlayerID)
		if err != nil {
			return nil, err
		}
		out = append(out, PlayerRow{
			PlayerID:         totals.PlayerID,
			Name:             name,
			TeamName:         teamName,
			Logo:             logo,
			Matches:          totals.Matches,
			Goals:            totals.Goals,
			Assists:          totals.Assists,
			GoalContribution: totals.GoalContribution(),
		})
	}
	return out, nil
}

func (s *LeaderboardService) resolvePlayerMeta(ctx context.Context, playerID int64) (name, teamName, logo string, err error) {
	p, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return "", "", "", fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return "", "", "", nil
	}

	t, exists, err := s.teamRepo.GetByID(ctx, p.TeamID)
	if err != nil {
		return "", "", "", fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return p.FullName, "", "", nil
	}
	return p.FullName, t.Name, t.Logo, nil
}
