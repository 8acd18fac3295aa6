package usecase

import (
	"context"
	"fmt"

	"github.com/soccerstats/dashboard-api/internal/domain/match"
	"github.com/soccerstats/dashboard-api/internal/domain/team"
	"github.com/soccerstats/dashboard-api/internal/domain/teamstats"
)

const defaultMatchListLimit = 50

// TeamMatchLine pairs one team's raw counters for a match with its
// display metadata, for side-by-side comparison views.
type TeamMatchLine struct {
	TeamID   int64
	TeamName string
	Logo     string
	Stat     teamstats.MatchStat
}

type MatchService struct {
	matchRepo     match.Repository
	teamRepo      team.Repository
	teamStatsRepo teamstats.Repository
	listLimit     int
}

func NewMatchService(matchRepo match.Repository, teamRepo team.Repository, teamStatsRepo teamstats.Repository, listLimit int) *MatchService {
	if listLimit <= 0 {
		listLimit = defaultMatchListLimit
	}
	return &MatchService{
		matchRepo:     matchRepo,
		teamRepo:      teamRepo,
		teamStatsRepo: teamStatsRepo,
		listLimit:     listLimit,
	}
}

// ListRecent returns the latest matches, date descending.
func (s *MatchService) ListRecent(ctx context.Context) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListRecent")
	defer span.End()

	matches, err := s.matchRepo.ListRecent(ctx, s.listLimit)
	if err != nil {
		return nil, fmt.Errorf("list recent matches: %w", err)
	}
	return matches, nil
}

// TeamStatsByMatch returns the paired team stat rows of one match with
// team names resolved. An unknown match id is ErrNotFound.
func (s *MatchService) TeamStatsByMatch(ctx context.Context, matchID int64) ([]TeamMatchLine, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.TeamStatsByMatch")
	defer span.End()

	_, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: match=%d", ErrNotFound, matchID)
	}

	stats, err := s.teamStatsRepo.ListByMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("list team stats by match: %w", err)
	}

	out := make([]TeamMatchLine, 0, len(stats))
	for _, row := range stats {
		line := TeamMatchLine{TeamID: row.TeamID, Stat: row}
		t, exists, err := s.teamRepo.GetByID(ctx, row.TeamID)
		if err != nil {
			return nil, fmt.Errorf("get team: %w", err)
		}
		if exists {
			line.TeamName = t.Name
			line.Logo = t.Logo
		}
		out = append(out, line)
	}
	return out, nil
}
