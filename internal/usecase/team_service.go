package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/soccerstats/dashboard-api/internal/domain/leaderboard"
	"github.com/soccerstats/dashboard-api/internal/domain/match"
	"github.com/soccerstats/dashboard-api/internal/domain/team"
	"github.com/soccerstats/dashboard-api/internal/domain/teamstats"
	"github.com/soccerstats/dashboard-api/internal/platform/cache"
)

// TeamOverview is the single-team aggregate shown on the team page. A
// team with no recorded matches gets the zero value; that is a valid
// result, not an error.
type TeamOverview struct {
	TeamID           int64
	Name             string
	Logo             string
	Matches          int
	Wins             int
	GoalsScored      int
	GoalsConceded    int
	AvgPossessionPct float64
	AvgPassPct       float64
	AvgShots         float64
	Corners          int
}

// MatchGoals is one point of a team's chronological scoring trend.
type MatchGoals struct {
	MatchNumber int
	MatchID     int64
	GoalsScored int
}

type TeamService struct {
	teamRepo      team.Repository
	matchRepo     match.Repository
	teamStatsRepo teamstats.Repository
	store         *cache.Store
}

func NewTeamService(teamRepo team.Repository, matchRepo match.Repository, teamStatsRepo teamstats.Repository) *TeamService {
	return &TeamService{
		teamRepo:      teamRepo,
		matchRepo:     matchRepo,
		teamStatsRepo: teamStatsRepo,
	}
}

// WithCache enables read-through caching of the team directory. The
// directory only changes between competitions, so it gets a much longer
// TTL than the leaderboards.
func (s *TeamService) WithCache(store *cache.Store) *TeamService {
	s.store = store
	return s
}

func (s *TeamService) ListTeams(ctx context.Context) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListTeams")
	defer span.End()

	if s.store != nil {
		return cachedLoad(ctx, s.store, "teams:all", s.listTeams)
	}
	return s.listTeams(ctx)
}

func (s *TeamService) listTeams(ctx context.Context) ([]team.Team, error) {
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return teams, nil
}

// Overview aggregates a single team across all its matches. An unknown
// team id is ErrNotFound.
func (s *TeamService) Overview(ctx context.Context, teamID int64) (TeamOverview, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Overview")
	defer span.End()

	t, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return TeamOverview{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return TeamOverview{}, fmt.Errorf("%w: team=%d", ErrNotFound, teamID)
	}

	stats, err := s.teamStatsRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return TeamOverview{}, fmt.Errorf("list team stats: %w", err)
	}

	overview := TeamOverview{TeamID: t.ID, Name: t.Name, Logo: t.Logo}
	if len(stats) == 0 {
		return overview, nil
	}

	matches, err := s.matchRepo.ListAll(ctx)
	if err != nil {
		return TeamOverview{}, fmt.Errorf("list matches: %w", err)
	}

	for _, totals := range leaderboard.AggregateTeams(stats, matches) {
		if totals.TeamID != teamID {
			continue
		}
		overview.Matches = totals.Matches
		overview.Wins = totals.Wins
		overview.GoalsScored = totals.GoalsScored
		overview.GoalsConceded = totals.GoalsConceded
		overview.AvgPossessionPct = totals.AvgPossessionPct
		overview.AvgPassPct = totals.AvgPassPct
		overview.AvgShots = totals.AvgShots
		overview.Corners = totals.Corners
	}
	return overview, nil
}

// GoalsByMatch returns the team's goals in each of its matches in
// chronological order, numbered from 1 (oldest).
func (s *TeamService) GoalsByMatch(ctx context.Context, teamID int64) ([]MatchGoals, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GoalsByMatch")
	defer span.End()

	_, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: team=%d", ErrNotFound, teamID)
	}

	stats, err := s.teamStatsRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list team stats: %w", err)
	}

	matches, err := s.matchRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	matchByID := make(map[int64]match.Match, len(matches))
	for _, m := range matches {
		matchByID[m.ID] = m
	}

	played := make([]match.Match, 0, len(stats))
	for _, row := range stats {
		if m, ok := matchByID[row.MatchID]; ok {
			played = append(played, m)
		}
	}
	sort.Slice(played, func(i, j int) bool {
		if !played[i].Date.Equal(played[j].Date) {
			return played[i].Date.Before(played[j].Date)
		}
		return played[i].ID < played[j].ID
	})

	out := make([]MatchGoals, 0, len(played))
	for i, m := range played {
		out = append(out, MatchGoals{
			MatchNumber: i + 1,
			MatchID:     m.ID,
			GoalsScored: m.GoalsFor(teamID),
		})
	}
	return out, nil
}
