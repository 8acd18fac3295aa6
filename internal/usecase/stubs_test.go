package usecase

import (
	"context"
	"sort"

	"github.com/soccerstats/dashboard-api/internal/domain/match"
	"github.com/soccerstats/dashboard-api/internal/domain/player"
	"github.com/soccerstats/dashboard-api/internal/domain/playerstats"
	"github.com/soccerstats/dashboard-api/internal/domain/team"
	"github.com/soccerstats/dashboard-api/internal/domain/teamstats"
)

type stubMatchRepository struct {
	matches []match.Match
	err     error
}

func (s *stubMatchRepository) ListRecent(_ context.Context, limit int) ([]match.Match, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]match.Match, len(s.matches))
	copy(out, s.matches)
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (s *stubMatchRepository) ListAll(_ context.Context) ([]match.Match, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]match.Match, len(s.matches))
	copy(out, s.matches)
	return out, nil
}

func (s *stubMatchRepository) GetByID(_ context.Context, matchID int64) (match.Match, bool, error) {
	if s.err != nil {
		return match.Match{}, false, s.err
	}
	for _, m := range s.matches {
		if m.ID == matchID {
			return m, true, nil
		}
	}
	return match.Match{}, false, nil
}

type stubTeamRepository struct {
	teams     []team.Team
	listCalls int
}

func (s *stubTeamRepository) List(_ context.Context) ([]team.Team, error) {
	s.listCalls++
	out := make([]team.Team, len(s.teams))
	copy(out, s.teams)
	return out, nil
}

func (s *stubTeamRepository) GetByID(_ context.Context, teamID int64) (team.Team, bool, error) {
	for _, t := range s.teams {
		if t.ID == teamID {
			return t, true, nil
		}
	}
	return team.Team{}, false, nil
}

type stubPlayerRepository struct {
	players []player.Player
}

func (s *stubPlayerRepository) List(_ context.Context) ([]player.Player, error) {
	out := make([]player.Player, len(s.players))
	copy(out, s.players)
	return out, nil
}

func (s *stubPlayerRepository) GetByID(_ context.Context, playerID int64) (player.Player, bool, error) {
	for _, p := range s.players {
		if p.ID == playerID {
			return p, true, nil
		}
	}
	return player.Player{}, false, nil
}

type stubTeamStatsRepository struct {
	rows []teamstats.MatchStat
	err  error
}

func (s *stubTeamStatsRepository) ListAll(_ context.Context) ([]teamstats.MatchStat, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]teamstats.MatchStat, len(s.rows))
	copy(out, s.rows)
	return out, nil
}

func (s *stubTeamStatsRepository) ListByMatch(_ context.Context, matchID int64) ([]teamstats.MatchStat, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]teamstats.MatchStat, 0)
	for _, row := range s.rows {
		if row.MatchID == matchID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (s *stubTeamStatsRepository) ListByTeam(_ context.Context, teamID int64) ([]teamstats.MatchStat, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]teamstats.MatchStat, 0)
	for _, row := range s.rows {
		if row.TeamID == teamID {
			out = append(out, row)
		}
	}
	return out, nil
}

type stubPlayerStatsRepository struct {
	rows []playerstats.MatchStat
	err  error
}

func (s *stubPlayerStatsRepository) ListAll(_ context.Context) ([]playerstats.MatchStat, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]playerstats.MatchStat, len(s.rows))
	copy(out, s.rows)
	return out, nil
}

func (s *stubPlayerStatsRepository) ListByMatch(_ context.Context, matchID int64) ([]playerstats.MatchStat, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]playerstats.MatchStat, 0)
	for _, row := range s.rows {
		if row.MatchID == matchID {
			out = append(out, row)
		}
	}
	return out, nil
}
