package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/soccerstats/dashboard-api/internal/domain/match"
	qb "github.com/soccerstats/dashboard-api/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

var matchColumns = []string{
	"id", "home_team_id", "away_team_id", "home_team", "away_team",
	"home_score", "away_score", "match_date", "created_at", "updated_at", "deleted_at",
}

func (r *MatchRepository) ListRecent(ctx context.Context, limit int) ([]match.Match, error) {
	builder := qb.Select(matchColumns...).From("matches").
		Where(qb.IsNull("deleted_at")).
		OrderBy("match_date DESC", "id DESC")
	if limit > 0 {
		builder = builder.Limit(limit)
	}

	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select recent matches query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select recent matches: %w", markUnavailable(err))
	}

	return matchRowsToDomain(rows), nil
}

func (r *MatchRepository) ListAll(ctx context.Context) ([]match.Match, error) {
	query, args, err := qb.Select(matchColumns...).From("matches").
		Where(qb.IsNull("deleted_at")).
		OrderBy("match_date ASC", "id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches: %w", markUnavailable(err))
	}

	return matchRowsToDomain(rows), nil
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID int64) (match.Match, bool, error) {
	query, args, err := qb.Select(matchColumns...).From("matches").
		Where(
			qb.Eq("id", matchID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build get match query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("get match: %w", markUnavailable(err))
	}

	return matchRowToDomain(row), true, nil
}

func matchRowsToDomain(rows []matchTableModel) []match.Match {
	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchRowToDomain(row))
	}

	return out
}

func matchRowToDomain(row matchTableModel) match.Match {
	return match.Match{
		ID:         row.ID,
		HomeTeamID: row.HomeTeamID,
		AwayTeamID: row.AwayTeamID,
		HomeTeam:   row.HomeTeam,
		AwayTeam:   row.AwayTeam,
		HomeScore:  row.HomeScore,
		AwayScore:  row.AwayScore,
		Date:       row.MatchDate,
	}
}
