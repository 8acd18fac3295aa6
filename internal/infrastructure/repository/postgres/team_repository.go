package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/soccerstats/dashboard-api/internal/domain/team"
	qb "github.com/soccerstats/dashboard-api/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

var teamColumns = []string{"id", "name", "logo", "created_at", "updated_at", "deleted_at"}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	query, args, err := qb.Select(teamColumns...).From("teams").
		Where(qb.IsNull("deleted_at")).
		OrderBy("name ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select teams: %w", markUnavailable(err))
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, teamRowToDomain(row))
	}

	return out, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID int64) (team.Team, bool, error) {
	query, args, err := qb.Select(teamColumns...).From("teams").
		Where(
			qb.Eq("id", teamID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build get team query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("get team: %w", markUnavailable(err))
	}

	return teamRowToDomain(row), true, nil
}

func teamRowToDomain(row teamTableModel) team.Team {
	return team.Team{
		ID:   row.ID,
		Name: row.Name,
		Logo: row.Logo.String,
	}
}
