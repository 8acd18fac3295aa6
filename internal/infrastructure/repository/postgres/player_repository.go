package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/soccerstats/dashboard-api/internal/domain/player"
	qb "github.com/soccerstats/dashboard-api/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

var playerColumns = []string{"id", "team_id", "full_name", "created_at", "updated_at", "deleted_at"}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	query, args, err := qb.Select(playerColumns...).From("players").
		Where(qb.IsNull("deleted_at")).
		OrderBy("id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players: %w", markUnavailable(err))
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerRowToDomain(row))
	}

	return out, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID int64) (player.Player, bool, error) {
	query, args, err := qb.Select(playerColumns...).From("players").
		Where(
			qb.Eq("id", playerID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build get player query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("get player: %w", markUnavailable(err))
	}

	return playerRowToDomain(row), true, nil
}

func playerRowToDomain(row playerTableModel) player.Player {
	return player.Player{
		ID:       row.ID,
		TeamID:   row.TeamID,
		FullName: row.FullName,
	}
}
