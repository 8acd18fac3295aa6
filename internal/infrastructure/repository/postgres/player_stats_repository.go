package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/jmoiron/sqlx"
	"github.com/soccerstats/dashboard-api/internal/domain/playerstats"
	qb "github.com/soccerstats/dashboard-api/internal/platform/querybuilder"
)

type PlayerStatsRepository struct {
	db *sqlx.DB
}

func NewPlayerStatsRepository(db *sqlx.DB) *PlayerStatsRepository {
	return &PlayerStatsRepository{db: db}
}

type playerStatsTableModel struct {
	ID          int64          `db:"id"`
	PlayerID    int64          `db:"player_id"`
	MatchID     int64          `db:"match_id"`
	Goals       int            `db:"goals"`
	Assists     int            `db:"assists"`
	KeeperStats sql.NullString `db:"keeper_stats"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
	DeletedAt   *time.Time     `db:"deleted_at"`
}

// keeperStatsJSON mirrors the keeper_stats JSONB column. The column is
// NULL for outfield players.
type keeperStatsJSON struct {
	Saves         int `json:"saves"`
	GoalsConceded int `json:"goalsConceded"`
}

var playerStatsColumns = []string{
	"id", "player_id", "match_id", "goals", "assists", "keeper_stats",
	"created_at", "updated_at", "deleted_at",
}

func (r *PlayerStatsRepository) ListAll(ctx context.Context) ([]playerstats.MatchStat, error) {
	return r.list(ctx, nil)
}

func (r *PlayerStatsRepository) ListByMatch(ctx context.Context, matchID int64) ([]playerstats.MatchStat, error) {
	return r.list(ctx, []qb.Condition{qb.Eq("match_id", matchID)})
}

func (r *PlayerStatsRepository) list(ctx context.Context, conditions []qb.Condition) ([]playerstats.MatchStat, error) {
	conditions = append(conditions, qb.IsNull("deleted_at"))

	query, args, err := qb.Select(playerStatsColumns...).From("player_stats").
		Where(conditions...).
		OrderBy("match_id ASC", "player_id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select player stats query: %w", err)
	}

	var rows []playerStatsTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select player stats: %w", markUnavailable(err))
	}

	out := make([]playerstats.MatchStat, 0, len(rows))
	for _, row := range rows {
		stat, err := playerStatsRowToDomain(row)
		if err != nil {
			return nil, err
		}
		out = append(out, stat)
	}

	return out, nil
}

func playerStatsRowToDomain(row playerStatsTableModel) (playerstats.MatchStat, error) {
	stat := playerstats.MatchStat{
		PlayerID: row.PlayerID,
		MatchID:  row.MatchID,
		Goals:    row.Goals,
		Assists:  row.Assists,
	}

	if row.KeeperStats.Valid && row.KeeperStats.String != "" {
		var keeper keeperStatsJSON
		if err := sonic.Unmarshal([]byte(row.KeeperStats.String), &keeper); err != nil {
			return playerstats.MatchStat{}, fmt.Errorf("decode keeper stats for player %d match %d: %w", row.PlayerID, row.MatchID, err)
		}
		stat.Keeper = &playerstats.KeeperStat{
			Saves:         keeper.Saves,
			GoalsConceded: keeper.GoalsConceded,
		}
	}

	return stat, nil
}
