package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/soccerstats/dashboard-api/internal/domain/teamstats"
	qb "github.com/soccerstats/dashboard-api/internal/platform/querybuilder"
)

type TeamStatsRepository struct {
	db *sqlx.DB
}

func NewTeamStatsRepository(db *sqlx.DB) *TeamStatsRepository {
	return &TeamStatsRepository{db: db}
}

var teamStatsColumns = []string{
	"id", "team_id", "match_id", "tackles", "effective_tackles", "fouls",
	"yellow_cards", "red_cards", "blocked_shots", "interceptions",
	"clearances", "effective_clearances", "shots", "shots_on_target",
	"crosses", "accurate_crosses", "long_balls", "accurate_long_balls",
	"possession_pct", "pass_pct", "corners", "offsides",
	"created_at", "updated_at", "deleted_at",
}

func (r *TeamStatsRepository) ListAll(ctx context.Context) ([]teamstats.MatchStat, error) {
	return r.list(ctx, nil)
}

func (r *TeamStatsRepository) ListByMatch(ctx context.Context, matchID int64) ([]teamstats.MatchStat, error) {
	return r.list(ctx, []qb.Condition{qb.Eq("match_id", matchID)})
}

func (r *TeamStatsRepository) ListByTeam(ctx context.Context, teamID int64) ([]teamstats.MatchStat, error) {
	return r.list(ctx, []qb.Condition{qb.Eq("team_id", teamID)})
}

func (r *TeamStatsRepository) list(ctx context.Context, conditions []qb.Condition) ([]teamstats.MatchStat, error) {
	conditions = append(conditions, qb.IsNull("deleted_at"))

	query, args, err := qb.Select(teamStatsColumns...).From("team_stats").
		Where(conditions...).
		OrderBy("match_id ASC", "team_id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select team stats query: %w", err)
	}

	var rows []teamStatsTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select team stats: %w", markUnavailable(err))
	}

	out := make([]teamstats.MatchStat, 0, len(rows))
	for _, row := range rows {
		out = append(out, teamStatsRowToDomain(row))
	}

	return out, nil
}

func teamStatsRowToDomain(row teamStatsTableModel) teamstats.MatchStat {
	return teamstats.MatchStat{
		TeamID:              row.TeamID,
		MatchID:             row.MatchID,
		Tackles:             row.Tackles,
		EffectiveTackles:    row.EffectiveTackles,
		Fouls:               row.Fouls,
		YellowCards:         row.YellowCards,
		RedCards:            row.RedCards,
		BlockedShots:        row.BlockedShots,
		Interceptions:       row.Interceptions,
		Clearances:          row.Clearances,
		EffectiveClearances: row.EffectiveClearances,
		Shots:               row.Shots,
		ShotsOnTarget:       row.ShotsOnTarget,
		Crosses:             row.Crosses,
		AccurateCrosses:     row.AccurateCrosses,
		LongBalls:           row.LongBalls,
		AccurateLongBalls:   row.AccurateLongBalls,
		PossessionPct:       row.PossessionPct,
		PassPct:             row.PassPct,
		Corners:             row.Corners,
		Offsides:            row.Offsides,
	}
}
