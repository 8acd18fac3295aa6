package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	jsoniter "github.com/json-iterator/go"
	"github.com/soccerstats/dashboard-api/internal/infrastructure/repository/memory"
)

// BootstrapSeed fills an empty database with the demo slate so the
// dashboard renders without an external ingestion pipeline.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM matches WHERE deleted_at IS NULL`); err != nil {
		return fmt.Errorf("count matches for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, t := range memory.SeedTeams() {
		if err := seedExec(ctx, tx, `
INSERT INTO teams (id, name, logo)
VALUES (:id, :name, :logo)
ON CONFLICT (id) DO NOTHING`, map[string]any{
			"id":   t.ID,
			"name": t.Name,
			"logo": t.Logo,
		}); err != nil {
			return fmt.Errorf("seed team %d: %w", t.ID, err)
		}
	}

	for _, p := range memory.SeedPlayers() {
		if err := seedExec(ctx, tx, `
INSERT INTO players (id, team_id, full_name)
VALUES (:id, :team_id, :full_name)
ON CONFLICT (id) DO NOTHING`, map[string]any{
			"id":        p.ID,
			"team_id":   p.TeamID,
			"full_name": p.FullName,
		}); err != nil {
			return fmt.Errorf("seed player %d: %w", p.ID, err)
		}
	}

	for _, m := range memory.SeedMatches() {
		if err := seedExec(ctx, tx, `
INSERT INTO matches (id, home_team_id, away_team_id, home_team, away_team, home_score, away_score, match_date)
VALUES (:id, :home_team_id, :away_team_id, :home_team, :away_team, :home_score, :away_score, :match_date)
ON CONFLICT (id) DO NOTHING`, map[string]any{
			"id":           m.ID,
			"home_team_id": m.HomeTeamID,
			"away_team_id": m.AwayTeamID,
			"home_team":    m.HomeTeam,
			"away_team":    m.AwayTeam,
			"home_score":   m.HomeScore,
			"away_score":   m.AwayScore,
			"match_date":   m.Date,
		}); err != nil {
			return fmt.Errorf("seed match %d: %w", m.ID, err)
		}
	}

	for _, s := range memory.SeedTeamStats() {
		if err := seedExec(ctx, tx, `
INSERT INTO team_stats (
    team_id, match_id, tackles, effective_tackles, fouls, yellow_cards,
    red_cards, blocked_shots, interceptions, clearances, effective_clearances,
    shots, shots_on_target, crosses, accurate_crosses, long_balls,
    accurate_long_balls, possession_pct, pass_pct, corners, offsides
) VALUES (
    :team_id, :match_id, :tackles, :effective_tackles, :fouls, :yellow_cards,
    :red_cards, :blocked_shots, :interceptions, :clearances, :effective_clearances,
    :shots, :shots_on_target, :crosses, :accurate_crosses, :long_balls,
    :accurate_long_balls, :possession_pct, :pass_pct, :corners, :offsides
)
ON CONFLICT (team_id, match_id) DO NOTHING`, map[string]any{
			"team_id":              s.TeamID,
			"match_id":             s.MatchID,
			"tackles":              s.Tackles,
			"effective_tackles":    s.EffectiveTackles,
			"fouls":                s.Fouls,
			"yellow_cards":         s.YellowCards,
			"red_cards":            s.RedCards,
			"blocked_shots":        s.BlockedShots,
			"interceptions":        s.Interceptions,
			"clearances":           s.Clearances,
			"effective_clearances": s.EffectiveClearances,
			"shots":                s.Shots,
			"shots_on_target":      s.ShotsOnTarget,
			"crosses":              s.Crosses,
			"accurate_crosses":     s.AccurateCrosses,
			"long_balls":           s.LongBalls,
			"accurate_long_balls":  s.AccurateLongBalls,
			"possession_pct":       s.PossessionPct,
			"pass_pct":             s.PassPct,
			"corners":              s.Corners,
			"offsides":             s.Offsides,
		}); err != nil {
			return fmt.Errorf("seed team stats team=%d match=%d: %w", s.TeamID, s.MatchID, err)
		}
	}

	for _, s := range memory.SeedPlayerStats() {
		var keeperStats any
		if s.Keeper != nil {
			encoded, err := jsoniter.Marshal(keeperStatsJSON{
				Saves:         s.Keeper.Saves,
				GoalsConceded: s.Keeper.GoalsConceded,
			})
			if err != nil {
				return fmt.Errorf("encode keeper stats player=%d match=%d: %w", s.PlayerID, s.MatchID, err)
			}
			keeperStats = string(encoded)
		}

		if err := seedExec(ctx, tx, `
INSERT INTO player_stats (player_id, match_id, goals, assists, keeper_stats)
VALUES (:player_id, :match_id, :goals, :assists, :keeper_stats)
ON CONFLICT (player_id, match_id) DO NOTHING`, map[string]any{
			"player_id":    s.PlayerID,
			"match_id":     s.MatchID,
			"goals":        s.Goals,
			"assists":      s.Assists,
			"keeper_stats": keeperStats,
		}); err != nil {
			return fmt.Errorf("seed player stats player=%d match=%d: %w", s.PlayerID, s.MatchID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}

	return nil
}

func seedExec(ctx context.Context, tx *sqlx.Tx, query string, args map[string]any) error {
	sqlQuery, bound, err := sqlx.Named(query, args)
	if err != nil {
		return fmt.Errorf("bind query: %w", err)
	}
	sqlQuery = tx.Rebind(sqlQuery)
	if _, err := tx.ExecContext(ctx, sqlQuery, bound...); err != nil {
		return err
	}

	return nil
}
