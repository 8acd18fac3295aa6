package postgres

import "time"

type teamStatsTableModel struct {
	ID                  int64      `db:"id"`
	TeamID              int64      `db:"team_id"`
	MatchID             int64      `db:"match_id"`
	Tackles             int        `db:"tackles"`
	EffectiveTackles    int        `db:"effective_tackles"`
	Fouls               int        `db:"fouls"`
	YellowCards         int        `db:"yellow_cards"`
	RedCards            int        `db:"red_cards"`
	BlockedShots        int        `db:"blocked_shots"`
	Interceptions       int        `db:"interceptions"`
	Clearances          int        `db:"clearances"`
	EffectiveClearances int        `db:"effective_clearances"`
	Shots               int        `db:"shots"`
	ShotsOnTarget       int        `db:"shots_on_target"`
	Crosses             int        `db:"crosses"`
	AccurateCrosses     int        `db:"accurate_crosses"`
	LongBalls           int        `db:"long_balls"`
	AccurateLongBalls   int        `db:"accurate_long_balls"`
	PossessionPct       float64    `db:"possession_pct"`
	PassPct             float64    `db:"pass_pct"`
	Corners             int        `db:"corners"`
	Offsides            int        `db:"offsides"`
	CreatedAt           time.Time  `db:"created_at"`
	UpdatedAt           time.Time  `db:"updated_at"`
	DeletedAt           *time.Time `db:"deleted_at"`
}
