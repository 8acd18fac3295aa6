package leaderboard

// Category selects which scoring formula and tie-break chain a ranking
// applies. One parameterized pipeline replaces per-leaderboard query
// duplication.
type Category string

const (
	CategoryGoalContribution Category = "goal_contribution"
	CategorySavePct          Category = "save_pct"
	CategoryAggression       Category = "aggression"
	CategoryDefense          Category = "defense"
	CategoryAttack           Category = "attack"
)

// PlayerTotals is the per-player aggregate over a set of matches.
type PlayerTotals struct {
	PlayerID int64
	Matches  int
	Goals    int
	Assists  int
}

// GoalContribution is the primary player-ranking metric (G/A).
func (t PlayerTotals) GoalContribution() int {
	return t.Goals + t.Assists
}

// KeeperTotals is the per-goalkeeper aggregate over a set of matches.
// Aggregation never emits a KeeperTotals with Saves == 0.
type KeeperTotals struct {
	PlayerID      int64
	Matches       int
	Saves         int
	GoalsConceded int
}

// TeamTotals is the per-team aggregate over a set of matches. Counting
// stats are summed; PossessionPct and PassPct are averaged. Goals,
// conceded goals and wins are derived per match from the match result
// relative to home/away role before summing.
type TeamTotals struct {
	TeamID              int64
	Matches             int
	Wins                int
	GoalsScored         int
	GoalsConceded       int
	Tackles             int
	EffectiveTackles    int
	Fouls               int
	YellowCards         int
	RedCards            int
	BlockedShots        int
	Interceptions       int
	Clearances          int
	EffectiveClearances int
	OffsidesAgainst     int
	Shots               int
	ShotsOnTarget       int
	Crosses             int
	AccurateCrosses     int
	LongBalls           int
	AccurateLongBalls   int
	AvgPossessionPct    float64
	AvgPassPct          float64
	Corners             int
	AvgShots            float64
}
