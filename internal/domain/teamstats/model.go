package teamstats

// MatchStat holds the raw per-match counters for one team. Every match
// has exactly two rows sharing the same MatchID; the row with the other
// TeamID is the opponent row, used for against-opponent metrics.
type MatchStat struct {
	TeamID              int64
	MatchID             int64
	Tackles             int
	EffectiveTackles    int
	Fouls               int
	YellowCards         int
	RedCards            int
	BlockedShots        int
	Interceptions       int
	Clearances          int
	EffectiveClearances int
	Shots               int
	ShotsOnTarget       int
	Crosses             int
	AccurateCrosses     int
	LongBalls           int
	AccurateLongBalls   int
	PossessionPct       float64
	PassPct             float64
	Corners             int
	Offsides            int
}
