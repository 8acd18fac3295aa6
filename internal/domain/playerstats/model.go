package playerstats

// KeeperStat is present only on rows belonging to goalkeepers.
type KeeperStat struct {
	Saves         int
	GoalsConceded int
}

// MatchStat holds the raw per-match counters for one player.
type MatchStat struct {
	PlayerID int64
	MatchID  int64
	Goals    int
	Assists  int
	Keeper   *KeeperStat
}
