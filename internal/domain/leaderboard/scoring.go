package leaderboard

// Scoring formulas are pure functions from aggregated totals to a scalar
// score. Weights are part of the public contract; changing them changes
// every historical ranking.

// SavePct returns saves / (saves + goals conceded). The second return
// value is false when the denominator is zero; aggregation already
// excludes zero-save keepers, so callers seeing ok=false fed the formula
// totals that never came from AggregateKeepers.
func SavePct(t KeeperTotals) (float64, bool) {
	faced := t.Saves + t.GoalsConceded
	if faced == 0 {
		return 0, false
	}
	return float64(t.Saves) / float64(faced), true
}

// AggressionScore weighs tackles, fouls and cards, averaged over matches
// played so short tournament runs are not penalized. Zero matches yields
// zero.
func AggressionScore(t TeamTotals) float64 {
	if t.Matches == 0 {
		return 0
	}
	raw := float64(t.Tackles)*1 +
		float64(t.Fouls)*2 +
		float64(t.YellowCards)*3 +
		float64(t.RedCards)*5
	return raw / float64(t.Matches)
}

// DefensiveScore rewards defensive actions and penalizes conceded goals.
// The (1 + goals conceded) denominator keeps the division defined for
// clean-sheet teams.
func DefensiveScore(t TeamTotals) float64 {
	raw := float64(t.OffsidesAgainst)*2.0 +
		float64(t.YellowCards)*1.0 +
		float64(t.BlockedShots)*1.5 +
		float64(t.Tackles)*1.0 +
		float64(t.EffectiveTackles)*2.5 +
		float64(t.Interceptions)*1.5 +
		float64(t.Clearances)*1.0 +
		float64(t.EffectiveClearances)*2.5
	adjusted := raw - float64(t.GoalsConceded)*2.0
	return adjusted / float64(1+t.GoalsConceded)
}

// AttackingScore weighs chance creation, ball progression, goals and
// wins, averaged over matches played. Zero matches yields zero.
func AttackingScore(t TeamTotals) float64 {
	if t.Matches == 0 {
		return 0
	}
	raw := float64(t.Shots)*1.5 +
		float64(t.ShotsOnTarget)*2.0 +
		float64(t.Crosses)*1.0 +
		float64(t.AccurateCrosses)*2.0 +
		float64(t.LongBalls)*0.5 +
		float64(t.AccurateLongBalls)*1.0 +
		float64(t.Corners)*1.0 +
		t.AvgPossessionPct*0.5 +
		t.AvgPassPct*0.5 +
		float64(t.GoalsScored)*4.0 +
		float64(t.Wins)*3.0
	return raw / float64(t.Matches)
}
