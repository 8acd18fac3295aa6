package leaderboard

import "sort"

// rank sorts a copy of items with a stable sort and truncates to limit.
// The input is never mutated. A limit of zero or less yields an empty
// slice, never an error and never the full set.
func rank[T any](items []T, less func(a, b T) bool, limit int) []T {
	if limit <= 0 {
		return []T{}
	}

	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })

	if limit < len(out) {
		out = out[:limit]
	}
	return out
}

// RankPlayersByGoalContribution orders players by G/A descending. Ties
// keep input order: the formula defines no further tie-break.
func RankPlayersByGoalContribution(totals []PlayerTotals, limit int) []PlayerTotals {
	return rank(totals, func(a, b PlayerTotals) bool {
		return a.GoalContribution() > b.GoalContribution()
	}, limit)
}

// RankKeepersBySavePct orders goalkeepers by save percentage descending,
// breaking ties by total saves descending, then matches played
// descending.
func RankKeepersBySavePct(totals []KeeperTotals, limit int) []KeeperTotals {
	return rank(totals, func(a, b KeeperTotals) bool {
		pctA, _ := SavePct(a)
		pctB, _ := SavePct(b)
		if pctA != pctB {
			return pctA > pctB
		}
		if a.Saves != b.Saves {
			return a.Saves > b.Saves
		}
		return a.Matches > b.Matches
	}, limit)
}

// RankTeams orders teams descending by the scoring formula the category
// selects. Ties keep input order.
func RankTeams(totals []TeamTotals, category Category, limit int) []TeamTotals {
	score := scoreFor(category)
	return rank(totals, func(a, b TeamTotals) bool {
		return score(a) > score(b)
	}, limit)
}

func scoreFor(category Category) func(TeamTotals) float64 {
	switch category {
	case CategoryAggression:
		return AggressionScore
	case CategoryDefense:
		return DefensiveScore
	case CategoryAttack:
		return AttackingScore
	default:
		// Not a team category. Score everything zero so the stable
		// sort keeps input order instead of ranking by the wrong
		// formula.
		return func(TeamTotals) float64 { return 0 }
	}
}
