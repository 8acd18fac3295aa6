package leaderboard

import (
	"sort"

	"github.com/soccerstats/dashboard-api/internal/domain/match"
	"github.com/soccerstats/dashboard-api/internal/domain/playerstats"
	"github.com/soccerstats/dashboard-api/internal/domain/teamstats"
)

// AggregatePlayers groups raw player rows by player and sums goals and
// assists. Matches counts distinct match ids per player. Players with no
// qualifying rows never appear in the output. The result is ordered by
// player id so repeated calls over the same input are identical.
func AggregatePlayers(rows []playerstats.MatchStat) []PlayerTotals {
	byPlayer := make(map[int64]*PlayerTotals)
	matchesSeen := make(map[int64]map[int64]struct{})

	for _, row := range rows {
		totals, ok := byPlayer[row.PlayerID]
		if !ok {
			totals = &PlayerTotals{PlayerID: row.PlayerID}
			byPlayer[row.PlayerID] = totals
			matchesSeen[row.PlayerID] = make(map[int64]struct{})
		}
		totals.Goals += row.Goals
		totals.Assists += row.Assists
		matchesSeen[row.PlayerID][row.MatchID] = struct{}{}
	}

	out := make([]PlayerTotals, 0, len(byPlayer))
	for playerID, totals := range byPlayer {
		totals.Matches = len(matchesSeen[playerID])
		out = append(out, *totals)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PlayerID < out[j].PlayerID })

	return out
}

// AggregateKeepers sums saves and conceded goals over rows that carry a
// keeper sub-record. Keepers whose total saves are zero are excluded;
// this keeps the save percentage denominator positive for everyone that
// remains.
func AggregateKeepers(rows []playerstats.MatchStat) []KeeperTotals {
	byPlayer := make(map[int64]*KeeperTotals)
	matchesSeen := make(map[int64]map[int64]struct{})

	for _, row := range rows {
		if row.Keeper == nil {
			continue
		}
		totals, ok := byPlayer[row.PlayerID]
		if !ok {
			totals = &KeeperTotals{PlayerID: row.PlayerID}
			byPlayer[row.PlayerID] = totals
			matchesSeen[row.PlayerID] = make(map[int64]struct{})
		}
		totals.Saves += row.Keeper.Saves
		totals.GoalsConceded += row.Keeper.GoalsConceded
		matchesSeen[row.PlayerID][row.MatchID] = struct{}{}
	}

	out := make([]KeeperTotals, 0, len(byPlayer))
	for playerID, totals := range byPlayer {
		if totals.Saves == 0 {
			continue
		}
		totals.Matches = len(matchesSeen[playerID])
		out = append(out, *totals)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PlayerID < out[j].PlayerID })

	return out
}

// AggregateTeams groups raw team rows by team. Goals scored, goals
// conceded and wins are resolved per match from the match row before
// summing; offsides against come from the opponent row of the same
// match. Possession and pass percentages are averaged over the rows that
// contributed them. Rows whose match id is absent from matches are
// skipped entirely.
func AggregateTeams(rows []teamstats.MatchStat, matches []match.Match) []TeamTotals {
	matchByID := make(map[int64]match.Match, len(matches))
	for _, m := range matches {
		matchByID[m.ID] = m
	}

	opponentByMatchTeam := make(map[[2]int64]teamstats.MatchStat, len(rows))
	for _, row := range rows {
		opponentByMatchTeam[[2]int64{row.MatchID, row.TeamID}] = row
	}

	type accumulator struct {
		totals       TeamTotals
		possessions  float64
		passPcts     float64
		shots        float64
		matchesSeen  map[int64]struct{}
		sampledRows  int
	}

	byTeam := make(map[int64]*accumulator)
	for _, row := range rows {
		m, ok := matchByID[row.MatchID]
		if !ok {
			continue
		}

		acc, ok := byTeam[row.TeamID]
		if !ok {
			acc = &accumulator{
				totals:      TeamTotals{TeamID: row.TeamID},
				matchesSeen: make(map[int64]struct{}),
			}
			byTeam[row.TeamID] = acc
		}

		acc.totals.Tackles += row.Tackles
		acc.totals.EffectiveTackles += row.EffectiveTackles
		acc.totals.Fouls += row.Fouls
		acc.totals.YellowCards += row.YellowCards
		acc.totals.RedCards += row.RedCards
		acc.totals.BlockedShots += row.BlockedShots
		acc.totals.Interceptions += row.Interceptions
		acc.totals.Clearances += row.Clearances
		acc.totals.EffectiveClearances += row.EffectiveClearances
		acc.totals.Shots += row.Shots
		acc.totals.ShotsOnTarget += row.ShotsOnTarget
		acc.totals.Crosses += row.Crosses
		acc.totals.AccurateCrosses += row.AccurateCrosses
		acc.totals.LongBalls += row.LongBalls
		acc.totals.AccurateLongBalls += row.AccurateLongBalls
		acc.totals.Corners += row.Corners

		opponentID := m.HomeTeamID
		if opponentID == row.TeamID {
			opponentID = m.AwayTeamID
		}
		if opp, ok := opponentByMatchTeam[[2]int64{row.MatchID, opponentID}]; ok {
			acc.totals.OffsidesAgainst += opp.Offsides
		}

		// Role-dependent derivations happen here, per match, not on
		// the summed totals.
		acc.totals.GoalsScored += m.GoalsFor(row.TeamID)
		acc.totals.GoalsConceded += m.GoalsAgainst(row.TeamID)
		if m.WonBy(row.TeamID) {
			acc.totals.Wins++
		}

		acc.possessions += row.PossessionPct
		acc.passPcts += row.PassPct
		acc.shots += float64(row.Shots)
		acc.sampledRows++
		acc.matchesSeen[row.MatchID] = struct{}{}
	}

	out := make([]TeamTotals, 0, len(byTeam))
	for _, acc := range byTeam {
		acc.totals.Matches = len(acc.matchesSeen)
		if acc.sampledRows > 0 {
			acc.totals.AvgPossessionPct = acc.possessions / float64(acc.sampledRows)
			acc.totals.AvgPassPct = acc.passPcts / float64(acc.sampledRows)
			acc.totals.AvgShots = acc.shots / float64(acc.sampledRows)
		}
		out = append(out, acc.totals)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TeamID < out[j].TeamID })

	return out
}
