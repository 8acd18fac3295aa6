package memory

import (
	"time"

	"github.com/soccerstats/dashboard-api/internal/domain/match"
	"github.com/soccerstats/dashboard-api/internal/domain/player"
	"github.com/soccerstats/dashboard-api/internal/domain/playerstats"
	"github.com/soccerstats/dashboard-api/internal/domain/team"
	"github.com/soccerstats/dashboard-api/internal/domain/teamstats"
)

// Seed data is a small group-stage slate used by the memory driver and
// by the postgres bootstrap when the database is empty.

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: 1, Name: "River Plate", Logo: "/logos/river-plate.png"},
		{ID: 2, Name: "Monterrey", Logo: "/logos/monterrey.png"},
		{ID: 3, Name: "Inter Milan", Logo: "/logos/inter-milan.png"},
		{ID: 4, Name: "Urawa Red Diamonds", Logo: "/logos/urawa-red-diamonds.png"},
	}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: 1, TeamID: 1, FullName: "Facundo Colidio"},
		{ID: 2, TeamID: 1, FullName: "Franco Armani"},
		{ID: 3, TeamID: 2, FullName: "German Berterame"},
		{ID: 4, TeamID: 2, FullName: "Esteban Andrada"},
		{ID: 5, TeamID: 3, FullName: "Lautaro Martinez"},
		{ID: 6, TeamID: 3, FullName: "Yann Sommer"},
		{ID: 7, TeamID: 4, FullName: "Yusuke Matsuo"},
		{ID: 8, TeamID: 4, FullName: "Shusaku Nishikawa"},
	}
}

func SeedMatches() []match.Match {
	day := func(d int) time.Time {
		return time.Date(2025, 6, d, 0, 0, 0, 0, time.UTC)
	}

	return []match.Match{
		{ID: 1, HomeTeamID: 1, AwayTeamID: 4, HomeTeam: "River Plate", AwayTeam: "Urawa Red Diamonds", HomeScore: 3, AwayScore: 1, Date: day(17)},
		{ID: 2, HomeTeamID: 2, AwayTeamID: 3, HomeTeam: "Monterrey", AwayTeam: "Inter Milan", HomeScore: 1, AwayScore: 1, Date: day(18)},
		{ID: 3, HomeTeamID: 1, AwayTeamID: 2, HomeTeam: "River Plate", AwayTeam: "Monterrey", HomeScore: 0, AwayScore: 0, Date: day(21)},
		{ID: 4, HomeTeamID: 3, AwayTeamID: 4, HomeTeam: "Inter Milan", AwayTeam: "Urawa Red Diamonds", HomeScore: 2, AwayScore: 1, Date: day(21)},
		{ID: 5, HomeTeamID: 3, AwayTeamID: 1, HomeTeam: "Inter Milan", AwayTeam: "River Plate", HomeScore: 2, AwayScore: 0, Date: day(25)},
		{ID: 6, HomeTeamID: 2, AwayTeamID: 4, HomeTeam: "Monterrey", AwayTeam: "Urawa Red Diamonds", HomeScore: 4, AwayScore: 0, Date: day(25)},
	}
}

func SeedTeamStats() []teamstats.MatchStat {
	return []teamstats.MatchStat{
		{TeamID: 1, MatchID: 1, Tackles: 18, EffectiveTackles: 12, Fouls: 11, YellowCards: 2, BlockedShots: 3, Interceptions: 9, Clearances: 14, EffectiveClearances: 11, Shots: 15, ShotsOnTarget: 7, Crosses: 18, AccurateCrosses: 6, LongBalls: 32, AccurateLongBalls: 21, PossessionPct: 58, PassPct: 84, Corners: 6, Offsides: 2},
		{TeamID: 4, MatchID: 1, Tackles: 22, EffectiveTackles: 13, Fouls: 14, YellowCards: 3, RedCards: 1, BlockedShots: 5, Interceptions: 12, Clearances: 21, EffectiveClearances: 15, Shots: 8, ShotsOnTarget: 3, Crosses: 10, AccurateCrosses: 3, LongBalls: 41, AccurateLongBalls: 22, PossessionPct: 42, PassPct: 76, Corners: 3, Offsides: 1},
		{TeamID: 2, MatchID: 2, Tackles: 24, EffectiveTackles: 16, Fouls: 16, YellowCards: 4, BlockedShots: 4, Interceptions: 11, Clearances: 17, EffectiveClearances: 12, Shots: 10, ShotsOnTarget: 4, Crosses: 12, AccurateCrosses: 4, LongBalls: 35, AccurateLongBalls: 19, PossessionPct: 45, PassPct: 79, Corners: 4, Offsides: 3},
		{TeamID: 3, MatchID: 2, Tackles: 17, EffectiveTackles: 11, Fouls: 9, YellowCards: 1, BlockedShots: 2, Interceptions: 8, Clearances: 12, EffectiveClearances: 9, Shots: 13, ShotsOnTarget: 5, Crosses: 15, AccurateCrosses: 5, LongBalls: 28, AccurateLongBalls: 19, PossessionPct: 55, PassPct: 87, Corners: 5, Offsides: 2},
		{TeamID: 1, MatchID: 3, Tackles: 20, EffectiveTackles: 13, Fouls: 12, YellowCards: 2, BlockedShots: 4, Interceptions: 10, Clearances: 16, EffectiveClearances: 12, Shots: 11, ShotsOnTarget: 3, Crosses: 14, AccurateCrosses: 4, LongBalls: 30, AccurateLongBalls: 18, PossessionPct: 52, PassPct: 82, Corners: 5, Offsides: 1},
		{TeamID: 2, MatchID: 3, Tackles: 26, EffectiveTackles: 17, Fouls: 18, YellowCards: 5, RedCards: 1, BlockedShots: 6, Interceptions: 13, Clearances: 19, EffectiveClearances: 14, Shots: 9, ShotsOnTarget: 2, Crosses: 9, AccurateCrosses: 2, LongBalls: 38, AccurateLongBalls: 20, PossessionPct: 48, PassPct: 78, Corners: 3, Offsides: 2},
		{TeamID: 3, MatchID: 4, Tackles: 16, EffectiveTackles: 11, Fouls: 8, YellowCards: 1, BlockedShots: 2, Interceptions: 7, Clearances: 11, EffectiveClearances: 9, Shots: 16, ShotsOnTarget: 8, Crosses: 17, AccurateCrosses: 7, LongBalls: 26, AccurateLongBalls: 18, PossessionPct: 61, PassPct: 89, Corners: 7, Offsides: 3},
		{TeamID: 4, MatchID: 4, Tackles: 21, EffectiveTackles: 12, Fouls: 13, YellowCards: 2, BlockedShots: 6, Interceptions: 14, Clearances: 23, EffectiveClearances: 17, Shots: 7, ShotsOnTarget: 3, Crosses: 8, AccurateCrosses: 2, LongBalls: 44, AccurateLongBalls: 24, PossessionPct: 39, PassPct: 74, Corners: 2, Offsides: 1},
		{TeamID: 3, MatchID: 5, Tackles: 19, EffectiveTackles: 14, Fouls: 10, YellowCards: 2, BlockedShots: 3, Interceptions: 9, Clearances: 13, EffectiveClearances: 10, Shots: 14, ShotsOnTarget: 6, Crosses: 13, AccurateCrosses: 5, LongBalls: 29, AccurateLongBalls: 20, PossessionPct: 54, PassPct: 86, Corners: 6, Offsides: 2},
		{TeamID: 1, MatchID: 5, Tackles: 23, EffectiveTackles: 14, Fouls: 15, YellowCards: 3, BlockedShots: 5, Interceptions: 12, Clearances: 18, EffectiveClearances: 13, Shots: 9, ShotsOnTarget: 2, Crosses: 11, AccurateCrosses: 3, LongBalls: 36, AccurateLongBalls: 21, PossessionPct: 46, PassPct: 80, Corners: 4, Offsides: 4},
		{TeamID: 2, MatchID: 6, Tackles: 22, EffectiveTackles: 15, Fouls: 14, YellowCards: 3, BlockedShots: 3, Interceptions: 10, Clearances: 15, EffectiveClearances: 11, Shots: 17, ShotsOnTarget: 9, Crosses: 16, AccurateCrosses: 6, LongBalls: 31, AccurateLongBalls: 19, PossessionPct: 57, PassPct: 83, Corners: 8, Offsides: 2},
		{TeamID: 4, MatchID: 6, Tackles: 25, EffectiveTackles: 14, Fouls: 17, YellowCards: 4, BlockedShots: 7, Interceptions: 15, Clearances: 26, EffectiveClearances: 18, Shots: 5, ShotsOnTarget: 1, Crosses: 7, AccurateCrosses: 2, LongBalls: 46, AccurateLongBalls: 23, PossessionPct: 43, PassPct: 72, Corners: 1, Offsides: 1},
	}
}

func SeedPlayerStats() []playerstats.MatchStat {
	keeper := func(saves, conceded int) *playerstats.KeeperStat {
		return &playerstats.KeeperStat{Saves: saves, GoalsConceded: conceded}
	}

	return []playerstats.MatchStat{
		{PlayerID: 1, MatchID: 1, Goals: 2, Assists: 1},
		{PlayerID: 2, MatchID: 1, Keeper: keeper(4, 1)},
		{PlayerID: 7, MatchID: 1, Goals: 1},
		{PlayerID: 8, MatchID: 1, Keeper: keeper(5, 3)},
		{PlayerID: 3, MatchID: 2, Goals: 1},
		{PlayerID: 4, MatchID: 2, Keeper: keeper(3, 1)},
		{PlayerID: 5, MatchID: 2, Goals: 1},
		{PlayerID: 6, MatchID: 2, Keeper: keeper(2, 1)},
		{PlayerID: 1, MatchID: 3},
		{PlayerID: 2, MatchID: 3, Keeper: keeper(2, 0)},
		{PlayerID: 3, MatchID: 3},
		{PlayerID: 4, MatchID: 3, Keeper: keeper(3, 0)},
		{PlayerID: 5, MatchID: 4, Goals: 1, Assists: 1},
		{PlayerID: 6, MatchID: 4, Keeper: keeper(4, 1)},
		{PlayerID: 7, MatchID: 4, Goals: 1},
		{PlayerID: 8, MatchID: 4, Keeper: keeper(3, 2)},
		{PlayerID: 5, MatchID: 5, Goals: 2},
		{PlayerID: 6, MatchID: 5, Keeper: keeper(5, 0)},
		{PlayerID: 1, MatchID: 5},
		{PlayerID: 2, MatchID: 5, Keeper: keeper(3, 2)},
		{PlayerID: 3, MatchID: 6, Goals: 3, Assists: 1},
		{PlayerID: 4, MatchID: 6, Keeper: keeper(1, 0)},
		{PlayerID: 7, MatchID: 6},
		{PlayerID: 8, MatchID: 6, Keeper: keeper(6, 4)},
	}
}
