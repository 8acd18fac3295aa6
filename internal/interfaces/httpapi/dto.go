package httpapi

import (
	"time"

	"github.com/soccerstats/dashboard-api/internal/domain/match"
	"github.com/soccerstats/dashboard-api/internal/domain/team"
	"github.com/soccerstats/dashboard-api/internal/domain/teamstats"
	"github.com/soccerstats/dashboard-api/internal/usecase"
)

type playerRowDTO struct {
	PlayerID         int64  `json:"playerId"`
	Name             string `json:"name"`
	TeamName         string `json:"teamName"`
	Logo             string `json:"logo"`
	Matches          int    `json:"matches"`
	Goals            int    `json:"goals"`
	Assists          int    `json:"assists"`
	GoalContribution int    `json:"goalContribution"`
}

type keeperRowDTO struct {
	PlayerID      int64   `json:"playerId"`
	Name          string  `json:"name"`
	TeamName      string  `json:"teamName"`
	Logo          string  `json:"logo"`
	Matches       int     `json:"matches"`
	Saves         int     `json:"saves"`
	GoalsConceded int     `json:"goalsConceded"`
	SavePct       float64 `json:"savePct"`
}

type teamRowDTO struct {
	TeamID        int64   `json:"teamId"`
	Name          string  `json:"name"`
	Logo          string  `json:"logo"`
	Score         float64 `json:"score"`
	Matches       int     `json:"matches"`
	Wins          int     `json:"wins"`
	GoalsScored   int     `json:"goalsScored"`
	GoalsConceded int     `json:"goalsConceded"`
}

type teamDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}

type matchDTO struct {
	ID         int64     `json:"id"`
	HomeTeamID int64     `json:"homeTeamId"`
	AwayTeamID int64     `json:"awayTeamId"`
	HomeTeam   string    `json:"homeTeam"`
	AwayTeam   string    `json:"awayTeam"`
	HomeScore  int       `json:"homeScore"`
	AwayScore  int       `json:"awayScore"`
	Date       time.Time `json:"date"`
}

type teamStatLineDTO struct {
	Tackles             int     `json:"tackles"`
	EffectiveTackles    int     `json:"effectiveTackles"`
	Fouls               int     `json:"fouls"`
	YellowCards         int     `json:"yellowCards"`
	RedCards            int     `json:"redCards"`
	BlockedShots        int     `json:"blockedShots"`
	Interceptions       int     `json:"interceptions"`
	Clearances          int     `json:"clearances"`
	EffectiveClearances int     `json:"effectiveClearances"`
	Shots               int     `json:"shots"`
	ShotsOnTarget       int     `json:"shotsOnTarget"`
	Crosses             int     `json:"crosses"`
	AccurateCrosses     int     `json:"accurateCrosses"`
	LongBalls           int     `json:"longBalls"`
	AccurateLongBalls   int     `json:"accurateLongBalls"`
	PossessionPct       float64 `json:"possessionPct"`
	PassPct             float64 `json:"passPct"`
	Corners             int     `json:"corners"`
	Offsides            int     `json:"offsides"`
}

type teamMatchLineDTO struct {
	TeamID   int64           `json:"teamId"`
	TeamName string          `json:"teamName"`
	Logo     string          `json:"logo"`
	Stat     teamStatLineDTO `json:"stat"`
}

type teamOverviewDTO struct {
	TeamID           int64   `json:"teamId"`
	Name             string  `json:"name"`
	Logo             string  `json:"logo"`
	Matches          int     `json:"matches"`
	Wins             int     `json:"wins"`
	GoalsScored      int     `json:"goalsScored"`
	GoalsConceded    int     `json:"goalsConceded"`
	AvgPossessionPct float64 `json:"avgPossessionPct"`
	AvgPassPct       float64 `json:"avgPassPct"`
	AvgShots         float64 `json:"avgShots"`
	Corners          int     `json:"corners"`
}

type matchGoalsDTO struct {
	MatchNumber int   `json:"matchNumber"`
	MatchID     int64 `json:"matchId"`
	GoalsScored int   `json:"goalsScored"`
}

type summaryDTO struct {
	TopPlayers     []playerRowDTO `json:"topPlayers"`
	TopGoalkeepers []keeperRowDTO `json:"topGoalkeepers"`
	MostAggressive []teamRowDTO   `json:"mostAggressive"`
	BestDefensive  []teamRowDTO   `json:"bestDefensive"`
	BestAttacking  []teamRowDTO   `json:"bestAttacking"`
}

func playerRowsToDTO(rows []usecase.PlayerRow) []playerRowDTO {
	items := make([]playerRowDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, playerRowDTO{
			PlayerID:         row.PlayerID,
			Name:             row.Name,
			TeamName:         row.TeamName,
			Logo:             row.Logo,
			Matches:          row.Matches,
			Goals:            row.Goals,
			Assists:          row.Assists,
			GoalContribution: row.GoalContribution,
		})
	}

	return items
}

func keeperRowsToDTO(rows []usecase.KeeperRow) []keeperRowDTO {
	items := make([]keeperRowDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, keeperRowDTO{
			PlayerID:      row.PlayerID,
			Name:          row.Name,
			TeamName:      row.TeamName,
			Logo:          row.Logo,
			Matches:       row.Matches,
			Saves:         row.Saves,
			GoalsConceded: row.GoalsConceded,
			SavePct:       row.SavePct,
		})
	}

	return items
}

func teamRowsToDTO(rows []usecase.TeamRow) []teamRowDTO {
	items := make([]teamRowDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, teamRowDTO{
			TeamID:        row.TeamID,
			Name:          row.Name,
			Logo:          row.Logo,
			Score:         row.Score,
			Matches:       row.Totals.Matches,
			Wins:          row.Totals.Wins,
			GoalsScored:   row.Totals.GoalsScored,
			GoalsConceded: row.Totals.GoalsConceded,
		})
	}

	return items
}

func teamToDTO(t team.Team) teamDTO {
	return teamDTO{ID: t.ID, Name: t.Name, Logo: t.Logo}
}

func matchToDTO(m match.Match) matchDTO {
	return matchDTO{
		ID:         m.ID,
		HomeTeamID: m.HomeTeamID,
		AwayTeamID: m.AwayTeamID,
		HomeTeam:   m.HomeTeam,
		AwayTeam:   m.AwayTeam,
		HomeScore:  m.HomeScore,
		AwayScore:  m.AwayScore,
		Date:       m.Date,
	}
}

func teamStatToDTO(s teamstats.MatchStat) teamStatLineDTO {
	return teamStatLineDTO{
		Tackles:             s.Tackles,
		EffectiveTackles:    s.EffectiveTackles,
		Fouls:               s.Fouls,
		YellowCards:         s.YellowCards,
		RedCards:            s.RedCards,
		BlockedShots:        s.BlockedShots,
		Interceptions:       s.Interceptions,
		Clearances:          s.Clearances,
		EffectiveClearances: s.EffectiveClearances,
		Shots:               s.Shots,
		ShotsOnTarget:       s.ShotsOnTarget,
		Crosses:             s.Crosses,
		AccurateCrosses:     s.AccurateCrosses,
		LongBalls:           s.LongBalls,
		AccurateLongBalls:   s.AccurateLongBalls,
		PossessionPct:       s.PossessionPct,
		PassPct:             s.PassPct,
		Corners:             s.Corners,
		Offsides:            s.Offsides,
	}
}
