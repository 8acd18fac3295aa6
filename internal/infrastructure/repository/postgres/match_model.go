package postgres

import "time"

type matchTableModel struct {
	ID         int64      `db:"id"`
	HomeTeamID int64      `db:"home_team_id"`
	AwayTeamID int64      `db:"away_team_id"`
	HomeTeam   string     `db:"home_team"`
	AwayTeam   string     `db:"away_team"`
	HomeScore  int        `db:"home_score"`
	AwayScore  int        `db:"away_score"`
	MatchDate  time.Time  `db:"match_date"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at"`
	DeletedAt  *time.Time `db:"deleted_at"`
}
