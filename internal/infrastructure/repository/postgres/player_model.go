package postgres

import "time"

type playerTableModel struct {
	ID        int64      `db:"id"`
	TeamID    int64      `db:"team_id"`
	FullName  string     `db:"full_name"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}
