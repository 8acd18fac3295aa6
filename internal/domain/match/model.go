package match

import "time"

// Match is one played fixture. Rows are immutable once created; Date
// defines chronological order.
type Match struct {
	ID         int64
	HomeTeamID int64
	AwayTeamID int64
	HomeTeam   string
	AwayTeam   string
	HomeScore  int
	AwayScore  int
	Date       time.Time
}

// GoalsFor returns the goals scored by teamID in this match, relative to
// its home/away role. Teams that did not play the match score 0.
func (m Match) GoalsFor(teamID int64) int {
	switch teamID {
	case m.HomeTeamID:
		return m.HomeScore
	case m.AwayTeamID:
		return m.AwayScore
	default:
		return 0
	}
}

// GoalsAgainst mirrors GoalsFor.
func (m Match) GoalsAgainst(teamID int64) int {
	switch teamID {
	case m.HomeTeamID:
		return m.AwayScore
	case m.AwayTeamID:
		return m.HomeScore
	default:
		return 0
	}
}

// WonBy reports whether teamID won this match.
func (m Match) WonBy(teamID int64) bool {
	switch teamID {
	case m.HomeTeamID:
		return m.HomeScore > m.AwayScore
	case m.AwayTeamID:
		return m.AwayScore > m.HomeScore
	default:
		return false
	}
}
