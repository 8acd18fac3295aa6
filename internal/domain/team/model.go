package team

// Team is reference data: identity plus display metadata. Stat rows
// reference teams by id and never embed them.
type Team struct {
	ID   int64
	Name string
	Logo string
}
