package player

type Player struct {
	ID       int64
	TeamID   int64
	FullName string
}
