package player

import "context"

type Repository interface {
	List(ctx context.Context) ([]Player, error)
	GetByID(ctx context.Context, playerID int64) (Player, bool, error)
}
