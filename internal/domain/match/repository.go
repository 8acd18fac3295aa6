package match

import "context"

type Repository interface {
	ListRecent(ctx context.Context, limit int) ([]Match, error)
	ListAll(ctx context.Context) ([]Match, error)
	GetByID(ctx context.Context, matchID int64) (Match, bool, error)
}
