package playerstats

import "context"

type Repository interface {
	ListAll(ctx context.Context) ([]MatchStat, error)
	ListByMatch(ctx context.Context, matchID int64) ([]MatchStat, error)
}
