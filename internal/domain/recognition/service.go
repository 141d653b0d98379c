package recognition

import (
	"context"
)

// Service defines recognition operations.
type Service interface {
	Give(ctx context.Context, senderID string, req GiveRequest) (Award, error)
	Feed(ctx context.Context, filter FeedFilter) ([]Award, int64, error)
	Balance(ctx context.Context, userID string) (Balance, error)
	Leaderboard(ctx context.Context, limit int) ([]Balance, error)
}
