package recognition

import (
	"context"
)

// AwardRepository defines data access for recognition awards.
type AwardRepository interface {
	Create(ctx context.Context, award Award) (Award, error)
	Feed(ctx context.Context, filter FeedFilter) ([]Award, int64, error)
	BalanceOf(ctx context.Context, userID string) (int64, error)
	Leaderboard(ctx context.Context, limit int) ([]Balance, error)
}
