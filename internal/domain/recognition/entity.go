package recognition

import (
	"time"
)

// Point bounds for a single award.
const (
	MinPoints = 1
	MaxPoints = 100
)

// Award is one recognition grant between two users.
type Award struct {
	ID          string
	SenderID    string
	RecipientID string
	Points      int
	Message     string
	CreatedAt   time.Time

	// Joined for responses
	SenderName    *string
	RecipientName *string
}

// Balance is a user's accumulated recognition points.
type Balance struct {
	UserID   string `json:"user_id"`
	UserName string `json:"user_name"`
	Points   int64  `json:"points"`
}
