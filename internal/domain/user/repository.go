package user

import (
	"context"
)

// UserRepository defines data access for profiles.
type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByGoogleID(ctx context.Context, googleID string) (User, error)

	// ListActive enumerates the active roster. Used by the single-day
	// calendar view and the absence auto-marker.
	ListActive(ctx context.Context) ([]User, error)

	Update(ctx context.Context, u User) error
}
