package announcement

import (
	"context"
	"time"
)

// Repository defines data access for announcements.
type Repository interface {
	Create(ctx context.Context, a Announcement) (Announcement, error)
	GetByID(ctx context.Context, id string) (Announcement, error)
	List(ctx context.Context, filter ListFilter, now time.Time) ([]Announcement, int64, error)
	Update(ctx context.Context, a Announcement) error
	Delete(ctx context.Context, id string) error
}
