package announcement

import (
	"context"
)

// Service defines announcement operations.
type Service interface {
	Create(ctx context.Context, authorID string, req CreateRequest) (Announcement, error)
	Get(ctx context.Context, id string) (Announcement, error)
	List(ctx context.Context, filter ListFilter) ([]Announcement, int64, error)
	Update(ctx context.Context, id string, req UpdateRequest) (Announcement, error)
	Delete(ctx context.Context, id string) error
}
