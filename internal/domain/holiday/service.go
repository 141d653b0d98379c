package holiday

import (
	"context"
)

// Service defines holiday event operations.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (Event, error)
	ListForRange(ctx context.Context, start, end string) ([]Event, error)
	Delete(ctx context.Context, id string) error
}
