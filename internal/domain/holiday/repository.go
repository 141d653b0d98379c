package holiday

import (
	"context"
	"time"
)

// EventRepository defines data access for holiday events.
type EventRepository interface {
	Create(ctx context.Context, event Event) (Event, error)

	// GetByDate returns every holiday on the given calendar day.
	GetByDate(ctx context.Context, day time.Time) ([]Event, error)

	// ListForRange returns holidays with event_date in [start, end].
	ListForRange(ctx context.Context, start, end time.Time) ([]Event, error)

	Delete(ctx context.Context, id string) error
}
