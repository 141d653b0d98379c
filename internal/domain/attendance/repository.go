package attendance

import (
	"context"
	"time"
)

// LogRepository defines data access for attendance logs.
type LogRepository interface {
	Create(ctx context.Context, log Log) (Log, error)
	GetByID(ctx context.Context, id string) (Log, error)

	// GetOpenSession returns the latest log for the user without a
	// clock-out, if any. Used to prevent double clock-in.
	GetOpenSession(ctx context.Context, userID string) (*Log, error)

	// ListForRange retrieves logs with work_date in [start, end],
	// optionally scoped to one user. This is the month-stats fetch.
	ListForRange(ctx context.Context, start, end time.Time, userID *string) ([]Log, error)

	// List retrieves logs with filters and pagination for the HR view.
	List(ctx context.Context, filter ListFilter) ([]Log, int64, error)

	// HasRecordForDay reports whether the user already has any log for
	// the calendar day, regardless of status.
	HasRecordForDay(ctx context.Context, userID string, day time.Time) (bool, error)

	Update(ctx context.Context, log Log) error
	Delete(ctx context.Context, id string) error
}
