package leave

import (
	"context"
	"time"
)

// RequestRepository defines data access for leave requests.
type RequestRepository interface {
	Create(ctx context.Context, req Request) (Request, error)
	GetByID(ctx context.Context, id string) (Request, error)

	// ListApprovedOverlapping retrieves approved requests whose
	// [start_date, end_date] interval overlaps [start, end], optionally
	// scoped to one user. This is the month-stats fetch.
	ListApprovedOverlapping(ctx context.Context, start, end time.Time, userID *string) ([]Request, error)

	// List retrieves requests with filters and pagination.
	List(ctx context.Context, filter ListFilter) ([]Request, int64, error)

	UpdateStatus(ctx context.Context, id, status string, decidedBy string, rejectionReason *string) error

	// DeleteFutureUnexcused is the direct-delete fallback of the
	// self-healing step: it removes unexcused-absence rows whose
	// start_date is on or after the given day.
	DeleteFutureUnexcused(ctx context.Context, from time.Time) (int64, error)
}
