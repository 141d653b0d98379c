package calendar

import (
	"context"
	"time"
)

// MaintenanceRepository wraps the backend procedures behind the
// best-effort self-heal. Both operations are invoked fire-and-forget
// by the month-stats read path; callers log failures and carry on.
type MaintenanceRepository interface {
	// RetractFutureUnexcusedAbsences removes unexcused-absence rows
	// dated today or later, correcting a historical bug that marked
	// future days absent. Implementations should prefer an atomic
	// server-side procedure and fall back to a direct delete.
	RetractFutureUnexcusedAbsences(ctx context.Context, from time.Time) (int64, error)

	// MarkAbsencesForRange inserts an approved unexcused-absence row
	// for every active user lacking both an attendance log and an
	// approved leave on each working day in [start, end].
	MarkAbsencesForRange(ctx context.Context, start, end time.Time) (int64, error)
}
