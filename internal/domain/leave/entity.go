package leave

import (
	"time"
)

// Request statuses. Only approved rows participate in day-status
// computation.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// ReasonUnexcusedAbsence is the sentinel reason distinguishing an
// administratively recorded absence from ordinary leave. Such rows are
// stored in leave_requests but classify a day as absent, not on leave.
const ReasonUnexcusedAbsence = "Unexcused Absence"

// Request represents a continuous leave interval, [StartDate, EndDate]
// inclusive.
type Request struct {
	ID        string
	UserID    string
	StartDate time.Time
	EndDate   time.Time
	Reason    string
	Status    string

	ApprovedBy      *string
	ApprovedAt      *time.Time
	RejectionReason *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined for responses
	UserName *string
}

// IsUnexcusedAbsence reports whether the row is an absence marker
// rather than a true leave.
func (r Request) IsUnexcusedAbsence() bool {
	return r.Reason == ReasonUnexcusedAbsence
}
