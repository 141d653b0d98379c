package attendance

import (
	"time"
)

// Log statuses. Pending logs exist but do not count toward presence
// until HR approval.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Work modes.
const (
	ModeOnsite = "onsite"
	ModeWFH    = "wfh"
)

// Log represents one clock-in session for one user on one work day.
// One row is expected per user per day; consumers must not assume
// uniqueness.
type Log struct {
	ID       string
	UserID   string
	WorkDate time.Time
	ClockIn  *time.Time
	ClockOut *time.Time
	Status   string
	Mode     string

	ApprovedBy *string
	ApprovedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined for responses
	UserName *string
}
