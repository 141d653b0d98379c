package helpdesk

import (
	"time"
)

// Ticket statuses, in lifecycle order.
const (
	StatusOpen       = "open"
	StatusInProgress = "in_progress"
	StatusResolved   = "resolved"
	StatusClosed     = "closed"
)

// Priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Ticket is one helpdesk request.
type Ticket struct {
	ID          string
	Number      string // human-facing, e.g. HD-3f2a9c
	RequesterID string
	Subject     string
	Description string
	Category    string
	Priority    string
	Status      string
	AssigneeID  *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined for responses
	RequesterName *string
	AssigneeName  *string
}

// Comment is one entry in a ticket's thread.
type Comment struct {
	ID        string
	TicketID  string
	AuthorID  string
	Body      string
	CreatedAt time.Time

	AuthorName *string
}

// validTransitions encodes the allowed status lifecycle.
var validTransitions = map[string][]string{
	StatusOpen:       {StatusInProgress, StatusClosed},
	StatusInProgress: {StatusResolved, StatusClosed},
	StatusResolved:   {StatusClosed, StatusInProgress},
	StatusClosed:     {},
}

// CanTransition reports whether a ticket may move from one status to
// another.
func CanTransition(from, to string) bool {
	for _, next := range validTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
