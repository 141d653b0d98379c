package helpdesk

import (
	"github.com/workline-hr/workline-backend-go/internal/pkg/validator"
)

// CreateTicketRequest opens a new ticket for the authenticated user.
type CreateTicketRequest struct {
	Subject     string `json:"subject"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Priority    string `json:"priority"`
}

func (r CreateTicketRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Subject) {
		errs = append(errs, validator.ValidationError{Field: "subject", Message: "is required"})
	}
	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{Field: "description", Message: "is required"})
	}
	if !validator.IsInSlice(r.Priority, []string{PriorityLow, PriorityMedium, PriorityHigh}) {
		errs = append(errs, validator.ValidationError{Field: "priority", Message: "must be 'low', 'medium' or 'high'"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// AssignRequest hands a ticket to an agent.
type AssignRequest struct {
	AssigneeID string `json:"assignee_id"`
}

func (r AssignRequest) Validate() error {
	if validator.IsEmpty(r.AssigneeID) {
		return validator.ValidationErrors{{Field: "assignee_id", Message: "is required"}}
	}
	return nil
}

// TransitionRequest moves a ticket through its lifecycle.
type TransitionRequest struct {
	Status string `json:"status"`
}

func (r TransitionRequest) Validate() error {
	if !validator.IsInSlice(r.Status, []string{StatusOpen, StatusInProgress, StatusResolved, StatusClosed}) {
		return validator.ValidationErrors{{Field: "status", Message: "must be a valid ticket status"}}
	}
	return nil
}

// CommentRequest appends to a ticket's thread.
type CommentRequest struct {
	Body string `json:"body"`
}

func (r CommentRequest) Validate() error {
	if validator.IsEmpty(r.Body) {
		return validator.ValidationErrors{{Field: "body", Message: "is required"}}
	}
	return nil
}

// ListFilter narrows the ticket listing.
type ListFilter struct {
	RequesterID *string
	AssigneeID  *string
	Status      *string
	Priority    *string
	Page        int
	Limit       int
}
