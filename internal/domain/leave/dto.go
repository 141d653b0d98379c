package leave

import (
	"github.com/workline-hr/workline-backend-go/internal/pkg/validator"
)

// SubmitRequest files a new leave request for the authenticated user.
type SubmitRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
}

func (r SubmitRequest) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a valid YYYY-MM-DD date"})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be a valid YYYY-MM-DD date"})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not be before start_date"})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "is required"})
	}
	if r.Reason == ReasonUnexcusedAbsence {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "is reserved for system use"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DecisionRequest approves or rejects a pending request.
type DecisionRequest struct {
	RejectionReason *string `json:"rejection_reason,omitempty"`
}

// ListFilter narrows the HR listing endpoint.
type ListFilter struct {
	UserID *string
	Status *string
	Page   int
	Limit  int
}

// RequestResponse is the JSON shape of a leave request.
type RequestResponse struct {
	ID        string  `json:"id"`
	UserID    string  `json:"user_id"`
	UserName  *string `json:"user_name,omitempty"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	Reason    string  `json:"reason"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"created_at"`
}
