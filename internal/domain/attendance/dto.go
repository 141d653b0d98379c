package attendance

import (
	"github.com/workline-hr/workline-backend-go/internal/pkg/validator"
)

// ClockInRequest starts a session for the authenticated user.
type ClockInRequest struct {
	Mode string `json:"mode"`
}

func (r ClockInRequest) Validate() error {
	var errs validator.ValidationErrors
	if !validator.IsInSlice(r.Mode, []string{ModeOnsite, ModeWFH}) {
		errs = append(errs, validator.ValidationError{Field: "mode", Message: "must be 'onsite' or 'wfh'"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ListFilter narrows the HR listing endpoint.
type ListFilter struct {
	UserID    *string
	StartDate *string
	EndDate   *string
	Status    *string
	Page      int
	Limit     int
}

// DecisionRequest approves or rejects a pending log.
type DecisionRequest struct {
	RejectionReason *string `json:"rejection_reason,omitempty"`
}

// LogResponse is the JSON shape of a log.
type LogResponse struct {
	ID        string  `json:"id"`
	UserID    string  `json:"user_id"`
	UserName  *string `json:"user_name,omitempty"`
	WorkDate  string  `json:"work_date"`
	ClockIn   *string `json:"clock_in,omitempty"`
	ClockOut  *string `json:"clock_out,omitempty"`
	Status    string  `json:"status"`
	Mode      string  `json:"mode"`
	CreatedAt string  `json:"created_at"`
}
