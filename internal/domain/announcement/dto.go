package announcement

import (
	"time"

	"github.com/workline-hr/workline-backend-go/internal/pkg/validator"
)

// CreateRequest posts a new announcement. Admin only.
type CreateRequest struct {
	Title     string `json:"title"`
	Body      string `json:"body"`
	Audience  string `json:"audience"`
	PublishAt string `json:"publish_at,omitempty"` // RFC 3339; empty means now
}

func (r CreateRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "is required"})
	}
	if validator.IsEmpty(r.Body) {
		errs = append(errs, validator.ValidationError{Field: "body", Message: "is required"})
	}
	if !validator.IsInSlice(r.Audience, []string{AudienceAll, AudienceHR}) {
		errs = append(errs, validator.ValidationError{Field: "audience", Message: "must be 'all' or 'hr'"})
	}
	if r.PublishAt != "" {
		if _, err := time.Parse(time.RFC3339, r.PublishAt); err != nil {
			errs = append(errs, validator.ValidationError{Field: "publish_at", Message: "must be an RFC 3339 timestamp"})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateRequest replaces an announcement's content. Admin only; the
// same field rules as CreateRequest apply.
type UpdateRequest struct {
	Title     string `json:"title"`
	Body      string `json:"body"`
	Audience  string `json:"audience"`
	PublishAt string `json:"publish_at,omitempty"`
}

func (r UpdateRequest) Validate() error {
	return CreateRequest(r).Validate()
}

// ListFilter pages through visible announcements.
type ListFilter struct {
	IncludeScheduled bool // admin listing shows not-yet-published rows
	Page             int
	Limit            int
}
