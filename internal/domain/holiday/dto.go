package holiday

import (
	"github.com/workline-hr/workline-backend-go/internal/pkg/validator"
)

// CreateRequest registers a holiday. Admin only.
type CreateRequest struct {
	EventDate string `json:"event_date"` // YYYY-MM-DD
	Title     string `json:"title"`
}

func (r CreateRequest) Validate() error {
	var errs validator.ValidationErrors
	if _, ok := validator.IsValidDate(r.EventDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "event_date", Message: "must be a valid YYYY-MM-DD date"})
	}
	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// EventResponse is the JSON shape of an event.
type EventResponse struct {
	ID        string `json:"id"`
	EventDate string `json:"event_date"`
	Title     string `json:"title"`
}
