package recognition

import (
	"fmt"

	"github.com/workline-hr/workline-backend-go/internal/pkg/validator"
)

// GiveRequest awards points to another user.
type GiveRequest struct {
	RecipientID string `json:"recipient_id"`
	Points      int    `json:"points"`
	Message     string `json:"message"`
}

func (r GiveRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.RecipientID) {
		errs = append(errs, validator.ValidationError{Field: "recipient_id", Message: "is required"})
	}
	if r.Points < MinPoints || r.Points > MaxPoints {
		errs = append(errs, validator.ValidationError{
			Field:   "points",
			Message: fmt.Sprintf("must be between %d and %d", MinPoints, MaxPoints),
		})
	}
	if validator.IsEmpty(r.Message) {
		errs = append(errs, validator.ValidationError{Field: "message", Message: "is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// FeedFilter pages through the recognition feed.
type FeedFilter struct {
	UserID *string // sender or recipient
	Page   int
	Limit  int
}
