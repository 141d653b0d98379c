package calendar

import (
	"time"

	"github.com/workline-hr/workline-backend-go/internal/pkg/validator"
)

// MonthStatsRequest selects a month and an optional single-user scope.
type MonthStatsRequest struct {
	Month  string  // YYYY-MM, defaults to the current month
	UserID *string // nil means aggregate across all users
}

func (r MonthStatsRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.Month != "" {
		if _, err := time.Parse("2006-01", r.Month); err != nil {
			errs = append(errs, validator.ValidationError{Field: "month", Message: "must be in YYYY-MM format"})
		}
	}
	if r.UserID != nil && validator.IsEmpty(*r.UserID) {
		errs = append(errs, validator.ValidationError{Field: "user_id", Message: "must not be empty"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// MonthStatsResponse carries the reduced per-day statuses plus the
// weekday offset the client needs for its leading blank grid cells.
type MonthStatsResponse struct {
	Month        string      `json:"month"`
	FirstWeekday int         `json:"first_weekday"` // 0 = Sunday
	Days         []DayStatus `json:"days"`
}

// DayDetailResponse is the drill-down: every roster member's status
// for one day.
type DayDetailResponse struct {
	Date    string          `json:"date"`
	Holiday *string         `json:"holiday,omitempty"`
	Users   []UserDayDetail `json:"users"`
}

// Override actions for the drill-down's manual corrections.
const (
	OverrideMarkPresent = "mark_present"
	OverrideMarkAbsent  = "mark_absent"
)

// OverrideRequest mutates one user's record for one day.
type OverrideRequest struct {
	UserID string `json:"user_id"`
	Action string `json:"action"`
}

func (r OverrideRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{Field: "user_id", Message: "is required"})
	}
	if !validator.IsInSlice(r.Action, []string{OverrideMarkPresent, OverrideMarkAbsent}) {
		errs = append(errs, validator.ValidationError{Field: "action", Message: "must be 'mark_present' or 'mark_absent'"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
