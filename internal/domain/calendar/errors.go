package calendar

import "errors"

var (
	ErrInvalidDate        = errors.New("date must be in YYYY-MM-DD format")
	ErrDayAlreadyRecorded = errors.New("user already has an attendance record for this day")
)
