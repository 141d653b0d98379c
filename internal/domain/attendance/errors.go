package attendance

import "errors"

var (
	ErrAlreadyClockedIn = errors.New("you have already clocked in today")
	ErrNotClockedIn     = errors.New("you have not clocked in yet")
	ErrAlreadyClockedOut = errors.New("you have already clocked out")

	ErrLogNotFound      = errors.New("attendance log not found")
	ErrAlreadyProcessed = errors.New("attendance log has already been approved or rejected")
	ErrInvalidMode      = errors.New("invalid work mode")
	ErrUnauthorized     = errors.New("unauthorized to access this attendance log")
)
