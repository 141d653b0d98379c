package leave

import "errors"

var (
	ErrRequestNotFound  = errors.New("leave request not found")
	ErrAlreadyProcessed = errors.New("leave request has already been processed")
	ErrInvalidDateRange = errors.New("end date must not be before start date")
	ErrReasonReserved   = errors.New("this reason is reserved for system use")
	ErrUnauthorized     = errors.New("unauthorized to access this leave request")
)
