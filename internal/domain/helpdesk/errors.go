package helpdesk

import "errors"

var (
	ErrTicketNotFound    = errors.New("ticket not found")
	ErrInvalidTransition = errors.New("invalid ticket status transition")
	ErrUnauthorized      = errors.New("unauthorized to access this ticket")
)
