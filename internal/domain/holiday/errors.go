package holiday

import "errors"

var (
	ErrEventNotFound = errors.New("holiday event not found")
)
