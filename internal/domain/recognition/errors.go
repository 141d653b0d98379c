package recognition

import "errors"

var (
	ErrSelfAward     = errors.New("you cannot award points to yourself")
	ErrAwardNotFound = errors.New("award not found")
)
