package holiday

import (
	"time"
)

// Event is a company-wide calendar holiday. Its presence suppresses
// absence classification for users without an individual record that
// day.
type Event struct {
	ID        string
	EventDate time.Time
	Title     string
	CreatedAt time.Time
}
