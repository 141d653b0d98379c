package announcement

import (
	"time"
)

// Audiences an announcement can target.
const (
	AudienceAll = "all"
	AudienceHR  = "hr"
)

// Announcement is one company-wide posting. It is visible once
// PublishAt is in the past.
type Announcement struct {
	ID        string
	AuthorID  string
	Title     string
	Body      string
	Audience  string
	PublishAt time.Time
	CreatedAt time.Time
	UpdatedAt time.Time

	AuthorName *string
}

// IsPublished reports whether the announcement is visible at now.
func (a Announcement) IsPublished(now time.Time) bool {
	return !a.PublishAt.After(now)
}
