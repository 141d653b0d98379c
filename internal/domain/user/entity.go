package user

import (
	"time"
)

// Role represents the access level of a profile.
type Role string

const (
	RoleEmployee Role = "employee"
	RoleHR       Role = "hr"
	RoleAdmin    Role = "admin"
)

// Status represents whether a profile participates in rosters.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// User is a profile row. Inactive users keep their history but are
// excluded from roster enumeration and absence marking.
type User struct {
	ID           string
	Email        string
	FullName     string
	Role         Role
	Status       Status
	PasswordHash *string
	GoogleID     *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsActive reports whether the profile belongs to the active roster.
func (u User) IsActive() bool {
	return u.Status == StatusActive
}
