package notification

import (
	"time"
)

// Type tags what triggered a notification.
type Type string

const (
	TypeLeaveApproved         Type = "leave_approved"
	TypeLeaveRejected         Type = "leave_rejected"
	TypeAttendanceApproved    Type = "attendance_approved"
	TypeAttendanceRejected    Type = "attendance_rejected"
	TypeAttendanceOverride    Type = "attendance_override"
	TypeMarkedAbsent          Type = "marked_absent"
	TypeTicketUpdated         Type = "ticket_updated"
	TypeRecognitionReceived   Type = "recognition_received"
	TypeAnnouncementPublished Type = "announcement_published"
)

// Notification is one delivery to one recipient.
type Notification struct {
	ID          string
	RecipientID string
	SenderID    *string
	Type        Type
	Title       string
	Message     string
	Data        map[string]interface{}
	IsRead      bool
	ReadAt      *time.Time
	CreatedAt   time.Time
}
