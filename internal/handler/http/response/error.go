package response

import (
	"errors"
	"net/http"

	"github.com/workline-hr/workline-backend-go/internal/domain/announcement"
	"github.com/workline-hr/workline-backend-go/internal/domain/attendance"
	"github.com/workline-hr/workline-backend-go/internal/domain/auth"
	"github.com/workline-hr/workline-backend-go/internal/domain/calendar"
	"github.com/workline-hr/workline-backend-go/internal/domain/helpdesk"
	"github.com/workline-hr/workline-backend-go/internal/domain/holiday"
	"github.com/workline-hr/workline-backend-go/internal/domain/leave"
	"github.com/workline-hr/workline-backend-go/internal/domain/notification"
	"github.com/workline-hr/workline-backend-go/internal/domain/recognition"
	"github.com/workline-hr/workline-backend-go/internal/domain/user"
	"github.com/workline-hr/workline-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrAccountInactive):
		Forbidden(w, "Account is inactive")

	// Users
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrHRPrivilegeRequired):
		Forbidden(w, "HR privilege required")

	// Attendance
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Conflict(w, "Already clocked in today")
	case errors.Is(err, attendance.ErrNotClockedIn):
		Conflict(w, "No open session to clock out")
	case errors.Is(err, attendance.ErrAlreadyClockedOut):
		Conflict(w, "Already clocked out")
	case errors.Is(err, attendance.ErrLogNotFound):
		NotFound(w, "Attendance log not found")
	case errors.Is(err, attendance.ErrAlreadyProcessed):
		Conflict(w, "Attendance log already processed")
	case errors.Is(err, attendance.ErrUnauthorized):
		Forbidden(w, "Not allowed to access this attendance log")

	// Leave
	case errors.Is(err, leave.ErrRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "End date must not be before start date", nil)
	case errors.Is(err, leave.ErrReasonReserved):
		BadRequest(w, "This reason is reserved for system use", nil)
	case errors.Is(err, leave.ErrUnauthorized):
		Forbidden(w, "Not allowed to access this leave request")

	// Calendar
	case errors.Is(err, calendar.ErrInvalidDate):
		BadRequest(w, "Date must be in YYYY-MM-DD format", nil)
	case errors.Is(err, calendar.ErrDayAlreadyRecorded):
		Conflict(w, "User already has an attendance record for this day")

	// Holiday
	case errors.Is(err, holiday.ErrEventNotFound):
		NotFound(w, "Holiday event not found")

	// Helpdesk
	case errors.Is(err, helpdesk.ErrTicketNotFound):
		NotFound(w, "Ticket not found")
	case errors.Is(err, helpdesk.ErrInvalidTransition):
		Conflict(w, "Invalid ticket status transition")
	case errors.Is(err, helpdesk.ErrUnauthorized):
		Forbidden(w, "Not allowed to access this ticket")

	// Recognition
	case errors.Is(err, recognition.ErrSelfAward):
		BadRequest(w, "You cannot award points to yourself", nil)
	case errors.Is(err, recognition.ErrAwardNotFound):
		NotFound(w, "Award not found")

	// Announcements
	case errors.Is(err, announcement.ErrAnnouncementNotFound):
		NotFound(w, "Announcement not found")

	// Notifications
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")
	case errors.Is(err, notification.ErrUnauthorized):
		Forbidden(w, "Not allowed to access this notification")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
