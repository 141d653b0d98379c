package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/workline-hr/workline-backend-go/internal/domain/attendance"
	"github.com/workline-hr/workline-backend-go/internal/domain/notification"
	"github.com/workline-hr/workline-backend-go/internal/pkg/dateutil"
)

type AttendanceServiceImpl struct {
	attendance.LogRepository
	notifySvc notification.Service
	loc       *time.Location
	logger    *slog.Logger
}

func NewAttendanceService(repo attendance.LogRepository, notifySvc notification.Service, loc *time.Location, logger *slog.Logger) attendance.Service {
	if loc == nil {
		loc = time.Local
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &AttendanceServiceImpl{
		LogRepository: repo,
		notifySvc:     notifySvc,
		loc:           loc,
		logger:        logger,
	}
}

// ClockIn opens today's session. One record per user per day: a second
// clock-in on the same calendar day is rejected.
func (s *AttendanceServiceImpl) ClockIn(ctx context.Context, userID string, req attendance.ClockInRequest) (attendance.Log, error) {
	if err := req.Validate(); err != nil {
		return attendance.Log{}, err
	}

	now := time.Now().In(s.loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc)

	exists, err := s.LogRepository.HasRecordForDay(ctx, userID, today)
	if err != nil {
		return attendance.Log{}, fmt.Errorf("failed to check existing log: %w", err)
	}
	if exists {
		return attendance.Log{}, attendance.ErrAlreadyClockedIn
	}

	log, err := s.LogRepository.Create(ctx, attendance.Log{
		UserID:   userID,
		WorkDate: today,
		ClockIn:  &now,
		Status:   attendance.StatusPending,
		Mode:     req.Mode,
	})
	if err != nil {
		return attendance.Log{}, fmt.Errorf("failed to create attendance log: %w", err)
	}
	return log, nil
}

// ClockOut closes the open session.
func (s *AttendanceServiceImpl) ClockOut(ctx context.Context, userID string) (attendance.Log, error) {
	open, err := s.LogRepository.GetOpenSession(ctx, userID)
	if err != nil {
		return attendance.Log{}, fmt.Errorf("failed to get open session: %w", err)
	}
	if open == nil {
		return attendance.Log{}, attendance.ErrNotClockedIn
	}

	now := time.Now().In(s.loc)
	open.ClockOut = &now
	if err := s.LogRepository.Update(ctx, *open); err != nil {
		return attendance.Log{}, fmt.Errorf("failed to update attendance log: %w", err)
	}
	return *open, nil
}

func (s *AttendanceServiceImpl) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Log, int64, error) {
	return s.LogRepository.List(ctx, filter)
}

func (s *AttendanceServiceImpl) MyAttendance(ctx context.Context, userID string, filter attendance.ListFilter) ([]attendance.Log, int64, error) {
	filter.UserID = &userID
	return s.LogRepository.List(ctx, filter)
}

func (s *AttendanceServiceImpl) Approve(ctx context.Context, id, approverID string) error {
	return s.decide(ctx, id, approverID, attendance.StatusApproved, nil)
}

func (s *AttendanceServiceImpl) Reject(ctx context.Context, id, approverID string, req attendance.DecisionRequest) error {
	return s.decide(ctx, id, approverID, attendance.StatusRejected, req.RejectionReason)
}

func (s *AttendanceServiceImpl) decide(ctx context.Context, id, approverID, status string, reason *string) error {
	log, err := s.LogRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if log.Status != attendance.StatusPending {
		return attendance.ErrAlreadyProcessed
	}

	now := time.Now()
	log.Status = status
	log.ApprovedBy = &approverID
	log.ApprovedAt = &now
	if err := s.LogRepository.Update(ctx, log); err != nil {
		return fmt.Errorf("failed to update attendance log: %w", err)
	}

	if s.notifySvc != nil {
		day := dateutil.DateKey(log.WorkDate)
		notifType := notification.TypeAttendanceApproved
		title := "Attendance approved"
		message := fmt.Sprintf("Your attendance for %s was approved", day)
		if status == attendance.StatusRejected {
			notifType = notification.TypeAttendanceRejected
			title = "Attendance rejected"
			message = fmt.Sprintf("Your attendance for %s was rejected", day)
			if reason != nil {
				message = fmt.Sprintf("%s: %s", message, *reason)
			}
		}
		if err := s.notifySvc.Queue(ctx, notification.CreateRequest{
			RecipientID: log.UserID,
			SenderID:    &approverID,
			Type:        notifType,
			Title:       title,
			Message:     message,
			Data:        map[string]interface{}{"log_id": log.ID, "date": day},
		}); err != nil {
			s.logger.Warn("failed to queue attendance notification", slog.Any("error", err))
		}
	}
	return nil
}
