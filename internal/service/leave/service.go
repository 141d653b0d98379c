package leave

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/workline-hr/workline-backend-go/internal/domain/leave"
	"github.com/workline-hr/workline-backend-go/internal/domain/notification"
	"github.com/workline-hr/workline-backend-go/internal/pkg/dateutil"
)

type LeaveServiceImpl struct {
	leave.RequestRepository
	notifySvc notification.Service
	loc       *time.Location
	logger    *slog.Logger
}

func NewLeaveService(repo leave.RequestRepository, notifySvc notification.Service, loc *time.Location, logger *slog.Logger) leave.Service {
	if loc == nil {
		loc = time.Local
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &LeaveServiceImpl{
		RequestRepository: repo,
		notifySvc:         notifySvc,
		loc:               loc,
		logger:            logger,
	}
}

// Submit files a pending request. The unexcused-absence sentinel
// reason is reserved for the auto-marker and manual overrides, so the
// validator rejects it here.
func (s *LeaveServiceImpl) Submit(ctx context.Context, userID string, req leave.SubmitRequest) (leave.Request, error) {
	if err := req.Validate(); err != nil {
		return leave.Request{}, err
	}

	start, _ := dateutil.ParseDay(req.StartDate, s.loc)
	end, _ := dateutil.ParseDay(req.EndDate, s.loc)

	created, err := s.RequestRepository.Create(ctx, leave.Request{
		UserID:    userID,
		StartDate: start,
		EndDate:   end,
		Reason:    req.Reason,
		Status:    leave.StatusPending,
	})
	if err != nil {
		return leave.Request{}, fmt.Errorf("failed to create leave request: %w", err)
	}
	return created, nil
}

func (s *LeaveServiceImpl) List(ctx context.Context, filter leave.ListFilter) ([]leave.Request, int64, error) {
	return s.RequestRepository.List(ctx, filter)
}

func (s *LeaveServiceImpl) MyRequests(ctx context.Context, userID string, filter leave.ListFilter) ([]leave.Request, int64, error) {
	filter.UserID = &userID
	return s.RequestRepository.List(ctx, filter)
}

func (s *LeaveServiceImpl) Approve(ctx context.Context, id, approverID string) error {
	return s.decide(ctx, id, approverID, leave.StatusApproved, nil)
}

func (s *LeaveServiceImpl) Reject(ctx context.Context, id, approverID string, req leave.DecisionRequest) error {
	return s.decide(ctx, id, approverID, leave.StatusRejected, req.RejectionReason)
}

func (s *LeaveServiceImpl) decide(ctx context.Context, id, approverID, status string, reason *string) error {
	request, err := s.RequestRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if request.Status != leave.StatusPending {
		return leave.ErrAlreadyProcessed
	}

	if err := s.RequestRepository.UpdateStatus(ctx, id, status, approverID, reason); err != nil {
		return fmt.Errorf("failed to update leave request: %w", err)
	}

	if s.notifySvc != nil {
		interval := fmt.Sprintf("%s to %s",
			dateutil.DateKey(request.StartDate),
			dateutil.DateKey(request.EndDate))
		notifType := notification.TypeLeaveApproved
		title := "Leave approved"
		message := fmt.Sprintf("Your leave request for %s was approved", interval)
		if status == leave.StatusRejected {
			notifType = notification.TypeLeaveRejected
			title = "Leave rejected"
			message = fmt.Sprintf("Your leave request for %s was rejected", interval)
			if reason != nil {
				message = fmt.Sprintf("%s: %s", message, *reason)
			}
		}
		if err := s.notifySvc.Queue(ctx, notification.CreateRequest{
			RecipientID: request.UserID,
			SenderID:    &approverID,
			Type:        notifType,
			Title:       title,
			Message:     message,
			Data:        map[string]interface{}{"request_id": request.ID},
		}); err != nil {
			s.logger.Warn("failed to queue leave notification", slog.Any("error", err))
		}
	}
	return nil
}
