package calendar

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/workline-hr/workline-backend-go/internal/domain/attendance"
	"github.com/workline-hr/workline-backend-go/internal/domain/calendar"
	"github.com/workline-hr/workline-backend-go/internal/domain/holiday"
	"github.com/workline-hr/workline-backend-go/internal/domain/leave"
	"github.com/workline-hr/workline-backend-go/internal/domain/notification"
	"github.com/workline-hr/workline-backend-go/internal/domain/user"
	"github.com/workline-hr/workline-backend-go/internal/pkg/dateutil"
)

type CalendarServiceImpl struct {
	attendance.LogRepository
	leave.RequestRepository
	user.UserRepository
	holiday.EventRepository
	maintenance calendar.MaintenanceRepository
	notifySvc   notification.Service
	loc         *time.Location
	logger      *slog.Logger
}

func NewCalendarService(
	logRepo attendance.LogRepository,
	leaveRepo leave.RequestRepository,
	userRepo user.UserRepository,
	holidayRepo holiday.EventRepository,
	maintenanceRepo calendar.MaintenanceRepository,
	notifySvc notification.Service,
	loc *time.Location,
	logger *slog.Logger,
) calendar.Service {
	if loc == nil {
		loc = time.Local
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CalendarServiceImpl{
		LogRepository:     logRepo,
		RequestRepository: leaveRepo,
		UserRepository:    userRepo,
		EventRepository:   holidayRepo,
		maintenance:       maintenanceRepo,
		notifySvc:         notifySvc,
		loc:               loc,
		logger:            logger,
	}
}

// parseMonth parses YYYY-MM, defaulting to the current month in loc.
func (s *CalendarServiceImpl) parseMonth(month string) (int, time.Month, error) {
	if month == "" {
		now := time.Now().In(s.loc)
		return now.Year(), now.Month(), nil
	}
	parsed, err := time.Parse("2006-01", month)
	if err != nil {
		return 0, 0, calendar.ErrInvalidDate
	}
	return parsed.Year(), parsed.Month(), nil
}

// MonthStats computes the per-day statuses for a month. In aggregate
// scope it first runs the absence self-heal; a failure there is logged
// and the read proceeds on whatever data is present.
func (s *CalendarServiceImpl) MonthStats(ctx context.Context, req calendar.MonthStatsRequest) (*calendar.MonthStatsResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	year, month, err := s.parseMonth(req.Month)
	if err != nil {
		return nil, err
	}
	first, last := dateutil.MonthBounds(year, month, s.loc)
	now := time.Now().In(s.loc)

	scope := calendar.ScopeAggregate
	if req.UserID != nil {
		scope = calendar.ScopeUser
	}

	if scope == calendar.ScopeAggregate {
		if err := s.runMaintenance(ctx, first, last, now); err != nil {
			s.logger.Warn("absence maintenance failed, serving month stats anyway",
				slog.String("month", first.Format("2006-01")),
				slog.Any("error", err))
		}
	}

	var (
		logs   []attendance.Log
		leaves []leave.Request
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		logs, err = s.LogRepository.ListForRange(gCtx, first, last, req.UserID)
		if err != nil {
			return fmt.Errorf("failed to fetch attendance logs: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		leaves, err = s.RequestRepository.ListApprovedOverlapping(gCtx, first, last, req.UserID)
		if err != nil {
			return fmt.Errorf("failed to fetch leave requests: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	today := dateutil.LocalDay(now, s.loc)
	byDay := calendar.ReduceMonth(year, month, today, logs, leaves, scope)

	days := make([]calendar.DayStatus, 0, len(byDay))
	dateutil.EachDay(first, last, func(day string) {
		days = append(days, byDay[day])
	})

	return &calendar.MonthStatsResponse{
		Month:        first.Format("2006-01"),
		FirstWeekday: int(first.Weekday()),
		Days:         days,
	}, nil
}

// runMaintenance is the self-healing step behind the aggregate view:
// retract wrongly future-dated absence markers, then fill in missing
// ones for the elapsed part of the month. The marking window is capped
// at yesterday so today is never marked while people are still
// clocking in.
func (s *CalendarServiceImpl) runMaintenance(ctx context.Context, monthStart, monthEnd, now time.Time) error {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc)

	retracted, err := s.maintenance.RetractFutureUnexcusedAbsences(ctx, today)
	if err != nil {
		return fmt.Errorf("retract future absences: %w", err)
	}
	if retracted > 0 {
		s.logger.Info("retracted future-dated absence markers", slog.Int64("count", retracted))
	}

	end := dateutil.Yesterday(now)
	if end.After(monthEnd) {
		end = monthEnd
	}
	if end.Before(monthStart) {
		// Nothing elapsed yet this month.
		return nil
	}

	marked, err := s.maintenance.MarkAbsencesForRange(ctx, monthStart, end)
	if err != nil {
		return fmt.Errorf("mark absences: %w", err)
	}
	if marked > 0 {
		s.logger.Info("marked absences",
			slog.String("start", dateutil.DateKey(monthStart)),
			slog.String("end", dateutil.DateKey(end)),
			slog.Int64("count", marked))
	}
	return nil
}

// DayDetail classifies every active roster member for one day.
func (s *CalendarServiceImpl) DayDetail(ctx context.Context, day string) (*calendar.DayDetailResponse, error) {
	date, err := dateutil.ParseDay(day, s.loc)
	if err != nil {
		return nil, calendar.ErrInvalidDate
	}

	var (
		profiles []user.User
		logs     []attendance.Log
		leaves   []leave.Request
		events   []holiday.Event
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		profiles, err = s.UserRepository.ListActive(gCtx)
		if err != nil {
			return fmt.Errorf("failed to fetch roster: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		logs, err = s.LogRepository.ListForRange(gCtx, date, date, nil)
		if err != nil {
			return fmt.Errorf("failed to fetch attendance logs: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		leaves, err = s.RequestRepository.ListApprovedOverlapping(gCtx, date, date, nil)
		if err != nil {
			return fmt.Errorf("failed to fetch leave requests: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		events, err = s.EventRepository.GetByDate(gCtx, date)
		if err != nil {
			return fmt.Errorf("failed to fetch holiday events: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	resp := &calendar.DayDetailResponse{
		Date:  day,
		Users: calendar.ReduceDay(day, profiles, logs, leaves, len(events) > 0),
	}
	if len(events) > 0 {
		resp.Holiday = &events[0].Title
	}
	return resp, nil
}

// OverrideDay applies a manual correction from the drill-down.
// mark_present inserts an approved log without clock times; mark_absent
// inserts an approved unexcused-absence leave row for the single day.
func (s *CalendarServiceImpl) OverrideDay(ctx context.Context, day string, actorID string, req calendar.OverrideRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	date, err := dateutil.ParseDay(day, s.loc)
	if err != nil {
		return calendar.ErrInvalidDate
	}

	target, err := s.UserRepository.GetByID(ctx, req.UserID)
	if err != nil {
		return err
	}

	switch req.Action {
	case calendar.OverrideMarkPresent:
		exists, err := s.LogRepository.HasRecordForDay(ctx, target.ID, date)
		if err != nil {
			return fmt.Errorf("failed to check existing log: %w", err)
		}
		if exists {
			return calendar.ErrDayAlreadyRecorded
		}
		now := time.Now()
		if _, err := s.LogRepository.Create(ctx, attendance.Log{
			UserID:     target.ID,
			WorkDate:   date,
			Status:     attendance.StatusApproved,
			Mode:       attendance.ModeOnsite,
			ApprovedBy: &actorID,
			ApprovedAt: &now,
		}); err != nil {
			return fmt.Errorf("failed to create override log: %w", err)
		}

	case calendar.OverrideMarkAbsent:
		now := time.Now()
		if _, err := s.RequestRepository.Create(ctx, leave.Request{
			UserID:     target.ID,
			StartDate:  date,
			EndDate:    date,
			Reason:     leave.ReasonUnexcusedAbsence,
			Status:     leave.StatusApproved,
			ApprovedBy: &actorID,
			ApprovedAt: &now,
		}); err != nil {
			return fmt.Errorf("failed to create absence marker: %w", err)
		}
	}

	if s.notifySvc != nil {
		notifType := notification.TypeAttendanceOverride
		title := "Attendance corrected"
		message := fmt.Sprintf("Your attendance for %s was marked present by HR", day)
		if req.Action == calendar.OverrideMarkAbsent {
			notifType = notification.TypeMarkedAbsent
			title = "Marked absent"
			message = fmt.Sprintf("You were marked absent for %s", day)
		}
		if err := s.notifySvc.Queue(ctx, notification.CreateRequest{
			RecipientID: target.ID,
			SenderID:    &actorID,
			Type:        notifType,
			Title:       title,
			Message:     message,
			Data:        map[string]interface{}{"date": day, "action": req.Action},
		}); err != nil {
			s.logger.Warn("failed to queue override notification", slog.Any("error", err))
		}
	}

	return nil
}

// RunAbsenceMaintenance runs the self-heal for the month containing
// now. This is the cron entry point; the dashboard read path calls the
// same steps through MonthStats.
func (s *CalendarServiceImpl) RunAbsenceMaintenance(ctx context.Context, now time.Time) error {
	now = now.In(s.loc)
	first, last := dateutil.MonthBounds(now.Year(), now.Month(), s.loc)
	return s.runMaintenance(ctx, first, last, now)
}
