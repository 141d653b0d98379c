package calendar

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workline-hr/workline-backend-go/internal/domain/attendance"
	"github.com/workline-hr/workline-backend-go/internal/domain/calendar"
	"github.com/workline-hr/workline-backend-go/internal/domain/holiday"
	"github.com/workline-hr/workline-backend-go/internal/domain/leave"
	"github.com/workline-hr/workline-backend-go/internal/domain/user"
)

type fakeLogRepo struct {
	attendance.LogRepository
	logs    []attendance.Log
	created []attendance.Log
	hasDay  bool
	err     error
}

func (f *fakeLogRepo) ListForRange(ctx context.Context, start, end time.Time, userID *string) ([]attendance.Log, error) {
	return f.logs, f.err
}

func (f *fakeLogRepo) HasRecordForDay(ctx context.Context, userID string, day time.Time) (bool, error) {
	return f.hasDay, nil
}

func (f *fakeLogRepo) Create(ctx context.Context, log attendance.Log) (attendance.Log, error) {
	f.created = append(f.created, log)
	return log, nil
}

type fakeLeaveRepo struct {
	leave.RequestRepository
	leaves  []leave.Request
	created []leave.Request
	err     error
}

func (f *fakeLeaveRepo) ListApprovedOverlapping(ctx context.Context, start, end time.Time, userID *string) ([]leave.Request, error) {
	return f.leaves, f.err
}

func (f *fakeLeaveRepo) Create(ctx context.Context, req leave.Request) (leave.Request, error) {
	f.created = append(f.created, req)
	return req, nil
}

type fakeUserRepo struct {
	user.UserRepository
	users []user.User
}

func (f *fakeUserRepo) ListActive(ctx context.Context) ([]user.User, error) {
	return f.users, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

type fakeHolidayRepo struct {
	holiday.EventRepository
	events []holiday.Event
}

func (f *fakeHolidayRepo) GetByDate(ctx context.Context, day time.Time) ([]holiday.Event, error) {
	return f.events, nil
}

type fakeMaintenanceRepo struct {
	retractCalls []time.Time
	markStarts   []time.Time
	markEnds     []time.Time
	retractErr   error
	markErr      error
}

func (f *fakeMaintenanceRepo) RetractFutureUnexcusedAbsences(ctx context.Context, from time.Time) (int64, error) {
	f.retractCalls = append(f.retractCalls, from)
	return 0, f.retractErr
}

func (f *fakeMaintenanceRepo) MarkAbsencesForRange(ctx context.Context, start, end time.Time) (int64, error) {
	f.markStarts = append(f.markStarts, start)
	f.markEnds = append(f.markEnds, end)
	return 0, f.markErr
}

func newTestService(logs *fakeLogRepo, leaves *fakeLeaveRepo, users *fakeUserRepo, holidays *fakeHolidayRepo, maint *fakeMaintenanceRepo) calendar.Service {
	return NewCalendarService(logs, leaves, users, holidays, maint, nil, time.UTC, nil)
}

func TestMonthStats_AggregateRunsMaintenance(t *testing.T) {
	maint := &fakeMaintenanceRepo{}
	svc := newTestService(&fakeLogRepo{}, &fakeLeaveRepo{}, &fakeUserRepo{}, &fakeHolidayRepo{}, maint)

	_, err := svc.MonthStats(context.Background(), calendar.MonthStatsRequest{Month: "2024-03"})
	require.NoError(t, err)

	assert.Len(t, maint.retractCalls, 1)
}

func TestMonthStats_UserScopeSkipsMaintenance(t *testing.T) {
	maint := &fakeMaintenanceRepo{}
	svc := newTestService(&fakeLogRepo{}, &fakeLeaveRepo{}, &fakeUserRepo{}, &fakeHolidayRepo{}, maint)

	userID := "u-1"
	_, err := svc.MonthStats(context.Background(), calendar.MonthStatsRequest{Month: "2024-03", UserID: &userID})
	require.NoError(t, err)

	assert.Empty(t, maint.retractCalls)
	assert.Empty(t, maint.markStarts)
}

func TestMonthStats_MaintenanceFailureIsSwallowed(t *testing.T) {
	maint := &fakeMaintenanceRepo{retractErr: errors.New("db down")}
	svc := newTestService(&fakeLogRepo{}, &fakeLeaveRepo{}, &fakeUserRepo{}, &fakeHolidayRepo{}, maint)

	resp, err := svc.MonthStats(context.Background(), calendar.MonthStatsRequest{Month: "2024-03"})
	require.NoError(t, err)
	assert.Len(t, resp.Days, 31)
}

func TestMonthStats_FetchFailurePropagates(t *testing.T) {
	logs := &fakeLogRepo{err: errors.New("connection reset")}
	svc := newTestService(logs, &fakeLeaveRepo{}, &fakeUserRepo{}, &fakeHolidayRepo{}, &fakeMaintenanceRepo{})

	_, err := svc.MonthStats(context.Background(), calendar.MonthStatsRequest{Month: "2024-03"})
	require.Error(t, err)
}

func TestMonthStats_ResponseShape(t *testing.T) {
	svc := newTestService(&fakeLogRepo{}, &fakeLeaveRepo{}, &fakeUserRepo{}, &fakeHolidayRepo{}, &fakeMaintenanceRepo{})

	resp, err := svc.MonthStats(context.Background(), calendar.MonthStatsRequest{Month: "2024-02"})
	require.NoError(t, err)

	assert.Equal(t, "2024-02", resp.Month)
	// 2024-02-01 was a Thursday.
	assert.Equal(t, 4, resp.FirstWeekday)
	require.Len(t, resp.Days, 29)
	assert.Equal(t, "2024-02-01", resp.Days[0].Date)
	assert.Equal(t, "2024-02-29", resp.Days[28].Date)
}

func TestMonthStats_InvalidMonthRejected(t *testing.T) {
	svc := newTestService(&fakeLogRepo{}, &fakeLeaveRepo{}, &fakeUserRepo{}, &fakeHolidayRepo{}, &fakeMaintenanceRepo{})

	_, err := svc.MonthStats(context.Background(), calendar.MonthStatsRequest{Month: "03-2024"})
	require.Error(t, err)
}

func TestRunAbsenceMaintenance_WindowCappedAtYesterday(t *testing.T) {
	maint := &fakeMaintenanceRepo{}
	svc := newTestService(&fakeLogRepo{}, &fakeLeaveRepo{}, &fakeUserRepo{}, &fakeHolidayRepo{}, maint)

	now := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	require.NoError(t, svc.RunAbsenceMaintenance(context.Background(), now))

	require.Len(t, maint.markStarts, 1)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), maint.markStarts[0])
	assert.Equal(t, time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC), maint.markEnds[0])
}

func TestRunAbsenceMaintenance_FirstOfMonthSkipsMarking(t *testing.T) {
	maint := &fakeMaintenanceRepo{}
	svc := newTestService(&fakeLogRepo{}, &fakeLeaveRepo{}, &fakeUserRepo{}, &fakeHolidayRepo{}, maint)

	// Yesterday falls in February, before the March window starts.
	now := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	require.NoError(t, svc.RunAbsenceMaintenance(context.Background(), now))

	assert.Len(t, maint.retractCalls, 1)
	assert.Empty(t, maint.markStarts)
}

func TestDayDetail_HolidayFallback(t *testing.T) {
	users := &fakeUserRepo{users: []user.User{
		{ID: "u-1", FullName: "Ana", Status: user.StatusActive},
		{ID: "u-2", FullName: "Ben", Status: user.StatusActive},
	}}
	clockIn := time.Date(2024, 3, 11, 9, 0, 0, 0, time.UTC)
	logs := &fakeLogRepo{logs: []attendance.Log{
		{UserID: "u-1", WorkDate: time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), ClockIn: &clockIn, Status: attendance.StatusApproved},
	}}
	holidays := &fakeHolidayRepo{events: []holiday.Event{
		{ID: "h-1", Title: "Nyepi", EventDate: time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)},
	}}
	svc := newTestService(logs, &fakeLeaveRepo{}, users, holidays, &fakeMaintenanceRepo{})

	resp, err := svc.DayDetail(context.Background(), "2024-03-11")
	require.NoError(t, err)

	require.NotNil(t, resp.Holiday)
	assert.Equal(t, "Nyepi", *resp.Holiday)
	require.Len(t, resp.Users, 2)
	assert.Equal(t, calendar.UserDayPresent, resp.Users[0].Status)
	assert.Equal(t, calendar.UserDayHoliday, resp.Users[1].Status)
}

func TestDayDetail_InvalidDate(t *testing.T) {
	svc := newTestService(&fakeLogRepo{}, &fakeLeaveRepo{}, &fakeUserRepo{}, &fakeHolidayRepo{}, &fakeMaintenanceRepo{})

	_, err := svc.DayDetail(context.Background(), "11-03-2024")
	assert.ErrorIs(t, err, calendar.ErrInvalidDate)
}

func TestOverrideDay_MarkPresent(t *testing.T) {
	users := &fakeUserRepo{users: []user.User{{ID: "u-1", FullName: "Ana", Status: user.StatusActive}}}
	logs := &fakeLogRepo{}
	svc := newTestService(logs, &fakeLeaveRepo{}, users, &fakeHolidayRepo{}, &fakeMaintenanceRepo{})

	err := svc.OverrideDay(context.Background(), "2024-03-11", "admin-1", calendar.OverrideRequest{
		UserID: "u-1",
		Action: calendar.OverrideMarkPresent,
	})
	require.NoError(t, err)

	require.Len(t, logs.created, 1)
	assert.Equal(t, attendance.StatusApproved, logs.created[0].Status)
	assert.Nil(t, logs.created[0].ClockIn)
	require.NotNil(t, logs.created[0].ApprovedBy)
	assert.Equal(t, "admin-1", *logs.created[0].ApprovedBy)
}

func TestOverrideDay_MarkPresentRejectsExistingRecord(t *testing.T) {
	users := &fakeUserRepo{users: []user.User{{ID: "u-1", Status: user.StatusActive}}}
	logs := &fakeLogRepo{hasDay: true}
	svc := newTestService(logs, &fakeLeaveRepo{}, users, &fakeHolidayRepo{}, &fakeMaintenanceRepo{})

	err := svc.OverrideDay(context.Background(), "2024-03-11", "admin-1", calendar.OverrideRequest{
		UserID: "u-1",
		Action: calendar.OverrideMarkPresent,
	})
	assert.ErrorIs(t, err, calendar.ErrDayAlreadyRecorded)
	assert.Empty(t, logs.created)
}

func TestOverrideDay_MarkAbsentInsertsSentinelLeave(t *testing.T) {
	users := &fakeUserRepo{users: []user.User{{ID: "u-1", Status: user.StatusActive}}}
	leaves := &fakeLeaveRepo{}
	svc := newTestService(&fakeLogRepo{}, leaves, users, &fakeHolidayRepo{}, &fakeMaintenanceRepo{})

	err := svc.OverrideDay(context.Background(), "2024-03-11", "admin-1", calendar.OverrideRequest{
		UserID: "u-1",
		Action: calendar.OverrideMarkAbsent,
	})
	require.NoError(t, err)

	require.Len(t, leaves.created, 1)
	created := leaves.created[0]
	assert.Equal(t, leave.ReasonUnexcusedAbsence, created.Reason)
	assert.Equal(t, leave.StatusApproved, created.Status)
	assert.Equal(t, created.StartDate, created.EndDate)
}

func TestOverrideDay_UnknownUser(t *testing.T) {
	svc := newTestService(&fakeLogRepo{}, &fakeLeaveRepo{}, &fakeUserRepo{}, &fakeHolidayRepo{}, &fakeMaintenanceRepo{})

	err := svc.OverrideDay(context.Background(), "2024-03-11", "admin-1", calendar.OverrideRequest{
		UserID: "missing",
		Action: calendar.OverrideMarkAbsent,
	})
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestMonthStats_WesternZoneKeepsRecordDays(t *testing.T) {
	// Repository date columns come back as midnight UTC no matter what
	// zone the app is configured for; the day buckets must not shift.
	zone := time.FixedZone("UTC-5", -5*3600)
	logs := &fakeLogRepo{logs: []attendance.Log{{
		ID:       "log-1",
		UserID:   "u1",
		WorkDate: time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
		Status:   attendance.StatusApproved,
	}}}
	leaves := &fakeLeaveRepo{leaves: []leave.Request{{
		ID:        "leave-1",
		UserID:    "u2",
		StartDate: time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC),
		Reason:    "Vacation",
		Status:    leave.StatusApproved,
	}}}
	svc := NewCalendarService(logs, leaves, &fakeUserRepo{}, &fakeHolidayRepo{}, &fakeMaintenanceRepo{}, nil, zone, nil)

	resp, err := svc.MonthStats(context.Background(), calendar.MonthStatsRequest{Month: "2024-03"})
	require.NoError(t, err)

	byDay := map[string]calendar.DayStatus{}
	for _, d := range resp.Days {
		byDay[d.Date] = d
	}
	assert.Equal(t, int64(1), byDay["2024-03-05"].Present)
	assert.Zero(t, byDay["2024-03-04"].Present)
	assert.Zero(t, byDay["2024-03-06"].Present)
	for _, d := range []string{"2024-03-10", "2024-03-11", "2024-03-12"} {
		assert.Equal(t, int64(1), byDay[d].Leaves, d)
	}
	assert.Zero(t, byDay["2024-03-09"].Leaves)
	assert.Zero(t, byDay["2024-03-13"].Leaves)
}
