package calendar

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workline-hr/workline-backend-go/internal/domain/attendance"
	"github.com/workline-hr/workline-backend-go/internal/domain/leave"
	"github.com/workline-hr/workline-backend-go/internal/domain/user"
)

const testToday = "2024-03-20"

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	require.NoError(t, err)
	return d
}

func approvedLog(t *testing.T, userID, workDate string) attendance.Log {
	t.Helper()
	clockIn := day(t, workDate).Add(9 * time.Hour)
	return attendance.Log{
		ID:       userID + "-" + workDate,
		UserID:   userID,
		WorkDate: day(t, workDate),
		ClockIn:  &clockIn,
		Status:   attendance.StatusApproved,
		Mode:     attendance.ModeOnsite,
	}
}

func approvedLeave(t *testing.T, userID, start, end, reason string) leave.Request {
	t.Helper()
	return leave.Request{
		ID:        userID + "-" + start,
		UserID:    userID,
		StartDate: day(t, start),
		EndDate:   day(t, end),
		Reason:    reason,
		Status:    leave.StatusApproved,
	}
}

func TestMergeClassTotalOrder(t *testing.T) {
	classes := []DayClass{ClassNone, ClassAbsentMarked, ClassLeave, ClassPresent}
	for i, lower := range classes {
		for _, higher := range classes[i:] {
			assert.Equal(t, higher, MergeClass(lower, higher))
			assert.Equal(t, higher, MergeClass(higher, lower), "merge must be symmetric")
		}
	}
	// Present is the absorbing top element.
	assert.Equal(t, ClassPresent, MergeClass(ClassPresent, ClassLeave))
	assert.Equal(t, ClassPresent, MergeClass(ClassPresent, ClassAbsentMarked))
}

func TestReduceMonthEmptyInputs(t *testing.T) {
	days := ReduceMonth(2024, time.March, testToday, nil, nil, ScopeAggregate)

	require.Len(t, days, 31)
	for d, st := range days {
		assert.Equal(t, d, st.Date)
		assert.Zero(t, st.Present)
		assert.Zero(t, st.Leaves)
		assert.Zero(t, st.AbsentMarked)
		assert.Equal(t, ClassNone, st.Status)
	}
}

func TestReduceMonthLeapFebruary(t *testing.T) {
	days := ReduceMonth(2024, time.February, "2024-02-29", nil, nil, ScopeAggregate)
	require.Len(t, days, 29)
	_, ok := days["2024-02-29"]
	assert.True(t, ok)
}

func TestReduceMonthCountsApprovedLogs(t *testing.T) {
	logs := []attendance.Log{
		approvedLog(t, "u1", "2024-03-05"),
		approvedLog(t, "u2", "2024-03-05"),
		approvedLog(t, "u3", "2024-03-06"),
	}

	days := ReduceMonth(2024, time.March, testToday, logs, nil, ScopeAggregate)

	assert.Equal(t, int64(2), days["2024-03-05"].Present)
	assert.Equal(t, int64(1), days["2024-03-06"].Present)
	assert.Equal(t, int64(0), days["2024-03-07"].Present)
}

func TestReduceMonthIgnoresPendingAndRejectedLogs(t *testing.T) {
	pending := approvedLog(t, "u1", "2024-03-05")
	pending.Status = attendance.StatusPending
	rejected := approvedLog(t, "u2", "2024-03-05")
	rejected.Status = attendance.StatusRejected

	days := ReduceMonth(2024, time.March, testToday, []attendance.Log{pending, rejected}, nil, ScopeAggregate)

	assert.Equal(t, int64(0), days["2024-03-05"].Present)
}

func TestReduceMonthDiscardsFutureLogs(t *testing.T) {
	// Regression for the future-date bug: a log dated after "today"
	// must be excluded entirely, approved or not.
	logs := []attendance.Log{
		approvedLog(t, "u1", "2024-03-21"),
		approvedLog(t, "u1", "2024-03-31"),
		approvedLog(t, "u1", "2024-03-20"), // today itself is kept
	}

	days := ReduceMonth(2024, time.March, testToday, logs, nil, ScopeAggregate)

	assert.Equal(t, int64(0), days["2024-03-21"].Present)
	assert.Equal(t, int64(0), days["2024-03-31"].Present)
	assert.Equal(t, int64(1), days["2024-03-20"].Present)

	single := ReduceMonth(2024, time.March, testToday, logs, nil, ScopeUser)
	assert.Equal(t, ClassNone, single["2024-03-21"].Status)
	assert.Equal(t, ClassPresent, single["2024-03-20"].Status)
}

func TestReduceMonthVacationLeaveSpan(t *testing.T) {
	leaves := []leave.Request{
		approvedLeave(t, "u1", "2024-03-10", "2024-03-12", "Vacation"),
	}

	days := ReduceMonth(2024, time.March, testToday, nil, leaves, ScopeAggregate)

	for _, d := range []string{"2024-03-10", "2024-03-11", "2024-03-12"} {
		assert.Equal(t, int64(1), days[d].Leaves, d)
		assert.Equal(t, int64(0), days[d].AbsentMarked, d)
	}
	assert.Equal(t, int64(0), days["2024-03-09"].Leaves)
	assert.Equal(t, int64(0), days["2024-03-13"].Leaves)

	single := ReduceMonth(2024, time.March, testToday, nil, leaves, ScopeUser)
	assert.Equal(t, ClassLeave, single["2024-03-11"].Status)
}

func TestReduceMonthUnexcusedAbsenceSentinel(t *testing.T) {
	leaves := []leave.Request{
		approvedLeave(t, "u1", "2024-03-08", "2024-03-08", leave.ReasonUnexcusedAbsence),
	}

	days := ReduceMonth(2024, time.March, testToday, nil, leaves, ScopeAggregate)
	assert.Equal(t, int64(1), days["2024-03-08"].AbsentMarked)
	assert.Equal(t, int64(0), days["2024-03-08"].Leaves)

	single := ReduceMonth(2024, time.March, testToday, nil, leaves, ScopeUser)
	assert.Equal(t, ClassAbsentMarked, single["2024-03-08"].Status)
	assert.Equal(t, "absent", single["2024-03-08"].Status.String())
}

func TestReduceMonthIgnoresUnapprovedLeaves(t *testing.T) {
	pending := approvedLeave(t, "u1", "2024-03-10", "2024-03-10", "Vacation")
	pending.Status = leave.StatusPending

	days := ReduceMonth(2024, time.March, testToday, nil, []leave.Request{pending}, ScopeAggregate)
	assert.Equal(t, int64(0), days["2024-03-10"].Leaves)
}

func TestReduceMonthPresenceBeatsLeave(t *testing.T) {
	// Regression for reducer ordering: an approved log and an
	// overlapping approved leave on the same day must resolve to
	// present in single-user scope.
	logs := []attendance.Log{approvedLog(t, "u1", "2024-03-11")}
	leaves := []leave.Request{
		approvedLeave(t, "u1", "2024-03-10", "2024-03-12", "Vacation"),
		approvedLeave(t, "u1", "2024-03-11", "2024-03-11", leave.ReasonUnexcusedAbsence),
	}

	single := ReduceMonth(2024, time.March, testToday, logs, leaves, ScopeUser)

	assert.Equal(t, ClassPresent, single["2024-03-11"].Status)
	assert.Equal(t, ClassLeave, single["2024-03-10"].Status)
	assert.Equal(t, ClassLeave, single["2024-03-12"].Status)
}

func TestReduceMonthLeaveClippedToMonth(t *testing.T) {
	leaves := []leave.Request{
		approvedLeave(t, "u1", "2024-02-27", "2024-03-02", "Vacation"),
	}

	days := ReduceMonth(2024, time.March, testToday, nil, leaves, ScopeAggregate)
	assert.Equal(t, int64(1), days["2024-03-01"].Leaves)
	assert.Equal(t, int64(1), days["2024-03-02"].Leaves)
	assert.Equal(t, int64(0), days["2024-03-03"].Leaves)
	// February days are simply not in the map.
	_, ok := days["2024-02-27"]
	assert.False(t, ok)
}

func TestReduceMonthIdempotent(t *testing.T) {
	logs := []attendance.Log{
		approvedLog(t, "u1", "2024-03-05"),
		approvedLog(t, "u2", "2024-03-11"),
	}
	leaves := []leave.Request{
		approvedLeave(t, "u3", "2024-03-10", "2024-03-12", "Vacation"),
		approvedLeave(t, "u4", "2024-03-08", "2024-03-08", leave.ReasonUnexcusedAbsence),
	}

	first := ReduceMonth(2024, time.March, testToday, logs, leaves, ScopeAggregate)
	second := ReduceMonth(2024, time.March, testToday, logs, leaves, ScopeAggregate)
	assert.Equal(t, first, second)
}

func TestReduceDayStatuses(t *testing.T) {
	profiles := []user.User{
		{ID: "u1", FullName: "Present Person", Status: user.StatusActive},
		{ID: "u2", FullName: "Leave Person", Status: user.StatusActive},
		{ID: "u3", FullName: "Marked Person", Status: user.StatusActive},
		{ID: "u4", FullName: "No Record", Status: user.StatusActive},
		{ID: "u5", FullName: "Gone Person", Status: user.StatusInactive},
	}
	logs := []attendance.Log{approvedLog(t, "u1", "2024-03-11")}
	leaves := []leave.Request{
		approvedLeave(t, "u2", "2024-03-10", "2024-03-12", "Vacation"),
		approvedLeave(t, "u3", "2024-03-11", "2024-03-11", leave.ReasonUnexcusedAbsence),
	}

	details := ReduceDay("2024-03-11", profiles, logs, leaves, false)

	require.Len(t, details, 4, "inactive profiles are excluded")
	byID := map[string]UserDayStatus{}
	for _, d := range details {
		byID[d.UserID] = d.Status
	}
	assert.Equal(t, UserDayPresent, byID["u1"])
	assert.Equal(t, UserDayLeave, byID["u2"])
	assert.Equal(t, UserDayAbsentMarked, byID["u3"])
	assert.Equal(t, UserDayAbsent, byID["u4"])
}

func TestReduceDayHolidayFallback(t *testing.T) {
	profiles := []user.User{
		{ID: "u1", FullName: "On Leave", Status: user.StatusActive},
		{ID: "u2", FullName: "No Record", Status: user.StatusActive},
	}
	leaves := []leave.Request{
		approvedLeave(t, "u1", "2024-03-11", "2024-03-11", "Vacation"),
	}

	details := ReduceDay("2024-03-11", profiles, nil, leaves, true)

	byID := map[string]UserDayStatus{}
	for _, d := range details {
		byID[d.UserID] = d.Status
	}
	// The individual record wins over the day-level holiday flag;
	// holiday only fills the gap for users with no record at all.
	assert.Equal(t, UserDayLeave, byID["u1"])
	assert.Equal(t, UserDayHoliday, byID["u2"])
}

func TestReduceDayIgnoresRecordsForOtherDays(t *testing.T) {
	profiles := []user.User{{ID: "u1", FullName: "Someone", Status: user.StatusActive}}
	logs := []attendance.Log{approvedLog(t, "u1", "2024-03-10")}
	leaves := []leave.Request{
		approvedLeave(t, "u1", "2024-03-01", "2024-03-05", "Vacation"),
	}

	details := ReduceDay("2024-03-11", profiles, logs, leaves, false)

	require.Len(t, details, 1)
	assert.Equal(t, UserDayAbsent, details[0].Status)
}

// midnightIn builds a date column value the way a driver scans one:
// midnight of the calendar day in some fixed zone.
func midnightIn(t *testing.T, s string, offsetHours int) time.Time {
	t.Helper()
	zone := time.FixedZone(fmt.Sprintf("UTC%+d", offsetHours), offsetHours*3600)
	d, err := time.ParseInLocation("2006-01-02", s, zone)
	require.NoError(t, err)
	return d
}

func TestReduceMonthKeysDateColumnsByWallClockDay(t *testing.T) {
	// Date columns scan as midnight in whatever zone the driver uses.
	// The calendar day must not shift with that zone's UTC offset.
	for offset := -12; offset <= 14; offset++ {
		log := attendance.Log{
			ID:       "u1-log",
			UserID:   "u1",
			WorkDate: midnightIn(t, "2024-03-05", offset),
			Status:   attendance.StatusApproved,
		}

		days := ReduceMonth(2024, time.March, testToday, []attendance.Log{log}, nil, ScopeAggregate)

		assert.Equal(t, int64(1), days["2024-03-05"].Present, "offset %+d", offset)
		assert.Zero(t, days["2024-03-04"].Present, "offset %+d must not spill backward", offset)
		assert.Zero(t, days["2024-03-06"].Present, "offset %+d must not spill forward", offset)
	}
}

func TestReduceMonthLeaveSpanUnaffectedByScanZone(t *testing.T) {
	for offset := -12; offset <= 14; offset++ {
		req := leave.Request{
			ID:        "u1-leave",
			UserID:    "u1",
			StartDate: midnightIn(t, "2024-03-10", offset),
			EndDate:   midnightIn(t, "2024-03-12", offset),
			Reason:    "Vacation",
			Status:    leave.StatusApproved,
		}

		days := ReduceMonth(2024, time.March, testToday, nil, []leave.Request{req}, ScopeAggregate)

		assert.Zero(t, days["2024-03-09"].Leaves, "offset %+d", offset)
		for _, d := range []string{"2024-03-10", "2024-03-11", "2024-03-12"} {
			assert.Equal(t, int64(1), days[d].Leaves, "offset %+d day %s", offset, d)
		}
		assert.Zero(t, days["2024-03-13"].Leaves, "offset %+d", offset)
	}
}

func TestReduceDayMatchesMidnightScannedRecords(t *testing.T) {
	profiles := []user.User{
		{ID: "u1", FullName: "Present Person", Status: user.StatusActive},
		{ID: "u2", FullName: "Leave Person", Status: user.StatusActive},
	}
	for offset := -12; offset <= 14; offset++ {
		logs := []attendance.Log{{
			ID:       "u1-log",
			UserID:   "u1",
			WorkDate: midnightIn(t, "2024-03-11", offset),
			Status:   attendance.StatusApproved,
		}}
		leaves := []leave.Request{{
			ID:        "u2-leave",
			UserID:    "u2",
			StartDate: midnightIn(t, "2024-03-11", offset),
			EndDate:   midnightIn(t, "2024-03-11", offset),
			Reason:    "Vacation",
			Status:    leave.StatusApproved,
		}}

		details := ReduceDay("2024-03-11", profiles, logs, leaves, false)

		byID := map[string]UserDayStatus{}
		for _, d := range details {
			byID[d.UserID] = d.Status
		}
		assert.Equal(t, UserDayPresent, byID["u1"], "offset %+d", offset)
		assert.Equal(t, UserDayLeave, byID["u2"], "offset %+d", offset)
	}
}
