package calendar

import (
	"time"

	"github.com/workline-hr/workline-backend-go/internal/domain/attendance"
	"github.com/workline-hr/workline-backend-go/internal/domain/leave"
	"github.com/workline-hr/workline-backend-go/internal/domain/user"
	"github.com/workline-hr/workline-backend-go/internal/pkg/dateutil"
)

// Scope selects between the HR aggregate view and a single-user view.
type Scope int

const (
	ScopeAggregate Scope = iota
	ScopeUser
)

// ReduceMonth merges attendance logs and approved leave requests into
// one DayStatus per calendar day of the month. It is pure: the same
// inputs always produce the same map, and the input order is
// irrelevant.
//
// today is the local calendar day in YYYY-MM-DD form; logs dated after
// it are treated as bad data and discarded. ISO day strings compare
// lexicographically, so plain string comparison is enough.
//
// WorkDate and the leave bounds are date-only columns: whatever zone
// they were scanned in, the wall-clock date is the calendar day, so
// they are keyed via DateKey without any zone conversion.
func ReduceMonth(year int, month time.Month, today string, logs []attendance.Log, leaves []leave.Request, scope Scope) map[string]DayStatus {
	days := make(map[string]DayStatus, dateutil.DaysInMonth(year, month))
	first, last := dateutil.MonthBounds(year, month, time.UTC)
	dateutil.EachDay(first, last, func(day string) {
		days[day] = DayStatus{Date: day, Status: ClassNone}
	})

	for _, log := range logs {
		day := dateutil.DateKey(log.WorkDate)
		if day > today {
			// Future-dated log: clock skew or a bad manual entry.
			continue
		}
		if log.Status != attendance.StatusApproved {
			continue
		}
		st, ok := days[day]
		if !ok {
			continue
		}
		if scope == ScopeAggregate {
			st.Present++
		} else {
			st.Status = MergeClass(st.Status, ClassPresent)
		}
		days[day] = st
	}

	for _, req := range leaves {
		if req.Status != leave.StatusApproved {
			continue
		}
		class := ClassLeave
		if req.IsUnexcusedAbsence() {
			class = ClassAbsentMarked
		}
		dateutil.EachDay(req.StartDate, req.EndDate, func(day string) {
			st, ok := days[day]
			if !ok {
				return
			}
			if scope == ScopeAggregate {
				if class == ClassAbsentMarked {
					st.AbsentMarked++
				} else {
					st.Leaves++
				}
			} else {
				st.Status = MergeClass(st.Status, class)
			}
			days[day] = st
		})
	}

	return days
}

// UserDayDetail is one roster member's classification for a single day.
type UserDayDetail struct {
	UserID   string        `json:"user_id"`
	UserName string        `json:"user_name"`
	Status   UserDayStatus `json:"status"`
	ClockIn  *time.Time    `json:"clock_in,omitempty"`
}

// ReduceDay classifies every active profile for one calendar day. The
// per-user record is always consulted before the day-level holiday
// flag: a user on individual leave during a company holiday shows as
// on leave, not holiday. "absent" is the fallback when nothing matches.
func ReduceDay(day string, profiles []user.User, logs []attendance.Log, leaves []leave.Request, isHoliday bool) []UserDayDetail {
	logByUser := make(map[string]attendance.Log, len(logs))
	for _, log := range logs {
		if log.Status != attendance.StatusApproved {
			continue
		}
		if dateutil.DateKey(log.WorkDate) != day {
			continue
		}
		logByUser[log.UserID] = log
	}

	leaveByUser := make(map[string]leave.Request, len(leaves))
	for _, req := range leaves {
		if req.Status != leave.StatusApproved {
			continue
		}
		covers := false
		dateutil.EachDay(req.StartDate, req.EndDate, func(d string) {
			if d == day {
				covers = true
			}
		})
		if !covers {
			continue
		}
		if _, exists := leaveByUser[req.UserID]; !exists || req.IsUnexcusedAbsence() {
			leaveByUser[req.UserID] = req
		}
	}

	details := make([]UserDayDetail, 0, len(profiles))
	for _, p := range profiles {
		if !p.IsActive() {
			continue
		}
		detail := UserDayDetail{UserID: p.ID, UserName: p.FullName, Status: UserDayAbsent}

		if log, ok := logByUser[p.ID]; ok {
			detail.Status = UserDayPresent
			detail.ClockIn = log.ClockIn
		} else if req, ok := leaveByUser[p.ID]; ok {
			if req.IsUnexcusedAbsence() {
				detail.Status = UserDayAbsentMarked
			} else {
				detail.Status = UserDayLeave
			}
		} else if isHoliday {
			detail.Status = UserDayHoliday
		}

		details = append(details, detail)
	}

	return details
}
