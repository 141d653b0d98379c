package calendar

import (
	"encoding/json"
)

// DayClass is the classification of one calendar day for one user.
// The numeric order is the precedence order: attendance presence beats
// leave, leave beats an administratively marked absence, everything
// beats none. Merging two classes keeps the higher one, so a day
// already classified present is never demoted by a leave row.
type DayClass int

const (
	ClassNone DayClass = iota
	ClassAbsentMarked
	ClassLeave
	ClassPresent
)

// MergeClass combines two classifications under the precedence total
// order and returns the winning one.
func MergeClass(a, b DayClass) DayClass {
	if b > a {
		return b
	}
	return a
}

func (c DayClass) String() string {
	switch c {
	case ClassPresent:
		return "present"
	case ClassLeave:
		return "leave"
	case ClassAbsentMarked:
		return "absent"
	default:
		return "none"
	}
}

func (c DayClass) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// DayStatus is the derived per-day result. Aggregate scope fills the
// counters across all users; single-user scope fills Status. It is a
// pure computation result, rebuilt on every fetch.
type DayStatus struct {
	Date         string   `json:"date"`
	Present      int64    `json:"present"`
	Leaves       int64    `json:"leaves"`
	AbsentMarked int64    `json:"absent_marked"`
	Status       DayClass `json:"status"`
}

// UserDayStatus is the five-way classification used by the single-day
// drill-down. Unlike DayClass it distinguishes a marked absence from
// "no record at all" and adds the holiday fallback.
type UserDayStatus string

const (
	UserDayPresent      UserDayStatus = "present"
	UserDayLeave        UserDayStatus = "leave"
	UserDayAbsentMarked UserDayStatus = "absent_marked"
	UserDayHoliday      UserDayStatus = "holiday"
	UserDayAbsent       UserDayStatus = "absent"
)
