package cron

import (
	"context"
	"time"

	"github.com/workline-hr/workline-backend-go/internal/domain/calendar"
)

// AbsenceJobs wires the calendar self-heal into the scheduler so the
// retract/mark cycle runs even when no HR dashboard triggers it.
type AbsenceJobs struct {
	calendarSvc calendar.Service
	interval    time.Duration
	loc         *time.Location
}

func NewAbsenceJobs(calendarSvc calendar.Service, interval time.Duration, loc *time.Location) *AbsenceJobs {
	if loc == nil {
		loc = time.Local
	}
	return &AbsenceJobs{
		calendarSvc: calendarSvc,
		interval:    interval,
		loc:         loc,
	}
}

func (j *AbsenceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("absence_maintenance", j.interval, j.RunAbsenceMaintenance)
}

func (j *AbsenceJobs) RunAbsenceMaintenance(ctx context.Context) error {
	return j.calendarSvc.RunAbsenceMaintenance(ctx, time.Now().In(j.loc))
}
