package calendar

import (
	"context"
	"time"
)

// Service defines the reconciliation and aggregation operations.
type Service interface {
	// MonthStats computes one DayStatus per calendar day of the
	// requested month. In aggregate scope it first runs the absence
	// auto-marker as a best-effort maintenance step.
	MonthStats(ctx context.Context, req MonthStatsRequest) (*MonthStatsResponse, error)

	// DayDetail classifies every active roster member for one day.
	DayDetail(ctx context.Context, day string) (*DayDetailResponse, error)

	// OverrideDay applies a manual mark-present / mark-absent
	// correction from the drill-down.
	OverrideDay(ctx context.Context, day string, actorID string, req OverrideRequest) error

	// RunAbsenceMaintenance executes the self-heal for the month
	// containing now. Exposed for the cron scheduler.
	RunAbsenceMaintenance(ctx context.Context, now time.Time) error
}
