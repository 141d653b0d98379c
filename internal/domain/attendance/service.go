package attendance

import (
	"context"
)

// Service defines attendance operations.
type Service interface {
	ClockIn(ctx context.Context, userID string, req ClockInRequest) (Log, error)
	ClockOut(ctx context.Context, userID string) (Log, error)

	List(ctx context.Context, filter ListFilter) ([]Log, int64, error)
	MyAttendance(ctx context.Context, userID string, filter ListFilter) ([]Log, int64, error)

	Approve(ctx context.Context, id, approverID string) error
	Reject(ctx context.Context, id, approverID string, req DecisionRequest) error
}
