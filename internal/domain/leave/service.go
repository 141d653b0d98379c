package leave

import (
	"context"
)

// Service defines leave management operations.
type Service interface {
	Submit(ctx context.Context, userID string, req SubmitRequest) (Request, error)

	List(ctx context.Context, filter ListFilter) ([]Request, int64, error)
	MyRequests(ctx context.Context, userID string, filter ListFilter) ([]Request, int64, error)

	Approve(ctx context.Context, id, approverID string) error
	Reject(ctx context.Context, id, approverID string, req DecisionRequest) error
}
