package notification

import (
	"context"
)

// Service defines notification delivery and retrieval. Queueing is
// asynchronous: a buffered worker persists the row and pushes an SSE
// event, so callers on hot paths never block on delivery.
type Service interface {
	Queue(ctx context.Context, req CreateRequest) error
	QueueBulk(ctx context.Context, reqs []CreateRequest) error

	List(ctx context.Context, recipientID string, page, limit int, unreadOnly bool) (*ListResponse, error)
	UnreadCount(ctx context.Context, recipientID string) (int64, error)
	MarkRead(ctx context.Context, recipientID string, ids []string) error
	MarkAllRead(ctx context.Context, recipientID string) error
	Delete(ctx context.Context, recipientID, id string) error

	// Subscribe returns a live event channel for the user plus its
	// teardown function.
	Subscribe(ctx context.Context, userID string) (<-chan SSEEvent, func())

	Stop()
}
