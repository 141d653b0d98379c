package notification

import (
	"context"
)

// Repository defines data access for notifications.
type Repository interface {
	Create(ctx context.Context, n Notification) (Notification, error)
	ListByRecipient(ctx context.Context, recipientID string, page, limit int, unreadOnly bool) ([]Notification, int64, error)
	UnreadCount(ctx context.Context, recipientID string) (int64, error)
	MarkRead(ctx context.Context, recipientID string, ids []string) error
	MarkAllRead(ctx context.Context, recipientID string) error
	Delete(ctx context.Context, recipientID, id string) error
}
