package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/workline-hr/workline-backend-go/internal/domain/notification"
	"github.com/workline-hr/workline-backend-go/internal/pkg/database"
)

type notificationRepository struct {
	db *database.DB
}

func NewNotificationRepository(db *database.DB) notification.Repository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, n notification.Notification) (notification.Notification, error) {
	q := GetQuerier(ctx, r.db)

	data, err := json.Marshal(n.Data)
	if err != nil {
		return notification.Notification{}, fmt.Errorf("failed to marshal notification data: %w", err)
	}

	err = q.QueryRow(ctx, `
		INSERT INTO notifications (recipient_id, sender_id, type, title, message, data)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, n.RecipientID, n.SenderID, n.Type, n.Title, n.Message, data).
		Scan(&n.ID, &n.CreatedAt)
	if err != nil {
		return notification.Notification{}, fmt.Errorf("failed to create notification: %w", err)
	}
	return n, nil
}

func (r *notificationRepository) ListByRecipient(ctx context.Context, recipientID string, page, limit int, unreadOnly bool) ([]notification.Notification, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := " WHERE recipient_id = $1"
	if unreadOnly {
		where += " AND is_read = FALSE"
	}

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM notifications`+where, recipientID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	if limit <= 0 {
		limit = 20
	}
	if page <= 0 {
		page = 1
	}

	rows, err := q.Query(ctx, `
		SELECT id, recipient_id, sender_id, type, title, message, data, is_read, read_at, created_at
		FROM notifications`+where+`
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, recipientID, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	var items []notification.Notification
	for rows.Next() {
		var n notification.Notification
		var data []byte
		if err := rows.Scan(&n.ID, &n.RecipientID, &n.SenderID, &n.Type, &n.Title,
			&n.Message, &data, &n.IsRead, &n.ReadAt, &n.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan notification: %w", err)
		}
		if len(data) > 0 {
			if err := json.Unmarshal(data, &n.Data); err != nil {
				return nil, 0, fmt.Errorf("failed to unmarshal notification data: %w", err)
			}
		}
		items = append(items, n)
	}
	return items, total, rows.Err()
}

func (r *notificationRepository) UnreadCount(ctx context.Context, recipientID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `
		SELECT COUNT(*) FROM notifications WHERE recipient_id = $1 AND is_read = FALSE
	`, recipientID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, recipientID string, ids []string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		UPDATE notifications
		SET is_read = TRUE, read_at = NOW()
		WHERE recipient_id = $1 AND id = ANY($2)
	`, recipientID, ids)
	if err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return nil
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, recipientID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		UPDATE notifications
		SET is_read = TRUE, read_at = NOW()
		WHERE recipient_id = $1 AND is_read = FALSE
	`, recipientID)
	if err != nil {
		return fmt.Errorf("failed to mark all notifications read: %w", err)
	}
	return nil
}

func (r *notificationRepository) Delete(ctx context.Context, recipientID, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		DELETE FROM notifications WHERE id = $1 AND recipient_id = $2
	`, id, recipientID)
	if err != nil {
		return fmt.Errorf("failed to delete notification: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return notification.ErrNotificationNotFound
	}
	return nil
}
