package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/workline-hr/workline-backend-go/internal/domain/announcement"
	"github.com/workline-hr/workline-backend-go/internal/pkg/database"
)

type announcementRepository struct {
	db *database.DB
}

func NewAnnouncementRepository(db *database.DB) announcement.Repository {
	return &announcementRepository{db: db}
}

const announcementColumns = `a.id, a.author_id, a.title, a.body, a.audience, a.publish_at,
	a.created_at, a.updated_at, u.full_name`

func scanAnnouncement(row pgx.Row) (announcement.Announcement, error) {
	var a announcement.Announcement
	err := row.Scan(
		&a.ID, &a.AuthorID, &a.Title, &a.Body, &a.Audience, &a.PublishAt,
		&a.CreatedAt, &a.UpdatedAt, &a.AuthorName,
	)
	return a, err
}

func (r *announcementRepository) Create(ctx context.Context, a announcement.Announcement) (announcement.Announcement, error) {
	q := GetQuerier(ctx, r.db)

	err := q.QueryRow(ctx, `
		INSERT INTO announcements (author_id, title, body, audience, publish_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, a.AuthorID, a.Title, a.Body, a.Audience, a.PublishAt).
		Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return announcement.Announcement{}, fmt.Errorf("failed to create announcement: %w", err)
	}
	return a, nil
}

func (r *announcementRepository) GetByID(ctx context.Context, id string) (announcement.Announcement, error) {
	q := GetQuerier(ctx, r.db)

	a, err := scanAnnouncement(q.QueryRow(ctx, `
		SELECT `+announcementColumns+`
		FROM announcements a
		JOIN users u ON u.id = a.author_id
		WHERE a.id = $1
	`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return announcement.Announcement{}, announcement.ErrAnnouncementNotFound
		}
		return announcement.Announcement{}, fmt.Errorf("failed to get announcement: %w", err)
	}
	return a, nil
}

func (r *announcementRepository) List(ctx context.Context, filter announcement.ListFilter, now time.Time) ([]announcement.Announcement, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := ""
	var args []interface{}
	if !filter.IncludeScheduled {
		where = " WHERE a.publish_at <= $1"
		args = append(args, now)
	}

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM announcements a`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count announcements: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}
	args = append(args, limit, (page-1)*limit)

	query := fmt.Sprintf(`
		SELECT `+announcementColumns+`
		FROM announcements a
		JOIN users u ON u.id = a.author_id
		%s
		ORDER BY a.publish_at DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)-1, len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list announcements: %w", err)
	}
	defer rows.Close()

	var items []announcement.Announcement
	for rows.Next() {
		a, err := scanAnnouncement(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan announcement: %w", err)
		}
		items = append(items, a)
	}
	return items, total, rows.Err()
}

func (r *announcementRepository) Update(ctx context.Context, a announcement.Announcement) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE announcements
		SET title = $2, body = $3, audience = $4, publish_at = $5, updated_at = NOW()
		WHERE id = $1
	`, a.ID, a.Title, a.Body, a.Audience, a.PublishAt)
	if err != nil {
		return fmt.Errorf("failed to update announcement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return announcement.ErrAnnouncementNotFound
	}
	return nil
}

func (r *announcementRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM announcements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete announcement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return announcement.ErrAnnouncementNotFound
	}
	return nil
}
