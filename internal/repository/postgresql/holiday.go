package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/workline-hr/workline-backend-go/internal/domain/holiday"
	"github.com/workline-hr/workline-backend-go/internal/pkg/database"
)

type holidayRepository struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.EventRepository {
	return &holidayRepository{db: db}
}

func (r *holidayRepository) Create(ctx context.Context, event holiday.Event) (holiday.Event, error) {
	q := GetQuerier(ctx, r.db)

	err := q.QueryRow(ctx, `
		INSERT INTO holiday_events (event_date, title)
		VALUES ($1, $2)
		RETURNING id, created_at
	`, event.EventDate, event.Title).Scan(&event.ID, &event.CreatedAt)
	if err != nil {
		return holiday.Event{}, fmt.Errorf("failed to create holiday event: %w", err)
	}
	return event, nil
}

func (r *holidayRepository) GetByDate(ctx context.Context, day time.Time) ([]holiday.Event, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, event_date, title, created_at
		FROM holiday_events
		WHERE event_date = $1
	`, day)
	if err != nil {
		return nil, fmt.Errorf("failed to get holiday events by date: %w", err)
	}
	defer rows.Close()

	var events []holiday.Event
	for rows.Next() {
		var e holiday.Event
		if err := rows.Scan(&e.ID, &e.EventDate, &e.Title, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan holiday event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *holidayRepository) ListForRange(ctx context.Context, start, end time.Time) ([]holiday.Event, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, event_date, title, created_at
		FROM holiday_events
		WHERE event_date BETWEEN $1 AND $2
		ORDER BY event_date
	`, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list holiday events: %w", err)
	}
	defer rows.Close()

	var events []holiday.Event
	for rows.Next() {
		var e holiday.Event
		if err := rows.Scan(&e.ID, &e.EventDate, &e.Title, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan holiday event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *holidayRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM holiday_events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete holiday event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return holiday.ErrEventNotFound
	}
	return nil
}
