package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/workline-hr/workline-backend-go/internal/domain/attendance"
	"github.com/workline-hr/workline-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.LogRepository {
	return &attendanceRepository{db: db}
}

const logColumns = `a.id, a.user_id, a.work_date, a.clock_in, a.clock_out, a.status, a.mode,
	a.approved_by, a.approved_at, a.created_at, a.updated_at, u.full_name`

func scanLog(row pgx.Row) (attendance.Log, error) {
	var log attendance.Log
	err := row.Scan(
		&log.ID, &log.UserID, &log.WorkDate, &log.ClockIn, &log.ClockOut,
		&log.Status, &log.Mode, &log.ApprovedBy, &log.ApprovedAt,
		&log.CreatedAt, &log.UpdatedAt, &log.UserName,
	)
	return log, err
}

func (r *attendanceRepository) Create(ctx context.Context, log attendance.Log) (attendance.Log, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_logs (user_id, work_date, clock_in, clock_out, status, mode, approved_by, approved_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		log.UserID, log.WorkDate, log.ClockIn, log.ClockOut,
		log.Status, log.Mode, log.ApprovedBy, log.ApprovedAt,
	).Scan(&log.ID, &log.CreatedAt, &log.UpdatedAt)
	if err != nil {
		return attendance.Log{}, fmt.Errorf("failed to create attendance log: %w", err)
	}
	return log, nil
}

func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Log, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + logColumns + `
		FROM attendance_logs a
		JOIN users u ON u.id = a.user_id
		WHERE a.id = $1
	`
	log, err := scanLog(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Log{}, attendance.ErrLogNotFound
		}
		return attendance.Log{}, fmt.Errorf("failed to get attendance log: %w", err)
	}
	return log, nil
}

func (r *attendanceRepository) GetOpenSession(ctx context.Context, userID string) (*attendance.Log, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + logColumns + `
		FROM attendance_logs a
		JOIN users u ON u.id = a.user_id
		WHERE a.user_id = $1 AND a.clock_in IS NOT NULL AND a.clock_out IS NULL
		ORDER BY a.clock_in DESC
		LIMIT 1
	`
	log, err := scanLog(q.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get open session: %w", err)
	}
	return &log, nil
}

func (r *attendanceRepository) ListForRange(ctx context.Context, start, end time.Time, userID *string) ([]attendance.Log, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + logColumns + `
		FROM attendance_logs a
		JOIN users u ON u.id = a.user_id
		WHERE a.work_date BETWEEN $1 AND $2
	`
	args := []interface{}{start, end}
	if userID != nil {
		query += ` AND a.user_id = $3`
		args = append(args, *userID)
	}
	query += ` ORDER BY a.work_date, u.full_name`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance logs for range: %w", err)
	}
	defer rows.Close()

	var logs []attendance.Log
	for rows.Next() {
		log, err := scanLog(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance log: %w", err)
		}
		logs = append(logs, log)
	}
	return logs, rows.Err()
}

func (r *attendanceRepository) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Log, int64, error) {
	q := GetQuerier(ctx, r.db)

	var conditions []string
	var args []interface{}
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.UserID != nil {
		conditions = append(conditions, "a.user_id = "+arg(*filter.UserID))
	}
	if filter.Status != nil {
		conditions = append(conditions, "a.status = "+arg(*filter.Status))
	}
	if filter.StartDate != nil {
		conditions = append(conditions, "a.work_date >= "+arg(*filter.StartDate))
	}
	if filter.EndDate != nil {
		conditions = append(conditions, "a.work_date <= "+arg(*filter.EndDate))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM attendance_logs a` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance logs: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}

	query := `
		SELECT ` + logColumns + `
		FROM attendance_logs a
		JOIN users u ON u.id = a.user_id` + where + `
		ORDER BY a.work_date DESC, a.created_at DESC
		LIMIT ` + arg(limit) + ` OFFSET ` + arg((page-1)*limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance logs: %w", err)
	}
	defer rows.Close()

	var logs []attendance.Log
	for rows.Next() {
		log, err := scanLog(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance log: %w", err)
		}
		logs = append(logs, log)
	}
	return logs, total, rows.Err()
}

func (r *attendanceRepository) HasRecordForDay(ctx context.Context, userID string, day time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM attendance_logs WHERE user_id = $1 AND work_date = $2
		)
	`, userID, day).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check attendance record: %w", err)
	}
	return exists, nil
}

func (r *attendanceRepository) Update(ctx context.Context, log attendance.Log) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE attendance_logs
		SET clock_in = $2, clock_out = $3, status = $4, mode = $5,
			approved_by = $6, approved_at = $7, updated_at = NOW()
		WHERE id = $1
	`, log.ID, log.ClockIn, log.ClockOut, log.Status, log.Mode, log.ApprovedBy, log.ApprovedAt)
	if err != nil {
		return fmt.Errorf("failed to update attendance log: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrLogNotFound
	}
	return nil
}

func (r *attendanceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendance_logs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance log: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrLogNotFound
	}
	return nil
}
