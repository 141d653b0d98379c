package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/workline-hr/workline-backend-go/internal/domain/leave"
	"github.com/workline-hr/workline-backend-go/internal/pkg/database"
)

type leaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.RequestRepository {
	return &leaveRequestRepository{db: db}
}

const leaveColumns = `l.id, l.user_id, l.start_date, l.end_date, l.reason, l.status,
	l.approved_by, l.approved_at, l.rejection_reason, l.created_at, l.updated_at, u.full_name`

func scanLeave(row pgx.Row) (leave.Request, error) {
	var req leave.Request
	err := row.Scan(
		&req.ID, &req.UserID, &req.StartDate, &req.EndDate, &req.Reason, &req.Status,
		&req.ApprovedBy, &req.ApprovedAt, &req.RejectionReason,
		&req.CreatedAt, &req.UpdatedAt, &req.UserName,
	)
	return req, err
}

func (r *leaveRequestRepository) Create(ctx context.Context, req leave.Request) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (user_id, start_date, end_date, reason, status, approved_by, approved_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		req.UserID, req.StartDate, req.EndDate, req.Reason, req.Status,
		req.ApprovedBy, req.ApprovedAt,
	).Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return leave.Request{}, fmt.Errorf("failed to create leave request: %w", err)
	}
	return req, nil
}

func (r *leaveRequestRepository) GetByID(ctx context.Context, id string) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests l
		JOIN users u ON u.id = l.user_id
		WHERE l.id = $1
	`
	req, err := scanLeave(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Request{}, leave.ErrRequestNotFound
		}
		return leave.Request{}, fmt.Errorf("failed to get leave request: %w", err)
	}
	return req, nil
}

// ListApprovedOverlapping uses the standard interval-overlap predicate:
// the request overlaps [start, end] iff start_date <= end AND
// end_date >= start.
func (r *leaveRequestRepository) ListApprovedOverlapping(ctx context.Context, start, end time.Time, userID *string) ([]leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests l
		JOIN users u ON u.id = l.user_id
		WHERE l.status = 'approved'
		  AND l.start_date <= $2
		  AND l.end_date >= $1
	`
	args := []interface{}{start, end}
	if userID != nil {
		query += ` AND l.user_id = $3`
		args = append(args, *userID)
	}
	query += ` ORDER BY l.start_date`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list overlapping leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.Request
	for rows.Next() {
		req, err := scanLeave(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

func (r *leaveRequestRepository) List(ctx context.Context, filter leave.ListFilter) ([]leave.Request, int64, error) {
	q := GetQuerier(ctx, r.db)

	var conditions []string
	var args []interface{}
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.UserID != nil {
		conditions = append(conditions, "l.user_id = "+arg(*filter.UserID))
	}
	if filter.Status != nil {
		conditions = append(conditions, "l.status = "+arg(*filter.Status))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM leave_requests l`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leave requests: %w", err)
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
		SELECT ` + leaveColumns + `
		FROM leave_requests l
		JOIN users u ON u.id = l.user_id` + where + `
		ORDER BY l.created_at DESC
		LIMIT ` + arg(limit) + ` OFFSET ` + arg((page-1)*limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.Request
	for rows.Next() {
		req, err := scanLeave(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}
	return requests, total, rows.Err()
}

func (r *leaveRequestRepository) UpdateStatus(ctx context.Context, id, status string, decidedBy string, rejectionReason *string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE leave_requests
		SET status = $2, approved_by = $3, approved_at = NOW(),
			rejection_reason = $4, updated_at = NOW()
		WHERE id = $1
	`, id, status, decidedBy, rejectionReason)
	if err != nil {
		return fmt.Errorf("failed to update leave request status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrRequestNotFound
	}
	return nil
}

func (r *leaveRequestRepository) DeleteFutureUnexcused(ctx context.Context, from time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		DELETE FROM leave_requests
		WHERE reason = $1 AND start_date >= $2
	`, leave.ReasonUnexcusedAbsence, from)
	if err != nil {
		return 0, fmt.Errorf("failed to delete future unexcused absences: %w", err)
	}
	return tag.RowsAffected(), nil
}
