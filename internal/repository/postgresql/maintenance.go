package postgresql

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/workline-hr/workline-backend-go/internal/domain/calendar"
	"github.com/workline-hr/workline-backend-go/internal/domain/leave"
	"github.com/workline-hr/workline-backend-go/internal/pkg/database"
)

// maintenanceRepository backs the calendar self-heal with server-side
// procedures. The retract step prefers an atomic procedure that runs
// with elevated rights; when the function is missing it degrades to a
// plain delete so older databases keep working.
type maintenanceRepository struct {
	db        *database.DB
	leaveRepo leave.RequestRepository
}

func NewMaintenanceRepository(db *database.DB, leaveRepo leave.RequestRepository) calendar.MaintenanceRepository {
	return &maintenanceRepository{db: db, leaveRepo: leaveRepo}
}

// undefinedFunction is the PostgreSQL error code raised when the
// server-side procedure has not been installed.
const undefinedFunction = "42883"

func (r *maintenanceRepository) RetractFutureUnexcusedAbsences(ctx context.Context, from time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var deleted int64
	err := q.QueryRow(ctx, `SELECT retract_future_unexcused_absences($1)`, from).Scan(&deleted)
	if err == nil {
		return deleted, nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == undefinedFunction {
		slog.Warn("retract procedure missing, using direct delete fallback")
		return r.leaveRepo.DeleteFutureUnexcused(ctx, from)
	}
	return 0, fmt.Errorf("failed to retract future unexcused absences: %w", err)
}

func (r *maintenanceRepository) MarkAbsencesForRange(ctx context.Context, start, end time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var marked int64
	err := q.QueryRow(ctx, `SELECT mark_absences_for_range($1, $2)`, start, end).Scan(&marked)
	if err != nil {
		return 0, fmt.Errorf("failed to mark absences for range: %w", err)
	}
	return marked, nil
}
