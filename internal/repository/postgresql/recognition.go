package postgresql

import (
	"context"
	"fmt"

	"github.com/workline-hr/workline-backend-go/internal/domain/recognition"
	"github.com/workline-hr/workline-backend-go/internal/pkg/database"
)

type recognitionRepository struct {
	db *database.DB
}

func NewRecognitionRepository(db *database.DB) recognition.AwardRepository {
	return &recognitionRepository{db: db}
}

func (r *recognitionRepository) Create(ctx context.Context, award recognition.Award) (recognition.Award, error) {
	q := GetQuerier(ctx, r.db)

	err := q.QueryRow(ctx, `
		INSERT INTO recognition_awards (sender_id, recipient_id, points, message)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, award.SenderID, award.RecipientID, award.Points, award.Message).
		Scan(&award.ID, &award.CreatedAt)
	if err != nil {
		return recognition.Award{}, fmt.Errorf("failed to create award: %w", err)
	}
	return award, nil
}

func (r *recognitionRepository) Feed(ctx context.Context, filter recognition.FeedFilter) ([]recognition.Award, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := ""
	var args []interface{}
	if filter.UserID != nil {
		where = " WHERE a.sender_id = $1 OR a.recipient_id = $1"
		args = append(args, *filter.UserID)
	}

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM recognition_awards a`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count awards: %w", err)
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

	rows, err := q.Query(ctx, fmt.Sprintf(`
		SELECT a.id, a.sender_id, a.recipient_id, a.points, a.message, a.created_at,
			   snd.full_name, rcp.full_name
		FROM recognition_awards a
		JOIN users snd ON snd.id = a.sender_id
		JOIN users rcp ON rcp.id = a.recipient_id
		%s
		ORDER BY a.created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)-1, len(args)), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list awards: %w", err)
	}
	defer rows.Close()

	var awards []recognition.Award
	for rows.Next() {
		var a recognition.Award
		if err := rows.Scan(&a.ID, &a.SenderID, &a.RecipientID, &a.Points, &a.Message,
			&a.CreatedAt, &a.SenderName, &a.RecipientName); err != nil {
			return nil, 0, fmt.Errorf("failed to scan award: %w", err)
		}
		awards = append(awards, a)
	}
	return awards, total, rows.Err()
}

func (r *recognitionRepository) BalanceOf(ctx context.Context, userID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var points int64
	err := q.QueryRow(ctx, `
		SELECT COALESCE(SUM(points), 0) FROM recognition_awards WHERE recipient_id = $1
	`, userID).Scan(&points)
	if err != nil {
		return 0, fmt.Errorf("failed to get point balance: %w", err)
	}
	return points, nil
}

func (r *recognitionRepository) Leaderboard(ctx context.Context, limit int) ([]recognition.Balance, error) {
	q := GetQuerier(ctx, r.db)

	if limit <= 0 {
		limit = 10
	}
	rows, err := q.Query(ctx, `
		SELECT u.id, u.full_name, COALESCE(SUM(a.points), 0) AS points
		FROM users u
		JOIN recognition_awards a ON a.recipient_id = u.id
		WHERE u.status = 'active'
		GROUP BY u.id, u.full_name
		ORDER BY points DESC, u.full_name
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}
	defer rows.Close()

	var balances []recognition.Balance
	for rows.Next() {
		var b recognition.Balance
		if err := rows.Scan(&b.UserID, &b.UserName, &b.Points); err != nil {
			return nil, fmt.Errorf("failed to scan balance: %w", err)
		}
		balances = append(balances, b)
	}
	return balances, rows.Err()
}
