package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/workline-hr/workline-backend-go/internal/domain/helpdesk"
	"github.com/workline-hr/workline-backend-go/internal/pkg/database"
)

type helpdeskRepository struct {
	db *database.DB
}

func NewHelpdeskRepository(db *database.DB) helpdesk.TicketRepository {
	return &helpdeskRepository{db: db}
}

const ticketColumns = `t.id, t.number, t.requester_id, t.subject, t.description, t.category,
	t.priority, t.status, t.assignee_id, t.created_at, t.updated_at,
	req.full_name, asg.full_name`

func scanTicket(row pgx.Row) (helpdesk.Ticket, error) {
	var t helpdesk.Ticket
	err := row.Scan(
		&t.ID, &t.Number, &t.RequesterID, &t.Subject, &t.Description, &t.Category,
		&t.Priority, &t.Status, &t.AssigneeID, &t.CreatedAt, &t.UpdatedAt,
		&t.RequesterName, &t.AssigneeName,
	)
	return t, err
}

const ticketJoin = `
	FROM helpdesk_tickets t
	JOIN users req ON req.id = t.requester_id
	LEFT JOIN users asg ON asg.id = t.assignee_id
`

func (r *helpdeskRepository) Create(ctx context.Context, ticket helpdesk.Ticket) (helpdesk.Ticket, error) {
	q := GetQuerier(ctx, r.db)

	err := q.QueryRow(ctx, `
		INSERT INTO helpdesk_tickets (number, requester_id, subject, description, category, priority, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`, ticket.Number, ticket.RequesterID, ticket.Subject, ticket.Description,
		ticket.Category, ticket.Priority, ticket.Status,
	).Scan(&ticket.ID, &ticket.CreatedAt, &ticket.UpdatedAt)
	if err != nil {
		return helpdesk.Ticket{}, fmt.Errorf("failed to create ticket: %w", err)
	}
	return ticket, nil
}

func (r *helpdeskRepository) GetByID(ctx context.Context, id string) (helpdesk.Ticket, error) {
	q := GetQuerier(ctx, r.db)

	t, err := scanTicket(q.QueryRow(ctx, `SELECT `+ticketColumns+ticketJoin+` WHERE t.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return helpdesk.Ticket{}, helpdesk.ErrTicketNotFound
		}
		return helpdesk.Ticket{}, fmt.Errorf("failed to get ticket: %w", err)
	}
	return t, nil
}

func (r *helpdeskRepository) List(ctx context.Context, filter helpdesk.ListFilter) ([]helpdesk.Ticket, int64, error) {
	q := GetQuerier(ctx, r.db)

	var conditions []string
	var args []interface{}
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.RequesterID != nil {
		conditions = append(conditions, "t.requester_id = "+arg(*filter.RequesterID))
	}
	if filter.AssigneeID != nil {
		conditions = append(conditions, "t.assignee_id = "+arg(*filter.AssigneeID))
	}
	if filter.Status != nil {
		conditions = append(conditions, "t.status = "+arg(*filter.Status))
	}
	if filter.Priority != nil {
		conditions = append(conditions, "t.priority = "+arg(*filter.Priority))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM helpdesk_tickets t`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}

	rows, err := q.Query(ctx, `SELECT `+ticketColumns+ticketJoin+where+`
		ORDER BY t.created_at DESC
		LIMIT `+arg(limit)+` OFFSET `+arg((page-1)*limit), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}
	defer rows.Close()

	var tickets []helpdesk.Ticket
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan ticket: %w", err)
		}
		tickets = append(tickets, t)
	}
	return tickets, total, rows.Err()
}

func (r *helpdeskRepository) Update(ctx context.Context, ticket helpdesk.Ticket) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE helpdesk_tickets
		SET subject = $2, description = $3, category = $4, priority = $5,
			status = $6, assignee_id = $7, updated_at = NOW()
		WHERE id = $1
	`, ticket.ID, ticket.Subject, ticket.Description, ticket.Category,
		ticket.Priority, ticket.Status, ticket.AssigneeID)
	if err != nil {
		return fmt.Errorf("failed to update ticket: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return helpdesk.ErrTicketNotFound
	}
	return nil
}

func (r *helpdeskRepository) AddComment(ctx context.Context, comment helpdesk.Comment) (helpdesk.Comment, error) {
	q := GetQuerier(ctx, r.db)

	err := q.QueryRow(ctx, `
		INSERT INTO ticket_comments (ticket_id, author_id, body)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, comment.TicketID, comment.AuthorID, comment.Body).Scan(&comment.ID, &comment.CreatedAt)
	if err != nil {
		return helpdesk.Comment{}, fmt.Errorf("failed to add ticket comment: %w", err)
	}
	return comment, nil
}

func (r *helpdeskRepository) ListComments(ctx context.Context, ticketID string) ([]helpdesk.Comment, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT c.id, c.ticket_id, c.author_id, c.body, c.created_at, u.full_name
		FROM ticket_comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.ticket_id = $1
		ORDER BY c.created_at
	`, ticketID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ticket comments: %w", err)
	}
	defer rows.Close()

	var comments []helpdesk.Comment
	for rows.Next() {
		var c helpdesk.Comment
		if err := rows.Scan(&c.ID, &c.TicketID, &c.AuthorID, &c.Body, &c.CreatedAt, &c.AuthorName); err != nil {
			return nil, fmt.Errorf("failed to scan ticket comment: %w", err)
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}
