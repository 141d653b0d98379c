package helpdesk

import (
	"context"
)

// TicketRepository defines data access for tickets and their threads.
type TicketRepository interface {
	Create(ctx context.Context, ticket Ticket) (Ticket, error)
	GetByID(ctx context.Context, id string) (Ticket, error)
	List(ctx context.Context, filter ListFilter) ([]Ticket, int64, error)
	Update(ctx context.Context, ticket Ticket) error

	AddComment(ctx context.Context, comment Comment) (Comment, error)
	ListComments(ctx context.Context, ticketID string) ([]Comment, error)
}
