package helpdesk

import (
	"context"
)

// Service defines helpdesk operations.
type Service interface {
	Create(ctx context.Context, requesterID string, req CreateTicketRequest) (Ticket, error)
	Get(ctx context.Context, id string, actorID string, actorRole string) (Ticket, []Comment, error)
	List(ctx context.Context, filter ListFilter) ([]Ticket, int64, error)

	Assign(ctx context.Context, id string, req AssignRequest) error
	Transition(ctx context.Context, id string, actorID string, req TransitionRequest) error
	Comment(ctx context.Context, id string, authorID string, req CommentRequest) (Comment, error)
}
