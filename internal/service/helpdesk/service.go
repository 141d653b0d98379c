package helpdesk

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/workline-hr/workline-backend-go/internal/domain/helpdesk"
	"github.com/workline-hr/workline-backend-go/internal/domain/notification"
	"github.com/workline-hr/workline-backend-go/internal/domain/user"
)

type HelpdeskServiceImpl struct {
	helpdesk.TicketRepository
	notifySvc notification.Service
	logger    *slog.Logger
}

func NewHelpdeskService(repo helpdesk.TicketRepository, notifySvc notification.Service, logger *slog.Logger) helpdesk.Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &HelpdeskServiceImpl{
		TicketRepository: repo,
		notifySvc:        notifySvc,
		logger:           logger,
	}
}

// ticketNumber derives the human-facing number from a fresh UUID.
func ticketNumber() string {
	id := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "HD-" + id[:6]
}

func (s *HelpdeskServiceImpl) Create(ctx context.Context, requesterID string, req helpdesk.CreateTicketRequest) (helpdesk.Ticket, error) {
	if err := req.Validate(); err != nil {
		return helpdesk.Ticket{}, err
	}

	ticket, err := s.TicketRepository.Create(ctx, helpdesk.Ticket{
		Number:      ticketNumber(),
		RequesterID: requesterID,
		Subject:     req.Subject,
		Description: req.Description,
		Category:    req.Category,
		Priority:    req.Priority,
		Status:      helpdesk.StatusOpen,
	})
	if err != nil {
		return helpdesk.Ticket{}, fmt.Errorf("failed to create ticket: %w", err)
	}
	return ticket, nil
}

// Get returns the ticket and its thread. Employees can only read their
// own tickets.
func (s *HelpdeskServiceImpl) Get(ctx context.Context, id string, actorID string, actorRole string) (helpdesk.Ticket, []helpdesk.Comment, error) {
	ticket, err := s.getTicket(ctx, id)
	if err != nil {
		return helpdesk.Ticket{}, nil, err
	}
	if actorRole == string(user.RoleEmployee) && ticket.RequesterID != actorID {
		return helpdesk.Ticket{}, nil, helpdesk.ErrUnauthorized
	}

	comments, err := s.TicketRepository.ListComments(ctx, ticket.ID)
	if err != nil {
		return helpdesk.Ticket{}, nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return ticket, comments, nil
}

func (s *HelpdeskServiceImpl) List(ctx context.Context, filter helpdesk.ListFilter) ([]helpdesk.Ticket, int64, error) {
	return s.TicketRepository.List(ctx, filter)
}

func (s *HelpdeskServiceImpl) Assign(ctx context.Context, id string, req helpdesk.AssignRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	ticket, err := s.getTicket(ctx, id)
	if err != nil {
		return err
	}

	ticket.AssigneeID = &req.AssigneeID
	if ticket.Status == helpdesk.StatusOpen {
		ticket.Status = helpdesk.StatusInProgress
	}
	if err := s.TicketRepository.Update(ctx, ticket); err != nil {
		return fmt.Errorf("failed to update ticket: %w", err)
	}

	s.notifyRequester(ctx, ticket, nil,
		fmt.Sprintf("Ticket %s is now being handled", ticket.Number))
	return nil
}

func (s *HelpdeskServiceImpl) Transition(ctx context.Context, id string, actorID string, req helpdesk.TransitionRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	ticket, err := s.getTicket(ctx, id)
	if err != nil {
		return err
	}
	if !helpdesk.CanTransition(ticket.Status, req.Status) {
		return helpdesk.ErrInvalidTransition
	}

	ticket.Status = req.Status
	if err := s.TicketRepository.Update(ctx, ticket); err != nil {
		return fmt.Errorf("failed to update ticket: %w", err)
	}

	s.notifyRequester(ctx, ticket, &actorID,
		fmt.Sprintf("Ticket %s moved to %s", ticket.Number, req.Status))
	return nil
}

func (s *HelpdeskServiceImpl) Comment(ctx context.Context, id string, authorID string, req helpdesk.CommentRequest) (helpdesk.Comment, error) {
	if err := req.Validate(); err != nil {
		return helpdesk.Comment{}, err
	}

	ticket, err := s.getTicket(ctx, id)
	if err != nil {
		return helpdesk.Comment{}, err
	}

	comment, err := s.TicketRepository.AddComment(ctx, helpdesk.Comment{
		TicketID: ticket.ID,
		AuthorID: authorID,
		Body:     req.Body,
	})
	if err != nil {
		return helpdesk.Comment{}, fmt.Errorf("failed to add comment: %w", err)
	}

	if authorID != ticket.RequesterID {
		s.notifyRequester(ctx, ticket, &authorID,
			fmt.Sprintf("New reply on ticket %s", ticket.Number))
	}
	return comment, nil
}

func (s *HelpdeskServiceImpl) getTicket(ctx context.Context, id string) (helpdesk.Ticket, error) {
	ticket, err := s.TicketRepository.GetByID(ctx, id)
	if err != nil {
		return helpdesk.Ticket{}, err
	}
	return ticket, nil
}

func (s *HelpdeskServiceImpl) notifyRequester(ctx context.Context, ticket helpdesk.Ticket, senderID *string, message string) {
	if s.notifySvc == nil {
		return
	}
	if err := s.notifySvc.Queue(ctx, notification.CreateRequest{
		RecipientID: ticket.RequesterID,
		SenderID:    senderID,
		Type:        notification.TypeTicketUpdated,
		Title:       "Ticket updated",
		Message:     message,
		Data:        map[string]interface{}{"ticket_id": ticket.ID, "status": ticket.Status},
	}); err != nil {
		s.logger.Warn("failed to queue ticket notification", slog.Any("error", err))
	}
}
