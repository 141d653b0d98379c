package notification

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/workline-hr/workline-backend-go/internal/domain/notification"
	"github.com/workline-hr/workline-backend-go/internal/pkg/sse"
)

// Config tunes the background delivery workers.
type Config struct {
	WorkerCount int // default: 2
	QueueSize   int // default: 1000
}

type NotificationServiceImpl struct {
	repo   notification.Repository
	hub    *sse.Hub
	logger *slog.Logger

	queue    chan notification.CreateRequest
	wg       sync.WaitGroup
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewNotificationService starts the delivery workers. Queue never
// blocks the caller: when the buffer is full the notification is
// dropped with a warning rather than stalling the request path.
func NewNotificationService(repo notification.Repository, hub *sse.Hub, cfg Config, logger *slog.Logger) notification.Service {
	if cfg.WorkerCount == 0 {
		cfg.WorkerCount = 2
	}
	if cfg.QueueSize == 0 {
		cfg.QueueSize = 1000
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &NotificationServiceImpl{
		repo:   repo,
		hub:    hub,
		logger: logger,
		queue:  make(chan notification.CreateRequest, cfg.QueueSize),
		stopCh: make(chan struct{}),
	}

	for i := 0; i < cfg.WorkerCount; i++ {
		s.wg.Add(1)
		go s.worker()
	}

	return s
}

func (s *NotificationServiceImpl) worker() {
	defer s.wg.Done()

	for {
		select {
		case req := <-s.queue:
			s.deliver(req)
		case <-s.stopCh:
			// Drain what is already queued before exiting.
			for {
				select {
				case req := <-s.queue:
					s.deliver(req)
				default:
					return
				}
			}
		}
	}
}

func (s *NotificationServiceImpl) deliver(req notification.CreateRequest) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	n, err := s.repo.Create(ctx, notification.Notification{
		RecipientID: req.RecipientID,
		SenderID:    req.SenderID,
		Type:        req.Type,
		Title:       req.Title,
		Message:     req.Message,
		Data:        req.Data,
	})
	if err != nil {
		s.logger.Error("failed to persist notification",
			slog.String("recipient_id", req.RecipientID),
			slog.String("type", string(req.Type)),
			slog.Any("error", err))
		return
	}

	s.hub.Publish(n.RecipientID, sse.Event{
		UserID: n.RecipientID,
		Event:  "notification",
		Data:   n,
	})
}

func (s *NotificationServiceImpl) Queue(ctx context.Context, req notification.CreateRequest) error {
	select {
	case s.queue <- req:
		return nil
	default:
		s.logger.Warn("notification queue full, dropping",
			slog.String("recipient_id", req.RecipientID),
			slog.String("type", string(req.Type)))
		return nil
	}
}

func (s *NotificationServiceImpl) QueueBulk(ctx context.Context, reqs []notification.CreateRequest) error {
	for _, req := range reqs {
		if err := s.Queue(ctx, req); err != nil {
			return err
		}
	}
	return nil
}

func (s *NotificationServiceImpl) List(ctx context.Context, recipientID string, page, limit int, unreadOnly bool) (*notification.ListResponse, error) {
	items, total, err := s.repo.ListByRecipient(ctx, recipientID, page, limit, unreadOnly)
	if err != nil {
		return nil, err
	}
	unread, err := s.repo.UnreadCount(ctx, recipientID)
	if err != nil {
		return nil, err
	}
	return &notification.ListResponse{
		Notifications: items,
		UnreadCount:   unread,
		TotalItems:    total,
	}, nil
}

func (s *NotificationServiceImpl) UnreadCount(ctx context.Context, recipientID string) (int64, error) {
	return s.repo.UnreadCount(ctx, recipientID)
}

func (s *NotificationServiceImpl) MarkRead(ctx context.Context, recipientID string, ids []string) error {
	return s.repo.MarkRead(ctx, recipientID, ids)
}

func (s *NotificationServiceImpl) MarkAllRead(ctx context.Context, recipientID string) error {
	return s.repo.MarkAllRead(ctx, recipientID)
}

func (s *NotificationServiceImpl) Delete(ctx context.Context, recipientID, id string) error {
	return s.repo.Delete(ctx, recipientID, id)
}

// Subscribe attaches the caller to the live stream for userID. The
// returned cleanup must be called when the connection closes.
func (s *NotificationServiceImpl) Subscribe(ctx context.Context, userID string) (<-chan notification.SSEEvent, func()) {
	raw, cleanup := s.hub.Subscribe(userID)

	out := make(chan notification.SSEEvent, 10)
	done := make(chan struct{})

	go func() {
		defer close(out)
		for {
			select {
			case ev, ok := <-raw:
				if !ok {
					return
				}
				select {
				case out <- notification.SSEEvent{Event: ev.Event, Data: ev.Data}:
				default:
				}
			case <-done:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	var once sync.Once
	return out, func() {
		once.Do(func() {
			close(done)
			cleanup()
		})
	}
}

// Stop shuts the workers down after draining the queue.
func (s *NotificationServiceImpl) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopCh)
	})
	s.wg.Wait()
}
