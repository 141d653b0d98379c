package notification

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workline-hr/workline-backend-go/internal/domain/notification"
	"github.com/workline-hr/workline-backend-go/internal/pkg/sse"
)

type fakeRepo struct {
	mu      sync.Mutex
	created []notification.Notification
}

func (f *fakeRepo) Create(ctx context.Context, n notification.Notification) (notification.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n.ID = "n-1"
	n.CreatedAt = time.Now()
	f.created = append(f.created, n)
	return n, nil
}

func (f *fakeRepo) ListByRecipient(ctx context.Context, recipientID string, page, limit int, unreadOnly bool) ([]notification.Notification, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.created, int64(len(f.created)), nil
}

func (f *fakeRepo) UnreadCount(ctx context.Context, recipientID string) (int64, error) {
	return int64(len(f.created)), nil
}

func (f *fakeRepo) MarkRead(ctx context.Context, recipientID string, ids []string) error { return nil }
func (f *fakeRepo) MarkAllRead(ctx context.Context, recipientID string) error            { return nil }
func (f *fakeRepo) Delete(ctx context.Context, recipientID, id string) error             { return nil }

func (f *fakeRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.created)
}

func TestQueueDeliversToSubscriber(t *testing.T) {
	repo := &fakeRepo{}
	hub := sse.NewHub()
	svc := NewNotificationService(repo, hub, Config{WorkerCount: 1}, nil)
	defer svc.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, cleanup := svc.Subscribe(ctx, "u-1")
	defer cleanup()

	require.NoError(t, svc.Queue(ctx, notification.CreateRequest{
		RecipientID: "u-1",
		Type:        notification.TypeRecognitionReceived,
		Title:       "You received recognition",
		Message:     "You received 10 points",
	}))

	select {
	case ev := <-events:
		assert.Equal(t, "notification", ev.Event)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for SSE event")
	}
	assert.Equal(t, 1, repo.count())
}

func TestStopDrainsQueue(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewNotificationService(repo, sse.NewHub(), Config{WorkerCount: 2}, nil)

	ctx := context.Background()
	for i := 0; i < 20; i++ {
		require.NoError(t, svc.Queue(ctx, notification.CreateRequest{
			RecipientID: "u-1",
			Type:        notification.TypeAnnouncementPublished,
			Title:       "New announcement",
		}))
	}

	svc.Stop()
	assert.Equal(t, 20, repo.count())
}

func TestSubscribeCleanupIsIdempotent(t *testing.T) {
	svc := NewNotificationService(&fakeRepo{}, sse.NewHub(), Config{WorkerCount: 1}, nil)
	defer svc.Stop()

	_, cleanup := svc.Subscribe(context.Background(), "u-1")
	cleanup()
	cleanup()
}
