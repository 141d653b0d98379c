package announcement

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/workline-hr/workline-backend-go/internal/domain/announcement"
	"github.com/workline-hr/workline-backend-go/internal/domain/notification"
	"github.com/workline-hr/workline-backend-go/internal/domain/user"
)

type AnnouncementServiceImpl struct {
	announcement.Repository
	userRepo  user.UserRepository
	notifySvc notification.Service
	logger    *slog.Logger
}

func NewAnnouncementService(repo announcement.Repository, userRepo user.UserRepository, notifySvc notification.Service, logger *slog.Logger) announcement.Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &AnnouncementServiceImpl{
		Repository: repo,
		userRepo:   userRepo,
		notifySvc:  notifySvc,
		logger:     logger,
	}
}

// Create posts an announcement. An immediate publish fans a
// notification out to the audience; scheduled ones notify nobody here,
// the client simply sees them once publish_at passes.
func (s *AnnouncementServiceImpl) Create(ctx context.Context, authorID string, req announcement.CreateRequest) (announcement.Announcement, error) {
	if err := req.Validate(); err != nil {
		return announcement.Announcement{}, err
	}

	now := time.Now()
	publishAt := now
	if req.PublishAt != "" {
		publishAt, _ = time.Parse(time.RFC3339, req.PublishAt)
	}

	created, err := s.Repository.Create(ctx, announcement.Announcement{
		AuthorID:  authorID,
		Title:     req.Title,
		Body:      req.Body,
		Audience:  req.Audience,
		PublishAt: publishAt,
	})
	if err != nil {
		return announcement.Announcement{}, fmt.Errorf("failed to create announcement: %w", err)
	}

	if created.IsPublished(now) {
		s.fanOut(ctx, created)
	}
	return created, nil
}

func (s *AnnouncementServiceImpl) fanOut(ctx context.Context, a announcement.Announcement) {
	if s.notifySvc == nil {
		return
	}

	roster, err := s.userRepo.ListActive(ctx)
	if err != nil {
		s.logger.Warn("failed to list roster for announcement fan-out", slog.Any("error", err))
		return
	}

	reqs := make([]notification.CreateRequest, 0, len(roster))
	for _, u := range roster {
		if a.Audience == announcement.AudienceHR && u.Role == user.RoleEmployee {
			continue
		}
		if u.ID == a.AuthorID {
			continue
		}
		reqs = append(reqs, notification.CreateRequest{
			RecipientID: u.ID,
			SenderID:    &a.AuthorID,
			Type:        notification.TypeAnnouncementPublished,
			Title:       "New announcement",
			Message:     a.Title,
			Data:        map[string]interface{}{"announcement_id": a.ID},
		})
	}
	if err := s.notifySvc.QueueBulk(ctx, reqs); err != nil {
		s.logger.Warn("failed to queue announcement notifications", slog.Any("error", err))
	}
}

func (s *AnnouncementServiceImpl) Get(ctx context.Context, id string) (announcement.Announcement, error) {
	a, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		return announcement.Announcement{}, err
	}
	return a, nil
}

func (s *AnnouncementServiceImpl) List(ctx context.Context, filter announcement.ListFilter) ([]announcement.Announcement, int64, error) {
	return s.Repository.List(ctx, filter, time.Now())
}

// Update replaces the announcement's content. Fan-out happens only
// when the edit moves it from scheduled to published, never twice.
func (s *AnnouncementServiceImpl) Update(ctx context.Context, id string, req announcement.UpdateRequest) (announcement.Announcement, error) {
	if err := req.Validate(); err != nil {
		return announcement.Announcement{}, err
	}

	a, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		return announcement.Announcement{}, err
	}

	now := time.Now()
	wasPublished := a.IsPublished(now)

	a.Title = req.Title
	a.Body = req.Body
	a.Audience = req.Audience
	if req.PublishAt != "" {
		a.PublishAt, _ = time.Parse(time.RFC3339, req.PublishAt)
	}

	if err := s.Repository.Update(ctx, a); err != nil {
		return announcement.Announcement{}, err
	}

	if !wasPublished && a.IsPublished(now) {
		s.fanOut(ctx, a)
	}
	return a, nil
}

func (s *AnnouncementServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.Repository.Delete(ctx, id)
}
