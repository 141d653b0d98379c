package recognition

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/workline-hr/workline-backend-go/internal/domain/notification"
	"github.com/workline-hr/workline-backend-go/internal/domain/recognition"
	"github.com/workline-hr/workline-backend-go/internal/domain/user"
)

type RecognitionServiceImpl struct {
	recognition.AwardRepository
	userRepo  user.UserRepository
	notifySvc notification.Service
	logger    *slog.Logger
}

func NewRecognitionService(repo recognition.AwardRepository, userRepo user.UserRepository, notifySvc notification.Service, logger *slog.Logger) recognition.Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &RecognitionServiceImpl{
		AwardRepository: repo,
		userRepo:        userRepo,
		notifySvc:       notifySvc,
		logger:          logger,
	}
}

func (s *RecognitionServiceImpl) Give(ctx context.Context, senderID string, req recognition.GiveRequest) (recognition.Award, error) {
	if err := req.Validate(); err != nil {
		return recognition.Award{}, err
	}
	if req.RecipientID == senderID {
		return recognition.Award{}, recognition.ErrSelfAward
	}

	recipient, err := s.userRepo.GetByID(ctx, req.RecipientID)
	if err != nil {
		return recognition.Award{}, err
	}

	award, err := s.AwardRepository.Create(ctx, recognition.Award{
		SenderID:    senderID,
		RecipientID: recipient.ID,
		Points:      req.Points,
		Message:     req.Message,
	})
	if err != nil {
		return recognition.Award{}, fmt.Errorf("failed to create award: %w", err)
	}

	if s.notifySvc != nil {
		if err := s.notifySvc.Queue(ctx, notification.CreateRequest{
			RecipientID: recipient.ID,
			SenderID:    &senderID,
			Type:        notification.TypeRecognitionReceived,
			Title:       "You received recognition",
			Message:     fmt.Sprintf("You received %d points: %s", req.Points, req.Message),
			Data:        map[string]interface{}{"award_id": award.ID, "points": req.Points},
		}); err != nil {
			s.logger.Warn("failed to queue recognition notification", slog.Any("error", err))
		}
	}
	return award, nil
}

func (s *RecognitionServiceImpl) Feed(ctx context.Context, filter recognition.FeedFilter) ([]recognition.Award, int64, error) {
	return s.AwardRepository.Feed(ctx, filter)
}

func (s *RecognitionServiceImpl) Balance(ctx context.Context, userID string) (recognition.Balance, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return recognition.Balance{}, err
	}

	points, err := s.AwardRepository.BalanceOf(ctx, userID)
	if err != nil {
		return recognition.Balance{}, fmt.Errorf("failed to get balance: %w", err)
	}
	return recognition.Balance{UserID: u.ID, UserName: u.FullName, Points: points}, nil
}

func (s *RecognitionServiceImpl) Leaderboard(ctx context.Context, limit int) ([]recognition.Balance, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	return s.AwardRepository.Leaderboard(ctx, limit)
}
