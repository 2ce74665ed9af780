package service

import (
	"context"
	"time"

	"github.com/KartikSaxena19/LearnILmWorld/internal/dto"
	"github.com/KartikSaxena19/LearnILmWorld/internal/models"
	"github.com/KartikSaxena19/LearnILmWorld/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type FeedbackService struct {
	feedbackRepo *repository.FeedbackRepository
	careerRepo   *repository.CareerRepository
	logger       *zap.Logger
}

func NewFeedbackService(feedbackRepo *repository.FeedbackRepository, careerRepo *repository.CareerRepository, logger *zap.Logger) *FeedbackService {
	return &FeedbackService{
		feedbackRepo: feedbackRepo,
		careerRepo:   careerRepo,
		logger:       logger,
	}
}

func (s *FeedbackService) SubmitFeedback(ctx context.Context, req *dto.FeedbackRequest) (*models.Feedback, error) {
	feedback := &models.Feedback{
		ID:        uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		Category:  req.Category,
		Message:   req.Message,
		CreatedAt: time.Now(),
	}

	if err := s.feedbackRepo.Create(ctx, feedback); err != nil {
		return nil, err
	}

	s.logger.Info("Feedback submitted",
		zap.String("category", feedback.Category),
		zap.String("email", feedback.Email))

	return feedback, nil
}

func (s *FeedbackService) ListFeedback(ctx context.Context) ([]*models.Feedback, error) {
	return s.feedbackRepo.List(ctx)
}

func (s *FeedbackService) DeleteFeedback(ctx context.Context, id uuid.UUID) error {
	return s.feedbackRepo.Delete(ctx, id)
}

func (s *FeedbackService) SubmitApplication(ctx context.Context, req *dto.CareerApplicationRequest) (*models.CareerApplication, error) {
	app := &models.CareerApplication{
		ID:        uuid.New(),
		Name:      req.Name,
		Education: req.Education,
		Role:      req.Role,
		Email:     req.Email,
		Phone:     req.Phone,
		CreatedAt: time.Now(),
	}

	if err := s.careerRepo.Create(ctx, app); err != nil {
		return nil, err
	}

	s.logger.Info("Career application submitted", zap.String("role", app.Role))

	return app, nil
}

func (s *FeedbackService) ListApplications(ctx context.Context) ([]*models.CareerApplication, error) {
	return s.careerRepo.List(ctx)
}
