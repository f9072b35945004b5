package service

import (
	"context"

	"github.com/spec-kit/storefront-support/internal/domain"
	"github.com/spec-kit/storefront-support/internal/repository"
)

// FeedbackService records user feedback.
type FeedbackService struct {
	feedback repository.FeedbackRepository
}

// NewFeedbackService constructs the service.
func NewFeedbackService(feedback repository.FeedbackRepository) *FeedbackService {
	return &FeedbackService{feedback: feedback}
}

// Submit appends a feedback record.
func (s *FeedbackService) Submit(ctx context.Context, userID *string, category, message string) (*domain.Feedback, error) {
	entry := &domain.Feedback{
		UserID:   userID,
		Category: category,
		Message:  message,
	}
	if err := s.feedback.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}
