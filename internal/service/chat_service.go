package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/storefront-support/internal/auth"
	"github.com/spec-kit/storefront-support/internal/bot"
	"github.com/spec-kit/storefront-support/internal/domain"
	"github.com/spec-kit/storefront-support/internal/repository"
	apperrors "github.com/spec-kit/storefront-support/pkg/util"
)

// BotSender abstracts the external bot runtime for testing.
type BotSender interface {
	Send(ctx context.Context, sender, message string, metadata map[string]any) ([]bot.Message, error)
}

// ChatService relays user messages to the bot runtime.
type ChatService struct {
	bot      BotSender
	tokens   *auth.TokenManager
	chatLogs repository.ChatLogRepository
	logger   *zap.Logger
}

// ChatInput describes one relayed message.
type ChatInput struct {
	Message    string
	Language   string
	SenderID   string
	AuthHeader string
}

// NewChatService constructs the service.
func NewChatService(botClient BotSender, tokens *auth.TokenManager, chatLogs repository.ChatLogRepository, logger *zap.Logger) *ChatService {
	return &ChatService{
		bot:      botClient,
		tokens:   tokens,
		chatLogs: chatLogs,
		logger:   logger,
	}
}

// Handle forwards the message and returns the bot's first reply. A provided
// but invalid Authorization header is an error, never an anonymous fallback.
// Transcript logging is best-effort.
func (s *ChatService) Handle(ctx context.Context, input ChatInput) (string, error) {
	userID := input.SenderID
	if userID == "" {
		userID = domain.AnonymousSender
	}

	if input.AuthHeader != "" {
		claims, err := s.tokens.VerifyBearer(input.AuthHeader)
		if err != nil {
			return "", apperrors.NewUnauthorized(authErrorMessage(err))
		}
		userID = claims.Subject
	}

	var metadata map[string]any
	if input.Language != "" {
		metadata = map[string]any{"language": input.Language}
	}

	messages, err := s.bot.Send(ctx, userID, input.Message, metadata)
	if err != nil {
		return "", apperrors.NewUpstreamFailure("Failed to reach bot runtime", err)
	}
	reply := bot.FirstReply(messages)

	if s.chatLogs != nil {
		log := &domain.ChatLog{
			UserID:      userID,
			UserMessage: input.Message,
			BotResponse: reply,
		}
		if err := s.chatLogs.Create(ctx, log); err != nil {
			s.logger.Warn("failed to log chat transcript",
				zap.String("user_id", userID),
				zap.Error(err))
		}
	}

	return reply, nil
}

func authErrorMessage(err error) string {
	switch err {
	case auth.ErrMissingHeader:
		return "Missing Authorization header"
	case auth.ErrBadTokenFormat:
		return "Invalid token format"
	default:
		return "Invalid token"
	}
}
