package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/storefront-support/internal/domain"
)

// ChatLogRepository appends chatbot transcript entries.
type ChatLogRepository interface {
	Create(ctx context.Context, log *domain.ChatLog) error
}

type chatLogRepository struct {
	pool *pgxpool.Pool
}

// NewChatLogRepository instantiates repository.
func NewChatLogRepository(pool *pgxpool.Pool) ChatLogRepository {
	return &chatLogRepository{pool: pool}
}

func (r *chatLogRepository) Create(ctx context.Context, log *domain.ChatLog) error {
	const query = `
        INSERT INTO chat_logs (user_id, user_message, bot_response)
        VALUES ($1,$2,$3)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		log.UserID,
		log.UserMessage,
		log.BotResponse,
	).Scan(&log.ID, &log.CreatedAt)
}
