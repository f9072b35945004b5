package domain

import "time"

// AnonymousSender attributes chat messages without a verified identity.
const AnonymousSender = "anonymous"

// ChatLog is a best-effort transcript entry of a chatbot exchange.
type ChatLog struct {
	ID          string
	UserID      string
	UserMessage string
	BotResponse string
	CreatedAt   time.Time
}
