package dto

// ChatRequest payload.
type ChatRequest struct {
	Message  string `json:"message"`
	Language string `json:"language,omitempty"`
	SenderID string `json:"sender_id,omitempty"`
}
