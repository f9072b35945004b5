package bot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spec-kit/storefront-support/internal/config"
)

// Message is one element of the bot runtime's reply list.
type Message struct {
	RecipientID string `json:"recipient_id"`
	Text        string `json:"text"`
}

// request is the payload the bot runtime expects on its REST webhook.
type request struct {
	Sender   string         `json:"sender"`
	Message  string         `json:"message"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// Client forwards user messages to the external bot runtime.
type Client struct {
	url  string
	http *http.Client
}

// NewClient builds a bot client from configuration.
func NewClient(cfg config.BotConfig) *Client {
	return &Client{
		url:  cfg.URL,
		http: &http.Client{Timeout: cfg.Timeout()},
	}
}

// Send posts a message to the bot runtime and returns its reply list.
// Any transport failure or non-2xx response is returned as an error.
func (c *Client) Send(ctx context.Context, sender, message string, metadata map[string]any) ([]Message, error) {
	body, err := json.Marshal(request{Sender: sender, Message: message, Metadata: metadata})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("bot runtime returned status %d", resp.StatusCode)
	}

	var messages []Message
	if err := json.NewDecoder(resp.Body).Decode(&messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// FirstReply extracts the text of the first reply, empty when there is none.
func FirstReply(messages []Message) string {
	if len(messages) == 0 {
		return ""
	}
	return messages[0].Text
}
