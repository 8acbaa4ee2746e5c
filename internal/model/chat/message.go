package chat

import "time"

// Senders of a stored message.
const (
	SenderUser      = "user"
	SenderAssistant = "assistant"
)

// Message persists individual turns for analysis.
type Message struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Sender    string    `json:"sender"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
