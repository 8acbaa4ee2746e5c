package chat

import (
	"time"

	"github.com/psychmaster/psychmaster/internal/model/assessment"
)

// ActionCreate is the only session action the API accepts.
const ActionCreate = "create"

// CreateSessionRequest is the body of POST /api/chat/session.
type CreateSessionRequest struct {
	Action string `json:"action"`
}

// CreateSessionResponse answers POST /api/chat/session.
type CreateSessionResponse struct {
	SessionID string    `json:"session_id"`
	CreatedAt time.Time `json:"created_at"`
}

// SendRequest is the body of POST /api/chat.
type SendRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id,omitempty"`
}

// SendResponse answers POST /api/chat.
type SendResponse struct {
	Response  string    `json:"response"`
	SessionID string    `json:"session_id"`
	Timestamp time.Time `json:"timestamp"`
	IsCrisis  bool      `json:"is_crisis"`
}

// EndSessionRequest is the body of POST /api/chat/end-session.
type EndSessionRequest struct {
	SessionID string `json:"session_id"`
}

// SessionSummary condenses an ended session.
type SessionSummary struct {
	TotalMessages int        `json:"total_messages"`
	UserMessages  int        `json:"user_messages"`
	StartedAt     time.Time  `json:"started_at"`
	EndedAt       *time.Time `json:"ended_at,omitempty"`
}

// EndSessionResponse answers POST /api/chat/end-session.
type EndSessionResponse struct {
	Success         bool                        `json:"success"`
	SessionID       string                      `json:"session_id"`
	Analysis        *assessment.Analysis        `json:"analysis,omitempty"`
	Recommendations *assessment.Recommendations `json:"recommendations,omitempty"`
	Summary         *SessionSummary             `json:"session_summary,omitempty"`
	Error           string                      `json:"error,omitempty"`
}

// SessionInfo answers GET /api/chat/session/{id}. Message bodies are withheld.
type SessionInfo struct {
	ID              string                      `json:"id"`
	Active          bool                        `json:"active"`
	CreatedAt       time.Time                   `json:"created_at"`
	EndedAt         *time.Time                  `json:"ended_at,omitempty"`
	MessageCount    int                         `json:"message_count"`
	Analysis        *assessment.Analysis        `json:"analysis,omitempty"`
	Recommendations *assessment.Recommendations `json:"recommendations,omitempty"`
}

// Info strips the transcript from s.
func (s Session) Info() SessionInfo {
	return SessionInfo{
		ID:              s.ID,
		Active:          s.Active,
		CreatedAt:       s.CreatedAt,
		EndedAt:         s.EndedAt,
		MessageCount:    len(s.Messages),
		Analysis:        s.Analysis,
		Recommendations: s.Recommendations,
	}
}
