package chat

import (
	"time"

	"github.com/psychmaster/psychmaster/internal/model/assessment"
)

// Session captures an anonymous conversation and, once ended, its assessment.
type Session struct {
	ID              string                      `json:"id"`
	Active          bool                        `json:"active"`
	CreatedAt       time.Time                   `json:"created_at"`
	EndedAt         *time.Time                  `json:"ended_at,omitempty"`
	Messages        []Message                   `json:"messages,omitempty"`
	Analysis        *assessment.Analysis        `json:"analysis,omitempty"`
	Recommendations *assessment.Recommendations `json:"recommendations,omitempty"`
}

// UserMessageCount counts the turns written by the user.
func (s Session) UserMessageCount() int {
	n := 0
	for _, m := range s.Messages {
		if m.Sender == SenderUser {
			n++
		}
	}
	return n
}
