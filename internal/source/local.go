package source

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/psychmaster/psychmaster/internal/keyword"
	"github.com/psychmaster/psychmaster/internal/panel"
)

const (
	defaultDelay  = 1500 * time.Millisecond
	defaultJitter = time.Second
)

// Local answers from a keyword matcher after a short, human-looking pause.
type Local struct {
	matcher *keyword.Matcher
	delay   time.Duration
	jitter  time.Duration
}

// LocalOption configures a Local source.
type LocalOption func(*Local)

// WithDelay sets the pause to delay plus a random share of jitter.
func WithDelay(delay, jitter time.Duration) LocalOption {
	return func(l *Local) {
		l.delay = max(delay, 0)
		l.jitter = max(jitter, 0)
	}
}

// NewLocal builds a Local source. A nil matcher uses keyword.Default.
func NewLocal(matcher *keyword.Matcher, opts ...LocalOption) *Local {
	if matcher == nil {
		matcher = keyword.Default()
	}
	l := &Local{matcher: matcher, delay: defaultDelay, jitter: defaultJitter}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// CreateSession returns a locally generated id.
func (l *Local) CreateSession(context.Context) (string, error) {
	return "local-" + uuid.NewString(), nil
}

// SendMessage waits for the pause, or for ctx, and answers from the matcher.
func (l *Local) SendMessage(ctx context.Context, text, sessionID string) (panel.Reply, error) {
	wait := l.delay
	if l.jitter > 0 {
		wait += rand.N(l.jitter)
	}

	if wait > 0 {
		timer := time.NewTimer(wait)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return panel.Reply{}, ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return panel.Reply{}, err
	}

	return panel.Reply{Text: l.matcher.Respond(text), SessionID: sessionID}, nil
}
