package chat

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/psychmaster/psychmaster/internal/model/assessment"
	"github.com/psychmaster/psychmaster/internal/model/chat"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrEmptySession    = errors.New("no conversation data to analyze")
)

// Service encapsulates conversation state management on top of a Store.
type Service struct {
	// mu serializes read-modify-write cycles against the store.
	mu    sync.Mutex
	store Store
	now   func() time.Time
}

// NewService wraps store. A nil store falls back to memory.
func NewService(store Store) *Service {
	if store == nil {
		store = NewMemoryStore()
	}
	return &Service{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// CreateSession provisions an anonymous, active session.
func (s *Service) CreateSession(ctx context.Context) (chat.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.create(ctx, uuid.NewString())
}

// EnsureSession returns the session for id. An empty id creates a fresh
// session and an unknown id is adopted as a new session under that id.
func (s *Service) EnsureSession(ctx context.Context, id string) (chat.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id == "" {
		return s.create(ctx, uuid.NewString())
	}

	session, err := s.store.Load(ctx, id)
	if errors.Is(err, ErrSessionNotFound) {
		return s.create(ctx, id)
	}
	return session, err
}

func (s *Service) create(ctx context.Context, id string) (chat.Session, error) {
	session := chat.Session{
		ID:        id,
		Active:    true,
		CreatedAt: s.now(),
		Messages:  make([]chat.Message, 0, 16),
	}
	if err := s.store.Save(ctx, session); err != nil {
		return chat.Session{}, err
	}
	return session, nil
}

// AppendExchange records a user message and the reply it received.
func (s *Service) AppendExchange(ctx context.Context, sessionID, userMessage, reply string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return err
	}

	now := s.now()
	session.Messages = append(session.Messages,
		chat.Message{ID: uuid.NewString(), SessionID: sessionID, Sender: chat.SenderUser, Content: userMessage, CreatedAt: now},
		chat.Message{ID: uuid.NewString(), SessionID: sessionID, Sender: chat.SenderAssistant, Content: reply, CreatedAt: now},
	)
	return s.store.Save(ctx, session)
}

// GetSession retrieves a session by identifier.
func (s *Service) GetSession(ctx context.Context, sessionID string) (chat.Session, error) {
	return s.store.Load(ctx, sessionID)
}

// LoadTranscript returns stored messages for the provided session.
func (s *Service) LoadTranscript(ctx context.Context, sessionID string) ([]chat.Message, error) {
	session, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return session.Messages, nil
}

// EndSession closes the session and attaches the assessment produced by
// assess, which only runs for sessions holding messages. Ending an already
// ended session returns the stored result unchanged.
func (s *Service) EndSession(ctx context.Context, sessionID string, assess func([]chat.Message) (assessment.Analysis, assessment.Recommendations)) (chat.Session, error) {
	session, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return chat.Session{}, err
	}
	if !session.Active && session.Analysis != nil {
		return session, nil
	}
	if len(session.Messages) == 0 {
		return chat.Session{}, ErrEmptySession
	}

	// assess may call a model; keep it outside the lock.
	analysis, recs := assess(session.Messages)

	s.mu.Lock()
	defer s.mu.Unlock()

	session, err = s.store.Load(ctx, sessionID)
	if err != nil {
		return chat.Session{}, err
	}
	// A concurrent call may have ended it while assess ran.
	if !session.Active && session.Analysis != nil {
		return session, nil
	}
	ended := s.now()
	session.Active = false
	session.EndedAt = &ended
	session.Analysis = &analysis
	session.Recommendations = &recs

	if err := s.store.Save(ctx, session); err != nil {
		return chat.Session{}, err
	}
	return session, nil
}

// Close releases the underlying store.
func (s *Service) Close() error {
	return s.store.Close()
}
