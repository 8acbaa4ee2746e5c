package chat

import (
	"context"
	"sync"

	"github.com/psychmaster/psychmaster/internal/model/chat"
)

// Store persists whole sessions, transcript included.
type Store interface {
	Save(ctx context.Context, session chat.Session) error
	// Load returns ErrSessionNotFound for unknown ids.
	Load(ctx context.Context, id string) (chat.Session, error)
	Close() error
}

// MemoryStore keeps sessions in process memory.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]chat.Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]chat.Session)}
}

func (m *MemoryStore) Save(_ context.Context, session chat.Session) error {
	session.Messages = append([]chat.Message(nil), session.Messages...)

	m.mu.Lock()
	m.sessions[session.ID] = session
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Load(_ context.Context, id string) (chat.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	session, ok := m.sessions[id]
	if !ok {
		return chat.Session{}, ErrSessionNotFound
	}
	session.Messages = append([]chat.Message(nil), session.Messages...)
	return session, nil
}

func (m *MemoryStore) Close() error { return nil }
