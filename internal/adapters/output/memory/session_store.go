package memory

import (
	"sync"
	"time"

	"shopbot/internal/domain"
	"shopbot/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// Compile-time check to ensure MemorySessionStore implements SessionStore interface
var _ output.SessionStore = (*MemorySessionStore)(nil)

// MemorySessionStore struct - Output adapter for in-memory session storage
// Uses sync.Map for thread-safe concurrent access to chat sessions keyed by session id.
// Sessions live until process exit unless an idle timeout is configured.
type MemorySessionStore struct {
	sessions sync.Map
	timeout  time.Duration
}

// NewMemorySessionStore creates a new in-memory session store.
// timeout: idle duration after which sessions are evicted, zero keeps them forever
func NewMemorySessionStore(timeout time.Duration) *MemorySessionStore {
	return &MemorySessionStore{
		timeout: timeout,
	}
}

// GetTimeout returns the configured idle timeout.
func (m *MemorySessionStore) GetTimeout() time.Duration {
	return m.timeout
}

// CreateSession allocates and registers a new session.
func (m *MemorySessionStore) CreateSession(userID string) (*domain.ChatSession, error) {
	for {
		session, err := domain.NewChatSession(userID, m.timeout)
		if err != nil {
			return nil, err
		}
		// A 128-bit random collision is not expected; LoadOrStore keeps the invariant anyway.
		if _, loaded := m.sessions.LoadOrStore(session.ID, session); !loaded {
			logrus.Debugf("Created chat session %s for user %s", session.ID, session.UserID)
			return session, nil
		}
	}
}

// GetSession retrieves a session by id.
// Returns nil if the session does not exist or has expired. Expired sessions
// are deleted (lazy cleanup). The access time of live sessions is refreshed.
func (m *MemorySessionStore) GetSession(sessionID string) (*domain.ChatSession, error) {
	if sessionID == "" {
		return nil, nil
	}

	value, exists := m.sessions.Load(sessionID)
	if !exists {
		return nil, nil
	}

	session, ok := value.(*domain.ChatSession)
	if !ok {
		// If data is malformed, delete and return nil
		m.sessions.Delete(sessionID)
		return nil, nil
	}

	if session.IsExpired() {
		m.sessions.CompareAndDelete(sessionID, session)
		logrus.Debugf("Evicted idle chat session %s", sessionID)
		return nil, nil
	}

	session.Touch(time.Now())

	return session, nil
}

// ResetSession clears the session in place; identity and ownership are kept.
func (m *MemorySessionStore) ResetSession(session *domain.ChatSession) error {
	session.Reset()
	session.Touch(time.Now())
	return nil
}

// Len returns the number of registered sessions, expired ones included.
func (m *MemorySessionStore) Len() int {
	n := 0
	m.sessions.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
