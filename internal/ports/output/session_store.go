package output

import "shopbot/internal/domain"

// SessionStore interface - Output port
// Defines what the sales assistant needs for managing chat sessions.
// Implementations must be thread-safe for concurrent access and must never
// hold two live sessions for the same identifier.
type SessionStore interface {
	// CreateSession allocates a fresh session owned by userID (GuestUserID when
	// empty), registers it and returns it.
	CreateSession(userID string) (*domain.ChatSession, error)

	// GetSession retrieves a session by its identifier.
	// Returns nil when the session does not exist or has expired.
	// Returns an error only if there is a storage access failure.
	GetSession(sessionID string) (*domain.ChatSession, error)

	// ResetSession clears history and context of a session in place.
	// The caller must hold the session lock.
	ResetSession(session *domain.ChatSession) error
}
