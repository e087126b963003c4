package domain

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Sender tags who produced a chat turn
type Sender string

const (
	// SenderUser - Message typed by the shopper
	SenderUser Sender = "user"
	// SenderChatbot - Message produced by the assistant
	SenderChatbot Sender = "chatbot"
)

const (
	// GuestUserID is the user reference of sessions not bound to a shop user
	GuestUserID = "guest"

	// ResetNotice is the synthetic chatbot turn left behind by a reset
	ResetNotice = "Conversation has been reset. How can I help you start fresh?"
)

// ChatTurn is one entry of a session's history
type ChatTurn struct {
	Sender    Sender    `json:"sender"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// SessionContext holds the conversational state consulted by entity fallbacks
type SessionContext struct {
	LastSearchedProducts []Product `json:"last_searched_products"`
	LastViewedProductID  *string   `json:"last_viewed_product_id"`
	CurrentFlow          *string   `json:"current_flow"`
	LoggedIn             bool      `json:"logged_in"`
	Username             *string   `json:"username"`
	SessionToken         *string   `json:"session_token"`
	UserID               *string   `json:"user_id,omitempty"`
}

// DefaultSessionContext returns the context of a fresh or reset session
func DefaultSessionContext() SessionContext {
	return SessionContext{
		LastSearchedProducts: []Product{},
	}
}

// ChatSession represents one conversation with the sales assistant.
// History and Context are only touched while holding the session lock.
type ChatSession struct {
	ID        string         // Opaque 128-bit random identifier
	UserID    string         // Shop user id or GuestUserID
	History   []ChatTurn     // Append-only conversation history
	Context   SessionContext // Conversational state
	StartTime time.Time      // Set once at creation

	mu         sync.Mutex
	lastAccess atomic.Int64
	timeout    time.Duration // Idle timeout, zero disables expiry
}

// NewChatSession creates a new chat session owned by userID with an idle
// timeout (zero means the session never expires)
func NewChatSession(userID string, timeout time.Duration) (*ChatSession, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return nil, err
	}
	if userID == "" {
		userID = GuestUserID
	}
	now := time.Now()
	s := &ChatSession{
		ID:        id.String(),
		UserID:    userID,
		History:   make([]ChatTurn, 0),
		Context:   DefaultSessionContext(),
		StartTime: now,
		timeout:   timeout,
	}
	s.lastAccess.Store(now.UnixNano())
	return s, nil
}

// Lock acquires the session's exclusive lock
func (s *ChatSession) Lock() {
	s.mu.Lock()
}

// Unlock releases the session's exclusive lock
func (s *ChatSession) Unlock() {
	s.mu.Unlock()
}

// Touch records an access at t
func (s *ChatSession) Touch(t time.Time) {
	s.lastAccess.Store(t.UnixNano())
}

// LastAccessTime returns the time of the latest recorded access
func (s *ChatSession) LastAccessTime() time.Time {
	return time.Unix(0, s.lastAccess.Load())
}

// IsExpired checks if the session has been idle longer than its timeout
func (s *ChatSession) IsExpired() bool {
	if s.timeout <= 0 {
		return false
	}
	return time.Since(s.LastAccessTime()) > s.timeout
}

// AddMessage appends a turn to the history and returns it
func (s *ChatSession) AddMessage(sender Sender, message string) ChatTurn {
	turn := ChatTurn{
		Sender:    sender,
		Message:   message,
		Timestamp: time.Now(),
	}
	s.History = append(s.History, turn)
	return turn
}

// Reset clears history and context in place, keeping ID and UserID, and
// leaves the reset notice as the only turn
func (s *ChatSession) Reset() {
	s.History = make([]ChatTurn, 0, 1)
	s.Context = DefaultSessionContext()
	s.AddMessage(SenderChatbot, ResetNotice)
}

// ContextUserID returns the shop user the session acts for, or "" when the
// conversation is anonymous
func (s *ChatSession) ContextUserID() string {
	if s.Context.UserID == nil {
		return ""
	}
	return *s.Context.UserID
}

// GetHistory returns a copy of the conversation history
func (s *ChatSession) GetHistory() []ChatTurn {
	history := make([]ChatTurn, len(s.History))
	copy(history, s.History)
	return history
}

// Snapshot copies the session into a value safe to hand out
func (s *ChatSession) Snapshot() SessionSnapshot {
	ctx := s.Context
	ctx.LastSearchedProducts = make([]Product, len(s.Context.LastSearchedProducts))
	copy(ctx.LastSearchedProducts, s.Context.LastSearchedProducts)
	return SessionSnapshot{
		SessionID:   s.ID,
		UserID:      s.UserID,
		ChatHistory: s.GetHistory(),
		Context:     ctx,
		StartTime:   s.StartTime,
	}
}
