package input

import (
	"context"

	"shopbot/internal/domain"
)

// ChatbotService interface - Input port (use case)
// Defines what the sales assistant gateway can do
type ChatbotService interface {
	// Chat resolves (or creates) the caller's session, applies login hints from
	// the request and answers the query.
	Chat(ctx context.Context, request domain.ChatRequest) (*domain.ChatResponse, error)

	// GetSession returns a snapshot of a live session, or nil when unknown.
	GetSession(ctx context.Context, sessionID string) (*domain.SessionSnapshot, error)
}
