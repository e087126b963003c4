package http

import (
	"errors"

	"shopbot/internal/domain"
	"shopbot/internal/ports/input"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// SessionCounter is implemented by session stores that can report their size
type SessionCounter interface {
	Len() int
}

// ChatbotHandler struct - Primary/Driving adapter for the chatbot gateway
type ChatbotHandler struct {
	service  input.ChatbotService
	sessions SessionCounter
}

// NewChatbotHandler func - Creates new chatbot gateway handler. sessions may be nil.
func NewChatbotHandler(service input.ChatbotService, sessions SessionCounter) *ChatbotHandler {
	return &ChatbotHandler{
		service:  service,
		sessions: sessions,
	}
}

// Chat godoc
// @Summary Send a message to the sales assistant
// @Description Omitting session_id, or sending an unknown one, starts a new session
// @Tags Chatbot
// @Accept application/json
// @Produce json
// @param Chat body ChatRequest true "Message"
// @Success 200 {object} domain.ChatResponse
// @Failure 400 {object} ErrorResponse
// @Router /chat [post]
func (h *ChatbotHandler) Chat(c *fiber.Ctx) error {
	var request ChatRequest
	if err := c.BodyParser(&request); err != nil {
		logrus.Warnf("Failed to parse chat request: %v", err)
		return badRequest(c, "Invalid request body")
	}

	response, err := h.service.Chat(c.UserContext(), domain.ChatRequest{
		Query:            request.Query,
		SessionID:        request.SessionID,
		UserID:           request.UserID,
		LoggedInUserID:   request.LoggedInUserID,
		LoggedInUsername: request.LoggedInUsername,
		SessionToken:     request.SessionToken,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			return badRequest(c, domain.ErrorMessage(err, err.Error()))
		}
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(response)
}

// GetSession godoc
// @Summary Inspect a chat session
// @Tags Chatbot
// @Produce json
// @param session_id path string true "session id"
// @Success 200 {object} domain.SessionSnapshot
// @Failure 404 {object} ErrorResponse
// @Router /session/{session_id} [get]
func (h *ChatbotHandler) GetSession(c *fiber.Ctx) error {
	snapshot, err := h.service.GetSession(c.UserContext(), c.Params("session_id"))
	if err != nil {
		return errorJSON(c, err)
	}
	if snapshot == nil {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: "Session not found"})
	}
	return c.Status(fiber.StatusOK).JSON(snapshot)
}

// HealthCheck func
// @Summary Health check
// @Tags Chatbot
// @Produce json
// @Success 200 {object} ResponseBody
// @Router /health [get]
func (h *ChatbotHandler) HealthCheck(c *fiber.Ctx) error {
	health := HealthResponse{Service: "chatbot"}
	if h.sessions != nil {
		n := h.sessions.Len()
		health.ActiveSessions = &n
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: health})
}

// RegisterRoutes mounts the gateway endpoints on app
func (h *ChatbotHandler) RegisterRoutes(app fiber.Router) {
	app.Get("/health", h.HealthCheck)
	app.Post("/chat", h.Chat)
	app.Get("/session/:session_id", h.GetSession)
}
