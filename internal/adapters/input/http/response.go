package http

import (
	"errors"
	"net/http"

	"shopbot/internal/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

var (
	// Success response
	Success = Status{Code: http.StatusOK, Message: []string{"Success"}}
	// ServiceUnavailable response
	ServiceUnavailable = Status{Code: http.StatusServiceUnavailable, Message: []string{"Service Unavailable"}}
)

// ResponseBody struct - Envelope used by the health endpoints
type ResponseBody struct {
	Status Status      `json:"status,omitempty"`
	Data   interface{} `json:"data,omitempty"`
}

// Status struct
type Status struct {
	Code    int      `json:"code,omitempty"`
	Message []string `json:"message,omitempty"`
}

// ErrorResponse struct - Body of every failed shop or chat call
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse struct
type HealthResponse struct {
	Service        string `json:"service"`
	ActiveSessions *int   `json:"active_sessions,omitempty"`
}

// statusForError maps a shop error kind onto an HTTP status
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrInvalidRequest):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrShopUnavailable):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

// errorJSON writes {"error": message}. Unexpected errors are logged and hidden.
func errorJSON(c *fiber.Ctx, err error) error {
	status := statusForError(err)
	message := domain.ErrorMessage(err, "")
	if message == "" {
		logrus.Errorln(err)
		message = "Internal Server Error"
	}
	return c.Status(status).JSON(ErrorResponse{Error: message})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: message})
}
