package domain

import (
	"errors"
	"fmt"
)

// Shop error kinds

var (
	// ErrNotFound indicates a product, cart or cart line does not exist
	ErrNotFound = errors.New("not found")

	// ErrInvalidRequest indicates an invalid request was made (4xx client errors)
	ErrInvalidRequest = errors.New("invalid request")

	// ErrUnauthorized indicates rejected credentials
	ErrUnauthorized = errors.New("unauthorized")

	// ErrShopUnavailable indicates the e-commerce service could not be reached
	ErrShopUnavailable = errors.New("e-commerce service unavailable")
)

// ShopError carries a user-facing message together with one of the error kinds above.
// The message travels verbatim over the wire as {"error": message}.
type ShopError struct {
	Kind    error
	Message string
}

// NewShopError builds a ShopError with a formatted message
func NewShopError(kind error, format string, args ...interface{}) *ShopError {
	return &ShopError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func (e *ShopError) Error() string {
	return e.Message
}

func (e *ShopError) Unwrap() error {
	return e.Kind
}

// ErrorMessage returns the user-facing message of err, or fallback when err
// carries none.
func ErrorMessage(err error, fallback string) string {
	var shopErr *ShopError
	if errors.As(err, &shopErr) && shopErr.Message != "" {
		return shopErr.Message
	}
	return fallback
}
