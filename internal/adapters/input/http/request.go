package http

type (
	// LoginRequest struct - HTTP request DTO
	LoginRequest struct {
		Username string `json:"username" validate:"required" form:"username"`
		Password string `json:"password" validate:"required" form:"password"`
	}

	// QueryProductRequest struct - HTTP query request DTO
	QueryProductRequest struct {
		ID       string   `json:"id" query:"id"`
		Query    string   `json:"q" query:"q"`
		Category string   `json:"category" query:"category"`
		Brand    string   `json:"brand" query:"brand"`
		MinPrice *float64 `json:"min_price" validate:"omitempty,gte=0" query:"min_price"`
		MaxPrice *float64 `json:"max_price" validate:"omitempty,gte=0" query:"max_price"`
	}

	// AddToCartRequest struct - HTTP request DTO
	AddToCartRequest struct {
		UserID    string `json:"user_id" validate:"required"`
		ProductID string `json:"product_id" validate:"required"`
		Quantity  int    `json:"quantity" validate:"omitempty,gte=1"`
	}

	// RemoveFromCartRequest struct - HTTP request DTO. Quantity -1 or omitted removes the whole line.
	RemoveFromCartRequest struct {
		UserID    string `json:"user_id" validate:"required"`
		ProductID string `json:"product_id" validate:"required"`
		Quantity  *int   `json:"quantity" validate:"omitempty,gte=-1"`
	}

	// CheckoutRequest struct - HTTP request DTO
	CheckoutRequest struct {
		UserID string `json:"user_id" validate:"required"`
	}

	// ChatLogRequest struct - HTTP request DTO
	ChatLogRequest struct {
		SessionID string `json:"session_id" validate:"required"`
		Sender    string `json:"sender" validate:"required,oneof=user chatbot"`
		Message   string `json:"message" validate:"required"`
	}

	// ChatRequest struct - Chatbot gateway request DTO
	ChatRequest struct {
		Query            string `json:"query"`
		SessionID        string `json:"session_id"`
		UserID           string `json:"user_id"`
		LoggedInUserID   string `json:"logged_in_user_id"`
		LoggedInUsername string `json:"logged_in_username"`
		SessionToken     string `json:"session_token"`
	}
)
