package domain

import "time"

// DTOs (Data Transfer Objects) - Domain layer request/response structures

type (
	// LoginRequest struct - Domain login request DTO
	LoginRequest struct {
		Username string
		Password string
	}

	// LoginResponse struct - Domain login response DTO
	LoginResponse struct {
		Message   string `json:"message"`
		UserID    string `json:"user_id"`
		Username  string `json:"username"`
		SessionID string `json:"session_id"`
	}

	// ProductQuery struct - Domain product search DTO. Nil/empty fields do not filter.
	ProductQuery struct {
		ID       string
		Query    string
		Category string
		Brand    string
		MinPrice *float64
		MaxPrice *float64
	}

	// ProductList struct
	ProductList struct {
		Products []Product `json:"products"`
	}

	// CartLine struct - One cart row joined with its product
	CartLine struct {
		ItemID    string  `json:"item_id"`
		ProductID string  `json:"product_id"`
		Name      string  `json:"name"`
		Price     float64 `json:"price"`
		Quantity  int     `json:"quantity"`
		ImageURL  string  `json:"image_url"`
	}

	// CartView struct
	CartView struct {
		Items      []CartLine `json:"items"`
		TotalPrice float64    `json:"total_price"`
	}

	// CartMutationRequest struct - Domain add/remove request DTO.
	// For removals a Quantity of RemoveAllUnits (or zero) removes the whole line.
	CartMutationRequest struct {
		UserID    string `json:"user_id"`
		ProductID string `json:"product_id"`
		Quantity  int    `json:"quantity,omitempty"`
	}

	// MessageResponse struct
	MessageResponse struct {
		Message string `json:"message"`
	}

	// CheckoutRequest struct
	CheckoutRequest struct {
		UserID string `json:"user_id"`
	}

	// CheckoutResponse struct
	CheckoutResponse struct {
		Message     string  `json:"message"`
		OrderID     string  `json:"order_id"`
		TotalAmount float64 `json:"total_amount"`
	}

	// ChatLogRequest struct
	ChatLogRequest struct {
		SessionID string `json:"session_id"`
		Sender    Sender `json:"sender"`
		Message   string `json:"message"`
	}

	// ChatRequest struct - Domain chatbot gateway request DTO
	ChatRequest struct {
		Query            string
		SessionID        string
		UserID           string
		LoggedInUserID   string
		LoggedInUsername string
		SessionToken     string
	}

	// ProductCard struct - Product rendered by the chat frontend; cart lines carry Quantity
	ProductCard struct {
		ID          string  `json:"id"`
		Name        string  `json:"name"`
		Description string  `json:"description"`
		Price       float64 `json:"price"`
		Category    string  `json:"category,omitempty"`
		Brand       string  `json:"brand,omitempty"`
		Stock       int     `json:"stock"`
		ImageURL    string  `json:"image_url"`
		Quantity    int     `json:"quantity,omitempty"`
	}

	// ChatResponse struct - Domain chatbot reply DTO
	ChatResponse struct {
		Text      string        `json:"text"`
		Products  []ProductCard `json:"products"`
		SessionID string        `json:"session_id"`
		UserID    string        `json:"user_id"`
	}

	// SessionSnapshot struct - Point-in-time copy of a chat session
	SessionSnapshot struct {
		SessionID   string         `json:"session_id"`
		UserID      string         `json:"user_id"`
		ChatHistory []ChatTurn     `json:"chat_history"`
		Context     SessionContext `json:"context"`
		StartTime   time.Time      `json:"start_time"`
	}
)

// RemoveAllUnits is the removal quantity meaning "the whole cart line"
const RemoveAllUnits = -1

// CardFromProduct converts a catalog product into a chat product card
func CardFromProduct(p Product) ProductCard {
	return ProductCard{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		Brand:       p.Brand,
		Stock:       p.Stock,
		ImageURL:    p.ImageURL,
	}
}

// CardFromCartLine converts a cart line into a chat product card
func CardFromCartLine(line CartLine) ProductCard {
	return ProductCard{
		ID:       line.ProductID,
		Name:     line.Name,
		Price:    line.Price,
		ImageURL: line.ImageURL,
		Quantity: line.Quantity,
	}
}
