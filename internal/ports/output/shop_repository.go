package output

import (
	"context"

	"shopbot/internal/domain"
)

// ShopRepository interface - Output port
// Defines what the e-commerce service needs from data persistence.
// Domain failures are returned as *domain.ShopError.
type ShopRepository interface {
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
	SearchProducts(ctx context.Context, query domain.ProductQuery) ([]domain.Product, error)
	GetProduct(ctx context.Context, productID string) (*domain.Product, error)
	GetCart(ctx context.Context, userID string) (*domain.CartView, error)
	AddToCart(ctx context.Context, request domain.CartMutationRequest) (*domain.MessageResponse, error)
	RemoveFromCart(ctx context.Context, request domain.CartMutationRequest) (*domain.MessageResponse, error)
	Checkout(ctx context.Context, userID string) (*domain.CheckoutResponse, error)
	CreateChatLog(ctx context.Context, request domain.ChatLogRequest) error
}
