package output

import (
	"context"

	"shopbot/internal/domain"
)

// ShopClient interface - Output port
// Defines what the sales assistant needs from the e-commerce service.
// Implementations never panic: transport failures and collaborator errors are
// both returned as *domain.ShopError whose Message is safe to show the shopper.
type ShopClient interface {
	SearchProducts(ctx context.Context, query domain.ProductQuery) (*domain.ProductList, error)
	GetProduct(ctx context.Context, productID string) (*domain.Product, error)
	GetCart(ctx context.Context, userID string) (*domain.CartView, error)
	AddToCart(ctx context.Context, request domain.CartMutationRequest) (*domain.MessageResponse, error)
	RemoveFromCart(ctx context.Context, request domain.CartMutationRequest) (*domain.MessageResponse, error)
	Checkout(ctx context.Context, userID string) (*domain.CheckoutResponse, error)
	LogChat(ctx context.Context, request domain.ChatLogRequest) error
}
