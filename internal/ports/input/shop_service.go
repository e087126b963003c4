package input

import (
	"context"

	"shopbot/internal/domain"
)

// ShopService interface - Input port (use case)
// Defines what the e-commerce service can do: catalog, cart, orders, login and chat logs
type ShopService interface {
	Login(ctx context.Context, request domain.LoginRequest) (*domain.LoginResponse, error)
	SearchProducts(ctx context.Context, query domain.ProductQuery) (*domain.ProductList, error)
	GetProduct(ctx context.Context, productID string) (*domain.Product, error)
	GetCart(ctx context.Context, userID string) (*domain.CartView, error)
	AddToCart(ctx context.Context, request domain.CartMutationRequest) (*domain.MessageResponse, error)
	RemoveFromCart(ctx context.Context, request domain.CartMutationRequest) (*domain.MessageResponse, error)
	Checkout(ctx context.Context, request domain.CheckoutRequest) (*domain.CheckoutResponse, error)
	RecordChatLog(ctx context.Context, request domain.ChatLogRequest) (*domain.MessageResponse, error)
}
