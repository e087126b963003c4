package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"shopbot/internal/domain"
	"shopbot/internal/ports/output"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// ShopService struct - Application service implementing the e-commerce use cases
type ShopService struct {
	repo   output.ShopRepository
	tokens output.TokenIssuer
}

// NewShopService func - Creates new e-commerce service
func NewShopService(repo output.ShopRepository, tokens output.TokenIssuer) *ShopService {
	return &ShopService{
		repo:   repo,
		tokens: tokens,
	}
}

// Login func - Use case: check credentials and hand out a session token
func (s *ShopService) Login(ctx context.Context, request domain.LoginRequest) (*domain.LoginResponse, error) {
	invalid := domain.NewShopError(domain.ErrUnauthorized, "Invalid credentials")

	user, err := s.repo.FindUserByUsername(ctx, request.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, invalid
		}
		logrus.Errorln(err)
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(request.Password)) != nil {
		return nil, invalid
	}

	token, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}

	logrus.Infof("User %s logged in", user.Username)
	return &domain.LoginResponse{
		Message:   "Login successful",
		UserID:    user.ID,
		Username:  user.Username,
		SessionID: token,
	}, nil
}

// SearchProducts func - Use case: filter the catalog. Text filters are case-insensitive.
func (s *ShopService) SearchProducts(ctx context.Context, query domain.ProductQuery) (*domain.ProductList, error) {
	query.Query = strings.ToLower(strings.TrimSpace(query.Query))
	query.Category = strings.ToLower(strings.TrimSpace(query.Category))
	query.Brand = strings.ToLower(strings.TrimSpace(query.Brand))

	products, err := s.repo.SearchProducts(ctx, query)
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	if products == nil {
		products = []domain.Product{}
	}
	return &domain.ProductList{Products: products}, nil
}

// GetProduct func - Use case: fetch one product
func (s *ShopService) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	return s.repo.GetProduct(ctx, productID)
}

// GetCart func - Use case: list the user's cart, creating it on first use
func (s *ShopService) GetCart(ctx context.Context, userID string) (*domain.CartView, error) {
	if userID == "" {
		return nil, domain.NewShopError(domain.ErrInvalidRequest, "User ID is required")
	}
	return s.repo.GetCart(ctx, userID)
}

// AddToCart func - Use case: put units of a product in the cart. Quantity defaults to 1.
func (s *ShopService) AddToCart(ctx context.Context, request domain.CartMutationRequest) (*domain.MessageResponse, error) {
	if request.Quantity == 0 {
		request.Quantity = 1
	}
	if request.UserID == "" || request.ProductID == "" || request.Quantity < 0 {
		return nil, domain.NewShopError(domain.ErrInvalidRequest, "User ID, Product ID, and Quantity are required")
	}
	return s.repo.AddToCart(ctx, request)
}

// RemoveFromCart func - Use case: take units out of the cart. A missing or
// negative quantity removes the whole line.
func (s *ShopService) RemoveFromCart(ctx context.Context, request domain.CartMutationRequest) (*domain.MessageResponse, error) {
	if request.UserID == "" || request.ProductID == "" {
		return nil, domain.NewShopError(domain.ErrInvalidRequest, "User ID and Product ID are required")
	}
	if request.Quantity <= 0 {
		request.Quantity = domain.RemoveAllUnits
	}
	return s.repo.RemoveFromCart(ctx, request)
}

// Checkout func - Use case: turn the cart into a pending order
func (s *ShopService) Checkout(ctx context.Context, request domain.CheckoutRequest) (*domain.CheckoutResponse, error) {
	if request.UserID == "" {
		return nil, domain.NewShopError(domain.ErrInvalidRequest, "User ID is required")
	}
	result, err := s.repo.Checkout(ctx, request.UserID)
	if err != nil {
		return nil, err
	}
	logrus.Infof("Order %s placed by user %s", result.OrderID, request.UserID)
	return result, nil
}

// RecordChatLog func - Use case: persist one chat turn
func (s *ShopService) RecordChatLog(ctx context.Context, request domain.ChatLogRequest) (*domain.MessageResponse, error) {
	if request.SessionID == "" || request.Sender == "" || request.Message == "" {
		return nil, domain.NewShopError(domain.ErrInvalidRequest, "Session ID, sender, and message are required")
	}
	if err := s.repo.CreateChatLog(ctx, request); err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	return &domain.MessageResponse{Message: "Chat log recorded"}, nil
}
