package gormdb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shopbot/internal/domain"
	"shopbot/internal/ports/output"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Compile-time check to ensure ShopRepository implements the output port
var _ output.ShopRepository = (*ShopRepository)(nil)

const cartLineColumns = "ci.id AS item_id, p.id AS product_id, p.name AS name, p.price AS price, ci.quantity AS quantity, p.image_url AS image_url"

// ShopRepository struct - Secondary/Driven adapter for the relational store (PostgreSQL or SQLite)
type ShopRepository struct {
	dbGorm *gorm.DB
}

// NewShopRepository func - Creates new repository and migrates the schema
func NewShopRepository(dbGorm *gorm.DB) *ShopRepository {
	logrus.Info("Migrate database ...")
	domain.MigrateDatabase(dbGorm)
	return &ShopRepository{
		dbGorm: dbGorm,
	}
}

// FindUserByUsername func
func (p *ShopRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	err := p.dbGorm.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.NewShopError(domain.ErrNotFound, "User not found")
	}
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	return &user, nil
}

// SearchProducts func - Filters the catalog. Text filters are expected lower-cased.
func (p *ShopRepository) SearchProducts(ctx context.Context, query domain.ProductQuery) ([]domain.Product, error) {
	products := []domain.Product{}
	tx := p.dbGorm.WithContext(ctx).Model(&domain.Product{})

	if query.ID != "" {
		tx = tx.Where("id = ?", query.ID)
	} else {
		if query.Query != "" {
			keyword := "%" + query.Query + "%"
			tx = tx.Where("(LOWER(name) LIKE ? OR LOWER(description) LIKE ?)", keyword, keyword)
		}
		if query.Category != "" {
			tx = tx.Where("LOWER(category) = ?", query.Category)
		}
		if query.Brand != "" {
			tx = tx.Where("LOWER(brand) = ?", query.Brand)
		}
		if query.MinPrice != nil {
			tx = tx.Where("price >= ?", *query.MinPrice)
		}
		if query.MaxPrice != nil {
			tx = tx.Where("price <= ?", *query.MaxPrice)
		}
	}

	if err := tx.Order("name ASC").Find(&products).Error; err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	return products, nil
}

// GetProduct func
func (p *ShopRepository) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	return findProduct(p.dbGorm.WithContext(ctx), productID)
}

// GetCart func - Lists the cart lines, creating an empty cart on first use
func (p *ShopRepository) GetCart(ctx context.Context, userID string) (*domain.CartView, error) {
	view := domain.CartView{Items: []domain.CartLine{}}
	err := p.dbGorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cart, err := ensureCart(tx, userID)
		if err != nil {
			return err
		}
		lines, err := cartLines(tx, cart.ID)
		if err != nil {
			return err
		}
		view.Items = lines
		for _, line := range lines {
			view.TotalPrice += line.Price * float64(line.Quantity)
		}
		return nil
	})
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	return &view, nil
}

// AddToCart func - Adds units to the cart and takes them out of stock
func (p *ShopRepository) AddToCart(ctx context.Context, request domain.CartMutationRequest) (*domain.MessageResponse, error) {
	var message string
	err := p.dbGorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		product, err := findProduct(tx, request.ProductID)
		if err != nil {
			return err
		}
		if product.Stock < request.Quantity {
			return domain.NewShopError(domain.ErrInvalidRequest, "Not enough stock for %s. Only %d available.", product.Name, product.Stock)
		}

		cart, err := ensureCart(tx, request.UserID)
		if err != nil {
			return err
		}

		item, err := findCartItem(tx, cart.ID, request.ProductID)
		if err != nil {
			return err
		}
		if item != nil {
			if err := tx.Model(item).UpdateColumn("quantity", gorm.Expr("quantity + ?", request.Quantity)).Error; err != nil {
				return err
			}
			message = fmt.Sprintf("%d more of %s added to cart.", request.Quantity, product.Name)
		} else {
			item = &domain.CartItem{CartID: cart.ID, ProductID: product.ID, Quantity: request.Quantity}
			if err := tx.Create(item).Error; err != nil {
				return err
			}
			message = fmt.Sprintf("%d x %s added to cart.", request.Quantity, product.Name)
		}

		return tx.Model(&domain.Product{}).Where("id = ?", product.ID).
			UpdateColumn("stock", gorm.Expr("stock - ?", request.Quantity)).Error
	})
	if err != nil {
		return nil, logUnexpected(err)
	}
	return &domain.MessageResponse{Message: message}, nil
}

// RemoveFromCart func - Removes units from the cart and returns them to stock
func (p *ShopRepository) RemoveFromCart(ctx context.Context, request domain.CartMutationRequest) (*domain.MessageResponse, error) {
	var message string
	err := p.dbGorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cart, err := findCart(tx, request.UserID)
		if err != nil {
			return err
		}
		if cart == nil {
			return domain.NewShopError(domain.ErrNotFound, "Cart not found for this user")
		}

		item, err := findCartItem(tx, cart.ID, request.ProductID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.NewShopError(domain.ErrNotFound, "Product not found in cart")
		}

		returned := request.Quantity
		if request.Quantity == domain.RemoveAllUnits || request.Quantity >= item.Quantity {
			returned = item.Quantity
			if err := tx.Delete(item).Error; err != nil {
				return err
			}
			message = fmt.Sprintf("All %d units of %s removed from cart.", item.Quantity, item.ProductID)
		} else {
			remaining := item.Quantity - request.Quantity
			if err := tx.Model(item).UpdateColumn("quantity", remaining).Error; err != nil {
				return err
			}
			message = fmt.Sprintf("%d units of %s removed from cart. New quantity: %d.", request.Quantity, item.ProductID, remaining)
		}

		return tx.Model(&domain.Product{}).Where("id = ?", request.ProductID).
			UpdateColumn("stock", gorm.Expr("stock + ?", returned)).Error
	})
	if err != nil {
		return nil, logUnexpected(err)
	}
	return &domain.MessageResponse{Message: message}, nil
}

// Checkout func - Turns the cart into a pending order and empties it
func (p *ShopRepository) Checkout(ctx context.Context, userID string) (*domain.CheckoutResponse, error) {
	var response domain.CheckoutResponse
	err := p.dbGorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cart, err := findCart(tx, userID)
		if err != nil {
			return err
		}
		if cart == nil {
			return domain.NewShopError(domain.ErrNotFound, "Cart not found for this user")
		}

		lines, err := cartLines(tx, cart.ID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return domain.NewShopError(domain.ErrInvalidRequest, "Your cart is empty. Nothing to checkout.")
		}

		order := domain.Order{
			UserID:    userID,
			OrderDate: time.Now(),
			Status:    domain.OrderStatusPending,
		}
		items := make([]domain.OrderItem, 0, len(lines))
		for _, line := range lines {
			order.TotalAmount += line.Price * float64(line.Quantity)
			items = append(items, domain.OrderItem{
				ProductID:       line.ProductID,
				Quantity:        line.Quantity,
				PriceAtPurchase: line.Price,
			})
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = order.ID
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}
		if err := tx.Where("cart_id = ?", cart.ID).Delete(&domain.CartItem{}).Error; err != nil {
			return err
		}

		response = domain.CheckoutResponse{
			Message:     "Order placed successfully!",
			OrderID:     order.ID,
			TotalAmount: order.TotalAmount,
		}
		return nil
	})
	if err != nil {
		return nil, logUnexpected(err)
	}
	return &response, nil
}

// CreateChatLog func
func (p *ShopRepository) CreateChatLog(ctx context.Context, request domain.ChatLogRequest) error {
	log := domain.ChatLog{
		SessionID: request.SessionID,
		Sender:    request.Sender,
		Message:   request.Message,
		Timestamp: time.Now(),
	}
	if err := p.dbGorm.WithContext(ctx).Create(&log).Error; err != nil {
		logrus.Errorln(err)
		return err
	}
	return nil
}
