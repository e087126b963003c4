package gormdb

import (
	"errors"

	"shopbot/internal/domain"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func findProduct(tx *gorm.DB, productID string) (*domain.Product, error) {
	var product domain.Product
	err := tx.Where("id = ?", productID).First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.NewShopError(domain.ErrNotFound, "Product not found")
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// findCart returns nil without error when the user has no cart yet
func findCart(tx *gorm.DB, userID string) (*domain.Cart, error) {
	var carts []domain.Cart
	if err := tx.Where("user_id = ?", userID).Limit(1).Find(&carts).Error; err != nil {
		return nil, err
	}
	if len(carts) == 0 {
		return nil, nil
	}
	return &carts[0], nil
}

func ensureCart(tx *gorm.DB, userID string) (*domain.Cart, error) {
	cart, err := findCart(tx, userID)
	if err != nil || cart != nil {
		return cart, err
	}
	cart = &domain.Cart{UserID: userID}
	if err := tx.Create(cart).Error; err != nil {
		return nil, err
	}
	logrus.Debugf("Created cart %s for user %s", cart.ID, userID)
	return cart, nil
}

func findCartItem(tx *gorm.DB, cartID, productID string) (*domain.CartItem, error) {
	var items []domain.CartItem
	if err := tx.Where("cart_id = ? AND product_id = ?", cartID, productID).Limit(1).Find(&items).Error; err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return &items[0], nil
}

func cartLines(tx *gorm.DB, cartID string) ([]domain.CartLine, error) {
	lines := []domain.CartLine{}
	err := tx.Table("cart_items AS ci").
		Select(cartLineColumns).
		Joins("JOIN products p ON ci.product_id = p.id").
		Where("ci.cart_id = ?", cartID).
		Order("p.name ASC").
		Scan(&lines).Error
	return lines, err
}

// logUnexpected logs storage failures; domain errors pass through quietly
func logUnexpected(err error) error {
	var shopErr *domain.ShopError
	if !errors.As(err, &shopErr) {
		logrus.Errorln(err)
	}
	return err
}
