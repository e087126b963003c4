package gormdb

import (
	"context"
	"fmt"
	"strings"

	"shopbot/internal/domain"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Demo account created by the seeder
const (
	DemoUserID   = "test_user_123"
	DemoUsername = "testuser"
	DemoPassword = "password"
)

var (
	seedCategories = []string{"Electronics", "Home & Kitchen", "Books", "Clothing", "Sports", "Beauty"}
	seedBrands     = []string{"TechGen", "HomeLux", "PageTurner", "FashionFlow", "FitLife", "GlowUp"}
	seedEditions   = []string{"Pro", "Max", "Lite", "Edition", "Basic"}
	seedPrices     = []float64{19.99, 49.99, 99.99, 149.99, 199.99, 299.99, 499.99, 799.99}
)

// SeedOptions struct
type SeedOptions struct {
	Products   int
	RandomSeed int64 // zero picks a random seed
}

// Seed func - Wipes every table and loads a fake catalog plus the demo user with an empty cart
func (p *ShopRepository) Seed(ctx context.Context, opts SeedOptions) error {
	faker := gofakeit.New(opts.RandomSeed)

	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash demo password: %w", err)
	}

	return p.dbGorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{
			&domain.ChatLog{}, &domain.OrderItem{}, &domain.Order{},
			&domain.CartItem{}, &domain.Cart{}, &domain.User{}, &domain.Product{},
		} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
				return err
			}
		}

		products := make([]domain.Product, 0, opts.Products)
		for i := 0; i < opts.Products; i++ {
			products = append(products, fakeProduct(faker))
		}
		if len(products) > 0 {
			if err := tx.CreateInBatches(&products, 50).Error; err != nil {
				return err
			}
		}
		logrus.Infof("Inserted %d mock products", len(products))

		user := domain.User{ID: DemoUserID, Username: DemoUsername, PasswordHash: string(hash)}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		if err := tx.Create(&domain.Cart{UserID: user.ID}).Error; err != nil {
			return err
		}
		logrus.Infof("Inserted mock user %s with an empty cart", user.Username)
		return nil
	})
}

func fakeProduct(faker *gofakeit.Faker) domain.Product {
	name := fmt.Sprintf("%s %s %s",
		capitalize(faker.Word()), capitalize(faker.Word()), faker.RandomString(seedEditions))
	return domain.Product{
		Name:        name,
		Description: faker.Sentence(10),
		Price:       seedPrices[faker.Number(0, len(seedPrices)-1)],
		Category:    faker.RandomString(seedCategories),
		Brand:       faker.RandomString(seedBrands),
		Stock:       faker.Number(0, 200),
		ImageURL:    "https://via.placeholder.com/150?text=" + strings.ReplaceAll(name, " ", "+"),
	}
}

func capitalize(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}
