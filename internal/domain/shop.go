package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

// OrderStatus type
type OrderStatus string

const (
	// OrderStatusPending const
	OrderStatusPending OrderStatus = "pending"
)

// User struct - Shop customer
type User struct {
	ID           string `gorm:"type:varchar(64);primaryKey;"`
	Username     string `gorm:"type:varchar(100);uniqueIndex;not null;"`
	PasswordHash string `gorm:"type:varchar(100);not null;"`
}

// TableName func
func (u *User) TableName() string {
	return "users"
}

// BeforeCreate hook
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	u.ID, err = newID(u.ID)
	return err
}

// Product struct - Catalog entry, also the product summary handed to the chatbot
type Product struct {
	ID          string  `gorm:"type:varchar(64);primaryKey;" json:"id"`
	Name        string  `gorm:"type:varchar(255);not null;" json:"name"`
	Description string  `gorm:"type:text" json:"description"`
	Price       float64 `gorm:"not null;" json:"price"`
	Category    string  `gorm:"type:varchar(100);index;" json:"category"`
	Brand       string  `gorm:"type:varchar(100);index;" json:"brand"`
	Stock       int     `gorm:"not null;default:0;" json:"stock"`
	ImageURL    string  `gorm:"type:text" json:"image_url"`
}

// TableName func
func (p *Product) TableName() string {
	return "products"
}

// BeforeCreate hook - generates UUID when the caller did not supply one
func (p *Product) BeforeCreate(tx *gorm.DB) (err error) {
	p.ID, err = newID(p.ID)
	return err
}

// Cart struct - One cart per user
type Cart struct {
	ID     string `gorm:"type:varchar(64);primaryKey;"`
	UserID string `gorm:"type:varchar(64);uniqueIndex;not null;"`
}

// TableName func
func (c *Cart) TableName() string {
	return "carts"
}

// BeforeCreate hook
func (c *Cart) BeforeCreate(tx *gorm.DB) (err error) {
	c.ID, err = newID(c.ID)
	return err
}

// CartItem struct
type CartItem struct {
	ID        string `gorm:"type:varchar(64);primaryKey;"`
	CartID    string `gorm:"type:varchar(64);index;not null;"`
	ProductID string `gorm:"type:varchar(64);index;not null;"`
	Quantity  int    `gorm:"not null;"`
}

// TableName func
func (c *CartItem) TableName() string {
	return "cart_items"
}

// BeforeCreate hook
func (c *CartItem) BeforeCreate(tx *gorm.DB) (err error) {
	c.ID, err = newID(c.ID)
	return err
}

// Order struct
type Order struct {
	ID          string      `gorm:"type:varchar(64);primaryKey;"`
	UserID      string      `gorm:"type:varchar(64);index;not null;"`
	OrderDate   time.Time   `gorm:"not null;"`
	TotalAmount float64     `gorm:"not null;"`
	Status      OrderStatus `gorm:"type:varchar(20);not null;"`
}

// TableName func
func (o *Order) TableName() string {
	return "orders"
}

// BeforeCreate hook
func (o *Order) BeforeCreate(tx *gorm.DB) (err error) {
	o.ID, err = newID(o.ID)
	return err
}

// OrderItem struct
type OrderItem struct {
	ID              string  `gorm:"type:varchar(64);primaryKey;"`
	OrderID         string  `gorm:"type:varchar(64);index;not null;"`
	ProductID       string  `gorm:"type:varchar(64);not null;"`
	Quantity        int     `gorm:"not null;"`
	PriceAtPurchase float64 `gorm:"not null;"`
}

// TableName func
func (o *OrderItem) TableName() string {
	return "order_items"
}

// BeforeCreate hook
func (o *OrderItem) BeforeCreate(tx *gorm.DB) (err error) {
	o.ID, err = newID(o.ID)
	return err
}

// ChatLog struct - One chat turn forwarded by the chatbot gateway
type ChatLog struct {
	ID        string    `gorm:"type:varchar(26);primaryKey;"`
	SessionID string    `gorm:"type:varchar(64);index;not null;"`
	Sender    Sender    `gorm:"type:varchar(10);not null;"`
	Message   string    `gorm:"type:text;not null;"`
	Timestamp time.Time `gorm:"not null;"`
}

// TableName func
func (c *ChatLog) TableName() string {
	return "chat_logs"
}

// BeforeCreate hook - chat logs use ULIDs so rows sort by arrival
func (c *ChatLog) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = ulid.Make().String()
	}
	return nil
}

func newID(current string) (string, error) {
	if current != "" {
		return current, nil
	}
	id, err := uuid.NewRandom() // v4
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// MigrateDatabase func - Auto-migrate database schema
func MigrateDatabase(db *gorm.DB) {
	if db == nil {
		panic("An error when connect database")
	}

	err := db.AutoMigrate(
		&User{},
		&Product{},
		&Cart{},
		&CartItem{},
		&Order{},
		&OrderItem{},
		&ChatLog{},
	)
	if err != nil {
		panic(err)
	}
}
