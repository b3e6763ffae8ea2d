package domain

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// OrderItem is one purchased product
type OrderItem struct {
	ProductID string  `json:"product_id"`
	DesignID  string  `json:"design_id,omitempty"`
	Prompt    string  `json:"prompt"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// Shipping is the delivery address of an order
type Shipping struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// Order represents a placed order
type Order struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	OrderID   string         `json:"order_id" gorm:"not null;uniqueIndex"`
	Items     []OrderItem    `json:"items" gorm:"serializer:json;type:jsonb"`
	Shipping  Shipping       `json:"shipping" gorm:"serializer:json;type:jsonb"`
	PaymentID string         `json:"payment_id" gorm:"not null"`
	Amount    float64        `json:"amount" gorm:"not null"`
	Currency  string         `json:"currency" gorm:"default:'INR'"`
	Email     string         `json:"email"`
	Status    string         `json:"status" gorm:"default:'placed'"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Order) TableName() string {
	return "orders"
}

// Order statuses
const (
	StatusPlaced = "placed"
)

// Errors surfaced to the HTTP layer
var (
	ErrInvalidOrder  = errors.New("invalid order")
	ErrOrderNotFound = errors.New("order not found")
)

// OrderRepository defines the contract for order data access
type OrderRepository interface {
	Create(ctx context.Context, order *Order) error
	FindByOrderID(ctx context.Context, orderID string) (*Order, error)
}
