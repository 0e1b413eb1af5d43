package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
)

type CategoryStatus string

const (
	CategoryStatusActive   CategoryStatus = "active"
	CategoryStatusInactive CategoryStatus = "inactive"
)

type ProductStatus string

const (
	ProductStatusActive     ProductStatus = "active"
	ProductStatusInactive   ProductStatus = "inactive"
	ProductStatusOutOfStock ProductStatus = "out_of_stock"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

type User struct {
	ID        int64
	Name      string
	Email     string
	Password  string // bcrypt hash, never the plaintext
	Address   string
	Phone     *string
	Status    UserStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Category struct {
	ID          int64
	Name        string
	Description *string
	Status      CategoryStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Product struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal
	CategoryID  int64
	Stock       int
	SKU         *string
	Status      ProductStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Order struct {
	ID            int64
	UserID        int64
	OrderDate     time.Time
	Status        OrderStatus
	Total         decimal.Decimal
	PaymentMethod *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type OrderLine struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Quantity  int
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}

// OrderEvent is published to the broker when an order is created or its
// status changes.
type OrderEvent struct {
	OrderID int64       `json:"order_id"`
	UserID  int64       `json:"user_id"`
	Status  OrderStatus `json:"status"`
	Kind    string      `json:"kind"`
}
