package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/esit/ecommerce-api/internal/model"
)

// --- Auth ---

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// --- User ---

type CreateUserRequest struct {
	Name     string  `json:"name" binding:"required"`
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=8"`
	Address  string  `json:"address" binding:"required"`
	Phone    *string `json:"phone"`
}

// UserPatch carries only the fields to change; nil fields are left untouched.
type UserPatch struct {
	Name     *string           `json:"name"`
	Email    *string           `json:"email" binding:"omitempty,email"`
	Password *string           `json:"password" binding:"omitempty,min=8"`
	Address  *string           `json:"address"`
	Phone    *string           `json:"phone"`
	Status   *model.UserStatus `json:"status" binding:"omitempty,oneof=active inactive"`
}

type UserResponse struct {
	ID        int64            `json:"id"`
	Name      string           `json:"name"`
	Email     string           `json:"email"`
	Address   string           `json:"address"`
	Phone     *string          `json:"phone,omitempty"`
	Status    model.UserStatus `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// --- Category ---

type CreateCategoryRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

type CategoryPatch struct {
	Name        *string               `json:"name"`
	Description *string               `json:"description"`
	Status      *model.CategoryStatus `json:"status" binding:"omitempty,oneof=active inactive"`
}

type CategoryResponse struct {
	ID          int64                `json:"id"`
	Name        string               `json:"name"`
	Description *string              `json:"description,omitempty"`
	Status      model.CategoryStatus `json:"status"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// --- Product ---

type CreateProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	CategoryID  int64           `json:"category_id" binding:"required"`
	Stock       *int            `json:"stock" binding:"omitempty,min=0"`
	SKU         *string         `json:"sku"`
}

type ProductPatch struct {
	Name        *string              `json:"name"`
	Description *string              `json:"description"`
	Price       *decimal.Decimal     `json:"price"`
	CategoryID  *int64               `json:"category_id"`
	Stock       *int                 `json:"stock" binding:"omitempty,min=0"`
	SKU         *string              `json:"sku"`
	Status      *model.ProductStatus `json:"status" binding:"omitempty,oneof=active inactive out_of_stock"`
}

type ProductResponse struct {
	ID          int64               `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Price       decimal.Decimal     `json:"price"`
	CategoryID  int64               `json:"category_id"`
	Stock       int                 `json:"stock"`
	SKU         *string             `json:"sku,omitempty"`
	Status      model.ProductStatus `json:"status"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// --- Order ---

type CreateOrderRequest struct {
	UserID        int64           `json:"user_id" binding:"required"`
	Total         decimal.Decimal `json:"total" binding:"required"`
	PaymentMethod *string         `json:"payment_method"`
}

type OrderPatch struct {
	Status        *model.OrderStatus `json:"status" binding:"omitempty,oneof=pending processing shipped delivered cancelled"`
	Total         *decimal.Decimal   `json:"total"`
	PaymentMethod *string            `json:"payment_method"`
}

type OrderResponse struct {
	ID            int64             `json:"id"`
	UserID        int64             `json:"user_id"`
	OrderDate     time.Time         `json:"order_date"`
	Status        model.OrderStatus `json:"status"`
	Total         decimal.Decimal   `json:"total"`
	PaymentMethod *string           `json:"payment_method,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// --- OrderLine ---

type CreateOrderLineRequest struct {
	OrderID   int64           `json:"order_id" binding:"required"`
	ProductID int64           `json:"product_id" binding:"required"`
	Quantity  int             `json:"quantity" binding:"required,min=1"`
	UnitPrice decimal.Decimal `json:"unit_price" binding:"required"`
	Subtotal  decimal.Decimal `json:"subtotal" binding:"required"`
}

type OrderLinePatch struct {
	Quantity  *int             `json:"quantity" binding:"omitempty,min=1"`
	UnitPrice *decimal.Decimal `json:"unit_price"`
	Subtotal  *decimal.Decimal `json:"subtotal"`
}

type OrderLineResponse struct {
	ID        int64           `json:"id"`
	OrderID   int64           `json:"order_id"`
	ProductID int64           `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}
