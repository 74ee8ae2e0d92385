package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateProductDTO struct {
	Name        string           `json:"name"`
	Price       *decimal.Decimal `json:"price"`
	Description string           `json:"description"`
	Category    string           `json:"category"`
	Stock       int              `json:"stock"`
	Image       string           `json:"image"`
}

// PatchProductDTO 欄位缺省代表不變, 指標語意對應payload有無
type PatchProductDTO struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Category    *string          `json:"category"`
	Image       *string          `json:"image"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock"`
}

type ProductDTO struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Stock       uint            `json:"stock"`
	Image       string          `json:"image"`
}

// AddToCartDTO quantity缺省時視為1
type AddToCartDTO struct {
	Email     string `json:"email"`
	ProductID uint   `json:"product_id"`
	Quantity  *int   `json:"quantity"`
}

type EditCartDTO struct {
	Email     string `json:"email"`
	ProductID uint   `json:"product_id"`
	Quantity  *int   `json:"quantity"`
}

type DeleteCartDTO struct {
	Email     string `json:"email"`
	ProductID uint   `json:"product_id"`
}

type PlaceOrderDTO struct {
	Email     string `json:"email"`
	AddressID *uint  `json:"address_id"`
}

type OrderSummaryDTO struct {
	OrderID     uint            `json:"order_id"`
	User        string          `json:"user"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
}

type OrderItemDTO struct {
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

type OrderAddressDTO struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
}

type OrderDetailDTO struct {
	OrderID         uint             `json:"order_id"`
	User            string           `json:"user"`
	TotalAmount     decimal.Decimal  `json:"total_amount"`
	Status          string           `json:"status"`
	CreatedAt       time.Time        `json:"created_at"`
	ShippingAddress *OrderAddressDTO `json:"shipping_address"`
	Items           []OrderItemDTO   `json:"items"`
}

type PaymentDTO struct {
	OrderID uint `json:"order_id"`
}

type ConfirmPaymentDTO struct {
	OrderID       uint   `json:"order_id"`
	PaymentStatus string `json:"payment_status"`
}

type CreateAddressDTO struct {
	UserID  uint   `json:"user_id"`
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
}

type PatchAddressDTO struct {
	AddressID uint    `json:"address_id"`
	Street    *string `json:"street"`
	City      *string `json:"city"`
	State     *string `json:"state"`
	ZipCode   *string `json:"zip_code"`
}

type DeleteAddressDTO struct {
	AddressID uint `json:"address_id"`
}

type ApplyCouponDTO struct {
	ProductID  uint   `json:"product_id"`
	CouponCode string `json:"coupon_code"`
}

type RemoveCouponDTO struct {
	ProductID uint `json:"product_id"`
}
