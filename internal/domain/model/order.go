package model

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	OrderStatusPending   = "Pending"
	OrderStatusPaid      = "Paid"
	OrderStatusShipped   = "Shipped"
	OrderStatusDelivered = "Delivered"
	OrderStatusCancelled = "Cancelled"
)

type Order struct {
	OrderID     uint            `gorm:"primaryKey" json:"order_id"`
	UserID      uint            `gorm:"not null;index" json:"user_id"`
	TotalAmount decimal.Decimal `gorm:"not null;type:decimal(12,2)" json:"total_amount"`
	Status      string          `gorm:"not null;type:varchar(20);default:'Pending'" json:"status"`
	// 地址刪除時設NULL, 不級聯
	ShippingAddressID *uint `gorm:"null" json:"shipping_address_id,omitempty"`
	BaseModel

	Items           []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	ShippingAddress *Address    `gorm:"foreignKey:ShippingAddressID;constraint:OnDelete:SET NULL" json:"-"`
	User            User        `gorm:"foreignKey:UserID" json:"-"`
}

type OrderItem struct {
	OrderItemID uint `gorm:"primaryKey" json:"order_item_id"`
	OrderID     uint `gorm:"not null;index" json:"order_id"`
	ProductID   uint `gorm:"not null" json:"product_id"`
	Quantity    int  `gorm:"not null" json:"quantity"`
	// 結帳當下快照, 不再隨商品價格變動
	PriceAtPurchase decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"price_at_purchase"`
	Subtotal        decimal.Decimal `gorm:"not null;type:decimal(10,2);default:0" json:"subtotal"`

	Product Product `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT" json:"-"`
}

func (i *OrderItem) LineTotal() decimal.Decimal {
	return i.PriceAtPurchase.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// BeforeSave 每次寫入都重算subtotal, 與快照價保持一致
func (i *OrderItem) BeforeSave(tx *gorm.DB) error {
	i.Subtotal = i.LineTotal()
	return nil
}
