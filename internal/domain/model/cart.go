package model

import (
	"time"
)

// CartItem 一個 (user, product) 一列, 結帳或刪除時移除
type CartItem struct {
	CartItemID uint      `gorm:"primaryKey" json:"cart_item_id"`
	UserID     uint      `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"user_id"`
	ProductID  uint      `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"product_id"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	AddedAt    time.Time `gorm:"not null;default:now()" json:"added_at"`

	Product Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`
}

// DisplayName 顯示名稱從商品即時取得, 不落地第二份
func (c *CartItem) DisplayName() string {
	return c.Product.Name
}
