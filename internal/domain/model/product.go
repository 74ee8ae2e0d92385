package model

import (
	"github.com/shopspring/decimal"
)

type Product struct {
	ProductID   uint            `gorm:"primaryKey" json:"product_id"`
	Name        string          `gorm:"not null;type:varchar(255)" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"price"`
	Category    string          `gorm:"type:varchar(100)" json:"category"`
	Stock       uint            `gorm:"not null;default:0" json:"stock"`
	ImageURL    string          `gorm:"type:varchar(500)" json:"image"`
	IsActive    bool            `gorm:"not null;default:true" json:"is_active"`
	CreatedByID *uint           `gorm:"null" json:"created_by,omitempty"`
	BaseModel

	// 訂單項目保護商品不被刪除
	OrderItems []OrderItem `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT" json:"-"`
}
