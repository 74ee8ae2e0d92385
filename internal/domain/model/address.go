package model

import (
	"time"
)

type Address struct {
	AddressID uint      `gorm:"primaryKey" json:"address_id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Street    string    `gorm:"not null;type:varchar(255)" json:"street"`
	City      string    `gorm:"not null;type:varchar(120)" json:"city"`
	State     string    `gorm:"not null;type:varchar(120)" json:"state"`
	ZipCode   string    `gorm:"not null;type:varchar(20)" json:"zip_code"`
	IsDefault bool      `gorm:"not null;default:false" json:"is_default"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
}
