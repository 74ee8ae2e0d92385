package model

import (
	"time"
)

type Notification struct {
	NotificationID uint      `gorm:"primaryKey" json:"notification_id"`
	UserID         uint      `gorm:"not null;index" json:"user_id"`
	Message        string    `gorm:"not null;type:text" json:"message"`
	IsRead         bool      `gorm:"not null;default:false" json:"is_read"`
	CreatedAt      time.Time `gorm:"not null;default:now()" json:"created_at"`
}
