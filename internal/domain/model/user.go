package model

type User struct {
	UserID       uint   `gorm:"primaryKey" json:"user_id"`
	Username     string `gorm:"unique;not null;type:varchar(150)" json:"username"`
	Email        string `gorm:"unique;not null;type:varchar(255)" json:"email"`
	PasswordHash string `gorm:"not null;type:varchar(255)" json:"-"`
	BaseModel

	CartItems     []CartItem     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Addresses     []Address      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Orders        []Order        `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Notifications []Notification `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
