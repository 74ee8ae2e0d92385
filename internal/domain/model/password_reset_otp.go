package model

import (
	"time"
)

// OTPValidity OTP有效時間
const OTPValidity = 15 * time.Minute

// PasswordResetOTP 每個用戶同時只有一份, 存於redis
type PasswordResetOTP struct {
	UserID    uint      `json:"user_id"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"created_at"`
}

func (o *PasswordResetOTP) IsExpired(now time.Time) bool {
	return now.After(o.CreatedAt.Add(OTPValidity))
}
