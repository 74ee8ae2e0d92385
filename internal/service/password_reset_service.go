package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"net/mail"
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/domain/model"
	infra_mail "github.com/RoyceAzure/lab/shopcenter/internal/infra/mail"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/redisrepo"
	"github.com/RoyceAzure/lab/shopcenter/internal/pkg/apperr"
	"gorm.io/gorm"
)

// OTPStore 用戶OTP儲存, redis實作
type OTPStore interface {
	Upsert(ctx context.Context, otp *model.PasswordResetOTP) error
	Get(ctx context.Context, userID uint) (*model.PasswordResetOTP, error)
	Delete(ctx context.Context, userID uint) error
}

type IPasswordResetService interface {
	IssueOTP(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, email, code string) error
	ValidateReset(ctx context.Context, email, newPassword, newPassword2 string) error
}

type PasswordResetService struct {
	store    db.Store
	otpStore OTPStore
	sender   infra_mail.EmailSender
	now      func() time.Time
}

func NewPasswordResetService(store db.Store, otpStore OTPStore, sender infra_mail.EmailSender) *PasswordResetService {
	return &PasswordResetService{
		store:    store,
		otpStore: otpStore,
		sender:   sender,
		now:      time.Now,
	}
}

// IssueOTP 產生6碼OTP並覆蓋舊的, 同一用戶同時只有一份有效
func (p *PasswordResetService) IssueOTP(ctx context.Context, email string) error {
	if email == "" {
		return apperr.Validation("Email is required.")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return apperr.Validation("Invalid email address.")
	}

	user, err := p.store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Email not found.")
		}
		return err
	}

	code, err := generateOTPCode()
	if err != nil {
		return err
	}

	otp := &model.PasswordResetOTP{
		UserID:    user.UserID,
		Code:      code,
		CreatedAt: p.now(),
	}
	if err := p.otpStore.Upsert(ctx, otp); err != nil {
		return err
	}

	content := fmt.Sprintf("Your OTP for password reset is: %s. It is valid for 15 minutes.", code)
	if err := p.sender.SendEmail("Password Reset OTP", content, []string{email}, nil, nil, nil); err != nil {
		return fmt.Errorf("failed to send otp mail: %w", err)
	}
	return nil
}

// VerifyOTP 驗證通過不消耗OTP, 也不變更密碼
func (p *PasswordResetService) VerifyOTP(ctx context.Context, email, code string) error {
	if email == "" || code == "" {
		return apperr.Validation("Email and OTP are required.")
	}

	user, err := p.store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("User not found.")
		}
		return err
	}

	otp, err := p.otpStore.Get(ctx, user.UserID)
	if err != nil {
		if errors.Is(err, redisrepo.ErrOTPNotFound) {
			return apperr.NotFound("No OTP found for this user.")
		}
		return err
	}

	if otp.IsExpired(p.now()) {
		return apperr.InvalidState("OTP expired. Please request a new one.")
	}
	if otp.Code != code {
		return apperr.InvalidState("Invalid OTP.")
	}
	return nil
}

// ValidateReset 僅做重設前的檢核, 實際改密碼不在此流程範圍
func (p *PasswordResetService) ValidateReset(ctx context.Context, email, newPassword, newPassword2 string) error {
	if email == "" {
		return apperr.Validation("Email is required.")
	}

	if _, err := p.store.GetUserByEmail(ctx, email); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Email not found.")
		}
		return err
	}

	if newPassword != newPassword2 {
		return apperr.Validation("Passwords do not match.")
	}
	return nil
}

func generateOTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

var _ IPasswordResetService = (*PasswordResetService)(nil)
