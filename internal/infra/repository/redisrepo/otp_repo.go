package redisrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/domain/model"
	"github.com/redis/go-redis/v9"
)

// ErrOTPNotFound 該用戶沒有OTP
var ErrOTPNotFound = errors.New("otp not found")

// OTPRepo 每個用戶一把key, 重發即覆蓋, TTL對齊有效時間
type OTPRepo struct {
	client *redis.Client
}

func NewOTPRepo(client *redis.Client) *OTPRepo {
	return &OTPRepo{client: client}
}

func generateOTPKey(userID uint) string {
	return fmt.Sprintf("pwdotp:%d", userID)
}

// Upsert 覆蓋舊OTP並重設TTL, 以Lua保證原子性
func (r *OTPRepo) Upsert(ctx context.Context, otp *model.PasswordResetOTP) error {
	key := generateOTPKey(otp.UserID)

	luaScript := `
		redis.call('DEL', KEYS[1])
		redis.call('HSET', KEYS[1], 'code', ARGV[1], 'created_at', ARGV[2])
		redis.call('PEXPIRE', KEYS[1], ARGV[3])
		return 1
	`
	_, err := r.client.Eval(ctx, luaScript, []string{key},
		otp.Code,
		otp.CreatedAt.UTC().Format(time.RFC3339Nano),
		model.OTPValidity.Milliseconds(),
	).Result()
	if err != nil {
		return fmt.Errorf("failed to upsert otp: %w", err)
	}
	return nil
}

// Get 取出用戶當前OTP
func (r *OTPRepo) Get(ctx context.Context, userID uint) (*model.PasswordResetOTP, error) {
	key := generateOTPKey(userID)

	fields, err := r.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get otp: %w", err)
	}
	if len(fields) == 0 {
		return nil, ErrOTPNotFound
	}

	createdAt, err := time.Parse(time.RFC3339Nano, fields["created_at"])
	if err != nil {
		return nil, fmt.Errorf("invalid otp created_at: %w", err)
	}

	return &model.PasswordResetOTP{
		UserID:    userID,
		Code:      fields["code"],
		CreatedAt: createdAt,
	}, nil
}

// Delete 移除用戶OTP
func (r *OTPRepo) Delete(ctx context.Context, userID uint) error {
	return r.client.Del(ctx, generateOTPKey(userID)).Err()
}
