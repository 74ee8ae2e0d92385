package service

import (
	"context"
	"testing"

	"github.com/RoyceAzure/lab/shopcenter/internal/pkg/apperr"
	"github.com/RoyceAzure/lab/shopcenter/internal/pkg/token"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) (*AuthService, *memStore) {
	t.Helper()
	store := newMemStore()
	maker, err := token.NewJWTMaker("0123456789abcdef0123456789abcdef")
	require.NoError(t, err)
	return NewAuthService(store, maker), store
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService(t)

	user, err := svc.Register(ctx, "royce", "royce@example.com", "secret123", "secret123")
	require.NoError(t, err)
	require.NotZero(t, user.UserID)
	require.NotEqual(t, "secret123", user.PasswordHash)

	loggedIn, accessToken, err := svc.Login(ctx, "royce", "secret123")
	require.NoError(t, err)
	require.Equal(t, user.UserID, loggedIn.UserID)
	require.NotEmpty(t, accessToken)
}

func TestRegisterValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService(t)

	tests := []struct {
		name     string
		username string
		email    string
		password string
		confirm  string
		wantMsg  string
	}{
		{"missing fields", "", "a@b.com", "x", "x", "All fields are required."},
		{"password mismatch", "royce", "a@b.com", "x", "y", "Passwords do not match."},
		{"bad email", "royce", "not-an-email", "x", "x", "Invalid email address."},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tc.username, tc.email, tc.password, tc.confirm)
			require.Error(t, err)
			require.Equal(t, tc.wantMsg, apperr.MessageOf(err))
			require.Equal(t, 400, apperr.StatusOf(err))
		})
	}
}

func TestRegisterDuplicates(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService(t)

	_, err := svc.Register(ctx, "royce", "royce@example.com", "secret123", "secret123")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "royce", "other@example.com", "secret123", "secret123")
	require.Error(t, err)
	require.Equal(t, "Username already taken.", apperr.MessageOf(err))

	_, err = svc.Register(ctx, "other", "royce@example.com", "secret123", "secret123")
	require.Error(t, err)
	require.Equal(t, "Email already registered.", apperr.MessageOf(err))
}

func TestLoginFailures(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService(t)

	_, err := svc.Register(ctx, "royce", "royce@example.com", "secret123", "secret123")
	require.NoError(t, err)

	// 帳號不存在與密碼錯誤回同一個訊息, 不洩漏哪個錯
	_, _, err = svc.Login(ctx, "ghost", "secret123")
	require.Error(t, err)
	require.Equal(t, "Invalid username or password.", apperr.MessageOf(err))
	require.Equal(t, 401, apperr.StatusOf(err))

	_, _, err = svc.Login(ctx, "royce", "wrong")
	require.Error(t, err)
	require.Equal(t, "Invalid username or password.", apperr.MessageOf(err))
	require.Equal(t, 401, apperr.StatusOf(err))
}

func TestGetProfileAndDelete(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService(t)

	user, err := svc.Register(ctx, "royce", "royce@example.com", "secret123", "secret123")
	require.NoError(t, err)

	profile, err := svc.GetProfile(ctx, user.UserID)
	require.NoError(t, err)
	require.Equal(t, "royce", profile.Username)

	require.NoError(t, svc.DeleteUser(ctx, user.UserID))

	_, err = svc.GetProfile(ctx, user.UserID)
	require.Error(t, err)
	require.Equal(t, "User not found.", apperr.MessageOf(err))
	require.Equal(t, 404, apperr.StatusOf(err))

	err = svc.DeleteUser(ctx, user.UserID)
	require.Error(t, err)
	require.Equal(t, 404, apperr.StatusOf(err))
}
