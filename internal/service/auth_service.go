package service

import (
	"context"
	"errors"
	"net/mail"
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/domain/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/shopcenter/internal/pkg/apperr"
	"github.com/RoyceAzure/lab/shopcenter/internal/pkg/token"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AccessTokenDuration access token有效時間
const AccessTokenDuration = 24 * time.Hour

type IAuthService interface {
	Register(ctx context.Context, username, email, password, password2 string) (*model.User, error)
	Login(ctx context.Context, username, password string) (*model.User, string, error)
	GetProfile(ctx context.Context, userID uint) (*model.User, error)
	DeleteUser(ctx context.Context, userID uint) error
}

type AuthService struct {
	store      db.Store
	tokenMaker token.Maker
}

func NewAuthService(store db.Store, tokenMaker token.Maker) *AuthService {
	return &AuthService{store: store, tokenMaker: tokenMaker}
}

func (a *AuthService) Register(ctx context.Context, username, email, password, password2 string) (*model.User, error) {
	if username == "" || email == "" || password == "" || password2 == "" {
		return nil, apperr.Validation("All fields are required.")
	}
	if password != password2 {
		return nil, apperr.Validation("Passwords do not match.")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, apperr.Validation("Invalid email address.")
	}

	if _, err := a.store.GetUserByUsername(ctx, username); err == nil {
		return nil, apperr.Validation("Username already taken.")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if _, err := a.store.GetUserByEmail(ctx, email); err == nil {
		return nil, apperr.Validation("Email already registered.")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}
	return a.store.CreateUser(ctx, user)
}

func (a *AuthService) Login(ctx context.Context, username, password string) (*model.User, string, error) {
	if username == "" || password == "" {
		return nil, "", apperr.Validation("Username and password are required.")
	}

	user, err := a.store.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", apperr.Unauthorized("Invalid username or password.")
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", apperr.Unauthorized("Invalid username or password.")
	}

	accessToken, err := a.tokenMaker.CreateToken(user.UserID, AccessTokenDuration)
	if err != nil {
		return nil, "", err
	}
	return user, accessToken, nil
}

func (a *AuthService) GetProfile(ctx context.Context, userID uint) (*model.User, error) {
	user, err := a.store.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("User not found.")
		}
		return nil, err
	}
	return user, nil
}

func (a *AuthService) DeleteUser(ctx context.Context, userID uint) error {
	if _, err := a.store.GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("User not found.")
		}
		return err
	}
	return a.store.DeleteUser(ctx, userID)
}

var _ IAuthService = (*AuthService)(nil)
