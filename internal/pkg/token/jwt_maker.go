package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const minKeySize = 32

var ErrInvalidToken = errors.New("token is invalid")

// Maker 簽發與驗證access token
type Maker interface {
	CreateToken(userID uint, duration time.Duration) (string, error)
	VerifyToken(tokenString string) (uint, error)
}

type JWTMaker struct {
	secretKey []byte
}

func NewJWTMaker(secretKey string) (*JWTMaker, error) {
	if len(secretKey) < minKeySize {
		return nil, fmt.Errorf("invalid key size: must be at least %d characters", minKeySize)
	}
	return &JWTMaker{secretKey: []byte(secretKey)}, nil
}

type userClaims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

func (maker *JWTMaker) CreateToken(userID uint, duration time.Duration) (string, error) {
	claims := userClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(duration)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(maker.secretKey)
}

func (maker *JWTMaker) VerifyToken(tokenString string) (uint, error) {
	token, err := jwt.ParseWithClaims(tokenString, &userClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return maker.secretKey, nil
	})
	if err != nil {
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(*userClaims)
	if !ok || !token.Valid {
		return 0, ErrInvalidToken
	}
	return claims.UserID, nil
}

var _ Maker = (*JWTMaker)(nil)
