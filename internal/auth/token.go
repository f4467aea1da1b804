// Package auth issues and verifies the bearer tokens used by the admin API.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Tanishagodhaa/qr-cafe-menu/internal/config"
	"github.com/Tanishagodhaa/qr-cafe-menu/internal/models"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Claims carried by both access and refresh tokens.
type Claims struct {
	UserID string `json:"uid"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// IssuePair signs an access/refresh token pair for a user.
func IssuePair(cfg config.AuthConfig, user *models.User) (*models.TokenPair, error) {
	access, err := sign(cfg, user, time.Duration(cfg.AccessTokenTTL)*time.Minute)
	if err != nil {
		return nil, err
	}
	refresh, err := sign(cfg, user, time.Duration(cfg.RefreshTokenTTL)*time.Minute)
	if err != nil {
		return nil, err
	}
	return &models.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func sign(cfg config.AuthConfig, user *models.User, ttl time.Duration) (string, error) {
	claims := &Claims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses a signed token and returns its claims.
func Verify(cfg config.AuthConfig, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || claims.UserID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
