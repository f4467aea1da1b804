package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Tanishagodhaa/qr-cafe-menu/internal/auth"
	"github.com/Tanishagodhaa/qr-cafe-menu/internal/config"
	"github.com/Tanishagodhaa/qr-cafe-menu/internal/models"
	"github.com/Tanishagodhaa/qr-cafe-menu/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// AuthService handles owner registration and login.
type AuthService struct {
	users repository.UserRepository
	cfg   config.AuthConfig
}

func NewAuthService(users repository.UserRepository, cfg config.AuthConfig) *AuthService {
	return &AuthService{users: users, cfg: cfg}
}

// Register creates an owner account and returns it with a fresh token pair.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*models.User, *models.TokenPair, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(name),
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, nil, err
	}

	pair, err := auth.IssuePair(s.cfg, user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// Login verifies credentials and returns a fresh token pair.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, *models.TokenPair, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		// Same error for unknown email and bad password.
		return nil, nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	pair, err := auth.IssuePair(s.cfg, user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// Refresh exchanges a valid refresh token for a new token pair.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	claims, err := auth.Verify(s.cfg, refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, auth.ErrInvalidToken
	}

	return auth.IssuePair(s.cfg, user)
}
