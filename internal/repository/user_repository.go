package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/Tanishagodhaa/qr-cafe-menu/internal/models"
	"github.com/Tanishagodhaa/qr-cafe-menu/internal/store"
)

// ErrEmailTaken is returned when registering with an email already in use.
var ErrEmailTaken = errors.New("email already registered")

// UserRepository defines the interface for owner account data access
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// InMemoryUserRepository implements UserRepository with in-memory storage
type InMemoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		users: make(map[string]models.User),
	}
}

func (r *InMemoryUserRepository) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, user.Email) {
			return ErrEmailTaken
		}
	}
	r.users[user.ID] = *user
	return nil
}

func (r *InMemoryUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, exists := r.users[id]
	if !exists {
		return nil, ErrUserNotFound
	}
	return &user, nil
}

func (r *InMemoryUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.users {
		if strings.EqualFold(user.Email, email) {
			u := user
			return &u, nil
		}
	}
	return nil, ErrUserNotFound
}

// PostgresUserRepository implements UserRepository over a store.Querier.
type PostgresUserRepository struct {
	db store.Querier
}

func NewPostgresUserRepository(db store.Querier) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) Create(ctx context.Context, user *models.User) error {
	taken, err := r.emailExists(ctx, user.Email)
	if err != nil {
		return err
	}
	if taken {
		return ErrEmailTaken
	}

	_, err = r.db.Run(ctx, `
		INSERT INTO users (id, name, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Name, user.Email, user.PasswordHash, user.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *PostgresUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	row, err := r.db.Get(ctx, `
		SELECT id, name, email, password_hash, created_at FROM users WHERE id = $1`, id)
	if errors.Is(err, store.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return rowToUser(row), nil
}

func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	row, err := r.db.Get(ctx, `
		SELECT id, name, email, password_hash, created_at FROM users
		WHERE lower(email) = lower($1)`, email)
	if errors.Is(err, store.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return rowToUser(row), nil
}

func (r *PostgresUserRepository) emailExists(ctx context.Context, email string) (bool, error) {
	_, err := r.db.Get(ctx, `SELECT 1 AS one FROM users WHERE lower(email) = lower($1)`, email)
	if errors.Is(err, store.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func rowToUser(row store.Row) *models.User {
	return &models.User{
		ID:           row.String("id"),
		Name:         row.String("name"),
		Email:        row.String("email"),
		PasswordHash: row.String("password_hash"),
		CreatedAt:    row.Time("created_at"),
	}
}
