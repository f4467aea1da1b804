package repository

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/Tanishagodhaa/qr-cafe-menu/internal/models"
)

var (
	ErrCafeNotFound     = errors.New("cafe not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrItemNotFound     = errors.New("menu item not found")
	ErrUserNotFound     = errors.New("user not found")
)

// CafeRepository defines the interface for café data access
type CafeRepository interface {
	Create(ctx context.Context, cafe *models.Cafe) error
	GetByID(ctx context.Context, id string) (*models.Cafe, error)
	GetBySlug(ctx context.Context, slug string) (*models.Cafe, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.Cafe, error)
	Update(ctx context.Context, cafe *models.Cafe) error
	SlugExists(ctx context.Context, slug string) (bool, error)
	Slugs(ctx context.Context) ([]string, error)
	SetDeployed(ctx context.Context, id, url string, at time.Time) error
}

// InMemoryCafeRepository implements CafeRepository with in-memory storage
type InMemoryCafeRepository struct {
	mu    sync.RWMutex
	cafes map[string]models.Cafe
}

// NewInMemoryCafeRepository creates an empty in-memory café repository
func NewInMemoryCafeRepository() *InMemoryCafeRepository {
	return &InMemoryCafeRepository{
		cafes: make(map[string]models.Cafe),
	}
}

func (r *InMemoryCafeRepository) Create(ctx context.Context, cafe *models.Cafe) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cafes[cafe.ID] = *cafe
	return nil
}

func (r *InMemoryCafeRepository) GetByID(ctx context.Context, id string) (*models.Cafe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cafe, exists := r.cafes[id]
	if !exists {
		return nil, ErrCafeNotFound
	}
	return &cafe, nil
}

func (r *InMemoryCafeRepository) GetBySlug(ctx context.Context, slug string) (*models.Cafe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, cafe := range r.cafes {
		if cafe.Slug == slug {
			c := cafe
			return &c, nil
		}
	}
	return nil, ErrCafeNotFound
}

func (r *InMemoryCafeRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.Cafe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Cafe
	for _, cafe := range r.cafes {
		if cafe.OwnerID == ownerID {
			out = append(out, cafe)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *InMemoryCafeRepository) Update(ctx context.Context, cafe *models.Cafe) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.cafes[cafe.ID]; !exists {
		return ErrCafeNotFound
	}
	r.cafes[cafe.ID] = *cafe
	return nil
}

func (r *InMemoryCafeRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, cafe := range r.cafes {
		if cafe.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (r *InMemoryCafeRepository) Slugs(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	slugs := make([]string, 0, len(r.cafes))
	for _, cafe := range r.cafes {
		slugs = append(slugs, cafe.Slug)
	}
	return slugs, nil
}

func (r *InMemoryCafeRepository) SetDeployed(ctx context.Context, id, url string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cafe, exists := r.cafes[id]
	if !exists {
		return ErrCafeNotFound
	}
	cafe.IsDeployed = true
	cafe.DeployedURL = url
	cafe.UpdatedAt = at
	r.cafes[id] = cafe
	return nil
}
