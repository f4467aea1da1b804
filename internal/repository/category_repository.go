package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/Tanishagodhaa/qr-cafe-menu/internal/models"
)

// CategoryRepository defines the interface for category data access
type CategoryRepository interface {
	Create(ctx context.Context, cat *models.Category) error
	GetByID(ctx context.Context, id string) (*models.Category, error)
	// ListByCafe returns every category of a café ordered by sort_order,
	// ties broken by creation order.
	ListByCafe(ctx context.Context, cafeID string) ([]models.Category, error)
	// ListActiveByCafe is ListByCafe restricted to active categories; this
	// is the ordering the public page renders.
	ListActiveByCafe(ctx context.Context, cafeID string) ([]models.Category, error)
	Update(ctx context.Context, cat *models.Category) error
	Delete(ctx context.Context, id string) error
}

// InMemoryCategoryRepository implements CategoryRepository with in-memory storage
type InMemoryCategoryRepository struct {
	mu         sync.RWMutex
	categories map[string]models.Category
}

func NewInMemoryCategoryRepository() *InMemoryCategoryRepository {
	return &InMemoryCategoryRepository{
		categories: make(map[string]models.Category),
	}
}

func (r *InMemoryCategoryRepository) Create(ctx context.Context, cat *models.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.categories[cat.ID] = *cat
	return nil
}

func (r *InMemoryCategoryRepository) GetByID(ctx context.Context, id string) (*models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cat, exists := r.categories[id]
	if !exists {
		return nil, ErrCategoryNotFound
	}
	return &cat, nil
}

func (r *InMemoryCategoryRepository) ListByCafe(ctx context.Context, cafeID string) ([]models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.list(cafeID, false), nil
}

func (r *InMemoryCategoryRepository) ListActiveByCafe(ctx context.Context, cafeID string) ([]models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.list(cafeID, true), nil
}

func (r *InMemoryCategoryRepository) list(cafeID string, activeOnly bool) []models.Category {
	var out []models.Category
	for _, cat := range r.categories {
		if cat.CafeID != cafeID {
			continue
		}
		if activeOnly && !cat.IsActive {
			continue
		}
		out = append(out, cat)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

func (r *InMemoryCategoryRepository) Update(ctx context.Context, cat *models.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.categories[cat.ID]; !exists {
		return ErrCategoryNotFound
	}
	r.categories[cat.ID] = *cat
	return nil
}

func (r *InMemoryCategoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.categories[id]; !exists {
		return ErrCategoryNotFound
	}
	delete(r.categories, id)
	return nil
}
