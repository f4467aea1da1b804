package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/Tanishagodhaa/qr-cafe-menu/internal/models"
)

// ItemRepository defines the interface for menu item data access
type ItemRepository interface {
	Create(ctx context.Context, item *models.MenuItem) error
	GetByID(ctx context.Context, id string) (*models.MenuItem, error)
	ListByCategory(ctx context.Context, categoryID string) ([]models.MenuItem, error)
	// ListAvailableByCafe returns every available item of a café ordered by
	// sort_order, groupable by category id. This is the set the public page
	// renders.
	ListAvailableByCafe(ctx context.Context, cafeID string) ([]models.MenuItem, error)
	Update(ctx context.Context, item *models.MenuItem) error
	Delete(ctx context.Context, id string) error
	DeleteByCategory(ctx context.Context, categoryID string) error
}

// InMemoryItemRepository implements ItemRepository with in-memory storage
type InMemoryItemRepository struct {
	mu    sync.RWMutex
	items map[string]models.MenuItem
}

func NewInMemoryItemRepository() *InMemoryItemRepository {
	return &InMemoryItemRepository{
		items: make(map[string]models.MenuItem),
	}
}

func (r *InMemoryItemRepository) Create(ctx context.Context, item *models.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[item.ID] = *item
	return nil
}

func (r *InMemoryItemRepository) GetByID(ctx context.Context, id string) (*models.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, exists := r.items[id]
	if !exists {
		return nil, ErrItemNotFound
	}
	return &item, nil
}

func (r *InMemoryItemRepository) ListByCategory(ctx context.Context, categoryID string) ([]models.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.MenuItem
	for _, item := range r.items {
		if item.CategoryID == categoryID {
			out = append(out, item)
		}
	}
	sortItems(out)
	return out, nil
}

func (r *InMemoryItemRepository) ListAvailableByCafe(ctx context.Context, cafeID string) ([]models.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.MenuItem
	for _, item := range r.items {
		if item.CafeID == cafeID && item.IsAvailable {
			out = append(out, item)
		}
	}
	sortItems(out)
	return out, nil
}

func (r *InMemoryItemRepository) Update(ctx context.Context, item *models.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.items[item.ID]; !exists {
		return ErrItemNotFound
	}
	r.items[item.ID] = *item
	return nil
}

func (r *InMemoryItemRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.items[id]; !exists {
		return ErrItemNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *InMemoryItemRepository) DeleteByCategory(ctx context.Context, categoryID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, item := range r.items {
		if item.CategoryID == categoryID {
			delete(r.items, id)
		}
	}
	return nil
}

func sortItems(items []models.MenuItem) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].SortOrder != items[j].SortOrder {
			return items[i].SortOrder < items[j].SortOrder
		}
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
}
