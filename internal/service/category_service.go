package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Tanishagodhaa/qr-cafe-menu/internal/models"
	"github.com/Tanishagodhaa/qr-cafe-menu/internal/repository"
)

var ErrCategoryNameRequired = errors.New("category name is required")

// CategoryService handles menu category management.
type CategoryService struct {
	cafes      repository.CafeRepository
	categories repository.CategoryRepository
	items      repository.ItemRepository
}

func NewCategoryService(
	cafes repository.CafeRepository,
	categories repository.CategoryRepository,
	items repository.ItemRepository,
) *CategoryService {
	return &CategoryService{cafes: cafes, categories: categories, items: items}
}

type CategoryInput struct {
	Name        string
	Icon        string
	Description string
	SortOrder   *int
	IsActive    *bool
}

// Create adds a category to the caller's café. New categories default to
// active and sort after existing ones.
func (s *CategoryService) Create(ctx context.Context, ownerID, cafeID string, in CategoryInput) (*models.Category, error) {
	if err := s.checkOwner(ctx, ownerID, cafeID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, ErrCategoryNameRequired
	}

	sortOrder := 0
	if in.SortOrder != nil {
		sortOrder = *in.SortOrder
	} else {
		existing, err := s.categories.ListByCafe(ctx, cafeID)
		if err != nil {
			return nil, err
		}
		if len(existing) > 0 {
			sortOrder = existing[len(existing)-1].SortOrder + 1
		}
	}

	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}

	now := time.Now().UTC()
	cat := &models.Category{
		ID:          uuid.New().String(),
		CafeID:      cafeID,
		Name:        strings.TrimSpace(in.Name),
		Icon:        in.Icon,
		Description: in.Description,
		SortOrder:   sortOrder,
		IsActive:    active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.categories.Create(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

// List returns every category of the caller's café, including inactive ones.
func (s *CategoryService) List(ctx context.Context, ownerID, cafeID string) ([]models.Category, error) {
	if err := s.checkOwner(ctx, ownerID, cafeID); err != nil {
		return nil, err
	}
	return s.categories.ListByCafe(ctx, cafeID)
}

// Update applies category changes after an ownership check.
func (s *CategoryService) Update(ctx context.Context, ownerID, categoryID string, in CategoryInput) (*models.Category, error) {
	cat, err := s.getOwned(ctx, ownerID, categoryID)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(in.Name); name != "" {
		cat.Name = name
	}
	if in.Icon != "" {
		cat.Icon = in.Icon
	}
	if in.Description != "" {
		cat.Description = in.Description
	}
	if in.SortOrder != nil {
		cat.SortOrder = *in.SortOrder
	}
	if in.IsActive != nil {
		cat.IsActive = *in.IsActive
	}
	cat.UpdatedAt = time.Now().UTC()

	if err := s.categories.Update(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

// Delete removes a category and its items.
func (s *CategoryService) Delete(ctx context.Context, ownerID, categoryID string) error {
	if _, err := s.getOwned(ctx, ownerID, categoryID); err != nil {
		return err
	}
	if err := s.items.DeleteByCategory(ctx, categoryID); err != nil {
		return err
	}
	return s.categories.Delete(ctx, categoryID)
}

// Reorder rewrites sort_order to match the given id sequence.
func (s *CategoryService) Reorder(ctx context.Context, ownerID, cafeID string, orderedIDs []string) error {
	if err := s.checkOwner(ctx, ownerID, cafeID); err != nil {
		return err
	}

	for pos, id := range orderedIDs {
		cat, err := s.categories.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if cat.CafeID != cafeID {
			return ErrNotOwner
		}
		cat.SortOrder = pos
		cat.UpdatedAt = time.Now().UTC()
		if err := s.categories.Update(ctx, cat); err != nil {
			return err
		}
	}
	return nil
}

func (s *CategoryService) checkOwner(ctx context.Context, ownerID, cafeID string) error {
	cafe, err := s.cafes.GetByID(ctx, cafeID)
	if err != nil {
		return err
	}
	if cafe.OwnerID != ownerID {
		return ErrNotOwner
	}
	return nil
}

func (s *CategoryService) getOwned(ctx context.Context, ownerID, categoryID string) (*models.Category, error) {
	cat, err := s.categories.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if err := s.checkOwner(ctx, ownerID, cat.CafeID); err != nil {
		return nil, err
	}
	return cat, nil
}
