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

var (
	ErrItemNameRequired = errors.New("item name is required")
	ErrNegativePrice    = errors.New("price cannot be negative")
)

// ItemService handles menu item management.
type ItemService struct {
	cafes      repository.CafeRepository
	categories repository.CategoryRepository
	items      repository.ItemRepository
}

func NewItemService(
	cafes repository.CafeRepository,
	categories repository.CategoryRepository,
	items repository.ItemRepository,
) *ItemService {
	return &ItemService{cafes: cafes, categories: categories, items: items}
}

type ItemInput struct {
	Name        string
	Description string

	Price         *float64
	OriginalPrice *float64
	ImageURL      string
	Calories      *int

	IsVegan      *bool
	IsVegetarian *bool
	IsGlutenFree *bool
	IsSpicy      *bool
	IsBestseller *bool
	IsPopular    *bool
	IsNew        *bool

	IsAvailable *bool
	SortOrder   *int
}

// Create adds an item to a category of the caller's café. New items default
// to available.
func (s *ItemService) Create(ctx context.Context, ownerID, categoryID string, in ItemInput) (*models.MenuItem, error) {
	cat, err := s.ownedCategory(ctx, ownerID, categoryID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, ErrItemNameRequired
	}

	now := time.Now().UTC()
	item := &models.MenuItem{
		ID:          uuid.New().String(),
		CategoryID:  cat.ID,
		CafeID:      cat.CafeID,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		ImageURL:    in.ImageURL,
		IsAvailable: true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := applyItemInput(item, in); err != nil {
		return nil, err
	}

	if err := s.items.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// List returns every item of a category, including unavailable ones.
func (s *ItemService) List(ctx context.Context, ownerID, categoryID string) ([]models.MenuItem, error) {
	if _, err := s.ownedCategory(ctx, ownerID, categoryID); err != nil {
		return nil, err
	}
	return s.items.ListByCategory(ctx, categoryID)
}

// Update applies item changes after an ownership check.
func (s *ItemService) Update(ctx context.Context, ownerID, itemID string, in ItemInput) (*models.MenuItem, error) {
	item, err := s.ownedItem(ctx, ownerID, itemID)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(in.Name); name != "" {
		item.Name = name
	}
	if in.Description != "" {
		item.Description = in.Description
	}
	if in.ImageURL != "" {
		item.ImageURL = in.ImageURL
	}
	if err := applyItemInput(item, in); err != nil {
		return nil, err
	}
	item.UpdatedAt = time.Now().UTC()

	if err := s.items.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Delete removes an item.
func (s *ItemService) Delete(ctx context.Context, ownerID, itemID string) error {
	if _, err := s.ownedItem(ctx, ownerID, itemID); err != nil {
		return err
	}
	return s.items.Delete(ctx, itemID)
}

func applyItemInput(item *models.MenuItem, in ItemInput) error {
	if in.Price != nil {
		if *in.Price < 0 {
			return ErrNegativePrice
		}
		item.Price = *in.Price
	}
	if in.OriginalPrice != nil {
		if *in.OriginalPrice < 0 {
			return ErrNegativePrice
		}
		item.OriginalPrice = *in.OriginalPrice
	}
	if in.Calories != nil {
		item.Calories = *in.Calories
	}
	setBool(&item.IsVegan, in.IsVegan)
	setBool(&item.IsVegetarian, in.IsVegetarian)
	setBool(&item.IsGlutenFree, in.IsGlutenFree)
	setBool(&item.IsSpicy, in.IsSpicy)
	setBool(&item.IsBestseller, in.IsBestseller)
	setBool(&item.IsPopular, in.IsPopular)
	setBool(&item.IsNew, in.IsNew)
	setBool(&item.IsAvailable, in.IsAvailable)
	if in.SortOrder != nil {
		item.SortOrder = *in.SortOrder
	}
	return nil
}

func (s *ItemService) ownedCategory(ctx context.Context, ownerID, categoryID string) (*models.Category, error) {
	cat, err := s.categories.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	cafe, err := s.cafes.GetByID(ctx, cat.CafeID)
	if err != nil {
		return nil, err
	}
	if cafe.OwnerID != ownerID {
		return nil, ErrNotOwner
	}
	return cat, nil
}

func (s *ItemService) ownedItem(ctx context.Context, ownerID, itemID string) (*models.MenuItem, error) {
	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	cafe, err := s.cafes.GetByID(ctx, item.CafeID)
	if err != nil {
		return nil, err
	}
	if cafe.OwnerID != ownerID {
		return nil, ErrNotOwner
	}
	return item, nil
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}
