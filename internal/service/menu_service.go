package service

import (
	"context"

	"github.com/Tanishagodhaa/qr-cafe-menu/internal/models"
	"github.com/Tanishagodhaa/qr-cafe-menu/internal/render"
	"github.com/Tanishagodhaa/qr-cafe-menu/internal/repository"
)

// MenuService assembles the read-only views the page renderer consumes and
// enforces the public visibility rules. The renderer itself stays pure; all
// storage access happens here.
type MenuService struct {
	cafes      repository.CafeRepository
	categories repository.CategoryRepository
	items      repository.ItemRepository
}

func NewMenuService(
	cafes repository.CafeRepository,
	categories repository.CategoryRepository,
	items repository.ItemRepository,
) *MenuService {
	return &MenuService{cafes: cafes, categories: categories, items: items}
}

// PublicPage renders the menu page for a slug. Unpublished cafés answer
// not-found to everyone except their owner with the preview flag set, so
// draft content never leaks.
func (s *MenuService) PublicPage(ctx context.Context, slug string, preview bool, viewerID string) (string, error) {
	cafe, err := s.cafes.GetBySlug(ctx, slug)
	if err != nil {
		return "", err
	}

	if !cafe.IsPublished {
		if !preview || viewerID == "" || viewerID != cafe.OwnerID {
			return "", repository.ErrCafeNotFound
		}
	}

	return s.RenderFor(ctx, cafe)
}

// RenderFor fetches the café's active categories and available items and
// hands them to the renderer.
func (s *MenuService) RenderFor(ctx context.Context, cafe *models.Cafe) (string, error) {
	categories, err := s.categories.ListActiveByCafe(ctx, cafe.ID)
	if err != nil {
		return "", err
	}
	items, err := s.items.ListAvailableByCafe(ctx, cafe.ID)
	if err != nil {
		return "", err
	}

	return render.Render(CafeView(cafe), CategoryViews(categories, items))
}

// CafeView projects a café record onto the renderer's input type.
func CafeView(cafe *models.Cafe) render.CafeView {
	return render.CafeView{
		Name:          cafe.Name,
		Slug:          cafe.Slug,
		Tagline:       cafe.Tagline,
		Description:   cafe.Description,
		LogoURL:       cafe.LogoURL,
		CoverImageURL: cafe.CoverImageURL,
		Phone:         cafe.Phone,
		Email:         cafe.Email,
		Address:       cafe.Address,
		Website:       cafe.Website,
		Instagram:     cafe.Instagram,
		Facebook:      cafe.Facebook,
		Currency:      cafe.CurrencySymbol,
		Theme: render.Theme{
			Primary:    cafe.PrimaryColor,
			Secondary:  cafe.SecondaryColor,
			Accent:     cafe.AccentColor,
			Background: cafe.BackgroundColor,
			Text:       cafe.TextColor,
		},
	}
}

// CategoryViews groups pre-ordered items under their pre-ordered categories.
// Items whose category is missing from the list (inactive, or deleted out
// from under them) are dropped.
func CategoryViews(categories []models.Category, items []models.MenuItem) []render.CategoryView {
	grouped := make(map[string][]render.ItemView, len(categories))
	for _, item := range items {
		grouped[item.CategoryID] = append(grouped[item.CategoryID], render.ItemView{
			Name:          item.Name,
			Description:   item.Description,
			Price:         item.Price,
			OriginalPrice: item.OriginalPrice,
			ImageURL:      item.ImageURL,
			Calories:      item.Calories,
			IsVegan:       item.IsVegan,
			IsVegetarian:  item.IsVegetarian,
			IsGlutenFree:  item.IsGlutenFree,
			IsSpicy:       item.IsSpicy,
			IsBestseller:  item.IsBestseller,
			IsNew:         item.IsNew,
		})
	}

	views := make([]render.CategoryView, 0, len(categories))
	for _, cat := range categories {
		views = append(views, render.CategoryView{
			ID:          cat.ID,
			Name:        cat.Name,
			Icon:        cat.Icon,
			Description: cat.Description,
			Items:       grouped[cat.ID],
		})
	}
	return views
}
