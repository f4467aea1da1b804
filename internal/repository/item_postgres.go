package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Tanishagodhaa/qr-cafe-menu/internal/models"
	"github.com/Tanishagodhaa/qr-cafe-menu/internal/store"
)

const itemColumns = `id, category_id, cafe_id, name, description,
	price, original_price, image_url, calories,
	is_vegan, is_vegetarian, is_gluten_free, is_spicy,
	is_bestseller, is_popular, is_new,
	is_available, sort_order, created_at, updated_at`

// PostgresItemRepository implements ItemRepository over a store.Querier.
type PostgresItemRepository struct {
	db store.Querier
}

func NewPostgresItemRepository(db store.Querier) *PostgresItemRepository {
	return &PostgresItemRepository{db: db}
}

func (r *PostgresItemRepository) Create(ctx context.Context, item *models.MenuItem) error {
	_, err := r.db.Run(ctx, `
		INSERT INTO menu_items (`+itemColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`,
		item.ID, item.CategoryID, item.CafeID, item.Name, item.Description,
		item.Price, item.OriginalPrice, item.ImageURL, item.Calories,
		item.IsVegan, item.IsVegetarian, item.IsGlutenFree, item.IsSpicy,
		item.IsBestseller, item.IsPopular, item.IsNew,
		item.IsAvailable, item.SortOrder, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert menu item: %w", err)
	}
	return nil
}

func (r *PostgresItemRepository) GetByID(ctx context.Context, id string) (*models.MenuItem, error) {
	row, err := r.db.Get(ctx, `SELECT `+itemColumns+` FROM menu_items WHERE id = $1`, id)
	if errors.Is(err, store.ErrNoRows) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return rowToItem(row), nil
}

func (r *PostgresItemRepository) ListByCategory(ctx context.Context, categoryID string) ([]models.MenuItem, error) {
	rows, err := r.db.All(ctx, `
		SELECT `+itemColumns+` FROM menu_items
		WHERE category_id = $1
		ORDER BY sort_order, created_at`, categoryID)
	if err != nil {
		return nil, err
	}
	return rowsToItems(rows), nil
}

func (r *PostgresItemRepository) ListAvailableByCafe(ctx context.Context, cafeID string) ([]models.MenuItem, error) {
	rows, err := r.db.All(ctx, `
		SELECT `+itemColumns+` FROM menu_items
		WHERE cafe_id = $1 AND is_available
		ORDER BY sort_order, created_at`, cafeID)
	if err != nil {
		return nil, err
	}
	return rowsToItems(rows), nil
}

func (r *PostgresItemRepository) Update(ctx context.Context, item *models.MenuItem) error {
	n, err := r.db.Run(ctx, `
		UPDATE menu_items SET
			name = $2, description = $3, price = $4, original_price = $5,
			image_url = $6, calories = $7,
			is_vegan = $8, is_vegetarian = $9, is_gluten_free = $10, is_spicy = $11,
			is_bestseller = $12, is_popular = $13, is_new = $14,
			is_available = $15, sort_order = $16, updated_at = $17
		WHERE id = $1`,
		item.ID, item.Name, item.Description, item.Price, item.OriginalPrice,
		item.ImageURL, item.Calories,
		item.IsVegan, item.IsVegetarian, item.IsGlutenFree, item.IsSpicy,
		item.IsBestseller, item.IsPopular, item.IsNew,
		item.IsAvailable, item.SortOrder, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update menu item: %w", err)
	}
	if n == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (r *PostgresItemRepository) Delete(ctx context.Context, id string) error {
	n, err := r.db.Run(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete menu item: %w", err)
	}
	if n == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (r *PostgresItemRepository) DeleteByCategory(ctx context.Context, categoryID string) error {
	_, err := r.db.Run(ctx, `DELETE FROM menu_items WHERE category_id = $1`, categoryID)
	if err != nil {
		return fmt.Errorf("delete category items: %w", err)
	}
	return nil
}

func rowsToItems(rows []store.Row) []models.MenuItem {
	items := make([]models.MenuItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, *rowToItem(row))
	}
	return items
}

func rowToItem(row store.Row) *models.MenuItem {
	return &models.MenuItem{
		ID:            row.String("id"),
		CategoryID:    row.String("category_id"),
		CafeID:        row.String("cafe_id"),
		Name:          row.String("name"),
		Description:   row.String("description"),
		Price:         row.Float("price"),
		OriginalPrice: row.Float("original_price"),
		ImageURL:      row.String("image_url"),
		Calories:      row.Int("calories"),
		IsVegan:       row.Bool("is_vegan"),
		IsVegetarian:  row.Bool("is_vegetarian"),
		IsGlutenFree:  row.Bool("is_gluten_free"),
		IsSpicy:       row.Bool("is_spicy"),
		IsBestseller:  row.Bool("is_bestseller"),
		IsPopular:     row.Bool("is_popular"),
		IsNew:         row.Bool("is_new"),
		IsAvailable:   row.Bool("is_available"),
		SortOrder:     row.Int("sort_order"),
		CreatedAt:     row.Time("created_at"),
		UpdatedAt:     row.Time("updated_at"),
	}
}
