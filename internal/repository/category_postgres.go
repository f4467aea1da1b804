package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Tanishagodhaa/qr-cafe-menu/internal/models"
	"github.com/Tanishagodhaa/qr-cafe-menu/internal/store"
)

const categoryColumns = `id, cafe_id, name, icon, description, sort_order, is_active, created_at, updated_at`

// PostgresCategoryRepository implements CategoryRepository over a store.Querier.
type PostgresCategoryRepository struct {
	db store.Querier
}

func NewPostgresCategoryRepository(db store.Querier) *PostgresCategoryRepository {
	return &PostgresCategoryRepository{db: db}
}

func (r *PostgresCategoryRepository) Create(ctx context.Context, cat *models.Category) error {
	_, err := r.db.Run(ctx, `
		INSERT INTO categories (`+categoryColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		cat.ID, cat.CafeID, cat.Name, cat.Icon, cat.Description,
		cat.SortOrder, cat.IsActive, cat.CreatedAt, cat.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

func (r *PostgresCategoryRepository) GetByID(ctx context.Context, id string) (*models.Category, error) {
	row, err := r.db.Get(ctx, `SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id)
	if errors.Is(err, store.ErrNoRows) {
		return nil, ErrCategoryNotFound
	}
	if err != nil {
		return nil, err
	}
	return rowToCategory(row), nil
}

func (r *PostgresCategoryRepository) ListByCafe(ctx context.Context, cafeID string) ([]models.Category, error) {
	return r.listByCafe(ctx, cafeID, false)
}

func (r *PostgresCategoryRepository) ListActiveByCafe(ctx context.Context, cafeID string) ([]models.Category, error) {
	return r.listByCafe(ctx, cafeID, true)
}

func (r *PostgresCategoryRepository) listByCafe(ctx context.Context, cafeID string, activeOnly bool) ([]models.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE cafe_id = $1`
	if activeOnly {
		query += ` AND is_active`
	}
	query += ` ORDER BY sort_order, created_at`

	rows, err := r.db.All(ctx, query, cafeID)
	if err != nil {
		return nil, err
	}
	cats := make([]models.Category, 0, len(rows))
	for _, row := range rows {
		cats = append(cats, *rowToCategory(row))
	}
	return cats, nil
}

func (r *PostgresCategoryRepository) Update(ctx context.Context, cat *models.Category) error {
	n, err := r.db.Run(ctx, `
		UPDATE categories SET
			name = $2, icon = $3, description = $4,
			sort_order = $5, is_active = $6, updated_at = $7
		WHERE id = $1`,
		cat.ID, cat.Name, cat.Icon, cat.Description,
		cat.SortOrder, cat.IsActive, cat.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	if n == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

func (r *PostgresCategoryRepository) Delete(ctx context.Context, id string) error {
	n, err := r.db.Run(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if n == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

func rowToCategory(row store.Row) *models.Category {
	return &models.Category{
		ID:          row.String("id"),
		CafeID:      row.String("cafe_id"),
		Name:        row.String("name"),
		Icon:        row.String("icon"),
		Description: row.String("description"),
		SortOrder:   row.Int("sort_order"),
		IsActive:    row.Bool("is_active"),
		CreatedAt:   row.Time("created_at"),
		UpdatedAt:   row.Time("updated_at"),
	}
}
