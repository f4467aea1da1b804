package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Tanishagodhaa/qr-cafe-menu/internal/models"
	"github.com/Tanishagodhaa/qr-cafe-menu/internal/store"
)

const cafeColumns = `id, owner_id, slug, name, tagline, description,
	logo_url, cover_image_url, phone, email, address, website,
	instagram, facebook, currency_symbol,
	primary_color, secondary_color, accent_color, background_color, text_color,
	is_published, is_deployed, deployed_url, created_at, updated_at`

// PostgresCafeRepository implements CafeRepository over a store.Querier.
type PostgresCafeRepository struct {
	db store.Querier
}

func NewPostgresCafeRepository(db store.Querier) *PostgresCafeRepository {
	return &PostgresCafeRepository{db: db}
}

func (r *PostgresCafeRepository) Create(ctx context.Context, cafe *models.Cafe) error {
	_, err := r.db.Run(ctx, `
		INSERT INTO cafes (`+cafeColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25)`,
		cafe.ID, cafe.OwnerID, cafe.Slug, cafe.Name, cafe.Tagline, cafe.Description,
		cafe.LogoURL, cafe.CoverImageURL, cafe.Phone, cafe.Email, cafe.Address, cafe.Website,
		cafe.Instagram, cafe.Facebook, cafe.CurrencySymbol,
		cafe.PrimaryColor, cafe.SecondaryColor, cafe.AccentColor, cafe.BackgroundColor, cafe.TextColor,
		cafe.IsPublished, cafe.IsDeployed, cafe.DeployedURL, cafe.CreatedAt, cafe.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert cafe: %w", err)
	}
	return nil
}

func (r *PostgresCafeRepository) GetByID(ctx context.Context, id string) (*models.Cafe, error) {
	row, err := r.db.Get(ctx, `SELECT `+cafeColumns+` FROM cafes WHERE id = $1`, id)
	if errors.Is(err, store.ErrNoRows) {
		return nil, ErrCafeNotFound
	}
	if err != nil {
		return nil, err
	}
	return rowToCafe(row), nil
}

func (r *PostgresCafeRepository) GetBySlug(ctx context.Context, slug string) (*models.Cafe, error) {
	row, err := r.db.Get(ctx, `SELECT `+cafeColumns+` FROM cafes WHERE slug = $1`, slug)
	if errors.Is(err, store.ErrNoRows) {
		return nil, ErrCafeNotFound
	}
	if err != nil {
		return nil, err
	}
	return rowToCafe(row), nil
}

func (r *PostgresCafeRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.Cafe, error) {
	rows, err := r.db.All(ctx, `
		SELECT `+cafeColumns+` FROM cafes
		WHERE owner_id = $1
		ORDER BY created_at`, ownerID)
	if err != nil {
		return nil, err
	}
	cafes := make([]models.Cafe, 0, len(rows))
	for _, row := range rows {
		cafes = append(cafes, *rowToCafe(row))
	}
	return cafes, nil
}

func (r *PostgresCafeRepository) Update(ctx context.Context, cafe *models.Cafe) error {
	n, err := r.db.Run(ctx, `
		UPDATE cafes SET
			name = $2, tagline = $3, description = $4,
			logo_url = $5, cover_image_url = $6,
			phone = $7, email = $8, address = $9, website = $10,
			instagram = $11, facebook = $12, currency_symbol = $13,
			primary_color = $14, secondary_color = $15, accent_color = $16,
			background_color = $17, text_color = $18,
			is_published = $19, updated_at = $20
		WHERE id = $1`,
		cafe.ID, cafe.Name, cafe.Tagline, cafe.Description,
		cafe.LogoURL, cafe.CoverImageURL,
		cafe.Phone, cafe.Email, cafe.Address, cafe.Website,
		cafe.Instagram, cafe.Facebook, cafe.CurrencySymbol,
		cafe.PrimaryColor, cafe.SecondaryColor, cafe.AccentColor,
		cafe.BackgroundColor, cafe.TextColor,
		cafe.IsPublished, cafe.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update cafe: %w", err)
	}
	if n == 0 {
		return ErrCafeNotFound
	}
	return nil
}

func (r *PostgresCafeRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	_, err := r.db.Get(ctx, `SELECT 1 AS one FROM cafes WHERE slug = $1`, slug)
	if errors.Is(err, store.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *PostgresCafeRepository) Slugs(ctx context.Context) ([]string, error) {
	rows, err := r.db.All(ctx, `SELECT slug FROM cafes`)
	if err != nil {
		return nil, err
	}
	slugs := make([]string, 0, len(rows))
	for _, row := range rows {
		slugs = append(slugs, row.String("slug"))
	}
	return slugs, nil
}

func (r *PostgresCafeRepository) SetDeployed(ctx context.Context, id, url string, at time.Time) error {
	n, err := r.db.Run(ctx, `
		UPDATE cafes SET is_deployed = TRUE, deployed_url = $2, updated_at = $3
		WHERE id = $1`, id, url, at)
	if err != nil {
		return fmt.Errorf("mark cafe deployed: %w", err)
	}
	if n == 0 {
		return ErrCafeNotFound
	}
	return nil
}

func rowToCafe(row store.Row) *models.Cafe {
	return &models.Cafe{
		ID:              row.String("id"),
		OwnerID:         row.String("owner_id"),
		Slug:            row.String("slug"),
		Name:            row.String("name"),
		Tagline:         row.String("tagline"),
		Description:     row.String("description"),
		LogoURL:         row.String("logo_url"),
		CoverImageURL:   row.String("cover_image_url"),
		Phone:           row.String("phone"),
		Email:           row.String("email"),
		Address:         row.String("address"),
		Website:         row.String("website"),
		Instagram:       row.String("instagram"),
		Facebook:        row.String("facebook"),
		CurrencySymbol:  row.String("currency_symbol"),
		PrimaryColor:    row.String("primary_color"),
		SecondaryColor:  row.String("secondary_color"),
		AccentColor:     row.String("accent_color"),
		BackgroundColor: row.String("background_color"),
		TextColor:       row.String("text_color"),
		IsPublished:     row.Bool("is_published"),
		IsDeployed:      row.Bool("is_deployed"),
		DeployedURL:     row.String("deployed_url"),
		CreatedAt:       row.Time("created_at"),
		UpdatedAt:       row.Time("updated_at"),
	}
}
