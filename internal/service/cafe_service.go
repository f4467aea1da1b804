package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Tanishagodhaa/qr-cafe-menu/internal/models"
	"github.com/Tanishagodhaa/qr-cafe-menu/internal/repository"
	"github.com/Tanishagodhaa/qr-cafe-menu/internal/scrape"
	"github.com/Tanishagodhaa/qr-cafe-menu/internal/slug"
)

var (
	ErrNameRequired = errors.New("cafe name is required")
	ErrNotOwner     = errors.New("cafe does not belong to this user")
)

// ProfileExtractor pre-fills café profiles from public listing pages.
// Extraction is best-effort: ok=false means "use what the owner typed".
type ProfileExtractor interface {
	Extract(ctx context.Context, url string) (scrape.Profile, bool)
}

// CafeService handles café lifecycle and profile management.
type CafeService struct {
	cafes      repository.CafeRepository
	activities repository.ActivityRepository
	slugs      *slug.Generator
	extractor  ProfileExtractor
}

func NewCafeService(
	cafes repository.CafeRepository,
	activities repository.ActivityRepository,
	slugs *slug.Generator,
	extractor ProfileExtractor,
) *CafeService {
	return &CafeService{
		cafes:      cafes,
		activities: activities,
		slugs:      slugs,
		extractor:  extractor,
	}
}

// CreateCafeInput carries the owner-supplied café fields. Only Name is
// required; SourceURL, when set, triggers a best-effort profile pre-fill.
type CreateCafeInput struct {
	Name      string
	SourceURL string

	Tagline     string
	Description string
	Phone       string
	Email       string
	Address     string
	Website     string
	LogoURL     string
}

// Create registers a café with a freshly reserved slug. When a source URL is
// given, missing profile fields are pre-filled by scraping it; any scraping
// failure silently falls back to the fields the owner typed.
func (s *CafeService) Create(ctx context.Context, ownerID string, in CreateCafeInput) (*models.Cafe, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	if in.SourceURL != "" && s.extractor != nil {
		if profile, ok := s.extractor.Extract(ctx, in.SourceURL); ok {
			in = mergeProfile(in, profile)
		}
	}

	cafeSlug, err := s.slugs.Reserve(ctx, name, s.cafes.SlugExists)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	cafe := &models.Cafe{
		ID:          uuid.New().String(),
		OwnerID:     ownerID,
		Slug:        cafeSlug,
		Name:        name,
		Tagline:     in.Tagline,
		Description: in.Description,
		Phone:       in.Phone,
		Email:       in.Email,
		Address:     in.Address,
		Website:     in.Website,
		LogoURL:     in.LogoURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.cafes.Create(ctx, cafe); err != nil {
		return nil, err
	}

	s.record(ctx, cafe.ID, ownerID, "cafe.created", cafe.Name)
	return cafe, nil
}

// mergeProfile fills any empty input field from a scraped profile. Owner
// input always wins.
func mergeProfile(in CreateCafeInput, p scrape.Profile) CreateCafeInput {
	if in.Description == "" {
		in.Description = p.Description
	}
	if in.Phone == "" {
		in.Phone = p.Phone
	}
	if in.Email == "" {
		in.Email = p.Email
	}
	if in.Website == "" {
		in.Website = p.Website
	}
	if in.LogoURL == "" {
		in.LogoURL = p.LogoURL
	}
	return in
}

// Get returns a café after checking it belongs to the caller.
func (s *CafeService) Get(ctx context.Context, ownerID, cafeID string) (*models.Cafe, error) {
	cafe, err := s.cafes.GetByID(ctx, cafeID)
	if err != nil {
		return nil, err
	}
	if cafe.OwnerID != ownerID {
		return nil, ErrNotOwner
	}
	return cafe, nil
}

// List returns the caller's cafés.
func (s *CafeService) List(ctx context.Context, ownerID string) ([]models.Cafe, error) {
	return s.cafes.ListByOwner(ctx, ownerID)
}

// UpdateCafeInput carries the updatable café fields. Nil pointers leave the
// stored value untouched.
type UpdateCafeInput struct {
	Name        *string
	Tagline     *string
	Description *string

	LogoURL       *string
	CoverImageURL *string

	Phone   *string
	Email   *string
	Address *string
	Website *string

	Instagram *string
	Facebook  *string

	CurrencySymbol  *string
	PrimaryColor    *string
	SecondaryColor  *string
	AccentColor     *string
	BackgroundColor *string
	TextColor       *string
}

// Update applies the non-nil fields. The slug is immutable; the name can
// change without affecting published URLs or QR codes.
func (s *CafeService) Update(ctx context.Context, ownerID, cafeID string, in UpdateCafeInput) (*models.Cafe, error) {
	cafe, err := s.Get(ctx, ownerID, cafeID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, ErrNameRequired
		}
		cafe.Name = strings.TrimSpace(*in.Name)
	}
	setIf(&cafe.Tagline, in.Tagline)
	setIf(&cafe.Description, in.Description)
	setIf(&cafe.LogoURL, in.LogoURL)
	setIf(&cafe.CoverImageURL, in.CoverImageURL)
	setIf(&cafe.Phone, in.Phone)
	setIf(&cafe.Email, in.Email)
	setIf(&cafe.Address, in.Address)
	setIf(&cafe.Website, in.Website)
	setIf(&cafe.Instagram, in.Instagram)
	setIf(&cafe.Facebook, in.Facebook)
	setIf(&cafe.CurrencySymbol, in.CurrencySymbol)
	setIf(&cafe.PrimaryColor, in.PrimaryColor)
	setIf(&cafe.SecondaryColor, in.SecondaryColor)
	setIf(&cafe.AccentColor, in.AccentColor)
	setIf(&cafe.BackgroundColor, in.BackgroundColor)
	setIf(&cafe.TextColor, in.TextColor)

	cafe.UpdatedAt = time.Now().UTC()
	if err := s.cafes.Update(ctx, cafe); err != nil {
		return nil, err
	}

	s.record(ctx, cafe.ID, ownerID, "cafe.updated", "")
	return cafe, nil
}

// SetPublished flips the publication flag. An unpublished café's menu page
// answers not-found to the public.
func (s *CafeService) SetPublished(ctx context.Context, ownerID, cafeID string, published bool) (*models.Cafe, error) {
	cafe, err := s.Get(ctx, ownerID, cafeID)
	if err != nil {
		return nil, err
	}

	cafe.IsPublished = published
	cafe.UpdatedAt = time.Now().UTC()
	if err := s.cafes.Update(ctx, cafe); err != nil {
		return nil, err
	}

	action := "cafe.published"
	if !published {
		action = "cafe.unpublished"
	}
	s.record(ctx, cafe.ID, ownerID, action, "")
	return cafe, nil
}

// Activity returns recent audit entries for a café.
func (s *CafeService) Activity(ctx context.Context, ownerID, cafeID string, limit int) ([]models.Activity, error) {
	if _, err := s.Get(ctx, ownerID, cafeID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 50
	}
	return s.activities.ListByCafe(ctx, cafeID, limit)
}

// record writes an audit entry; audit failures never fail the operation.
func (s *CafeService) record(ctx context.Context, cafeID, userID, action, detail string) {
	if s.activities == nil {
		return
	}
	_ = s.activities.Record(ctx, &models.Activity{
		ID:        uuid.New().String(),
		CafeID:    cafeID,
		UserID:    userID,
		Action:    action,
		Detail:    detail,
		CreatedAt: time.Now().UTC(),
	})
}

func setIf(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
