package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Tanishagodhaa/qr-cafe-menu/internal/repository"
	"github.com/Tanishagodhaa/qr-cafe-menu/internal/scrape"
	"github.com/Tanishagodhaa/qr-cafe-menu/internal/slug"
)

type stubExtractor struct {
	profile scrape.Profile
	ok      bool
	calls   int
}

func (s *stubExtractor) Extract(ctx context.Context, url string) (scrape.Profile, bool) {
	s.calls++
	return s.profile, s.ok
}

func newCafeService(extractor ProfileExtractor) (*CafeService, *repository.InMemoryCafeRepository) {
	cafes := repository.NewInMemoryCafeRepository()
	activities := repository.NewInMemoryActivityRepository()
	return NewCafeService(cafes, activities, slug.NewGenerator(nil), extractor), cafes
}

func TestCreateCafe_Minimal(t *testing.T) {
	svc, _ := newCafeService(nil)

	cafe, err := svc.Create(context.Background(), "owner-1", CreateCafeInput{Name: "Café Verde"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if cafe.Slug != "cafe-verde" {
		t.Errorf("slug = %q, want cafe-verde", cafe.Slug)
	}
	if cafe.OwnerID != "owner-1" {
		t.Errorf("owner = %q, want owner-1", cafe.OwnerID)
	}
	if cafe.IsPublished || cafe.IsDeployed {
		t.Error("new cafés must start unpublished and undeployed")
	}
}

func TestCreateCafe_NameRequired(t *testing.T) {
	svc, _ := newCafeService(nil)

	_, err := svc.Create(context.Background(), "owner-1", CreateCafeInput{Name: "   "})
	if !errors.Is(err, ErrNameRequired) {
		t.Errorf("err = %v, want ErrNameRequired", err)
	}
}

func TestCreateCafe_SlugCollision(t *testing.T) {
	svc, _ := newCafeService(nil)
	ctx := context.Background()

	first, err := svc.Create(ctx, "owner-1", CreateCafeInput{Name: "Café Verde"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	second, err := svc.Create(ctx, "owner-2", CreateCafeInput{Name: "Café Verde"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if first.Slug == second.Slug {
		t.Fatalf("expected distinct slugs, both %q", first.Slug)
	}
	if second.Slug != "cafe-verde-2" {
		t.Errorf("slug = %q, want cafe-verde-2", second.Slug)
	}
}

func TestCreateCafe_ScrapePreFill(t *testing.T) {
	extractor := &stubExtractor{
		profile: scrape.Profile{
			Description: "Best coffee in town",
			Phone:       "+15550100",
			Website:     "https://verde.test",
		},
		ok: true,
	}
	svc, _ := newCafeService(extractor)

	cafe, err := svc.Create(context.Background(), "owner-1", CreateCafeInput{
		Name:      "Café Verde",
		SourceURL: "https://listing.test/cafe-verde",
		Phone:     "+15559999", // owner input wins over the scraped value
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if extractor.calls != 1 {
		t.Errorf("extractor calls = %d, want 1", extractor.calls)
	}
	if cafe.Description != "Best coffee in town" {
		t.Errorf("description = %q, want scraped value", cafe.Description)
	}
	if cafe.Phone != "+15559999" {
		t.Errorf("phone = %q, owner input must win", cafe.Phone)
	}
}

func TestCreateCafe_ScrapeFailureFallsBack(t *testing.T) {
	svc, _ := newCafeService(&stubExtractor{ok: false})

	cafe, err := svc.Create(context.Background(), "owner-1", CreateCafeInput{
		Name:      "Café Verde",
		SourceURL: "https://listing.test/broken",
	})
	if err != nil {
		t.Fatalf("extraction failure must never fail café creation: %v", err)
	}

	if cafe.Name != "Café Verde" {
		t.Errorf("name = %q", cafe.Name)
	}
	if cafe.Description != "" || cafe.Phone != "" {
		t.Error("expected a name-only stub profile on extraction failure")
	}
}

func TestGetCafe_Ownership(t *testing.T) {
	svc, _ := newCafeService(nil)
	ctx := context.Background()

	cafe, err := svc.Create(ctx, "owner-1", CreateCafeInput{Name: "Café Verde"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := svc.Get(ctx, "owner-1", cafe.ID); err != nil {
		t.Errorf("owner access failed: %v", err)
	}
	if _, err := svc.Get(ctx, "intruder", cafe.ID); !errors.Is(err, ErrNotOwner) {
		t.Errorf("err = %v, want ErrNotOwner", err)
	}
	if _, err := svc.Get(ctx, "owner-1", "missing"); !errors.Is(err, repository.ErrCafeNotFound) {
		t.Errorf("err = %v, want ErrCafeNotFound", err)
	}
}

func TestUpdateCafe_PartialFields(t *testing.T) {
	svc, _ := newCafeService(nil)
	ctx := context.Background()

	cafe, err := svc.Create(ctx, "owner-1", CreateCafeInput{Name: "Café Verde", Tagline: "original"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	primary := "#112233"
	updated, err := svc.Update(ctx, "owner-1", cafe.ID, UpdateCafeInput{PrimaryColor: &primary})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if updated.PrimaryColor != "#112233" {
		t.Errorf("primary color = %q", updated.PrimaryColor)
	}
	if updated.Tagline != "original" {
		t.Errorf("tagline = %q, untouched fields must keep their values", updated.Tagline)
	}
	if updated.Slug != cafe.Slug {
		t.Error("slug must be immutable")
	}
}

func TestSetPublished(t *testing.T) {
	svc, _ := newCafeService(nil)
	ctx := context.Background()

	cafe, err := svc.Create(ctx, "owner-1", CreateCafeInput{Name: "Café Verde"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	published, err := svc.SetPublished(ctx, "owner-1", cafe.ID, true)
	if err != nil {
		t.Fatalf("publish failed: %v", err)
	}
	if !published.IsPublished {
		t.Error("expected the café to be published")
	}

	if _, err := svc.SetPublished(ctx, "intruder", cafe.ID, false); !errors.Is(err, ErrNotOwner) {
		t.Errorf("err = %v, want ErrNotOwner", err)
	}
}
