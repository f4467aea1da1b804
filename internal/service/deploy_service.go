package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Tanishagodhaa/qr-cafe-menu/internal/config"
	"github.com/Tanishagodhaa/qr-cafe-menu/internal/models"
	"github.com/Tanishagodhaa/qr-cafe-menu/internal/render"
	"github.com/Tanishagodhaa/qr-cafe-menu/internal/repository"
)

var ErrNotPublished = errors.New("cafe must be published before deploying")

// DeployService materializes a café's rendered menu page to the deploy root
// and records the public URL against the café. The three steps (render,
// write, flag update) are not atomic: the rendered document is a pure
// function of current data, so a retry or a concurrent deploy of the same
// café converges on the same content and last-write-wins on the flag.
type DeployService struct {
	cafes      repository.CafeRepository
	menu       *MenuService
	activities repository.ActivityRepository
	cfg        config.DeployConfig
	log        *slog.Logger
}

func NewDeployService(
	cafes repository.CafeRepository,
	menu *MenuService,
	activities repository.ActivityRepository,
	cfg config.DeployConfig,
	log *slog.Logger,
) *DeployService {
	return &DeployService{
		cafes:      cafes,
		menu:       menu,
		activities: activities,
		cfg:        cfg,
		log:        log,
	}
}

// DeployResult describes a completed deployment.
type DeployResult struct {
	URL  string `json:"url"`
	Path string `json:"path"`
}

// Deploy renders and publishes the caller's café menu page.
func (s *DeployService) Deploy(ctx context.Context, ownerID, cafeID string) (*DeployResult, error) {
	cafe, err := s.cafes.GetByID(ctx, cafeID)
	if err != nil {
		return nil, err
	}
	if cafe.OwnerID != ownerID {
		return nil, ErrNotOwner
	}
	if !cafe.IsPublished {
		return nil, ErrNotPublished
	}

	doc, err := s.menu.RenderFor(ctx, cafe)
	if err != nil {
		return nil, err
	}

	path, err := render.WriteFile(s.cfg.Root, cafe.Slug, doc)
	if err != nil {
		return nil, err
	}

	url := s.PublicURL(cafe.Slug)
	if err := s.cafes.SetDeployed(ctx, cafe.ID, url, time.Now().UTC()); err != nil {
		return nil, err
	}

	if s.activities != nil {
		_ = s.activities.Record(ctx, &models.Activity{
			ID:        uuid.New().String(),
			CafeID:    cafe.ID,
			UserID:    ownerID,
			Action:    "menu.deployed",
			Detail:    url,
			CreatedAt: time.Now().UTC(),
		})
	}

	s.log.Info("menu deployed", "cafe_id", cafe.ID, "slug", cafe.Slug, "url", url)
	return &DeployResult{URL: url, Path: path}, nil
}

// PublicURL is the stable public address of a café menu; this is also the
// payload encoded into its QR code.
func (s *DeployService) PublicURL(slug string) string {
	return s.cfg.PublicBaseURL + "/m/" + slug
}
