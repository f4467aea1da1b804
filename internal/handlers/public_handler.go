package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Tanishagodhaa/qr-cafe-menu/internal/auth"
	"github.com/Tanishagodhaa/qr-cafe-menu/internal/config"
	"github.com/Tanishagodhaa/qr-cafe-menu/internal/repository"
	"github.com/Tanishagodhaa/qr-cafe-menu/internal/service"
)

// PublicHandler serves the public menu pages. These routes carry no auth
// middleware; an optional bearer token only matters for owner previews of
// unpublished cafés.
type PublicHandler struct {
	menuService *service.MenuService
	authCfg     config.AuthConfig
	log         *slog.Logger
}

func NewPublicHandler(menuService *service.MenuService, authCfg config.AuthConfig, log *slog.Logger) *PublicHandler {
	return &PublicHandler{menuService: menuService, authCfg: authCfg, log: log}
}

// MenuPage handles GET /m/{slug}
// An unpublished café answers 404 unless the owner requests ?preview=1 with
// a valid token, so draft content never leaks.
func (h *PublicHandler) MenuPage(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	preview := r.URL.Query().Get("preview") == "1"

	doc, err := h.menuService.PublicPage(r.Context(), slug, preview, h.viewerID(r))
	if err != nil {
		if errors.Is(err, repository.ErrCafeNotFound) {
			http.NotFound(w, r)
			return
		}
		h.log.Error("failed to render menu page", "slug", slug, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(doc))
}

// viewerID extracts the user id from an optional bearer token; anonymous or
// invalid tokens simply mean no viewer.
func (h *PublicHandler) viewerID(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	claims, err := auth.Verify(h.authCfg, parts[1])
	if err != nil {
		return ""
	}
	return claims.UserID
}
