package handlers

import (
	"bytes"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Tanishagodhaa/qr-cafe-menu/internal/middleware"
	"github.com/Tanishagodhaa/qr-cafe-menu/internal/qr"
	"github.com/Tanishagodhaa/qr-cafe-menu/internal/service"
)

// CafeHandler handles café management requests
type CafeHandler struct {
	cafeService   *service.CafeService
	menuService   *service.MenuService
	deployService *service.DeployService
	log           *slog.Logger
}

func NewCafeHandler(
	cafeService *service.CafeService,
	menuService *service.MenuService,
	deployService *service.DeployService,
	log *slog.Logger,
) *CafeHandler {
	return &CafeHandler{
		cafeService:   cafeService,
		menuService:   menuService,
		deployService: deployService,
		log:           log,
	}
}

type createCafeRequest struct {
	Name      string `json:"name" validate:"required"`
	SourceURL string `json:"sourceUrl" validate:"omitempty,url"`

	Tagline     string `json:"tagline"`
	Description string `json:"description"`
	Phone       string `json:"phone"`
	Email       string `json:"email" validate:"omitempty,email"`
	Address     string `json:"address"`
	Website     string `json:"website" validate:"omitempty,url"`
	LogoURL     string `json:"logoUrl" validate:"omitempty,url"`
}

type updateCafeRequest struct {
	Name        *string `json:"name"`
	Tagline     *string `json:"tagline"`
	Description *string `json:"description"`

	LogoURL       *string `json:"logoUrl" validate:"omitempty,url"`
	CoverImageURL *string `json:"coverImageUrl" validate:"omitempty,url"`

	Phone   *string `json:"phone"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Address *string `json:"address"`
	Website *string `json:"website" validate:"omitempty,url"`

	Instagram *string `json:"instagram"`
	Facebook  *string `json:"facebook"`

	CurrencySymbol  *string `json:"currencySymbol"`
	PrimaryColor    *string `json:"primaryColor" validate:"omitempty,hexcolor"`
	SecondaryColor  *string `json:"secondaryColor" validate:"omitempty,hexcolor"`
	AccentColor     *string `json:"accentColor" validate:"omitempty,hexcolor"`
	BackgroundColor *string `json:"backgroundColor" validate:"omitempty,hexcolor"`
	TextColor       *string `json:"textColor" validate:"omitempty,hexcolor"`
}

type publishRequest struct {
	Published bool `json:"published"`
}

// CreateCafe handles POST /api/cafes
func (h *CafeHandler) CreateCafe(w http.ResponseWriter, r *http.Request) {
	var req createCafeRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cafe, err := h.cafeService.Create(r.Context(), middleware.UserID(r.Context()), service.CreateCafeInput{
		Name:        req.Name,
		SourceURL:   req.SourceURL,
		Tagline:     req.Tagline,
		Description: req.Description,
		Phone:       req.Phone,
		Email:       req.Email,
		Address:     req.Address,
		Website:     req.Website,
		LogoURL:     req.LogoURL,
	})
	if err != nil {
		h.log.Error("failed to create cafe", "error", err)
		writeServiceError(w, err)
		return
	}

	h.log.Info("cafe created", "cafe_id", cafe.ID, "slug", cafe.Slug)
	writeJSON(w, http.StatusCreated, cafe)
}

// ListCafes handles GET /api/cafes
func (h *CafeHandler) ListCafes(w http.ResponseWriter, r *http.Request) {
	cafes, err := h.cafeService.List(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		h.log.Error("failed to list cafes", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, cafes)
}

// GetCafe handles GET /api/cafes/{cafeId}
func (h *CafeHandler) GetCafe(w http.ResponseWriter, r *http.Request) {
	cafe, err := h.cafeService.Get(r.Context(), middleware.UserID(r.Context()), chi.URLParam(r, "cafeId"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cafe)
}

// UpdateCafe handles PUT /api/cafes/{cafeId}
func (h *CafeHandler) UpdateCafe(w http.ResponseWriter, r *http.Request) {
	var req updateCafeRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cafe, err := h.cafeService.Update(r.Context(), middleware.UserID(r.Context()), chi.URLParam(r, "cafeId"), service.UpdateCafeInput{
		Name:            req.Name,
		Tagline:         req.Tagline,
		Description:     req.Description,
		LogoURL:         req.LogoURL,
		CoverImageURL:   req.CoverImageURL,
		Phone:           req.Phone,
		Email:           req.Email,
		Address:         req.Address,
		Website:         req.Website,
		Instagram:       req.Instagram,
		Facebook:        req.Facebook,
		CurrencySymbol:  req.CurrencySymbol,
		PrimaryColor:    req.PrimaryColor,
		SecondaryColor:  req.SecondaryColor,
		AccentColor:     req.AccentColor,
		BackgroundColor: req.BackgroundColor,
		TextColor:       req.TextColor,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cafe)
}

// Publish handles POST /api/cafes/{cafeId}/publish
func (h *CafeHandler) Publish(w http.ResponseWriter, r *http.Request) {
	var req publishRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cafe, err := h.cafeService.SetPublished(r.Context(), middleware.UserID(r.Context()), chi.URLParam(r, "cafeId"), req.Published)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cafe)
}

// Deploy handles POST /api/cafes/{cafeId}/deploy
func (h *CafeHandler) Deploy(w http.ResponseWriter, r *http.Request) {
	result, err := h.deployService.Deploy(r.Context(), middleware.UserID(r.Context()), chi.URLParam(r, "cafeId"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Activity handles GET /api/cafes/{cafeId}/activity
func (h *CafeHandler) Activity(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	entries, err := h.cafeService.Activity(r.Context(), middleware.UserID(r.Context()), chi.URLParam(r, "cafeId"), limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// QRCode handles GET /api/cafes/{cafeId}/qr
// Returns a PNG QR code encoding the café's public menu URL.
func (h *CafeHandler) QRCode(w http.ResponseWriter, r *http.Request) {
	cafe, err := h.cafeService.Get(r.Context(), middleware.UserID(r.Context()), chi.URLParam(r, "cafeId"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	size, _ := strconv.Atoi(r.URL.Query().Get("size"))
	png, err := qr.PNG(h.deployService.PublicURL(cafe.Slug), size)
	if err != nil {
		h.log.Error("failed to encode qr code", "cafe_id", cafe.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}

// Package handles GET /api/cafes/{cafeId}/package
// Returns a zip bundle with the rendered menu page and its QR code.
func (h *CafeHandler) Package(w http.ResponseWriter, r *http.Request) {
	cafe, err := h.cafeService.Get(r.Context(), middleware.UserID(r.Context()), chi.URLParam(r, "cafeId"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	doc, err := h.menuService.RenderFor(r.Context(), cafe)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	png, err := qr.PNG(h.deployService.PublicURL(cafe.Slug), 0)
	if err != nil {
		h.log.Error("failed to encode qr code", "cafe_id", cafe.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	var buf bytes.Buffer
	if err := qr.Bundle(&buf, doc, png); err != nil {
		h.log.Error("failed to build menu package", "cafe_id", cafe.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", `attachment; filename="`+cafe.Slug+`-menu.zip"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
