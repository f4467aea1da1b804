package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Tanishagodhaa/qr-cafe-menu/internal/middleware"
	"github.com/Tanishagodhaa/qr-cafe-menu/internal/service"
)

// CategoryHandler handles menu category requests
type CategoryHandler struct {
	categoryService *service.CategoryService
	log             *slog.Logger
}

func NewCategoryHandler(categoryService *service.CategoryService, log *slog.Logger) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService, log: log}
}

type categoryRequest struct {
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	SortOrder   *int   `json:"sortOrder"`
	IsActive    *bool  `json:"isActive"`
}

type reorderRequest struct {
	CategoryIDs []string `json:"categoryIds" validate:"required,min=1"`
}

// CreateCategory handles POST /api/cafes/{cafeId}/categories
func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cat, err := h.categoryService.Create(r.Context(), middleware.UserID(r.Context()), chi.URLParam(r, "cafeId"), service.CategoryInput{
		Name:        req.Name,
		Icon:        req.Icon,
		Description: req.Description,
		SortOrder:   req.SortOrder,
		IsActive:    req.IsActive,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, cat)
}

// ListCategories handles GET /api/cafes/{cafeId}/categories
func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.categoryService.List(r.Context(), middleware.UserID(r.Context()), chi.URLParam(r, "cafeId"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cats)
}

// UpdateCategory handles PUT /api/categories/{categoryId}
func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cat, err := h.categoryService.Update(r.Context(), middleware.UserID(r.Context()), chi.URLParam(r, "categoryId"), service.CategoryInput{
		Name:        req.Name,
		Icon:        req.Icon,
		Description: req.Description,
		SortOrder:   req.SortOrder,
		IsActive:    req.IsActive,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cat)
}

// DeleteCategory handles DELETE /api/categories/{categoryId}
func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.categoryService.Delete(r.Context(), middleware.UserID(r.Context()), chi.URLParam(r, "categoryId")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Reorder handles PUT /api/cafes/{cafeId}/categories/order
func (h *CategoryHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	var req reorderRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.categoryService.Reorder(r.Context(), middleware.UserID(r.Context()), chi.URLParam(r, "cafeId"), req.CategoryIDs); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
