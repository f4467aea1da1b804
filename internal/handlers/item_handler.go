package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Tanishagodhaa/qr-cafe-menu/internal/middleware"
	"github.com/Tanishagodhaa/qr-cafe-menu/internal/service"
)

// ItemHandler handles menu item requests
type ItemHandler struct {
	itemService *service.ItemService
	log         *slog.Logger
}

func NewItemHandler(itemService *service.ItemService, log *slog.Logger) *ItemHandler {
	return &ItemHandler{itemService: itemService, log: log}
}

type itemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`

	Price         *float64 `json:"price" validate:"omitempty,gte=0"`
	OriginalPrice *float64 `json:"originalPrice" validate:"omitempty,gte=0"`
	ImageURL      string   `json:"imageUrl" validate:"omitempty,url"`
	Calories      *int     `json:"calories" validate:"omitempty,gte=0"`

	IsVegan      *bool `json:"isVegan"`
	IsVegetarian *bool `json:"isVegetarian"`
	IsGlutenFree *bool `json:"isGlutenFree"`
	IsSpicy      *bool `json:"isSpicy"`
	IsBestseller *bool `json:"isBestseller"`
	IsPopular    *bool `json:"isPopular"`
	IsNew        *bool `json:"isNew"`

	IsAvailable *bool `json:"isAvailable"`
	SortOrder   *int  `json:"sortOrder"`
}

func (req itemRequest) toInput() service.ItemInput {
	return service.ItemInput{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		ImageURL:      req.ImageURL,
		Calories:      req.Calories,
		IsVegan:       req.IsVegan,
		IsVegetarian:  req.IsVegetarian,
		IsGlutenFree:  req.IsGlutenFree,
		IsSpicy:       req.IsSpicy,
		IsBestseller:  req.IsBestseller,
		IsPopular:     req.IsPopular,
		IsNew:         req.IsNew,
		IsAvailable:   req.IsAvailable,
		SortOrder:     req.SortOrder,
	}
}

// CreateItem handles POST /api/categories/{categoryId}/items
func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := h.itemService.Create(r.Context(), middleware.UserID(r.Context()), chi.URLParam(r, "categoryId"), req.toInput())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

// ListItems handles GET /api/categories/{categoryId}/items
func (h *ItemHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.itemService.List(r.Context(), middleware.UserID(r.Context()), chi.URLParam(r, "categoryId"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// UpdateItem handles PUT /api/items/{itemId}
func (h *ItemHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := h.itemService.Update(r.Context(), middleware.UserID(r.Context()), chi.URLParam(r, "itemId"), req.toInput())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// DeleteItem handles DELETE /api/items/{itemId}
func (h *ItemHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	if err := h.itemService.Delete(r.Context(), middleware.UserID(r.Context()), chi.URLParam(r, "itemId")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
