package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/Tanishagodhaa/qr-cafe-menu/internal/repository"
	"github.com/Tanishagodhaa/qr-cafe-menu/internal/service"
)

var validate = validator.New()

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log error but can't do much else at this point
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// writeError writes an error response
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{
		"error": message,
	})
}

// decodeAndValidate parses a JSON body into dst and runs its validate tags.
func decodeAndValidate(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.New("invalid request body")
	}
	if err := validate.Struct(dst); err != nil {
		return err
	}
	return nil
}

// writeServiceError maps service and repository errors onto HTTP statuses.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrCafeNotFound):
		writeError(w, http.StatusNotFound, "Cafe not found")
	case errors.Is(err, repository.ErrCategoryNotFound):
		writeError(w, http.StatusNotFound, "Category not found")
	case errors.Is(err, repository.ErrItemNotFound):
		writeError(w, http.StatusNotFound, "Menu item not found")
	case errors.Is(err, service.ErrNotOwner):
		writeError(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, service.ErrNameRequired),
		errors.Is(err, service.ErrCategoryNameRequired),
		errors.Is(err, service.ErrItemNameRequired),
		errors.Is(err, service.ErrNegativePrice),
		errors.Is(err, service.ErrNotPublished):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
