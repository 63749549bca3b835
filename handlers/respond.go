package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/ferreirogomes/quinhao/models"
	"github.com/ferreirogomes/quinhao/services"
)

var validate = validator.New()

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondServiceError maps the engine's sentinel errors onto HTTP statuses:
// missing records are 404, uncovered amounts are 422.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrPropertyNotFound),
		errors.Is(err, services.ErrNoMatchingListing):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, services.ErrInsufficientShares),
		errors.Is(err, services.ErrInsufficientBalance):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// propertyIDParam parses the {id} route parameter.
func propertyIDParam(r *http.Request) (models.PropertyID, error) {
	return strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
}
