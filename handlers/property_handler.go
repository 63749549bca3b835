package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/ferreirogomes/quinhao/services"
)

// PropertyHandler handles property registration and lookup.
type PropertyHandler struct {
	Registry *services.PropertyRegistry
}

// NewPropertyHandler creates a property handler backed by the registry.
func NewPropertyHandler(registry *services.PropertyRegistry) *PropertyHandler {
	return &PropertyHandler{Registry: registry}
}

// RegisterProperty registers a new property.
// POST /properties
func (h *PropertyHandler) RegisterProperty(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string `json:"name" validate:"required"`
		TotalShares uint64 `json:"total_shares"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	property := h.Registry.RegisterProperty(req.Name, req.TotalShares)
	respondJSON(w, http.StatusCreated, property)
}

// GetPropertyByID looks a property up by id.
// GET /properties/{id}
func (h *PropertyHandler) GetPropertyByID(w http.ResponseWriter, r *http.Request) {
	id, err := propertyIDParam(r)
	if err != nil {
		http.Error(w, "invalid property id", http.StatusBadRequest)
		return
	}

	property, found := h.Registry.GetProperty(id)
	if !found {
		http.Error(w, services.ErrPropertyNotFound.Error(), http.StatusNotFound)
		return
	}
	respondJSON(w, http.StatusOK, property)
}
