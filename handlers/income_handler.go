package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ferreirogomes/quinhao/models"
	"github.com/ferreirogomes/quinhao/services"
)

// IncomeHandler handles rental-income deposits, claims and lookups.
type IncomeHandler struct {
	Income *services.IncomeDistributor
}

// NewIncomeHandler creates an income handler.
func NewIncomeHandler(income *services.IncomeDistributor) *IncomeHandler {
	return &IncomeHandler{Income: income}
}

type unclaimedResponse struct {
	PropertyID models.PropertyID `json:"property_id"`
	Owner      string            `json:"owner"`
	Unclaimed  uint64            `json:"unclaimed"`
}

// DepositIncome deposits rental income for a property and distributes it
// pro-rata to the current owners.
// POST /properties/{id}/income
func (h *IncomeHandler) DepositIncome(w http.ResponseWriter, r *http.Request) {
	id, err := propertyIDParam(r)
	if err != nil {
		http.Error(w, "invalid property id", http.StatusBadRequest)
		return
	}

	var req struct {
		Amount uint64 `json:"amount" validate:"gt=0"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Income.DepositRentalIncome(id, req.Amount); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, struct {
		PropertyID models.PropertyID `json:"property_id"`
		Deposited  uint64            `json:"deposited"`
		Total      uint64            `json:"total"`
	}{id, req.Amount, h.Income.RentalIncomeTotal(id)})
}

// GetIncomeTotal returns the cumulative rental income ever deposited.
// GET /properties/{id}/income
func (h *IncomeHandler) GetIncomeTotal(w http.ResponseWriter, r *http.Request) {
	id, err := propertyIDParam(r)
	if err != nil {
		http.Error(w, "invalid property id", http.StatusBadRequest)
		return
	}
	respondJSON(w, http.StatusOK, struct {
		PropertyID models.PropertyID `json:"property_id"`
		Total      uint64            `json:"total"`
	}{id, h.Income.RentalIncomeTotal(id)})
}

// ClaimIncome pays out the owner's unclaimed income and zeroes it.
// POST /properties/{id}/income/claim
func (h *IncomeHandler) ClaimIncome(w http.ResponseWriter, r *http.Request) {
	id, err := propertyIDParam(r)
	if err != nil {
		http.Error(w, "invalid property id", http.StatusBadRequest)
		return
	}

	var req struct {
		Owner string `json:"owner" validate:"required"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	claimed := h.Income.ClaimIncome(id, req.Owner)
	respondJSON(w, http.StatusOK, struct {
		PropertyID models.PropertyID `json:"property_id"`
		Owner      string            `json:"owner"`
		Claimed    uint64            `json:"claimed"`
	}{id, req.Owner, claimed})
}

// GetUnclaimedIncome returns the owner's unclaimed income, 0 if none.
// GET /properties/{id}/income/unclaimed/{owner}
func (h *IncomeHandler) GetUnclaimedIncome(w http.ResponseWriter, r *http.Request) {
	id, err := propertyIDParam(r)
	if err != nil {
		http.Error(w, "invalid property id", http.StatusBadRequest)
		return
	}
	owner := chi.URLParam(r, "owner")

	respondJSON(w, http.StatusOK, unclaimedResponse{
		PropertyID: id,
		Owner:      owner,
		Unclaimed:  h.Income.GetUnclaimedIncome(id, owner),
	})
}
