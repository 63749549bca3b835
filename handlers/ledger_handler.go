package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ferreirogomes/quinhao/models"
	"github.com/ferreirogomes/quinhao/services"
)

// LedgerHandler handles share issuance, transfers and balance lookups.
type LedgerHandler struct {
	Ledger *services.OwnershipLedger
}

// NewLedgerHandler creates a ledger handler.
func NewLedgerHandler(ledger *services.OwnershipLedger) *LedgerHandler {
	return &LedgerHandler{Ledger: ledger}
}

type ownershipResponse struct {
	PropertyID models.PropertyID `json:"property_id"`
	Owner      string            `json:"owner"`
	Shares     uint64            `json:"shares"`
}

// IssueShares issues shares from the property's available pool to an owner.
// POST /properties/{id}/issue
func (h *LedgerHandler) IssueShares(w http.ResponseWriter, r *http.Request) {
	id, err := propertyIDParam(r)
	if err != nil {
		http.Error(w, "invalid property id", http.StatusBadRequest)
		return
	}

	var req struct {
		To     string `json:"to" validate:"required"`
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

	if err := h.Ledger.IssueShares(id, req.To, req.Amount); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, ownershipResponse{
		PropertyID: id,
		Owner:      req.To,
		Shares:     h.Ledger.GetOwnership(id, req.To),
	})
}

// TransferShares moves shares directly between two owners.
// POST /properties/{id}/transfer
func (h *LedgerHandler) TransferShares(w http.ResponseWriter, r *http.Request) {
	id, err := propertyIDParam(r)
	if err != nil {
		http.Error(w, "invalid property id", http.StatusBadRequest)
		return
	}

	var req struct {
		From   string `json:"from" validate:"required"`
		To     string `json:"to" validate:"required"`
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

	if err := h.Ledger.TransferShares(id, req.From, req.To, req.Amount); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, ownershipResponse{
		PropertyID: id,
		Owner:      req.To,
		Shares:     h.Ledger.GetOwnership(id, req.To),
	})
}

// GetOwnership returns an owner's balance for a property. Unknown owners
// and unknown properties both read as zero.
// GET /properties/{id}/ownership/{owner}
func (h *LedgerHandler) GetOwnership(w http.ResponseWriter, r *http.Request) {
	id, err := propertyIDParam(r)
	if err != nil {
		http.Error(w, "invalid property id", http.StatusBadRequest)
		return
	}
	owner := chi.URLParam(r, "owner")

	respondJSON(w, http.StatusOK, ownershipResponse{
		PropertyID: id,
		Owner:      owner,
		Shares:     h.Ledger.GetOwnership(id, owner),
	})
}
