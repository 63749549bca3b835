package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/ferreirogomes/quinhao/models"
	"github.com/ferreirogomes/quinhao/services"
)

// MarketplaceHandler handles listings, purchases and trade history.
type MarketplaceHandler struct {
	Market *services.Marketplace
}

// NewMarketplaceHandler creates a marketplace handler.
func NewMarketplaceHandler(market *services.Marketplace) *MarketplaceHandler {
	return &MarketplaceHandler{Market: market}
}

// CreateListing puts shares up for sale.
// POST /marketplace/listings
func (h *MarketplaceHandler) CreateListing(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PropertyID    models.PropertyID `json:"property_id" validate:"gt=0"`
		Seller        string            `json:"seller" validate:"required"`
		Amount        uint64            `json:"amount" validate:"gt=0"`
		PricePerShare uint64            `json:"price_per_share" validate:"gt=0"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Market.ListSharesForSale(req.PropertyID, req.Seller, req.Amount, req.PricePerShare); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, models.Listing{
		PropertyID:    req.PropertyID,
		Seller:        req.Seller,
		Amount:        req.Amount,
		PricePerShare: req.PricePerShare,
	})
}

// BuyShares fills a purchase against a seller's listing.
// POST /marketplace/buy
func (h *MarketplaceHandler) BuyShares(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PropertyID models.PropertyID `json:"property_id" validate:"gt=0"`
		Seller     string            `json:"seller" validate:"required"`
		Buyer      string            `json:"buyer" validate:"required"`
		Amount     uint64            `json:"amount" validate:"gt=0"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	trade, err := h.Market.BuyShares(req.PropertyID, req.Seller, req.Buyer, req.Amount)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, trade)
}

// GetListings returns a snapshot of the active listings.
// GET /marketplace/listings
func (h *MarketplaceHandler) GetListings(w http.ResponseWriter, r *http.Request) {
	listings := h.Market.Listings()
	if listings == nil {
		listings = []models.Listing{}
	}
	respondJSON(w, http.StatusOK, listings)
}

// GetTrades returns the executed trade history, oldest first.
// GET /marketplace/trades
func (h *MarketplaceHandler) GetTrades(w http.ResponseWriter, r *http.Request) {
	trades := h.Market.Trades()
	if trades == nil {
		trades = []models.Trade{}
	}
	respondJSON(w, http.StatusOK, trades)
}
