package handlers

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ferreirogomes/quinhao/services"
)

// NewRouter mounts every engine operation on a chi router.
func NewRouter(engine *services.Engine) chi.Router {
	propertyHandler := NewPropertyHandler(engine.Properties)
	ledgerHandler := NewLedgerHandler(engine.Ledger)
	marketplaceHandler := NewMarketplaceHandler(engine.Market)
	incomeHandler := NewIncomeHandler(engine.Income)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.URLFormat)

	r.Route("/properties", func(r chi.Router) {
		r.Post("/", propertyHandler.RegisterProperty)
		r.Get("/{id}", propertyHandler.GetPropertyByID)
		r.Post("/{id}/issue", ledgerHandler.IssueShares)
		r.Post("/{id}/transfer", ledgerHandler.TransferShares)
		r.Get("/{id}/ownership/{owner}", ledgerHandler.GetOwnership)
		r.Post("/{id}/income", incomeHandler.DepositIncome)
		r.Get("/{id}/income", incomeHandler.GetIncomeTotal)
		r.Post("/{id}/income/claim", incomeHandler.ClaimIncome)
		r.Get("/{id}/income/unclaimed/{owner}", incomeHandler.GetUnclaimedIncome)
	})

	r.Route("/marketplace", func(r chi.Router) {
		r.Get("/listings", marketplaceHandler.GetListings)
		r.Post("/listings", marketplaceHandler.CreateListing)
		r.Post("/buy", marketplaceHandler.BuyShares)
		r.Get("/trades", marketplaceHandler.GetTrades)
	})

	return r
}
