package services

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ferreirogomes/quinhao/models"
)

// Marketplace holds active sale listings and settles purchases against the
// ownership ledger. Listed shares are not escrowed: the seller keeps full
// control of their balance until a buy executes, and the balance is
// re-checked at that moment.
type Marketplace struct {
	mu       *sync.Mutex
	ledger   *OwnershipLedger
	listings []models.Listing
	trades   []models.Trade
}

// ListSharesForSale appends a listing offering amount shares at the given
// per-share price. The seller must own at least amount shares at listing
// time; since nothing is reserved, that guarantee can go stale if the
// seller transfers shares away before a buyer shows up.
func (m *Marketplace) ListSharesForSale(propertyID models.PropertyID, seller string, amount, pricePerShare uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ledger.balance(propertyID, seller) < amount {
		return ErrInsufficientBalance
	}
	m.listings = append(m.listings, models.Listing{
		PropertyID:    propertyID,
		Seller:        seller,
		Amount:        amount,
		PricePerShare: pricePerShare,
	})
	return nil
}

// BuyShares fills amount shares from the first listing by this seller for
// this property that still offers at least that many. The seller's balance
// is re-checked at sale time; a listing that can no longer be delivered is
// removed from the book and the buy fails with ErrInsufficientBalance.
// A partially filled listing stays in the book with its amount reduced; a
// fully consumed one is removed. Every settled buy is recorded as a trade,
// which is also returned to the caller.
func (m *Marketplace) BuyShares(propertyID models.PropertyID, seller, buyer string, amount uint64) (models.Trade, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	pos := -1
	for i, listing := range m.listings {
		if listing.PropertyID == propertyID && listing.Seller == seller && listing.Amount >= amount {
			pos = i
			break
		}
	}
	if pos < 0 {
		return models.Trade{}, ErrNoMatchingListing
	}

	listing := m.listings[pos]
	if err := m.ledger.move(propertyID, seller, buyer, amount); err != nil {
		// Stale listing: the seller traded the shares away after listing
		// them. Drop it so it can never match again.
		m.listings = slices.Delete(m.listings, pos, pos+1)
		return models.Trade{}, err
	}

	if listing.Amount == amount {
		m.listings = slices.Delete(m.listings, pos, pos+1)
	} else {
		m.listings[pos].Amount -= amount
	}

	trade := models.Trade{
		ID:            uuid.New().String(),
		PropertyID:    propertyID,
		Seller:        seller,
		Buyer:         buyer,
		Amount:        amount,
		PricePerShare: listing.PricePerShare,
		TotalPrice:    amount * listing.PricePerShare,
		ExecutedAt:    time.Now().UTC(),
	}
	m.trades = append(m.trades, trade)
	return trade, nil
}

// Listings returns a snapshot copy of the active listings.
func (m *Marketplace) Listings() []models.Listing {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.listings)
}

// Trades returns a snapshot copy of the executed trades, oldest first.
func (m *Marketplace) Trades() []models.Trade {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.trades)
}
