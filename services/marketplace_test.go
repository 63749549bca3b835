package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ferreirogomes/quinhao/models"
	"github.com/ferreirogomes/quinhao/services"
)

func TestListSharesForSale(t *testing.T) {
	engine := services.NewEngine()
	villa := engine.Properties.RegisterProperty("Villa", 100)
	require.NoError(t, engine.Ledger.IssueShares(villa.ID, "alice", 60))

	err := engine.Market.ListSharesForSale(villa.ID, "alice", 30, 5)
	require.NoError(t, err)

	listings := engine.Market.Listings()
	require.Len(t, listings, 1)
	assert.Equal(t, models.Listing{
		PropertyID:    villa.ID,
		Seller:        "alice",
		Amount:        30,
		PricePerShare: 5,
	}, listings[0])

	assert.Equal(t, uint64(60), engine.Ledger.GetOwnership(villa.ID, "alice"), "listing must not escrow shares")
}

func TestListSharesForSaleInsufficientBalance(t *testing.T) {
	engine := services.NewEngine()
	villa := engine.Properties.RegisterProperty("Villa", 100)
	require.NoError(t, engine.Ledger.IssueShares(villa.ID, "alice", 60))

	err := engine.Market.ListSharesForSale(villa.ID, "alice", 61, 5)
	assert.ErrorIs(t, err, services.ErrInsufficientBalance)
	assert.Empty(t, engine.Market.Listings())
}

func TestBuySharesPartialFill(t *testing.T) {
	engine := services.NewEngine()
	villa := engine.Properties.RegisterProperty("Villa", 100)
	require.NoError(t, engine.Ledger.IssueShares(villa.ID, "alice", 60))
	require.NoError(t, engine.Market.ListSharesForSale(villa.ID, "alice", 30, 5))

	trade, err := engine.Market.BuyShares(villa.ID, "alice", "bob", 20)
	require.NoError(t, err)

	assert.Equal(t, uint64(40), engine.Ledger.GetOwnership(villa.ID, "alice"))
	assert.Equal(t, uint64(20), engine.Ledger.GetOwnership(villa.ID, "bob"))

	listings := engine.Market.Listings()
	require.Len(t, listings, 1)
	assert.Equal(t, uint64(10), listings[0].Amount, "partially filled listing keeps the remainder")

	assert.NotEmpty(t, trade.ID)
	assert.Equal(t, uint64(20), trade.Amount)
	assert.Equal(t, uint64(5), trade.PricePerShare)
	assert.Equal(t, uint64(100), trade.TotalPrice)
	assertConservation(t, engine, villa.ID, "alice", "bob")
}

func TestBuySharesFullFillRemovesListing(t *testing.T) {
	engine := services.NewEngine()
	villa := engine.Properties.RegisterProperty("Villa", 100)
	require.NoError(t, engine.Ledger.IssueShares(villa.ID, "alice", 60))
	require.NoError(t, engine.Market.ListSharesForSale(villa.ID, "alice", 30, 5))

	_, err := engine.Market.BuyShares(villa.ID, "alice", "bob", 30)
	require.NoError(t, err)

	assert.Empty(t, engine.Market.Listings(), "a fully consumed listing disappears")
	assert.Equal(t, uint64(30), engine.Ledger.GetOwnership(villa.ID, "bob"))
}

func TestBuySharesNoMatchingListing(t *testing.T) {
	engine := services.NewEngine()
	villa := engine.Properties.RegisterProperty("Villa", 100)
	require.NoError(t, engine.Ledger.IssueShares(villa.ID, "alice", 60))
	require.NoError(t, engine.Market.ListSharesForSale(villa.ID, "alice", 30, 5))

	_, err := engine.Market.BuyShares(villa.ID, "alice", "bob", 31)
	assert.ErrorIs(t, err, services.ErrNoMatchingListing, "asking more than any single listing offers matches nothing")

	_, err = engine.Market.BuyShares(villa.ID, "carol", "bob", 10)
	assert.ErrorIs(t, err, services.ErrNoMatchingListing)

	_, err = engine.Market.BuyShares(99, "alice", "bob", 10)
	assert.ErrorIs(t, err, services.ErrNoMatchingListing)

	assert.Equal(t, uint64(60), engine.Ledger.GetOwnership(villa.ID, "alice"))
	assert.Zero(t, engine.Ledger.GetOwnership(villa.ID, "bob"))
	require.Len(t, engine.Market.Listings(), 1)
	assert.Equal(t, uint64(30), engine.Market.Listings()[0].Amount)
}

func TestBuySharesPicksFirstMatch(t *testing.T) {
	engine := services.NewEngine()
	villa := engine.Properties.RegisterProperty("Villa", 100)
	require.NoError(t, engine.Ledger.IssueShares(villa.ID, "alice", 60))
	require.NoError(t, engine.Market.ListSharesForSale(villa.ID, "alice", 10, 9))
	require.NoError(t, engine.Market.ListSharesForSale(villa.ID, "alice", 10, 5))

	// First match wins even when a cheaper listing sits behind it.
	trade, err := engine.Market.BuyShares(villa.ID, "alice", "bob", 10)
	require.NoError(t, err)
	assert.Equal(t, uint64(9), trade.PricePerShare)

	listings := engine.Market.Listings()
	require.Len(t, listings, 1)
	assert.Equal(t, uint64(5), listings[0].PricePerShare)
}

func TestBuySharesStaleListing(t *testing.T) {
	engine := services.NewEngine()
	villa := engine.Properties.RegisterProperty("Villa", 100)
	require.NoError(t, engine.Ledger.IssueShares(villa.ID, "alice", 60))
	require.NoError(t, engine.Market.ListSharesForSale(villa.ID, "alice", 30, 5))

	// Alice trades most of her shares away after listing; the listing is
	// now stale because nothing was reserved.
	require.NoError(t, engine.Ledger.TransferShares(villa.ID, "alice", "carol", 50))

	_, err := engine.Market.BuyShares(villa.ID, "alice", "bob", 20)
	assert.ErrorIs(t, err, services.ErrInsufficientBalance)

	assert.Empty(t, engine.Market.Listings(), "a stale listing is removed from the book")
	assert.Equal(t, uint64(10), engine.Ledger.GetOwnership(villa.ID, "alice"))
	assert.Zero(t, engine.Ledger.GetOwnership(villa.ID, "bob"))
	assert.Empty(t, engine.Market.Trades())
}

func TestListingsReturnsSnapshot(t *testing.T) {
	engine := services.NewEngine()
	villa := engine.Properties.RegisterProperty("Villa", 100)
	require.NoError(t, engine.Ledger.IssueShares(villa.ID, "alice", 60))
	require.NoError(t, engine.Market.ListSharesForSale(villa.ID, "alice", 30, 5))

	snapshot := engine.Market.Listings()
	snapshot[0].Amount = 1

	assert.Equal(t, uint64(30), engine.Market.Listings()[0].Amount, "callers must not be able to mutate the book")
}

func TestTradeHistory(t *testing.T) {
	engine := services.NewEngine()
	villa := engine.Properties.RegisterProperty("Villa", 100)
	require.NoError(t, engine.Ledger.IssueShares(villa.ID, "alice", 60))
	require.NoError(t, engine.Market.ListSharesForSale(villa.ID, "alice", 30, 5))

	first, err := engine.Market.BuyShares(villa.ID, "alice", "bob", 20)
	require.NoError(t, err)
	second, err := engine.Market.BuyShares(villa.ID, "alice", "carol", 10)
	require.NoError(t, err)

	trades := engine.Market.Trades()
	require.Len(t, trades, 2)
	assert.Equal(t, first, trades[0])
	assert.Equal(t, second, trades[1])
	assert.NotEqual(t, first.ID, second.ID)
}
