package services

import (
	"sync"

	"github.com/ferreirogomes/quinhao/models"
)

// IncomeDistributor accepts rental-income deposits and splits them among
// the property's current owners in proportion to their share count. Each
// owner accumulates an unclaimed balance that a claim pays out and zeroes.
type IncomeDistributor struct {
	mu        *sync.Mutex
	registry  *PropertyRegistry
	ledger    *OwnershipLedger
	totals    map[models.PropertyID]uint64
	unclaimed map[ownershipKey]uint64
}

// DepositRentalIncome records amount against the property's cumulative
// income total and credits every owner with a positive balance their
// pro-rata cut, floor(amount * shares / totalShares). Owners are credited
// in ascending owner order. Because of the floor, the credited sum can
// fall short of amount; the residual dust is dropped, not redistributed.
// Shares still sitting in the available pool earn nothing: the divisor is
// totalShares, so income attributable to unissued shares is also dust.
//
// Fails with ErrPropertyNotFound when the property does not exist or has
// zero total shares, and nothing is recorded in that case.
func (d *IncomeDistributor) DepositRentalIncome(propertyID models.PropertyID, amount uint64) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	property, ok := d.registry.get(propertyID)
	if !ok || property.TotalShares == 0 {
		return ErrPropertyNotFound
	}

	d.totals[propertyID] += amount
	for _, owner := range d.ledger.holders(propertyID) {
		shares := d.ledger.balance(propertyID, owner)
		cut := amount * shares / property.TotalShares
		if cut > 0 {
			d.unclaimed[ownershipKey{propertyID, owner}] += cut
		}
	}
	return nil
}

// ClaimIncome pays out the owner's unclaimed balance for the property,
// zeroing it. Claiming with nothing unclaimed returns 0; it is never an
// error.
func (d *IncomeDistributor) ClaimIncome(propertyID models.PropertyID, owner string) uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()

	key := ownershipKey{propertyID, owner}
	claimed := d.unclaimed[key]
	delete(d.unclaimed, key)
	return claimed
}

// GetUnclaimedIncome returns the owner's unclaimed balance, 0 if absent.
func (d *IncomeDistributor) GetUnclaimedIncome(propertyID models.PropertyID, owner string) uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.unclaimed[ownershipKey{propertyID, owner}]
}

// RentalIncomeTotal returns the cumulative amount ever deposited for the
// property, including any dust that was never credited to an owner.
func (d *IncomeDistributor) RentalIncomeTotal(propertyID models.PropertyID) uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.totals[propertyID]
}
