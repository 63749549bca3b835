package services

import (
	"sort"
	"sync"

	"github.com/ferreirogomes/quinhao/models"
)

// ownershipKey addresses a balance (or an unclaimed-income entry) by
// property and owner.
type ownershipKey struct {
	property models.PropertyID
	owner    string
}

// OwnershipLedger tracks how many shares of each property every owner
// holds. Balance entries are created lazily on first credit and stay in
// the table when they reach zero.
//
// Conservation invariant: for every property,
// sharesAvailable + sum of all owner balances == totalShares.
// Issuance moves shares out of sharesAvailable; transfers and trades only
// reassign already-issued shares between owners.
type OwnershipLedger struct {
	mu       *sync.Mutex
	registry *PropertyRegistry
	balances map[ownershipKey]uint64
}

// IssueShares moves amount shares from the property's available pool to
// the given owner. Fails with ErrPropertyNotFound for an unknown property
// and ErrInsufficientShares when the pool is smaller than amount. Issuing
// zero shares of an existing property is a no-op success.
func (l *OwnershipLedger) IssueShares(propertyID models.PropertyID, to string, amount uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	property, ok := l.registry.get(propertyID)
	if !ok {
		return ErrPropertyNotFound
	}
	if property.SharesAvailable < amount {
		return ErrInsufficientShares
	}
	if amount == 0 {
		return nil
	}
	property.SharesAvailable -= amount
	l.balances[ownershipKey{propertyID, to}] += amount
	return nil
}

// TransferShares reassigns amount shares from one owner to another. The
// only requirement is that the sender's balance covers the amount; it
// fails with ErrInsufficientBalance otherwise. The property's available
// pool is untouched.
func (l *OwnershipLedger) TransferShares(propertyID models.PropertyID, from, to string, amount uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.move(propertyID, from, to, amount)
}

// GetOwnership returns the owner's balance for a property. A missing entry
// is a zero balance, never an error.
func (l *OwnershipLedger) GetOwnership(propertyID models.PropertyID, owner string) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balances[ownershipKey{propertyID, owner}]
}

// move debits from and credits to atomically. The engine lock must be held.
func (l *OwnershipLedger) move(propertyID models.PropertyID, from, to string, amount uint64) error {
	fromKey := ownershipKey{propertyID, from}
	if l.balances[fromKey] < amount {
		return ErrInsufficientBalance
	}
	if amount == 0 {
		return nil
	}
	l.balances[fromKey] -= amount
	l.balances[ownershipKey{propertyID, to}] += amount
	return nil
}

// balance reads an owner's balance. The engine lock must be held.
func (l *OwnershipLedger) balance(propertyID models.PropertyID, owner string) uint64 {
	return l.balances[ownershipKey{propertyID, owner}]
}

// holders returns the owners with a strictly positive balance for the
// property, in ascending owner order so that iteration is reproducible.
// The engine lock must be held.
func (l *OwnershipLedger) holders(propertyID models.PropertyID) []string {
	var owners []string
	for key, shares := range l.balances {
		if key.property == propertyID && shares > 0 {
			owners = append(owners, key.owner)
		}
	}
	sort.Strings(owners)
	return owners
}
