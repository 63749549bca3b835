package services

import (
	"sync"

	"github.com/ferreirogomes/quinhao/models"
)

// Engine bundles the four ledger components around a single serializing
// mutex. Every public operation locks it for its whole duration, so
// operations run to completion without interleaving: no caller ever
// observes a debit without its paired credit, or a distribution applied
// to only part of the owner set.
//
// Each component owns its tables privately; the only way to touch them is
// through the operations below. Cross-component calls (a buy settling
// through the ledger, a deposit reading balances) happen with the lock
// already held, via unexported helpers.
type Engine struct {
	Properties *PropertyRegistry
	Ledger     *OwnershipLedger
	Market     *Marketplace
	Income     *IncomeDistributor
}

// NewEngine creates an empty engine with no properties, balances, listings
// or income records.
func NewEngine() *Engine {
	mu := &sync.Mutex{}

	properties := &PropertyRegistry{
		mu:         mu,
		properties: make(map[models.PropertyID]*models.Property),
		nextID:     1,
	}
	ledger := &OwnershipLedger{
		mu:       mu,
		registry: properties,
		balances: make(map[ownershipKey]uint64),
	}
	market := &Marketplace{
		mu:     mu,
		ledger: ledger,
	}
	income := &IncomeDistributor{
		mu:        mu,
		registry:  properties,
		ledger:    ledger,
		totals:    make(map[models.PropertyID]uint64),
		unclaimed: make(map[ownershipKey]uint64),
	}

	return &Engine{
		Properties: properties,
		Ledger:     ledger,
		Market:     market,
		Income:     income,
	}
}
