package services

import (
	"sync"

	"github.com/ferreirogomes/quinhao/models"
)

// PropertyRegistry creates and looks up property records and allocates
// their ids. Properties are never deleted.
type PropertyRegistry struct {
	mu         *sync.Mutex
	properties map[models.PropertyID]*models.Property
	nextID     models.PropertyID
}

// RegisterProperty creates a property with all shares still available for
// issuance and returns it. Ids are allocated sequentially starting at 1.
func (r *PropertyRegistry) RegisterProperty(name string, totalShares uint64) models.Property {
	r.mu.Lock()
	defer r.mu.Unlock()

	property := &models.Property{
		ID:              r.nextID,
		Name:            name,
		TotalShares:     totalShares,
		SharesAvailable: totalShares,
	}
	r.nextID++
	r.properties[property.ID] = property
	return *property
}

// GetProperty returns a copy of the property with the given id, and whether
// it exists.
func (r *PropertyRegistry) GetProperty(id models.PropertyID) (models.Property, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	property, ok := r.properties[id]
	if !ok {
		return models.Property{}, false
	}
	return *property, true
}

// get returns the mutable property record. The engine lock must be held.
func (r *PropertyRegistry) get(id models.PropertyID) (*models.Property, bool) {
	property, ok := r.properties[id]
	return property, ok
}
