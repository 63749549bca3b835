package models

// PropertyID identifies a registered property. Ids are allocated
// sequentially starting at 1; 0 is never a valid id.
type PropertyID = uint64

// Property represents a real-estate asset divided into tradable shares.
type Property struct {
	ID              PropertyID `json:"id"`
	Name            string     `json:"name"`
	TotalShares     uint64     `json:"total_shares"`     // Fixed at registration, never changes
	SharesAvailable uint64     `json:"shares_available"` // Shares not yet issued to any owner
}
