package models

// Listing is an offer to sell shares of a property at a fixed per-share
// price. Listings carry no id of their own; a listing is identified by its
// position in the order book and its fields.
type Listing struct {
	PropertyID    PropertyID `json:"property_id"`
	Seller        string     `json:"seller"`
	Amount        uint64     `json:"amount"` // Remaining shares for sale; the listing disappears at 0
	PricePerShare uint64     `json:"price_per_share"`
}
