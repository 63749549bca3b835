package models

import "time"

// Trade records a settled marketplace purchase.
type Trade struct {
	ID            string     `json:"id"`
	PropertyID    PropertyID `json:"property_id"`
	Seller        string     `json:"seller"`
	Buyer         string     `json:"buyer"`
	Amount        uint64     `json:"amount"`
	PricePerShare uint64     `json:"price_per_share"`
	TotalPrice    uint64     `json:"total_price"`
	ExecutedAt    time.Time  `json:"executed_at"`
}
