package models

import "time"

// FeedRecord is one row of the supplier stock workbook. Code is always a
// string even when the sheet stores it as a number, so it can be compared
// against marketplace offer ids.
type FeedRecord struct {
	Code     string `json:"code"`
	Quantity string `json:"quantity"`
	Price    string `json:"price"`
}

// StockUpdate is the per-offer stock state pushed to a marketplace.
// WarehouseID and UpdatedAt are only set for targets that ship from a
// named warehouse.
type StockUpdate struct {
	OfferID     string    `json:"offer_id"`
	Quantity    int       `json:"quantity"`
	WarehouseID string    `json:"warehouse_id,omitempty"`
	UpdatedAt   time.Time `json:"updated_at,omitempty"`
}

// PriceUpdate is the per-offer price pushed to a marketplace. Amount is in
// whole currency units, fractional part already discarded.
type PriceUpdate struct {
	OfferID  string `json:"offer_id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// ItemError is a per-offer error reported inside an otherwise successful
// submission response.
type ItemError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SubmissionResult is the normalized outcome of one batch submission. A 2xx
// response may still carry per-item errors.
type SubmissionResult struct {
	Success bool        `json:"success"`
	Errors  []ItemError `json:"errors,omitempty"`
}
