package entities

import "time"

// QuoteStatus is the lifecycle state of a carrier's bid. Both accepted
// and rejected are terminal; a quote may only be withdrawn (deleted)
// while pending.
type QuoteStatus string

const (
	QuoteStatusPending  QuoteStatus = "pending"
	QuoteStatusAccepted QuoteStatus = "accepted"
	QuoteStatusRejected QuoteStatus = "rejected"
)

// Quote is a carrier's bid on a freight request.
//
// Storage model (DynamoDB, table quotes):
//   - PK: id
//   - GSI request_id-index: request_id
//   - GSI carrier_id-index: carrier_id
//
// Invariant: for a given request at most one quote is accepted at any
// time; the acceptance transaction rejects every sibling atomically.
type Quote struct {
	ID             string      `json:"id"`
	RequestID      string      `json:"request_id"`
	CarrierID      string      `json:"carrier_id"`
	EstimatedPrice float64     `json:"estimated_price"`
	Comment        string      `json:"comment,omitempty"`
	Status         QuoteStatus `json:"status"`
	CreatedAt      time.Time   `json:"created_at"`
}
