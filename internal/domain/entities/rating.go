package entities

import "time"

// Rating is post-completion feedback, at most one per freight request.
//
// Storage model (DynamoDB, table ratings):
//   - PK: request_id
//
// The request id doubles as the primary key so the one-rating-per-request
// invariant is a plain attribute_not_exists condition on insert.
type Rating struct {
	ID        string    `json:"id"`
	RequestID string    `json:"request_id"`
	ClientID  string    `json:"client_id"`
	CarrierID string    `json:"carrier_id"`
	Score     int       `json:"score"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	Deleted   bool      `json:"deleted,omitempty"`
}

const (
	MinRatingScore = 1
	MaxRatingScore = 5
)
