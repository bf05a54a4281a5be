package response

import (
	"time"

	"freightmarket/internal/domain/entities"
)

type QuoteResponse struct {
	ID             string    `json:"id"`
	RequestID      string    `json:"request_id"`
	CarrierID      string    `json:"carrier_id"`
	EstimatedPrice float64   `json:"estimated_price"`
	Comment        string    `json:"comment,omitempty"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:             q.ID,
		RequestID:      q.RequestID,
		CarrierID:      q.CarrierID,
		EstimatedPrice: q.EstimatedPrice,
		Comment:        q.Comment,
		Status:         string(q.Status),
		CreatedAt:      q.CreatedAt,
	}
}

func FromQuotes(qs []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(qs))
	for _, q := range qs {
		out = append(out, FromQuote(q))
	}
	return out
}
