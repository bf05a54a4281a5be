package request

import "freightmarket/internal/usecase"

// QuoteSubmitRequest is a carrier's bid on an open freight request.
type QuoteSubmitRequest struct {
	RequestID      string  `json:"request_id" binding:"required"`
	EstimatedPrice float64 `json:"estimated_price" binding:"required"`
	Comment        string  `json:"comment"`
}

func (r QuoteSubmitRequest) ToInput() usecase.SubmitQuoteInput {
	return usecase.SubmitQuoteInput{
		RequestID:      r.RequestID,
		EstimatedPrice: r.EstimatedPrice,
		Comment:        r.Comment,
	}
}
