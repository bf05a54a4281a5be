package request

import "freightmarket/internal/usecase"

// RatingCreateRequest is the client's one-shot rating of a completed trip.
type RatingCreateRequest struct {
	RequestID string `json:"request_id" binding:"required"`
	Score     int    `json:"score" binding:"required"`
	Comment   string `json:"comment"`
}

func (r RatingCreateRequest) ToInput() usecase.CreateRatingInput {
	return usecase.CreateRatingInput{
		RequestID: r.RequestID,
		Score:     r.Score,
		Comment:   r.Comment,
	}
}
