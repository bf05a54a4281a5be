package response

import (
	"time"

	"freightmarket/internal/domain/entities"
)

type RatingResponse struct {
	ID        string    `json:"id"`
	RequestID string    `json:"request_id"`
	ClientID  string    `json:"client_id"`
	CarrierID string    `json:"carrier_id"`
	Score     int       `json:"score"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func FromRating(r entities.Rating) RatingResponse {
	return RatingResponse{
		ID:        r.ID,
		RequestID: r.RequestID,
		ClientID:  r.ClientID,
		CarrierID: r.CarrierID,
		Score:     r.Score,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}

func FromRatings(rs []entities.Rating) []RatingResponse {
	out := make([]RatingResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromRating(r))
	}
	return out
}
