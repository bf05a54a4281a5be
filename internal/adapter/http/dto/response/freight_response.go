package response

import (
	"time"

	"freightmarket/internal/domain/entities"
)

type FreightResponse struct {
	ID                    string     `json:"id"`
	ClientID              string     `json:"client_id"`
	AcceptedQuoteID       string     `json:"accepted_quote_id,omitempty"`
	OriginLocationID      string     `json:"origin_location_id"`
	DestinationLocationID string     `json:"destination_location_id"`
	OriginAddress         string     `json:"origin_address"`
	DestinationAddress    string     `json:"destination_address"`
	CargoDetails          string     `json:"cargo_details"`
	Measurements          string     `json:"measurements,omitempty"`
	WeightKg              int        `json:"weight_kg,omitempty"`
	PhotoRef              string     `json:"photo_ref,omitempty"`
	PickupTime            *time.Time `json:"pickup_time,omitempty"`
	Status                string     `json:"status"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

func FromFreight(f entities.FreightRequest) FreightResponse {
	return FreightResponse{
		ID:                    f.ID,
		ClientID:              f.ClientID,
		AcceptedQuoteID:       f.AcceptedQuoteID,
		OriginLocationID:      f.OriginLocationID,
		DestinationLocationID: f.DestinationLocationID,
		OriginAddress:         f.OriginAddress,
		DestinationAddress:    f.DestinationAddress,
		CargoDetails:          f.CargoDetails,
		Measurements:          f.Measurements,
		WeightKg:              f.WeightKg,
		PhotoRef:              f.PhotoRef,
		PickupTime:            f.PickupTime,
		Status:                string(f.Status),
		CreatedAt:             f.CreatedAt,
		UpdatedAt:             f.UpdatedAt,
	}
}

func FromFreights(fs []entities.FreightRequest) []FreightResponse {
	out := make([]FreightResponse, 0, len(fs))
	for _, f := range fs {
		out = append(out, FromFreight(f))
	}
	return out
}
