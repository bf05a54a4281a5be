package response

import (
	"time"

	"freightmarket/internal/domain/entities"
)

type CarrierResponse struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Description   string    `json:"description,omitempty"`
	VehicleType   string    `json:"vehicle_type"`
	VehiclePlate  string    `json:"vehicle_plate"`
	VehicleModel  string    `json:"vehicle_model,omitempty"`
	CapacityKg    int       `json:"capacity_kg,omitempty"`
	AverageRating float64   `json:"average_rating"`
	RatingCount   int       `json:"rating_count"`
	ZoneIDs       []string  `json:"zone_ids"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromCarrier(c entities.Carrier) CarrierResponse {
	return CarrierResponse{
		ID:            c.ID,
		UserID:        c.UserID,
		Description:   c.Description,
		VehicleType:   c.VehicleType,
		VehiclePlate:  c.VehiclePlate,
		VehicleModel:  c.VehicleModel,
		CapacityKg:    c.CapacityKg,
		AverageRating: c.AverageRating(),
		RatingCount:   c.RatingCount,
		ZoneIDs:       c.ZoneIDs,
		CreatedAt:     c.CreatedAt,
	}
}

func FromCarriers(cs []entities.Carrier) []CarrierResponse {
	out := make([]CarrierResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromCarrier(c))
	}
	return out
}
