package request

import (
	"time"

	"freightmarket/internal/usecase"
)

// FreightCreateRequest is the payload for posting a new freight request.
type FreightCreateRequest struct {
	OriginLocationID      string  `json:"origin_location_id" binding:"required"`
	DestinationLocationID string  `json:"destination_location_id" binding:"required"`
	OriginAddress         string  `json:"origin_address" binding:"required"`
	DestinationAddress    string  `json:"destination_address" binding:"required"`
	CargoDetails          string  `json:"cargo_details" binding:"required"`
	Measurements          string  `json:"measurements"`
	WeightKg              int     `json:"weight_kg"`
	PickupTime            *string `json:"pickup_time"`
}

func (r FreightCreateRequest) ToInput() (usecase.CreateFreightInput, error) {
	in := usecase.CreateFreightInput{
		OriginLocationID:      r.OriginLocationID,
		DestinationLocationID: r.DestinationLocationID,
		OriginAddress:         r.OriginAddress,
		DestinationAddress:    r.DestinationAddress,
		CargoDetails:          r.CargoDetails,
		Measurements:          r.Measurements,
		WeightKg:              r.WeightKg,
	}
	if r.PickupTime != nil && *r.PickupTime != "" {
		t, err := time.Parse(time.RFC3339, *r.PickupTime)
		if err != nil {
			return usecase.CreateFreightInput{}, err
		}
		in.PickupTime = &t
	}
	return in, nil
}

// FreightUpdateRequest carries partial edits to an open freight request.
// Absent fields stay untouched; pickup_time set to "" clears the value.
type FreightUpdateRequest struct {
	OriginAddress      *string `json:"origin_address"`
	DestinationAddress *string `json:"destination_address"`
	CargoDetails       *string `json:"cargo_details"`
	Measurements       *string `json:"measurements"`
	WeightKg           *int    `json:"weight_kg"`
	PickupTime         *string `json:"pickup_time"`
}

func (r FreightUpdateRequest) ToUpdate() (usecase.FreightUpdate, error) {
	up := usecase.FreightUpdate{
		OriginAddress:      r.OriginAddress,
		DestinationAddress: r.DestinationAddress,
		CargoDetails:       r.CargoDetails,
		Measurements:       r.Measurements,
		WeightKg:           r.WeightKg,
	}
	if r.PickupTime != nil {
		if *r.PickupTime == "" {
			up.ClearPickupTime = true
		} else {
			t, err := time.Parse(time.RFC3339, *r.PickupTime)
			if err != nil {
				return usecase.FreightUpdate{}, err
			}
			up.PickupTime = &t
		}
	}
	return up, nil
}
