package response

import (
	"testing"
	"time"

	"freightmarket/internal/domain/entities"
)

func TestFromFreight(t *testing.T) {
	now := time.Now().UTC()
	pickup := now.Add(48 * time.Hour)
	f := entities.FreightRequest{
		ID:                    "f-1",
		ClientID:              "u-1",
		AcceptedQuoteID:       "q-1",
		OriginLocationID:      "z-1",
		DestinationLocationID: "z-2",
		OriginAddress:         "Av. Corrientes 1234",
		DestinationAddress:    "Calle 50 742",
		CargoDetails:          "sofa",
		WeightKg:              85,
		PhotoRef:              "ref-1",
		PickupTime:            &pickup,
		Status:                entities.FreightStatusPending,
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	res := FromFreight(f)
	if res.ID != "f-1" || res.AcceptedQuoteID != "q-1" || res.Status != "pending" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.PickupTime == nil || !res.PickupTime.Equal(pickup) {
		t.Fatalf("unexpected pickup time: %v", res.PickupTime)
	}
	if !res.CreatedAt.Equal(now) || !res.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
}

func TestFromCarrier_DerivesAverage(t *testing.T) {
	c := entities.Carrier{ID: "c-1", RatingSum: 19, RatingCount: 5}
	res := FromCarrier(c)
	if res.AverageRating != 3.8 || res.RatingCount != 5 {
		t.Fatalf("unexpected aggregate: %+v", res)
	}

	unrated := FromCarrier(entities.Carrier{ID: "c-2"})
	if unrated.AverageRating != 0 {
		t.Fatalf("unrated carrier average should be 0, got %v", unrated.AverageRating)
	}
}
