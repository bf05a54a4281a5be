package request

import (
	"testing"
	"time"
)

func TestFreightCreateRequest_ToInput(t *testing.T) {
	pickup := "2026-09-12T09:30:00Z"
	r := FreightCreateRequest{
		OriginLocationID:      "z-1",
		DestinationLocationID: "z-2",
		OriginAddress:         "Av. Corrientes 1234",
		DestinationAddress:    "Calle 50 742",
		CargoDetails:          "sofa",
		WeightKg:              85,
		PickupTime:            &pickup,
	}

	in, err := r.ToInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.OriginLocationID != "z-1" || in.CargoDetails != "sofa" || in.WeightKg != 85 {
		t.Fatalf("unexpected input: %+v", in)
	}
	want := time.Date(2026, 9, 12, 9, 30, 0, 0, time.UTC)
	if in.PickupTime == nil || !in.PickupTime.Equal(want) {
		t.Fatalf("unexpected pickup time: %v", in.PickupTime)
	}

	bad := "next tuesday"
	r.PickupTime = &bad
	if _, err := r.ToInput(); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestFreightUpdateRequest_ToUpdate(t *testing.T) {
	cargo := "piano"
	r := FreightUpdateRequest{CargoDetails: &cargo}

	up, err := r.ToUpdate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if up.CargoDetails == nil || *up.CargoDetails != "piano" {
		t.Fatalf("unexpected update: %+v", up)
	}
	if up.OriginAddress != nil || up.ClearPickupTime {
		t.Fatalf("absent fields must stay nil: %+v", up)
	}

	empty := ""
	r2 := FreightUpdateRequest{PickupTime: &empty}
	up2, err := r2.ToUpdate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !up2.ClearPickupTime || up2.PickupTime != nil {
		t.Fatalf("empty pickup_time must clear the value: %+v", up2)
	}
}
