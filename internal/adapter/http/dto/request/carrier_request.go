package request

import "freightmarket/internal/usecase"

// CarrierCreateRequest registers the caller as a carrier.
type CarrierCreateRequest struct {
	Description  string   `json:"description"`
	VehicleType  string   `json:"vehicle_type" binding:"required"`
	VehiclePlate string   `json:"vehicle_plate" binding:"required"`
	VehicleModel string   `json:"vehicle_model"`
	CapacityKg   int      `json:"capacity_kg"`
	ZoneIDs      []string `json:"zone_ids"`
}

func (r CarrierCreateRequest) ToInput() usecase.CreateCarrierInput {
	return usecase.CreateCarrierInput{
		Description:  r.Description,
		VehicleType:  r.VehicleType,
		VehiclePlate: r.VehiclePlate,
		VehicleModel: r.VehicleModel,
		CapacityKg:   r.CapacityKg,
		ZoneIDs:      r.ZoneIDs,
	}
}

// CarrierZonesRequest replaces the caller's coverage zones.
type CarrierZonesRequest struct {
	ZoneIDs []string `json:"zone_ids" binding:"required"`
}
