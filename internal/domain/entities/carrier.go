package entities

import "time"

// Carrier is a user offering transport capacity over a set of zones.
//
// Storage model (DynamoDB, table carriers):
//   - PK: id
//   - GSI user_id-index: user_id
//
// RatingSum and RatingCount are a cached aggregate over the carrier's
// ratings, updated in the same transaction as each rating insert. The
// average is always derived from them, never stored, so the cached pair
// can not drift from the underlying rows.
type Carrier struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Description  string    `json:"description,omitempty"`
	VehicleType  string    `json:"vehicle_type"`
	VehiclePlate string    `json:"vehicle_plate"`
	VehicleModel string    `json:"vehicle_model,omitempty"`
	CapacityKg   int       `json:"capacity_kg,omitempty"`
	RatingSum    float64   `json:"rating_sum"`
	RatingCount  int       `json:"rating_count"`
	ZoneIDs      []string  `json:"zone_ids"`
	CreatedAt    time.Time `json:"created_at"`
}

// AverageRating derives the running average; 0 when unrated.
func (c Carrier) AverageRating() float64 {
	if c.RatingCount == 0 {
		return 0
	}
	return c.RatingSum / float64(c.RatingCount)
}

// ZoneSet returns the covered zones as a membership set.
func (c Carrier) ZoneSet() map[string]struct{} {
	set := make(map[string]struct{}, len(c.ZoneIDs))
	for _, id := range c.ZoneIDs {
		set[id] = struct{}{}
	}
	return set
}
