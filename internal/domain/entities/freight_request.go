package entities

import "time"

// FreightStatus is the lifecycle state of a freight request.
//
// Lifecycle:
//
//	without_carrier -> pending -> en_route -> completed
//
// cancelled is reachable from without_carrier (client), pending and
// en_route (assigned carrier). completed and cancelled are terminal;
// there is no reopening path after a carrier cancellation.
type FreightStatus string

const (
	FreightStatusWithoutCarrier FreightStatus = "without_carrier"
	FreightStatusPending        FreightStatus = "pending"
	FreightStatusEnRoute        FreightStatus = "en_route"
	FreightStatusCompleted      FreightStatus = "completed"
	FreightStatusCancelled      FreightStatus = "cancelled"
)

// ValidFreightStatus reports whether s is one of the closed set of states.
func ValidFreightStatus(s string) bool {
	switch FreightStatus(s) {
	case FreightStatusWithoutCarrier, FreightStatusPending, FreightStatusEnRoute,
		FreightStatusCompleted, FreightStatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no transition leaves this state.
func (s FreightStatus) Terminal() bool {
	return s == FreightStatusCompleted || s == FreightStatusCancelled
}

// Assigned reports whether an accepted quote is bound to the request in
// this state. Invariant: AcceptedQuoteID != "" exactly in these states.
func (s FreightStatus) Assigned() bool {
	return s == FreightStatusPending || s == FreightStatusEnRoute || s == FreightStatusCompleted
}

// FreightRequest is a client's shipment job posting.
//
// Storage model (DynamoDB, table freight_requests):
//   - PK: id
//   - GSI status-index: status
//   - GSI client_id-index: client_id
type FreightRequest struct {
	ID                    string        `json:"id"`
	ClientID              string        `json:"client_id"`
	AcceptedQuoteID       string        `json:"accepted_quote_id,omitempty"`
	OriginLocationID      string        `json:"origin_location_id"`
	DestinationLocationID string        `json:"destination_location_id"`
	OriginAddress         string        `json:"origin_address"`
	DestinationAddress    string        `json:"destination_address"`
	CargoDetails          string        `json:"cargo_details"`
	Measurements          string        `json:"measurements,omitempty"`
	WeightKg              int           `json:"weight_kg,omitempty"`
	PhotoRef              string        `json:"photo_ref,omitempty"`
	PickupTime            *time.Time    `json:"pickup_time,omitempty"`
	Status                FreightStatus `json:"status"`
	CreatedAt             time.Time     `json:"created_at"`
	UpdatedAt             time.Time     `json:"updated_at"`
	Deleted               bool          `json:"deleted,omitempty"`
}

// InZones reports whether the request's origin or destination falls in
// the given covered-zone set.
func (f FreightRequest) InZones(zones map[string]struct{}) bool {
	if _, ok := zones[f.OriginLocationID]; ok {
		return true
	}
	_, ok := zones[f.DestinationLocationID]
	return ok
}
