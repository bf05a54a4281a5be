package entities

// Location is a named service area used for zone matching. Static
// reference data.
//
// Storage model (DynamoDB, table locations): PK id.
type Location struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Province   string `json:"province"`
	PostalCode string `json:"postal_code,omitempty"`
}
