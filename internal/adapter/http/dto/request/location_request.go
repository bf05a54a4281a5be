package request

// LocationCreateRequest adds a coverage zone to the catalog.
type LocationCreateRequest struct {
	Name       string `json:"name" binding:"required"`
	Province   string `json:"province"`
	PostalCode string `json:"postal_code"`
}
