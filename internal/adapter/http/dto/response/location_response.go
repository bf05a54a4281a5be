package response

import "freightmarket/internal/domain/entities"

type LocationResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Province   string `json:"province,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
}

func FromLocation(l entities.Location) LocationResponse {
	return LocationResponse(l)
}

func FromLocations(ls []entities.Location) []LocationResponse {
	out := make([]LocationResponse, 0, len(ls))
	for _, l := range ls {
		out = append(out, FromLocation(l))
	}
	return out
}
