package response

import "collecte_service/internal/domain/entities"

type CenterResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Address    string `json:"address,omitempty"`
	City       string `json:"city,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	IsActive   bool   `json:"is_active"`
}

func FromCenter(c entities.Center) CenterResponse {
	return CenterResponse{
		ID:         c.ID.String(),
		Name:       c.Name,
		Address:    c.Address,
		City:       c.City,
		PostalCode: c.PostalCode,
		IsActive:   c.IsActive,
	}
}

func FromCenters(centers []entities.Center) []CenterResponse {
	out := make([]CenterResponse, 0, len(centers))
	for _, c := range centers {
		out = append(out, FromCenter(c))
	}
	return out
}
