package response

import "collecte_service/internal/domain/entities"

type ProductResponse struct {
	Reference string `json:"reference"`
	Family    string `json:"family"`
	SubFamily string `json:"sub_family,omitempty"`
	IsActive  bool   `json:"is_active"`
}

func FromProduct(p entities.Product) ProductResponse {
	return ProductResponse{
		Reference: p.Reference,
		Family:    p.Family,
		SubFamily: p.SubFamily,
		IsActive:  p.IsActive,
	}
}

func FromProducts(products []entities.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, FromProduct(p))
	}
	return out
}
