package response

import (
	"time"

	"collecte_service/internal/domain/entities"
)

type EntryItemResponse struct {
	ProductRef string `json:"product_ref"`
	Family     string `json:"family"`
	SubFamily  string `json:"sub_family,omitempty"`
	WeightKg   int    `json:"weight_kg"`
}

type EntryResponse struct {
	ID            string              `json:"id"`
	CampaignID    string              `json:"campaign_id"`
	StoreID       string              `json:"store_id"`
	CenterID      string              `json:"center_id"`
	CreatedBy     string              `json:"created_by"`
	Status        string              `json:"status"`
	Items         []EntryItemResponse `json:"items"`
	TotalWeightKg int                 `json:"total_weight_kg"`
	CreatedAt     time.Time           `json:"created_at"`
	ValidatedAt   *time.Time          `json:"validated_at,omitempty"`
}

func FromEntry(e entities.CollecteEntry) EntryResponse {
	items := make([]EntryItemResponse, 0, len(e.Items))
	for _, item := range e.Items {
		items = append(items, EntryItemResponse{
			ProductRef: item.ProductRef,
			Family:     item.Family,
			SubFamily:  item.SubFamily,
			WeightKg:   item.WeightKg,
		})
	}
	return EntryResponse{
		ID:            e.ID.String(),
		CampaignID:    e.CampaignID.String(),
		StoreID:       e.StoreID.String(),
		CenterID:      e.CenterID.String(),
		CreatedBy:     e.CreatedBy.String(),
		Status:        string(e.Status),
		Items:         items,
		TotalWeightKg: e.TotalWeightKg(),
		CreatedAt:     e.CreatedAt,
		ValidatedAt:   e.ValidatedAt,
	}
}

func FromEntries(entries []entities.CollecteEntry) []EntryResponse {
	out := make([]EntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, FromEntry(e))
	}
	return out
}
