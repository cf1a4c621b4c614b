package response

import "collecte_service/internal/usecase"

type AvailableStoreResponse struct {
	StoreID    string `json:"store_id"`
	StoreName  string `json:"store_name"`
	CampaignID string `json:"campaign_id"`
	ImageURL   string `json:"image_url,omitempty"`
}

func FromAvailableStores(views []usecase.AvailableStoreView) []AvailableStoreResponse {
	out := make([]AvailableStoreResponse, 0, len(views))
	for _, v := range views {
		out = append(out, AvailableStoreResponse{
			StoreID:    v.StoreID.String(),
			StoreName:  v.StoreName,
			CampaignID: v.CampaignID.String(),
			ImageURL:   v.ImageURL,
		})
	}
	return out
}
