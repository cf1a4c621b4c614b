package response

import (
	"time"

	"collecte_service/internal/domain/entities"
	"collecte_service/internal/usecase"
)

type AuthorizationResponse struct {
	ID         string    `json:"id"`
	CampaignID string    `json:"campaign_id"`
	StoreID    string    `json:"store_id"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func FromAuthorization(a entities.CampaignStoreAuthorization) AuthorizationResponse {
	return AuthorizationResponse{
		ID:         a.ID.String(),
		CampaignID: a.CampaignID.String(),
		StoreID:    a.StoreID.String(),
		Status:     string(a.Status),
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

type StoreAuthorizationViewResponse struct {
	StoreID   string `json:"store_id"`
	StoreName string `json:"store_name"`
	Address   string `json:"address"`
	Status    string `json:"status"`
}

func FromStoreAuthorizationViews(views []usecase.StoreAuthorizationView) []StoreAuthorizationViewResponse {
	out := make([]StoreAuthorizationViewResponse, 0, len(views))
	for _, v := range views {
		out = append(out, StoreAuthorizationViewResponse{
			StoreID:   v.StoreID.String(),
			StoreName: v.StoreName,
			Address:   v.Address,
			Status:    string(v.Status),
		})
	}
	return out
}
