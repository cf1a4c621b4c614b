package interfaces

import (
	"context"

	"collecte_service/internal/domain/entities"
)

// IAuthorizationRepository abstracts DynamoDB persistence for
// CampaignStoreAuthorization. The table is keyed by (campaignId, storeId),
// so pair uniqueness is structural.

type IAuthorizationRepository interface {
	Save(ctx context.Context, a entities.CampaignStoreAuthorization) (entities.CampaignStoreAuthorization, error)
	GetByCampaignAndStore(ctx context.Context, campaignID entities.CampaignID, storeID entities.StoreID) (entities.CampaignStoreAuthorization, error)
	ListByCampaign(ctx context.Context, campaignID entities.CampaignID) ([]entities.CampaignStoreAuthorization, error)
}
