package interfaces

import (
	"context"

	"collecte_service/internal/domain/entities"
)

// CampaignFilter narrows List. Zero values mean "no filter".
type CampaignFilter struct {
	Year   int
	Status entities.CampaignStatus
}

// ICampaignRepository abstracts DynamoDB persistence for Campaign.
//
// Create must enforce one-campaign-per-year at the storage boundary and
// return ErrDuplicateKey when a campaign for the year already exists.

type ICampaignRepository interface {
	Create(ctx context.Context, c entities.Campaign) (entities.Campaign, error)
	Save(ctx context.Context, c entities.Campaign) (entities.Campaign, error)
	GetByID(ctx context.Context, id entities.CampaignID) (entities.Campaign, error)
	GetByYear(ctx context.Context, year int) (entities.Campaign, error)
	List(ctx context.Context, filter CampaignFilter) ([]entities.Campaign, error)
}
