package interfaces

import (
	"context"

	"collecte_service/internal/domain/entities"
)

// EntryFilter narrows List. Zero values mean "no filter".
type EntryFilter struct {
	CampaignID entities.CampaignID
	StoreID    entities.StoreID
	CreatedBy  entities.UserID
}

// ICollecteEntryRepository abstracts DynamoDB persistence for CollecteEntry.
//
// CreateDraft must enforce "at most one IN_PROGRESS entry per
// (campaign, store, user)" at the storage boundary and return
// ErrDuplicateKey when an open draft already exists for the triple; Save
// releases that reservation once the entry is validated.

type ICollecteEntryRepository interface {
	CreateDraft(ctx context.Context, e entities.CollecteEntry) (entities.CollecteEntry, error)
	Save(ctx context.Context, e entities.CollecteEntry) (entities.CollecteEntry, error)
	GetByID(ctx context.Context, id entities.EntryID) (entities.CollecteEntry, error)
	FindOpenDraft(ctx context.Context, campaignID entities.CampaignID, storeID entities.StoreID, createdBy entities.UserID) (entities.CollecteEntry, error)
	List(ctx context.Context, filter EntryFilter) ([]entities.CollecteEntry, error)
}
