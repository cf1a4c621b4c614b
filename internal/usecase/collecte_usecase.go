package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"collecte_service/internal/domain/entities"
	"collecte_service/internal/usecase/interfaces"
)

var (
	ErrEntryNotFound            = errors.New("collecte entry not found")
	ErrUnauthorizedCenterAccess = errors.New("store does not belong to the volunteer's center")
	ErrCampaignClosedForEntries = errors.New("campaign no longer accepts entries")
)

type CreateEntryInput struct {
	CampaignID   string
	StoreID      string
	UserID       string
	UserCenterID string
}

type AddItemInput struct {
	ProductRef string
	WeightKg   float64
}

// ICollecteUseCase is the volunteer write path: open a draft, record weighed
// items, validate.
//
// Note on authorization: this path does not re-check
// CampaignStoreAuthorization. Authorization filters which stores are
// surfaced to the volunteer (IVolunteerUseCase); the write path trusts that
// listing.

type ICollecteUseCase interface {
	CreateEntry(ctx context.Context, input CreateEntryInput) (entities.CollecteEntry, error)
	AddItem(ctx context.Context, entryID string, input AddItemInput) (entities.CollecteEntry, error)
	RemoveItem(ctx context.Context, entryID string, index int) (entities.CollecteEntry, error)
	Validate(ctx context.Context, entryID string) (entities.CollecteEntry, error)
	GetEntry(ctx context.Context, entryID string) (entities.CollecteEntry, error)
	ListEntries(ctx context.Context, filter interfaces.EntryFilter) ([]entities.CollecteEntry, error)
}

type CollecteUseCase struct {
	entries   interfaces.ICollecteEntryRepository
	stores    interfaces.IStoreRepository
	centers   interfaces.ICenterRepository
	campaigns interfaces.ICampaignRepository
	products  interfaces.IProductRepository
}

var _ ICollecteUseCase = (*CollecteUseCase)(nil)

func NewCollecteUseCase(entries interfaces.ICollecteEntryRepository, stores interfaces.IStoreRepository, centers interfaces.ICenterRepository, campaigns interfaces.ICampaignRepository, products interfaces.IProductRepository) *CollecteUseCase {
	return &CollecteUseCase{entries: entries, stores: stores, centers: centers, campaigns: campaigns, products: products}
}

// CreateEntry runs the full cross-entity gate, then opens a draft. Creating
// again while a draft is open returns the existing draft unchanged, so the
// operation is safely re-invocable from a flaky client.
func (u *CollecteUseCase) CreateEntry(ctx context.Context, input CreateEntryInput) (entities.CollecteEntry, error) {
	campaignID, err := entities.ParseCampaignID(input.CampaignID)
	if err != nil {
		return entities.CollecteEntry{}, err
	}
	storeID, err := entities.ParseStoreID(input.StoreID)
	if err != nil {
		return entities.CollecteEntry{}, err
	}
	userID, err := entities.ParseUserID(input.UserID)
	if err != nil {
		return entities.CollecteEntry{}, err
	}
	userCenterID, err := entities.ParseCenterID(input.UserCenterID)
	if err != nil {
		return entities.CollecteEntry{}, err
	}

	store, err := u.stores.GetByID(ctx, storeID)
	if err != nil {
		return entities.CollecteEntry{}, err
	}
	if store.ID == "" {
		return entities.CollecteEntry{}, ErrStoreNotFound
	}

	// A volunteer records only for their own center's stores.
	if store.CenterID != userCenterID {
		return entities.CollecteEntry{}, ErrUnauthorizedCenterAccess
	}

	center, err := u.centers.GetByID(ctx, userCenterID)
	if err != nil {
		return entities.CollecteEntry{}, err
	}
	if center.ID == "" {
		return entities.CollecteEntry{}, ErrCenterNotFound
	}
	// An inactive center blocks new entries center-wide.
	if err := center.AssertActive(); err != nil {
		return entities.CollecteEntry{}, err
	}

	campaign, err := u.campaigns.GetByID(ctx, campaignID)
	if err != nil {
		return entities.CollecteEntry{}, err
	}
	if campaign.ID == "" {
		return entities.CollecteEntry{}, ErrCampaignNotFound
	}
	if !campaign.CanAcceptEntries(time.Now().UTC()) {
		return entities.CollecteEntry{}, ErrCampaignClosedForEntries
	}

	existing, err := u.entries.FindOpenDraft(ctx, campaignID, storeID, userID)
	if err != nil {
		return entities.CollecteEntry{}, err
	}
	if existing.ID != "" {
		return existing, nil
	}

	entry := entities.NewCollecteEntry(campaignID, storeID, userCenterID, userID)
	created, err := u.entries.CreateDraft(ctx, *entry)
	if err != nil {
		// A concurrent request won the draft reservation; resume its draft.
		if errors.Is(err, interfaces.ErrDuplicateKey) {
			log.Printf("[collecte][usecase] draft race for campaign=%s store=%s user=%s, resuming existing", campaignID, storeID, userID)
			winner, ferr := u.entries.FindOpenDraft(ctx, campaignID, storeID, userID)
			if ferr != nil {
				return entities.CollecteEntry{}, ferr
			}
			// The winning draft may already be validated by the time we
			// refetch it; never hand back an empty entry as success.
			if winner.ID == "" {
				return entities.CollecteEntry{}, ErrEntryNotFound
			}
			return winner, nil
		}
		return entities.CollecteEntry{}, err
	}
	return created, nil
}

// AddItem resolves the product and snapshots its catalog metadata into the
// entry; later catalog edits never rewrite recorded items.
func (u *CollecteUseCase) AddItem(ctx context.Context, entryID string, input AddItemInput) (entities.CollecteEntry, error) {
	entry, err := u.load(ctx, entryID)
	if err != nil {
		return entities.CollecteEntry{}, err
	}

	product, err := u.products.GetByReference(ctx, input.ProductRef)
	if err != nil {
		return entities.CollecteEntry{}, err
	}
	if product.Reference == "" {
		return entities.CollecteEntry{}, ErrProductNotFound
	}
	if !product.IsActive {
		return entities.CollecteEntry{}, entities.ErrProductArchived
	}

	if err := entry.AddItem(product.Reference, product.Family, product.SubFamily, input.WeightKg); err != nil {
		return entities.CollecteEntry{}, err
	}
	return u.entries.Save(ctx, entry)
}

func (u *CollecteUseCase) RemoveItem(ctx context.Context, entryID string, index int) (entities.CollecteEntry, error) {
	entry, err := u.load(ctx, entryID)
	if err != nil {
		return entities.CollecteEntry{}, err
	}
	if err := entry.RemoveItem(index); err != nil {
		return entities.CollecteEntry{}, err
	}
	return u.entries.Save(ctx, entry)
}

func (u *CollecteUseCase) Validate(ctx context.Context, entryID string) (entities.CollecteEntry, error) {
	entry, err := u.load(ctx, entryID)
	if err != nil {
		return entities.CollecteEntry{}, err
	}
	if err := entry.Validate(); err != nil {
		return entities.CollecteEntry{}, err
	}
	return u.entries.Save(ctx, entry)
}

func (u *CollecteUseCase) GetEntry(ctx context.Context, entryID string) (entities.CollecteEntry, error) {
	return u.load(ctx, entryID)
}

func (u *CollecteUseCase) ListEntries(ctx context.Context, filter interfaces.EntryFilter) ([]entities.CollecteEntry, error) {
	return u.entries.List(ctx, filter)
}

func (u *CollecteUseCase) load(ctx context.Context, entryID string) (entities.CollecteEntry, error) {
	id, err := entities.ParseEntryID(entryID)
	if err != nil {
		return entities.CollecteEntry{}, err
	}
	entry, err := u.entries.GetByID(ctx, id)
	if err != nil {
		return entities.CollecteEntry{}, err
	}
	if entry.ID == "" {
		return entities.CollecteEntry{}, ErrEntryNotFound
	}
	return entry, nil
}
