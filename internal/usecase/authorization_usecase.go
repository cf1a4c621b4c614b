package usecase

import (
	"context"
	"errors"

	"collecte_service/internal/domain/entities"
	"collecte_service/internal/usecase/interfaces"
)

var ErrStoreNotAuthorized = errors.New("store is not authorized for this campaign")

// StoreAuthorizationView is the administrator projection of one center store
// against one campaign. Status is ACTIVE, INACTIVE or NONE, where NONE means
// no authorization record has ever existed for the pair.
type StoreAuthorizationView struct {
	StoreID   entities.StoreID
	StoreName string
	Address   string
	Status    entities.AuthorizationStatus
}

// IAuthorizationUseCase manages the (campaign, store) participation decision.
//
// Authorize and Deactivate are idempotent end to end: repeating either call
// leaves exactly one record in the requested state and never errors. This
// tolerates double-submission from the admin UI.

type IAuthorizationUseCase interface {
	Authorize(ctx context.Context, campaignID, storeID string) error
	Deactivate(ctx context.Context, campaignID, storeID string) error
	GetForStore(ctx context.Context, campaignID, storeID string) (entities.CampaignStoreAuthorization, error)
	ListForCenterCampaign(ctx context.Context, campaignID, centerID string) ([]StoreAuthorizationView, error)
}

type AuthorizationUseCase struct {
	authorizations interfaces.IAuthorizationRepository
	campaigns      interfaces.ICampaignRepository
	stores         interfaces.IStoreRepository
}

var _ IAuthorizationUseCase = (*AuthorizationUseCase)(nil)

func NewAuthorizationUseCase(authorizations interfaces.IAuthorizationRepository, campaigns interfaces.ICampaignRepository, stores interfaces.IStoreRepository) *AuthorizationUseCase {
	return &AuthorizationUseCase{authorizations: authorizations, campaigns: campaigns, stores: stores}
}

func (u *AuthorizationUseCase) Authorize(ctx context.Context, campaignID, storeID string) error {
	cID, sID, err := u.verifyPair(ctx, campaignID, storeID)
	if err != nil {
		return err
	}

	existing, err := u.authorizations.GetByCampaignAndStore(ctx, cID, sID)
	if err != nil {
		return err
	}

	if existing.ID == "" {
		_, err := u.authorizations.Save(ctx, entities.NewActiveAuthorization(cID, sID))
		return err
	}
	if existing.IsActive() {
		return nil
	}

	existing.Activate()
	_, err = u.authorizations.Save(ctx, existing)
	return err
}

func (u *AuthorizationUseCase) Deactivate(ctx context.Context, campaignID, storeID string) error {
	cID, sID, err := u.verifyPair(ctx, campaignID, storeID)
	if err != nil {
		return err
	}

	existing, err := u.authorizations.GetByCampaignAndStore(ctx, cID, sID)
	if err != nil {
		return err
	}
	// Nothing to deactivate is a no-op, not an error.
	if existing.ID == "" || !existing.IsActive() {
		return nil
	}

	existing.Deactivate()
	_, err = u.authorizations.Save(ctx, existing)
	return err
}

// GetForStore is the read-detail path: an absent record is surfaced as
// ErrStoreNotAuthorized rather than a NONE projection.
func (u *AuthorizationUseCase) GetForStore(ctx context.Context, campaignID, storeID string) (entities.CampaignStoreAuthorization, error) {
	cID, err := entities.ParseCampaignID(campaignID)
	if err != nil {
		return entities.CampaignStoreAuthorization{}, err
	}
	sID, err := entities.ParseStoreID(storeID)
	if err != nil {
		return entities.CampaignStoreAuthorization{}, err
	}

	existing, err := u.authorizations.GetByCampaignAndStore(ctx, cID, sID)
	if err != nil {
		return entities.CampaignStoreAuthorization{}, err
	}
	if existing.ID == "" {
		return entities.CampaignStoreAuthorization{}, ErrStoreNotAuthorized
	}
	return existing, nil
}

// ListForCenterCampaign classifies every store of the center into exactly one
// of ACTIVE, INACTIVE or NONE for the given campaign.
func (u *AuthorizationUseCase) ListForCenterCampaign(ctx context.Context, campaignID, centerID string) ([]StoreAuthorizationView, error) {
	cID, err := entities.ParseCampaignID(campaignID)
	if err != nil {
		return nil, err
	}
	centID, err := entities.ParseCenterID(centerID)
	if err != nil {
		return nil, err
	}

	stores, err := u.stores.ListByCenter(ctx, centID)
	if err != nil {
		return nil, err
	}

	authorizations, err := u.authorizations.ListByCampaign(ctx, cID)
	if err != nil {
		return nil, err
	}

	statusByStore := make(map[entities.StoreID]entities.AuthorizationStatus, len(authorizations))
	for _, a := range authorizations {
		statusByStore[a.StoreID] = a.Status
	}

	views := make([]StoreAuthorizationView, 0, len(stores))
	for _, s := range stores {
		status, ok := statusByStore[s.ID]
		if !ok {
			status = entities.AuthorizationStatusNone
		}
		views = append(views, StoreAuthorizationView{
			StoreID:   s.ID,
			StoreName: s.Name,
			Address:   s.Address,
			Status:    status,
		})
	}
	return views, nil
}

func (u *AuthorizationUseCase) verifyPair(ctx context.Context, campaignID, storeID string) (entities.CampaignID, entities.StoreID, error) {
	cID, err := entities.ParseCampaignID(campaignID)
	if err != nil {
		return "", "", err
	}
	sID, err := entities.ParseStoreID(storeID)
	if err != nil {
		return "", "", err
	}

	campaign, err := u.campaigns.GetByID(ctx, cID)
	if err != nil {
		return "", "", err
	}
	if campaign.ID == "" {
		return "", "", ErrCampaignNotFound
	}

	store, err := u.stores.GetByID(ctx, sID)
	if err != nil {
		return "", "", err
	}
	if store.ID == "" {
		return "", "", ErrStoreNotFound
	}
	return cID, sID, nil
}
