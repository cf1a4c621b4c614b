package usecase

import (
	"context"
	"time"

	"collecte_service/internal/domain/entities"
	"collecte_service/internal/usecase/interfaces"
)

// AvailableStoreView is one store a volunteer may pick to record a
// collection for.
type AvailableStoreView struct {
	StoreID    entities.StoreID
	StoreName  string
	CampaignID entities.CampaignID
	ImageURL   string
}

// IVolunteerUseCase is the volunteer read path. The entry-creation write
// path trusts this listing: a store is only surfaced when it is AVAILABLE,
// belongs to the volunteer's center, and holds an ACTIVE authorization for
// a campaign currently accepting entries.

type IVolunteerUseCase interface {
	ListAvailableStores(ctx context.Context, userID string) ([]AvailableStoreView, error)
}

type VolunteerUseCase struct {
	users          interfaces.IUserRepository
	campaigns      interfaces.ICampaignRepository
	stores         interfaces.IStoreRepository
	authorizations interfaces.IAuthorizationRepository
}

var _ IVolunteerUseCase = (*VolunteerUseCase)(nil)

func NewVolunteerUseCase(users interfaces.IUserRepository, campaigns interfaces.ICampaignRepository, stores interfaces.IStoreRepository, authorizations interfaces.IAuthorizationRepository) *VolunteerUseCase {
	return &VolunteerUseCase{users: users, campaigns: campaigns, stores: stores, authorizations: authorizations}
}

// ListAvailableStores never errors on "nothing to show": a volunteer without
// a center, or outside any campaign window, simply gets an empty list.
func (u *VolunteerUseCase) ListAvailableStores(ctx context.Context, userID string) ([]AvailableStoreView, error) {
	id, err := entities.ParseUserID(userID)
	if err != nil {
		return nil, err
	}

	user, err := u.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.ID == "" || user.CenterID == "" {
		return []AvailableStoreView{}, nil
	}

	campaign, err := u.currentCampaign(ctx)
	if err != nil {
		return nil, err
	}
	if campaign.ID == "" {
		return []AvailableStoreView{}, nil
	}

	stores, err := u.stores.ListByCenter(ctx, user.CenterID)
	if err != nil {
		return nil, err
	}

	authorizations, err := u.authorizations.ListByCampaign(ctx, campaign.ID)
	if err != nil {
		return nil, err
	}
	authorized := make(map[entities.StoreID]bool, len(authorizations))
	for _, a := range authorizations {
		if a.IsActive() {
			authorized[a.StoreID] = true
		}
	}

	views := make([]AvailableStoreView, 0, len(stores))
	for i := range stores {
		s := &stores[i]
		if !s.IsAvailableForCollection() || !authorized[s.ID] {
			continue
		}
		views = append(views, AvailableStoreView{
			StoreID:    s.ID,
			StoreName:  s.Name,
			CampaignID: campaign.ID,
			ImageURL:   s.PrimaryImageURL(),
		})
	}
	return views, nil
}

func (u *VolunteerUseCase) currentCampaign(ctx context.Context) (entities.Campaign, error) {
	campaigns, err := u.campaigns.List(ctx, interfaces.CampaignFilter{})
	if err != nil {
		return entities.Campaign{}, err
	}
	now := time.Now().UTC()
	for i := range campaigns {
		if campaigns[i].CanAcceptEntries(now) {
			return campaigns[i], nil
		}
	}
	return entities.Campaign{}, nil
}
