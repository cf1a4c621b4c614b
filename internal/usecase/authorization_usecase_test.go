package usecase

import (
	"context"
	"errors"
	"testing"

	"collecte_service/internal/domain/entities"
	mock_interfaces "collecte_service/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type authorizationMocks struct {
	authorizations *mock_interfaces.MockIAuthorizationRepository
	campaigns      *mock_interfaces.MockICampaignRepository
	stores         *mock_interfaces.MockIStoreRepository
}

func newAuthorizationUseCase(ctrl *gomock.Controller) (*AuthorizationUseCase, authorizationMocks) {
	m := authorizationMocks{
		authorizations: mock_interfaces.NewMockIAuthorizationRepository(ctrl),
		campaigns:      mock_interfaces.NewMockICampaignRepository(ctrl),
		stores:         mock_interfaces.NewMockIStoreRepository(ctrl),
	}
	return NewAuthorizationUseCase(m.authorizations, m.campaigns, m.stores), m
}

func (m authorizationMocks) expectValidPair() {
	m.campaigns.EXPECT().GetByID(gomock.Any(), entities.CampaignID(testCampaignID)).Return(acceptingCampaign(), nil)
	m.stores.EXPECT().GetByID(gomock.Any(), entities.StoreID(testStoreID)).Return(availableStore(), nil)
}

func TestAuthorizationUseCase_Authorize(t *testing.T) {
	t.Run("unknown campaign", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAuthorizationUseCase(ctrl)

		m.campaigns.EXPECT().GetByID(gomock.Any(), entities.CampaignID(testCampaignID)).Return(entities.Campaign{}, nil)

		err := uc.Authorize(context.Background(), testCampaignID, testStoreID)
		if !errors.Is(err, ErrCampaignNotFound) {
			t.Fatalf("expected ErrCampaignNotFound, got %v", err)
		}
	})

	t.Run("first call creates an active record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAuthorizationUseCase(ctrl)

		m.expectValidPair()
		m.authorizations.EXPECT().GetByCampaignAndStore(gomock.Any(), entities.CampaignID(testCampaignID), entities.StoreID(testStoreID)).Return(entities.CampaignStoreAuthorization{}, nil)
		m.authorizations.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.CampaignStoreAuthorization{})).DoAndReturn(
			func(_ context.Context, a entities.CampaignStoreAuthorization) (entities.CampaignStoreAuthorization, error) {
				if a.ID == "" || a.Status != entities.AuthorizationStatusActive {
					t.Fatalf("unexpected authorization: %+v", a)
				}
				return a, nil
			},
		)

		if err := uc.Authorize(context.Background(), testCampaignID, testStoreID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("repeat call on active record is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAuthorizationUseCase(ctrl)

		m.expectValidPair()
		active := entities.NewActiveAuthorization(entities.CampaignID(testCampaignID), entities.StoreID(testStoreID))
		m.authorizations.EXPECT().GetByCampaignAndStore(gomock.Any(), gomock.Any(), gomock.Any()).Return(active, nil)

		if err := uc.Authorize(context.Background(), testCampaignID, testStoreID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("reactivates an inactive record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAuthorizationUseCase(ctrl)

		m.expectValidPair()
		inactive := entities.NewActiveAuthorization(entities.CampaignID(testCampaignID), entities.StoreID(testStoreID))
		inactive.Deactivate()
		m.authorizations.EXPECT().GetByCampaignAndStore(gomock.Any(), gomock.Any(), gomock.Any()).Return(inactive, nil)
		m.authorizations.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.CampaignStoreAuthorization{})).DoAndReturn(
			func(_ context.Context, a entities.CampaignStoreAuthorization) (entities.CampaignStoreAuthorization, error) {
				if a.Status != entities.AuthorizationStatusActive {
					t.Fatalf("expected ACTIVE, got %s", a.Status)
				}
				if a.ID != inactive.ID {
					t.Fatalf("expected the same record, got %s", a.ID)
				}
				return a, nil
			},
		)

		if err := uc.Authorize(context.Background(), testCampaignID, testStoreID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestAuthorizationUseCase_Deactivate(t *testing.T) {
	t.Run("absent record is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAuthorizationUseCase(ctrl)

		m.expectValidPair()
		m.authorizations.EXPECT().GetByCampaignAndStore(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.CampaignStoreAuthorization{}, nil)

		if err := uc.Deactivate(context.Background(), testCampaignID, testStoreID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("active record is deactivated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAuthorizationUseCase(ctrl)

		m.expectValidPair()
		active := entities.NewActiveAuthorization(entities.CampaignID(testCampaignID), entities.StoreID(testStoreID))
		m.authorizations.EXPECT().GetByCampaignAndStore(gomock.Any(), gomock.Any(), gomock.Any()).Return(active, nil)
		m.authorizations.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.CampaignStoreAuthorization{})).DoAndReturn(
			func(_ context.Context, a entities.CampaignStoreAuthorization) (entities.CampaignStoreAuthorization, error) {
				if a.Status != entities.AuthorizationStatusInactive {
					t.Fatalf("expected INACTIVE, got %s", a.Status)
				}
				return a, nil
			},
		)

		if err := uc.Deactivate(context.Background(), testCampaignID, testStoreID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestAuthorizationUseCase_ListForCenterCampaign(t *testing.T) {
	t.Run("classifies every store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAuthorizationUseCase(ctrl)

		authorized := availableStore()
		never := availableStore()
		never.ID = entities.StoreID("77777777-7777-7777-7777-777777777777")
		never.Name = "Carrefour Sud"

		m.stores.EXPECT().ListByCenter(gomock.Any(), entities.CenterID(testCenterID)).Return([]entities.Store{authorized, never}, nil)
		m.authorizations.EXPECT().ListByCampaign(gomock.Any(), entities.CampaignID(testCampaignID)).Return([]entities.CampaignStoreAuthorization{
			entities.NewActiveAuthorization(entities.CampaignID(testCampaignID), authorized.ID),
		}, nil)

		views, err := uc.ListForCenterCampaign(context.Background(), testCampaignID, testCenterID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(views) != 2 {
			t.Fatalf("expected 2 views, got %d", len(views))
		}
		if views[0].Status != entities.AuthorizationStatusActive {
			t.Fatalf("expected ACTIVE for authorized store, got %s", views[0].Status)
		}
		if views[1].Status != entities.AuthorizationStatusNone {
			t.Fatalf("expected NONE for untouched store, got %s", views[1].Status)
		}
	})
}
