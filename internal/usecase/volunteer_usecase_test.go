package usecase

import (
	"context"
	"errors"
	"testing"

	"collecte_service/internal/domain/entities"
	"collecte_service/internal/usecase/interfaces"
	mock_interfaces "collecte_service/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type volunteerMocks struct {
	users          *mock_interfaces.MockIUserRepository
	campaigns      *mock_interfaces.MockICampaignRepository
	stores         *mock_interfaces.MockIStoreRepository
	authorizations *mock_interfaces.MockIAuthorizationRepository
}

func newVolunteerUseCase(ctrl *gomock.Controller) (*VolunteerUseCase, volunteerMocks) {
	m := volunteerMocks{
		users:          mock_interfaces.NewMockIUserRepository(ctrl),
		campaigns:      mock_interfaces.NewMockICampaignRepository(ctrl),
		stores:         mock_interfaces.NewMockIStoreRepository(ctrl),
		authorizations: mock_interfaces.NewMockIAuthorizationRepository(ctrl),
	}
	return NewVolunteerUseCase(m.users, m.campaigns, m.stores, m.authorizations), m
}

func volunteer() entities.User {
	return entities.User{
		ID:       entities.UserID(testUserID),
		Username: "marie",
		Role:     entities.UserRoleBenevole,
		CenterID: entities.CenterID(testCenterID),
	}
}

func TestVolunteerUseCase_ListAvailableStores(t *testing.T) {
	t.Run("unknown user yields empty list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newVolunteerUseCase(ctrl)

		m.users.EXPECT().GetByID(gomock.Any(), entities.UserID(testUserID)).Return(entities.User{}, nil)

		views, err := uc.ListAvailableStores(context.Background(), testUserID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(views) != 0 {
			t.Fatalf("expected empty list, got %d views", len(views))
		}
	})

	t.Run("no accepting campaign yields empty list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newVolunteerUseCase(ctrl)

		m.users.EXPECT().GetByID(gomock.Any(), entities.UserID(testUserID)).Return(volunteer(), nil)
		m.campaigns.EXPECT().List(gomock.Any(), interfaces.CampaignFilter{}).Return([]entities.Campaign{}, nil)

		views, err := uc.ListAvailableStores(context.Background(), testUserID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(views) != 0 {
			t.Fatalf("expected empty list, got %d views", len(views))
		}
	})

	t.Run("only available authorized stores surface", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newVolunteerUseCase(ctrl)

		campaign := acceptingCampaign()

		authorized := availableStore()
		unauthorized := availableStore()
		unauthorized.ID = entities.NewStoreID()
		closed := availableStore()
		closed.ID = entities.NewStoreID()
		closed.Status = entities.StoreStatusClosed

		m.users.EXPECT().GetByID(gomock.Any(), entities.UserID(testUserID)).Return(volunteer(), nil)
		m.campaigns.EXPECT().List(gomock.Any(), interfaces.CampaignFilter{}).Return([]entities.Campaign{campaign}, nil)
		m.stores.EXPECT().ListByCenter(gomock.Any(), entities.CenterID(testCenterID)).Return([]entities.Store{authorized, unauthorized, closed}, nil)
		m.authorizations.EXPECT().ListByCampaign(gomock.Any(), campaign.ID).Return([]entities.CampaignStoreAuthorization{
			{CampaignID: campaign.ID, StoreID: authorized.ID, Status: entities.AuthorizationStatusActive},
			{CampaignID: campaign.ID, StoreID: closed.ID, Status: entities.AuthorizationStatusActive},
			{CampaignID: campaign.ID, StoreID: unauthorized.ID, Status: entities.AuthorizationStatusInactive},
		}, nil)

		views, err := uc.ListAvailableStores(context.Background(), testUserID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(views) != 1 {
			t.Fatalf("expected 1 view, got %d", len(views))
		}
		if views[0].StoreID != authorized.ID {
			t.Fatalf("expected store %s, got %s", authorized.ID, views[0].StoreID)
		}
		if views[0].CampaignID != campaign.ID {
			t.Fatalf("expected campaign %s, got %s", campaign.ID, views[0].CampaignID)
		}
	})

	t.Run("invalid user id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newVolunteerUseCase(ctrl)

		_, err := uc.ListAvailableStores(context.Background(), "not-a-uuid")
		if !errors.Is(err, entities.ErrInvalidID) {
			t.Fatalf("expected ErrInvalidID, got %v", err)
		}
	})
}
