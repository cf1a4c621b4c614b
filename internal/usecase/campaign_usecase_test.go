package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"collecte_service/internal/domain/entities"
	"collecte_service/internal/usecase/interfaces"
	mock_interfaces "collecte_service/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validCreateCampaignInput() CreateCampaignInput {
	return CreateCampaignInput{
		Name:            "Collecte Nationale 2026",
		Year:            2026,
		StartDate:       time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
		EndDate:         time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
		GracePeriodDays: 7,
		CreatedBy:       testUserID,
	}
}

func TestCampaignUseCase_Create(t *testing.T) {
	t.Run("empty name", func(t *testing.T) {
		uc := NewCampaignUseCase(nil)
		input := validCreateCampaignInput()
		input.Name = "   "
		_, err := uc.Create(context.Background(), input)
		if !errors.Is(err, ErrInvalidCampaignInput) {
			t.Fatalf("expected ErrInvalidCampaignInput, got %v", err)
		}
	})

	t.Run("year already taken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICampaignRepository(ctrl)
		uc := NewCampaignUseCase(repo)

		repo.EXPECT().GetByYear(gomock.Any(), 2026).Return(entities.Campaign{ID: entities.CampaignID(testCampaignID)}, nil)

		_, err := uc.Create(context.Background(), validCreateCampaignInput())
		if !errors.Is(err, ErrCampaignYearExists) {
			t.Fatalf("expected ErrCampaignYearExists, got %v", err)
		}
	})

	t.Run("lost year race maps duplicate key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICampaignRepository(ctrl)
		uc := NewCampaignUseCase(repo)

		repo.EXPECT().GetByYear(gomock.Any(), 2026).Return(entities.Campaign{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Campaign{}, interfaces.ErrDuplicateKey)

		_, err := uc.Create(context.Background(), validCreateCampaignInput())
		if !errors.Is(err, ErrCampaignYearExists) {
			t.Fatalf("expected ErrCampaignYearExists, got %v", err)
		}
	})

	t.Run("invalid period never reaches the repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICampaignRepository(ctrl)
		uc := NewCampaignUseCase(repo)

		repo.EXPECT().GetByYear(gomock.Any(), 2026).Return(entities.Campaign{}, nil)

		input := validCreateCampaignInput()
		input.EndDate = input.StartDate
		_, err := uc.Create(context.Background(), input)
		if !errors.Is(err, entities.ErrInvalidCampaignPeriod) {
			t.Fatalf("expected ErrInvalidCampaignPeriod, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICampaignRepository(ctrl)
		uc := NewCampaignUseCase(repo)

		repo.EXPECT().GetByYear(gomock.Any(), 2026).Return(entities.Campaign{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Campaign{})).DoAndReturn(
			func(_ context.Context, c entities.Campaign) (entities.Campaign, error) {
				if c.ID == "" || c.Status != entities.CampaignStatusPlanned {
					t.Fatalf("unexpected campaign: %+v", c)
				}
				wantGrace := time.Date(2026, time.March, 17, 0, 0, 0, 0, time.UTC)
				if !c.GracePeriodEndDate.Equal(wantGrace) {
					t.Fatalf("expected grace end %s, got %s", wantGrace, c.GracePeriodEndDate)
				}
				return c, nil
			},
		)

		created, err := uc.Create(context.Background(), validCreateCampaignInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Year != 2026 {
			t.Fatalf("expected year 2026, got %d", created.Year)
		}
	})
}

func TestCampaignUseCase_Lifecycle(t *testing.T) {
	t.Run("start persists the transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICampaignRepository(ctrl)
		uc := NewCampaignUseCase(repo)

		planned := acceptingCampaign()
		planned.Status = entities.CampaignStatusPlanned
		repo.EXPECT().GetByID(gomock.Any(), entities.CampaignID(testCampaignID)).Return(planned, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.Campaign{})).DoAndReturn(
			func(_ context.Context, c entities.Campaign) (entities.Campaign, error) {
				if c.Status != entities.CampaignStatusOngoing {
					t.Fatalf("expected ONGOING, got %s", c.Status)
				}
				return c, nil
			},
		)

		if _, err := uc.Start(context.Background(), testCampaignID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("invalid transition is not persisted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICampaignRepository(ctrl)
		uc := NewCampaignUseCase(repo)

		ongoing := acceptingCampaign()
		repo.EXPECT().GetByID(gomock.Any(), entities.CampaignID(testCampaignID)).Return(ongoing, nil)

		_, err := uc.Start(context.Background(), testCampaignID)
		if !errors.Is(err, entities.ErrInvalidStatusTransition) {
			t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
		}
	})

	t.Run("close stamps the closer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICampaignRepository(ctrl)
		uc := NewCampaignUseCase(repo)

		finished := acceptingCampaign()
		finished.Status = entities.CampaignStatusFinished
		repo.EXPECT().GetByID(gomock.Any(), entities.CampaignID(testCampaignID)).Return(finished, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.Campaign{})).DoAndReturn(
			func(_ context.Context, c entities.Campaign) (entities.Campaign, error) {
				if c.Status != entities.CampaignStatusClosed || c.ClosedBy != entities.UserID(testUserID) || c.ClosedAt == nil {
					t.Fatalf("unexpected closed campaign: %+v", c)
				}
				return c, nil
			},
		)

		if _, err := uc.Close(context.Background(), testCampaignID, testUserID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICampaignRepository(ctrl)
		uc := NewCampaignUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), entities.CampaignID(testCampaignID)).Return(entities.Campaign{}, nil)

		_, err := uc.Start(context.Background(), testCampaignID)
		if !errors.Is(err, ErrCampaignNotFound) {
			t.Fatalf("expected ErrCampaignNotFound, got %v", err)
		}
	})
}

func TestCampaignUseCase_GetCurrent(t *testing.T) {
	t.Run("returns the campaign accepting entries", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICampaignRepository(ctrl)
		uc := NewCampaignUseCase(repo)

		closed := acceptingCampaign()
		closed.ID = entities.CampaignID("66666666-6666-6666-6666-666666666666")
		closed.Status = entities.CampaignStatusClosed
		repo.EXPECT().List(gomock.Any(), interfaces.CampaignFilter{}).Return([]entities.Campaign{closed, acceptingCampaign()}, nil)

		got, err := uc.GetCurrent(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != entities.CampaignID(testCampaignID) {
			t.Fatalf("expected the accepting campaign, got %s", got.ID)
		}
	})

	t.Run("none accepting", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICampaignRepository(ctrl)
		uc := NewCampaignUseCase(repo)

		planned := acceptingCampaign()
		planned.Status = entities.CampaignStatusPlanned
		repo.EXPECT().List(gomock.Any(), interfaces.CampaignFilter{}).Return([]entities.Campaign{planned}, nil)

		_, err := uc.GetCurrent(context.Background())
		if !errors.Is(err, ErrCampaignNotFound) {
			t.Fatalf("expected ErrCampaignNotFound, got %v", err)
		}
	})
}
