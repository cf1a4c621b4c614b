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

func validCreateStoreInput() CreateStoreInput {
	return CreateStoreInput{
		CenterID:   testCenterID,
		Name:       "Super U Centre",
		Address:    "12 rue de la Gare",
		City:       "Nantes",
		PostalCode: "44000",
	}
}

func TestStoreUseCase_Create(t *testing.T) {
	t.Run("center not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		stores := mock_interfaces.NewMockIStoreRepository(ctrl)
		centers := mock_interfaces.NewMockICenterRepository(ctrl)
		uc := NewStoreUseCase(stores, centers, nil)

		centers.EXPECT().GetByID(gomock.Any(), entities.CenterID(testCenterID)).Return(entities.Center{}, nil)

		_, err := uc.Create(context.Background(), validCreateStoreInput())
		if !errors.Is(err, ErrCenterNotFound) {
			t.Fatalf("expected ErrCenterNotFound, got %v", err)
		}
	})

	t.Run("inactive center rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		stores := mock_interfaces.NewMockIStoreRepository(ctrl)
		centers := mock_interfaces.NewMockICenterRepository(ctrl)
		uc := NewStoreUseCase(stores, centers, nil)

		inactive := activeCenter()
		inactive.IsActive = false
		centers.EXPECT().GetByID(gomock.Any(), entities.CenterID(testCenterID)).Return(inactive, nil)

		_, err := uc.Create(context.Background(), validCreateStoreInput())
		if !errors.Is(err, entities.ErrCenterInactive) {
			t.Fatalf("expected ErrCenterInactive, got %v", err)
		}
	})

	t.Run("address already taken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		stores := mock_interfaces.NewMockIStoreRepository(ctrl)
		centers := mock_interfaces.NewMockICenterRepository(ctrl)
		uc := NewStoreUseCase(stores, centers, nil)

		centers.EXPECT().GetByID(gomock.Any(), entities.CenterID(testCenterID)).Return(activeCenter(), nil)
		stores.EXPECT().GetByCenterAndAddress(gomock.Any(), entities.CenterID(testCenterID), "12 rue de la Gare", "Nantes", "44000").Return(availableStore(), nil)

		_, err := uc.Create(context.Background(), validCreateStoreInput())
		if !errors.Is(err, ErrStoreAddressTaken) {
			t.Fatalf("expected ErrStoreAddressTaken, got %v", err)
		}
	})

	t.Run("lost address race maps duplicate key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		stores := mock_interfaces.NewMockIStoreRepository(ctrl)
		centers := mock_interfaces.NewMockICenterRepository(ctrl)
		uc := NewStoreUseCase(stores, centers, nil)

		centers.EXPECT().GetByID(gomock.Any(), entities.CenterID(testCenterID)).Return(activeCenter(), nil)
		stores.EXPECT().GetByCenterAndAddress(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Store{}, nil)
		stores.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Store{}, interfaces.ErrDuplicateKey)

		_, err := uc.Create(context.Background(), validCreateStoreInput())
		if !errors.Is(err, ErrStoreAddressTaken) {
			t.Fatalf("expected ErrStoreAddressTaken, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		stores := mock_interfaces.NewMockIStoreRepository(ctrl)
		centers := mock_interfaces.NewMockICenterRepository(ctrl)
		uc := NewStoreUseCase(stores, centers, nil)

		centers.EXPECT().GetByID(gomock.Any(), entities.CenterID(testCenterID)).Return(activeCenter(), nil)
		stores.EXPECT().GetByCenterAndAddress(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Store{}, nil)
		stores.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Store{})).DoAndReturn(
			func(_ context.Context, s entities.Store) (entities.Store, error) {
				if s.ID == "" || s.Status != entities.StoreStatusAvailable {
					t.Fatalf("unexpected store: %+v", s)
				}
				return s, nil
			},
		)

		created, err := uc.Create(context.Background(), validCreateStoreInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.CenterID != entities.CenterID(testCenterID) {
			t.Fatalf("expected center binding, got %+v", created)
		}
	})
}

func TestStoreUseCase_StatusTransitions(t *testing.T) {
	t.Run("mark unavailable requires a reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		stores := mock_interfaces.NewMockIStoreRepository(ctrl)
		centers := mock_interfaces.NewMockICenterRepository(ctrl)
		uc := NewStoreUseCase(stores, centers, nil)

		stores.EXPECT().GetByID(gomock.Any(), entities.StoreID(testStoreID)).Return(availableStore(), nil)
		centers.EXPECT().GetByID(gomock.Any(), entities.CenterID(testCenterID)).Return(activeCenter(), nil)

		_, err := uc.MarkUnavailable(context.Background(), testStoreID, testUserID, "  ")
		if !errors.Is(err, entities.ErrStatusReasonNeeded) {
			t.Fatalf("expected ErrStatusReasonNeeded, got %v", err)
		}
	})

	t.Run("inactive center freezes its stores", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		stores := mock_interfaces.NewMockIStoreRepository(ctrl)
		centers := mock_interfaces.NewMockICenterRepository(ctrl)
		uc := NewStoreUseCase(stores, centers, nil)

		inactive := activeCenter()
		inactive.IsActive = false
		stores.EXPECT().GetByID(gomock.Any(), entities.StoreID(testStoreID)).Return(availableStore(), nil).Times(3)
		centers.EXPECT().GetByID(gomock.Any(), entities.CenterID(testCenterID)).Return(inactive, nil).Times(3)

		if _, err := uc.Update(context.Background(), testStoreID, UpdateStoreInput{Name: "Renamed"}); !errors.Is(err, entities.ErrCenterInactive) {
			t.Fatalf("expected ErrCenterInactive, got %v", err)
		}
		if _, err := uc.MarkUnavailable(context.Background(), testStoreID, testUserID, "works"); !errors.Is(err, entities.ErrCenterInactive) {
			t.Fatalf("expected ErrCenterInactive, got %v", err)
		}
		if _, err := uc.AddImage(context.Background(), testStoreID, "https://img.example.org/a.jpg", false); !errors.Is(err, entities.ErrCenterInactive) {
			t.Fatalf("expected ErrCenterInactive, got %v", err)
		}
	})

	t.Run("closed store rejects every mutation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		stores := mock_interfaces.NewMockIStoreRepository(ctrl)
		centers := mock_interfaces.NewMockICenterRepository(ctrl)
		uc := NewStoreUseCase(stores, centers, nil)

		closed := availableStore()
		closed.Status = entities.StoreStatusClosed
		stores.EXPECT().GetByID(gomock.Any(), entities.StoreID(testStoreID)).Return(closed, nil).Times(2)
		centers.EXPECT().GetByID(gomock.Any(), entities.CenterID(testCenterID)).Return(activeCenter(), nil).Times(2)

		if _, err := uc.MarkAvailable(context.Background(), testStoreID, testUserID); !errors.Is(err, entities.ErrStoreAlreadyClosed) {
			t.Fatalf("expected ErrStoreAlreadyClosed, got %v", err)
		}
		if _, err := uc.AddImage(context.Background(), testStoreID, "https://img.example.org/a.jpg", false); !errors.Is(err, entities.ErrStoreAlreadyClosed) {
			t.Fatalf("expected ErrStoreAlreadyClosed, got %v", err)
		}
	})

	t.Run("close persists reason and actor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		stores := mock_interfaces.NewMockIStoreRepository(ctrl)
		centers := mock_interfaces.NewMockICenterRepository(ctrl)
		uc := NewStoreUseCase(stores, centers, nil)

		stores.EXPECT().GetByID(gomock.Any(), entities.StoreID(testStoreID)).Return(availableStore(), nil)
		centers.EXPECT().GetByID(gomock.Any(), entities.CenterID(testCenterID)).Return(activeCenter(), nil)
		stores.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.Store{})).DoAndReturn(
			func(_ context.Context, s entities.Store) (entities.Store, error) {
				if s.Status != entities.StoreStatusClosed || s.StatusReason != "store shut down" || s.StatusChangedBy != entities.UserID(testUserID) {
					t.Fatalf("unexpected store: %+v", s)
				}
				return s, nil
			},
		)

		if _, err := uc.Close(context.Background(), testStoreID, testUserID, "store shut down"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestStoreUseCase_Update(t *testing.T) {
	t.Run("moving to a taken address maps duplicate key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		stores := mock_interfaces.NewMockIStoreRepository(ctrl)
		centers := mock_interfaces.NewMockICenterRepository(ctrl)
		uc := NewStoreUseCase(stores, centers, nil)

		stores.EXPECT().GetByID(gomock.Any(), entities.StoreID(testStoreID)).Return(availableStore(), nil)
		centers.EXPECT().GetByID(gomock.Any(), entities.CenterID(testCenterID)).Return(activeCenter(), nil)
		stores.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.Store{})).Return(entities.Store{}, interfaces.ErrDuplicateKey)

		_, err := uc.Update(context.Background(), testStoreID, UpdateStoreInput{
			Name:       "Super U Centre",
			Address:    "3 place du Commerce",
			City:       "Nantes",
			PostalCode: "44000",
		})
		if !errors.Is(err, ErrStoreAddressTaken) {
			t.Fatalf("expected ErrStoreAddressTaken, got %v", err)
		}
	})

	t.Run("update persists new info", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		stores := mock_interfaces.NewMockIStoreRepository(ctrl)
		centers := mock_interfaces.NewMockICenterRepository(ctrl)
		uc := NewStoreUseCase(stores, centers, nil)

		stores.EXPECT().GetByID(gomock.Any(), entities.StoreID(testStoreID)).Return(availableStore(), nil)
		centers.EXPECT().GetByID(gomock.Any(), entities.CenterID(testCenterID)).Return(activeCenter(), nil)
		stores.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.Store{})).DoAndReturn(
			func(_ context.Context, s entities.Store) (entities.Store, error) {
				if s.Address != "3 place du Commerce" || s.Name != "Super U Commerce" {
					t.Fatalf("unexpected store: %+v", s)
				}
				return s, nil
			},
		)

		updated, err := uc.Update(context.Background(), testStoreID, UpdateStoreInput{
			Name:       "Super U Commerce",
			Address:    "3 place du Commerce",
			City:       "Nantes",
			PostalCode: "44000",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Address != "3 place du Commerce" {
			t.Fatalf("expected updated address, got %+v", updated)
		}
	})
}

func TestStoreUseCase_GenerateImageUploadToken(t *testing.T) {
	t.Run("closed store cannot mint tokens", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		stores := mock_interfaces.NewMockIStoreRepository(ctrl)
		centers := mock_interfaces.NewMockICenterRepository(ctrl)
		uploads := mock_interfaces.NewMockIUploadTokenService(ctrl)
		uc := NewStoreUseCase(stores, centers, uploads)

		closed := availableStore()
		closed.Status = entities.StoreStatusClosed
		stores.EXPECT().GetByID(gomock.Any(), entities.StoreID(testStoreID)).Return(closed, nil)
		centers.EXPECT().GetByID(gomock.Any(), entities.CenterID(testCenterID)).Return(activeCenter(), nil)

		_, err := uc.GenerateImageUploadToken(context.Background(), testStoreID, "front.jpg", "image/jpeg")
		if !errors.Is(err, entities.ErrStoreAlreadyClosed) {
			t.Fatalf("expected ErrStoreAlreadyClosed, got %v", err)
		}
	})

	t.Run("inactive center cannot mint tokens", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		stores := mock_interfaces.NewMockIStoreRepository(ctrl)
		centers := mock_interfaces.NewMockICenterRepository(ctrl)
		uploads := mock_interfaces.NewMockIUploadTokenService(ctrl)
		uc := NewStoreUseCase(stores, centers, uploads)

		inactive := activeCenter()
		inactive.IsActive = false
		stores.EXPECT().GetByID(gomock.Any(), entities.StoreID(testStoreID)).Return(availableStore(), nil)
		centers.EXPECT().GetByID(gomock.Any(), entities.CenterID(testCenterID)).Return(inactive, nil)

		_, err := uc.GenerateImageUploadToken(context.Background(), testStoreID, "front.jpg", "image/jpeg")
		if !errors.Is(err, entities.ErrCenterInactive) {
			t.Fatalf("expected ErrCenterInactive, got %v", err)
		}
	})

	t.Run("token minted for open store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		stores := mock_interfaces.NewMockIStoreRepository(ctrl)
		centers := mock_interfaces.NewMockICenterRepository(ctrl)
		uploads := mock_interfaces.NewMockIUploadTokenService(ctrl)
		uc := NewStoreUseCase(stores, centers, uploads)

		stores.EXPECT().GetByID(gomock.Any(), entities.StoreID(testStoreID)).Return(availableStore(), nil)
		centers.EXPECT().GetByID(gomock.Any(), entities.CenterID(testCenterID)).Return(activeCenter(), nil)
		uploads.EXPECT().GenerateStoreImageUpload(gomock.Any(), entities.StoreID(testStoreID), "front.jpg", "image/jpeg").Return(interfaces.UploadToken{UploadURL: "https://s3/put", FileURL: "https://s3/front.jpg"}, nil)

		token, err := uc.GenerateImageUploadToken(context.Background(), testStoreID, "front.jpg", "image/jpeg")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if token.UploadURL == "" || token.FileURL == "" {
			t.Fatalf("expected a populated token, got %+v", token)
		}
	})
}
