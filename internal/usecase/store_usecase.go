package usecase

import (
	"context"
	"errors"
	"strings"

	"collecte_service/internal/domain/entities"
	"collecte_service/internal/usecase/interfaces"
)

var (
	ErrStoreNotFound     = errors.New("store not found")
	ErrStoreAddressTaken = errors.New("a store already exists at this address for this center")
	ErrInvalidStoreInput = errors.New("invalid store input")
)

type CreateStoreInput struct {
	CenterID    string
	Name        string
	Address     string
	City        string
	PostalCode  string
	Phone       string
	ContactName string
}

type UpdateStoreInput struct {
	Name        string
	Address     string
	City        string
	PostalCode  string
	Phone       string
	ContactName string
}

// IStoreUseCase exposes store administration: creation under a center,
// availability transitions, terminal closure, and the image gallery.

type IStoreUseCase interface {
	Create(ctx context.Context, input CreateStoreInput) (entities.Store, error)
	Update(ctx context.Context, storeID string, input UpdateStoreInput) (entities.Store, error)
	Close(ctx context.Context, storeID, userID, reason string) (entities.Store, error)
	MarkUnavailable(ctx context.Context, storeID, userID, reason string) (entities.Store, error)
	MarkAvailable(ctx context.Context, storeID, userID string) (entities.Store, error)
	AddImage(ctx context.Context, storeID, url string, isPrimary bool) (entities.Store, error)
	RemoveImage(ctx context.Context, storeID, url string) (entities.Store, error)
	SetPrimaryImage(ctx context.Context, storeID, url string) (entities.Store, error)
	GenerateImageUploadToken(ctx context.Context, storeID, fileName, contentType string) (interfaces.UploadToken, error)
	GetByID(ctx context.Context, storeID string) (entities.Store, error)
	ListByCenter(ctx context.Context, centerID string) ([]entities.Store, error)
}

type StoreUseCase struct {
	stores  interfaces.IStoreRepository
	centers interfaces.ICenterRepository
	uploads interfaces.IUploadTokenService
}

var _ IStoreUseCase = (*StoreUseCase)(nil)

func NewStoreUseCase(stores interfaces.IStoreRepository, centers interfaces.ICenterRepository, uploads interfaces.IUploadTokenService) *StoreUseCase {
	return &StoreUseCase{stores: stores, centers: centers, uploads: uploads}
}

func (u *StoreUseCase) Create(ctx context.Context, input CreateStoreInput) (entities.Store, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Address) == "" {
		return entities.Store{}, ErrInvalidStoreInput
	}

	centerID, err := entities.ParseCenterID(input.CenterID)
	if err != nil {
		return entities.Store{}, err
	}

	center, err := u.centers.GetByID(ctx, centerID)
	if err != nil {
		return entities.Store{}, err
	}
	if center.ID == "" {
		return entities.Store{}, ErrCenterNotFound
	}
	if err := center.AssertActive(); err != nil {
		return entities.Store{}, err
	}

	// A center may run several stores of the same brand, but never two at the
	// identical address.
	existing, err := u.stores.GetByCenterAndAddress(ctx, centerID, input.Address, input.City, input.PostalCode)
	if err != nil {
		return entities.Store{}, err
	}
	if existing.ID != "" {
		return entities.Store{}, ErrStoreAddressTaken
	}

	store := entities.NewStore(centerID, input.Name, input.Address, input.City, input.PostalCode, input.Phone, input.ContactName)

	created, err := u.stores.Create(ctx, store)
	if err != nil {
		if errors.Is(err, interfaces.ErrDuplicateKey) {
			return entities.Store{}, ErrStoreAddressTaken
		}
		return entities.Store{}, err
	}
	return created, nil
}

func (u *StoreUseCase) Update(ctx context.Context, storeID string, input UpdateStoreInput) (entities.Store, error) {
	return u.mutate(ctx, storeID, func(s *entities.Store) error {
		return s.UpdateInfo(input.Name, input.Address, input.City, input.PostalCode, input.Phone, input.ContactName)
	})
}

func (u *StoreUseCase) Close(ctx context.Context, storeID, userID, reason string) (entities.Store, error) {
	actor, err := entities.ParseUserID(userID)
	if err != nil {
		return entities.Store{}, err
	}
	return u.mutate(ctx, storeID, func(s *entities.Store) error {
		return s.Close(actor, reason)
	})
}

func (u *StoreUseCase) MarkUnavailable(ctx context.Context, storeID, userID, reason string) (entities.Store, error) {
	actor, err := entities.ParseUserID(userID)
	if err != nil {
		return entities.Store{}, err
	}
	return u.mutate(ctx, storeID, func(s *entities.Store) error {
		return s.MarkAsUnavailable(actor, reason)
	})
}

func (u *StoreUseCase) MarkAvailable(ctx context.Context, storeID, userID string) (entities.Store, error) {
	actor, err := entities.ParseUserID(userID)
	if err != nil {
		return entities.Store{}, err
	}
	return u.mutate(ctx, storeID, func(s *entities.Store) error {
		return s.MarkAsAvailable(actor)
	})
}

func (u *StoreUseCase) AddImage(ctx context.Context, storeID, url string, isPrimary bool) (entities.Store, error) {
	return u.mutate(ctx, storeID, func(s *entities.Store) error {
		return s.AddImage(url, isPrimary)
	})
}

func (u *StoreUseCase) RemoveImage(ctx context.Context, storeID, url string) (entities.Store, error) {
	return u.mutate(ctx, storeID, func(s *entities.Store) error {
		return s.RemoveImage(url)
	})
}

func (u *StoreUseCase) SetPrimaryImage(ctx context.Context, storeID, url string) (entities.Store, error) {
	return u.mutate(ctx, storeID, func(s *entities.Store) error {
		return s.SetPrimaryImage(url)
	})
}

// GenerateImageUploadToken verifies the store first so tokens cannot be
// minted for unknown or closed stores, nor under an inactive center.
func (u *StoreUseCase) GenerateImageUploadToken(ctx context.Context, storeID, fileName, contentType string) (interfaces.UploadToken, error) {
	store, err := u.load(ctx, storeID)
	if err != nil {
		return interfaces.UploadToken{}, err
	}
	if err := u.assertCenterActive(ctx, store.CenterID); err != nil {
		return interfaces.UploadToken{}, err
	}
	if store.IsClosed() {
		return interfaces.UploadToken{}, entities.ErrStoreAlreadyClosed
	}
	if strings.TrimSpace(fileName) == "" {
		return interfaces.UploadToken{}, ErrInvalidStoreInput
	}
	return u.uploads.GenerateStoreImageUpload(ctx, store.ID, fileName, contentType)
}

func (u *StoreUseCase) GetByID(ctx context.Context, storeID string) (entities.Store, error) {
	return u.load(ctx, storeID)
}

func (u *StoreUseCase) ListByCenter(ctx context.Context, centerID string) ([]entities.Store, error) {
	id, err := entities.ParseCenterID(centerID)
	if err != nil {
		return nil, err
	}
	return u.stores.ListByCenter(ctx, id)
}

// mutate applies one command to a loaded store and persists it. Every write
// to a store first asserts the owning center is active; an inactive center
// freezes its stores.
func (u *StoreUseCase) mutate(ctx context.Context, storeID string, apply func(*entities.Store) error) (entities.Store, error) {
	store, err := u.load(ctx, storeID)
	if err != nil {
		return entities.Store{}, err
	}
	if err := u.assertCenterActive(ctx, store.CenterID); err != nil {
		return entities.Store{}, err
	}
	if err := apply(&store); err != nil {
		return entities.Store{}, err
	}
	saved, err := u.stores.Save(ctx, store)
	if err != nil {
		// Save re-reserves the address guard when the address changed; losing
		// that race means another store claimed the new address first.
		if errors.Is(err, interfaces.ErrDuplicateKey) {
			return entities.Store{}, ErrStoreAddressTaken
		}
		return entities.Store{}, err
	}
	return saved, nil
}

func (u *StoreUseCase) assertCenterActive(ctx context.Context, centerID entities.CenterID) error {
	center, err := u.centers.GetByID(ctx, centerID)
	if err != nil {
		return err
	}
	if center.ID == "" {
		return ErrCenterNotFound
	}
	return center.AssertActive()
}

func (u *StoreUseCase) load(ctx context.Context, storeID string) (entities.Store, error) {
	id, err := entities.ParseStoreID(storeID)
	if err != nil {
		return entities.Store{}, err
	}
	store, err := u.stores.GetByID(ctx, id)
	if err != nil {
		return entities.Store{}, err
	}
	if store.ID == "" {
		return entities.Store{}, ErrStoreNotFound
	}
	return store, nil
}
