package usecase

import (
	"context"
	"errors"
	"strings"

	"collecte_service/internal/domain/entities"
	"collecte_service/internal/usecase/interfaces"
)

var (
	ErrCenterNotFound     = errors.New("center not found")
	ErrInvalidCenterInput = errors.New("invalid center input")
)

type CenterInfoInput struct {
	Name       string
	Address    string
	City       string
	PostalCode string
}

// ICenterUseCase exposes the administrative center operations.

type ICenterUseCase interface {
	Create(ctx context.Context, input CenterInfoInput) (entities.Center, error)
	Update(ctx context.Context, centerID string, input CenterInfoInput) (entities.Center, error)
	Activate(ctx context.Context, centerID string) (entities.Center, error)
	Deactivate(ctx context.Context, centerID string) (entities.Center, error)
	GetByID(ctx context.Context, centerID string) (entities.Center, error)
	List(ctx context.Context) ([]entities.Center, error)
}

type CenterUseCase struct {
	repo interfaces.ICenterRepository
}

var _ ICenterUseCase = (*CenterUseCase)(nil)

func NewCenterUseCase(repo interfaces.ICenterRepository) *CenterUseCase {
	return &CenterUseCase{repo: repo}
}

func (u *CenterUseCase) Create(ctx context.Context, input CenterInfoInput) (entities.Center, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Address) == "" {
		return entities.Center{}, ErrInvalidCenterInput
	}
	return u.repo.Create(ctx, entities.NewCenter(input.Name, input.Address, input.City, input.PostalCode))
}

func (u *CenterUseCase) Update(ctx context.Context, centerID string, input CenterInfoInput) (entities.Center, error) {
	center, err := u.load(ctx, centerID)
	if err != nil {
		return entities.Center{}, err
	}

	updated, err := center.UpdateInfo(input.Name, input.Address, input.City, input.PostalCode)
	if err != nil {
		return entities.Center{}, err
	}
	return u.repo.Save(ctx, updated)
}

func (u *CenterUseCase) Activate(ctx context.Context, centerID string) (entities.Center, error) {
	center, err := u.load(ctx, centerID)
	if err != nil {
		return entities.Center{}, err
	}
	return u.repo.Save(ctx, center.Activate())
}

func (u *CenterUseCase) Deactivate(ctx context.Context, centerID string) (entities.Center, error) {
	center, err := u.load(ctx, centerID)
	if err != nil {
		return entities.Center{}, err
	}

	deactivated, err := center.Deactivate()
	if err != nil {
		return entities.Center{}, err
	}
	return u.repo.Save(ctx, deactivated)
}

func (u *CenterUseCase) GetByID(ctx context.Context, centerID string) (entities.Center, error) {
	return u.load(ctx, centerID)
}

func (u *CenterUseCase) List(ctx context.Context) ([]entities.Center, error) {
	return u.repo.List(ctx)
}

func (u *CenterUseCase) load(ctx context.Context, centerID string) (entities.Center, error) {
	id, err := entities.ParseCenterID(centerID)
	if err != nil {
		return entities.Center{}, err
	}
	center, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Center{}, err
	}
	if center.ID == "" {
		return entities.Center{}, ErrCenterNotFound
	}
	return center, nil
}
