package usecase

import (
	"context"
	"errors"
	"strings"

	"collecte_service/internal/domain/entities"
	"collecte_service/internal/usecase/interfaces"
)

var (
	ErrProductNotFound     = errors.New("product not found")
	ErrProductExists       = errors.New("product reference already registered")
	ErrInvalidProductInput = errors.New("invalid product data")
)

type ProductInput struct {
	Reference string
	Family    string
	SubFamily string
}

type IProductUseCase interface {
	Create(ctx context.Context, input ProductInput) (entities.Product, error)
	Update(ctx context.Context, reference string, family, subFamily string) (entities.Product, error)
	Archive(ctx context.Context, reference string) (entities.Product, error)
	GetByReference(ctx context.Context, reference string) (entities.Product, error)
	List(ctx context.Context, activeOnly bool) ([]entities.Product, error)
}

type ProductUseCase struct {
	products interfaces.IProductRepository
}

var _ IProductUseCase = (*ProductUseCase)(nil)

func NewProductUseCase(products interfaces.IProductRepository) *ProductUseCase {
	return &ProductUseCase{products: products}
}

func (u *ProductUseCase) Create(ctx context.Context, input ProductInput) (entities.Product, error) {
	reference := strings.TrimSpace(input.Reference)
	if reference == "" || strings.TrimSpace(input.Family) == "" {
		return entities.Product{}, ErrInvalidProductInput
	}

	existing, err := u.products.GetByReference(ctx, reference)
	if err != nil {
		return entities.Product{}, err
	}
	if existing.Reference != "" {
		return entities.Product{}, ErrProductExists
	}

	product := entities.NewProduct(reference, input.Family, input.SubFamily)
	created, err := u.products.Create(ctx, product)
	if err != nil {
		if errors.Is(err, interfaces.ErrDuplicateKey) {
			return entities.Product{}, ErrProductExists
		}
		return entities.Product{}, err
	}
	return created, nil
}

func (u *ProductUseCase) Update(ctx context.Context, reference string, family, subFamily string) (entities.Product, error) {
	product, err := u.load(ctx, reference)
	if err != nil {
		return entities.Product{}, err
	}
	if strings.TrimSpace(family) == "" {
		return entities.Product{}, ErrInvalidProductInput
	}
	product.UpdateMetadata(family, subFamily)
	return u.products.Save(ctx, product)
}

func (u *ProductUseCase) Archive(ctx context.Context, reference string) (entities.Product, error) {
	product, err := u.load(ctx, reference)
	if err != nil {
		return entities.Product{}, err
	}
	if err := product.Archive(); err != nil {
		return entities.Product{}, err
	}
	return u.products.Save(ctx, product)
}

func (u *ProductUseCase) GetByReference(ctx context.Context, reference string) (entities.Product, error) {
	return u.load(ctx, reference)
}

func (u *ProductUseCase) List(ctx context.Context, activeOnly bool) ([]entities.Product, error) {
	return u.products.List(ctx, activeOnly)
}

func (u *ProductUseCase) load(ctx context.Context, reference string) (entities.Product, error) {
	product, err := u.products.GetByReference(ctx, strings.TrimSpace(reference))
	if err != nil {
		return entities.Product{}, err
	}
	if product.Reference == "" {
		return entities.Product{}, ErrProductNotFound
	}
	return product, nil
}
