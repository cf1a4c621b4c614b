package interfaces

import (
	"context"

	"collecte_service/internal/domain/entities"
)

// IProductRepository abstracts DynamoDB persistence for Product. Reference is
// the natural key; Create returns ErrDuplicateKey on reuse.

type IProductRepository interface {
	Create(ctx context.Context, p entities.Product) (entities.Product, error)
	Save(ctx context.Context, p entities.Product) (entities.Product, error)
	GetByReference(ctx context.Context, reference string) (entities.Product, error)
	List(ctx context.Context, activeOnly bool) ([]entities.Product, error)
}
