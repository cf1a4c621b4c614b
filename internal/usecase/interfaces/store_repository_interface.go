package interfaces

import (
	"context"

	"collecte_service/internal/domain/entities"
)

// IStoreRepository abstracts DynamoDB persistence for Store.
//
// Create must enforce the (centerId, address, city, postalCode) uniqueness at
// the storage boundary and return ErrDuplicateKey when it is violated.

type IStoreRepository interface {
	Create(ctx context.Context, s entities.Store) (entities.Store, error)
	Save(ctx context.Context, s entities.Store) (entities.Store, error)
	GetByID(ctx context.Context, id entities.StoreID) (entities.Store, error)
	GetByCenterAndAddress(ctx context.Context, centerID entities.CenterID, address, city, postalCode string) (entities.Store, error)
	ListByCenter(ctx context.Context, centerID entities.CenterID) ([]entities.Store, error)
}
