package interfaces

import (
	"context"

	"collecte_service/internal/domain/entities"
)

// ICenterRepository abstracts DynamoDB persistence for Center.
//
// "Not found" is a zero-value Center (empty ID), never an error.

type ICenterRepository interface {
	Create(ctx context.Context, c entities.Center) (entities.Center, error)
	Save(ctx context.Context, c entities.Center) (entities.Center, error)
	GetByID(ctx context.Context, id entities.CenterID) (entities.Center, error)
	List(ctx context.Context) ([]entities.Center, error)
}
