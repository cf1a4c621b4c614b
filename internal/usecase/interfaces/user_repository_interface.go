package interfaces

import (
	"context"

	"collecte_service/internal/domain/entities"
)

// IUserRepository abstracts DynamoDB persistence for User. Username is
// unique; Create returns ErrDuplicateKey on reuse.

type IUserRepository interface {
	Create(ctx context.Context, u entities.User) (entities.User, error)
	GetByUsername(ctx context.Context, username string) (entities.User, error)
	GetByID(ctx context.Context, id entities.UserID) (entities.User, error)
}
