package interfaces

import (
	"time"

	"collecte_service/internal/domain/entities"
)

// ITokenIssuer signs an access token carrying the actor identity
// (user id, role, center) consumed by the HTTP middleware.
type ITokenIssuer interface {
	IssueToken(u entities.User) (token string, expiresAt time.Time, err error)
}
