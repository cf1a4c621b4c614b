package interfaces

import (
	"context"
	"time"

	"collecte_service/internal/domain/entities"
)

// UploadToken is a short-lived permission to PUT one object directly to blob
// storage, plus the final https URL the image will be reachable at once
// uploaded.
type UploadToken struct {
	UploadURL string
	FileURL   string
	ExpiresAt time.Time
}

// IUploadTokenService abstracts the object-storage provider used for store
// photos. The core never touches bytes; it only hands out tokens and later
// records the resulting https URL on the store.
type IUploadTokenService interface {
	GenerateStoreImageUpload(ctx context.Context, storeID entities.StoreID, fileName, contentType string) (UploadToken, error)
}
