package response

import (
	"time"

	"collecte_service/internal/domain/entities"
	"collecte_service/internal/usecase/interfaces"
)

type StoreImageResponse struct {
	URL       string `json:"url"`
	IsPrimary bool   `json:"is_primary"`
}

type StoreResponse struct {
	ID              string               `json:"id"`
	CenterID        string               `json:"center_id"`
	Name            string               `json:"name"`
	Address         string               `json:"address"`
	City            string               `json:"city"`
	PostalCode      string               `json:"postal_code"`
	Phone           string               `json:"phone,omitempty"`
	ContactName     string               `json:"contact_name,omitempty"`
	Status          string               `json:"status"`
	StatusChangedAt *time.Time           `json:"status_changed_at,omitempty"`
	StatusReason    string               `json:"status_reason,omitempty"`
	Images          []StoreImageResponse `json:"images"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

func FromStore(s entities.Store) StoreResponse {
	images := make([]StoreImageResponse, 0, len(s.Images))
	for _, img := range s.Images {
		images = append(images, StoreImageResponse{URL: img.URL, IsPrimary: img.IsPrimary})
	}
	return StoreResponse{
		ID:              s.ID.String(),
		CenterID:        s.CenterID.String(),
		Name:            s.Name,
		Address:         s.Address,
		City:            s.City,
		PostalCode:      s.PostalCode,
		Phone:           s.Phone,
		ContactName:     s.ContactName,
		Status:          string(s.Status),
		StatusChangedAt: s.StatusChangedAt,
		StatusReason:    s.StatusReason,
		Images:          images,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

func FromStores(stores []entities.Store) []StoreResponse {
	out := make([]StoreResponse, 0, len(stores))
	for _, s := range stores {
		out = append(out, FromStore(s))
	}
	return out
}

type UploadTokenResponse struct {
	UploadURL string    `json:"upload_url"`
	FileURL   string    `json:"file_url"`
	ExpiresAt time.Time `json:"expires_at"`
}

func FromUploadToken(t interfaces.UploadToken) UploadTokenResponse {
	return UploadTokenResponse{
		UploadURL: t.UploadURL,
		FileURL:   t.FileURL,
		ExpiresAt: t.ExpiresAt,
	}
}
