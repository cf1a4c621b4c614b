package request

type CreateStoreRequest struct {
	CenterID    string `json:"center_id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Address     string `json:"address" binding:"required"`
	City        string `json:"city" binding:"required"`
	PostalCode  string `json:"postal_code" binding:"required"`
	Phone       string `json:"phone"`
	ContactName string `json:"contact_name"`
}

type UpdateStoreRequest struct {
	Name        string `json:"name" binding:"required"`
	Address     string `json:"address" binding:"required"`
	City        string `json:"city" binding:"required"`
	PostalCode  string `json:"postal_code" binding:"required"`
	Phone       string `json:"phone"`
	ContactName string `json:"contact_name"`
}

type StoreStatusRequest struct {
	Reason string `json:"reason"`
}

type StoreImageRequest struct {
	URL       string `json:"url" binding:"required"`
	IsPrimary bool   `json:"is_primary"`
}

type StoreImageUploadRequest struct {
	FileName    string `json:"file_name" binding:"required"`
	ContentType string `json:"content_type"`
}
