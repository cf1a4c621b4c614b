package request

type CreateProductRequest struct {
	Reference string `json:"reference" binding:"required"`
	Family    string `json:"family" binding:"required"`
	SubFamily string `json:"sub_family"`
}

type UpdateProductRequest struct {
	Family    string `json:"family" binding:"required"`
	SubFamily string `json:"sub_family"`
}
