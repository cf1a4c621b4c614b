package request

type CreateEntryRequest struct {
	CampaignID string `json:"campaign_id" binding:"required"`
	StoreID    string `json:"store_id" binding:"required"`
}

type AddItemRequest struct {
	ProductRef string  `json:"product_ref" binding:"required"`
	WeightKg   float64 `json:"weight_kg" binding:"required"`
}
