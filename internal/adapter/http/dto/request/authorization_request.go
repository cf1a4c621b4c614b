package request

type AuthorizationRequest struct {
	CampaignID string `json:"campaign_id" binding:"required"`
	StoreID    string `json:"store_id" binding:"required"`
}
