package request

import "time"

type CreateCampaignRequest struct {
	Name            string    `json:"name" binding:"required"`
	Year            int       `json:"year" binding:"required"`
	StartDate       time.Time `json:"start_date" binding:"required"`
	EndDate         time.Time `json:"end_date" binding:"required"`
	GracePeriodDays int       `json:"grace_period_days"`
	Description     string    `json:"description"`
	Objectives      string    `json:"objectives"`
}

type UpdateCampaignRequest struct {
	Name               string    `json:"name" binding:"required"`
	StartDate          time.Time `json:"start_date" binding:"required"`
	EndDate            time.Time `json:"end_date" binding:"required"`
	GracePeriodEndDate time.Time `json:"grace_period_end_date" binding:"required"`
	Description        string    `json:"description"`
	Objectives         string    `json:"objectives"`
}
