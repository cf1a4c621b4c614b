package response

import (
	"time"

	"collecte_service/internal/domain/entities"
)

type CampaignResponse struct {
	ID                 string     `json:"id"`
	Name               string     `json:"name"`
	Year               int        `json:"year"`
	StartDate          time.Time  `json:"start_date"`
	EndDate            time.Time  `json:"end_date"`
	GracePeriodEndDate time.Time  `json:"grace_period_end_date"`
	Status             string     `json:"status"`
	Description        string     `json:"description,omitempty"`
	Objectives         string     `json:"objectives,omitempty"`
	CreatedBy          string     `json:"created_by"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
	ClosedBy           string     `json:"closed_by,omitempty"`
	ClosedAt           *time.Time `json:"closed_at,omitempty"`
}

func FromCampaign(c entities.Campaign) CampaignResponse {
	return CampaignResponse{
		ID:                 c.ID.String(),
		Name:               c.Name,
		Year:               c.Year,
		StartDate:          c.StartDate,
		EndDate:            c.EndDate,
		GracePeriodEndDate: c.GracePeriodEndDate,
		Status:             string(c.Status),
		Description:        c.Description,
		Objectives:         c.Objectives,
		CreatedBy:          c.CreatedBy.String(),
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
		ClosedBy:           c.ClosedBy.String(),
		ClosedAt:           c.ClosedAt,
	}
}

func FromCampaigns(campaigns []entities.Campaign) []CampaignResponse {
	out := make([]CampaignResponse, 0, len(campaigns))
	for _, c := range campaigns {
		out = append(out, FromCampaign(c))
	}
	return out
}
