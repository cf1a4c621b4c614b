package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"collecte_service/internal/domain/entities"
	"collecte_service/internal/usecase/interfaces"
)

var (
	ErrCampaignNotFound   = errors.New("campaign not found")
	ErrCampaignYearExists = errors.New("a campaign already exists for this year")
	ErrInvalidCampaignInput = errors.New("invalid campaign input")
)

type CreateCampaignInput struct {
	Name            string
	Year            int
	StartDate       time.Time
	EndDate         time.Time
	GracePeriodDays int
	CreatedBy       string
	Description     string
	Objectives      string
}

type UpdateCampaignInput struct {
	Name               string
	StartDate          time.Time
	EndDate            time.Time
	GracePeriodEndDate time.Time
	Description        string
	Objectives         string
}

// ICampaignUseCase exposes the campaign lifecycle operations.
//
// One campaign per calendar year: creation is guarded both by a read-side
// check (friendly error) and by the repository's conditional write (closes
// the check-then-insert race).

type ICampaignUseCase interface {
	Create(ctx context.Context, input CreateCampaignInput) (entities.Campaign, error)
	Update(ctx context.Context, campaignID string, input UpdateCampaignInput) (entities.Campaign, error)
	Start(ctx context.Context, campaignID string) (entities.Campaign, error)
	Complete(ctx context.Context, campaignID string) (entities.Campaign, error)
	Close(ctx context.Context, campaignID, closedBy string) (entities.Campaign, error)
	Cancel(ctx context.Context, campaignID string) (entities.Campaign, error)
	GetByID(ctx context.Context, campaignID string) (entities.Campaign, error)
	GetCurrent(ctx context.Context) (entities.Campaign, error)
	CanAcceptEntries(ctx context.Context, campaignID string, asOf time.Time) (bool, error)
	List(ctx context.Context, filter interfaces.CampaignFilter) ([]entities.Campaign, error)
}

type CampaignUseCase struct {
	repo interfaces.ICampaignRepository
}

var _ ICampaignUseCase = (*CampaignUseCase)(nil)

func NewCampaignUseCase(repo interfaces.ICampaignRepository) *CampaignUseCase {
	return &CampaignUseCase{repo: repo}
}

func (u *CampaignUseCase) Create(ctx context.Context, input CreateCampaignInput) (entities.Campaign, error) {
	if strings.TrimSpace(input.Name) == "" {
		return entities.Campaign{}, ErrInvalidCampaignInput
	}
	createdBy, err := entities.ParseUserID(input.CreatedBy)
	if err != nil {
		return entities.Campaign{}, err
	}

	existing, err := u.repo.GetByYear(ctx, input.Year)
	if err != nil {
		return entities.Campaign{}, err
	}
	if existing.ID != "" {
		return entities.Campaign{}, ErrCampaignYearExists
	}

	campaign, err := entities.NewCampaign(
		input.Name,
		input.Year,
		input.StartDate,
		input.EndDate,
		input.GracePeriodDays,
		createdBy,
		input.Description,
		input.Objectives,
	)
	if err != nil {
		return entities.Campaign{}, err
	}

	created, err := u.repo.Create(ctx, *campaign)
	if err != nil {
		if errors.Is(err, interfaces.ErrDuplicateKey) {
			return entities.Campaign{}, ErrCampaignYearExists
		}
		return entities.Campaign{}, err
	}
	return created, nil
}

func (u *CampaignUseCase) Update(ctx context.Context, campaignID string, input UpdateCampaignInput) (entities.Campaign, error) {
	campaign, err := u.load(ctx, campaignID)
	if err != nil {
		return entities.Campaign{}, err
	}

	if err := campaign.UpdateInfo(input.Name, input.StartDate, input.EndDate, input.GracePeriodEndDate, input.Description, input.Objectives); err != nil {
		return entities.Campaign{}, err
	}
	return u.repo.Save(ctx, campaign)
}

func (u *CampaignUseCase) Start(ctx context.Context, campaignID string) (entities.Campaign, error) {
	return u.transition(ctx, campaignID, (*entities.Campaign).Start)
}

func (u *CampaignUseCase) Complete(ctx context.Context, campaignID string) (entities.Campaign, error) {
	return u.transition(ctx, campaignID, (*entities.Campaign).Complete)
}

func (u *CampaignUseCase) Cancel(ctx context.Context, campaignID string) (entities.Campaign, error) {
	return u.transition(ctx, campaignID, (*entities.Campaign).Cancel)
}

func (u *CampaignUseCase) Close(ctx context.Context, campaignID, closedBy string) (entities.Campaign, error) {
	closer, err := entities.ParseUserID(closedBy)
	if err != nil {
		return entities.Campaign{}, err
	}
	return u.transition(ctx, campaignID, func(c *entities.Campaign) error {
		return c.Close(closer)
	})
}

func (u *CampaignUseCase) transition(ctx context.Context, campaignID string, apply func(*entities.Campaign) error) (entities.Campaign, error) {
	campaign, err := u.load(ctx, campaignID)
	if err != nil {
		return entities.Campaign{}, err
	}
	if err := apply(&campaign); err != nil {
		return entities.Campaign{}, err
	}
	return u.repo.Save(ctx, campaign)
}

func (u *CampaignUseCase) GetByID(ctx context.Context, campaignID string) (entities.Campaign, error) {
	return u.load(ctx, campaignID)
}

// GetCurrent resolves the campaign currently accepting entries, if any.
func (u *CampaignUseCase) GetCurrent(ctx context.Context) (entities.Campaign, error) {
	campaigns, err := u.repo.List(ctx, interfaces.CampaignFilter{})
	if err != nil {
		return entities.Campaign{}, err
	}

	now := time.Now().UTC()
	for i := range campaigns {
		if campaigns[i].CanAcceptEntries(now) {
			return campaigns[i], nil
		}
	}
	return entities.Campaign{}, ErrCampaignNotFound
}

func (u *CampaignUseCase) CanAcceptEntries(ctx context.Context, campaignID string, asOf time.Time) (bool, error) {
	campaign, err := u.load(ctx, campaignID)
	if err != nil {
		return false, err
	}
	return campaign.CanAcceptEntries(asOf), nil
}

func (u *CampaignUseCase) List(ctx context.Context, filter interfaces.CampaignFilter) ([]entities.Campaign, error) {
	return u.repo.List(ctx, filter)
}

func (u *CampaignUseCase) load(ctx context.Context, campaignID string) (entities.Campaign, error) {
	id, err := entities.ParseCampaignID(campaignID)
	if err != nil {
		return entities.Campaign{}, err
	}
	campaign, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Campaign{}, err
	}
	if campaign.ID == "" {
		return entities.Campaign{}, ErrCampaignNotFound
	}
	return campaign, nil
}
