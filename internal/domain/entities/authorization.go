package entities

import "time"

// AuthorizationStatus is the administrative decision for one
// (campaign, store) pair. NONE is a projection value only: it means no
// record has ever existed for the pair, which the UI must distinguish from
// an explicit INACTIVE.
type AuthorizationStatus string

const (
	AuthorizationStatusActive   AuthorizationStatus = "ACTIVE"
	AuthorizationStatusInactive AuthorizationStatus = "INACTIVE"
	AuthorizationStatusNone     AuthorizationStatus = "NONE"
)

// CampaignStoreAuthorization answers one question: may this store record
// entries for this campaign. No dates live here; campaign timing rules stay
// in Campaign. Unique per (campaignId, storeId).
type CampaignStoreAuthorization struct {
	ID         AuthorizationID
	CampaignID CampaignID
	StoreID    StoreID
	Status     AuthorizationStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewActiveAuthorization creates the record in ACTIVE status; authorizations
// are never born inactive.
func NewActiveAuthorization(campaignID CampaignID, storeID StoreID) CampaignStoreAuthorization {
	now := time.Now().UTC()
	return CampaignStoreAuthorization{
		ID:         NewAuthorizationID(),
		CampaignID: campaignID,
		StoreID:    storeID,
		Status:     AuthorizationStatusActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (a *CampaignStoreAuthorization) IsActive() bool {
	return a.Status == AuthorizationStatusActive
}

// Activate and Deactivate are idempotent: double-submission from a UI must
// never surface an error.

func (a *CampaignStoreAuthorization) Activate() {
	if a.Status == AuthorizationStatusActive {
		return
	}
	a.Status = AuthorizationStatusActive
	a.UpdatedAt = time.Now().UTC()
}

func (a *CampaignStoreAuthorization) Deactivate() {
	if a.Status == AuthorizationStatusInactive {
		return
	}
	a.Status = AuthorizationStatusInactive
	a.UpdatedAt = time.Now().UTC()
}
