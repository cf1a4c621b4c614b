package entities

import (
	"fmt"

	"github.com/google/uuid"
)

// Typed identifiers, one per entity kind. Keeping them distinct types makes it
// impossible to pass a store id where a campaign id is expected, which matters
// in a service whose core is a web of cross-entity references.
//
// All ids are UUID-shaped strings. Parse validates, New generates.

type CenterID string

type StoreID string

type CampaignID string

type AuthorizationID string

type EntryID string

type UserID string

func NewCenterID() CenterID               { return CenterID(uuid.NewString()) }
func NewStoreID() StoreID                 { return StoreID(uuid.NewString()) }
func NewCampaignID() CampaignID           { return CampaignID(uuid.NewString()) }
func NewAuthorizationID() AuthorizationID { return AuthorizationID(uuid.NewString()) }
func NewEntryID() EntryID                 { return EntryID(uuid.NewString()) }
func NewUserID() UserID                   { return UserID(uuid.NewString()) }

func ParseCenterID(s string) (CenterID, error) {
	if err := validateID("center", s); err != nil {
		return "", err
	}
	return CenterID(s), nil
}

func ParseStoreID(s string) (StoreID, error) {
	if err := validateID("store", s); err != nil {
		return "", err
	}
	return StoreID(s), nil
}

func ParseCampaignID(s string) (CampaignID, error) {
	if err := validateID("campaign", s); err != nil {
		return "", err
	}
	return CampaignID(s), nil
}

func ParseAuthorizationID(s string) (AuthorizationID, error) {
	if err := validateID("authorization", s); err != nil {
		return "", err
	}
	return AuthorizationID(s), nil
}

func ParseEntryID(s string) (EntryID, error) {
	if err := validateID("entry", s); err != nil {
		return "", err
	}
	return EntryID(s), nil
}

func ParseUserID(s string) (UserID, error) {
	if err := validateID("user", s); err != nil {
		return "", err
	}
	return UserID(s), nil
}

func (id CenterID) String() string        { return string(id) }
func (id StoreID) String() string         { return string(id) }
func (id CampaignID) String() string      { return string(id) }
func (id AuthorizationID) String() string { return string(id) }
func (id EntryID) String() string         { return string(id) }
func (id UserID) String() string          { return string(id) }

func validateID(kind, s string) error {
	if _, err := uuid.Parse(s); err != nil {
		return fmt.Errorf("%w: %s id %q", ErrInvalidID, kind, s)
	}
	return nil
}
