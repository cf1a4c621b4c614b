package entities

import (
	"fmt"
	"strings"
	"time"
)

// CampaignStatus values cross service boundaries and must match exactly
// between write and read paths.
type CampaignStatus string

const (
	CampaignStatusPlanned   CampaignStatus = "PLANNED"
	CampaignStatusOngoing   CampaignStatus = "ONGOING"
	CampaignStatusFinished  CampaignStatus = "FINISHED"
	CampaignStatusClosed    CampaignStatus = "CLOSED"
	CampaignStatusCancelled CampaignStatus = "CANCELLED"
)

// Campaign is a yearly collection drive.
//
// Lifecycle: PLANNED -> ONGOING -> FINISHED -> CLOSED, with CANCELLED
// reachable from any non-CLOSED state. After the official end date the
// campaign keeps accepting entries through a grace window, because weights
// recorded on paper during the final days trickle in late.
type Campaign struct {
	ID                 CampaignID
	Name               string
	Year               int
	StartDate          time.Time
	EndDate            time.Time
	GracePeriodEndDate time.Time
	Status             CampaignStatus
	Description        string
	Objectives         string
	CreatedBy          UserID
	CreatedAt          time.Time
	UpdatedAt          time.Time
	ClosedBy           UserID
	ClosedAt           *time.Time
}

// NewCampaign creates a PLANNED campaign. The grace period end date is
// derived from the official end date plus gracePeriodDays.
func NewCampaign(name string, year int, startDate, endDate time.Time, gracePeriodDays int, createdBy UserID, description, objectives string) (*Campaign, error) {
	now := time.Now().UTC()
	c := &Campaign{
		ID:                 NewCampaignID(),
		Name:               strings.TrimSpace(name),
		Year:               year,
		StartDate:          startDate,
		EndDate:            endDate,
		GracePeriodEndDate: endDate.AddDate(0, 0, gracePeriodDays),
		Status:             CampaignStatusPlanned,
		Description:        description,
		Objectives:         objectives,
		CreatedBy:          createdBy,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := c.validateDates(); err != nil {
		return nil, err
	}
	return c, nil
}

// validateDates holds every temporal invariant; it is re-run after any edit.
func (c *Campaign) validateDates() error {
	if c.StartDate.Year() != c.Year || c.EndDate.Year() != c.Year {
		return fmt.Errorf("%w: campaign %d must start and end within year %d", ErrInvalidCampaignPeriod, c.Year, c.Year)
	}
	if !c.EndDate.After(c.StartDate) {
		return fmt.Errorf("%w: end date must be after start date", ErrInvalidCampaignPeriod)
	}
	if c.EndDate.Sub(c.StartDate) < 24*time.Hour {
		return fmt.Errorf("%w: campaign must last at least 1 day", ErrInvalidCampaignPeriod)
	}
	if c.GracePeriodEndDate.Before(c.EndDate) {
		return fmt.Errorf("%w: grace period end date must be on or after end date", ErrInvalidCampaignPeriod)
	}
	return nil
}

// UpdateInfo edits name, dates and free text. Only a PLANNED campaign may be
// modified.
func (c *Campaign) UpdateInfo(name string, startDate, endDate, gracePeriodEndDate time.Time, description, objectives string) error {
	if c.Status != CampaignStatusPlanned {
		return ErrCampaignNotModifiable
	}

	previous := *c
	c.Name = strings.TrimSpace(name)
	c.StartDate = startDate
	c.EndDate = endDate
	c.GracePeriodEndDate = gracePeriodEndDate
	c.Description = description
	c.Objectives = objectives

	if err := c.validateDates(); err != nil {
		*c = previous
		return err
	}
	c.UpdatedAt = time.Now().UTC()
	return nil
}

func (c *Campaign) Start() error {
	if c.Status != CampaignStatusPlanned {
		return fmt.Errorf("%w: cannot start from %s", ErrInvalidStatusTransition, c.Status)
	}
	c.Status = CampaignStatusOngoing
	c.UpdatedAt = time.Now().UTC()
	return nil
}

func (c *Campaign) Complete() error {
	if c.Status != CampaignStatusOngoing {
		return fmt.Errorf("%w: cannot complete from %s", ErrInvalidStatusTransition, c.Status)
	}
	c.Status = CampaignStatusFinished
	c.UpdatedAt = time.Now().UTC()
	return nil
}

// Close records who closed the campaign and when. Closing is only legal from
// ONGOING or FINISHED.
func (c *Campaign) Close(closedBy UserID) error {
	switch c.Status {
	case CampaignStatusClosed:
		return fmt.Errorf("%w: campaign is already closed", ErrCannotCloseCampaign)
	case CampaignStatusCancelled:
		return fmt.Errorf("%w: cannot close a cancelled campaign", ErrCannotCloseCampaign)
	case CampaignStatusPlanned:
		return fmt.Errorf("%w: cannot close a campaign that has not started", ErrCannotCloseCampaign)
	}

	now := time.Now().UTC()
	c.Status = CampaignStatusClosed
	c.ClosedBy = closedBy
	c.ClosedAt = &now
	c.UpdatedAt = now
	return nil
}

// Cancel fails only on a CLOSED campaign and is idempotent when already
// cancelled.
func (c *Campaign) Cancel() error {
	if c.Status == CampaignStatusClosed {
		return ErrCannotCancelClosedCampaign
	}
	if c.Status == CampaignStatusCancelled {
		return nil
	}
	c.Status = CampaignStatusCancelled
	c.UpdatedAt = time.Now().UTC()
	return nil
}

// CanAcceptEntries reports whether a collection entry may be recorded as of
// the given date: the campaign must be ONGOING or FINISHED and the date must
// not be past the grace period end. The start date deliberately plays no
// role here.
func (c *Campaign) CanAcceptEntries(asOf time.Time) bool {
	if c.Status != CampaignStatusOngoing && c.Status != CampaignStatusFinished {
		return false
	}
	return !asOf.After(c.GracePeriodEndDate)
}

func (c *Campaign) CanBeModified() bool {
	return c.Status == CampaignStatusPlanned
}

func (c *Campaign) IsInOfficialPeriod(date time.Time) bool {
	return !date.Before(c.StartDate) && !date.After(c.EndDate)
}

func (c *Campaign) IsInGracePeriod(date time.Time) bool {
	return date.After(c.EndDate) && !date.After(c.GracePeriodEndDate)
}
