package entities

import "strings"

// Center is a regional organizational unit. Stores belong to a center,
// volunteers act on behalf of one, and an inactive center freezes every
// write underneath it.
//
// Center follows a value-update convention: command methods return a fresh
// instance and leave the receiver untouched.
type Center struct {
	ID         CenterID
	Name       string
	Address    string
	City       string
	PostalCode string
	IsActive   bool
}

// NewCenter creates an active center.
func NewCenter(name, address, city, postalCode string) Center {
	return Center{
		ID:         NewCenterID(),
		Name:       strings.TrimSpace(name),
		Address:    strings.TrimSpace(address),
		City:       strings.TrimSpace(city),
		PostalCode: strings.TrimSpace(postalCode),
		IsActive:   true,
	}
}

// AssertActive is the write gate: every operation that mutates the center or
// anything referencing it must call this first.
func (c Center) AssertActive() error {
	if !c.IsActive {
		return ErrCenterInactive
	}
	return nil
}

func (c Center) UpdateInfo(name, address, city, postalCode string) (Center, error) {
	if err := c.AssertActive(); err != nil {
		return Center{}, err
	}
	updated := c
	updated.Name = strings.TrimSpace(name)
	updated.Address = strings.TrimSpace(address)
	updated.City = strings.TrimSpace(city)
	updated.PostalCode = strings.TrimSpace(postalCode)
	return updated, nil
}

// Deactivate fails if the center is already inactive.
func (c Center) Deactivate() (Center, error) {
	if err := c.AssertActive(); err != nil {
		return Center{}, err
	}
	updated := c
	updated.IsActive = false
	return updated, nil
}

// Activate is idempotent: re-activating an active center succeeds.
func (c Center) Activate() Center {
	updated := c
	updated.IsActive = true
	return updated
}
