package entities

import (
	"strings"
	"time"
)

// StoreStatus is persisted and serialized verbatim; the values are part of
// the external contract.
type StoreStatus string

const (
	StoreStatusAvailable   StoreStatus = "AVAILABLE"
	StoreStatusUnavailable StoreStatus = "UNAVAILABLE"
	StoreStatusClosed      StoreStatus = "CLOSED"
)

// Store is a partner retail location owned by exactly one Center.
//
// State machine: AVAILABLE and UNAVAILABLE toggle freely; CLOSED is terminal.
// Once closed, neither status nor info nor images may change.
//
// Uniqueness (enforced by the orchestration + storage layers, not here):
// a center may run several stores of the same brand, but not two at the
// identical (address, city, postalCode).
type Store struct {
	ID              StoreID
	CenterID        CenterID
	Name            string
	Address         string
	City            string
	PostalCode      string
	Phone           string
	ContactName     string
	Status          StoreStatus
	StatusChangedAt *time.Time
	StatusChangedBy UserID
	StatusReason    string
	Images          []StoreImage
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewStore creates a store in AVAILABLE status with an empty gallery.
func NewStore(centerID CenterID, name, address, city, postalCode, phone, contactName string) Store {
	now := time.Now().UTC()
	return Store{
		ID:          NewStoreID(),
		CenterID:    centerID,
		Name:        strings.TrimSpace(name),
		Address:     strings.TrimSpace(address),
		City:        strings.TrimSpace(city),
		PostalCode:  strings.TrimSpace(postalCode),
		Phone:       strings.TrimSpace(phone),
		ContactName: strings.TrimSpace(contactName),
		Status:      StoreStatusAvailable,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (s *Store) IsClosed() bool {
	return s.Status == StoreStatusClosed
}

func (s *Store) IsAvailableForCollection() bool {
	return s.Status == StoreStatusAvailable
}

func (s *Store) UpdateInfo(name, address, city, postalCode, phone, contactName string) error {
	if s.IsClosed() {
		return ErrStoreAlreadyClosed
	}
	s.Name = strings.TrimSpace(name)
	s.Address = strings.TrimSpace(address)
	s.City = strings.TrimSpace(city)
	s.PostalCode = strings.TrimSpace(postalCode)
	s.Phone = strings.TrimSpace(phone)
	s.ContactName = strings.TrimSpace(contactName)
	s.UpdatedAt = time.Now().UTC()
	return nil
}

// MarkAsUnavailable records who paused the store and why. The reason is
// mandatory: an unavailable store without an explanation is not actionable
// for the center's administrators.
func (s *Store) MarkAsUnavailable(userID UserID, reason string) error {
	if s.IsClosed() {
		return ErrStoreAlreadyClosed
	}
	if strings.TrimSpace(reason) == "" {
		return ErrStatusReasonNeeded
	}
	s.setStatus(StoreStatusUnavailable, userID, strings.TrimSpace(reason))
	return nil
}

// MarkAsAvailable clears the unavailability reason.
func (s *Store) MarkAsAvailable(userID UserID) error {
	if s.IsClosed() {
		return ErrStoreAlreadyClosed
	}
	s.setStatus(StoreStatusAvailable, userID, "")
	return nil
}

// Close is terminal; there is no transition out of CLOSED.
func (s *Store) Close(userID UserID, reason string) error {
	if s.IsClosed() {
		return ErrStoreAlreadyClosed
	}
	if strings.TrimSpace(reason) == "" {
		return ErrStatusReasonNeeded
	}
	s.setStatus(StoreStatusClosed, userID, strings.TrimSpace(reason))
	return nil
}

func (s *Store) setStatus(status StoreStatus, userID UserID, reason string) {
	now := time.Now().UTC()
	s.Status = status
	s.StatusChangedAt = &now
	s.StatusChangedBy = userID
	s.StatusReason = reason
	s.UpdatedAt = now
}

// AddImage appends a validated image. A primary image silently demotes any
// previous primary: at most one image carries the flag at any time.
func (s *Store) AddImage(rawURL string, isPrimary bool) error {
	if s.IsClosed() {
		return ErrStoreAlreadyClosed
	}

	img, err := NewStoreImage(rawURL, isPrimary)
	if err != nil {
		return err
	}

	if isPrimary {
		for i := range s.Images {
			s.Images[i] = s.Images[i].AsSecondary()
		}
	}

	s.Images = append(s.Images, img)
	s.UpdatedAt = time.Now().UTC()
	return nil
}

func (s *Store) RemoveImage(rawURL string) error {
	if s.IsClosed() {
		return ErrStoreAlreadyClosed
	}
	if !s.hasImage(rawURL) {
		return ErrStoreImageNotFound
	}

	kept := s.Images[:0]
	for _, img := range s.Images {
		if img.URL != rawURL {
			kept = append(kept, img)
		}
	}
	s.Images = kept
	s.UpdatedAt = time.Now().UTC()
	return nil
}

func (s *Store) SetPrimaryImage(rawURL string) error {
	if s.IsClosed() {
		return ErrStoreAlreadyClosed
	}
	if !s.hasImage(rawURL) {
		return ErrStoreImageNotFound
	}

	for i := range s.Images {
		if s.Images[i].URL == rawURL {
			s.Images[i] = s.Images[i].AsPrimary()
		} else {
			s.Images[i] = s.Images[i].AsSecondary()
		}
	}
	s.UpdatedAt = time.Now().UTC()
	return nil
}

// PrimaryImageURL returns the primary image url, falling back to the first
// image, or "" for an empty gallery.
func (s *Store) PrimaryImageURL() string {
	for _, img := range s.Images {
		if img.IsPrimary {
			return img.URL
		}
	}
	if len(s.Images) > 0 {
		return s.Images[0].URL
	}
	return ""
}

func (s *Store) hasImage(rawURL string) bool {
	for _, img := range s.Images {
		if img.URL == rawURL {
			return true
		}
	}
	return false
}
