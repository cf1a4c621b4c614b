package entities

import "time"

// EntryStatus values are part of the external contract.
type EntryStatus string

const (
	EntryStatusInProgress EntryStatus = "IN_PROGRESS"
	EntryStatusValidated  EntryStatus = "VALIDATED"
)

// EntryItem is a snapshot of the product catalog at the moment the item was
// added: later catalog edits never retroactively change recorded entries.
// WeightKg is whole kilograms, already ceiling-rounded by Weight.
type EntryItem struct {
	ProductRef string
	Family     string
	SubFamily  string
	WeightKg   int
}

// CollecteEntry is one volunteer's collection record for one
// (campaign, store) pair, recorded within one center.
//
// Lifecycle: IN_PROGRESS -> VALIDATED, terminal. While in progress the item
// list is editable; validation freezes everything.
type CollecteEntry struct {
	ID          EntryID
	CampaignID  CampaignID
	StoreID     StoreID
	CenterID    CenterID
	CreatedBy   UserID
	Status      EntryStatus
	Items       []EntryItem
	CreatedAt   time.Time
	ValidatedAt *time.Time
}

// NewCollecteEntry opens an empty IN_PROGRESS draft.
func NewCollecteEntry(campaignID CampaignID, storeID StoreID, centerID CenterID, createdBy UserID) *CollecteEntry {
	return &CollecteEntry{
		ID:         NewEntryID(),
		CampaignID: campaignID,
		StoreID:    storeID,
		CenterID:   centerID,
		CreatedBy:  createdBy,
		Status:     EntryStatusInProgress,
		CreatedAt:  time.Now().UTC(),
	}
}

func (e *CollecteEntry) IsValidated() bool {
	return e.Status == EntryStatusValidated
}

// AddItem records a weighed donation. The weight is validated and
// ceiling-rounded here, once.
func (e *CollecteEntry) AddItem(productRef, family, subFamily string, weightKg float64) error {
	if err := e.ensureEditable(); err != nil {
		return err
	}

	w, err := WeightFromKg(weightKg)
	if err != nil {
		return err
	}

	e.Items = append(e.Items, EntryItem{
		ProductRef: productRef,
		Family:     family,
		SubFamily:  subFamily,
		WeightKg:   w.Kg(),
	})
	return nil
}

// RemoveItem rejects an out-of-range index rather than ignoring it.
func (e *CollecteEntry) RemoveItem(index int) error {
	if err := e.ensureEditable(); err != nil {
		return err
	}
	if index < 0 || index >= len(e.Items) {
		return ErrEntryItemIndex
	}
	e.Items = append(e.Items[:index], e.Items[index+1:]...)
	return nil
}

// Validate freezes the entry. An empty entry cannot be validated.
func (e *CollecteEntry) Validate() error {
	if err := e.ensureEditable(); err != nil {
		return err
	}
	if len(e.Items) == 0 {
		return ErrEmptyEntry
	}

	now := time.Now().UTC()
	e.Status = EntryStatusValidated
	e.ValidatedAt = &now
	return nil
}

// TotalWeightKg is the live sum of current item weights, recomputed on every
// call rather than cached across mutation.
func (e *CollecteEntry) TotalWeightKg() int {
	total := 0
	for _, it := range e.Items {
		total += it.WeightKg
	}
	return total
}

func (e *CollecteEntry) ensureEditable() error {
	if e.IsValidated() {
		return ErrEntryAlreadyValidated
	}
	return nil
}
