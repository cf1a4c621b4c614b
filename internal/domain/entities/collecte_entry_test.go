package entities

import (
	"errors"
	"testing"
)

func openEntry() *CollecteEntry {
	return NewCollecteEntry(NewCampaignID(), NewStoreID(), NewCenterID(), NewUserID())
}

func TestCollecteEntryItems(t *testing.T) {
	t.Run("total weight is the live rounded sum", func(t *testing.T) {
		e := openEntry()
		if err := e.AddItem("CONSERVE001", "Conserves", "Légumes", 5.3); err != nil {
			t.Fatalf("add item: %v", err)
		}
		if err := e.AddItem("PATES001", "Épicerie", "Pâtes", 2.0); err != nil {
			t.Fatalf("add item: %v", err)
		}
		if got := e.TotalWeightKg(); got != 8 {
			t.Fatalf("total = %d, want 8 (6 + 2)", got)
		}

		if err := e.RemoveItem(0); err != nil {
			t.Fatalf("remove item: %v", err)
		}
		if got := e.TotalWeightKg(); got != 2 {
			t.Fatalf("total after removal = %d, want 2", got)
		}
	})

	t.Run("invalid weight is rejected", func(t *testing.T) {
		e := openEntry()
		if err := e.AddItem("RIZ001", "Épicerie", "", 0); !errors.Is(err, ErrInvalidWeight) {
			t.Fatalf("expected ErrInvalidWeight, got %v", err)
		}
	})

	t.Run("remove out-of-range index is rejected", func(t *testing.T) {
		e := openEntry()
		_ = e.AddItem("RIZ001", "Épicerie", "", 1)
		for _, idx := range []int{-1, 1, 10} {
			if err := e.RemoveItem(idx); !errors.Is(err, ErrEntryItemIndex) {
				t.Fatalf("expected ErrEntryItemIndex for %d, got %v", idx, err)
			}
		}
	})
}

func TestCollecteEntryValidation(t *testing.T) {
	t.Run("empty entry cannot be validated", func(t *testing.T) {
		e := openEntry()
		if err := e.Validate(); !errors.Is(err, ErrEmptyEntry) {
			t.Fatalf("expected ErrEmptyEntry, got %v", err)
		}
		if e.Status != EntryStatusInProgress || e.ValidatedAt != nil {
			t.Fatalf("failed validation must not change the entry: %+v", e)
		}
	})

	t.Run("validation stamps validatedAt", func(t *testing.T) {
		e := openEntry()
		_ = e.AddItem("RIZ001", "Épicerie", "", 1.5)
		if err := e.Validate(); err != nil {
			t.Fatalf("validate: %v", err)
		}
		if e.Status != EntryStatusValidated || e.ValidatedAt == nil {
			t.Fatalf("expected VALIDATED with timestamp, got %+v", e)
		}
	})

	t.Run("validated entry is immutable", func(t *testing.T) {
		e := openEntry()
		_ = e.AddItem("RIZ001", "Épicerie", "", 1.5)
		_ = e.Validate()

		if err := e.AddItem("PATES001", "Épicerie", "", 1); !errors.Is(err, ErrEntryAlreadyValidated) {
			t.Fatalf("expected ErrEntryAlreadyValidated, got %v", err)
		}
		if err := e.RemoveItem(0); !errors.Is(err, ErrEntryAlreadyValidated) {
			t.Fatalf("expected ErrEntryAlreadyValidated, got %v", err)
		}
		if err := e.Validate(); !errors.Is(err, ErrEntryAlreadyValidated) {
			t.Fatalf("expected ErrEntryAlreadyValidated, got %v", err)
		}
	})
}
