package entities

import (
	"errors"
	"testing"
)

func TestCenterActiveGate(t *testing.T) {
	t.Run("created active", func(t *testing.T) {
		c := NewCenter(" Centre Montauban ", "10 Rue des Carmes", "Montauban", "82000")
		if !c.IsActive {
			t.Fatalf("new center must be active")
		}
		if c.Name != "Centre Montauban" {
			t.Fatalf("name must be trimmed, got %q", c.Name)
		}
	})

	t.Run("inactive center is read-only", func(t *testing.T) {
		c := NewCenter("c", "a", "v", "00000")
		inactive, err := c.Deactivate()
		if err != nil {
			t.Fatalf("deactivate: %v", err)
		}
		if _, err := inactive.UpdateInfo("n", "a", "v", "00000"); !errors.Is(err, ErrCenterInactive) {
			t.Fatalf("expected ErrCenterInactive, got %v", err)
		}
		if _, err := inactive.Deactivate(); !errors.Is(err, ErrCenterInactive) {
			t.Fatalf("double deactivate must fail, got %v", err)
		}
	})

	t.Run("activate is idempotent", func(t *testing.T) {
		c := NewCenter("c", "a", "v", "00000")
		again := c.Activate()
		if !again.IsActive {
			t.Fatalf("activate must leave the center active")
		}
	})

	t.Run("updates return a fresh instance", func(t *testing.T) {
		c := NewCenter("before", "a", "v", "00000")
		updated, err := c.UpdateInfo("after", "a", "v", "00000")
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if c.Name != "before" || updated.Name != "after" {
			t.Fatalf("receiver must stay untouched: %q / %q", c.Name, updated.Name)
		}
	})
}
