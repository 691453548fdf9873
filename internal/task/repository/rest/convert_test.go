package rest

import (
	"testing"
	"time"

	"taskdeck/internal/model"
	"taskdeck/pkg/taskapi"
)

func TestToModel(t *testing.T) {
	t.Run("isoformat timestamps without zone suffix", func(t *testing.T) {
		due := "2026-09-01T00:00:00"
		got := toModel(taskapi.Task{
			ID:          17,
			Title:       "Write report",
			Priority:    "high",
			Category:    "work",
			DueDate:     &due,
			IsCompleted: true,
			CreatedAt:   "2026-08-28T10:15:30.123456",
			UpdatedAt:   "2026-08-28T12:00:00Z",
		})

		if got.ID != "17" {
			t.Errorf("expected id 17, got %q", got.ID)
		}
		if got.Priority != model.PriorityHigh || got.Category != model.CategoryWork {
			t.Errorf("unexpected priority/category: %s/%s", got.Priority, got.Category)
		}
		if got.DueDate == nil || got.DueDate.Day() != 1 {
			t.Errorf("due date not parsed: %v", got.DueDate)
		}
		if got.CreatedAt.IsZero() || got.UpdatedAt.IsZero() {
			t.Error("timestamps not parsed")
		}
		if !got.Completed {
			t.Error("completion flag lost")
		}
	})

	t.Run("absent due date stays nil", func(t *testing.T) {
		got := toModel(taskapi.Task{ID: 1, Title: "x"})
		if got.DueDate != nil {
			t.Errorf("expected nil due date, got %v", got.DueDate)
		}
	})
}

func TestToWireDue(t *testing.T) {
	if toWireDue(nil) != nil {
		t.Error("nil due date must stay nil so the backend clears it")
	}

	due := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	got := toWireDue(&due)
	if got == nil || *got != "2026-09-01T00:00:00Z" {
		t.Errorf("unexpected wire due date: %v", got)
	}
}

func TestParseWireID(t *testing.T) {
	if _, err := parseWireID("17"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := parseWireID("abc"); err == nil {
		t.Fatal("expected error for non-numeric id")
	}
}
