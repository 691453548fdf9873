package tui

import (
	"testing"

	"taskdeck/internal/model"
)

func TestTaskForm_Submit(t *testing.T) {
	t.Run("title required", func(t *testing.T) {
		f := newTaskForm(nil)
		if _, problem := f.submit(); problem == "" {
			t.Fatal("expected a validation problem for the empty title")
		}
	})

	t.Run("defaults to medium personal", func(t *testing.T) {
		f := newTaskForm(nil)
		f.title.SetValue("new task")

		in, problem := f.submit()
		if problem != "" {
			t.Fatalf("unexpected problem: %s", problem)
		}
		if in.Priority != model.PriorityMedium || in.Category != model.CategoryPersonal {
			t.Errorf("unexpected defaults: %s/%s", in.Priority, in.Category)
		}
		if in.DueDate != nil {
			t.Error("empty due date field must yield nil")
		}
	})

	t.Run("due date expression resolves", func(t *testing.T) {
		f := newTaskForm(nil)
		f.title.SetValue("x")
		f.dueDate.SetValue("2026-09-01")

		in, problem := f.submit()
		if problem != "" {
			t.Fatalf("unexpected problem: %s", problem)
		}
		if in.DueDate == nil || in.DueDate.Day() != 1 {
			t.Errorf("due date not resolved: %v", in.DueDate)
		}
	})

	t.Run("garbage due date is a form problem", func(t *testing.T) {
		f := newTaskForm(nil)
		f.title.SetValue("x")
		f.dueDate.SetValue("whenever")

		if _, problem := f.submit(); problem == "" {
			t.Fatal("expected a validation problem for the due date")
		}
	})

	t.Run("editing carries the task id", func(t *testing.T) {
		existing := model.Task{ID: "9", Title: "old", Priority: model.PriorityHigh, Category: model.CategoryWork}
		f := newTaskForm(&existing)

		in, problem := f.submit()
		if problem != "" {
			t.Fatalf("unexpected problem: %s", problem)
		}
		if in.ID != "9" || in.Title != "old" || in.Priority != model.PriorityHigh {
			t.Errorf("existing task not prefilled: %+v", in)
		}
	})
}
