package task

import (
	"testing"
	"time"

	"taskdeck/internal/model"
)

func date(day int) *time.Time {
	d := time.Date(2026, time.September, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func fixtureTasks() []model.Task {
	return []model.Task{
		{ID: "1", Title: "Write report", Description: "quarterly numbers", Priority: model.PriorityLow, Category: model.CategoryWork, DueDate: date(10)},
		{ID: "2", Title: "buy groceries", Description: "milk and eggs", Priority: model.PriorityHigh, Category: model.CategoryPersonal, DueDate: date(2)},
		{ID: "3", Title: "Read chapter 4", Description: "", Priority: model.PriorityMedium, Category: model.CategoryStudy, Completed: true},
		{ID: "4", Title: "Call plumber", Description: "kitchen sink", Priority: model.PriorityHigh, Category: model.CategoryPersonal, DueDate: date(5)},
	}
}

func ids(tasks []model.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func assertIDs(t *testing.T, got []model.Task, want ...string) {
	t.Helper()
	gotIDs := ids(got)
	if len(gotIDs) != len(want) {
		t.Fatalf("expected ids %v, got %v", want, gotIDs)
	}
	for i := range want {
		if gotIDs[i] != want[i] {
			t.Fatalf("expected ids %v, got %v", want, gotIDs)
		}
	}
}

func TestCriteria_Apply_Filtering(t *testing.T) {
	tasks := fixtureTasks()

	t.Run("zero value keeps everything, due date order", func(t *testing.T) {
		got := Criteria{}.Apply(tasks)
		assertIDs(t, got, "2", "4", "1", "3")
	})

	t.Run("all sentinels match zero value", func(t *testing.T) {
		c := Criteria{Category: CategoryAll, Priority: PriorityAll, Status: StatusAll}
		assertIDs(t, c.Apply(tasks), "2", "4", "1", "3")
	})

	t.Run("search is case-insensitive over title and description", func(t *testing.T) {
		assertIDs(t, Criteria{Search: "GROCERIES"}.Apply(tasks), "2")
		assertIDs(t, Criteria{Search: "kitchen"}.Apply(tasks), "4")
	})

	t.Run("category filter is exact", func(t *testing.T) {
		c := Criteria{Category: CategoryFilter(model.CategoryPersonal)}
		assertIDs(t, c.Apply(tasks), "2", "4")
	})

	t.Run("priority filter is exact", func(t *testing.T) {
		c := Criteria{Priority: PriorityFilter(model.PriorityHigh)}
		assertIDs(t, c.Apply(tasks), "2", "4")
	})

	t.Run("status active and completed", func(t *testing.T) {
		assertIDs(t, Criteria{Status: StatusActive}.Apply(tasks), "2", "4", "1")
		assertIDs(t, Criteria{Status: StatusCompleted}.Apply(tasks), "3")
	})

	t.Run("predicates are conjunctive", func(t *testing.T) {
		c := Criteria{
			Search:   "sink",
			Category: CategoryFilter(model.CategoryPersonal),
			Priority: PriorityFilter(model.PriorityHigh),
			Status:   StatusActive,
		}
		assertIDs(t, c.Apply(tasks), "4")
	})

	t.Run("no match yields empty, not nil panic", func(t *testing.T) {
		got := Criteria{Search: "zzz"}.Apply(tasks)
		if len(got) != 0 {
			t.Fatalf("expected no tasks, got %v", ids(got))
		}
	})
}

func TestCriteria_Apply_Sorting(t *testing.T) {
	t.Run("due date ascending with undated last", func(t *testing.T) {
		got := Criteria{SortBy: SortByDueDate}.Apply(fixtureTasks())
		assertIDs(t, got, "2", "4", "1", "3")
	})

	t.Run("priority high medium low", func(t *testing.T) {
		got := Criteria{SortBy: SortByPriority}.Apply(fixtureTasks())
		assertIDs(t, got, "2", "4", "3", "1")
	})

	t.Run("title is case-insensitive", func(t *testing.T) {
		got := Criteria{SortBy: SortByTitle}.Apply(fixtureTasks())
		assertIDs(t, got, "2", "4", "3", "1")
	})

	t.Run("ties keep incoming order", func(t *testing.T) {
		tasks := []model.Task{
			{ID: "a", Title: "x", Priority: model.PriorityHigh},
			{ID: "b", Title: "y", Priority: model.PriorityHigh},
			{ID: "c", Title: "z", Priority: model.PriorityHigh},
		}
		got := Criteria{SortBy: SortByPriority}.Apply(tasks)
		assertIDs(t, got, "a", "b", "c")
	})

	t.Run("input slice is not mutated", func(t *testing.T) {
		tasks := fixtureTasks()
		Criteria{SortBy: SortByTitle}.Apply(tasks)
		assertIDs(t, tasks, "1", "2", "3", "4")
	})
}
