package task

import (
	"time"

	"taskdeck/internal/model"
)

// CategoryFilter selects tasks by category; All bypasses the predicate.
type CategoryFilter string

const CategoryAll CategoryFilter = "all"

// PriorityFilter selects tasks by priority; All bypasses the predicate.
type PriorityFilter string

const PriorityAll PriorityFilter = "all"

// StatusFilter selects tasks by completion state.
type StatusFilter string

const (
	StatusAll       StatusFilter = "all"
	StatusActive    StatusFilter = "active"
	StatusCompleted StatusFilter = "completed"
)

// SortKey selects the ordering applied after filtering.
type SortKey string

const (
	SortByDueDate  SortKey = "due_date"
	SortByPriority SortKey = "priority"
	SortByTitle    SortKey = "title"
)

// Criteria is the ephemeral filter/sort configuration for the task
// list. It is never persisted; the zero value shows everything sorted
// by due date.
type Criteria struct {
	Search   string
	Category CategoryFilter
	Priority PriorityFilter
	Status   StatusFilter
	SortBy   SortKey
}

// SaveInput carries the full editable field set of the task form. An
// empty ID means create; otherwise the task is updated in place.
type SaveInput struct {
	ID          string
	Title       string
	Description string
	Priority    model.Priority
	Category    model.Category
	DueDate     *time.Time
}
