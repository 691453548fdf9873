package repository

import (
	"time"

	"taskdeck/internal/model"
)

// SaveTaskOptions holds the full editable field set sent on create and
// update. The backend applies updates partially, but the client always
// computes the whole set for a save.
type SaveTaskOptions struct {
	Title       string
	Description string
	Priority    model.Priority
	Category    model.Category
	DueDate     *time.Time // nil clears the due date
}
