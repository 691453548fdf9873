package task

import (
	"context"

	"taskdeck/internal/model"
)

// UseCase is the task collection: the authoritative in-memory task set
// plus the mutations that keep it in sync with the backend.
type UseCase interface {
	// Reload replaces the local set with a fresh full-list fetch.
	// A reload that resolves after a newer one has already been
	// applied is dropped.
	Reload(ctx context.Context) ([]model.Task, error)

	// Tasks returns a snapshot of the local set in insertion order.
	Tasks() []model.Task

	// Visible projects the local set through the given criteria.
	Visible(c Criteria) []model.Task

	// Save creates or updates a task via the gateway and folds the
	// server-returned object into the local set on success.
	Save(ctx context.Context, in SaveInput) (model.Task, error)

	// Delete removes a task via the gateway, then locally.
	Delete(ctx context.Context, id string) error

	// ToggleComplete flips the completion flag via the gateway, then
	// locally.
	ToggleComplete(ctx context.Context, id string, completed bool) (model.Task, error)
}
