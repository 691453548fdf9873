package repository

import (
	"context"

	"taskdeck/internal/model"
)

// TaskRepository is the interface for task persistence. The only
// implementation talks to the REST backend; tests substitute mocks.
type TaskRepository interface {
	ListTasks(ctx context.Context) ([]model.Task, error)
	GetTask(ctx context.Context, id string) (model.Task, error)
	CreateTask(ctx context.Context, opt SaveTaskOptions) (model.Task, error)
	UpdateTask(ctx context.Context, id string, opt SaveTaskOptions) (model.Task, error)
	SetCompleted(ctx context.Context, id string, completed bool) (model.Task, error)
	DeleteTask(ctx context.Context, id string) error
}
