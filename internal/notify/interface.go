package notify

import (
	"context"

	"taskdeck/internal/model"
)

// Repository is the notification slice of the backend API.
type Repository interface {
	ListNotifications(ctx context.Context) ([]model.Notification, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) error
	Delete(ctx context.Context, id string) error
	// CheckDueTasks asks the backend to create reminders for tasks
	// due soon and returns how many it created.
	CheckDueTasks(ctx context.Context) (int, error)
}
