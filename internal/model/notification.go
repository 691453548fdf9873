package model

import "time"

// Notification is a server-owned due-date reminder tied to a task.
type Notification struct {
	ID        string
	TaskID    string
	TaskTitle string
	Title     string
	Message   string
	Read      bool
	CreatedAt time.Time
}
