package rest

import (
	"fmt"
	"strconv"
	"time"

	"taskdeck/internal/model"
	"taskdeck/internal/task/repository"
	"taskdeck/pkg/taskapi"
)

// Timestamp layouts the backend is known to emit. isoformat() output
// has no zone suffix, so RFC3339 alone is not enough.
var wireLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
}

func parseWireTime(s string) (time.Time, bool) {
	for _, layout := range wireLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// toModel converts a wire task into the domain task. Timestamps cross
// the boundary as ISO-8601 strings and are converted here only.
func toModel(t taskapi.Task) model.Task {
	out := model.Task{
		ID:          strconv.FormatInt(t.ID, 10),
		Title:       t.Title,
		Description: t.Description,
		Priority:    model.Priority(t.Priority),
		Category:    model.Category(t.Category),
		Completed:   t.IsCompleted,
	}
	if t.DueDate != nil {
		if due, ok := parseWireTime(*t.DueDate); ok {
			out.DueDate = &due
		}
	}
	if created, ok := parseWireTime(t.CreatedAt); ok {
		out.CreatedAt = created
	}
	if updated, ok := parseWireTime(t.UpdatedAt); ok {
		out.UpdatedAt = updated
	}
	return out
}

func toWireDue(due *time.Time) *string {
	if due == nil {
		return nil
	}
	s := due.Format(time.RFC3339)
	return &s
}

func parseWireID(id string) (int64, error) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid task id %q: %w", id, err)
	}
	return n, nil
}

func toSaveRequest(opt repository.SaveTaskOptions) taskapi.UpdateTaskRequest {
	return taskapi.UpdateTaskRequest{
		Title:       opt.Title,
		Description: opt.Description,
		Priority:    string(opt.Priority),
		Category:    string(opt.Category),
		DueDate:     toWireDue(opt.DueDate),
	}
}
