package rest

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"taskdeck/internal/model"
	"taskdeck/pkg/taskapi"
)

var wireLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
}

func toModel(n taskapi.Notification) model.Notification {
	out := model.Notification{
		ID:        strconv.FormatInt(n.ID, 10),
		TaskID:    strconv.FormatInt(n.TaskID, 10),
		TaskTitle: n.TaskTitle,
		Title:     n.Title,
		Message:   n.Message,
		Read:      n.IsRead,
	}
	for _, layout := range wireLayouts {
		if t, err := time.Parse(layout, n.CreatedAt); err == nil {
			out.CreatedAt = t
			break
		}
	}
	return out
}

func parseWireID(id string) (int64, error) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid notification id %q: %w", id, err)
	}
	return n, nil
}

func (r *implRepository) ListNotifications(ctx context.Context) ([]model.Notification, error) {
	wire, err := r.client.ListNotifications(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	out := make([]model.Notification, 0, len(wire))
	for _, n := range wire {
		out = append(out, toModel(n))
	}
	return out, nil
}

func (r *implRepository) MarkRead(ctx context.Context, id string) error {
	wireID, err := parseWireID(id)
	if err != nil {
		return err
	}
	return r.client.MarkNotificationRead(ctx, wireID)
}

func (r *implRepository) MarkAllRead(ctx context.Context) error {
	return r.client.MarkAllNotificationsRead(ctx)
}

func (r *implRepository) Delete(ctx context.Context, id string) error {
	wireID, err := parseWireID(id)
	if err != nil {
		return err
	}
	return r.client.DeleteNotification(ctx, wireID)
}

func (r *implRepository) CheckDueTasks(ctx context.Context) (int, error) {
	resp, err := r.client.CheckDueTasks(ctx)
	if err != nil {
		return 0, err
	}
	return resp.Count, nil
}
