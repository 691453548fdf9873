package taskapi

import (
	"context"
	"fmt"
	"net/http"
)

// ListNotifications fetches the notification feed, newest first.
func (c *Client) ListNotifications(ctx context.Context) ([]Notification, error) {
	var out []Notification
	if err := c.do(ctx, http.MethodGet, "/notifications/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MarkNotificationRead marks one notification as read.
func (c *Client) MarkNotificationRead(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/notifications/%d/read", id), nil, nil)
}

// MarkAllNotificationsRead marks every unread notification as read.
func (c *Client) MarkAllNotificationsRead(ctx context.Context) error {
	return c.do(ctx, http.MethodPut, "/notifications/read-all", nil, nil)
}

// DeleteNotification removes one notification.
func (c *Client) DeleteNotification(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/notifications/%d", id), nil, nil)
}

// CheckDueTasks asks the backend to generate reminders for tasks due
// within the next 24 hours.
func (c *Client) CheckDueTasks(ctx context.Context) (*CheckDueTasksResponse, error) {
	var out CheckDueTasksResponse
	if err := c.do(ctx, http.MethodPost, "/notifications/check-due-tasks", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
