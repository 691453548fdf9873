package taskapi

import (
	"context"
	"fmt"
	"net/http"
)

// ListTasks fetches every task for the session via GET /tasks/.
// The backend offers no pagination; this is the only bulk read path.
func (c *Client) ListTasks(ctx context.Context) ([]Task, error) {
	var out []Task
	if err := c.do(ctx, http.MethodGet, "/tasks/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetTask fetches a single task by id.
func (c *Client) GetTask(ctx context.Context, id int64) (*Task, error) {
	var out Task
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/tasks/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateTask creates a task via POST /tasks/ and returns the
// server-assigned object.
func (c *Client) CreateTask(ctx context.Context, req CreateTaskRequest) (*Task, error) {
	var out Task
	if err := c.do(ctx, http.MethodPost, "/tasks/", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateTask updates the editable field set via PUT /tasks/{id} and
// returns the server's view of the task.
func (c *Client) UpdateTask(ctx context.Context, id int64, req UpdateTaskRequest) (*Task, error) {
	var out Task
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/tasks/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetTaskCompleted flips only the completion flag via PUT /tasks/{id}.
func (c *Client) SetTaskCompleted(ctx context.Context, id int64, completed bool) (*Task, error) {
	body := map[string]bool{"is_completed": completed}
	var out Task
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/tasks/%d", id), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteTask removes a task via DELETE /tasks/{id}.
func (c *Client) DeleteTask(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/tasks/%d", id), nil, nil)
}
