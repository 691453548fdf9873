package rest

import (
	"context"
	"fmt"

	"taskdeck/internal/model"
	"taskdeck/internal/task/repository"
	"taskdeck/pkg/taskapi"
)

func (r *implRepository) ListTasks(ctx context.Context) ([]model.Task, error) {
	wire, err := r.client.ListTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	tasks := make([]model.Task, 0, len(wire))
	for _, t := range wire {
		tasks = append(tasks, toModel(t))
	}
	return tasks, nil
}

func (r *implRepository) GetTask(ctx context.Context, id string) (model.Task, error) {
	wireID, err := parseWireID(id)
	if err != nil {
		return model.Task{}, err
	}

	wire, err := r.client.GetTask(ctx, wireID)
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to get task %s: %w", id, err)
	}
	return toModel(*wire), nil
}

func (r *implRepository) CreateTask(ctx context.Context, opt repository.SaveTaskOptions) (model.Task, error) {
	wire, err := r.client.CreateTask(ctx, taskapi.CreateTaskRequest{
		Title:       opt.Title,
		Description: opt.Description,
		Priority:    string(opt.Priority),
		Category:    string(opt.Category),
		DueDate:     toWireDue(opt.DueDate),
	})
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to create task: %w", err)
	}
	return toModel(*wire), nil
}

func (r *implRepository) UpdateTask(ctx context.Context, id string, opt repository.SaveTaskOptions) (model.Task, error) {
	wireID, err := parseWireID(id)
	if err != nil {
		return model.Task{}, err
	}

	wire, err := r.client.UpdateTask(ctx, wireID, toSaveRequest(opt))
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to update task %s: %w", id, err)
	}
	return toModel(*wire), nil
}

func (r *implRepository) SetCompleted(ctx context.Context, id string, completed bool) (model.Task, error) {
	wireID, err := parseWireID(id)
	if err != nil {
		return model.Task{}, err
	}

	wire, err := r.client.SetTaskCompleted(ctx, wireID, completed)
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to toggle task %s: %w", id, err)
	}
	return toModel(*wire), nil
}

func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	wireID, err := parseWireID(id)
	if err != nil {
		return err
	}

	if err := r.client.DeleteTask(ctx, wireID); err != nil {
		return fmt.Errorf("failed to delete task %s: %w", id, err)
	}
	return nil
}
