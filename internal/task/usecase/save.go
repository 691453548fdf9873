package usecase

import (
	"context"

	"taskdeck/internal/model"
	"taskdeck/internal/task"
	"taskdeck/internal/task/repository"
)

// Save creates or updates a task. The gateway call happens first; the
// local set is only touched once the backend confirmed, using the
// server-returned object. On failure the set is left unchanged.
func (uc *implUseCase) Save(ctx context.Context, in task.SaveInput) (model.Task, error) {
	if in.Title == "" {
		return model.Task{}, task.ErrTitleRequired
	}
	if in.Priority == "" {
		in.Priority = model.PriorityMedium
	}
	if !in.Priority.Valid() {
		return model.Task{}, task.ErrInvalidPriority
	}
	if in.Category == "" {
		in.Category = model.CategoryPersonal
	}
	if !in.Category.Valid() {
		return model.Task{}, task.ErrInvalidCategory
	}

	opt := repository.SaveTaskOptions{
		Title:       in.Title,
		Description: in.Description,
		Priority:    in.Priority,
		Category:    in.Category,
		DueDate:     in.DueDate,
	}

	if in.ID == "" {
		created, err := uc.repo.CreateTask(ctx, opt)
		if err != nil {
			return model.Task{}, err
		}

		uc.mu.Lock()
		uc.tasks = append(uc.tasks, created)
		uc.mu.Unlock()

		uc.l.Infof(ctx, "task: created %s", created.ID)
		return created, nil
	}

	updated, err := uc.repo.UpdateTask(ctx, in.ID, opt)
	if err != nil {
		return model.Task{}, err
	}

	uc.replace(updated)
	uc.l.Infof(ctx, "task: updated %s", updated.ID)
	return updated, nil
}

// replace swaps the task with the same ID in place, keeping insertion
// order stable.
func (uc *implUseCase) replace(t model.Task) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	for i := range uc.tasks {
		if uc.tasks[i].ID == t.ID {
			uc.tasks[i] = t
			return
		}
	}
	uc.tasks = append(uc.tasks, t)
}
