package usecase

import (
	"context"

	"taskdeck/internal/model"
)

// Delete removes the task via the gateway, then drops it from the
// local set. A failed call leaves the set unchanged.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.DeleteTask(ctx, id); err != nil {
		return err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	for i := range uc.tasks {
		if uc.tasks[i].ID == id {
			uc.tasks = append(uc.tasks[:i], uc.tasks[i+1:]...)
			break
		}
	}

	uc.l.Infof(ctx, "task: deleted %s", id)
	return nil
}

// ToggleComplete flips the completion flag via the gateway, then folds
// the server-returned task into the local set.
func (uc *implUseCase) ToggleComplete(ctx context.Context, id string, completed bool) (model.Task, error) {
	updated, err := uc.repo.SetCompleted(ctx, id, completed)
	if err != nil {
		return model.Task{}, err
	}

	uc.replace(updated)
	return updated, nil
}
