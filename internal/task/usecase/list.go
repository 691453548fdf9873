package usecase

import (
	"context"

	"taskdeck/internal/model"
	"taskdeck/internal/task"
)

// Reload replaces the local set with a fresh full-list fetch. Reloads
// are sequence-numbered at issue time: a result that resolves after a
// newer reload has already been applied is dropped, so overlapping
// fetches settle on the last-issued one rather than the last to
// resolve. A failed fetch leaves the local set untouched.
func (uc *implUseCase) Reload(ctx context.Context) ([]model.Task, error) {
	uc.mu.Lock()
	uc.issuedSeq++
	seq := uc.issuedSeq
	uc.mu.Unlock()

	tasks, err := uc.repo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if seq < uc.appliedSeq {
		uc.l.Warnf(ctx, "task: dropping stale reload %d, newest applied is %d", seq, uc.appliedSeq)
		return uc.snapshotLocked(), nil
	}

	uc.appliedSeq = seq
	uc.tasks = tasks
	uc.l.Debugf(ctx, "task: reload %d applied, %d tasks", seq, len(tasks))
	return uc.snapshotLocked(), nil
}

// Tasks returns a snapshot of the local set in insertion order.
func (uc *implUseCase) Tasks() []model.Task {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.snapshotLocked()
}

// Visible projects the local set through the criteria without
// mutating it.
func (uc *implUseCase) Visible(c task.Criteria) []model.Task {
	return c.Apply(uc.Tasks())
}
