package usecase

import (
	"sync"

	"taskdeck/internal/model"
	"taskdeck/internal/task/repository"
	pkgLog "taskdeck/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.TaskRepository

	mu         sync.Mutex
	tasks      []model.Task
	issuedSeq  uint64 // bumped when a reload is issued
	appliedSeq uint64 // seq of the newest reload folded into tasks
}

// New creates a new task UseCase instance.
func New(l pkgLog.Logger, repo repository.TaskRepository) *implUseCase {
	return &implUseCase{l: l, repo: repo}
}

// snapshotLocked copies the local set. Callers hold uc.mu.
func (uc *implUseCase) snapshotLocked() []model.Task {
	out := make([]model.Task, len(uc.tasks))
	copy(out, uc.tasks)
	return out
}
