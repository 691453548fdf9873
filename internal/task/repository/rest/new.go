package rest

import (
	"taskdeck/pkg/log"
	"taskdeck/pkg/taskapi"
)

type implRepository struct {
	l      log.Logger
	client *taskapi.Client
}

// New creates a TaskRepository backed by the REST gateway.
func New(l log.Logger, client *taskapi.Client) *implRepository {
	return &implRepository{l: l, client: client}
}
