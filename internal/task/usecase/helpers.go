package usecase

import (
	"errors"

	"taskscape/internal/model"
	"taskscape/internal/task"
	"taskscape/internal/task/repository"
)

// mapRepoError translates repository errors into task domain errors.
func mapRepoError(err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return task.ErrTaskNotFound
	case errors.Is(err, repository.ErrParentNotFound):
		return task.ErrParentNotFound
	case errors.Is(err, repository.ErrCycle):
		return task.ErrCyclicParent
	default:
		return err
	}
}

// resolveStatus validates the raw status string.
// Empty means "leave as default"; anything else must be a known status.
func resolveStatus(raw string) (model.TaskStatus, error) {
	if raw == "" {
		return model.StatusNotStarted, nil
	}
	status := model.TaskStatus(raw)
	if !status.Valid() {
		return "", task.ErrInvalidStatus
	}
	return status, nil
}
