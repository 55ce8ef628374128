package repository

import "errors"

var (
	ErrNotFound       = errors.New("task not found in store")
	ErrParentNotFound = errors.New("parent task not found in store")
	ErrMissingID      = errors.New("task id is required")
	ErrCycle          = errors.New("task cannot be its own ancestor")
)
