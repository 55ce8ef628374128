package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrTaskNotFound   = errors.New("task not found")
	ErrParentNotFound = errors.New("parent task not found")
	ErrEmptyTitle     = errors.New("task title is empty")
	ErrInvalidStatus  = errors.New("invalid task status")
	ErrSelfParent     = errors.New("task cannot be its own parent")
	ErrCyclicParent   = errors.New("task cannot be moved under its own subtree")
)
