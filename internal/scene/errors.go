package scene

import "errors"

// Domain-specific errors for the scene package.
var (
	ErrTaskNotFound = errors.New("task not found")
	ErrNilTask      = errors.New("task is nil")
)
