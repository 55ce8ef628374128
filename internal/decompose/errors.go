package decompose

import "errors"

// Domain-specific errors for the decompose package.
var (
	ErrTaskNotFound = errors.New("task not found")
	ErrNilTask      = errors.New("task is nil")
)
