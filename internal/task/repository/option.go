package repository

import "taskscape/internal/model"

// UpsertTaskOptions holds the parameters for creating or replacing a task.
type UpsertTaskOptions struct {
	ID           string // Required; callers generate IDs
	Title        string
	Description  string
	Status       model.TaskStatus
	ParentID     string // Optional; validated against the store
	Dependencies []string
}

// ListTasksOptions holds the parameters for listing tasks.
type ListTasksOptions struct {
	Status    model.TaskStatus // Filter by status (optional)
	ParentID  string           // Filter by direct parent (optional)
	RootsOnly bool             // Only tasks without a parent
	Limit     int              // Max number of results (default 20)
	Offset    int              // Pagination offset
}
