package task

import "taskscape/internal/model"

// --- UseCase Inputs ---

type CreateTaskInput struct {
	Title        string
	Description  string
	Status       string // optional; defaults to Not Started
	ParentID     string // optional; must reference an existing task
	Dependencies []string
}

type ListTasksInput struct {
	Status    string
	ParentID  string
	RootsOnly bool
	Limit     int
	Offset    int
}

type UpdateTaskInput struct {
	ID           string
	Title        string
	Description  string
	Status       string
	ParentID     string
	Dependencies []string
}

// --- UseCase Outputs ---

type CreateTaskOutput struct {
	Task model.Task
}

type ListTasksOutput struct {
	Tasks  []model.Task
	Total  int
	Limit  int
	Offset int
}

// DetailTaskOutput carries a deep snapshot: Subtasks are resolved recursively.
type DetailTaskOutput struct {
	Task model.Task
}

type UpdateTaskOutput struct {
	Task model.Task
}
