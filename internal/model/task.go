package model

import "time"

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

const (
	StatusNotStarted TaskStatus = "Not Started"
	StatusInProgress TaskStatus = "In Progress"
	StatusCompleted  TaskStatus = "Completed"
	StatusBlocked    TaskStatus = "Blocked"
)

// ParseStatus maps a raw string to a TaskStatus.
// Unknown values fall back to StatusNotStarted.
func ParseStatus(raw string) TaskStatus {
	switch TaskStatus(raw) {
	case StatusInProgress, StatusCompleted, StatusBlocked:
		return TaskStatus(raw)
	default:
		return StatusNotStarted
	}
}

// Valid reports whether s is one of the four known statuses.
func (s TaskStatus) Valid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted, StatusBlocked:
		return true
	}
	return false
}

// Task is a user task, possibly nested via Subtasks.
// Subtasks are resolved snapshots: the repository fills them in on read,
// the engine treats the whole tree as immutable.
type Task struct {
	ID           string
	Title        string
	Description  string
	Status       TaskStatus
	ParentID     string
	Subtasks     []*Task
	Dependencies []string
	CreatedAt    time.Time
}
