package model

import "time"

// TaskEventType classifies a change in the task store.
type TaskEventType string

const (
	TaskCreated TaskEventType = "created"
	TaskUpdated TaskEventType = "updated"
	TaskDeleted TaskEventType = "deleted"
)

// TaskEvent is emitted by the task store on every mutation.
// Subscribers use it to invalidate derived state such as cached scenes.
type TaskEvent struct {
	Type       TaskEventType
	TaskID     string
	ParentID   string // Parent at the time of the event (empty for roots)
	OccurredAt time.Time
}
