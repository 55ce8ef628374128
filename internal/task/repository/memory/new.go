package memory

import (
	"sync"

	"taskscape/internal/model"
	"taskscape/internal/task/repository"
	pkgLog "taskscape/pkg/log"
)

// Repository is an in-memory, mutex-guarded task store.
// Tasks are held flat; parent/child structure lives in an ordered child
// index so snapshots preserve insertion order.
type Repository struct {
	mu       sync.RWMutex
	tasks    map[string]model.Task
	children map[string][]string // parent ID -> child IDs, insertion order

	subMu       sync.Mutex
	subscribers map[int]chan model.TaskEvent
	nextSubID   int

	l pkgLog.Logger
}

// Ensure Repository implements repository.Repository.
var _ repository.Repository = (*Repository)(nil)

// New creates an empty in-memory task repository.
func New(l pkgLog.Logger) *Repository {
	return &Repository{
		tasks:       make(map[string]model.Task),
		children:    make(map[string][]string),
		subscribers: make(map[int]chan model.TaskEvent),
		l:           l,
	}
}
