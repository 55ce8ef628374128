package repository

import (
	"context"

	"taskscape/internal/model"
)

// Repository is the interface for task storage.
// It replaces the original global task map + listener set with explicit,
// injectable operations.
type Repository interface {
	// Get returns a deep snapshot of the task: Subtasks are resolved
	// recursively in insertion order. The caller owns the returned tree.
	Get(ctx context.Context, id string) (model.Task, error)

	// List returns shallow tasks (no Subtasks resolved) matching opt.
	List(ctx context.Context, opt ListTasksOptions) ([]model.Task, int, error)

	// Upsert creates or replaces a task. The parent, if set, must exist
	// and must not be the task itself or one of its descendants.
	Upsert(ctx context.Context, opt UpsertTaskOptions) (model.Task, error)

	// Delete removes a task and its whole subtree.
	Delete(ctx context.Context, id string) error

	// Subscribe registers a listener for store mutations. The returned
	// cancel func must be called to release the subscription.
	Subscribe(buffer int) (<-chan model.TaskEvent, func())
}
