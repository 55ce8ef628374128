package decompose

import "context"

// UseCase defines the business logic interface for the decompose domain.
type UseCase interface {
	// Suggest analyzes the task and returns suggested subtask stubs
	// without touching the store.
	Suggest(ctx context.Context, taskID string) (SuggestOutput, error)

	// Apply runs Suggest and persists the resulting stubs as subtasks.
	Apply(ctx context.Context, taskID string) (ApplyOutput, error)
}
