package usecase

import (
	"context"

	"github.com/google/uuid"

	"taskscape/internal/task"
	"taskscape/internal/task/repository"
)

// Create creates a new task, generating its ID.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateTaskInput) (task.CreateTaskOutput, error) {
	if input.Title == "" {
		return task.CreateTaskOutput{}, task.ErrEmptyTitle
	}

	status, err := resolveStatus(input.Status)
	if err != nil {
		return task.CreateTaskOutput{}, err
	}

	created, err := uc.repo.Upsert(ctx, repository.UpsertTaskOptions{
		ID:           uuid.New().String(),
		Title:        input.Title,
		Description:  input.Description,
		Status:       status,
		ParentID:     input.ParentID,
		Dependencies: input.Dependencies,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create Upsert: %v", err)
		return task.CreateTaskOutput{}, mapRepoError(err)
	}

	return task.CreateTaskOutput{Task: created}, nil
}
