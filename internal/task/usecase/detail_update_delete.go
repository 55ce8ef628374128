package usecase

import (
	"context"

	"taskscape/internal/task"
	"taskscape/internal/task/repository"
)

// Detail returns a deep snapshot of one task with subtasks resolved.
func (uc *implUseCase) Detail(ctx context.Context, id string) (task.DetailTaskOutput, error) {
	got, err := uc.repo.Get(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail Get: %v", err)
		return task.DetailTaskOutput{}, mapRepoError(err)
	}
	return task.DetailTaskOutput{Task: got}, nil
}

// Update applies a partial update to an existing task.
func (uc *implUseCase) Update(ctx context.Context, input task.UpdateTaskInput) (task.UpdateTaskOutput, error) {
	existing, err := uc.repo.Get(ctx, input.ID)
	if err != nil {
		return task.UpdateTaskOutput{}, mapRepoError(err)
	}

	if input.ParentID == input.ID && input.ID != "" {
		return task.UpdateTaskOutput{}, task.ErrSelfParent
	}

	opt := repository.UpsertTaskOptions{
		ID:           existing.ID,
		Title:        existing.Title,
		Description:  existing.Description,
		Status:       existing.Status,
		ParentID:     existing.ParentID,
		Dependencies: existing.Dependencies,
	}
	if input.Title != "" {
		opt.Title = input.Title
	}
	if input.Description != "" {
		opt.Description = input.Description
	}
	if input.Status != "" {
		status, sErr := resolveStatus(input.Status)
		if sErr != nil {
			return task.UpdateTaskOutput{}, sErr
		}
		opt.Status = status
	}
	if input.ParentID != "" {
		opt.ParentID = input.ParentID
	}
	if input.Dependencies != nil {
		opt.Dependencies = input.Dependencies
	}

	updated, err := uc.repo.Upsert(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update Upsert: %v", err)
		return task.UpdateTaskOutput{}, mapRepoError(err)
	}

	return task.UpdateTaskOutput{Task: updated}, nil
}

// Delete removes a task and its subtree.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete: %v", err)
		return mapRepoError(err)
	}
	return nil
}
