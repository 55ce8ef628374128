package usecase

import (
	"context"

	"taskscape/internal/model"
	"taskscape/internal/task"
	"taskscape/internal/task/repository"
)

// List returns a paginated shallow listing of tasks.
func (uc *implUseCase) List(ctx context.Context, input task.ListTasksInput) (task.ListTasksOutput, error) {
	limit := input.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := input.Offset
	if offset < 0 {
		offset = 0
	}

	var status model.TaskStatus
	if input.Status != "" {
		resolved, err := resolveStatus(input.Status)
		if err != nil {
			return task.ListTasksOutput{}, err
		}
		status = resolved
	}

	tasks, total, err := uc.repo.List(ctx, repository.ListTasksOptions{
		Status:    status,
		ParentID:  input.ParentID,
		RootsOnly: input.RootsOnly,
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List: %v", err)
		return task.ListTasksOutput{}, mapRepoError(err)
	}

	return task.ListTasksOutput{
		Tasks:  tasks,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}
