package usecase

import (
	"context"
	"errors"

	"taskscape/internal/decompose"
	"taskscape/internal/model"
	"taskscape/internal/task/repository"
)

// Suggest analyzes the stored task and returns proposed subtask stubs.
// Nothing is written to the store.
func (uc *implUseCase) Suggest(ctx context.Context, taskID string) (decompose.SuggestOutput, error) {
	task, err := uc.repo.Get(ctx, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return decompose.SuggestOutput{}, decompose.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "decompose.usecase.Suggest.repo.Get: %v", err)
		return decompose.SuggestOutput{}, err
	}

	stubs, analysis, err := decompose.Suggest(&task)
	if err != nil {
		uc.l.Errorf(ctx, "decompose.usecase.Suggest: %v", err)
		return decompose.SuggestOutput{}, err
	}

	return decompose.SuggestOutput{
		Analysis: analysis,
		Stubs:    stubs,
	}, nil
}

// Apply runs Suggest and persists each stub as a real subtask of the parent.
// Stubs are written in suggestion order so sibling order in the store matches
// the advisor's plan.
func (uc *implUseCase) Apply(ctx context.Context, taskID string) (decompose.ApplyOutput, error) {
	out, err := uc.Suggest(ctx, taskID)
	if err != nil {
		return decompose.ApplyOutput{}, err
	}

	tasks := make([]model.Task, 0, len(out.Stubs))
	for _, stub := range out.Stubs {
		created, err := uc.repo.Upsert(ctx, repository.UpsertTaskOptions{
			ID:          stub.ID,
			Title:       stub.Title,
			Description: stub.Description,
			Status:      stub.Status,
			ParentID:    stub.ParentID,
		})
		if err != nil {
			uc.l.Errorf(ctx, "decompose.usecase.Apply.repo.Upsert: %v", err)
			return decompose.ApplyOutput{}, err
		}
		tasks = append(tasks, created)
	}

	return decompose.ApplyOutput{
		Analysis: out.Analysis,
		Tasks:    tasks,
	}, nil
}
