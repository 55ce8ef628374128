package usecase_test

import (
	"context"
	"errors"
	"testing"

	"taskscape/internal/model"
	"taskscape/internal/task"
	"taskscape/internal/task/repository"
	"taskscape/internal/task/usecase"
)

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty Title Error", func(t *testing.T) {
		uc := usecase.New(&mockRepo{}, &mockLogger{})
		_, err := uc.Create(ctx, task.CreateTaskInput{})
		if !errors.Is(err, task.ErrEmptyTitle) {
			t.Errorf("expected ErrEmptyTitle, got %v", err)
		}
	})

	t.Run("Invalid Status Error", func(t *testing.T) {
		uc := usecase.New(&mockRepo{}, &mockLogger{})
		_, err := uc.Create(ctx, task.CreateTaskInput{Title: "x", Status: "Paused"})
		if !errors.Is(err, task.ErrInvalidStatus) {
			t.Errorf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("Missing Parent Mapped To Domain Error", func(t *testing.T) {
		repo := &mockRepo{
			upsertFunc: func(opt repository.UpsertTaskOptions) (model.Task, error) {
				return model.Task{}, repository.ErrParentNotFound
			},
		}
		uc := usecase.New(repo, &mockLogger{})
		_, err := uc.Create(ctx, task.CreateTaskInput{Title: "x", ParentID: "ghost"})
		if !errors.Is(err, task.ErrParentNotFound) {
			t.Errorf("expected ErrParentNotFound, got %v", err)
		}
	})

	t.Run("Generates ID And Defaults Status", func(t *testing.T) {
		var captured repository.UpsertTaskOptions
		repo := &mockRepo{
			upsertFunc: func(opt repository.UpsertTaskOptions) (model.Task, error) {
				captured = opt
				return model.Task{ID: opt.ID, Title: opt.Title, Status: opt.Status}, nil
			},
		}
		uc := usecase.New(repo, &mockLogger{})
		out, err := uc.Create(ctx, task.CreateTaskInput{Title: "Build login"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if captured.ID == "" {
			t.Errorf("expected generated ID")
		}
		if out.Task.Status != model.StatusNotStarted {
			t.Errorf("expected default status, got %s", out.Task.Status)
		}
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	existing := model.Task{
		ID:          "t1",
		Title:       "Original",
		Description: "desc",
		Status:      model.StatusNotStarted,
	}

	t.Run("Not Found", func(t *testing.T) {
		uc := usecase.New(&mockRepo{}, &mockLogger{})
		_, err := uc.Update(ctx, task.UpdateTaskInput{ID: "ghost"})
		if !errors.Is(err, task.ErrTaskNotFound) {
			t.Errorf("expected ErrTaskNotFound, got %v", err)
		}
	})

	t.Run("Self Parent Rejected", func(t *testing.T) {
		repo := &mockRepo{
			getFunc: func(id string) (model.Task, error) { return existing, nil },
		}
		uc := usecase.New(repo, &mockLogger{})
		_, err := uc.Update(ctx, task.UpdateTaskInput{ID: "t1", ParentID: "t1"})
		if !errors.Is(err, task.ErrSelfParent) {
			t.Errorf("expected ErrSelfParent, got %v", err)
		}
	})

	t.Run("Descendant Parent Mapped To Domain Error", func(t *testing.T) {
		repo := &mockRepo{
			getFunc: func(id string) (model.Task, error) { return existing, nil },
			upsertFunc: func(opt repository.UpsertTaskOptions) (model.Task, error) {
				return model.Task{}, repository.ErrCycle
			},
		}
		uc := usecase.New(repo, &mockLogger{})
		_, err := uc.Update(ctx, task.UpdateTaskInput{ID: "t1", ParentID: "t1-child"})
		if !errors.Is(err, task.ErrCyclicParent) {
			t.Errorf("expected ErrCyclicParent, got %v", err)
		}
	})

	t.Run("Partial Update Keeps Unset Fields", func(t *testing.T) {
		var captured repository.UpsertTaskOptions
		repo := &mockRepo{
			getFunc: func(id string) (model.Task, error) { return existing, nil },
			upsertFunc: func(opt repository.UpsertTaskOptions) (model.Task, error) {
				captured = opt
				return model.Task{ID: opt.ID, Title: opt.Title, Status: opt.Status}, nil
			},
		}
		uc := usecase.New(repo, &mockLogger{})
		_, err := uc.Update(ctx, task.UpdateTaskInput{ID: "t1", Status: string(model.StatusBlocked)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if captured.Title != "Original" || captured.Description != "desc" {
			t.Errorf("unset fields overwritten: %+v", captured)
		}
		if captured.Status != model.StatusBlocked {
			t.Errorf("status not applied, got %s", captured.Status)
		}
	})
}

func TestDelete(t *testing.T) {
	t.Run("Maps Repo Error", func(t *testing.T) {
		repo := &mockRepo{
			deleteFunc: func(id string) error { return repository.ErrNotFound },
		}
		uc := usecase.New(repo, &mockLogger{})
		err := uc.Delete(context.Background(), "ghost")
		if !errors.Is(err, task.ErrTaskNotFound) {
			t.Errorf("expected ErrTaskNotFound, got %v", err)
		}
	})
}

func TestList(t *testing.T) {
	t.Run("Applies Default Limit", func(t *testing.T) {
		var captured repository.ListTasksOptions
		repo := &mockRepo{
			listFunc: func(opt repository.ListTasksOptions) ([]model.Task, int, error) {
				captured = opt
				return []model.Task{}, 0, nil
			},
		}
		uc := usecase.New(repo, &mockLogger{})
		if _, err := uc.List(context.Background(), task.ListTasksInput{Limit: -5}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if captured.Limit != 20 || captured.Offset != 0 {
			t.Errorf("defaults not applied: %+v", captured)
		}
	})
}
