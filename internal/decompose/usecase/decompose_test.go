package usecase_test

import (
	"context"
	"errors"
	"testing"

	"taskscape/internal/decompose"
	"taskscape/internal/decompose/usecase"
	"taskscape/internal/model"
	"taskscape/internal/task/repository"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock repository with overridable behavior per test
type mockRepo struct {
	getFunc    func(id string) (model.Task, error)
	upsertFunc func(opt repository.UpsertTaskOptions) (model.Task, error)

	upserts []repository.UpsertTaskOptions
}

func (m *mockRepo) Get(ctx context.Context, id string) (model.Task, error) {
	if m.getFunc != nil {
		return m.getFunc(id)
	}
	return model.Task{}, repository.ErrNotFound
}

func (m *mockRepo) List(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, int, error) {
	return nil, 0, nil
}

func (m *mockRepo) Upsert(ctx context.Context, opt repository.UpsertTaskOptions) (model.Task, error) {
	m.upserts = append(m.upserts, opt)
	if m.upsertFunc != nil {
		return m.upsertFunc(opt)
	}
	return model.Task{
		ID:          opt.ID,
		Title:       opt.Title,
		Description: opt.Description,
		Status:      opt.Status,
		ParentID:    opt.ParentID,
	}, nil
}

func (m *mockRepo) Delete(ctx context.Context, id string) error {
	return nil
}

func (m *mockRepo) Subscribe(buffer int) (<-chan model.TaskEvent, func()) {
	ch := make(chan model.TaskEvent)
	return ch, func() { close(ch) }
}

func buildTask() model.Task {
	return model.Task{
		ID:          "login",
		Title:       "Build login",
		Description: "implement the login form and create the session API",
		Status:      model.StatusNotStarted,
	}
}

func TestSuggest(t *testing.T) {
	ctx := context.Background()

	t.Run("Unknown Task", func(t *testing.T) {
		uc := usecase.New(&mockRepo{}, &mockLogger{})

		_, err := uc.Suggest(ctx, "missing")
		if err != decompose.ErrTaskNotFound {
			t.Errorf("expected ErrTaskNotFound, got %v", err)
		}
	})

	t.Run("Repo Error Passed Through", func(t *testing.T) {
		boom := errors.New("boom")
		repo := &mockRepo{
			getFunc: func(id string) (model.Task, error) { return model.Task{}, boom },
		}
		uc := usecase.New(repo, &mockLogger{})

		if _, err := uc.Suggest(ctx, "login"); !errors.Is(err, boom) {
			t.Errorf("expected boom, got %v", err)
		}
	})

	t.Run("Returns Stubs Without Writing", func(t *testing.T) {
		repo := &mockRepo{
			getFunc: func(id string) (model.Task, error) { return buildTask(), nil },
		}
		uc := usecase.New(repo, &mockLogger{})

		out, err := uc.Suggest(ctx, "login")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Analysis.Strategy != decompose.StrategyCoreComponents {
			t.Errorf("expected core-components, got %s", out.Analysis.Strategy)
		}
		if len(out.Stubs) != 4 {
			t.Errorf("expected 4 stubs, got %d", len(out.Stubs))
		}
		if len(repo.upserts) != 0 {
			t.Errorf("suggest wrote %d tasks to the store", len(repo.upserts))
		}
	})
}

func TestApply(t *testing.T) {
	ctx := context.Background()

	t.Run("Unknown Task", func(t *testing.T) {
		uc := usecase.New(&mockRepo{}, &mockLogger{})

		if _, err := uc.Apply(ctx, "missing"); err != decompose.ErrTaskNotFound {
			t.Errorf("expected ErrTaskNotFound, got %v", err)
		}
	})

	t.Run("Persists Stubs In Order", func(t *testing.T) {
		repo := &mockRepo{
			getFunc: func(id string) (model.Task, error) { return buildTask(), nil },
		}
		uc := usecase.New(repo, &mockLogger{})

		out, err := uc.Apply(ctx, "login")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Tasks) != 4 {
			t.Fatalf("expected 4 tasks, got %d", len(out.Tasks))
		}
		if len(repo.upserts) != 4 {
			t.Fatalf("expected 4 upserts, got %d", len(repo.upserts))
		}

		wantTitles := []string{"Research & Planning", "Core Implementation", "Testing & Validation", "Documentation"}
		for i, opt := range repo.upserts {
			if opt.Title != wantTitles[i] {
				t.Errorf("upsert %d title %q, want %q", i, opt.Title, wantTitles[i])
			}
			if opt.ParentID != "login" {
				t.Errorf("upsert %d parent %q", i, opt.ParentID)
			}
			if opt.Status != model.StatusNotStarted {
				t.Errorf("upsert %d status %s", i, opt.Status)
			}
		}
	})

	t.Run("Upsert Failure Aborts", func(t *testing.T) {
		boom := errors.New("store down")
		repo := &mockRepo{
			getFunc: func(id string) (model.Task, error) { return buildTask(), nil },
			upsertFunc: func(opt repository.UpsertTaskOptions) (model.Task, error) {
				return model.Task{}, boom
			},
		}
		uc := usecase.New(repo, &mockLogger{})

		if _, err := uc.Apply(ctx, "login"); !errors.Is(err, boom) {
			t.Errorf("expected store error, got %v", err)
		}
	})
}
