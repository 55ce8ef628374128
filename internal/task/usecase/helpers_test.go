package usecase_test

import (
	"context"

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
	listFunc   func(opt repository.ListTasksOptions) ([]model.Task, int, error)
	upsertFunc func(opt repository.UpsertTaskOptions) (model.Task, error)
	deleteFunc func(id string) error
}

func (m *mockRepo) Get(ctx context.Context, id string) (model.Task, error) {
	if m.getFunc != nil {
		return m.getFunc(id)
	}
	return model.Task{}, repository.ErrNotFound
}

func (m *mockRepo) List(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, int, error) {
	if m.listFunc != nil {
		return m.listFunc(opt)
	}
	return nil, 0, nil
}

func (m *mockRepo) Upsert(ctx context.Context, opt repository.UpsertTaskOptions) (model.Task, error) {
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
	if m.deleteFunc != nil {
		return m.deleteFunc(id)
	}
	return nil
}

func (m *mockRepo) Subscribe(buffer int) (<-chan model.TaskEvent, func()) {
	ch := make(chan model.TaskEvent)
	return ch, func() { close(ch) }
}
