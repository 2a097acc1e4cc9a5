package mocks

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"
	"github.com/taskvault/taskvault-api/internal/domain"
	"github.com/taskvault/taskvault-api/internal/store"
)

// MockTaskStore implements store.TaskStore for testing
type MockTaskStore struct {
	// Function fields for customizable behavior
	CreateFn  func(ctx context.Context, task *domain.Task) error
	ListFn    func(ctx context.Context, userID uuid.UUID, filter store.TaskFilter) ([]*domain.Task, error)
	GetByIDFn func(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error)
	UpdateFn  func(ctx context.Context, task *domain.Task) error
	DeleteFn  func(ctx context.Context, userID, taskID uuid.UUID) error

	// Data for default implementation, keyed by task ID. Insertion order is
	// preserved in Order so List results are deterministic.
	Tasks       map[uuid.UUID]*domain.Task
	Order       []uuid.UUID
	CreateError error
	ListError   error
}

// NewMockTaskStore creates a new mock store with initialized defaults
func NewMockTaskStore() *MockTaskStore {
	return &MockTaskStore{
		Tasks: make(map[uuid.UUID]*domain.Task),
	}
}

// Create implements the TaskStore interface
func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, task)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	m.Tasks[task.ID] = task
	m.Order = append(m.Order, task.ID)
	return nil
}

// List implements the TaskStore interface. The default implementation
// applies the filter but keeps insertion order; ordering semantics are the
// real store's concern.
func (m *MockTaskStore) List(
	ctx context.Context,
	userID uuid.UUID,
	filter store.TaskFilter,
) ([]*domain.Task, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, userID, filter)
	}

	if m.ListError != nil {
		return nil, m.ListError
	}

	tasks := make([]*domain.Task, 0)
	for _, id := range m.Order {
		task, ok := m.Tasks[id]
		if !ok || task.UserID != userID {
			continue
		}
		if filter.Status != nil && task.Status != *filter.Status {
			continue
		}
		if filter.Priority != nil && task.Priority != *filter.Priority {
			continue
		}
		if filter.TitleContains != "" &&
			!strings.Contains(strings.ToLower(task.Title), strings.ToLower(filter.TitleContains)) {
			continue
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// GetByID implements the TaskStore interface
func (m *MockTaskStore) GetByID(
	ctx context.Context,
	userID, taskID uuid.UUID,
) (*domain.Task, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, userID, taskID)
	}

	task, ok := m.Tasks[taskID]
	if !ok || task.UserID != userID {
		return nil, store.ErrTaskNotFound
	}
	return task, nil
}

// Update implements the TaskStore interface
func (m *MockTaskStore) Update(ctx context.Context, task *domain.Task) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, task)
	}

	existing, ok := m.Tasks[task.ID]
	if !ok || existing.UserID != task.UserID {
		return store.ErrTaskNotFound
	}
	m.Tasks[task.ID] = task
	return nil
}

// Delete implements the TaskStore interface
func (m *MockTaskStore) Delete(ctx context.Context, userID, taskID uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, userID, taskID)
	}

	task, ok := m.Tasks[taskID]
	if !ok || task.UserID != userID {
		return store.ErrTaskNotFound
	}
	delete(m.Tasks, taskID)
	for i, id := range m.Order {
		if id == taskID {
			m.Order = append(m.Order[:i], m.Order[i+1:]...)
			break
		}
	}
	return nil
}

// WithTx implements the TaskStore interface for transaction support
func (m *MockTaskStore) WithTx(tx *sql.Tx) store.TaskStore {
	// For mock purposes, just return the same mock
	return m
}
