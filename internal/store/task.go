package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/taskvault/taskvault-api/internal/domain"
)

// TaskFilter carries the optional predicates for listing tasks. All set
// fields are combined with logical AND; zero values mean "no constraint".
type TaskFilter struct {
	// Status restricts results to tasks with this exact status.
	Status *domain.TaskStatus

	// Priority restricts results to tasks with this exact priority.
	Priority *domain.TaskPriority

	// TitleContains restricts results to tasks whose title contains this
	// substring, matched case-insensitively.
	TitleContains string
}

// TaskStore defines the interface for task data persistence. Every read and
// write is scoped by the owning user's ID; a task belonging to another user
// is reported as ErrTaskNotFound.
type TaskStore interface {
	// Create saves a new task to the store.
	// Returns validation errors from the domain Task if data is invalid.
	Create(ctx context.Context, task *domain.Task) error

	// List retrieves the tasks owned by userID that match the filter,
	// ordered by ascending due date with tasks lacking a due date last,
	// ties broken by descending priority. Returns an empty slice when
	// nothing matches, never an error.
	List(ctx context.Context, userID uuid.UUID, filter TaskFilter) ([]*domain.Task, error)

	// GetByID retrieves a task by ID, scoped to the owner.
	// Returns ErrTaskNotFound if absent or owned by someone else.
	GetByID(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error)

	// Update persists the task's mutable fields, scoped to the owner.
	// Returns ErrTaskNotFound if absent or owned by someone else.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes a task permanently, scoped to the owner.
	// Returns ErrTaskNotFound if absent or owned by someone else, which
	// makes a repeated delete fail rather than silently succeed.
	Delete(ctx context.Context, userID, taskID uuid.UUID) error

	// WithTx returns a new TaskStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) TaskStore
}
