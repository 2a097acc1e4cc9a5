package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/taskvault/taskvault-api/internal/domain"
	"github.com/taskvault/taskvault-api/internal/store"
)

// CreateTaskInput carries the fields for creating a task. Status and
// priority default to pending/medium when left empty.
type CreateTaskInput struct {
	Title       string
	Description string
	Status      domain.TaskStatus
	Priority    domain.TaskPriority
	DueDate     *time.Time
}

// UpdateTaskInput carries a partial update. Nil fields keep their prior
// value; at least one field must be set.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *domain.TaskStatus
	Priority    *domain.TaskPriority
	DueDate     *time.Time

	// ClearDueDate removes the due date. It takes precedence over DueDate.
	ClearDueDate bool
}

// IsEmpty reports whether no field of the update is set.
func (in UpdateTaskInput) IsEmpty() bool {
	return in.Title == nil &&
		in.Description == nil &&
		in.Status == nil &&
		in.Priority == nil &&
		in.DueDate == nil &&
		!in.ClearDueDate
}

// TaskService provides owner-scoped task management. Every operation takes
// the authenticated user's ID as resolved by the auth middleware; a task
// belonging to another user is indistinguishable from an absent one.
type TaskService interface {
	// Create persists a new task owned by userID and returns the stored
	// record including the generated ID and timestamps.
	Create(ctx context.Context, userID uuid.UUID, input CreateTaskInput) (*domain.Task, error)

	// List returns the caller's tasks matching the filter, ordered by
	// ascending due date (tasks without one last), ties broken by
	// descending priority. An empty result is an empty slice, not an error.
	List(ctx context.Context, userID uuid.UUID, filter store.TaskFilter) ([]*domain.Task, error)

	// GetByID returns the task, or store.ErrTaskNotFound if it is absent
	// or owned by someone else.
	GetByID(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error)

	// Update applies the set fields of input to the task, refreshes
	// UpdatedAt, and returns the resulting record. An empty input fails
	// with ErrEmptyUpdate.
	Update(ctx context.Context, userID, taskID uuid.UUID, input UpdateTaskInput) (*domain.Task, error)

	// Delete removes the task permanently. Deleting an already-deleted
	// task returns store.ErrTaskNotFound.
	Delete(ctx context.Context, userID, taskID uuid.UUID) error
}

// TaskServiceImpl implements the TaskService interface.
type TaskServiceImpl struct {
	taskStore store.TaskStore
	logger    *slog.Logger
}

// NewTaskService creates a new TaskService.
func NewTaskService(taskStore store.TaskStore, logger *slog.Logger) TaskService {
	return &TaskServiceImpl{
		taskStore: taskStore,
		logger:    logger.With("component", "task_service"),
	}
}

// Create persists a new task owned by userID.
func (s *TaskServiceImpl) Create(
	ctx context.Context,
	userID uuid.UUID,
	input CreateTaskInput,
) (*domain.Task, error) {
	task, err := domain.NewTask(
		userID,
		input.Title,
		input.Description,
		input.Status,
		input.Priority,
		input.DueDate,
	)
	if err != nil {
		s.logger.Debug("task creation rejected", "error", err, "user_id", userID)
		return nil, err
	}

	if err := s.taskStore.Create(ctx, task); err != nil {
		s.logger.Error("failed to create task", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.logger.Info("task created successfully",
		"task_id", task.ID,
		"user_id", userID)
	return task, nil
}

// List returns the caller's tasks matching the filter.
func (s *TaskServiceImpl) List(
	ctx context.Context,
	userID uuid.UUID,
	filter store.TaskFilter,
) ([]*domain.Task, error) {
	tasks, err := s.taskStore.List(ctx, userID, filter)
	if err != nil {
		s.logger.Error("failed to list tasks", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	s.logger.Debug("listed tasks",
		"user_id", userID,
		"count", len(tasks))
	return tasks, nil
}

// GetByID returns the task scoped to its owner.
func (s *TaskServiceImpl) GetByID(
	ctx context.Context,
	userID, taskID uuid.UUID,
) (*domain.Task, error) {
	task, err := s.taskStore.GetByID(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}
	return task, nil
}

// Update applies a partial update to the task and refreshes UpdatedAt.
func (s *TaskServiceImpl) Update(
	ctx context.Context,
	userID, taskID uuid.UUID,
	input UpdateTaskInput,
) (*domain.Task, error) {
	if input.IsEmpty() {
		s.logger.Debug("task update rejected: no fields",
			"task_id", taskID,
			"user_id", userID)
		return nil, ErrEmptyUpdate
	}

	task, err := s.taskStore.GetByID(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		task.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		task.Description = strings.TrimSpace(*input.Description)
	}
	if input.Status != nil {
		task.Status = *input.Status
	}
	if input.Priority != nil {
		task.Priority = *input.Priority
	}
	if input.ClearDueDate {
		task.DueDate = nil
	} else if input.DueDate != nil {
		task.DueDate = input.DueDate
	}

	if err := task.Validate(); err != nil {
		s.logger.Debug("task update rejected: validation",
			"error", err,
			"task_id", taskID,
			"user_id", userID)
		return nil, err
	}

	task.Touch()

	// Two concurrent updates to the same task race; the store's write wins
	// last. Accepted last-writer-wins semantics, no optimistic locking.
	if err := s.taskStore.Update(ctx, task); err != nil {
		if !store.IsNotFoundError(err) {
			s.logger.Error("failed to update task",
				"error", err,
				"task_id", taskID,
				"user_id", userID)
		}
		return nil, err
	}

	s.logger.Info("task updated successfully",
		"task_id", taskID,
		"user_id", userID)
	return task, nil
}

// Delete removes the task permanently.
func (s *TaskServiceImpl) Delete(ctx context.Context, userID, taskID uuid.UUID) error {
	if err := s.taskStore.Delete(ctx, userID, taskID); err != nil {
		if !store.IsNotFoundError(err) {
			s.logger.Error("failed to delete task",
				"error", err,
				"task_id", taskID,
				"user_id", userID)
		}
		return err
	}

	s.logger.Info("task deleted successfully",
		"task_id", taskID,
		"user_id", userID)
	return nil
}
