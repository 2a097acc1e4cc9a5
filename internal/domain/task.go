package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Task validation errors
var (
	ErrTaskIDEmpty         = errors.New("task ID cannot be empty")
	ErrTaskUserIDEmpty     = errors.New("task user ID cannot be empty")
	ErrTaskTitleTooShort   = errors.New("task title must be at least 3 characters long")
	ErrInvalidTaskStatus   = errors.New("invalid task status")
	ErrInvalidTaskPriority = errors.New("invalid task priority")
)

// MinTitleLength is the minimum length of a task title after trimming.
const MinTitleLength = 3

// TaskStatus represents the progress state of a task.
type TaskStatus string

// Valid task statuses.
const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusDone       TaskStatus = "done"
)

// IsValid reports whether the status is one of the allowed values.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

// TaskPriority represents the urgency of a task.
type TaskPriority string

// Valid task priorities.
const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

// IsValid reports whether the priority is one of the allowed values.
func (p TaskPriority) IsValid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	}
	return false
}

// Rank returns the sort weight of the priority (high > medium > low).
// Unknown priorities rank lowest.
func (p TaskPriority) Rank() int {
	switch p {
	case TaskPriorityHigh:
		return 3
	case TaskPriorityMedium:
		return 2
	case TaskPriorityLow:
		return 1
	}
	return 0
}

// Task represents a unit of work owned by exactly one user. The owner is
// set at creation and never changes; every store operation on a task is
// scoped by it.
type Task struct {
	ID          uuid.UUID    `json:"id"`
	UserID      uuid.UUID    `json:"user_id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
	DueDate     *time.Time   `json:"due_date,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// NewTask creates a Task owned by userID with the given title. Status and
// priority default to pending/medium when empty. Returns an error if
// validation fails.
func NewTask(
	userID uuid.UUID,
	title, description string,
	status TaskStatus,
	priority TaskPriority,
	dueDate *time.Time,
) (*Task, error) {
	if status == "" {
		status = TaskStatusPending
	}
	if priority == "" {
		priority = TaskPriorityMedium
	}

	now := time.Now().UTC()
	task := &Task{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		Status:      status,
		Priority:    priority,
		DueDate:     dueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// Returns an error if any field fails validation.
func (t *Task) Validate() error {
	if t.ID == uuid.Nil {
		return ErrTaskIDEmpty
	}

	if t.UserID == uuid.Nil {
		return ErrTaskUserIDEmpty
	}

	if len(strings.TrimSpace(t.Title)) < MinTitleLength {
		return ErrTaskTitleTooShort
	}

	if !t.Status.IsValid() {
		return ErrInvalidTaskStatus
	}

	if !t.Priority.IsValid() {
		return ErrInvalidTaskPriority
	}

	return nil
}

// Touch refreshes the UpdatedAt timestamp.
func (t *Task) Touch() {
	t.UpdatedAt = time.Now().UTC()
}
