package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskvault/taskvault-api/internal/domain"
	"github.com/taskvault/taskvault-api/internal/mocks"
	"github.com/taskvault/taskvault-api/internal/service"
	"github.com/taskvault/taskvault-api/internal/store"
)

func strPtr(s string) *string { return &s }

func statusPtr(s domain.TaskStatus) *domain.TaskStatus { return &s }

func TestTaskServiceCreate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	userID := uuid.New()

	t.Run("success with defaults", func(t *testing.T) {
		t.Parallel()

		taskStore := mocks.NewMockTaskStore()
		svc := service.NewTaskService(taskStore, testLogger())

		task, err := svc.Create(ctx, userID, service.CreateTaskInput{Title: "Buy groceries"})
		require.NoError(t, err)

		assert.Equal(t, userID, task.UserID)
		assert.Equal(t, domain.TaskStatusPending, task.Status)
		assert.Equal(t, domain.TaskPriorityMedium, task.Priority)
		assert.Contains(t, taskStore.Tasks, task.ID)
	})

	t.Run("short title rejected", func(t *testing.T) {
		t.Parallel()

		svc := service.NewTaskService(mocks.NewMockTaskStore(), testLogger())

		_, err := svc.Create(ctx, userID, service.CreateTaskInput{Title: "ab"})
		assert.ErrorIs(t, err, domain.ErrTaskTitleTooShort)
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		t.Parallel()

		svc := service.NewTaskService(mocks.NewMockTaskStore(), testLogger())

		_, err := svc.Create(ctx, userID, service.CreateTaskInput{
			Title:  "Buy groceries",
			Status: "archived",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidTaskStatus)
	})
}

func TestTaskServiceList(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	userID := uuid.New()
	otherID := uuid.New()

	taskStore := mocks.NewMockTaskStore()
	svc := service.NewTaskService(taskStore, testLogger())

	mustCreate := func(owner uuid.UUID, title string, status domain.TaskStatus) *domain.Task {
		task, err := svc.Create(ctx, owner, service.CreateTaskInput{Title: title, Status: status})
		require.NoError(t, err)
		return task
	}

	mine := mustCreate(userID, "Write report", domain.TaskStatusPending)
	done := mustCreate(userID, "Review report", domain.TaskStatusDone)
	mustCreate(otherID, "Someone else's task", domain.TaskStatusPending)

	t.Run("scoped to owner", func(t *testing.T) {
		t.Parallel()

		tasks, err := svc.List(ctx, userID, store.TaskFilter{})
		require.NoError(t, err)
		require.Len(t, tasks, 2)
		for _, task := range tasks {
			assert.Equal(t, userID, task.UserID)
		}
	})

	t.Run("status filter", func(t *testing.T) {
		t.Parallel()

		tasks, err := svc.List(ctx, userID, store.TaskFilter{
			Status: statusPtr(domain.TaskStatusDone),
		})
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, done.ID, tasks[0].ID)
	})

	t.Run("title filter is case-insensitive", func(t *testing.T) {
		t.Parallel()

		tasks, err := svc.List(ctx, userID, store.TaskFilter{TitleContains: "WRITE"})
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, mine.ID, tasks[0].ID)
	})

	t.Run("no matches yields empty slice", func(t *testing.T) {
		t.Parallel()

		tasks, err := svc.List(ctx, uuid.New(), store.TaskFilter{})
		require.NoError(t, err)
		assert.NotNil(t, tasks)
		assert.Empty(t, tasks)
	})
}

func TestTaskServiceGetByID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	userID := uuid.New()

	taskStore := mocks.NewMockTaskStore()
	svc := service.NewTaskService(taskStore, testLogger())

	created, err := svc.Create(ctx, userID, service.CreateTaskInput{Title: "Buy groceries"})
	require.NoError(t, err)

	t.Run("owner can read", func(t *testing.T) {
		t.Parallel()

		task, err := svc.GetByID(ctx, userID, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, task.ID)
	})

	t.Run("other user sees not found", func(t *testing.T) {
		t.Parallel()

		_, err := svc.GetByID(ctx, uuid.New(), created.ID)
		assert.ErrorIs(t, err, store.ErrTaskNotFound)
	})

	t.Run("absent ID", func(t *testing.T) {
		t.Parallel()

		_, err := svc.GetByID(ctx, userID, uuid.New())
		assert.ErrorIs(t, err, store.ErrTaskNotFound)
	})
}

func TestTaskServiceUpdate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	userID := uuid.New()

	newTask := func(t *testing.T) (service.TaskService, *domain.Task) {
		t.Helper()
		svc := service.NewTaskService(mocks.NewMockTaskStore(), testLogger())
		due := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
		task, err := svc.Create(ctx, userID, service.CreateTaskInput{
			Title:   "Write report",
			DueDate: &due,
		})
		require.NoError(t, err)
		return svc, task
	}

	t.Run("partial update keeps other fields", func(t *testing.T) {
		t.Parallel()

		svc, task := newTask(t)

		updated, err := svc.Update(ctx, userID, task.ID, service.UpdateTaskInput{
			Status: statusPtr(domain.TaskStatusDone),
		})
		require.NoError(t, err)

		assert.Equal(t, domain.TaskStatusDone, updated.Status)
		assert.Equal(t, "Write report", updated.Title)
		assert.Equal(t, task.Priority, updated.Priority)
		require.NotNil(t, updated.DueDate)
	})

	t.Run("update refreshes UpdatedAt", func(t *testing.T) {
		t.Parallel()

		svc, task := newTask(t)
		before := task.UpdatedAt

		time.Sleep(time.Millisecond)
		updated, err := svc.Update(ctx, userID, task.ID, service.UpdateTaskInput{
			Title: strPtr("Write the report"),
		})
		require.NoError(t, err)
		assert.True(t, updated.UpdatedAt.After(before))
	})

	t.Run("clear due date", func(t *testing.T) {
		t.Parallel()

		svc, task := newTask(t)

		updated, err := svc.Update(ctx, userID, task.ID, service.UpdateTaskInput{
			ClearDueDate: true,
		})
		require.NoError(t, err)
		assert.Nil(t, updated.DueDate)
	})

	t.Run("empty update rejected", func(t *testing.T) {
		t.Parallel()

		svc, task := newTask(t)

		_, err := svc.Update(ctx, userID, task.ID, service.UpdateTaskInput{})
		assert.ErrorIs(t, err, service.ErrEmptyUpdate)
	})

	t.Run("invalid new title rejected", func(t *testing.T) {
		t.Parallel()

		svc, task := newTask(t)

		_, err := svc.Update(ctx, userID, task.ID, service.UpdateTaskInput{
			Title: strPtr("ab"),
		})
		assert.ErrorIs(t, err, domain.ErrTaskTitleTooShort)
	})

	t.Run("other user cannot update", func(t *testing.T) {
		t.Parallel()

		svc, task := newTask(t)

		_, err := svc.Update(ctx, uuid.New(), task.ID, service.UpdateTaskInput{
			Status: statusPtr(domain.TaskStatusDone),
		})
		assert.ErrorIs(t, err, store.ErrTaskNotFound)
	})
}

func TestTaskServiceDelete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	userID := uuid.New()

	taskStore := mocks.NewMockTaskStore()
	svc := service.NewTaskService(taskStore, testLogger())

	task, err := svc.Create(ctx, userID, service.CreateTaskInput{Title: "Buy groceries"})
	require.NoError(t, err)

	t.Run("other user cannot delete", func(t *testing.T) {
		assert.ErrorIs(t, svc.Delete(ctx, uuid.New(), task.ID), store.ErrTaskNotFound)
	})

	t.Run("owner deletes once", func(t *testing.T) {
		require.NoError(t, svc.Delete(ctx, userID, task.ID))
		assert.NotContains(t, taskStore.Tasks, task.ID)
	})

	t.Run("second delete reports not found", func(t *testing.T) {
		assert.ErrorIs(t, svc.Delete(ctx, userID, task.ID), store.ErrTaskNotFound)
	})
}
