package api

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/taskvault/taskvault-api/internal/api/shared"
	"github.com/taskvault/taskvault-api/internal/domain"
	"github.com/taskvault/taskvault-api/internal/platform/logger"
	"github.com/taskvault/taskvault-api/internal/service"
	"github.com/taskvault/taskvault-api/internal/store"
)

// TaskHandler handles task-related API requests. Every route it serves sits
// behind the auth middleware, so the owner's user ID is always available from
// the request context.
type TaskHandler struct {
	taskService service.TaskService
	validator   *validator.Validate
}

// NewTaskHandler creates a new TaskHandler with the given dependencies.
func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		validator:   validator.New(),
	}
}

// Create handles POST /api/tasks.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), slog.Default())

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		HandleAPIError(w, r, domain.ErrUnauthorized, "User ID not found or invalid")
		return
	}

	var req CreateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		HandleAPIError(w, r, err, "Invalid due_date: must be RFC 3339")
		return
	}

	task, err := h.taskService.Create(r.Context(), userID, service.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      domain.TaskStatus(req.Status),
		Priority:    domain.TaskPriority(req.Priority),
		DueDate:     dueDate,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, task)
}

// List handles GET /api/tasks. It accepts optional status, priority and
// title query parameters; results are always scoped to the caller.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), slog.Default())

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		HandleAPIError(w, r, domain.ErrUnauthorized, "User ID not found or invalid")
		return
	}

	filter, err := parseTaskFilter(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	tasks, err := h.taskService.List(r.Context(), userID, filter)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, tasks)
}

// Get handles GET /api/tasks/{id}.
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, taskID, ok := handleUserIDAndPathUUID(w, r, "id", nil)
	if !ok {
		return
	}

	task, err := h.taskService.GetByID(r.Context(), userID, taskID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, task)
}

// Update handles PUT /api/tasks/{id}. The update is partial: absent fields
// keep their stored value, and a request with no fields at all is rejected.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, taskID, ok := handleUserIDAndPathUUID(w, r, "id", nil)
	if !ok {
		return
	}

	var req UpdateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	input := service.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
	}
	if req.Status != nil {
		status := domain.TaskStatus(*req.Status)
		input.Status = &status
	}
	if req.Priority != nil {
		priority := domain.TaskPriority(*req.Priority)
		input.Priority = &priority
	}
	if req.DueDate != nil {
		if *req.DueDate == "" {
			input.ClearDueDate = true
		} else {
			dueDate, err := parseDueDate(*req.DueDate)
			if err != nil {
				HandleAPIError(w, r, err, "Invalid due_date: must be RFC 3339")
				return
			}
			input.DueDate = dueDate
		}
	}

	task, err := h.taskService.Update(r.Context(), userID, taskID, input)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, task)
}

// Delete handles DELETE /api/tasks/{id}. A successful delete has no body;
// deleting a task twice yields 404 on the second attempt.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, taskID, ok := handleUserIDAndPathUUID(w, r, "id", nil)
	if !ok {
		return
	}

	if err := h.taskService.Delete(r.Context(), userID, taskID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// parseTaskFilter builds a task filter from the request's query parameters,
// rejecting unknown status or priority values before any query runs.
func parseTaskFilter(r *http.Request) (store.TaskFilter, error) {
	var filter store.TaskFilter

	if raw := r.URL.Query().Get("status"); raw != "" {
		status := domain.TaskStatus(raw)
		if !status.IsValid() {
			return store.TaskFilter{}, domain.ErrInvalidTaskStatus
		}
		filter.Status = &status
	}

	if raw := r.URL.Query().Get("priority"); raw != "" {
		priority := domain.TaskPriority(raw)
		if !priority.IsValid() {
			return store.TaskFilter{}, domain.ErrInvalidTaskPriority
		}
		filter.Priority = &priority
	}

	filter.TitleContains = strings.TrimSpace(r.URL.Query().Get("title"))

	return filter, nil
}
