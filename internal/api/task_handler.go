package api

import (
	"log/slog"
	"net/http"

	"github.com/rasupy/todo-myapp/internal/api/shared"
	"github.com/rasupy/todo-myapp/internal/service/ordering"
)

// TaskHandler handles task-related API requests.
type TaskHandler struct {
	service *ordering.TaskService
	logger  *slog.Logger
}

// NewTaskHandler creates a new TaskHandler with the given dependencies.
func NewTaskHandler(service *ordering.TaskService, log *slog.Logger) *TaskHandler {
	if log == nil {
		log = slog.Default()
	}
	return &TaskHandler{
		service: service,
		logger:  log.With(slog.String("component", "task_handler")),
	}
}

// List handles GET /tasks?user_id=&category_id=&status=.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _, err := getQueryID(r, "user_id", true)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}
	categoryID, _, err := getQueryID(r, "category_id", true)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	var status *string
	if raw := r.URL.Query().Get("status"); raw != "" {
		status = &raw
	}

	tasks, err := h.service.List(r.Context(), userID, categoryID, status)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newTaskResponses(tasks))
}

// Create handles POST /task.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "title, user_id and category_id are required")
		return
	}

	content := ""
	if req.Content != nil {
		content = *req.Content
	}

	task, err := h.service.Create(r.Context(), req.UserID, req.CategoryID, req.Title, content)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, newTaskResponse(*task))
}

// Edit handles PUT/PATCH /task/{id}.
func (h *TaskHandler) Edit(w http.ResponseWriter, r *http.Request) {
	taskID, err := getPathID(r, "id")
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	var req EditTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "user_id is required")
		return
	}

	task, err := h.service.Edit(r.Context(), taskID, req.UserID, ordering.TaskUpdate{
		Title:   req.Title,
		Content: req.Content,
		Status:  req.Status,
	})
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newTaskResponse(*task))
}

// Delete handles DELETE /task/{id}?user_id=.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	taskID, err := getPathID(r, "id")
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}
	userID, _, err := getQueryID(r, "user_id", true)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	remaining, err := h.service.Delete(r.Context(), taskID, userID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DeleteResponse{Deleted: true, Remaining: remaining})
}

// Reorder handles PATCH /tasks/reorder.
func (h *TaskHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	var req ReorderTasksRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "user_id, category_id and a non-empty ordered_ids are required")
		return
	}

	updated, err := h.service.Reorder(r.Context(), req.UserID, req.CategoryID, req.OrderedIDs)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ReorderResponse{Updated: updated})
}
