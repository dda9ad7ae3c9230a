package api

import (
	"log/slog"
	"net/http"

	"github.com/rasupy/todo-myapp/internal/api/shared"
	"github.com/rasupy/todo-myapp/internal/service/ordering"
)

// CategoryHandler handles category-related API requests.
type CategoryHandler struct {
	service *ordering.CategoryService
	logger  *slog.Logger
}

// NewCategoryHandler creates a new CategoryHandler with the given dependencies.
func NewCategoryHandler(service *ordering.CategoryService, log *slog.Logger) *CategoryHandler {
	if log == nil {
		log = slog.Default()
	}
	return &CategoryHandler{
		service: service,
		logger:  log.With(slog.String("component", "category_handler")),
	}
}

// List handles GET /categories?user_id=.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _, err := getQueryID(r, "user_id", true)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	categories, err := h.service.List(r.Context(), userID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newCategoryResponses(categories))
}

// Create handles POST /category.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCategoryRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "title and user_id are required")
		return
	}

	category, err := h.service.Create(r.Context(), req.UserID, req.Title)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, newCategoryResponse(*category))
}

// Rename handles PUT/PATCH /category/{id}.
func (h *CategoryHandler) Rename(w http.ResponseWriter, r *http.Request) {
	categoryID, err := getPathID(r, "id")
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	var req RenameCategoryRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "title and user_id are required")
		return
	}

	category, err := h.service.Rename(r.Context(), categoryID, req.UserID, req.Title)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newCategoryResponse(*category))
}

// Reorder handles PATCH /categories/reorder.
func (h *CategoryHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	var req ReorderCategoriesRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "user_id and a non-empty ordered_ids are required")
		return
	}

	updated, err := h.service.Reorder(r.Context(), req.UserID, req.OrderedIDs)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ReorderResponse{Updated: updated})
}

// Delete handles DELETE /category/{id}?user_id=.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	categoryID, err := getPathID(r, "id")
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}
	userID, _, err := getQueryID(r, "user_id", true)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	remaining, err := h.service.Delete(r.Context(), categoryID, userID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DeleteResponse{Deleted: true, Remaining: remaining})
}
