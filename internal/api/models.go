package api

import "github.com/rasupy/todo-myapp/internal/domain"

// Request payloads. Pointer fields distinguish an absent field from an
// explicit empty value, which matters for partial task edits.

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// CreateCategoryRequest defines the payload for creating a category.
type CreateCategoryRequest struct {
	Title  string `json:"title"   validate:"required"`
	UserID int64  `json:"user_id" validate:"required,gt=0"`
}

// RenameCategoryRequest defines the payload for renaming a category.
type RenameCategoryRequest struct {
	Title  string `json:"title"   validate:"required"`
	UserID int64  `json:"user_id" validate:"required,gt=0"`
}

// ReorderCategoriesRequest defines the payload for a bulk category reorder.
type ReorderCategoriesRequest struct {
	UserID     int64   `json:"user_id"     validate:"required,gt=0"`
	OrderedIDs []int64 `json:"ordered_ids" validate:"required,min=1"`
}

// CreateTaskRequest defines the payload for creating a task.
type CreateTaskRequest struct {
	Title      string  `json:"title"       validate:"required"`
	Content    *string `json:"content"`
	UserID     int64   `json:"user_id"     validate:"required,gt=0"`
	CategoryID int64   `json:"category_id" validate:"required,gt=0"`
}

// EditTaskRequest defines the payload for a partial task edit. At least one
// of title/content/status must be present; that check belongs to the
// ordering service, not the schema.
type EditTaskRequest struct {
	UserID  int64   `json:"user_id" validate:"required,gt=0"`
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Status  *string `json:"status"`
}

// ReorderTasksRequest defines the payload for a bulk task reorder.
type ReorderTasksRequest struct {
	UserID     int64   `json:"user_id"     validate:"required,gt=0"`
	CategoryID int64   `json:"category_id" validate:"required,gt=0"`
	OrderedIDs []int64 `json:"ordered_ids" validate:"required,min=1"`
}

// Response shapes. Field names match the wire contract of the frontend
// (category_title, task_title, ...), not the Go entity names.

// CategoryResponse is the JSON shape of a category.
type CategoryResponse struct {
	CategoryID int64  `json:"category_id"`
	Title      string `json:"category_title"`
	SortOrder  int    `json:"sort_order"`
	UserID     int64  `json:"user_id"`
}

// TaskResponse is the JSON shape of a task.
type TaskResponse struct {
	TaskID     int64  `json:"task_id"`
	Title      string `json:"task_title"`
	Content    string `json:"content"`
	Status     string `json:"status"`
	SortOrder  int    `json:"sort_order"`
	UserID     int64  `json:"user_id"`
	CategoryID int64  `json:"category_id"`
}

// UserResponse is the JSON shape of a user. The password hash is never
// serialized.
type UserResponse struct {
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// ReorderResponse reports how many rows a bulk reorder actually updated.
type ReorderResponse struct {
	Updated int64 `json:"updated"`
}

// DeleteResponse reports a successful delete and the count of surviving
// siblings in the scope.
type DeleteResponse struct {
	Deleted   bool `json:"deleted"`
	Remaining int  `json:"remaining"`
}

// OKResponse is the trivial acknowledgement body.
type OKResponse struct {
	OK bool `json:"ok"`
}

func newCategoryResponse(c domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID: c.CategoryID,
		Title:      c.Title,
		SortOrder:  c.SortOrder,
		UserID:     c.UserID,
	}
}

func newCategoryResponses(categories []domain.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, newCategoryResponse(c))
	}
	return out
}

func newTaskResponse(t domain.Task) TaskResponse {
	return TaskResponse{
		TaskID:     t.TaskID,
		Title:      t.Title,
		Content:    t.Content,
		Status:     t.Status,
		SortOrder:  t.SortOrder,
		UserID:     t.UserID,
		CategoryID: t.CategoryID,
	}
}

func newTaskResponses(tasks []domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, newTaskResponse(t))
	}
	return out
}

func newUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID: u.UserID,
		Name:   u.Name,
		Email:  u.Email,
	}
}
