package api

import (
	"errors"
	"net/http"

	"github.com/rasupy/todo-myapp/internal/api/shared"
	"github.com/rasupy/todo-myapp/internal/domain"
	"github.com/rasupy/todo-myapp/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Invalid input
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrEmptyTitle),
		errors.Is(err, domain.ErrEmptyOrder),
		errors.Is(err, domain.ErrNoFieldsToUpdate),
		errors.Is(err, domain.ErrEmptyName),
		errors.Is(err, domain.ErrEmptyEmail),
		errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrPasswordTooShort),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Missing or not owned by the caller
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	// Uniqueness conflicts, including races surfaced by the database
	case store.IsDuplicateError(err):
		return http.StatusConflict

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, domain.ErrEmptyTitle):
		return "Title must not be empty"
	case errors.Is(err, domain.ErrEmptyOrder):
		return "ordered_ids must not be empty"
	case errors.Is(err, domain.ErrNoFieldsToUpdate):
		return "No fields to update"
	case errors.Is(err, domain.ErrEmptyName):
		return "Name must not be empty"
	case errors.Is(err, domain.ErrEmptyEmail), errors.Is(err, domain.ErrInvalidEmail):
		return "A valid email is required"
	case errors.Is(err, domain.ErrPasswordTooShort):
		return "Password must be at least 6 characters"
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrInvalidID):
		return "Invalid request data"
	case errors.Is(err, store.ErrCategoryNotFound):
		return "Category not found"
	case errors.Is(err, store.ErrTaskNotFound):
		return "Task not found"
	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"
	case errors.Is(err, store.ErrDuplicateTitle):
		return "A category with this title already exists"
	case errors.Is(err, store.ErrEmailExists):
		return "Email already registered"
	case store.IsNotFoundError(err):
		return "Not found"
	case store.IsDuplicateError(err):
		return "Already exists"
	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"
	default:
		return "An unexpected error occurred"
	}
}

// HandleServiceError translates a service error into a sanitized JSON error
// response with the matching status code.
func HandleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err), err)
}
