package api_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rasupy/todo-myapp/internal/api"
	"github.com/rasupy/todo-myapp/internal/domain"
	"github.com/rasupy/todo-myapp/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		err  error
		want int
	}{
		{name: "empty title", err: domain.ErrEmptyTitle, want: http.StatusBadRequest},
		{name: "empty order", err: domain.ErrEmptyOrder, want: http.StatusBadRequest},
		{name: "no fields", err: domain.ErrNoFieldsToUpdate, want: http.StatusBadRequest},
		{name: "invalid id", err: domain.ErrInvalidID, want: http.StatusBadRequest},
		{name: "invalid email", err: domain.ErrInvalidEmail, want: http.StatusBadRequest},
		{name: "invalid entity", err: store.ErrInvalidEntity, want: http.StatusBadRequest},
		{name: "category not found", err: store.ErrCategoryNotFound, want: http.StatusNotFound},
		{name: "task not found", err: store.ErrTaskNotFound, want: http.StatusNotFound},
		{name: "user not found", err: store.ErrUserNotFound, want: http.StatusNotFound},
		{name: "wrapped not found", err: fmt.Errorf("get: %w", store.ErrCategoryNotFound), want: http.StatusNotFound},
		{name: "duplicate title", err: store.ErrDuplicateTitle, want: http.StatusConflict},
		{name: "email exists", err: store.ErrEmailExists, want: http.StatusConflict},
		{name: "unknown", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, api.MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Category not found", api.GetSafeErrorMessage(store.ErrCategoryNotFound))
	assert.Equal(t, "A category with this title already exists", api.GetSafeErrorMessage(store.ErrDuplicateTitle))
	assert.Equal(t, "Email already registered", api.GetSafeErrorMessage(store.ErrEmailExists))
	assert.Equal(t, "An unexpected error occurred", api.GetSafeErrorMessage(nil))

	// Internal error strings never leak to the client.
	leaky := errors.New("pq: connection to 10.0.0.5 refused")
	assert.Equal(t, "An unexpected error occurred", api.GetSafeErrorMessage(leaky))
}
