package store_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rasupy/todo-myapp/internal/store"
)

func TestEntityErrorsWrapSentinels(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, store.ErrUserNotFound, store.ErrNotFound)
	assert.ErrorIs(t, store.ErrCategoryNotFound, store.ErrNotFound)
	assert.ErrorIs(t, store.ErrTaskNotFound, store.ErrNotFound)
	assert.ErrorIs(t, store.ErrEmailExists, store.ErrDuplicate)
	assert.ErrorIs(t, store.ErrDuplicateTitle, store.ErrDuplicate)
}

func TestErrorPredicates(t *testing.T) {
	t.Parallel()

	assert.True(t, store.IsNotFoundError(fmt.Errorf("lookup: %w", store.ErrTaskNotFound)))
	assert.False(t, store.IsNotFoundError(store.ErrDuplicateTitle))

	assert.True(t, store.IsDuplicateError(fmt.Errorf("insert: %w", store.ErrEmailExists)))
	assert.False(t, store.IsDuplicateError(errors.New("other")))
}
