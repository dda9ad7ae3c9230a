package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rasupy/todo-myapp/internal/domain"
)

func TestNewTaskDefaults(t *testing.T) {
	t.Parallel()

	task, err := domain.NewTask(1, 2, "write report", "")
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusTodo, task.Status)
	assert.False(t, task.Archived())
}

func TestNewTaskValidation(t *testing.T) {
	t.Parallel()

	_, err := domain.NewTask(1, 2, "   ", "")
	assert.ErrorIs(t, err, domain.ErrEmptyTitle)

	_, err = domain.NewTask(0, 2, "title", "")
	assert.ErrorIs(t, err, domain.ErrInvalidID)

	_, err = domain.NewTask(1, 0, "title", "")
	assert.ErrorIs(t, err, domain.ErrInvalidID)
}

func TestStatusArchived(t *testing.T) {
	t.Parallel()

	assert.True(t, domain.StatusArchived(domain.TaskStatusArchived))
	assert.False(t, domain.StatusArchived(domain.TaskStatusTodo))
	assert.False(t, domain.StatusArchived("doing"), "custom statuses sit in the active partition")
}

func TestNewCategoryTrimsTitle(t *testing.T) {
	t.Parallel()

	category, err := domain.NewCategory(1, "  Work ")
	require.NoError(t, err)
	assert.Equal(t, "Work", category.Title)

	_, err = domain.NewCategory(1, " \t ")
	assert.ErrorIs(t, err, domain.ErrEmptyTitle)

	_, err = domain.NewCategory(0, "Work")
	assert.ErrorIs(t, err, domain.ErrInvalidID)
}
