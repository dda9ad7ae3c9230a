package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/rasupy/todo-myapp/internal/store"
)

func TestMapError(t *testing.T) {
	t.Parallel()

	t.Run("nil passes through", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, MapError(nil))
	})

	t.Run("no rows becomes not found", func(t *testing.T) {
		t.Parallel()
		err := MapError(fmt.Errorf("query: %w", sql.ErrNoRows))
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("unique violation becomes duplicate", func(t *testing.T) {
		t.Parallel()
		err := MapError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})
		assert.ErrorIs(t, err, store.ErrDuplicate)
	})

	t.Run("foreign key violation becomes invalid entity", func(t *testing.T) {
		t.Parallel()
		err := MapError(&pgconn.PgError{Code: "23503", ConstraintName: "tasks_category_id_fkey"})
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
	})

	t.Run("other errors pass through", func(t *testing.T) {
		t.Parallel()
		sentinel := errors.New("connection refused")
		assert.Equal(t, sentinel, MapError(sentinel))
	})
}

func TestMapUniqueViolation(t *testing.T) {
	t.Parallel()

	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "categories_user_id_title_key"}
	err := MapUniqueViolation(pgErr, store.ErrDuplicateTitle)
	assert.ErrorIs(t, err, store.ErrDuplicateTitle)
	assert.ErrorIs(t, err, store.ErrDuplicate)

	other := errors.New("timeout")
	assert.Equal(t, other, MapUniqueViolation(other, store.ErrDuplicateTitle))
}

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, IsUniqueViolation(fmt.Errorf("wrapped: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("plain")))
}
