package store

import (
	"context"
	"database/sql"

	"github.com/rasupy/todo-myapp/internal/domain"
)

// TaskStore defines the interface for task data persistence.
// All reads and writes are scoped by the owning user (and category where
// applicable); rows belonging to other users behave as if absent.
type TaskStore interface {
	// ListVisible returns tasks in the category, ascending by sort_order.
	// With a non-nil status filter only tasks matching that exact status are
	// returned; with a nil filter, archived tasks are hidden.
	ListVisible(ctx context.Context, userID, categoryID int64, status *string) ([]domain.Task, error)

	// ListAll returns every task in the category regardless of status,
	// ascending by sort_order. Used for post-delete compaction, which spans
	// both status partitions.
	ListAll(ctx context.Context, userID, categoryID int64) ([]domain.Task, error)

	// GetForUser retrieves a task by ID, constrained to the owning user.
	// Returns ErrTaskNotFound if no row matches both identifiers.
	GetForUser(ctx context.Context, taskID, userID int64) (*domain.Task, error)

	// MaxSortOrder returns the highest sort_order among the user's tasks in
	// the category, or -1 when the scope is empty.
	MaxSortOrder(ctx context.Context, userID, categoryID int64) (int, error)

	// MaxSortOrderInPartition returns the highest sort_order within the
	// archived or not-archived partition of the category, or -1 when the
	// partition is empty.
	MaxSortOrderInPartition(ctx context.Context, userID, categoryID int64, archived bool) (int, error)

	// Create inserts a task and fills in its TaskID.
	Create(ctx context.Context, task *domain.Task) error

	// Update writes the task's title, content, status and sort_order by
	// task ID. Returns ErrTaskNotFound if the task does not exist.
	Update(ctx context.Context, task *domain.Task) error

	// SetSortOrder writes a single task's sort_order. Used by the ordering
	// service when compacting a scope.
	SetSortOrder(ctx context.Context, taskID int64, sortOrder int) error

	// UpdateSortOrders applies a bulk id → position assignment in one
	// statement, touching only rows in the given category owned by the user
	// whose ID appears in the mapping. Returns the number of rows matched.
	UpdateSortOrders(ctx context.Context, userID, categoryID int64, positions map[int64]int) (int64, error)

	// Delete removes the task, constrained to the owning user.
	// Returns ErrTaskNotFound if no row matches.
	Delete(ctx context.Context, taskID, userID int64) error

	// WithTx returns a TaskStore bound to the provided transaction.
	WithTx(tx *sql.Tx) TaskStore
}
