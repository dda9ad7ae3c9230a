package store

import (
	"context"
	"database/sql"

	"github.com/rasupy/todo-myapp/internal/domain"
)

// CategoryStore defines the interface for category data persistence.
// All reads and writes are scoped by the owning user: a row that exists but
// belongs to another user behaves exactly as if it did not exist.
type CategoryStore interface {
	// ListByUser returns all categories owned by the user, ascending by
	// sort_order.
	ListByUser(ctx context.Context, userID int64) ([]domain.Category, error)

	// GetForUser retrieves a category by ID, constrained to the owning user.
	// Returns ErrCategoryNotFound if no row matches both identifiers.
	GetForUser(ctx context.Context, categoryID, userID int64) (*domain.Category, error)

	// TitleExists reports whether the user already has a category with the
	// given title.
	TitleExists(ctx context.Context, userID int64, title string) (bool, error)

	// MaxSortOrder returns the highest sort_order among the user's
	// categories, or -1 when the scope is empty.
	MaxSortOrder(ctx context.Context, userID int64) (int, error)

	// Create inserts a category and fills in its CategoryID.
	// Returns ErrDuplicateTitle if the (user_id, title) unique constraint is
	// violated, which closes the race left open by a TitleExists pre-check.
	Create(ctx context.Context, category *domain.Category) error

	// UpdateTitle renames the category, constrained to the owning user.
	// Returns ErrCategoryNotFound if no row matches, ErrDuplicateTitle on a
	// unique constraint violation.
	UpdateTitle(ctx context.Context, categoryID, userID int64, title string) error

	// SetSortOrder writes a single category's sort_order. Used by the
	// ordering service when compacting a scope.
	SetSortOrder(ctx context.Context, categoryID int64, sortOrder int) error

	// UpdateSortOrders applies a bulk id → position assignment in one
	// statement, touching only rows owned by the user whose ID appears in
	// the mapping. Returns the number of rows matched by the update.
	UpdateSortOrders(ctx context.Context, userID int64, positions map[int64]int) (int64, error)

	// Delete removes the category, constrained to the owning user.
	// Returns ErrCategoryNotFound if no row matches. Tasks in the category
	// are removed by the database's cascade rule.
	Delete(ctx context.Context, categoryID, userID int64) error

	// WithTx returns a CategoryStore bound to the provided transaction.
	WithTx(tx *sql.Tx) CategoryStore
}
