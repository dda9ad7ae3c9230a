package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rasupy/todo-myapp/internal/domain"
	"github.com/rasupy/todo-myapp/internal/platform/logger"
	"github.com/rasupy/todo-myapp/internal/store"
)

// PostgresCategoryStore implements the store.CategoryStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCategoryStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCategoryStore creates a new PostgreSQL implementation of the
// CategoryStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
func NewPostgresCategoryStore(db store.DBTX, log *slog.Logger) *PostgresCategoryStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &PostgresCategoryStore{
		db:     db,
		logger: log.With(slog.String("component", "category_store")),
	}
}

// Ensure PostgresCategoryStore implements store.CategoryStore interface
var _ store.CategoryStore = (*PostgresCategoryStore)(nil)

// ListByUser implements store.CategoryStore.ListByUser.
func (s *PostgresCategoryStore) ListByUser(ctx context.Context, userID int64) ([]domain.Category, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT category_id, title, sort_order, user_id
		FROM categories
		WHERE user_id = $1
		ORDER BY sort_order ASC, category_id ASC
	`
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to list categories",
			slog.String("error", err.Error()),
			slog.Int64("user_id", userID))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.CategoryID, &c.Title, &c.SortOrder, &c.UserID); err != nil {
			return nil, MapError(err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// GetForUser implements store.CategoryStore.GetForUser.
// Returns store.ErrCategoryNotFound if no row matches both identifiers.
func (s *PostgresCategoryStore) GetForUser(ctx context.Context, categoryID, userID int64) (*domain.Category, error) {
	query := `
		SELECT category_id, title, sort_order, user_id
		FROM categories
		WHERE category_id = $1 AND user_id = $2
	`
	var c domain.Category
	err := s.db.QueryRowContext(ctx, query, categoryID, userID).
		Scan(&c.CategoryID, &c.Title, &c.SortOrder, &c.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrCategoryNotFound
		}
		return nil, MapError(err)
	}
	return &c, nil
}

// TitleExists implements store.CategoryStore.TitleExists.
func (s *PostgresCategoryStore) TitleExists(ctx context.Context, userID int64, title string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM categories WHERE user_id = $1 AND title = $2
		)
	`
	var exists bool
	if err := s.db.QueryRowContext(ctx, query, userID, title).Scan(&exists); err != nil {
		return false, MapError(err)
	}
	return exists, nil
}

// MaxSortOrder implements store.CategoryStore.MaxSortOrder.
// Returns -1 when the user has no categories.
func (s *PostgresCategoryStore) MaxSortOrder(ctx context.Context, userID int64) (int, error) {
	query := `SELECT COALESCE(MAX(sort_order), -1) FROM categories WHERE user_id = $1`
	var max int
	if err := s.db.QueryRowContext(ctx, query, userID).Scan(&max); err != nil {
		return 0, MapError(err)
	}
	return max, nil
}

// Create implements store.CategoryStore.Create.
// Returns store.ErrDuplicateTitle on a (user_id, title) unique violation.
func (s *PostgresCategoryStore) Create(ctx context.Context, category *domain.Category) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := category.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO categories (title, sort_order, user_id)
		VALUES ($1, $2, $3)
		RETURNING category_id
	`
	err := s.db.QueryRowContext(ctx, query, category.Title, category.SortOrder, category.UserID).
		Scan(&category.CategoryID)
	if err != nil {
		if IsUniqueViolation(err) {
			return MapUniqueViolation(err, store.ErrDuplicateTitle)
		}
		log.Error("failed to create category",
			slog.String("error", err.Error()),
			slog.Int64("user_id", category.UserID))
		return MapError(err)
	}

	log.Info("category created",
		slog.Int64("category_id", category.CategoryID),
		slog.Int64("user_id", category.UserID),
		slog.Int("sort_order", category.SortOrder))
	return nil
}

// UpdateTitle implements store.CategoryStore.UpdateTitle.
func (s *PostgresCategoryStore) UpdateTitle(ctx context.Context, categoryID, userID int64, title string) error {
	query := `
		UPDATE categories
		SET title = $1
		WHERE category_id = $2 AND user_id = $3
	`
	result, err := s.db.ExecContext(ctx, query, title, categoryID, userID)
	if err != nil {
		if IsUniqueViolation(err) {
			return MapUniqueViolation(err, store.ErrDuplicateTitle)
		}
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrCategoryNotFound)
}

// SetSortOrder implements store.CategoryStore.SetSortOrder.
func (s *PostgresCategoryStore) SetSortOrder(ctx context.Context, categoryID int64, sortOrder int) error {
	query := `UPDATE categories SET sort_order = $1 WHERE category_id = $2`
	_, err := s.db.ExecContext(ctx, query, sortOrder, categoryID)
	return MapError(err)
}

// UpdateSortOrders implements store.CategoryStore.UpdateSortOrders.
// The assignment runs as a single CASE update so a bulk reorder is one
// statement inside its transaction.
func (s *PostgresCategoryStore) UpdateSortOrders(ctx context.Context, userID int64, positions map[int64]int) (int64, error) {
	if len(positions) == 0 {
		return 0, nil
	}

	args := make([]any, 0, 1+2*len(positions))
	args = append(args, userID)

	var caseExpr, inList strings.Builder
	i := 2
	for id, pos := range positions {
		fmt.Fprintf(&caseExpr, " WHEN $%d THEN $%d", i, i+1)
		if i > 2 {
			inList.WriteString(", ")
		}
		fmt.Fprintf(&inList, "$%d", i)
		args = append(args, id, pos)
		i += 2
	}

	query := fmt.Sprintf(`
		UPDATE categories
		SET sort_order = CASE category_id%s ELSE sort_order END
		WHERE user_id = $1 AND category_id IN (%s)
	`, caseExpr.String(), inList.String())

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, MapError(err)
	}
	return result.RowsAffected()
}

// Delete implements store.CategoryStore.Delete.
// Tasks in the category are removed by the ON DELETE CASCADE rule.
func (s *PostgresCategoryStore) Delete(ctx context.Context, categoryID, userID int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM categories WHERE category_id = $1 AND user_id = $2`
	result, err := s.db.ExecContext(ctx, query, categoryID, userID)
	if err != nil {
		log.Error("failed to delete category",
			slog.String("error", err.Error()),
			slog.Int64("category_id", categoryID))
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrCategoryNotFound)
}

// WithTx implements store.CategoryStore.WithTx.
func (s *PostgresCategoryStore) WithTx(tx *sql.Tx) store.CategoryStore {
	return &PostgresCategoryStore{db: tx, logger: s.logger}
}
