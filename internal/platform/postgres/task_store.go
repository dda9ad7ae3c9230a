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

// PostgresTaskStore implements the store.TaskStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTaskStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTaskStore creates a new PostgreSQL implementation of the
// TaskStore interface. It accepts a database connection or transaction that
// should be initialized and managed by the caller.
func NewPostgresTaskStore(db store.DBTX, log *slog.Logger) *PostgresTaskStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &PostgresTaskStore{
		db:     db,
		logger: log.With(slog.String("component", "task_store")),
	}
}

// Ensure PostgresTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*PostgresTaskStore)(nil)

const taskColumns = `task_id, title, content, status, sort_order, user_id, category_id`

// ListVisible implements store.TaskStore.ListVisible.
// A nil status filter hides archived tasks; a non-nil filter matches its
// exact value.
func (s *PostgresTaskStore) ListVisible(ctx context.Context, userID, categoryID int64, status *string) ([]domain.Task, error) {
	var query string
	args := []any{userID, categoryID}
	if status != nil {
		query = `
			SELECT ` + taskColumns + `
			FROM tasks
			WHERE user_id = $1 AND category_id = $2 AND status = $3
			ORDER BY sort_order ASC, task_id ASC
		`
		args = append(args, *status)
	} else {
		query = `
			SELECT ` + taskColumns + `
			FROM tasks
			WHERE user_id = $1 AND category_id = $2 AND status <> $3
			ORDER BY sort_order ASC, task_id ASC
		`
		args = append(args, domain.TaskStatusArchived)
	}
	return s.queryTasks(ctx, query, args...)
}

// ListAll implements store.TaskStore.ListAll.
func (s *PostgresTaskStore) ListAll(ctx context.Context, userID, categoryID int64) ([]domain.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks
		WHERE user_id = $1 AND category_id = $2
		ORDER BY sort_order ASC, task_id ASC
	`
	return s.queryTasks(ctx, query, userID, categoryID)
}

// GetForUser implements store.TaskStore.GetForUser.
// Returns store.ErrTaskNotFound if no row matches both identifiers.
func (s *PostgresTaskStore) GetForUser(ctx context.Context, taskID, userID int64) (*domain.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks
		WHERE task_id = $1 AND user_id = $2
	`
	var t domain.Task
	err := s.db.QueryRowContext(ctx, query, taskID, userID).Scan(
		&t.TaskID, &t.Title, &t.Content, &t.Status, &t.SortOrder, &t.UserID, &t.CategoryID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrTaskNotFound
		}
		return nil, MapError(err)
	}
	return &t, nil
}

// MaxSortOrder implements store.TaskStore.MaxSortOrder.
// Returns -1 when the category has no tasks for the user.
func (s *PostgresTaskStore) MaxSortOrder(ctx context.Context, userID, categoryID int64) (int, error) {
	query := `
		SELECT COALESCE(MAX(sort_order), -1)
		FROM tasks
		WHERE user_id = $1 AND category_id = $2
	`
	var max int
	if err := s.db.QueryRowContext(ctx, query, userID, categoryID).Scan(&max); err != nil {
		return 0, MapError(err)
	}
	return max, nil
}

// MaxSortOrderInPartition implements store.TaskStore.MaxSortOrderInPartition.
// The partition boundary is archived vs. everything else; any non-archived
// status shares one sequence.
func (s *PostgresTaskStore) MaxSortOrderInPartition(ctx context.Context, userID, categoryID int64, archived bool) (int, error) {
	op := "<>"
	if archived {
		op = "="
	}
	query := fmt.Sprintf(`
		SELECT COALESCE(MAX(sort_order), -1)
		FROM tasks
		WHERE user_id = $1 AND category_id = $2 AND status %s $3
	`, op)
	var max int
	err := s.db.QueryRowContext(ctx, query, userID, categoryID, domain.TaskStatusArchived).Scan(&max)
	if err != nil {
		return 0, MapError(err)
	}
	return max, nil
}

// Create implements store.TaskStore.Create.
func (s *PostgresTaskStore) Create(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO tasks (title, content, status, sort_order, user_id, category_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING task_id
	`
	err := s.db.QueryRowContext(ctx, query,
		task.Title, task.Content, task.Status, task.SortOrder, task.UserID, task.CategoryID,
	).Scan(&task.TaskID)
	if err != nil {
		log.Error("failed to create task",
			slog.String("error", err.Error()),
			slog.Int64("user_id", task.UserID),
			slog.Int64("category_id", task.CategoryID))
		return MapError(err)
	}

	log.Info("task created",
		slog.Int64("task_id", task.TaskID),
		slog.Int64("category_id", task.CategoryID),
		slog.Int("sort_order", task.SortOrder))
	return nil
}

// Update implements store.TaskStore.Update.
func (s *PostgresTaskStore) Update(ctx context.Context, task *domain.Task) error {
	query := `
		UPDATE tasks
		SET title = $1, content = $2, status = $3, sort_order = $4
		WHERE task_id = $5
	`
	result, err := s.db.ExecContext(ctx, query,
		task.Title, task.Content, task.Status, task.SortOrder, task.TaskID,
	)
	if err != nil {
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrTaskNotFound)
}

// SetSortOrder implements store.TaskStore.SetSortOrder.
func (s *PostgresTaskStore) SetSortOrder(ctx context.Context, taskID int64, sortOrder int) error {
	query := `UPDATE tasks SET sort_order = $1 WHERE task_id = $2`
	_, err := s.db.ExecContext(ctx, query, sortOrder, taskID)
	return MapError(err)
}

// UpdateSortOrders implements store.TaskStore.UpdateSortOrders.
// Scoped by both owner and category: listed IDs outside that scope are not
// touched and not counted.
func (s *PostgresTaskStore) UpdateSortOrders(ctx context.Context, userID, categoryID int64, positions map[int64]int) (int64, error) {
	if len(positions) == 0 {
		return 0, nil
	}

	args := make([]any, 0, 2+2*len(positions))
	args = append(args, userID, categoryID)

	var caseExpr, inList strings.Builder
	i := 3
	for id, pos := range positions {
		fmt.Fprintf(&caseExpr, " WHEN $%d THEN $%d", i, i+1)
		if i > 3 {
			inList.WriteString(", ")
		}
		fmt.Fprintf(&inList, "$%d", i)
		args = append(args, id, pos)
		i += 2
	}

	query := fmt.Sprintf(`
		UPDATE tasks
		SET sort_order = CASE task_id%s ELSE sort_order END
		WHERE user_id = $1 AND category_id = $2 AND task_id IN (%s)
	`, caseExpr.String(), inList.String())

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, MapError(err)
	}
	return result.RowsAffected()
}

// Delete implements store.TaskStore.Delete.
func (s *PostgresTaskStore) Delete(ctx context.Context, taskID, userID int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM tasks WHERE task_id = $1 AND user_id = $2`
	result, err := s.db.ExecContext(ctx, query, taskID, userID)
	if err != nil {
		log.Error("failed to delete task",
			slog.String("error", err.Error()),
			slog.Int64("task_id", taskID))
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrTaskNotFound)
}

// WithTx implements store.TaskStore.WithTx.
func (s *PostgresTaskStore) WithTx(tx *sql.Tx) store.TaskStore {
	return &PostgresTaskStore{db: tx, logger: s.logger}
}

func (s *PostgresTaskStore) queryTasks(ctx context.Context, query string, args ...any) ([]domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query tasks",
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var tasks []domain.Task
	for rows.Next() {
		var t domain.Task
		if err := rows.Scan(
			&t.TaskID, &t.Title, &t.Content, &t.Status, &t.SortOrder, &t.UserID, &t.CategoryID,
		); err != nil {
			return nil, MapError(err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}
