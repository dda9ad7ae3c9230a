package ordering

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/rasupy/todo-myapp/internal/domain"
	"github.com/rasupy/todo-myapp/internal/store"
)

// TaskUpdate carries the optional fields of a task edit. Nil means the field
// was absent from the request; a non-nil pointer to an empty string is a
// deliberate value and is applied verbatim.
type TaskUpdate struct {
	Title   *string
	Content *string
	Status  *string
}

// Empty reports whether the update carries no fields at all.
func (u TaskUpdate) Empty() bool {
	return u.Title == nil && u.Content == nil && u.Status == nil
}

// TaskService owns all task mutations and reads for the API layer. Task
// operations that reference a category verify the category belongs to the
// caller before proceeding.
type TaskService struct {
	txm        store.TransactionManager
	tasks      store.TaskStore
	categories store.CategoryStore
	logger     *slog.Logger
}

// NewTaskService creates a TaskService with the given dependencies.
func NewTaskService(
	txm store.TransactionManager,
	tasks store.TaskStore,
	categories store.CategoryStore,
	log *slog.Logger,
) *TaskService {
	if log == nil {
		log = slog.Default()
	}
	return &TaskService{
		txm:        txm,
		tasks:      tasks,
		categories: categories,
		logger:     log.With(slog.String("component", "task_service")),
	}
}

// List returns the category's tasks ascending by sort_order, after verifying
// the category is owned by the caller. A non-nil status filter returns tasks
// with that exact status; a nil filter hides archived tasks.
func (s *TaskService) List(ctx context.Context, userID, categoryID int64, status *string) ([]domain.Task, error) {
	var tasks []domain.Task
	err := s.txm.WithTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := s.categories.WithTx(tx).GetForUser(ctx, categoryID, userID); err != nil {
			return err
		}
		var err error
		tasks, err = s.tasks.WithTx(tx).ListVisible(ctx, userID, categoryID, status)
		return err
	})
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// Create appends a new task to the end of the category's order. The
// category must be owned by the caller; content defaults to empty and the
// status to "todo".
func (s *TaskService) Create(ctx context.Context, userID, categoryID int64, title, content string) (*domain.Task, error) {
	task, err := domain.NewTask(userID, categoryID, title, content)
	if err != nil {
		return nil, err
	}

	err = s.txm.WithTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := s.categories.WithTx(tx).GetForUser(ctx, categoryID, userID); err != nil {
			return err
		}

		tasks := s.tasks.WithTx(tx)
		max, err := tasks.MaxSortOrder(ctx, userID, categoryID)
		if err != nil {
			return err
		}
		task.SortOrder = max + 1

		return tasks.Create(ctx, task)
	})
	if err != nil {
		return nil, err
	}
	return task, nil
}

// Edit applies the supplied fields to a task owned by the caller. At least
// one field must be present. Title and content are applied verbatim. A
// present status field always re-appends the task to the end of its new
// partition (archived vs. not archived), even when the value equals the
// task's current status; the engine does not check for a true transition.
func (s *TaskService) Edit(ctx context.Context, taskID, userID int64, upd TaskUpdate) (*domain.Task, error) {
	if upd.Empty() {
		return nil, domain.ErrNoFieldsToUpdate
	}

	var task *domain.Task
	err := s.txm.WithTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		tasks := s.tasks.WithTx(tx)

		var err error
		task, err = tasks.GetForUser(ctx, taskID, userID)
		if err != nil {
			return err
		}

		if upd.Title != nil {
			task.Title = *upd.Title
		}
		if upd.Content != nil {
			task.Content = *upd.Content
		}
		if upd.Status != nil {
			// The partition max is computed before the row is written, so a
			// task changing partitions lands at index max+1 of its
			// destination (0 when the destination is empty), while a task
			// whose status stays in the same partition counts itself and is
			// pushed past the current tail.
			archived := domain.StatusArchived(*upd.Status)
			max, err := tasks.MaxSortOrderInPartition(ctx, userID, task.CategoryID, archived)
			if err != nil {
				return err
			}
			task.Status = *upd.Status
			task.SortOrder = max + 1
		}

		return tasks.Update(ctx, task)
	})
	if err != nil {
		return nil, err
	}
	return task, nil
}

// Delete removes a task owned by the caller and compacts the remaining
// tasks of its category to a dense 0..n-1 sequence in their existing
// relative order. Compaction is scoped by category only: archived and
// active tasks share one pass. Returns the number of remaining tasks.
func (s *TaskService) Delete(ctx context.Context, taskID, userID int64) (int, error) {
	var remaining int
	err := s.txm.WithTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		tasks := s.tasks.WithTx(tx)

		task, err := tasks.GetForUser(ctx, taskID, userID)
		if err != nil {
			return err
		}
		if err := tasks.Delete(ctx, taskID, userID); err != nil {
			return err
		}

		survivors, err := tasks.ListAll(ctx, userID, task.CategoryID)
		if err != nil {
			return err
		}
		remaining = len(survivors)

		for idx, t := range survivors {
			if t.SortOrder != idx {
				if err := tasks.SetSortOrder(ctx, t.TaskID, idx); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info("task deleted",
		slog.Int64("task_id", taskID),
		slog.Int64("user_id", userID),
		slog.Int("remaining", remaining))
	return remaining, nil
}

// Reorder assigns each listed task its index position in one bulk update,
// after verifying the category is owned by the caller. Later duplicates in
// the list override earlier ones. Only tasks in the given category owned by
// the caller are touched and counted; unlisted siblings keep their current
// sort_order.
func (s *TaskService) Reorder(ctx context.Context, userID, categoryID int64, orderedIDs []int64) (int64, error) {
	if len(orderedIDs) == 0 {
		return 0, domain.ErrEmptyOrder
	}

	positions := make(map[int64]int, len(orderedIDs))
	for i, id := range orderedIDs {
		positions[id] = i
	}

	var updated int64
	err := s.txm.WithTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := s.categories.WithTx(tx).GetForUser(ctx, categoryID, userID); err != nil {
			return err
		}
		var err error
		updated, err = s.tasks.WithTx(tx).UpdateSortOrders(ctx, userID, categoryID, positions)
		return err
	})
	if err != nil {
		return 0, err
	}

	s.logger.Debug("tasks reordered",
		slog.Int64("user_id", userID),
		slog.Int64("category_id", categoryID),
		slog.Int64("updated", updated))
	return updated, nil
}
