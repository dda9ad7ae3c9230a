package ordering

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/rasupy/todo-myapp/internal/domain"
	"github.com/rasupy/todo-myapp/internal/store"
)

// CategoryService owns all category mutations and reads for the API layer.
type CategoryService struct {
	txm        store.TransactionManager
	categories store.CategoryStore
	logger     *slog.Logger
}

// NewCategoryService creates a CategoryService with the given dependencies.
func NewCategoryService(
	txm store.TransactionManager,
	categories store.CategoryStore,
	log *slog.Logger,
) *CategoryService {
	if log == nil {
		log = slog.Default()
	}
	return &CategoryService{
		txm:        txm,
		categories: categories,
		logger:     log.With(slog.String("component", "category_service")),
	}
}

// List returns all categories owned by the user, ascending by sort_order.
func (s *CategoryService) List(ctx context.Context, userID int64) ([]domain.Category, error) {
	var categories []domain.Category
	err := s.txm.WithTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		var err error
		categories, err = s.categories.WithTx(tx).ListByUser(ctx, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// Create inserts a new category at the end of the user's display order.
// The title is trimmed; an empty result is domain.ErrEmptyTitle. A title the
// user already has yields store.ErrDuplicateTitle, either from the pre-check
// or from the unique constraint when two creates race.
func (s *CategoryService) Create(ctx context.Context, userID int64, title string) (*domain.Category, error) {
	category, err := domain.NewCategory(userID, title)
	if err != nil {
		return nil, err
	}

	err = s.txm.WithTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		categories := s.categories.WithTx(tx)

		exists, err := categories.TitleExists(ctx, userID, category.Title)
		if err != nil {
			return err
		}
		if exists {
			return store.ErrDuplicateTitle
		}

		max, err := categories.MaxSortOrder(ctx, userID)
		if err != nil {
			return err
		}
		category.SortOrder = max + 1

		return categories.Create(ctx, category)
	})
	if err != nil {
		return nil, err
	}
	return category, nil
}

// Rename changes a category's title. Renaming to the current title is an
// idempotent no-op returning the unchanged category; renaming to a title the
// user already uses elsewhere is a conflict.
func (s *CategoryService) Rename(ctx context.Context, categoryID, userID int64, title string) (*domain.Category, error) {
	var category *domain.Category
	err := s.txm.WithTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		categories := s.categories.WithTx(tx)

		var err error
		category, err = categories.GetForUser(ctx, categoryID, userID)
		if err != nil {
			return err
		}

		if category.Title == title {
			return nil
		}

		exists, err := categories.TitleExists(ctx, userID, title)
		if err != nil {
			return err
		}
		if exists {
			return store.ErrDuplicateTitle
		}

		if err := categories.UpdateTitle(ctx, categoryID, userID, title); err != nil {
			return err
		}
		category.Title = title
		return nil
	})
	if err != nil {
		return nil, err
	}
	return category, nil
}

// Reorder assigns each listed category its index position in one bulk
// update. Later duplicates in the list override earlier ones. Only rows
// owned by the caller are touched; listed IDs belonging to other users are
// silently skipped and excluded from the returned count. Siblings absent
// from the list keep their current sort_order, so a partial list can leave
// duplicate or gapped values in the scope.
func (s *CategoryService) Reorder(ctx context.Context, userID int64, orderedIDs []int64) (int64, error) {
	if len(orderedIDs) == 0 {
		return 0, domain.ErrEmptyOrder
	}

	positions := make(map[int64]int, len(orderedIDs))
	for i, id := range orderedIDs {
		positions[id] = i
	}

	var updated int64
	err := s.txm.WithTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		var err error
		updated, err = s.categories.WithTx(tx).UpdateSortOrders(ctx, userID, positions)
		return err
	})
	if err != nil {
		return 0, err
	}

	s.logger.Debug("categories reordered",
		slog.Int64("user_id", userID),
		slog.Int64("updated", updated))
	return updated, nil
}

// Delete removes a category and compacts the survivors' sort_order to a
// dense 0..n-1 sequence in their existing relative order, writing only rows
// whose value changes. Returns the number of remaining categories.
func (s *CategoryService) Delete(ctx context.Context, categoryID, userID int64) (int, error) {
	var remaining int
	err := s.txm.WithTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		categories := s.categories.WithTx(tx)

		if _, err := categories.GetForUser(ctx, categoryID, userID); err != nil {
			return err
		}
		if err := categories.Delete(ctx, categoryID, userID); err != nil {
			return err
		}

		survivors, err := categories.ListByUser(ctx, userID)
		if err != nil {
			return err
		}
		remaining = len(survivors)

		for idx, c := range survivors {
			if c.SortOrder != idx {
				if err := categories.SetSortOrder(ctx, c.CategoryID, idx); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info("category deleted",
		slog.Int64("category_id", categoryID),
		slog.Int64("user_id", userID),
		slog.Int("remaining", remaining))
	return remaining, nil
}
