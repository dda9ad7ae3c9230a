package ordering_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rasupy/todo-myapp/internal/domain"
	"github.com/rasupy/todo-myapp/internal/service/ordering"
	"github.com/rasupy/todo-myapp/internal/store"
	"github.com/rasupy/todo-myapp/internal/store/storetest"
)

func newCategoryService() (*ordering.CategoryService, *storetest.MemCategoryStore) {
	categories := storetest.NewMemCategoryStore(nil)
	svc := ordering.NewCategoryService(storetest.NewTxManager(), categories, nil)
	return svc, categories
}

func TestCategoryCreateAssignsDenseSortOrder(t *testing.T) {
	t.Parallel()
	svc, _ := newCategoryService()
	ctx := context.Background()

	first, err := svc.Create(ctx, 1, "Work")
	require.NoError(t, err)
	assert.Equal(t, 0, first.SortOrder)

	second, err := svc.Create(ctx, 1, "Home")
	require.NoError(t, err)
	assert.Equal(t, 1, second.SortOrder)

	third, err := svc.Create(ctx, 1, "Errands")
	require.NoError(t, err)
	assert.Equal(t, 2, third.SortOrder)
}

func TestCategoryCreateTrimsTitle(t *testing.T) {
	t.Parallel()
	svc, _ := newCategoryService()

	category, err := svc.Create(context.Background(), 1, "  Work  ")
	require.NoError(t, err)
	assert.Equal(t, "Work", category.Title)
}

func TestCategoryCreateRejectsBlankTitle(t *testing.T) {
	t.Parallel()
	svc, _ := newCategoryService()

	_, err := svc.Create(context.Background(), 1, "   ")
	assert.ErrorIs(t, err, domain.ErrEmptyTitle)
}

func TestCategoryCreateDuplicateTitleSameUser(t *testing.T) {
	t.Parallel()
	svc, _ := newCategoryService()
	ctx := context.Background()

	_, err := svc.Create(ctx, 1, "Work")
	require.NoError(t, err)

	_, err = svc.Create(ctx, 1, "Work")
	assert.ErrorIs(t, err, store.ErrDuplicateTitle)
}

func TestCategoryCreateSameTitleDifferentUsers(t *testing.T) {
	t.Parallel()
	svc, _ := newCategoryService()
	ctx := context.Background()

	_, err := svc.Create(ctx, 1, "Work")
	require.NoError(t, err)

	other, err := svc.Create(ctx, 2, "Work")
	require.NoError(t, err)
	assert.Equal(t, 0, other.SortOrder, "each user's order is scoped independently")
}

func TestCategoryListScopedToUser(t *testing.T) {
	t.Parallel()
	svc, _ := newCategoryService()
	ctx := context.Background()

	_, err := svc.Create(ctx, 1, "Work")
	require.NoError(t, err)
	_, err = svc.Create(ctx, 2, "Other")
	require.NoError(t, err)

	categories, err := svc.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "Work", categories[0].Title)
}

func TestCategoryRenameIdempotentNoOp(t *testing.T) {
	t.Parallel()
	svc, _ := newCategoryService()
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, "Work")
	require.NoError(t, err)

	renamed, err := svc.Rename(ctx, created.CategoryID, 1, "Work")
	require.NoError(t, err)
	assert.Equal(t, "Work", renamed.Title)
}

func TestCategoryRenameConflict(t *testing.T) {
	t.Parallel()
	svc, _ := newCategoryService()
	ctx := context.Background()

	_, err := svc.Create(ctx, 1, "Work")
	require.NoError(t, err)
	home, err := svc.Create(ctx, 1, "Home")
	require.NoError(t, err)

	_, err = svc.Rename(ctx, home.CategoryID, 1, "Work")
	assert.ErrorIs(t, err, store.ErrDuplicateTitle)
}

func TestCategoryRenameCrossUserNotFound(t *testing.T) {
	t.Parallel()
	svc, _ := newCategoryService()
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, "Work")
	require.NoError(t, err)

	_, err = svc.Rename(ctx, created.CategoryID, 2, "Stolen")
	assert.ErrorIs(t, err, store.ErrCategoryNotFound)
}

func TestCategoryReorderAssignsListedPositions(t *testing.T) {
	t.Parallel()
	svc, _ := newCategoryService()
	ctx := context.Background()

	a, err := svc.Create(ctx, 1, "A")
	require.NoError(t, err)
	b, err := svc.Create(ctx, 1, "B")
	require.NoError(t, err)
	c, err := svc.Create(ctx, 1, "C")
	require.NoError(t, err)

	updated, err := svc.Reorder(ctx, 1, []int64{c.CategoryID, a.CategoryID, b.CategoryID})
	require.NoError(t, err)
	assert.Equal(t, int64(3), updated)

	categories, err := svc.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, categories, 3)
	assert.Equal(t, "C", categories[0].Title)
	assert.Equal(t, "A", categories[1].Title)
	assert.Equal(t, "B", categories[2].Title)
}

func TestCategoryReorderEmptyList(t *testing.T) {
	t.Parallel()
	svc, _ := newCategoryService()

	_, err := svc.Reorder(context.Background(), 1, nil)
	assert.ErrorIs(t, err, domain.ErrEmptyOrder)
}

func TestCategoryReorderSkipsForeignIDs(t *testing.T) {
	t.Parallel()
	svc, _ := newCategoryService()
	ctx := context.Background()

	mine, err := svc.Create(ctx, 1, "Mine")
	require.NoError(t, err)
	theirs, err := svc.Create(ctx, 2, "Theirs")
	require.NoError(t, err)

	updated, err := svc.Reorder(ctx, 1, []int64{theirs.CategoryID, mine.CategoryID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated, "only the caller's own row is counted")

	others, err := svc.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, others, 1)
	assert.Equal(t, 0, others[0].SortOrder, "foreign rows are untouched")
}

func TestCategoryReorderLaterDuplicateWins(t *testing.T) {
	t.Parallel()
	svc, _ := newCategoryService()
	ctx := context.Background()

	a, err := svc.Create(ctx, 1, "A")
	require.NoError(t, err)
	b, err := svc.Create(ctx, 1, "B")
	require.NoError(t, err)

	// a appears twice; the later index 2 is the one applied.
	updated, err := svc.Reorder(ctx, 1, []int64{a.CategoryID, b.CategoryID, a.CategoryID})
	require.NoError(t, err)
	assert.Equal(t, int64(2), updated)

	categories, err := svc.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "B", categories[0].Title)
	assert.Equal(t, 1, categories[0].SortOrder)
	assert.Equal(t, "A", categories[1].Title)
	assert.Equal(t, 2, categories[1].SortOrder)
}

func TestCategoryDeleteCompactsSurvivors(t *testing.T) {
	t.Parallel()
	svc, _ := newCategoryService()
	ctx := context.Background()

	a, err := svc.Create(ctx, 1, "A")
	require.NoError(t, err)
	b, err := svc.Create(ctx, 1, "B")
	require.NoError(t, err)
	c, err := svc.Create(ctx, 1, "C")
	require.NoError(t, err)

	remaining, err := svc.Delete(ctx, b.CategoryID, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, remaining)

	categories, err := svc.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, a.CategoryID, categories[0].CategoryID)
	assert.Equal(t, 0, categories[0].SortOrder)
	assert.Equal(t, c.CategoryID, categories[1].CategoryID)
	assert.Equal(t, 1, categories[1].SortOrder)
}

func TestCategoryDeleteCrossUserNotFound(t *testing.T) {
	t.Parallel()
	svc, _ := newCategoryService()
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, "Work")
	require.NoError(t, err)

	_, err = svc.Delete(ctx, created.CategoryID, 2)
	assert.ErrorIs(t, err, store.ErrCategoryNotFound)

	categories, err := svc.List(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, categories, 1, "the row survives a foreign delete attempt")
}

func TestCategoryDeleteCascadesTasks(t *testing.T) {
	t.Parallel()
	tasks := storetest.NewMemTaskStore()
	categories := storetest.NewMemCategoryStore(tasks)
	txm := storetest.NewTxManager()
	catSvc := ordering.NewCategoryService(txm, categories, nil)
	taskSvc := ordering.NewTaskService(txm, tasks, categories, nil)
	ctx := context.Background()

	category, err := catSvc.Create(ctx, 1, "Work")
	require.NoError(t, err)
	_, err = taskSvc.Create(ctx, 1, category.CategoryID, "Task", "")
	require.NoError(t, err)

	_, err = catSvc.Delete(ctx, category.CategoryID, 1)
	require.NoError(t, err)

	_, err = taskSvc.List(ctx, 1, category.CategoryID, nil)
	assert.ErrorIs(t, err, store.ErrCategoryNotFound)
}
