// Package storetest provides in-memory store implementations for tests.
// The fakes mirror the SQL-backed stores' observable behavior, including
// sort ordering, ownership scoping and matched-row counts, so service and
// handler tests can run without a database.
package storetest

import (
	"context"
	"database/sql"
	"sort"
	"time"

	"github.com/rasupy/todo-myapp/internal/domain"
	"github.com/rasupy/todo-myapp/internal/store"
)

// TxManager is a pass-through TransactionManager. The fakes are not
// transactional, so the unit of work runs directly with a nil *sql.Tx.
type TxManager struct{}

// NewTxManager returns a pass-through TransactionManager for tests.
func NewTxManager() *TxManager {
	return &TxManager{}
}

// WithTransaction runs fn immediately without a real transaction.
func (m *TxManager) WithTransaction(ctx context.Context, fn store.TxFn) error {
	return fn(ctx, nil)
}

// MemUserStore is an in-memory UserStore.
type MemUserStore struct {
	users  map[int64]domain.User
	nextID int64
}

// NewMemUserStore returns an empty in-memory user store.
func NewMemUserStore() *MemUserStore {
	return &MemUserStore{users: make(map[int64]domain.User), nextID: 1}
}

func (s *MemUserStore) Create(ctx context.Context, user *domain.User) error {
	for _, u := range s.users {
		if u.Email == user.Email {
			return store.ErrEmailExists
		}
	}
	user.UserID = s.nextID
	s.nextID++
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	s.users[user.UserID] = *user
	return nil
}

func (s *MemUserStore) GetByID(ctx context.Context, userID int64) (*domain.User, error) {
	u, ok := s.users[userID]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return &u, nil
}

func (s *MemUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, store.ErrUserNotFound
}

func (s *MemUserStore) WithTx(tx *sql.Tx) store.UserStore { return s }

// MemCategoryStore is an in-memory CategoryStore.
type MemCategoryStore struct {
	categories map[int64]domain.Category
	nextID     int64

	// tasks, when set, receives cascading deletes the way the database's
	// foreign key rule would.
	tasks *MemTaskStore
}

// NewMemCategoryStore returns an empty in-memory category store. The
// optional task store receives cascading deletes when a category is removed.
func NewMemCategoryStore(tasks *MemTaskStore) *MemCategoryStore {
	return &MemCategoryStore{
		categories: make(map[int64]domain.Category),
		nextID:     1,
		tasks:      tasks,
	}
}

func (s *MemCategoryStore) ListByUser(ctx context.Context, userID int64) ([]domain.Category, error) {
	var out []domain.Category
	for _, c := range s.categories {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	sortCategories(out)
	return out, nil
}

func (s *MemCategoryStore) GetForUser(ctx context.Context, categoryID, userID int64) (*domain.Category, error) {
	c, ok := s.categories[categoryID]
	if !ok || c.UserID != userID {
		return nil, store.ErrCategoryNotFound
	}
	return &c, nil
}

func (s *MemCategoryStore) TitleExists(ctx context.Context, userID int64, title string) (bool, error) {
	for _, c := range s.categories {
		if c.UserID == userID && c.Title == title {
			return true, nil
		}
	}
	return false, nil
}

func (s *MemCategoryStore) MaxSortOrder(ctx context.Context, userID int64) (int, error) {
	max := -1
	for _, c := range s.categories {
		if c.UserID == userID && c.SortOrder > max {
			max = c.SortOrder
		}
	}
	return max, nil
}

func (s *MemCategoryStore) Create(ctx context.Context, category *domain.Category) error {
	exists, _ := s.TitleExists(ctx, category.UserID, category.Title)
	if exists {
		return store.ErrDuplicateTitle
	}
	category.CategoryID = s.nextID
	s.nextID++
	s.categories[category.CategoryID] = *category
	return nil
}

func (s *MemCategoryStore) UpdateTitle(ctx context.Context, categoryID, userID int64, title string) error {
	c, ok := s.categories[categoryID]
	if !ok || c.UserID != userID {
		return store.ErrCategoryNotFound
	}
	for _, other := range s.categories {
		if other.UserID == userID && other.CategoryID != categoryID && other.Title == title {
			return store.ErrDuplicateTitle
		}
	}
	c.Title = title
	s.categories[categoryID] = c
	return nil
}

func (s *MemCategoryStore) SetSortOrder(ctx context.Context, categoryID int64, sortOrder int) error {
	c, ok := s.categories[categoryID]
	if !ok {
		return store.ErrCategoryNotFound
	}
	c.SortOrder = sortOrder
	s.categories[categoryID] = c
	return nil
}

func (s *MemCategoryStore) UpdateSortOrders(ctx context.Context, userID int64, positions map[int64]int) (int64, error) {
	var matched int64
	for id, pos := range positions {
		c, ok := s.categories[id]
		if !ok || c.UserID != userID {
			continue
		}
		c.SortOrder = pos
		s.categories[id] = c
		matched++
	}
	return matched, nil
}

func (s *MemCategoryStore) Delete(ctx context.Context, categoryID, userID int64) error {
	c, ok := s.categories[categoryID]
	if !ok || c.UserID != userID {
		return store.ErrCategoryNotFound
	}
	delete(s.categories, categoryID)
	if s.tasks != nil {
		s.tasks.deleteByCategory(categoryID)
	}
	return nil
}

func (s *MemCategoryStore) WithTx(tx *sql.Tx) store.CategoryStore { return s }

// MemTaskStore is an in-memory TaskStore.
type MemTaskStore struct {
	tasks  map[int64]domain.Task
	nextID int64
}

// NewMemTaskStore returns an empty in-memory task store.
func NewMemTaskStore() *MemTaskStore {
	return &MemTaskStore{tasks: make(map[int64]domain.Task), nextID: 1}
}

func (s *MemTaskStore) ListVisible(ctx context.Context, userID, categoryID int64, status *string) ([]domain.Task, error) {
	var out []domain.Task
	for _, t := range s.tasks {
		if t.UserID != userID || t.CategoryID != categoryID {
			continue
		}
		if status != nil {
			if t.Status != *status {
				continue
			}
		} else if t.Archived() {
			continue
		}
		out = append(out, t)
	}
	sortTasks(out)
	return out, nil
}

func (s *MemTaskStore) ListAll(ctx context.Context, userID, categoryID int64) ([]domain.Task, error) {
	var out []domain.Task
	for _, t := range s.tasks {
		if t.UserID == userID && t.CategoryID == categoryID {
			out = append(out, t)
		}
	}
	sortTasks(out)
	return out, nil
}

func (s *MemTaskStore) GetForUser(ctx context.Context, taskID, userID int64) (*domain.Task, error) {
	t, ok := s.tasks[taskID]
	if !ok || t.UserID != userID {
		return nil, store.ErrTaskNotFound
	}
	return &t, nil
}

func (s *MemTaskStore) MaxSortOrder(ctx context.Context, userID, categoryID int64) (int, error) {
	max := -1
	for _, t := range s.tasks {
		if t.UserID == userID && t.CategoryID == categoryID && t.SortOrder > max {
			max = t.SortOrder
		}
	}
	return max, nil
}

func (s *MemTaskStore) MaxSortOrderInPartition(ctx context.Context, userID, categoryID int64, archived bool) (int, error) {
	max := -1
	for _, t := range s.tasks {
		if t.UserID != userID || t.CategoryID != categoryID {
			continue
		}
		if t.Archived() != archived {
			continue
		}
		if t.SortOrder > max {
			max = t.SortOrder
		}
	}
	return max, nil
}

func (s *MemTaskStore) Create(ctx context.Context, task *domain.Task) error {
	task.TaskID = s.nextID
	s.nextID++
	s.tasks[task.TaskID] = *task
	return nil
}

func (s *MemTaskStore) Update(ctx context.Context, task *domain.Task) error {
	stored, ok := s.tasks[task.TaskID]
	if !ok {
		return store.ErrTaskNotFound
	}
	stored.Title = task.Title
	stored.Content = task.Content
	stored.Status = task.Status
	stored.SortOrder = task.SortOrder
	s.tasks[task.TaskID] = stored
	return nil
}

func (s *MemTaskStore) SetSortOrder(ctx context.Context, taskID int64, sortOrder int) error {
	t, ok := s.tasks[taskID]
	if !ok {
		return store.ErrTaskNotFound
	}
	t.SortOrder = sortOrder
	s.tasks[taskID] = t
	return nil
}

func (s *MemTaskStore) UpdateSortOrders(ctx context.Context, userID, categoryID int64, positions map[int64]int) (int64, error) {
	var matched int64
	for id, pos := range positions {
		t, ok := s.tasks[id]
		if !ok || t.UserID != userID || t.CategoryID != categoryID {
			continue
		}
		t.SortOrder = pos
		s.tasks[id] = t
		matched++
	}
	return matched, nil
}

func (s *MemTaskStore) Delete(ctx context.Context, taskID, userID int64) error {
	t, ok := s.tasks[taskID]
	if !ok || t.UserID != userID {
		return store.ErrTaskNotFound
	}
	delete(s.tasks, taskID)
	return nil
}

func (s *MemTaskStore) WithTx(tx *sql.Tx) store.TaskStore { return s }

func (s *MemTaskStore) deleteByCategory(categoryID int64) {
	for id, t := range s.tasks {
		if t.CategoryID == categoryID {
			delete(s.tasks, id)
		}
	}
}

func sortCategories(cs []domain.Category) {
	sort.Slice(cs, func(i, j int) bool {
		if cs[i].SortOrder != cs[j].SortOrder {
			return cs[i].SortOrder < cs[j].SortOrder
		}
		return cs[i].CategoryID < cs[j].CategoryID
	})
}

func sortTasks(ts []domain.Task) {
	sort.Slice(ts, func(i, j int) bool {
		if ts[i].SortOrder != ts[j].SortOrder {
			return ts[i].SortOrder < ts[j].SortOrder
		}
		return ts[i].TaskID < ts[j].TaskID
	})
}
