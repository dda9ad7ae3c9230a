package domain

import "strings"

// Task statuses with behavioral meaning. Status is otherwise a free-form
// string; only the archived/not-archived split affects visibility and
// ordering partitions.
const (
	TaskStatusTodo     = "todo"
	TaskStatusArchived = "archived"
)

// Task is a user-owned item within a category.
//
// Invariant, maintained by the ordering service: among tasks sharing
// (UserID, CategoryID) — and, for status transitions, sharing
// (UserID, CategoryID, status partition) — SortOrder is contiguous and
// zero-based.
type Task struct {
	TaskID     int64
	Title      string
	Content    string
	Status     string
	SortOrder  int
	UserID     int64
	CategoryID int64
}

// NewTask builds a Task with default status "todo". SortOrder is assigned by
// the ordering service when the task is appended to its category scope.
func NewTask(userID, categoryID int64, title, content string) (*Task, error) {
	t := &Task{
		Title:      title,
		Content:    content,
		Status:     TaskStatusTodo,
		UserID:     userID,
		CategoryID: categoryID,
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate checks the task fields.
func (t *Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return ErrEmptyTitle
	}
	if t.UserID <= 0 || t.CategoryID <= 0 {
		return ErrInvalidID
	}
	return nil
}

// Archived reports whether the task sits in the archived partition.
func (t *Task) Archived() bool {
	return t.Status == TaskStatusArchived
}

// StatusArchived reports whether a status value falls in the archived
// partition. Used when computing the target partition of a status change.
func StatusArchived(status string) bool {
	return status == TaskStatusArchived
}
