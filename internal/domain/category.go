package domain

import "strings"

// Category is a user-owned grouping of tasks with an explicit display order.
//
// Invariants, maintained by the ordering service:
//   - (UserID, Title) is unique, backed by a database constraint.
//   - Among categories sharing a UserID, SortOrder values form a contiguous,
//     zero-based sequence matching display order.
type Category struct {
	CategoryID int64
	Title      string
	SortOrder  int
	UserID     int64
}

// NewCategory builds a Category with a trimmed title. SortOrder is assigned
// by the ordering service when the category is inserted into its scope.
func NewCategory(userID int64, title string) (*Category, error) {
	c := &Category{
		Title:  strings.TrimSpace(title),
		UserID: userID,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the category fields.
func (c *Category) Validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return ErrEmptyTitle
	}
	if c.UserID <= 0 {
		return ErrInvalidID
	}
	return nil
}
