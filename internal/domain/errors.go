// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrEmptyTitle is returned when a title is empty after trimming whitespace.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrEmptyOrder is returned when a reorder request carries no IDs.
	ErrEmptyOrder = errors.New("ordered ids cannot be empty")

	// ErrNoFieldsToUpdate is returned when an update request carries no
	// updatable fields.
	ErrNoFieldsToUpdate = errors.New("no fields to update")
)
