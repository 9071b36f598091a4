// Package domain provides the error taxonomy shared by storage,
// actions, services, and handlers.
package domain

import "errors"

var (
	// ErrValidation indicates malformed or out-of-range input, including a
	// category/transaction type mismatch.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound indicates an unknown id or a cross-owner access attempt.
	ErrNotFound = errors.New("not found")
	// ErrConflict indicates a uniqueness violation or an attempt to delete a
	// parent that still has referencing transactions.
	ErrConflict = errors.New("conflict")
)
