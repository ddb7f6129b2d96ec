package domain

import (
	"errors"
	"fmt"
)

// ErrSettingsUnavailable means the singleton settings row is missing. That is
// a bootstrap problem, not something a client can fix.
var ErrSettingsUnavailable = errors.New("settings record not found")

// ValidationError rejects malformed admin input (menu or settings writes).
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// InvalidOrderError rejects a malformed or semantically invalid order request.
type InvalidOrderError struct {
	Field   string
	Message string
}

func (e *InvalidOrderError) Error() string {
	return fmt.Sprintf("invalid order: %s: %s", e.Field, e.Message)
}

// UnknownMenuItemError means one or more requested item ids do not exist in
// the catalog. Resolution is all-or-nothing, so the whole order is rejected.
type UnknownMenuItemError struct {
	MissingIDs []int64
}

func (e *UnknownMenuItemError) Error() string {
	return fmt.Sprintf("unknown menu items: %v", e.MissingIDs)
}

// StorageError wraps a failure from the persistence layer. Handlers report it
// as a generic server error without leaking the underlying cause.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
