package services

import (
	"errors"
	"fmt"
)

// Sentinel errors for post operations
var (
	// ErrNotFound is returned when no post matches the requested id
	ErrNotFound = errors.New("post not found")

	// ErrDuplicateTitle is returned when a create or update would give two
	// posts the same title
	ErrDuplicateTitle = errors.New("a post with this title already exists")

	// ErrDeleteKeyNotSet is returned when deletion is attempted but no
	// delete key is configured on the server. Deletion is blocked rather
	// than allowed unrestricted.
	ErrDeleteKeyNotSet = errors.New("no delete key is configured")

	// ErrDeleteKeyMismatch is returned when the submitted delete key does
	// not exactly match the configured one
	ErrDeleteKeyMismatch = errors.New("delete key does not match")
)

// StorageError wraps a store fault the service could not map to a domain
// error. Handlers treat it as a recoverable failure, never a crash.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// IsStorageError checks if err is a store-level fault
func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
