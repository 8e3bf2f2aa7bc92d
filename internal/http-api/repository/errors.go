package repository

import (
	"errors"
	"fmt"
)

// ErrNotFound reports a lookup that matched no row. It is distinct from
// StorageError so callers can branch on absence without text matching.
var ErrNotFound = errors.New("record not found")

// StorageError wraps a persistence-layer failure: connectivity loss,
// constraint violation, malformed query. Operations fail fast; nothing is
// retried here.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func storageErr(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}
