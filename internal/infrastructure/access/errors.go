package access

import (
	"errors"
	"fmt"
)

// ErrMalformedRow reports a row whose columns do not match what the statement selects.
var ErrMalformedRow = errors.New("malformed row")

// StorageError wraps any failure raised while executing a statement or mapping its rows.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// IsStorageError reports whether err carries a StorageError.
func IsStorageError(err error) bool {
	var storageErr *StorageError
	return errors.As(err, &storageErr)
}

// FailurePolicy is called with every storage error before it is returned to the
// caller. A policy may terminate the process; returning lets the caller handle it.
type FailurePolicy func(op string, err error)
