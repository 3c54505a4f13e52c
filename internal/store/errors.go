package store

import (
	"errors"
	"fmt"
)

// ErrStoreIO indicates a persistence read or write failure. The
// original cause is wrapped and reachable via errors.Unwrap; the store
// never retries internally.
var ErrStoreIO = errors.New("citation store I/O failure")

// IOError wraps a persistence failure with the operation that hit it.
type IOError struct {
	Op  string // "read", "write", "delete"
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("citation store I/O failure (%s): %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

func (e *IOError) Is(target error) bool {
	return target == ErrStoreIO
}

// IsStoreIO returns true if the error is a persistence failure.
func IsStoreIO(err error) bool {
	return errors.Is(err, ErrStoreIO)
}
