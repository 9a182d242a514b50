package workpool

import (
	"errors"
	"fmt"
)

// Sentinel errors for pool operations
var (
	// ErrInvalidSize indicates the requested worker count is not positive
	ErrInvalidSize = errors.New("pool size must be at least 1")

	// ErrPoolClosed indicates the pool has been closed and no longer
	// accepts submissions
	ErrPoolClosed = errors.New("worker pool closed")

	// ErrNilJob indicates a nil job was submitted
	ErrNilJob = errors.New("job cannot be nil")
)

// CreationError describes why pool construction failed. It carries a
// human-readable message only; there is no error code taxonomy.
type CreationError struct {
	message string
}

func newCreationError(size int) *CreationError {
	return &CreationError{
		message: fmt.Sprintf("invalid pool size %d: %v", size, ErrInvalidSize),
	}
}

// Error implements the error interface
func (e *CreationError) Error() string {
	return e.message
}

// Unwrap lets callers test with errors.Is(err, ErrInvalidSize)
func (e *CreationError) Unwrap() error {
	return ErrInvalidSize
}
