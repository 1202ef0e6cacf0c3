package errs

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrStorageRead  = errors.New("storage read failed")
	ErrStorageWrite = errors.New("storage write failed")
)

func NewNotFound(entity string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusNotFound,
		err:        fmt.Errorf("%s %w", entity, ErrNotFound),
	}
}

// NewStorageError wraps a failure of the underlying key-value store with the
// operation and slot key it happened on. Load failures carry the read
// sentinel, everything else the write sentinel.
func NewStorageError(operation, key string, cause error) *ApiErr {
	sentinel := ErrStorageWrite
	if operation == "load" {
		sentinel = ErrStorageRead
	}
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        sentinel,
		Details:    fmt.Sprintf("Failed to %s slot %q", operation, key),
		Cause:      cause,
	}
}
