package service

import (
	"errors"
	"fmt"
)

var ErrTournamentNotFound = errors.New("tournament not found")

// ValidationError reports input the service refuses to act on. Message is safe to show to clients.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErrorf(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// StorageError wraps a failure of the storage collaborator. Its text is for logs only.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsStorage(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
