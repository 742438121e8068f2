package service

import (
	"errors"
	"fmt"

	"github.com/Eursukkul/booking-microservice/directory-service/internal/dto"
)

var ErrNotFound = errors.New("record not found")

// ValidationError carries field level problems with a submitted form.
// Nothing has been written when it is returned.
type ValidationError struct {
	Fields dto.FieldErrors
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Fields.Error()
}

// PersistenceError wraps a failed write. The surrounding transaction has
// already been rolled back.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
