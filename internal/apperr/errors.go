// Package apperr defines the error taxonomy surfaced by the data-access
// layer; callers classify with errors.As and decide presentation.
package apperr

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError reports one or more violated field constraints. No
// mutation has been performed when it is returned.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Violations, "; ")
}

// NewValidation creates a ValidationError from the violated constraints.
func NewValidation(violations ...string) *ValidationError {
	return &ValidationError{Violations: violations}
}

// NotFoundError reports that a required entity id does not exist.
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d not found", e.Entity, e.ID)
}

// NewNotFound creates a NotFoundError for the given entity and id.
func NewNotFound(entity string, id int64) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

// ReferentialIntegrityError reports a delete blocked by a restrict
// relationship. The delete performed no mutation.
type ReferentialIntegrityError struct {
	Entity string
	ID     int64
	Reason string
}

func (e *ReferentialIntegrityError) Error() string {
	return fmt.Sprintf("cannot delete %s %d: %s", e.Entity, e.ID, e.Reason)
}

// NewReferentialIntegrity creates a ReferentialIntegrityError.
func NewReferentialIntegrity(entity string, id int64, reason string) *ReferentialIntegrityError {
	return &ReferentialIntegrityError{Entity: entity, ID: id, Reason: reason}
}

// StorageError wraps an underlying storage failure not classified above. It
// propagates opaquely; the core does not retry.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// NewStorage wraps err as a StorageError for the given operation.
func NewStorage(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

// IsReferentialIntegrity reports whether err is a ReferentialIntegrityError.
func IsReferentialIntegrity(err error) bool {
	var e *ReferentialIntegrityError
	return errors.As(err, &e)
}
