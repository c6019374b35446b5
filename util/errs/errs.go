// Package errs defines the failure kinds surfaced by the persistence layer.
// Every operation fails with exactly one of: validation failure, not found,
// conflict, or an unclassified error treated as unexpected by the boundary.
package errs

import (
	"fmt"
	"strings"
)

// ValidationError aggregates every violated field rule of one request.
// The messages keep the order in which the rules are declared.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, " ")
}

func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

// NotFoundError reports a lookup by identifier that matched no row.
type NotFoundError struct {
	Resource string
	Id       uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %d was not found.", e.Resource, e.Id)
}

func NewNotFoundError(resource string, id uint) *NotFoundError {
	return &NotFoundError{Resource: resource, Id: id}
}

// ConflictError reports a precondition violation, such as deleting a
// category that still has courses.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func NewConflictError(message string) *ConflictError {
	return &ConflictError{Message: message}
}
