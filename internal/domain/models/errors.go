package models

import "fmt"

// ValidationError indicates an operation was rejected because its inputs
// violate a domain invariant: negative quantities, an empty blend,
// out-of-order observation dates, a feed amount driven below zero.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation: " + e.Reason
}

// NewValidationError builds a ValidationError from a format string.
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// NotFoundError indicates a referenced entity does not exist: an unknown
// ingredient id, animal tag or species/stage combination.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}

// NewNotFoundError builds a NotFoundError for the given resource and key.
func NewNotFoundError(resource, key string) *NotFoundError {
	return &NotFoundError{Resource: resource, Key: key}
}
