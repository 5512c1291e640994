/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrNotFound is returned when a record is not found
	ErrNotFound = errors.New("record not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidDescriptor is returned when a descriptor cannot be evaluated
	ErrInvalidDescriptor = errors.New("invalid descriptor")

	// ErrFetchFailed is returned when a store-level fetch fails
	ErrFetchFailed = errors.New("fetch failed")
)

// NotFoundError represents an error when a record is not found
type NotFoundError struct {
	Type string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with key %q not found", e.Type, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ValidationError represents an input validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// InvalidDescriptorError represents a descriptor that the store cannot evaluate,
// typically a predicate expression that fails to compile.
type InvalidDescriptorError struct {
	Predicate string
	Cause     error
}

func (e *InvalidDescriptorError) Error() string {
	return fmt.Sprintf("invalid descriptor predicate %q: %v", e.Predicate, e.Cause)
}

func (e *InvalidDescriptorError) Is(target error) bool {
	return target == ErrInvalidDescriptor
}

func (e *InvalidDescriptorError) Unwrap() error {
	return e.Cause
}

// FetchError wraps any failure during a store fetch. Callers that follow the
// best-effort freshness policy log it and keep the previously observed value.
type FetchError struct {
	Store string
	Cause error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch from %s store failed: %v", e.Store, e.Cause)
}

func (e *FetchError) Is(target error) bool {
	return target == ErrFetchFailed
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

// Helper functions for creating errors

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(recordType, key string) error {
	return &NotFoundError{Type: recordType, Key: key}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewInvalidDescriptorError creates a new InvalidDescriptorError
func NewInvalidDescriptorError(predicate string, cause error) error {
	return &InvalidDescriptorError{Predicate: predicate, Cause: cause}
}

// NewFetchError creates a new FetchError
func NewFetchError(storeName string, cause error) error {
	return &FetchError{Store: storeName, Cause: cause}
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsInvalidDescriptor checks if an error is an invalid descriptor error
func IsInvalidDescriptor(err error) bool {
	return errors.Is(err, ErrInvalidDescriptor)
}

// IsFetchFailed checks if an error is a fetch error
func IsFetchFailed(err error) bool {
	return errors.Is(err, ErrFetchFailed)
}
