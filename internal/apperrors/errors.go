package apperrors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrConflict indicates that the operation is blocked by the current state of
// the resource or by existing references to it.
var ErrConflict = errors.New("resource conflict")

// ErrInternal indicates an unexpected infrastructure failure. The ledger core
// never retries these; callers decide whether to retry or report.
var ErrInternal = errors.New("internal error")

// ValidationError carries per-field failures keyed by field name.
// It unwraps to ErrValidation so callers can keep branching with errors.Is.
type ValidationError struct {
	Fields map[string][]string
}

// NewValidationError returns an empty ValidationError ready for Add calls.
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string][]string)}
}

// Add appends a failure message for a field and returns the error for chaining.
func (e *ValidationError) Add(field, message string) *ValidationError {
	e.Fields[field] = append(e.Fields[field], message)
	return e
}

// HasErrors reports whether any field failed.
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, strings.Join(e.Fields[f], "; ")))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// ImmutableStateError signals an attempt to mutate or delete a record that is
// in a terminal status.
type ImmutableStateError struct {
	Entity string
	ID     string
	Status string
}

func (e *ImmutableStateError) Error() string {
	return fmt.Sprintf("%s %s is immutable in status %s", e.Entity, e.ID, e.Status)
}

func (e *ImmutableStateError) Unwrap() error { return ErrConflict }

// InvalidTransitionError signals a status transition not allowed from the
// record's current status. The current status and attempted action are kept
// so callers can audit-log the rejected transition.
type InvalidTransitionError struct {
	Entity string
	ID     string
	From   string
	Action string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s %s: action %s not allowed from status %s", e.Entity, e.ID, e.Action, e.From)
}

func (e *InvalidTransitionError) Unwrap() error { return ErrConflict }

// InvalidCounterpartyError signals a commission created for a person whose
// role does not permit earning commissions.
type InvalidCounterpartyError struct {
	PersonID string
	Role     string
}

func (e *InvalidCounterpartyError) Error() string {
	return fmt.Sprintf("person %s has role %s, commissions require an agent", e.PersonID, e.Role)
}

func (e *InvalidCounterpartyError) Unwrap() error { return ErrValidation }

// InvalidRangeError signals a reporting window whose end precedes its start.
type InvalidRangeError struct {
	Start string
	End   string
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid date range: end %s is before start %s", e.End, e.Start)
}

func (e *InvalidRangeError) Unwrap() error { return ErrValidation }
