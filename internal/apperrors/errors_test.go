package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError_CollectsFieldsAndUnwraps(t *testing.T) {
	verr := NewValidationError().
		Add("amount", "must be greater than zero").
		Add("amount", "must be a number").
		Add("dueDate", "is required")

	require.True(t, verr.HasErrors())
	assert.Len(t, verr.Fields["amount"], 2)
	assert.ErrorIs(t, verr, ErrValidation)
	// Fields render sorted so the message is stable across runs.
	assert.Equal(t, "validation failed: amount: must be greater than zero; must be a number, dueDate: is required", verr.Error())
}

func TestValidationError_EmptyHasNoErrors(t *testing.T) {
	assert.False(t, NewValidationError().HasErrors())
}

func TestImmutableStateError_UnwrapsToConflict(t *testing.T) {
	err := &ImmutableStateError{Entity: "transaction", ID: "txn-1", Status: "PAID"}

	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, "transaction txn-1 is immutable in status PAID", err.Error())
}

func TestInvalidTransitionError_UnwrapsToConflict(t *testing.T) {
	err := &InvalidTransitionError{Entity: "commission", ID: "com-1", From: "PENDING", Action: "PAY"}

	assert.ErrorIs(t, err, ErrConflict)

	var transitionErr *InvalidTransitionError
	require.ErrorAs(t, fmt.Errorf("pay commission: %w", err), &transitionErr)
	assert.Equal(t, "PENDING", transitionErr.From)
}

func TestInvalidCounterpartyError_UnwrapsToValidation(t *testing.T) {
	err := &InvalidCounterpartyError{PersonID: "per-1", Role: "OWNER"}

	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "OWNER")
}

func TestInvalidRangeError_UnwrapsToValidation(t *testing.T) {
	err := &InvalidRangeError{Start: "2026-02-01", End: "2026-01-01"}

	assert.ErrorIs(t, err, ErrValidation)
}

func TestSentinelsStayDistinct(t *testing.T) {
	wrapped := fmt.Errorf("find transaction: %w", ErrNotFound)

	assert.ErrorIs(t, wrapped, ErrNotFound)
	assert.False(t, errors.Is(wrapped, ErrConflict))
}
