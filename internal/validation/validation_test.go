package validation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imovelhub/imovel_finance/internal/apperrors"
)

func TestStruct_ReportsJSONFieldNames(t *testing.T) {
	type payload struct {
		Kind   string `json:"kind" validate:"required,oneof=A B"`
		Amount int    `json:"amount" validate:"min=1"`
	}

	verr := Struct(payload{})
	require.NotNil(t, verr)
	assert.Contains(t, verr.Fields, "kind")
	assert.Contains(t, verr.Fields, "amount")

	verr = Struct(payload{Kind: "A", Amount: 5})
	assert.Nil(t, verr)
}

func TestDecimalHelpers(t *testing.T) {
	verr := apperrors.NewValidationError()
	Positive(verr, "amount", decimal.Zero)
	NonNegative(verr, "fee", decimal.NewFromInt(-1))
	InRange(verr, "percentage", decimal.NewFromInt(120), decimal.Zero, decimal.NewFromInt(100))
	OneOf(verr, "status", "SETTLED", "PENDING", "PAID")

	assert.Contains(t, verr.Fields, "amount")
	assert.Contains(t, verr.Fields, "fee")
	assert.Contains(t, verr.Fields, "percentage")
	assert.Contains(t, verr.Fields, "status")

	err := Finish(verr)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestFinish_NoFailures(t *testing.T) {
	verr := apperrors.NewValidationError()
	Positive(verr, "amount", decimal.NewFromInt(10))
	NonNegative(verr, "fee", decimal.Zero)
	InRange(verr, "percentage", decimal.NewFromInt(50), decimal.Zero, decimal.NewFromInt(100))
	OneOf(verr, "status", "PAID", "PENDING", "PAID")

	assert.NoError(t, Finish(verr))
}
