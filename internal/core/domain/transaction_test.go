package domain_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imovelhub/imovel_finance/internal/apperrors"
	"github.com/imovelhub/imovel_finance/internal/core/domain"
)

func TestNextTransactionStatus(t *testing.T) {
	tests := []struct {
		name    string
		current domain.TransactionStatus
		action  domain.TransactionAction
		want    domain.TransactionStatus
		wantErr bool
	}{
		{
			name:    "pending can be marked paid",
			current: domain.TransactionPending,
			action:  domain.TxnActionMarkPaid,
			want:    domain.TransactionPaid,
		},
		{
			name:    "pending can be cancelled",
			current: domain.TransactionPending,
			action:  domain.TxnActionCancel,
			want:    domain.TransactionCancelled,
		},
		{
			name:    "paid cannot be marked paid again",
			current: domain.TransactionPaid,
			action:  domain.TxnActionMarkPaid,
			wantErr: true,
		},
		{
			name:    "paid cannot be cancelled",
			current: domain.TransactionPaid,
			action:  domain.TxnActionCancel,
			wantErr: true,
		},
		{
			name:    "cancelled cannot be marked paid",
			current: domain.TransactionCancelled,
			action:  domain.TxnActionMarkPaid,
			wantErr: true,
		},
		{
			name:    "cancelled cannot be cancelled again",
			current: domain.TransactionCancelled,
			action:  domain.TxnActionCancel,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.NextTransactionStatus("txn-1", tt.current, tt.action)
			if tt.wantErr {
				require.Error(t, err)
				var transitionErr *apperrors.InvalidTransitionError
				require.ErrorAs(t, err, &transitionErr)
				assert.Equal(t, string(tt.current), transitionErr.From)
				assert.Equal(t, string(tt.action), transitionErr.Action)
				assert.True(t, errors.Is(err, apperrors.ErrConflict))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTransactionStatus_IsTerminal(t *testing.T) {
	assert.False(t, domain.TransactionPending.IsTerminal())
	assert.True(t, domain.TransactionPaid.IsTerminal())
	assert.True(t, domain.TransactionCancelled.IsTerminal())
}

func TestTransaction_SignedAmount(t *testing.T) {
	receivable := domain.Transaction{Type: domain.Receivable, Amount: decimal.NewFromInt(150)}
	payable := domain.Transaction{Type: domain.Payable, Amount: decimal.NewFromInt(150)}

	assert.True(t, receivable.SignedAmount().Equal(decimal.NewFromInt(150)))
	assert.True(t, payable.SignedAmount().Equal(decimal.NewFromInt(-150)))
}

func TestAppendNotes(t *testing.T) {
	assert.Equal(t, "first", domain.AppendNotes("", "first"))
	assert.Equal(t, "first | second", domain.AppendNotes("first", "second"))
	assert.Equal(t, "first", domain.AppendNotes("first", ""))
}
