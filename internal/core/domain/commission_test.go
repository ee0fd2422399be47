package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imovelhub/imovel_finance/internal/apperrors"
	"github.com/imovelhub/imovel_finance/internal/core/domain"
)

func TestNextCommissionStatus(t *testing.T) {
	tests := []struct {
		name    string
		current domain.CommissionStatus
		action  domain.CommissionAction
		want    domain.CommissionStatus
		wantErr bool
	}{
		{
			name:    "pending can be approved",
			current: domain.CommissionPending,
			action:  domain.CommActionApprove,
			want:    domain.CommissionApproved,
		},
		{
			name:    "pending can be cancelled",
			current: domain.CommissionPending,
			action:  domain.CommActionCancel,
			want:    domain.CommissionCancelled,
		},
		{
			name:    "pending cannot be paid directly",
			current: domain.CommissionPending,
			action:  domain.CommActionPay,
			wantErr: true,
		},
		{
			name:    "approved can be paid",
			current: domain.CommissionApproved,
			action:  domain.CommActionPay,
			want:    domain.CommissionPaid,
		},
		{
			name:    "approved can be cancelled",
			current: domain.CommissionApproved,
			action:  domain.CommActionCancel,
			want:    domain.CommissionCancelled,
		},
		{
			name:    "approved cannot be approved again",
			current: domain.CommissionApproved,
			action:  domain.CommActionApprove,
			wantErr: true,
		},
		{
			name:    "paid cannot move back to approved",
			current: domain.CommissionPaid,
			action:  domain.CommActionApprove,
			wantErr: true,
		},
		{
			name:    "paid cannot be cancelled",
			current: domain.CommissionPaid,
			action:  domain.CommActionCancel,
			wantErr: true,
		},
		{
			name:    "cancelled cannot be approved",
			current: domain.CommissionCancelled,
			action:  domain.CommActionApprove,
			wantErr: true,
		},
		{
			name:    "cancelled cannot be paid",
			current: domain.CommissionCancelled,
			action:  domain.CommActionPay,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.NextCommissionStatus("comm-1", tt.current, tt.action)
			if tt.wantErr {
				require.Error(t, err)
				var transitionErr *apperrors.InvalidTransitionError
				require.ErrorAs(t, err, &transitionErr)
				assert.Equal(t, "commission", transitionErr.Entity)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCommissionStatus_IsTerminal(t *testing.T) {
	assert.False(t, domain.CommissionPending.IsTerminal())
	assert.False(t, domain.CommissionApproved.IsTerminal())
	assert.True(t, domain.CommissionPaid.IsTerminal())
	assert.True(t, domain.CommissionCancelled.IsTerminal())
}
