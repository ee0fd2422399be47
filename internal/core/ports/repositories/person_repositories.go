package repositories

import (
	"context"

	"github.com/imovelhub/imovel_finance/internal/core/domain"
)

// PersonRepository reads the externally owned people table. The ledger core
// only needs identity and role for counterparty checks and display.
type PersonRepository interface {
	FindPersonByID(ctx context.Context, personID string) (*domain.Person, error)
}
