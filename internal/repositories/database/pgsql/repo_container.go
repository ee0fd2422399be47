package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/imovelhub/imovel_finance/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every PostgreSQL repository over one shared
// connection pool.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		TransactionRepo: newPgxTransactionRepository(pool),
		CommissionRepo:  newPgxCommissionRepository(pool),
		BankAccountRepo: newPgxBankAccountRepository(pool),
		PersonRepo:      newPgxPersonRepository(pool),
		ReportingRepo:   newPgxReportingRepository(pool),
	}
}
