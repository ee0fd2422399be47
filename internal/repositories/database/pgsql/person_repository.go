package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/imovelhub/imovel_finance/internal/apperrors"
	"github.com/imovelhub/imovel_finance/internal/core/domain"
	portsrepo "github.com/imovelhub/imovel_finance/internal/core/ports/repositories"
)

// PgxPersonRepository reads the externally owned people table.
type PgxPersonRepository struct {
	BaseRepository
}

func newPgxPersonRepository(pool *pgxpool.Pool) portsrepo.PersonRepository {
	return &PgxPersonRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PersonRepository = (*PgxPersonRepository)(nil)

func (r *PgxPersonRepository) FindPersonByID(ctx context.Context, personID string) (*domain.Person, error) {
	var p domain.Person
	err := r.Pool.QueryRow(ctx, `
		SELECT person_id, name, role FROM people WHERE person_id = $1;
	`, personID).Scan(&p.PersonID, &p.Name, &p.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("person %s: %w", personID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("%w: failed to find person %s: %v", apperrors.ErrInternal, personID, err)
	}
	return &p, nil
}
