package pgsql

import (
	portsrepo "github.com/SscSPs/finance_dashboard/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the Postgres user and transaction stores. The
// reference dataset reader is storage independent and supplied by the caller.
func NewRepositoryProvider(dbPool *pgxpool.Pool, reference portsrepo.ReferenceDataReader) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:        newPgxUserRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
		ReferenceData:   reference,
	}
}
