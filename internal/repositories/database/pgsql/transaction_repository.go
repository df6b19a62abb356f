package pgsql

import (
	"context"
	"strconv"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_dashboard/internal/core/ports/repositories"
	"github.com/SscSPs/finance_dashboard/internal/models"
	"github.com/SscSPs/finance_dashboard/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const transactionColumns = `transaction_id, user_id, amount, category, description, date, type, created_at`

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.TransactionID,
		m.UserID,
		m.Amount,
		m.Category,
		m.Description,
		m.Date,
		m.Kind,
		m.CreatedAt,
	)
	return translateError(err, "failed to save transaction "+txn.TransactionID)
}

func (r *PgxTransactionRepository) FindTransactionsByUser(ctx context.Context, userID string) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE user_id = $1 ORDER BY date DESC, transaction_id DESC;`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, translateError(err, "failed to query transactions for user "+userID)
	}
	return scanTransactions(rows)
}

// ListTransactionsByUser pages with a (date, transaction_id) keyset so that
// transactions sharing a date are neither skipped nor repeated.
func (r *PgxTransactionRepository) ListTransactionsByUser(ctx context.Context, userID string, limit int, after *portsrepo.TransactionCursor) ([]domain.Transaction, error) {
	baseQuery := `SELECT ` + transactionColumns + ` FROM transactions WHERE user_id = $1`
	orderByClause := `ORDER BY date DESC, transaction_id DESC`
	args := []any{userID}

	query := baseQuery
	if after != nil {
		// Tuple comparison is concise and efficient in Postgres
		query += ` AND (date, transaction_id) < ($2, $3)`
		args = append(args, after.Date, after.TransactionID)
	}
	args = append(args, limit)
	query += " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)) + ";"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, "failed to list transactions for user "+userID)
	}
	return scanTransactions(rows)
}

func scanTransactions(rows pgx.Rows) ([]domain.Transaction, error) {
	defer rows.Close()

	txns := []models.Transaction{}
	for rows.Next() {
		var m models.Transaction
		err := rows.Scan(
			&m.TransactionID,
			&m.UserID,
			&m.Amount,
			&m.Category,
			&m.Description,
			&m.Date,
			&m.Kind,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, translateError(err, "failed to scan transaction row")
		}
		txns = append(txns, m)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err, "error iterating transaction rows")
	}
	return mapping.ToDomainTransactionSlice(txns), nil
}
