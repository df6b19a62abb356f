package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
)

// TransactionCursor marks the last transaction of a previous page.
// Pages continue strictly after it in (date desc, transaction ID desc) order.
type TransactionCursor struct {
	Date          time.Time
	TransactionID string
}

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	// FindTransactionsByUser returns every transaction of the user, newest first.
	FindTransactionsByUser(ctx context.Context, userID string) ([]domain.Transaction, error)

	// ListTransactionsByUser returns up to limit transactions of the user, newest first,
	// starting after the cursor when one is given.
	ListTransactionsByUser(ctx context.Context, userID string, limit int, after *TransactionCursor) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for transaction data
type TransactionWriter interface {
	// SaveTransaction persists a new transaction. Transactions are never updated.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
