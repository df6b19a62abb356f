package services

import (
	"context"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	"github.com/SscSPs/finance_dashboard/internal/dto"
)

// TransactionSvc records and lists a user's income and expense entries.
type TransactionSvc interface {
	// AddTransaction validates and persists a new transaction for userID.
	AddTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// ListTransactions returns a page of the user's transactions, newest first, and the
	// token for the next page (nil when there is none).
	ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) ([]domain.Transaction, *string, error)
}
