package sqlite

import (
	"context"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_dashboard/internal/core/ports/repositories"
	"github.com/SscSPs/finance_dashboard/internal/models"
	"github.com/SscSPs/finance_dashboard/internal/utils/mapping"
	"gorm.io/gorm"
)

type GormTransactionRepository struct {
	db *gorm.DB
}

func newGormTransactionRepository(db *gorm.DB) portsrepo.TransactionRepositoryFacade {
	return &GormTransactionRepository{db: db}
}

var _ portsrepo.TransactionRepositoryFacade = (*GormTransactionRepository)(nil)

func (r *GormTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	m.Date = m.Date.UTC()
	m.CreatedAt = m.CreatedAt.UTC()
	return translateError(r.db.WithContext(ctx).Create(&m).Error, "failed to save transaction "+txn.TransactionID)
}

func (r *GormTransactionRepository) byUser(ctx context.Context, userID string) *gorm.DB {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Order("transaction_id DESC")
}

func (r *GormTransactionRepository) FindTransactionsByUser(ctx context.Context, userID string) ([]domain.Transaction, error) {
	var ms []models.Transaction
	if err := r.byUser(ctx, userID).Find(&ms).Error; err != nil {
		return nil, translateError(err, "failed to query transactions for user "+userID)
	}
	return mapping.ToDomainTransactionSlice(ms), nil
}

func (r *GormTransactionRepository) ListTransactionsByUser(ctx context.Context, userID string, limit int, after *portsrepo.TransactionCursor) ([]domain.Transaction, error) {
	q := r.byUser(ctx, userID)
	if after != nil {
		date := after.Date.UTC()
		q = q.Where("(date < ? OR (date = ? AND transaction_id < ?))", date, date, after.TransactionID)
	}
	var ms []models.Transaction
	if err := q.Limit(limit).Find(&ms).Error; err != nil {
		return nil, translateError(err, "failed to list transactions for user "+userID)
	}
	return mapping.ToDomainTransactionSlice(ms), nil
}
