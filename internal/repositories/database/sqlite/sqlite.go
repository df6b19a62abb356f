// Package sqlite stores users and transactions in a single SQLite file through gorm.
// It is the lightweight alternative to the Postgres store for local and demo setups.
package sqlite

import (
	"errors"
	"fmt"

	"github.com/SscSPs/finance_dashboard/internal/apperrors"
	portsrepo "github.com/SscSPs/finance_dashboard/internal/core/ports/repositories"
	"github.com/SscSPs/finance_dashboard/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const createEmailLowerIndex = `CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email_lower ON users (lower(email))`

// Open opens (or creates) the database at path and migrates the schema.
// Use ":memory:" for a throwaway database.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database %s: %w", path, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sqlite handle: %w", err)
	}
	// SQLite allows one writer at a time; a single connection also keeps ":memory:" databases alive.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.User{}, &models.Transaction{}); err != nil {
		return nil, fmt.Errorf("failed to migrate sqlite schema: %w", err)
	}
	// Same rule as the users_email_key index in Postgres.
	if err := db.Exec(createEmailLowerIndex).Error; err != nil {
		return nil, fmt.Errorf("failed to create sqlite email index: %w", err)
	}
	return db, nil
}

// Close releases the underlying connection.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// NewRepositoryProvider wires the SQLite user and transaction stores.
func NewRepositoryProvider(db *gorm.DB, reference portsrepo.ReferenceDataReader) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:        newGormUserRepository(db),
		TransactionRepo: newGormTransactionRepository(db),
		ReferenceData:   reference,
	}
}

func translateError(err error, msg string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperrors.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %s", apperrors.ErrDuplicate, msg)
	}
	return fmt.Errorf("%w: %s: %w", apperrors.ErrStorage, msg, err)
}
