package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the persisted form of a user's income or expense entry.
type Transaction struct {
	TransactionID string          `db:"transaction_id" gorm:"column:transaction_id;primaryKey"`
	UserID        string          `db:"user_id" gorm:"column:user_id;not null;index:idx_transactions_user_date,priority:1"`
	Amount        decimal.Decimal `db:"amount" gorm:"column:amount;type:numeric;not null"`
	Category      string          `db:"category" gorm:"column:category;size:50;not null"`
	Description   sql.NullString  `db:"description" gorm:"column:description;size:200"`
	Date          time.Time       `db:"date" gorm:"column:date;not null;index:idx_transactions_user_date,priority:2"`
	Kind          string          `db:"type" gorm:"column:type;not null"`
	CreatedAt     time.Time       `db:"created_at" gorm:"column:created_at;not null"`
}

func (Transaction) TableName() string { return "transactions" }
