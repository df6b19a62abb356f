package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind indicates whether money came in or went out.
type TransactionKind string

const (
	Income  TransactionKind = "income"
	Expense TransactionKind = "expense"
)

// IsValid reports whether k is income or expense.
func (k TransactionKind) IsValid() bool {
	return k == Income || k == Expense
}

// Amounts are stored as NUMERIC(18, 2).
const amountPlaces = 2

var maxAmount = decimal.New(1, 16)

// Transaction is a single user-entered income or expense record.
// Transactions are never updated or deleted.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID)
	UserID        string          `json:"userID"`        // FK -> users.user_id
	Amount        decimal.Decimal `json:"amount"`        // Always positive
	Category      string          `json:"category"`
	Description   string          `json:"description"` // Nullable
	Date          time.Time       `json:"date"`
	Kind          TransactionKind `json:"kind"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// Validate checks the invariants a transaction must satisfy before it is persisted.
func (t Transaction) Validate() error {
	if t.UserID == "" {
		return fmt.Errorf("user ID is required")
	}
	if !t.Amount.IsPositive() {
		return fmt.Errorf("amount must be greater than 0")
	}
	if !t.Amount.Equal(t.Amount.Truncate(amountPlaces)) {
		return fmt.Errorf("amount must have at most %d decimal places", amountPlaces)
	}
	if t.Amount.GreaterThanOrEqual(maxAmount) {
		return fmt.Errorf("amount must be less than %s", maxAmount.String())
	}
	if !t.Kind.IsValid() {
		return fmt.Errorf("transaction kind must be %q or %q, got %q", Income, Expense, t.Kind)
	}
	if t.Category == "" {
		return fmt.Errorf("category is required")
	}
	return nil
}
