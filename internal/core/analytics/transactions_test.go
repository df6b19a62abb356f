package analytics_test

import (
	"testing"
	"time"

	"github.com/SscSPs/finance_dashboard/internal/core/analytics"
	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func txn(kind domain.TransactionKind, amount string, category string, date time.Time) domain.Transaction {
	return domain.Transaction{
		UserID:   "user-1",
		Amount:   decimal.RequireFromString(amount),
		Category: category,
		Date:     date,
		Kind:     kind,
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestSummarizeTransactions(t *testing.T) {
	now := day(2026, time.March, 15)
	txns := []domain.Transaction{
		txn(domain.Income, "1000", "Salary", day(2026, time.March, 10)),
		txn(domain.Expense, "200.10", "Seeds", day(2026, time.March, 5)),
		txn(domain.Expense, "100", "", day(2026, time.February, 20)),
		txn(domain.Expense, "49.90", "Seeds", day(2026, time.January, 2)),
		txn(domain.Expense, "70", "Fuel", day(2025, time.December, 30)),
		txn(domain.Income, "500", "Sale", day(2025, time.December, 1)),
	}

	s := analytics.SummarizeTransactions(txns, now)

	assert.Equal(t, 1500.0, s.TotalIncome)
	assert.Equal(t, 420.0, s.TotalExpenses)
	assert.Equal(t, 1080.0, s.RemainingBalance)
	assert.Equal(t, 1000.0, s.MonthlyIncome)
	assert.Equal(t, 200.1, s.MonthlyExpenses)

	assert.Equal(t, domain.CategoryBreakdown{
		{Category: "Seeds", Amount: 250},
		{Category: "Other", Amount: 100},
		{Category: "Fuel", Amount: 70},
	}, s.CategoryExpenses)

	assert.Equal(t, []domain.MonthlyAmount{
		{Month: "March 2026", Amount: 200.1},
		{Month: "February 2026", Amount: 100},
		{Month: "January 2026", Amount: 49.9},
	}, s.ExpenseTrends)
}

func TestSummarizeTransactions_TrendWindowCrossesYear(t *testing.T) {
	s := analytics.SummarizeTransactions([]domain.Transaction{
		txn(domain.Expense, "30", "Fuel", day(2025, time.November, 3)),
		txn(domain.Expense, "40", "Fuel", day(2025, time.October, 3)),
	}, day(2026, time.January, 10))

	require.Len(t, s.ExpenseTrends, 3)
	assert.Equal(t, "January 2026", s.ExpenseTrends[0].Month)
	assert.Equal(t, "December 2025", s.ExpenseTrends[1].Month)
	assert.Equal(t, "November 2025", s.ExpenseTrends[2].Month)
	assert.Equal(t, 30.0, s.ExpenseTrends[2].Amount)
	assert.Equal(t, 70.0, s.TotalExpenses)
	assert.Equal(t, 0.0, s.MonthlyExpenses)
}

func TestSummarizeTransactions_Empty(t *testing.T) {
	s := analytics.SummarizeTransactions(nil, day(2026, time.June, 1))
	assert.Zero(t, s.TotalIncome)
	assert.Zero(t, s.RemainingBalance)
	assert.Empty(t, s.CategoryExpenses)
	require.Len(t, s.ExpenseTrends, 3)
	for _, p := range s.ExpenseTrends {
		assert.Zero(t, p.Amount)
	}
}
