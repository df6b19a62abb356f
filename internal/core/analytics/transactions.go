package analytics

import (
	"time"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

const (
	// expenseTrendMonths is the number of calendar months, including the current one,
	// in the expense trend window.
	expenseTrendMonths = 3
	trendLabelLayout   = "January 2006"
	uncategorised      = "Other"
)

// SummarizeTransactions aggregates a user's transactions relative to now.
// txns is expected in display order (date descending); category order follows it.
func SummarizeTransactions(txns []domain.Transaction, now time.Time) domain.TransactionSummary {
	now = now.UTC()
	currentYear, currentMonth, _ := now.Date()

	var income, expenses, monthlyIncome, monthlyExpenses decimal.Decimal
	categoryTotals := make(map[string]decimal.Decimal)
	var categories []string

	trendStarts := make([]time.Time, expenseTrendMonths)
	trendTotals := make([]decimal.Decimal, expenseTrendMonths)
	for i := range trendStarts {
		trendStarts[i] = time.Date(currentYear, currentMonth-time.Month(i), 1, 0, 0, 0, 0, time.UTC)
	}

	for _, t := range txns {
		y, m, _ := t.Date.UTC().Date()
		inCurrentMonth := y == currentYear && m == currentMonth

		switch t.Kind {
		case domain.Income:
			income = income.Add(t.Amount)
			if inCurrentMonth {
				monthlyIncome = monthlyIncome.Add(t.Amount)
			}
		case domain.Expense:
			expenses = expenses.Add(t.Amount)
			if inCurrentMonth {
				monthlyExpenses = monthlyExpenses.Add(t.Amount)
			}

			category := t.Category
			if category == "" {
				category = uncategorised
			}
			if _, ok := categoryTotals[category]; !ok {
				categories = append(categories, category)
			}
			categoryTotals[category] = categoryTotals[category].Add(t.Amount)

			for i, start := range trendStarts {
				if y == start.Year() && m == start.Month() {
					trendTotals[i] = trendTotals[i].Add(t.Amount)
					break
				}
			}
		}
	}

	breakdown := make(domain.CategoryBreakdown, 0, len(categories))
	for _, c := range categories {
		breakdown = append(breakdown, domain.CategoryAmount{Category: c, Amount: toMoney(categoryTotals[c])})
	}

	trends := make([]domain.MonthlyAmount, 0, expenseTrendMonths)
	for i, start := range trendStarts {
		trends = append(trends, domain.MonthlyAmount{
			Month:  start.Format(trendLabelLayout),
			Amount: toMoney(trendTotals[i]),
		})
	}

	return domain.TransactionSummary{
		TotalIncome:      toMoney(income),
		TotalExpenses:    toMoney(expenses),
		RemainingBalance: toMoney(income.Sub(expenses)),
		MonthlyIncome:    toMoney(monthlyIncome),
		MonthlyExpenses:  toMoney(monthlyExpenses),
		CategoryExpenses: breakdown,
		ExpenseTrends:    trends,
	}
}

func toMoney(d decimal.Decimal) float64 {
	return d.Round(moneyPlaces).InexactFloat64()
}
