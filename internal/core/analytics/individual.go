package analytics

import (
	"fmt"
	"strings"

	"github.com/SscSPs/finance_dashboard/internal/apperrors"
	"github.com/SscSPs/finance_dashboard/internal/core/domain"
)

// Expense categories of the individual breakdown, in display order.
const (
	CategoryRent           = "Rent"
	CategoryUtilities      = "Utilities"
	CategoryGrocery        = "Grocery"
	CategoryTransportation = "Transportation"
	CategoryEntertainment  = "Entertainment"
	CategoryHealthcare     = "Healthcare"
	CategoryMiscellaneous  = "Miscellaneous"
)

// AggregateIndividual computes the individual dashboard metrics from monthly rows,
// taken in the order they were supplied. The last row is the latest month.
// It fails with apperrors.ErrDataUnavailable when rows is empty.
func AggregateIndividual(rows []domain.IndividualRecord) (domain.IndividualMetrics, error) {
	if len(rows) == 0 {
		return domain.IndividualMetrics{}, fmt.Errorf("individual dataset has no rows: %w", apperrors.ErrDataUnavailable)
	}

	var sum domain.IndividualRecord
	pattern := make([]domain.SpendingPoint, 0, len(rows))
	seen := make(map[string]bool, len(rows))
	for _, r := range rows {
		sum.Salary += r.Salary
		sum.TotalExpenses += r.TotalExpenses
		sum.Savings += r.Savings
		sum.Rent += r.Rent
		sum.ElectricityBill += r.ElectricityBill
		sum.WaterBill += r.WaterBill
		sum.Grocery += r.Grocery
		sum.Transportation += r.Transportation
		sum.Entertainment += r.Entertainment
		sum.Healthcare += r.Healthcare
		sum.Miscellaneous += r.Miscellaneous

		if !seen[r.Month] {
			seen[r.Month] = true
			pattern = append(pattern, domain.SpendingPoint{
				Month:    r.Month,
				Expenses: roundMoney(r.TotalExpenses),
				Savings:  roundMoney(r.Savings),
			})
		}
	}

	n := len(rows)
	latest := rows[n-1]
	avgSalary := mean(sum.Salary, n)
	avgSavings := mean(sum.Savings, n)

	var growth float64
	if n >= 2 {
		growth = percentOf(latest.Savings-rows[n-2].Savings, rows[n-2].Savings)
	}

	breakdown := domain.CategoryBreakdown{
		{Category: CategoryRent, Amount: roundMoney(mean(sum.Rent, n))},
		{Category: CategoryUtilities, Amount: roundMoney(mean(sum.ElectricityBill, n) + mean(sum.WaterBill, n))},
		{Category: CategoryGrocery, Amount: roundMoney(mean(sum.Grocery, n))},
		{Category: CategoryTransportation, Amount: roundMoney(mean(sum.Transportation, n))},
		{Category: CategoryEntertainment, Amount: roundMoney(mean(sum.Entertainment, n))},
		{Category: CategoryHealthcare, Amount: roundMoney(mean(sum.Healthcare, n))},
		{Category: CategoryMiscellaneous, Amount: roundMoney(mean(sum.Miscellaneous, n))},
	}

	return domain.IndividualMetrics{
		MonthlyIncome:    roundMoney(avgSalary),
		MonthlyExpenses:  roundMoney(mean(sum.TotalExpenses, n)),
		MonthlySavings:   roundMoney(avgSavings),
		SavingsGoal:      roundMoney(latest.SavingsGoal),
		SavingsRate:      roundRatio(percentOf(avgSavings, avgSalary)),
		SavingsGrowth:    roundRatio(growth),
		ExpenseBreakdown: breakdown,
		SpendingPattern:  pattern,
		ImprovementTips:  strings.TrimSpace(latest.ImprovementTips),
		SuggestedChanges: strings.TrimSpace(latest.SuggestedChanges),
	}, nil
}

// DefaultIndividualMetrics builds the fallback object from the user's own
// transactions when the reference dataset is unavailable. With no transactions
// it is all zero.
func DefaultIndividualMetrics(summary domain.TransactionSummary) domain.IndividualMetrics {
	var savings float64
	if summary.MonthlyIncome != 0 && summary.MonthlyExpenses != 0 {
		savings = roundMoney(summary.MonthlyIncome - summary.MonthlyExpenses)
	}
	breakdown := summary.CategoryExpenses
	if breakdown == nil {
		breakdown = domain.CategoryBreakdown{}
	}
	return domain.IndividualMetrics{
		MonthlyIncome:    summary.MonthlyIncome,
		MonthlyExpenses:  summary.MonthlyExpenses,
		MonthlySavings:   savings,
		ExpenseBreakdown: breakdown,
		SpendingPattern:  []domain.SpendingPoint{},
	}
}
