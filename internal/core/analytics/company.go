package analytics

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/SscSPs/finance_dashboard/internal/apperrors"
	"github.com/SscSPs/finance_dashboard/internal/core/domain"
)

// Base scores that the mean "variance income %" is added to.
const (
	employeeSatisfactionBase  = 75
	customerSatisfactionBase  = 80
	departmentPerformanceBase = 70
)

// Departments reported on the company dashboard, in display order.
var companyDepartments = [...]string{"Sales", "Operations", "Marketing", "Finance"}

// AggregateCompany computes the company dashboard metrics from monthly rows.
// Rows are ordered by calendar month before month-over-month growth is taken.
// It fails with apperrors.ErrDataUnavailable when rows is empty or a month name
// cannot be parsed.
func AggregateCompany(rows []domain.CompanyRecord) (domain.CompanyMetrics, error) {
	if len(rows) == 0 {
		return domain.CompanyMetrics{}, fmt.Errorf("company dataset has no rows: %w", apperrors.ErrDataUnavailable)
	}

	type monthRow struct {
		month time.Month
		rec   domain.CompanyRecord
	}
	ordered := make([]monthRow, 0, len(rows))
	var revenue, expenses, cost, variance float64
	for _, r := range rows {
		m, err := parseMonthName(r.Month)
		if err != nil {
			return domain.CompanyMetrics{}, fmt.Errorf("company dataset: %w: %w", apperrors.ErrDataUnavailable, err)
		}
		ordered = append(ordered, monthRow{month: m, rec: r})
		revenue += r.TotalRevenue
		expenses += r.Expenses
		cost += r.TotalCost
		variance += r.VarianceIncomePercent
	}
	slices.SortStableFunc(ordered, func(a, b monthRow) int {
		return int(a.month) - int(b.month)
	})

	var growth float64
	if n := len(ordered); n >= 2 {
		latest := ordered[n-1].rec.TotalRevenue
		prior := ordered[n-2].rec.TotalRevenue
		growth = percentOf(latest-prior, prior)
	}

	netProfit := revenue - (expenses + cost)
	meanVariance := mean(variance, len(rows))
	performance := roundRatio(clamp(0, 100, departmentPerformanceBase+meanVariance))

	departments := make([]domain.DepartmentPerformance, 0, len(companyDepartments))
	for _, name := range companyDepartments {
		departments = append(departments, domain.DepartmentPerformance{
			Name:         name,
			Performance:  performance,
			Efficiency:   performance,
			Productivity: performance,
		})
	}

	return domain.CompanyMetrics{
		TotalRevenue:         roundMoney(revenue),
		OperatingExpenses:    roundMoney(expenses),
		TotalCost:            roundMoney(cost),
		TotalExpenses:        roundMoney(expenses + cost),
		NetProfit:            roundMoney(netProfit),
		ProfitMargin:         roundRatio(percentOf(netProfit, revenue)),
		Departments:          departments,
		ResourceUtilization:  roundRatio(percentOf(revenue, cost+expenses)),
		EmployeeSatisfaction: roundRatio(clamp(0, 100, employeeSatisfactionBase+meanVariance)),
		CustomerSatisfaction: roundRatio(clamp(0, 100, customerSatisfactionBase+meanVariance)),
		RevenueGrowth:        roundRatio(growth),
	}, nil
}

// DefaultCompanyMetrics is the all-zero object shown when the dataset is unavailable.
func DefaultCompanyMetrics() domain.CompanyMetrics {
	return domain.CompanyMetrics{Departments: []domain.DepartmentPerformance{}}
}

// parseMonthName accepts full English month names, case-insensitively.
func parseMonthName(s string) (time.Month, error) {
	s = strings.TrimSpace(s)
	for m := time.January; m <= time.December; m++ {
		if strings.EqualFold(m.String(), s) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unrecognised month %q", s)
}
