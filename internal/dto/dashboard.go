package dto

import (
	"github.com/SscSPs/finance_dashboard/internal/core/domain"
)

// SummaryResponse is the transaction summary block of the dashboard.
// Company dashboards carry no category or trend breakdown.
type SummaryResponse struct {
	TotalIncome      float64                  `json:"totalIncome"`
	TotalExpenses    float64                  `json:"totalExpenses"`
	RemainingBalance float64                  `json:"remainingBalance"`
	MonthlyIncome    float64                  `json:"monthlyIncome"`
	MonthlyExpenses  float64                  `json:"monthlyExpenses"`
	CategoryExpenses domain.CategoryBreakdown `json:"categoryExpenses,omitempty"`
	ExpenseTrends    []domain.MonthlyAmount   `json:"expenseTrends,omitempty"`
}

// DashboardResponse is the body of GET /dashboard. Exactly one metrics object is set.
type DashboardResponse struct {
	AccountType         string                      `json:"accountType"`
	Language            string                      `json:"language"`
	Summary             SummaryResponse             `json:"summary"`
	Transactions        []TransactionResponse       `json:"transactions"`
	AgriculturalMetrics *domain.AgriculturalMetrics `json:"agriculturalMetrics,omitempty"`
	CompanyMetrics      *domain.CompanyMetrics      `json:"companyMetrics,omitempty"`
	IndividualMetrics   *domain.IndividualMetrics   `json:"individualMetrics,omitempty"`
	Recommendations     []domain.Recommendation     `json:"recommendations"`
	// Notices are already translated into Language.
	Notices []string `json:"notices"`
}

// ToDashboardResponse renders d, resolving notice keys with translate.
func ToDashboardResponse(d *domain.Dashboard, language string, translate func(key string) string) DashboardResponse {
	notices := make([]string, 0, len(d.Notices))
	for _, key := range d.Notices {
		notices = append(notices, translate(key))
	}
	recs := d.Recommendations
	if recs == nil {
		recs = []domain.Recommendation{}
	}
	return DashboardResponse{
		AccountType: string(d.AccountType),
		Language:    language,
		Summary: SummaryResponse{
			TotalIncome:      d.Summary.TotalIncome,
			TotalExpenses:    d.Summary.TotalExpenses,
			RemainingBalance: d.Summary.RemainingBalance,
			MonthlyIncome:    d.Summary.MonthlyIncome,
			MonthlyExpenses:  d.Summary.MonthlyExpenses,
			CategoryExpenses: d.Summary.CategoryExpenses,
			ExpenseTrends:    d.Summary.ExpenseTrends,
		},
		Transactions:        ToTransactionResponses(d.Transactions),
		AgriculturalMetrics: d.Agricultural,
		CompanyMetrics:      d.Company,
		IndividualMetrics:   d.Individual,
		Recommendations:     recs,
		Notices:             notices,
	}
}
