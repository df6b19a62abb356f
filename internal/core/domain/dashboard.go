package domain

// MonthlyAmount is a labelled monthly total, e.g. {"March 2026", 1200}.
type MonthlyAmount struct {
	Month  string  `json:"month"`
	Amount float64 `json:"amount"`
}

// TransactionSummary aggregates a user's own transactions.
type TransactionSummary struct {
	TotalIncome      float64
	TotalExpenses    float64
	RemainingBalance float64
	MonthlyIncome    float64
	MonthlyExpenses  float64
	CategoryExpenses CategoryBreakdown
	ExpenseTrends    []MonthlyAmount
}

// Dashboard is everything a dashboard view renders. Exactly one of the metrics
// pointers is set, matching AccountType.
type Dashboard struct {
	AccountType     AccountType
	Summary         TransactionSummary
	Transactions    []Transaction
	Agricultural    *AgriculturalMetrics
	Company         *CompanyMetrics
	Individual      *IndividualMetrics
	Recommendations []Recommendation
	// Notices are translation keys describing degraded data sources.
	Notices []string
}

// NoticeTransactionsUnavailable is the notice key for a failed transaction read.
const NoticeTransactionsUnavailable = "error_loading_transactions"

// DataUnavailableNotice is the notice key for a reference dataset that could not be used.
func DataUnavailableNotice(dataset string) string {
	return "error_loading_" + dataset + "_data"
}
