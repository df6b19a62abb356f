package domain

// CropGrowth is the growth percentage of one crop type.
type CropGrowth struct {
	Name             string  `json:"name"`
	GrowthPercentage float64 `json:"growthPercentage"`
}

// AgriculturalMetrics is the farmer dashboard's aggregate.
type AgriculturalMetrics struct {
	TotalArea            float64      `json:"totalArea"`
	TotalYield           float64      `json:"totalYield"`
	WaterUsage           float64      `json:"waterUsage"`
	CropHealth           float64      `json:"cropHealth"`
	Crops                []CropGrowth `json:"crops"`
	FertilizerUsage      float64      `json:"fertilizerUsage"`
	PesticideUsage       float64      `json:"pesticideUsage"`
	FertilizerPercentage float64      `json:"fertilizerPercentage"`
	PesticidePercentage  float64      `json:"pesticidePercentage"`
	WaterEfficiency      float64      `json:"waterEfficiency"`
}

// DepartmentPerformance scores a single department.
type DepartmentPerformance struct {
	Name         string  `json:"name"`
	Performance  float64 `json:"performance"`
	Efficiency   float64 `json:"efficiency"`
	Productivity float64 `json:"productivity"`
}

// CompanyMetrics is the company dashboard's aggregate.
type CompanyMetrics struct {
	TotalRevenue         float64                 `json:"totalRevenue"`
	OperatingExpenses    float64                 `json:"operatingExpenses"`
	TotalCost            float64                 `json:"totalCost"`
	TotalExpenses        float64                 `json:"totalExpenses"` // operating expenses + cost
	NetProfit            float64                 `json:"netProfit"`
	ProfitMargin         float64                 `json:"profitMargin"`
	Departments          []DepartmentPerformance `json:"departments"`
	ResourceUtilization  float64                 `json:"resourceUtilization"`
	EmployeeSatisfaction float64                 `json:"employeeSatisfaction"`
	CustomerSatisfaction float64                 `json:"customerSatisfaction"`
	RevenueGrowth        float64                 `json:"revenueGrowth"`
}

// CategoryAmount is one entry of an ordered per-category breakdown.
type CategoryAmount struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// CategoryBreakdown keeps categories in a meaningful order, unlike a map.
type CategoryBreakdown []CategoryAmount

// Amount returns the amount recorded for category, or 0 if it is absent.
func (b CategoryBreakdown) Amount(category string) float64 {
	for _, c := range b {
		if c.Category == category {
			return c.Amount
		}
	}
	return 0
}

// SpendingPoint is one month of the individual spending pattern.
type SpendingPoint struct {
	Month    string  `json:"month"`
	Expenses float64 `json:"expenses"`
	Savings  float64 `json:"savings"`
}

// IndividualMetrics is the individual dashboard's aggregate.
type IndividualMetrics struct {
	MonthlyIncome    float64           `json:"monthlyIncome"`
	MonthlyExpenses  float64           `json:"monthlyExpenses"`
	MonthlySavings   float64           `json:"monthlySavings"`
	SavingsGoal      float64           `json:"savingsGoal"`
	SavingsRate      float64           `json:"savingsRate"`
	SavingsGrowth    float64           `json:"savingsGrowth"`
	ExpenseBreakdown CategoryBreakdown `json:"expenseBreakdown"`
	SpendingPattern  []SpendingPoint   `json:"spendingPattern"`
	ImprovementTips  string            `json:"improvementTips"`
	SuggestedChanges string            `json:"suggestedChanges"`
}
