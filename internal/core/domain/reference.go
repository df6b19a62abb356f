package domain

// AgriculturalRecord is one field entry of the agricultural reference dataset.
type AgriculturalRecord struct {
	CropType   string
	FarmArea   float64 // acres
	Yield      float64 // tons
	WaterUsage float64 // cubic meters
	Fertilizer float64 // tons
	Pesticide  float64 // kg
}

// CompanyRecord is one monthly row of the company reference dataset.
type CompanyRecord struct {
	Month                 string // full English month name, e.g. "March"
	TotalRevenue          float64
	Expenses              float64
	TotalCost             float64
	VarianceIncomePercent float64
}

// IndividualRecord is one monthly row of the personal finance reference dataset.
type IndividualRecord struct {
	Month            string
	Salary           float64
	Rent             float64
	ElectricityBill  float64
	WaterBill        float64
	Grocery          float64
	Transportation   float64
	Entertainment    float64
	Healthcare       float64
	Miscellaneous    float64
	TotalExpenses    float64
	Savings          float64
	SavingsGoal      float64
	ImprovementTips  string
	SuggestedChanges string
}
