package analytics_test

import (
	"testing"

	"github.com/SscSPs/finance_dashboard/internal/core/analytics"
	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func types(recs []domain.Recommendation) []string {
	out := make([]string, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.Type)
	}
	return out
}

func assertHighFirst(t *testing.T, recs []domain.Recommendation) {
	t.Helper()
	seenMedium := false
	for _, r := range recs {
		if r.Priority == domain.PriorityMedium {
			seenMedium = true
			continue
		}
		assert.False(t, seenMedium, "high priority %q listed after a medium one", r.Type)
	}
}

func TestRecommendFarming(t *testing.T) {
	tests := []struct {
		name    string
		metrics domain.AgriculturalMetrics
		want    []string
	}{
		{
			name: "healthy farm",
			metrics: domain.AgriculturalMetrics{
				WaterEfficiency: 75, FertilizerPercentage: 100, PesticidePercentage: 100, CropHealth: 90,
				Crops: []domain.CropGrowth{{Name: "Wheat", GrowthPercentage: 90}},
			},
			want: []string{},
		},
		{
			name: "moderate issues only",
			metrics: domain.AgriculturalMetrics{
				WaterEfficiency: 60, FertilizerPercentage: 50, PesticidePercentage: 100, CropHealth: 70,
			},
			want: []string{analytics.TypeWater, analytics.TypeFertilizer, analytics.TypeCropHealth},
		},
		{
			name: "high issues lead",
			metrics: domain.AgriculturalMetrics{
				WaterEfficiency: 60, FertilizerPercentage: 130, PesticidePercentage: 130, CropHealth: 50,
				Crops: []domain.CropGrowth{{Name: "Rice", GrowthPercentage: 40}},
			},
			want: []string{
				analytics.TypeFertilizer, analytics.TypePesticide, analytics.TypeCropHealth,
				analytics.TypeCropSpecific, analytics.TypeWater,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs := analytics.RecommendFarming(tt.metrics)
			require.NotNil(t, recs)
			assert.Equal(t, tt.want, types(recs))
			assertHighFirst(t, recs)
		})
	}
}

func TestRecommendFarming_CropSpecificNamesTheCrop(t *testing.T) {
	recs := analytics.RecommendFarming(domain.AgriculturalMetrics{
		WaterEfficiency: 90, FertilizerPercentage: 100, CropHealth: 90,
		Crops: []domain.CropGrowth{{Name: "Cotton", GrowthPercentage: 10}},
	})
	require.Len(t, recs, 1)
	assert.Equal(t, "Cotton is performing poorly. Review growing conditions and management practices for this crop.", recs[0].Message)
	assert.Equal(t, "Review Cotton growing conditions", recs[0].Action)
}

func TestRecommendCompany_AllRulesFire(t *testing.T) {
	depts := []domain.DepartmentPerformance{
		{Name: "Sales", Performance: 65}, {Name: "Operations", Performance: 65},
		{Name: "Marketing", Performance: 65}, {Name: "Finance", Performance: 65},
	}
	recs := analytics.RecommendCompany(domain.CompanyMetrics{
		ProfitMargin: 5, ResourceUtilization: 60, EmployeeSatisfaction: 70,
		CustomerSatisfaction: 70, Departments: depts, RevenueGrowth: 0,
	})

	assert.Equal(t, []string{
		analytics.TypeFinancial, analytics.TypeOperations, analytics.TypeHR, analytics.TypeCustomer,
		analytics.TypeDepartment, analytics.TypeDepartment, analytics.TypeDepartment, analytics.TypeDepartment,
		analytics.TypeGrowth,
	}, types(recs))
	assert.Equal(t, "Sales department performance is below target. Review operations and provide necessary support.", recs[4].Message)
	assert.Equal(t, "Review Finance department operations", recs[7].Action)
	assertHighFirst(t, recs)
}

func TestRecommendCompany_Healthy(t *testing.T) {
	recs := analytics.RecommendCompany(domain.CompanyMetrics{
		ProfitMargin: 20, ResourceUtilization: 90, EmployeeSatisfaction: 80,
		CustomerSatisfaction: 85, RevenueGrowth: 10,
		Departments: []domain.DepartmentPerformance{{Name: "Sales", Performance: 80}},
	})
	assert.NotNil(t, recs)
	assert.Empty(t, recs)
}

func TestRecommendIndividual(t *testing.T) {
	m, err := analytics.AggregateIndividual(individualRows())
	require.NoError(t, err)

	recs := analytics.RecommendIndividual(m)
	assert.Equal(t, []string{analytics.TypeHousing, analytics.TypeLifestyle, analytics.TypeCustom}, types(recs))
	assert.Equal(t, "Cook at home more often", recs[2].Message)
	assert.Equal(t, "Cut dining out by 20%", recs[2].Action)
}

func TestRecommendIndividual_RentAboveThirtyPercent(t *testing.T) {
	recs := analytics.RecommendIndividual(domain.IndividualMetrics{
		MonthlyIncome:    50000,
		MonthlySavings:   15000,
		SavingsRate:      30,
		ExpenseBreakdown: domain.CategoryBreakdown{{Category: analytics.CategoryRent, Amount: 20000}},
	})
	require.Len(t, recs, 1)
	assert.Equal(t, analytics.TypeHousing, recs[0].Type)
	assert.Equal(t, "Your rent expenses exceed 30% of your income.", recs[0].Message)
}

func TestRecommendIndividual_RentAtThresholdDoesNotFire(t *testing.T) {
	recs := analytics.RecommendIndividual(domain.IndividualMetrics{
		MonthlyIncome:    50000,
		SavingsRate:      30,
		ExpenseBreakdown: domain.CategoryBreakdown{{Category: analytics.CategoryRent, Amount: 15000}},
	})
	assert.NotContains(t, types(recs), analytics.TypeHousing)
}

func TestRecommendIndividual_SavingsAndGoal(t *testing.T) {
	recs := analytics.RecommendIndividual(domain.IndividualMetrics{
		MonthlyIncome:    1000,
		MonthlySavings:   100,
		SavingsGoal:      300,
		SavingsRate:      10,
		ExpenseBreakdown: domain.CategoryBreakdown{{Category: analytics.CategoryEntertainment, Amount: 200}},
	})
	assert.Equal(t, []string{analytics.TypeSavings, analytics.TypeGoal, analytics.TypeLifestyle}, types(recs))
	assertHighFirst(t, recs)
}

func TestRecommend_DefaultsNeverFail(t *testing.T) {
	assert.NotPanics(t, func() {
		analytics.RecommendFarming(analytics.DefaultAgriculturalMetrics())
		analytics.RecommendCompany(analytics.DefaultCompanyMetrics())
		analytics.RecommendIndividual(analytics.DefaultIndividualMetrics(domain.TransactionSummary{}))
	})
}
