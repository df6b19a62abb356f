package analytics

import (
	"fmt"
	"slices"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
)

// Recommendation type tags.
const (
	TypeWater        = "water"
	TypeFertilizer   = "fertilizer"
	TypePesticide    = "pesticide"
	TypeCropHealth   = "crop_health"
	TypeCropSpecific = "crop_specific"

	TypeFinancial  = "financial"
	TypeOperations = "operations"
	TypeHR         = "hr"
	TypeCustomer   = "customer"
	TypeDepartment = "department"
	TypeGrowth     = "growth"

	TypeSavings   = "savings"
	TypeGoal      = "goal"
	TypeHousing   = "housing"
	TypeLifestyle = "lifestyle"
	TypeCustom    = "custom"
)

// Thresholds of the farming rule table.
const (
	waterEfficiencyLow      = 50
	waterEfficiencyFair     = 70
	fertilizerExcessive     = 120
	fertilizerInsufficient  = 80
	pesticideExcessive      = 120
	cropHealthPoor          = 60
	cropHealthFair          = 80
	cropGrowthUnderperforms = 60
)

// Thresholds of the company rule table.
const (
	profitMarginLow         = 10
	resourceUtilizationLow  = 70
	employeeSatisfactionLow = 75
	customerSatisfactionLow = 80
	departmentBelowTarget   = 70
	revenueGrowthSlow       = 5
)

// Thresholds of the individual rule table.
const (
	savingsRateLow     = 20
	rentIncomeShare    = 0.3
	leisureIncomeShare = 0.1
)

func rec(typ string, p domain.Priority, message, action string) domain.Recommendation {
	return domain.Recommendation{Type: typ, Priority: p, Message: message, Action: action}
}

// RecommendFarming applies the farming rule table to m.
func RecommendFarming(m domain.AgriculturalMetrics) []domain.Recommendation {
	recs := []domain.Recommendation{}

	if m.WaterEfficiency < waterEfficiencyLow {
		recs = append(recs, rec(TypeWater, domain.PriorityHigh,
			"Water efficiency is low. Consider implementing drip irrigation systems to reduce water wastage and improve crop yield.",
			"Upgrade irrigation system to drip irrigation"))
	} else if m.WaterEfficiency < waterEfficiencyFair {
		recs = append(recs, rec(TypeWater, domain.PriorityMedium,
			"Water efficiency can be improved. Monitor soil moisture levels and adjust irrigation schedules accordingly.",
			"Optimize irrigation schedule"))
	}

	if m.FertilizerPercentage > fertilizerExcessive {
		recs = append(recs, rec(TypeFertilizer, domain.PriorityHigh,
			"Fertilizer usage is excessive. This can harm soil health and increase costs. Consider soil testing and balanced fertilization.",
			"Conduct soil test and adjust fertilizer application"))
	} else if m.FertilizerPercentage < fertilizerInsufficient {
		recs = append(recs, rec(TypeFertilizer, domain.PriorityMedium,
			"Fertilizer usage is below optimal. Consider increasing fertilizer application to improve crop yield.",
			"Increase fertilizer application"))
	}

	if m.PesticidePercentage > pesticideExcessive {
		recs = append(recs, rec(TypePesticide, domain.PriorityHigh,
			"Pesticide usage is high. Consider integrated pest management (IPM) practices to reduce chemical dependency.",
			"Implement IPM practices"))
	}

	if m.CropHealth < cropHealthPoor {
		recs = append(recs, rec(TypeCropHealth, domain.PriorityHigh,
			"Overall crop health is poor. Review soil quality, nutrient levels, and pest management practices.",
			"Conduct comprehensive crop health assessment"))
	} else if m.CropHealth < cropHealthFair {
		recs = append(recs, rec(TypeCropHealth, domain.PriorityMedium,
			"Crop health needs improvement. Consider crop rotation and soil enrichment practices.",
			"Implement crop rotation"))
	}

	for _, crop := range m.Crops {
		if crop.GrowthPercentage < cropGrowthUnderperforms {
			recs = append(recs, rec(TypeCropSpecific, domain.PriorityHigh,
				fmt.Sprintf("%s is performing poorly. Review growing conditions and management practices for this crop.", crop.Name),
				fmt.Sprintf("Review %s growing conditions", crop.Name)))
		}
	}

	return prioritize(recs)
}

// RecommendCompany applies the company rule table to m.
func RecommendCompany(m domain.CompanyMetrics) []domain.Recommendation {
	recs := []domain.Recommendation{}

	if m.ProfitMargin < profitMarginLow {
		recs = append(recs, rec(TypeFinancial, domain.PriorityHigh,
			"Low profit margin. Review pricing strategy and cost structure.",
			"Conduct pricing and cost analysis"))
	}
	if m.ResourceUtilization < resourceUtilizationLow {
		recs = append(recs, rec(TypeOperations, domain.PriorityHigh,
			"Resource utilization is below optimal. Optimize resource allocation and workflow.",
			"Implement resource optimization plan"))
	}
	if m.EmployeeSatisfaction < employeeSatisfactionLow {
		recs = append(recs, rec(TypeHR, domain.PriorityHigh,
			"Employee satisfaction needs improvement. Review HR policies and work environment.",
			"Conduct employee satisfaction survey and implement improvements"))
	}
	if m.CustomerSatisfaction < customerSatisfactionLow {
		recs = append(recs, rec(TypeCustomer, domain.PriorityHigh,
			"Customer satisfaction could be improved. Review customer service and product quality.",
			"Implement customer feedback system"))
	}
	for _, dept := range m.Departments {
		if dept.Performance < departmentBelowTarget {
			recs = append(recs, rec(TypeDepartment, domain.PriorityMedium,
				fmt.Sprintf("%s department performance is below target. Review operations and provide necessary support.", dept.Name),
				fmt.Sprintf("Review %s department operations", dept.Name)))
		}
	}
	if m.RevenueGrowth < revenueGrowthSlow {
		recs = append(recs, rec(TypeGrowth, domain.PriorityMedium,
			"Revenue growth is slow. Consider new market opportunities and sales strategies.",
			"Develop revenue growth strategy"))
	}

	return prioritize(recs)
}

// RecommendIndividual applies the personal finance rule table to m.
func RecommendIndividual(m domain.IndividualMetrics) []domain.Recommendation {
	recs := []domain.Recommendation{}

	if m.SavingsRate < savingsRateLow {
		recs = append(recs, rec(TypeSavings, domain.PriorityHigh,
			"Your savings rate is below recommended levels. Consider reducing non-essential expenses.",
			"Review and optimize monthly expenses"))
	}
	if m.MonthlySavings < m.SavingsGoal {
		recs = append(recs, rec(TypeGoal, domain.PriorityHigh,
			"You are currently below your savings goal.",
			"Identify additional saving opportunities"))
	}
	if m.ExpenseBreakdown.Amount(CategoryRent) > m.MonthlyIncome*rentIncomeShare {
		recs = append(recs, rec(TypeHousing, domain.PriorityMedium,
			"Your rent expenses exceed 30% of your income.",
			"Consider housing alternatives or additional income sources"))
	}
	if m.ExpenseBreakdown.Amount(CategoryEntertainment) > m.MonthlyIncome*leisureIncomeShare {
		recs = append(recs, rec(TypeLifestyle, domain.PriorityMedium,
			"Entertainment expenses are higher than recommended.",
			"Review and optimize entertainment spending"))
	}
	if m.ImprovementTips != "" {
		recs = append(recs, rec(TypeCustom, domain.PriorityMedium, m.ImprovementTips, m.SuggestedChanges))
	}

	return prioritize(recs)
}

// prioritize moves high priority entries ahead of medium ones without
// reordering entries of equal priority.
func prioritize(recs []domain.Recommendation) []domain.Recommendation {
	slices.SortStableFunc(recs, func(a, b domain.Recommendation) int {
		return priorityRank(a.Priority) - priorityRank(b.Priority)
	})
	return recs
}

func priorityRank(p domain.Priority) int {
	if p == domain.PriorityHigh {
		return 0
	}
	return 1
}
