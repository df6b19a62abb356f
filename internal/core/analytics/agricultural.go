package analytics

import (
	"fmt"

	"github.com/SscSPs/finance_dashboard/internal/apperrors"
	"github.com/SscSPs/finance_dashboard/internal/core/domain"
)

// Optimal application rates per acre used as the 100% reference.
const (
	optimalFertilizerPerAcre = 0.1  // tons
	optimalPesticidePerAcre  = 0.05 // kg
	optimalYieldPerAcre      = 0.5  // tons
)

type cropStats struct {
	name  string
	sum   float64
	max   float64
	count int
}

// AggregateAgricultural computes the farmer dashboard metrics from field entries.
// It fails with apperrors.ErrDataUnavailable when rows is empty.
func AggregateAgricultural(rows []domain.AgriculturalRecord) (domain.AgriculturalMetrics, error) {
	if len(rows) == 0 {
		return domain.AgriculturalMetrics{}, fmt.Errorf("agricultural dataset has no rows: %w", apperrors.ErrDataUnavailable)
	}

	var area, yield, water, fertilizer, pesticide float64
	var crops []*cropStats
	byName := make(map[string]*cropStats)

	for _, r := range rows {
		area += r.FarmArea
		yield += r.Yield
		water += r.WaterUsage
		fertilizer += r.Fertilizer
		pesticide += r.Pesticide

		cs, ok := byName[r.CropType]
		if !ok {
			cs = &cropStats{name: r.CropType, max: r.Yield}
			byName[r.CropType] = cs
			crops = append(crops, cs)
		}
		cs.sum += r.Yield
		cs.count++
		if r.Yield > cs.max {
			cs.max = r.Yield
		}
	}

	growth := make([]domain.CropGrowth, 0, len(crops))
	for _, cs := range crops {
		growth = append(growth, domain.CropGrowth{
			Name:             cs.name,
			GrowthPercentage: roundRatio(percentOf(mean(cs.sum, cs.count), cs.max)),
		})
	}

	return domain.AgriculturalMetrics{
		TotalArea:            roundRatio(area),
		TotalYield:           roundRatio(yield),
		WaterUsage:           roundRatio(water),
		CropHealth:           roundRatio(clamp(0, 100, percentOf(yield, area*optimalYieldPerAcre))),
		Crops:                growth,
		FertilizerUsage:      roundRatio(fertilizer),
		PesticideUsage:       roundRatio(pesticide),
		FertilizerPercentage: roundRatio(percentOf(fertilizer, area*optimalFertilizerPerAcre)),
		PesticidePercentage:  roundRatio(percentOf(pesticide, area*optimalPesticidePerAcre)),
		WaterEfficiency:      roundRatio(percentOf(yield, water)),
	}, nil
}

// DefaultAgriculturalMetrics is the all-zero object shown when the dataset is unavailable.
func DefaultAgriculturalMetrics() domain.AgriculturalMetrics {
	return domain.AgriculturalMetrics{Crops: []domain.CropGrowth{}}
}
