// Package analytics turns transaction and reference-dataset rows into dashboard
// metrics and threshold-based recommendations. Every function here is pure: no I/O,
// no clock, no package-level mutable state.
package analytics

import (
	"math"

	"github.com/shopspring/decimal"
)

const (
	ratioPlaces = 1
	moneyPlaces = 2
)

// roundTo rounds half-to-even on the decimal representation of v.
// Non-finite values collapse to 0 so that decimal never sees them.
func roundTo(v float64, places int32) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return decimal.NewFromFloat(v).RoundBank(places).InexactFloat64()
}

func roundRatio(v float64) float64 { return roundTo(v, ratioPlaces) }

func roundMoney(v float64) float64 { return roundTo(v, moneyPlaces) }

// percentOf returns numerator/denominator*100, or 0 when the denominator is not positive.
// A zero denominator is a normal data condition (e.g. no prior month), not an error.
func percentOf(numerator, denominator float64) float64 {
	if denominator <= 0 {
		return 0
	}
	return numerator / denominator * 100
}

func clamp(lo, hi, v float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func mean(sum float64, n int) float64 {
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
