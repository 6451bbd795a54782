package service

import (
	"math"

	"commute-agent/domain"
)

// Unbounded stands in for an infinite ratio, which JSON cannot carry.
const Unbounded = math.MaxFloat64

// AffordabilityEvaluator relates the car to the owner's income and assets.
type AffordabilityEvaluator struct{}

func NewAffordabilityEvaluator() *AffordabilityEvaluator {
	return &AffordabilityEvaluator{}
}

// Evaluate takes salary, assets and car price in 만원 and the yearly car cost
// in won. A zero salary or zero assets yields an Unbounded ratio flagged as a
// burden. The burden flags use the exact fraction; the reported ratios are
// rounded to one decimal.
func (e *AffordabilityEvaluator) Evaluate(salary, assets, carPrice float64, yearlyCarCostWon int64) domain.Affordability {
	a := domain.Affordability{
		SalaryRatio:    Unbounded,
		AssetRatio:     Unbounded,
		IsSalaryBurden: true,
		IsAssetBurden:  true,
	}
	if salary > 0 {
		fraction := float64(yearlyCarCostWon) / toWon(salary)
		a.SalaryRatio = roundPercent(fraction * 100)
		a.IsSalaryBurden = fraction > SalaryRatioLimit/100
	}
	if assets > 0 {
		fraction := carPrice / assets
		a.AssetRatio = roundPercent(fraction * 100)
		a.IsAssetBurden = fraction > AssetRatioLimit/100
	}
	return a
}
