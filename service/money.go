package service

import (
	"math"

	"github.com/shopspring/decimal"
)

// roundWon rounds a won amount half away from zero. Non-finite values
// collapse to 0 so they never reach a JSON encoder.
func roundWon(v float64) int64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return decimal.NewFromFloat(v).Round(0).IntPart()
}

// roundPercent rounds to one decimal place.
func roundPercent(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	f, _ := decimal.NewFromFloat(v).Round(1).Float64()
	return f
}

func toWon(manwon float64) float64 {
	return manwon * WonPerManwon
}
