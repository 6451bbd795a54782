package service

import "math"

// Residual value fractions by vehicle age in years; index 0 is a new car.
var defaultResaleTable = []float64{
	1.00, 0.82, 0.72, 0.63, 0.55, 0.48, 0.42, 0.37,
	0.33, 0.29, 0.26, 0.23, 0.21, 0.19, 0.17, 0.16,
}

const (
	resaleTailDecay = 0.98
	resaleFloor     = 0.05
)

// ResaleCurve maps vehicle age to the share of the purchase price it retains.
// Ages past the table decay geometrically and never drop below the floor.
type ResaleCurve struct {
	table     []float64
	tailDecay float64
	floor     float64
}

func NewResaleCurve() *ResaleCurve {
	return &ResaleCurve{
		table:     defaultResaleTable,
		tailDecay: resaleTailDecay,
		floor:     resaleFloor,
	}
}

// ResidualFraction returns a value in (0,1]. Negative ages count as new.
func (c *ResaleCurve) ResidualFraction(ageYears int) float64 {
	if ageYears <= 0 {
		return c.table[0]
	}
	last := len(c.table) - 1
	if ageYears <= last {
		return c.table[ageYears]
	}
	f := c.table[last] * math.Pow(c.tailDecay, float64(ageYears-last))
	return math.Max(c.floor, f)
}

// ResidualValue is the resale value in won of a car bought for priceWon.
func (c *ResaleCurve) ResidualValue(priceWon float64, ageYears int) int64 {
	return roundWon(priceWon * c.ResidualFraction(ageYears))
}

// Depreciation is the value lost during the given year of ownership (1-based).
func (c *ResaleCurve) Depreciation(priceWon float64, year int) int64 {
	if year < 1 {
		return 0
	}
	return roundWon(priceWon * (c.ResidualFraction(year-1) - c.ResidualFraction(year)))
}
