package service

import (
	"math"

	"commute-agent/domain"
	"commute-agent/logger"
)

// CarCostModel computes the yearly cost of owning the car.
type CarCostModel struct {
	curve  *ResaleCurve
	loans  *LoanService
	logger logger.Logger
}

func NewCarCostModel(curve *ResaleCurve, loans *LoanService, log logger.Logger) *CarCostModel {
	return &CarCostModel{curve: curve, loans: loans, logger: log}
}

// YearlyDistanceKm combines commuting and weekend driving.
func YearlyDistanceKm(in domain.InputRecord) float64 {
	commute := in.CommuteDistanceOneWay * 2 * float64(in.CommuteDaysPerWeek) * WeeksPerYear
	weekend := float64(in.WeekendTripsPerMonth) * in.WeekendTripRoundTripKm * MonthsPerYear
	return commute + weekend
}

// Compute returns the breakdown for in. For an installment purchase the
// monthly loan payment takes the place of depreciation in the yearly total.
func (m *CarCostModel) Compute(in domain.InputRecord) domain.CarCostBreakdown {
	priceWon := toWon(in.CarPrice)
	o := in.Overrides

	if o.FuelEfficiencyKmPerLiter != nil && *o.FuelEfficiencyKmPerLiter <= 0 {
		m.logger.Debug("fuel efficiency override ignored", map[string]interface{}{
			"fuelEfficiencyKmPerLiter": *o.FuelEfficiencyKmPerLiter,
		})
	}

	distance := YearlyDistanceKm(in)
	efficiency := resolve(positive(o.FuelEfficiencyKmPerLiter), constant(DefaultFuelEfficiencyKmL))
	fuelPrice := resolve(positive(in.FuelPricePerLiter), constant(DefaultFuelPricePerLiter))

	b := domain.CarCostBreakdown{
		YearlyDistanceKm: distance,
		FuelCost:         roundWon(distance / efficiency * fuelPrice),
		Insurance:        roundWon(resolve(scaled(o.InsuranceYearly, WonPerManwon), func() float64 { return insuranceFor(priceWon) })),
		Tax:              roundWon(resolve(scaled(o.TaxYearly, WonPerManwon), func() float64 { return taxFor(in.CarPrice) })),
		Maintenance:      roundWon(resolve(scaled(o.MaintenanceYearly, WonPerManwon), constant(DefaultMaintenanceYearly))),
		Parking:          roundWon(resolve(scaled(o.ParkingMonthly, WonPerManwon*MonthsPerYear), constant(DefaultParkingMonthly*MonthsPerYear))),
		Misc:             roundWon(resolve(scaled(o.MiscMonthly, WonPerManwon*MonthsPerYear), constant(DefaultMiscMonthly*MonthsPerYear))),
		Depreciation:     m.curve.Depreciation(priceWon, 1),
	}
	b.OperatingTotal = b.FuelCost + b.Insurance + b.Tax + b.Maintenance + b.Parking + b.Misc

	if schedule := m.loans.ScheduleFor(in); schedule != nil {
		b.LoanPayment = schedule.MonthlyPayment
		b.YearlyTotal = b.OperatingTotal + b.LoanPayment*MonthsPerYear
	} else {
		b.YearlyTotal = b.OperatingTotal + b.Depreciation
	}
	b.MonthlyTotal = roundWon(float64(b.YearlyTotal) / MonthsPerYear)
	return b
}

func insuranceFor(priceWon float64) float64 {
	return math.Min(InsuranceMax, math.Max(InsuranceMin, priceWon*InsuranceRate))
}

// taxFor takes the car price in 만원.
func taxFor(priceManwon float64) float64 {
	for _, band := range taxBands {
		if priceManwon <= band.maxPrice {
			return band.tax
		}
	}
	return taxAboveBands
}
