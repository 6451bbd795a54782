package service

import (
	"math"

	"commute-agent/domain"
)

// TransitCostModel prices a month of public transit: a commuter pass, a taxi
// allowance that grows with commute distance, and weekend trip fares.
type TransitCostModel struct{}

func NewTransitCostModel() *TransitCostModel {
	return &TransitCostModel{}
}

func (m *TransitCostModel) Compute(in domain.InputRecord) domain.TransitCostBreakdown {
	oneWay := in.WeekendTripRoundTripKm / 2
	weekend := float64(in.WeekendTripsPerMonth) * 2 * FareFor(oneWay)

	b := domain.TransitCostBreakdown{
		MonthlyPassFee:        roundWon(TransitPassMonthly),
		TaxiSupplementMonthly: roundWon(taxiSupplementFor(in.CommuteDistanceOneWay)),
		WeekendTripMonthly:    roundWon(weekend),
	}
	b.MonthlyTotal = b.MonthlyPassFee + b.TaxiSupplementMonthly + b.WeekendTripMonthly
	b.YearlyTotal = b.MonthlyTotal * MonthsPerYear
	return b
}

// FareFor is the distance-based fare of a single ride.
func FareFor(distanceKm float64) float64 {
	extra := math.Max(0, distanceKm-BaseFareKm)
	return BaseFare + math.Ceil(extra/ExtraFareStepKm)*ExtraFarePerStep
}

func taxiSupplementFor(commuteKm float64) float64 {
	switch {
	case commuteKm <= TaxiShortMaxKm:
		return TaxiShortMonthly
	case commuteKm <= TaxiMediumMaxKm:
		return TaxiMediumMonthly
	default:
		return TaxiLongMonthly
	}
}
