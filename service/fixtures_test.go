package service

import (
	"testing"

	"commute-agent/domain"
	"commute-agent/logger"
)

func f64(v float64) *float64 { return &v }

func newTestEngine(t *testing.T) *RecommendationEngine {
	t.Helper()
	return NewRecommendationEngine(logger.NewTestLogger(t))
}

// Short commute, modest assets, cash purchase.
func scenarioA() domain.InputRecord {
	return domain.InputRecord{
		Salary:                3600,
		Assets:                2000,
		MonthlyFixedExpense:   150,
		CommuteDistanceOneWay: 8,
		CommuteDaysPerWeek:    5,
		CarPrice:              2500,
		Financing:             domain.FinancingCash,
	}
}

// Long commute, high income and assets, cash purchase.
func scenarioB() domain.InputRecord {
	return domain.InputRecord{
		Salary:                8000,
		Assets:                15000,
		MonthlyFixedExpense:   200,
		CommuteDistanceOneWay: 35,
		CommuteDaysPerWeek:    5,
		CarPrice:              3000,
		Financing:             domain.FinancingCash,
	}
}

// scenarioB bought on a 7 year loan at 9%.
func scenarioC() domain.InputRecord {
	in := scenarioB()
	in.Financing = domain.FinancingInstallment
	in.Installment = &domain.Installment{
		DownPaymentPercent: 10,
		TermMonths:         84,
		AnnualRatePercent:  9,
	}
	return in
}

// A cheap-to-run car against an expensive transit commute.
func scenarioBreakEven() domain.InputRecord {
	return domain.InputRecord{
		Salary:                5000,
		Assets:                5000,
		CommuteDistanceOneWay: 40,
		CommuteDaysPerWeek:    5,
		CarPrice:              2000,
		Financing:             domain.FinancingCash,
		Overrides: domain.CostOverrides{
			FuelEfficiencyKmPerLiter: f64(50),
			InsuranceYearly:          f64(0),
			TaxYearly:                f64(0),
			MaintenanceYearly:        f64(0),
			ParkingMonthly:           f64(0),
			MiscMonthly:              f64(0),
		},
	}
}
