package service

import (
	"math"

	"commute-agent/domain"
	"commute-agent/logger"
)

// BreakEvenSimulator projects cumulative spending of both alternatives year
// by year. Loans are amortized month by month inside each year so an uneven
// final year is captured.
type BreakEvenSimulator struct {
	curve  *ResaleCurve
	logger logger.Logger
}

func NewBreakEvenSimulator(curve *ResaleCurve, log logger.Logger) *BreakEvenSimulator {
	return &BreakEvenSimulator{curve: curve, logger: log}
}

// projectionState is the running state carried between years, in won.
type projectionState struct {
	carCashSpent      float64
	loanBalance       float64
	totalInterestPaid float64
	transitCumulative int64
}

type loanTerms struct {
	payment     float64
	monthlyRate float64
}

// payMonth applies one installment. Returns false when nothing was owed.
func (st *projectionState) payMonth(loan loanTerms) bool {
	if st.loanBalance <= 0 {
		return false
	}
	interest := st.loanBalance * loan.monthlyRate
	principalPaid := math.Min(loan.payment-interest, st.loanBalance)
	st.carCashSpent += loan.payment
	st.totalInterestPaid += interest
	st.loanBalance = math.Max(0, st.loanBalance-principalPaid)
	if st.loanBalance < LoanBalanceTolerance {
		st.loanBalance = 0
	}
	return true
}

// Simulate runs the projection over horizonYears (the default horizon when
// not positive). BreakEvenYear is the first year transit costs more than the
// car net of resale; later crossings are ignored.
func (s *BreakEvenSimulator) Simulate(
	in domain.InputRecord,
	car domain.CarCostBreakdown,
	transit domain.TransitCostBreakdown,
	horizonYears int,
) domain.BreakEvenResult {
	if horizonYears <= 0 {
		horizonYears = AnalysisHorizonYears
	}

	priceWon := toWon(in.CarPrice)
	principal := loanPrincipalWon(in)

	var loan loanTerms
	if in.IsInstallment() {
		term := in.Installment.TermMonths
		if term < 1 {
			s.logger.Warn("loan term clamped", map[string]interface{}{"termMonths": term})
			term = 1
		}
		loan.monthlyRate = monthlyRateOf(math.Max(0, in.Installment.AnnualRatePercent))
		loan.payment = annuityPayment(principal, term, loan.monthlyRate)
	}

	st := projectionState{
		carCashSpent: priceWon - principal,
		loanBalance:  principal,
	}

	result := domain.BreakEvenResult{
		Points: make([]domain.YearlyProjectionPoint, 0, horizonYears),
	}

	for year := 1; year <= horizonYears; year++ {
		st.carCashSpent += float64(car.OperatingTotal)

		for m := 0; m < MonthsPerYear; m++ {
			if !st.payMonth(loan) {
				break
			}
		}

		resale := s.curve.ResidualValue(priceWon, year)
		gross := roundWon(st.carCashSpent + math.Max(0, st.loanBalance))
		st.transitCumulative += transit.YearlyTotal

		point := domain.YearlyProjectionPoint{
			YearIndex:          year,
			CarGrossCumulative: gross,
			ResaleValueAtYear:  resale,
			CarNetCumulative:   gross - resale,
			TransitCumulative:  st.transitCumulative,
			DepreciationInYear: s.curve.Depreciation(priceWon, year),
			LoanBalance:        roundWon(st.loanBalance),
		}
		result.Points = append(result.Points, point)

		if result.BreakEvenYear == nil && point.TransitCumulative > point.CarNetCumulative {
			y := year
			result.BreakEvenYear = &y
		}
	}

	last := result.Points[len(result.Points)-1]
	result.TotalCarCost = last.CarNetCumulative
	result.TotalTransitCost = last.TransitCumulative
	result.ResaleValueAtEnd = last.ResaleValueAtYear
	result.TotalInterestPaid = roundWon(st.totalInterestPaid)
	return result
}
