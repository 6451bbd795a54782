package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"commute-agent/domain"
	"commute-agent/logger"
)

func simulate(t *testing.T, in domain.InputRecord) domain.BreakEvenResult {
	t.Helper()
	log := logger.NewTestLogger(t)
	curve := NewResaleCurve()
	car := NewCarCostModel(curve, NewLoanService(log), log).Compute(in)
	transit := NewTransitCostModel().Compute(in)
	return NewBreakEvenSimulator(curve, log).Simulate(in, car, transit, AnalysisHorizonYears)
}

func TestSimulate_CashNoCrossing(t *testing.T) {
	got := simulate(t, scenarioA())

	require.Len(t, got.Points, AnalysisHorizonYears)
	assert.Nil(t, got.BreakEvenYear)

	first := got.Points[0]
	assert.Equal(t, domain.YearlyProjectionPoint{
		YearIndex:          1,
		CarNetCumulative:   9_214_120,
		CarGrossCumulative: 29_714_120,
		TransitCumulative:  1_380_000,
		ResaleValueAtYear:  20_500_000,
		DepreciationInYear: 4_500_000,
		LoanBalance:        0,
	}, first)

	last := got.Points[len(got.Points)-1]
	assert.Equal(t, int64(91_711_800), last.CarNetCumulative)
	assert.Equal(t, last.CarNetCumulative, got.TotalCarCost)
	assert.Equal(t, int64(20_700_000), got.TotalTransitCost)
	assert.Equal(t, int64(4_000_000), got.ResaleValueAtEnd)
	assert.Zero(t, got.TotalInterestPaid)
}

func TestSimulate_PointInvariants(t *testing.T) {
	for _, in := range []domain.InputRecord{scenarioA(), scenarioB(), scenarioC(), scenarioBreakEven()} {
		got := simulate(t, in)
		for i, p := range got.Points {
			assert.Equal(t, i+1, p.YearIndex)
			assert.Equal(t, p.CarGrossCumulative-p.ResaleValueAtYear, p.CarNetCumulative)
			if i > 0 {
				assert.GreaterOrEqual(t, p.CarGrossCumulative, got.Points[i-1].CarGrossCumulative)
				assert.Greater(t, p.TransitCumulative, got.Points[i-1].TransitCumulative)
			}
		}
	}
}

func TestSimulate_FirstCrossing(t *testing.T) {
	got := simulate(t, scenarioBreakEven())

	require.NotNil(t, got.BreakEvenYear)
	assert.Equal(t, 7, *got.BreakEvenYear)

	for _, p := range got.Points[:6] {
		assert.LessOrEqual(t, p.TransitCumulative, p.CarNetCumulative, "year %d", p.YearIndex)
	}
	year6, year7 := got.Points[5], got.Points[6]
	assert.Equal(t, int64(15_718_400), year6.CarNetCumulative)
	assert.Equal(t, int64(15_480_000), year6.TransitCumulative)
	assert.Equal(t, int64(17_404_800), year7.CarNetCumulative)
	assert.Equal(t, int64(18_060_000), year7.TransitCumulative)
}

func TestSimulate_KeepsEarliestCrossing(t *testing.T) {
	log := logger.NewNoOpLogger()
	s := NewBreakEvenSimulator(NewResaleCurve(), log)
	in := scenarioBreakEven()
	car := domain.CarCostBreakdown{OperatingTotal: 0}

	// Transit overtakes in year 1 and stays ahead.
	got := s.Simulate(in, car, domain.TransitCostBreakdown{YearlyTotal: 4_000_000}, 10)
	require.NotNil(t, got.BreakEvenYear)
	assert.Equal(t, 1, *got.BreakEvenYear)
	assert.Len(t, got.Points, 10)
}

func TestSimulate_DefaultHorizon(t *testing.T) {
	s := NewBreakEvenSimulator(NewResaleCurve(), logger.NewNoOpLogger())
	got := s.Simulate(scenarioA(), domain.CarCostBreakdown{}, domain.TransitCostBreakdown{}, 0)
	assert.Len(t, got.Points, AnalysisHorizonYears)
}

func TestSimulate_LoanRetiredWithinTerm(t *testing.T) {
	in := scenarioC()
	got := simulate(t, in)

	first := got.Points[0]
	assert.Equal(t, int64(39_054_688), first.CarGrossCumulative)
	assert.Equal(t, int64(14_454_688), first.CarNetCumulative)
	assert.Equal(t, int64(24_099_427), first.LoanBalance)

	termYears := in.Installment.TermMonths / 12
	assert.Greater(t, got.Points[termYears-2].LoanBalance, int64(0))
	for _, p := range got.Points[termYears-1:] {
		assert.Zero(t, p.LoanBalance, "year %d", p.YearIndex)
	}
	assert.InDelta(t, 9_490_029, got.TotalInterestPaid, 1)
	assert.Equal(t, int64(135_826_029), got.TotalCarCost)
}

func TestSimulate_ShortLoanStopsPaying(t *testing.T) {
	in := scenarioC()
	in.Installment.TermMonths = 18
	in.Installment.AnnualRatePercent = 0

	got := simulate(t, in)
	// Paid off mid year 2; from then on only operating costs accrue.
	assert.Greater(t, got.Points[0].LoanBalance, int64(0))
	assert.Zero(t, got.Points[1].LoanBalance)
	assert.Zero(t, got.TotalInterestPaid)

	op := float64(NewCarCostModel(NewResaleCurve(), NewLoanService(logger.NewNoOpLogger()), logger.NewNoOpLogger()).Compute(in).OperatingTotal)
	delta := got.Points[3].CarGrossCumulative - got.Points[2].CarGrossCumulative
	assert.InDelta(t, op, float64(delta), 1)
}
