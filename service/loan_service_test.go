package service

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"commute-agent/domain"
	"commute-agent/logger"
)

func TestAmortize_GoldenValues(t *testing.T) {
	s := NewLoanService(logger.NewNoOpLogger())

	tests := []struct {
		name      string
		principal float64
		term      int
		rate      float64
		want      domain.LoanSchedule
	}{
		{
			name: "zero rate", principal: 12_000_000, term: 48, rate: 0,
			want: domain.LoanSchedule{MonthlyPayment: 250_000, TotalPayment: 12_000_000, TotalInterest: 0, Principal: 12_000_000, TermMonths: 48},
		},
		{
			name: "default terms", principal: 10_000_000, term: 36, rate: 4.5,
			want: domain.LoanSchedule{MonthlyPayment: 297_469, TotalPayment: 10_708_893, TotalInterest: 708_893, Principal: 10_000_000, TermMonths: 36, MonthlyRate: 0.045 / 12},
		},
		{
			name: "max rate and term", principal: 10_000_000, term: 120, rate: 30,
			want: domain.LoanSchedule{MonthlyPayment: 263_618, TotalPayment: 31_634_152, TotalInterest: 21_634_152, Principal: 10_000_000, TermMonths: 120, MonthlyRate: 0.30 / 12},
		},
		{
			name: "single month", principal: 1_000_000, term: 1, rate: 12,
			want: domain.LoanSchedule{MonthlyPayment: 1_010_000, TotalPayment: 1_010_000, TotalInterest: 10_000, Principal: 1_000_000, TermMonths: 1, MonthlyRate: 0.01},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Amortize(tt.principal, tt.term, tt.rate)
			assert.Equal(t, tt.want.MonthlyPayment, got.MonthlyPayment)
			assert.Equal(t, tt.want.TotalPayment, got.TotalPayment)
			assert.Equal(t, tt.want.TotalInterest, got.TotalInterest)
			assert.Equal(t, tt.want.Principal, got.Principal)
			assert.Equal(t, tt.want.TermMonths, got.TermMonths)
			assert.InDelta(t, tt.want.MonthlyRate, got.MonthlyRate, 1e-15)
		})
	}
}

func TestAmortize_Invariants(t *testing.T) {
	s := NewLoanService(logger.NewNoOpLogger())

	for _, principal := range []float64{1, 999_999, 5_000_000, 27_000_000, 123_456_789} {
		for _, term := range []int{1, 6, 13, 48, 84, 120} {
			for _, rate := range []float64{0, 0.1, 4.5, 9, 17.3, 30} {
				got := s.Amortize(principal, term, rate)

				assert.False(t, math.IsNaN(got.MonthlyRate))
				// Each payment is rounded by at most half a won.
				diff := math.Abs(float64(got.MonthlyPayment*int64(term) - got.TotalPayment))
				assert.LessOrEqual(t, diff, float64(term)/2+1, "p=%v n=%d r=%v", principal, term, rate)
				assert.InDelta(t, got.Principal, got.TotalPayment-got.TotalInterest, 1, "p=%v n=%d r=%v", principal, term, rate)
				if rate == 0 {
					assert.Zero(t, got.TotalInterest)
				} else {
					assert.GreaterOrEqual(t, got.TotalInterest, int64(0))
				}
			}
		}
	}
}

func TestAmortize_DegenerateInput(t *testing.T) {
	s := NewLoanService(logger.NewTestLogger(t))

	got := s.Amortize(1_000_000, 0, 5)
	assert.Equal(t, 1, got.TermMonths)
	assert.Greater(t, got.MonthlyPayment, int64(0))

	got = s.Amortize(-5, 12, 5)
	assert.Equal(t, int64(0), got.Principal)
	assert.Equal(t, int64(0), got.MonthlyPayment)

	got = s.Amortize(1_200_000, 12, -3)
	assert.Equal(t, int64(100_000), got.MonthlyPayment)
	assert.Zero(t, got.TotalInterest)
}

func TestCalculateLoan(t *testing.T) {
	s := NewLoanService(logger.NewNoOpLogger())

	got, err := s.CalculateLoan(domain.LoanInput{Principal: 1200, TermMonths: 12, AnnualRatePercent: 0})
	require.NoError(t, err)
	assert.Equal(t, int64(1_000_000), got.MonthlyPayment)
	assert.Equal(t, int64(12_000_000), got.Principal)
}

func TestCalculateLoan_Invalid(t *testing.T) {
	s := NewLoanService(logger.NewNoOpLogger())

	_, err := s.CalculateLoan(domain.LoanInput{Principal: 0, TermMonths: 0, AnnualRatePercent: 31})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))

	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
	assert.Contains(t, inputErr.Fields, "principal")
	assert.Contains(t, inputErr.Fields, "termMonths")
	assert.Contains(t, inputErr.Fields, "annualRatePercent")
}

func TestScheduleFor(t *testing.T) {
	s := NewLoanService(logger.NewNoOpLogger())

	assert.Nil(t, s.ScheduleFor(scenarioB()))

	schedule := s.ScheduleFor(scenarioC())
	require.NotNil(t, schedule)
	assert.Equal(t, int64(27_000_000), schedule.Principal)
	assert.Equal(t, int64(434_405), schedule.MonthlyPayment)
	assert.Equal(t, int64(9_490_029), schedule.TotalInterest)
}
