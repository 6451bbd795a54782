package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"commute-agent/domain"
)

func TestValidateInput_Valid(t *testing.T) {
	for _, in := range []domain.InputRecord{scenarioA(), scenarioB(), scenarioC(), scenarioBreakEven()} {
		assert.NoError(t, ValidateInput(in))
	}
}

func TestValidateInput_FieldErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *domain.InputRecord)
		fields []string
	}{
		{"low salary", func(in *domain.InputRecord) { in.Salary = 99 }, []string{"salary"}},
		{"negative assets", func(in *domain.InputRecord) { in.Assets = -1 }, []string{"assets"}},
		{"zero commute", func(in *domain.InputRecord) { in.CommuteDistanceOneWay = 0 }, []string{"commuteDistanceOneWay"}},
		{"eight days", func(in *domain.InputRecord) { in.CommuteDaysPerWeek = 8 }, []string{"commuteDaysPerWeek"}},
		{"zero days", func(in *domain.InputRecord) { in.CommuteDaysPerWeek = 0 }, []string{"commuteDaysPerWeek"}},
		{"cheap car", func(in *domain.InputRecord) { in.CarPrice = 499 }, []string{"carPrice"}},
		{"unknown financing", func(in *domain.InputRecord) { in.Financing = "lease" }, []string{"financing"}},
		{"installment without terms", func(in *domain.InputRecord) {
			in.Financing = domain.FinancingInstallment
		}, []string{"installment"}},
		{"installment out of range", func(in *domain.InputRecord) {
			in.Financing = domain.FinancingInstallment
			in.Installment = &domain.Installment{DownPaymentPercent: 101, TermMonths: 5, AnnualRatePercent: 30.5}
		}, []string{"installment.downPaymentPercent", "installment.termMonths", "installment.annualRatePercent"}},
		{"negative overrides", func(in *domain.InputRecord) {
			in.Overrides.ParkingMonthly = f64(-1)
			in.Overrides.TaxYearly = f64(-2)
		}, []string{"overrides.parkingMonthly", "overrides.taxYearly"}},
		{"several at once", func(in *domain.InputRecord) {
			in.Salary = 0
			in.CarPrice = 0
			in.WeekendTripsPerMonth = -1
		}, []string{"salary", "carPrice", "weekendTripsPerMonth"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := scenarioA()
			tt.mutate(&in)

			err := ValidateInput(in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidInput))

			var inputErr *InputError
			require.ErrorAs(t, err, &inputErr)
			assert.Len(t, inputErr.Fields, len(tt.fields))
			for _, f := range tt.fields {
				assert.Contains(t, inputErr.Fields, f)
			}
		})
	}
}

func TestValidateInput_NonPositiveEfficiencyIsNotAnError(t *testing.T) {
	in := scenarioA()
	in.Overrides.FuelEfficiencyKmPerLiter = f64(0)
	assert.NoError(t, ValidateInput(in))
}

func TestInputError_Message(t *testing.T) {
	err := &InputError{Fields: map[string]string{"salary": "too low", "assets": "negative"}}
	assert.Equal(t, "invalid input: assets: negative; salary: too low", err.Error())
}

func TestResolveHelpers(t *testing.T) {
	def := constant(7)
	assert.Equal(t, 7.0, resolve(nil, def))
	assert.Equal(t, 0.0, resolve(f64(0), def))
	assert.Equal(t, 3.0, resolve(f64(3), def))

	assert.Nil(t, positive(f64(0)))
	assert.Nil(t, positive(f64(-1)))
	assert.Equal(t, 2.0, *positive(f64(2)))

	assert.Nil(t, scaled(nil, 12))
	assert.Equal(t, 120_000.0, *scaled(f64(1), WonPerManwon*12))
}
