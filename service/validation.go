package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"commute-agent/domain"
)

// ErrInvalidInput is matched by every InputError.
var ErrInvalidInput = errors.New("invalid input")

// InputError lists every rejected field of one request, keyed by its JSON path.
type InputError struct {
	Fields map[string]string
}

func (e *InputError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return fmt.Sprintf("%s: %s", ErrInvalidInput, strings.Join(parts, "; "))
}

func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}

type fieldErrors map[string]string

func (f fieldErrors) check(ok bool, field, msg string) {
	if ok {
		return
	}
	if _, exists := f[field]; !exists {
		f[field] = msg
	}
}

func (f fieldErrors) err() error {
	if len(f) == 0 {
		return nil
	}
	return &InputError{Fields: f}
}

// ValidateInput checks an InputRecord before any computation. A fuel
// efficiency override of zero or less is not an error; the cost model falls
// back to the default for it.
func ValidateInput(in domain.InputRecord) error {
	f := fieldErrors{}

	f.check(in.Salary >= MinSalary, "salary", fmt.Sprintf("연봉은 %.0f만원 이상이어야 합니다", MinSalary))
	f.check(in.Assets >= 0, "assets", "보유 자산은 0 이상이어야 합니다")
	f.check(in.MonthlyFixedExpense >= 0, "monthlyFixedExpense", "월 고정지출은 0 이상이어야 합니다")
	f.check(in.CommuteDistanceOneWay > 0, "commuteDistanceOneWay", "편도 통근 거리는 0보다 커야 합니다")
	f.check(in.CommuteDaysPerWeek >= 1 && in.CommuteDaysPerWeek <= MaxCommuteDays,
		"commuteDaysPerWeek", "주간 통근 일수는 1~7일이어야 합니다")
	f.check(in.WeekendTripsPerMonth >= 0, "weekendTripsPerMonth", "주말 외출 횟수는 0 이상이어야 합니다")
	f.check(in.WeekendTripRoundTripKm >= 0, "weekendTripRoundTripKm", "주말 외출 거리는 0 이상이어야 합니다")
	f.check(in.CarPrice >= MinCarPrice, "carPrice", fmt.Sprintf("차량 가격은 %.0f만원 이상이어야 합니다", MinCarPrice))

	switch in.Financing {
	case domain.FinancingCash:
	case domain.FinancingInstallment:
		if in.Installment == nil {
			f.check(false, "installment", "할부 구매 시 할부 조건이 필요합니다")
			break
		}
		inst := in.Installment
		f.check(inst.DownPaymentPercent >= 0 && inst.DownPaymentPercent <= MaxDownPayment,
			"installment.downPaymentPercent", "선수금 비율은 0~100%여야 합니다")
		f.check(inst.TermMonths >= MinTermMonths && inst.TermMonths <= MaxTermMonths,
			"installment.termMonths", fmt.Sprintf("할부 기간은 %d~%d개월이어야 합니다", MinTermMonths, MaxTermMonths))
		f.check(inst.AnnualRatePercent >= 0 && inst.AnnualRatePercent <= MaxInterestRate,
			"installment.annualRatePercent", "연 이자율은 0~30%여야 합니다")
	default:
		f.check(false, "financing", `구매 방식은 "cash" 또는 "installment"여야 합니다`)
	}

	o := in.Overrides
	nonNegative := map[string]*float64{
		"overrides.insuranceYearly":   o.InsuranceYearly,
		"overrides.taxYearly":         o.TaxYearly,
		"overrides.maintenanceYearly": o.MaintenanceYearly,
		"overrides.parkingMonthly":    o.ParkingMonthly,
		"overrides.miscMonthly":       o.MiscMonthly,
	}
	for field, v := range nonNegative {
		f.check(v == nil || *v >= 0, field, "비용 항목은 0 이상이어야 합니다")
	}
	if in.FuelPricePerLiter != nil {
		f.check(*in.FuelPricePerLiter >= 0, "fuelPricePerLiter", "유가는 0 이상이어야 합니다")
	}

	return f.err()
}

// ValidateLoanInput checks a standalone loan calculation request.
func ValidateLoanInput(in domain.LoanInput) error {
	f := fieldErrors{}
	f.check(in.Principal > 0, "principal", "대출 원금은 0보다 커야 합니다")
	f.check(in.TermMonths >= 1 && in.TermMonths <= MaxTermMonths,
		"termMonths", fmt.Sprintf("대출 기간은 1~%d개월이어야 합니다", MaxTermMonths))
	f.check(in.AnnualRatePercent >= 0 && in.AnnualRatePercent <= MaxInterestRate,
		"annualRatePercent", "연 이자율은 0~30%여야 합니다")
	return f.err()
}
