package domain

// FinancingMode is how the car purchase is paid for.
type FinancingMode string

const (
	FinancingCash        FinancingMode = "cash"
	FinancingInstallment FinancingMode = "installment"
)

// Installment holds the loan terms of an installment purchase.
type Installment struct {
	DownPaymentPercent float64 `json:"downPaymentPercent"`
	TermMonths         int     `json:"termMonths"`
	AnnualRatePercent  float64 `json:"annualRatePercent"`
}

// CostOverrides replaces computed operating-cost defaults. A nil field means
// "not supplied"; a zero value is an explicit zero.
//
// Yearly and monthly amounts are in 만원, like the rest of InputRecord.
type CostOverrides struct {
	FuelEfficiencyKmPerLiter *float64 `json:"fuelEfficiencyKmPerLiter,omitempty"`
	InsuranceYearly          *float64 `json:"insuranceYearly,omitempty"`
	TaxYearly                *float64 `json:"taxYearly,omitempty"`
	MaintenanceYearly        *float64 `json:"maintenanceYearly,omitempty"`
	ParkingMonthly           *float64 `json:"parkingMonthly,omitempty"`
	MiscMonthly              *float64 `json:"miscMonthly,omitempty"`
}

// InputRecord is everything one evaluation needs. Money is in 만원 (10,000 won)
// except FuelPricePerLiter, which is in won.
type InputRecord struct {
	Salary                 float64       `json:"salary"`
	Assets                 float64       `json:"assets"`
	MonthlyFixedExpense    float64       `json:"monthlyFixedExpense"`
	CommuteDistanceOneWay  float64       `json:"commuteDistanceOneWay"`
	CommuteDaysPerWeek     int           `json:"commuteDaysPerWeek"`
	WeekendTripsPerMonth   int           `json:"weekendTripsPerMonth"`
	WeekendTripRoundTripKm float64       `json:"weekendTripRoundTripKm"`
	CarPrice               float64       `json:"carPrice"`
	Financing              FinancingMode `json:"financing"`
	Installment            *Installment  `json:"installment,omitempty"`
	Overrides              CostOverrides `json:"overrides"`
	FuelPricePerLiter      *float64      `json:"fuelPricePerLiter,omitempty"`
}

// IsInstallment reports whether the purchase is financed with a loan.
func (in InputRecord) IsInstallment() bool {
	return in.Financing == FinancingInstallment && in.Installment != nil
}
