package domain

// CarCostBreakdown is the yearly cost of owning the car, in won.
// LoanPayment is the monthly installment (0 for a cash purchase).
type CarCostBreakdown struct {
	Depreciation     int64   `json:"depreciation"`
	LoanPayment      int64   `json:"loanPayment"`
	FuelCost         int64   `json:"fuelCost"`
	Insurance        int64   `json:"insurance"`
	Tax              int64   `json:"tax"`
	Maintenance      int64   `json:"maintenance"`
	Parking          int64   `json:"parking"`
	Misc             int64   `json:"misc"`
	OperatingTotal   int64   `json:"operatingTotal"`
	YearlyTotal      int64   `json:"yearlyTotal"`
	MonthlyTotal     int64   `json:"monthlyTotal"`
	YearlyDistanceKm float64 `json:"yearlyDistanceKm"`
}

// TransitCostBreakdown is the cost of relying on public transit, in won.
type TransitCostBreakdown struct {
	MonthlyPassFee        int64 `json:"monthlyPassFee"`
	TaxiSupplementMonthly int64 `json:"taxiSupplementMonthly"`
	WeekendTripMonthly    int64 `json:"weekendTripMonthly"`
	MonthlyTotal          int64 `json:"monthlyTotal"`
	YearlyTotal           int64 `json:"yearlyTotal"`
}
