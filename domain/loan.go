package domain

// LoanInput is a standalone loan calculation request. Principal is in 만원.
type LoanInput struct {
	Principal         float64 `json:"principal"`
	TermMonths        int     `json:"termMonths"`
	AnnualRatePercent float64 `json:"annualRatePercent"`
}

// LoanSchedule is a fixed-payment installment plan. Money is in won.
type LoanSchedule struct {
	MonthlyPayment int64   `json:"monthlyPayment"`
	TotalPayment   int64   `json:"totalPayment"`
	TotalInterest  int64   `json:"totalInterest"`
	Principal      int64   `json:"principal"`
	TermMonths     int     `json:"termMonths"`
	MonthlyRate    float64 `json:"monthlyRate"`
}
