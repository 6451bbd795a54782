package domain

// YearlyProjectionPoint is the cumulative position of both alternatives at the
// end of one year. CarNetCumulative = CarGrossCumulative - ResaleValueAtYear.
type YearlyProjectionPoint struct {
	YearIndex          int   `json:"yearIndex"`
	CarNetCumulative   int64 `json:"carNetCumulative"`
	CarGrossCumulative int64 `json:"carGrossCumulative"`
	TransitCumulative  int64 `json:"transitCumulative"`
	ResaleValueAtYear  int64 `json:"resaleValueAtYear"`
	DepreciationInYear int64 `json:"depreciationInYear"`
	LoanBalance        int64 `json:"loanBalance"`
}

// BreakEvenResult is the full multi-year projection. BreakEvenYear is nil when
// transit never becomes the more expensive option within the horizon.
type BreakEvenResult struct {
	Points            []YearlyProjectionPoint `json:"points"`
	BreakEvenYear     *int                    `json:"breakEvenYear"`
	TotalCarCost      int64                   `json:"totalCarCost"`
	TotalTransitCost  int64                   `json:"totalTransitCost"`
	ResaleValueAtEnd  int64                   `json:"resaleValueAtEnd"`
	TotalInterestPaid int64                   `json:"totalInterestPaid"`
}
