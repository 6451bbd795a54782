package domain

// RiskProfile names an investment style.
type RiskProfile string

const (
	RiskConservative RiskProfile = "conservative"
	RiskBalanced     RiskProfile = "balanced"
	RiskAggressive   RiskProfile = "aggressive"
)

// Allocation splits a portfolio across deposit, bond, stock and other
// assets. As percentages the four fields sum to 100.
type Allocation struct {
	Deposit int64 `json:"deposit"`
	Bond    int64 `json:"bond"`
	Stock   int64 `json:"stock"`
	Etc     int64 `json:"etc"`
}

// InvestmentProfile is the suggested way to invest what is not spent on a car.
// Money fields are in won; FutureValue compounds the annual savings over the
// analysis horizon at ExpectedAnnualRate.
type InvestmentProfile struct {
	Profile            RiskProfile `json:"profile"`
	Name               string      `json:"name"`
	RiskLevel          int         `json:"riskLevel"`
	ExpectedReturn     string      `json:"expectedReturn"`
	ExpectedAnnualRate float64     `json:"expectedAnnualRate"`
	Allocation         Allocation  `json:"allocation"`
	Strategy           string      `json:"strategy"`
	MonthlySavings     int64       `json:"monthlySavings"`
	MonthlyAllocation  Allocation  `json:"monthlyAllocation"`
	FutureValue        int64       `json:"futureValue"`
}
