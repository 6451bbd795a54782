package domain

// Verdict is the final decision.
type Verdict string

const (
	VerdictBuyCar     Verdict = "buyCar"
	VerdictUseTransit Verdict = "useTransit"
)

// Side is the alternative a reason argues for.
type Side string

const (
	SideCar     Side = "buyCar"
	SideTransit Side = "useTransit"
)

// Reason is one scored rule outcome. Points is its signed contribution.
type Reason struct {
	Side   Side   `json:"side"`
	Text   string `json:"text"`
	Points int    `json:"points"`
}

// Affordability expresses car cost against income and assets, in percent.
type Affordability struct {
	SalaryRatio    float64 `json:"salaryRatio"`
	AssetRatio     float64 `json:"assetRatio"`
	IsSalaryBurden bool    `json:"isSalaryBurden"`
	IsAssetBurden  bool    `json:"isAssetBurden"`
}

// RecommendationResult is the full outcome of one evaluation.
type RecommendationResult struct {
	Verdict                         Verdict              `json:"verdict"`
	Score                           int                  `json:"score"`
	Reasons                         []Reason             `json:"reasons"`
	CarCosts                        CarCostBreakdown     `json:"carCosts"`
	TransitCosts                    TransitCostBreakdown `json:"transitCosts"`
	Loan                            *LoanSchedule        `json:"loan,omitempty"`
	Affordability                   Affordability        `json:"affordability"`
	BreakEven                       BreakEvenResult      `json:"breakEven"`
	ProjectedAnnualSavingsIfTransit int64                `json:"projectedAnnualSavingsIfTransit"`
	MonthlyDisposableIncome         int64                `json:"monthlyDisposableIncome"`
	InvestmentProfile               InvestmentProfile    `json:"investmentProfile"`
}
