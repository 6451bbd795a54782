package service

const (
	WonPerManwon = 10_000.0

	// AnalysisHorizonYears is how far the break-even projection runs.
	AnalysisHorizonYears = 15

	// Operating cost defaults, in won.
	DefaultFuelPricePerLiter = 1650.0
	DefaultFuelEfficiencyKmL = 12.5
	InsuranceRate            = 0.035
	InsuranceMin             = 600_000.0
	InsuranceMax             = 2_000_000.0
	DefaultMaintenanceYearly = 800_000.0
	DefaultParkingMonthly    = 120_000.0
	DefaultMiscMonthly       = 50_000.0
	WeeksPerYear             = 52
	MonthsPerYear            = 12

	// Transit, in won.
	TransitPassMonthly = 65_000.0
	TaxiShortMonthly   = 50_000.0
	TaxiMediumMonthly  = 100_000.0
	TaxiLongMonthly    = 150_000.0
	TaxiShortMaxKm     = 10.0
	TaxiMediumMaxKm    = 25.0
	BaseFare           = 1_500.0
	BaseFareKm         = 10.0
	ExtraFarePerStep   = 100.0
	ExtraFareStepKm    = 5.0

	// Decision thresholds.
	SalaryRatioLimit       = 30.0 // percent
	AssetRatioLimit        = 50.0 // percent
	LowSalaryRatio         = 15.0
	LowAssetRatio          = 10.0
	ModerateAssetRatio     = 30.0
	WealthyCoverageYears   = 10.0
	LongCommuteKm          = 30.0
	ShortCommuteKm         = 10.0
	MinAssetsForCar        = 1_000.0 // 만원
	InterestBurdenFraction = 0.10
	AmpleDisposableFactor  = 3

	// Input limits.
	MinSalary       = 100.0 // 만원
	MinCarPrice     = 500.0 // 만원
	MinTermMonths   = 6
	MaxTermMonths   = 120
	MaxInterestRate = 30.0
	MaxDownPayment  = 100.0
	MaxCommuteDays  = 7

	// Loan balances below this many won count as repaid.
	LoanBalanceTolerance = 0.5
)

// taxBand maps an upper car price bound (만원, inclusive) to the annual
// vehicle tax in won.
type taxBand struct {
	maxPrice float64
	tax      float64
}

var taxBands = []taxBand{
	{maxPrice: 2_000, tax: 300_000},
	{maxPrice: 3_000, tax: 450_000},
	{maxPrice: 5_000, tax: 520_000},
}

const taxAboveBands = 650_000.0
