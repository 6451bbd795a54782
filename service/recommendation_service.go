package service

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"

	"commute-agent/domain"
	"commute-agent/logger"
)

// RecommendationEngine composes the cost models, the affordability check and
// the break-even projection into a scored verdict. Every rule adds a fixed
// number of points and a reason; a positive total favors buying the car.
type RecommendationEngine struct {
	loans         *LoanService
	carCosts      *CarCostModel
	transitCosts  *TransitCostModel
	breakEven     *BreakEvenSimulator
	affordability *AffordabilityEvaluator
	investments   *InvestmentAdvisor
	horizonYears  int
	logger        logger.Logger
}

// NewRecommendationEngine wires the default components.
func NewRecommendationEngine(log logger.Logger) *RecommendationEngine {
	curve := NewResaleCurve()
	loans := NewLoanService(log)
	return &RecommendationEngine{
		loans:         loans,
		carCosts:      NewCarCostModel(curve, loans, log),
		transitCosts:  NewTransitCostModel(),
		breakEven:     NewBreakEvenSimulator(curve, log),
		affordability: NewAffordabilityEvaluator(),
		investments:   NewInvestmentAdvisor(AnalysisHorizonYears),
		horizonYears:  AnalysisHorizonYears,
		logger:        log,
	}
}

// Loans exposes the amortizer used by the engine.
func (e *RecommendationEngine) Loans() *LoanService {
	return e.loans
}

type scorecard struct {
	score   int
	reasons []domain.Reason
}

func (c *scorecard) add(side domain.Side, points int, format string, args ...interface{}) {
	c.score += points
	c.reasons = append(c.reasons, domain.Reason{
		Side:   side,
		Text:   fmt.Sprintf(format, args...),
		Points: points,
	})
}

func won(v int64) string {
	return humanize.Comma(v) + "원"
}

func percent(v float64) string {
	if v == Unbounded {
		return "∞%"
	}
	return fmt.Sprintf("%.1f%%", v)
}

// ampleDisposable compares the unrounded monthly disposable income with the
// monthly car cost.
func ampleDisposable(disposable float64, monthlyCarCost int64) bool {
	return disposable > float64(monthlyCarCost*AmpleDisposableFactor)
}

// Recommend validates in and evaluates it. Invalid input is rejected with an
// *InputError before anything is computed.
func (e *RecommendationEngine) Recommend(in domain.InputRecord) (domain.RecommendationResult, error) {
	if err := ValidateInput(in); err != nil {
		return domain.RecommendationResult{}, err
	}

	car := e.carCosts.Compute(in)
	transit := e.transitCosts.Compute(in)
	loan := e.loans.ScheduleFor(in)
	aff := e.affordability.Evaluate(in.Salary, in.Assets, in.CarPrice, car.YearlyTotal)
	projection := e.breakEven.Simulate(in, car, transit, e.horizonYears)

	if in.Assets == 0 {
		e.logger.Debug("zero assets, asset ratio unbounded", nil)
	}

	disposable := toWon(in.Salary)/MonthsPerYear - toWon(in.MonthlyFixedExpense)

	coverageYears := Unbounded
	if car.YearlyTotal > 0 {
		coverageYears = toWon(in.Assets) / float64(car.YearlyTotal)
	}
	wealthy := coverageYears >= WealthyCoverageYears && aff.AssetRatio < ModerateAssetRatio

	var c scorecard

	if car.YearlyTotal < transit.YearlyTotal {
		c.add(domain.SideCar, 2, "자가용 연간 비용(%s)이 대중교통(%s)보다 적게 듭니다",
			won(car.YearlyTotal), won(transit.YearlyTotal))
	} else {
		c.add(domain.SideTransit, -1, "대중교통을 이용하면 연간 %s을 아낄 수 있습니다",
			won(car.YearlyTotal-transit.YearlyTotal))
	}

	switch {
	case aff.IsSalaryBurden && !wealthy:
		c.add(domain.SideTransit, -2, "연봉 대비 자가용 비용이 %s로 권장 한도 %.0f%%를 넘습니다",
			percent(aff.SalaryRatio), SalaryRatioLimit)
	case aff.IsSalaryBurden && wealthy:
		c.add(domain.SideCar, 1, "연봉 대비 비용은 %s이지만 보유 자산으로 약 %.0f년을 충당할 수 있습니다",
			percent(aff.SalaryRatio), math.Floor(coverageYears))
	case aff.SalaryRatio < LowSalaryRatio:
		c.add(domain.SideCar, 2, "연봉 대비 자가용 비용이 %s로 여유가 있습니다", percent(aff.SalaryRatio))
	default:
		c.add(domain.SideCar, 1, "연봉 대비 자가용 비용이 %s로 감당할 만합니다", percent(aff.SalaryRatio))
	}

	switch {
	case aff.IsAssetBurden:
		c.add(domain.SideTransit, -2, "차량 가격이 보유 자산의 %s로 권장 한도 %.0f%%를 넘습니다",
			percent(aff.AssetRatio), AssetRatioLimit)
	case aff.AssetRatio < LowAssetRatio:
		c.add(domain.SideCar, 3, "차량 가격이 보유 자산의 %s에 불과합니다", percent(aff.AssetRatio))
	case aff.AssetRatio < ModerateAssetRatio:
		c.add(domain.SideCar, 2, "차량 가격이 보유 자산의 %s로 충분히 감당할 수 있습니다", percent(aff.AssetRatio))
	case in.Assets >= MinAssetsForCar:
		c.add(domain.SideCar, 1, "보유 자산으로 차량을 살 수 있는 수준입니다")
	}

	switch {
	case in.CommuteDistanceOneWay >= LongCommuteKm:
		c.add(domain.SideCar, 2, "편도 %gkm 장거리 통근에는 자가용이 편리합니다", in.CommuteDistanceOneWay)
	case in.CommuteDistanceOneWay <= ShortCommuteKm:
		c.add(domain.SideTransit, -1, "편도 %gkm 단거리 통근에는 대중교통이 효율적입니다", in.CommuteDistanceOneWay)
	}

	if in.Assets < MinAssetsForCar {
		c.add(domain.SideTransit, -3, "보유 자산 %s이 차량 구매 최소 기준 %s에 못 미칩니다",
			won(roundWon(toWon(in.Assets))), won(roundWon(toWon(MinAssetsForCar))))
	}

	short := disposable < float64(car.MonthlyTotal)
	switch {
	case short && !wealthy:
		c.add(domain.SideTransit, -2, "월 여유자금 %s이 자가용 월 비용 %s보다 적습니다",
			won(roundWon(disposable)), won(car.MonthlyTotal))
	case short && wealthy:
		c.add(domain.SideCar, 0, "월 여유자금은 부족하지만 보유 자산으로 비용을 충당할 수 있습니다")
	case ampleDisposable(disposable, car.MonthlyTotal):
		c.add(domain.SideCar, 1, "월 여유자금 %s이 자가용 월 비용의 %d배를 넘습니다",
			won(roundWon(disposable)), AmpleDisposableFactor)
	}

	if loan != nil && float64(loan.TotalInterest) > toWon(in.CarPrice)*InterestBurdenFraction {
		c.add(domain.SideTransit, -1, "할부 이자 %s이 차량 가격의 %.0f%%에 달합니다",
			won(loan.TotalInterest), float64(loan.TotalInterest)/toWon(in.CarPrice)*100)
	}

	verdict := domain.VerdictUseTransit
	if c.score > 0 {
		verdict = domain.VerdictBuyCar
	}

	var savings int64
	if verdict == domain.VerdictUseTransit && car.YearlyTotal > transit.YearlyTotal {
		savings = car.YearlyTotal - transit.YearlyTotal
	}

	e.logger.Debug("evaluation scored", map[string]interface{}{
		"score":   c.score,
		"verdict": string(verdict),
		"reasons": len(c.reasons),
	})

	return domain.RecommendationResult{
		Verdict:                         verdict,
		Score:                           c.score,
		Reasons:                         c.reasons,
		CarCosts:                        car,
		TransitCosts:                    transit,
		Loan:                            loan,
		Affordability:                   aff,
		BreakEven:                       projection,
		ProjectedAnnualSavingsIfTransit: savings,
		MonthlyDisposableIncome:         roundWon(disposable),
		InvestmentProfile:               e.investments.Recommend(in.Salary, in.Assets, savings),
	}, nil
}
