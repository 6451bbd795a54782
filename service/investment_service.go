package service

import (
	"math"

	"commute-agent/domain"
)

const (
	aggressiveSalary = 5_000.0  // 만원
	aggressiveAssets = 10_000.0 // 만원
	balancedSalary   = 3_000.0
	balancedAssets   = 5_000.0
)

var investmentProfiles = map[domain.RiskProfile]domain.InvestmentProfile{
	domain.RiskConservative: {
		Profile:            domain.RiskConservative,
		Name:               "안정형",
		RiskLevel:          1,
		ExpectedReturn:     "3~5%",
		ExpectedAnnualRate: 0.04,
		Allocation:         domain.Allocation{Deposit: 40, Bond: 35, Stock: 15, Etc: 10},
		Strategy:           "예적금과 국채 ETF 위주로 원금을 지키며 이자 수익을 쌓습니다",
	},
	domain.RiskBalanced: {
		Profile:            domain.RiskBalanced,
		Name:               "균형형",
		RiskLevel:          2,
		ExpectedReturn:     "5~8%",
		ExpectedAnnualRate: 0.065,
		Allocation:         domain.Allocation{Deposit: 20, Bond: 25, Stock: 40, Etc: 15},
		Strategy:           "국내외 지수 ETF를 중심으로 채권을 섞어 변동성을 낮춥니다",
	},
	domain.RiskAggressive: {
		Profile:            domain.RiskAggressive,
		Name:               "성장형",
		RiskLevel:          3,
		ExpectedReturn:     "8~12%",
		ExpectedAnnualRate: 0.10,
		Allocation:         domain.Allocation{Deposit: 10, Bond: 10, Stock: 65, Etc: 15},
		Strategy:           "성장주와 섹터 ETF 비중을 높이고 해외 자산으로 분산합니다",
	},
}

// InvestmentAdvisor suggests how to invest money not spent on a car.
type InvestmentAdvisor struct {
	horizonYears int
}

func NewInvestmentAdvisor(horizonYears int) *InvestmentAdvisor {
	if horizonYears <= 0 {
		horizonYears = AnalysisHorizonYears
	}
	return &InvestmentAdvisor{horizonYears: horizonYears}
}

// ProfileFor picks a risk profile from salary and assets in 만원.
func ProfileFor(salary, assets float64) domain.RiskProfile {
	switch {
	case salary >= aggressiveSalary && assets >= aggressiveAssets:
		return domain.RiskAggressive
	case salary >= balancedSalary || assets >= balancedAssets:
		return domain.RiskBalanced
	default:
		return domain.RiskConservative
	}
}

// Recommend returns the profile for salary and assets, with annualSavingsWon
// split per month across the allocation and compounded over the horizon.
func (a *InvestmentAdvisor) Recommend(salary, assets float64, annualSavingsWon int64) domain.InvestmentProfile {
	p := investmentProfiles[ProfileFor(salary, assets)]
	if annualSavingsWon <= 0 {
		return p
	}

	monthly := float64(annualSavingsWon) / MonthsPerYear
	p.MonthlySavings = roundWon(monthly)
	p.MonthlyAllocation = domain.Allocation{
		Deposit: roundWon(monthly * float64(p.Allocation.Deposit) / 100),
		Bond:    roundWon(monthly * float64(p.Allocation.Bond) / 100),
		Stock:   roundWon(monthly * float64(p.Allocation.Stock) / 100),
		Etc:     roundWon(monthly * float64(p.Allocation.Etc) / 100),
	}

	// Future value of an ordinary annuity of yearly deposits.
	r := p.ExpectedAnnualRate
	n := float64(a.horizonYears)
	p.FutureValue = roundWon(float64(annualSavingsWon) * (math.Pow(1+r, n) - 1) / r)
	return p
}
