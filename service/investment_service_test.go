package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"commute-agent/domain"
)

func TestProfileFor(t *testing.T) {
	tests := []struct {
		salary, assets float64
		want           domain.RiskProfile
	}{
		{8000, 15000, domain.RiskAggressive},
		{5000, 10000, domain.RiskAggressive},
		{5000, 9999, domain.RiskBalanced},
		{3600, 2000, domain.RiskBalanced},
		{2000, 5000, domain.RiskBalanced},
		{2999, 4999, domain.RiskConservative},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ProfileFor(tt.salary, tt.assets), "salary %v assets %v", tt.salary, tt.assets)
	}
}

func TestInvestmentAdvisor_AllocationsSumTo100(t *testing.T) {
	for profile, p := range investmentProfiles {
		a := p.Allocation
		assert.Equal(t, int64(100), a.Deposit+a.Bond+a.Stock+a.Etc, string(profile))
	}
}

func TestInvestmentAdvisor_Recommend(t *testing.T) {
	a := NewInvestmentAdvisor(AnalysisHorizonYears)

	got := a.Recommend(3600, 2000, 7_834_120)
	assert.Equal(t, domain.RiskBalanced, got.Profile)
	assert.Equal(t, 2, got.RiskLevel)
	assert.Equal(t, int64(652_843), got.MonthlySavings)
	assert.InDelta(t, 130_569, got.MonthlyAllocation.Deposit, 1)
	assert.InDelta(t, 163_211, got.MonthlyAllocation.Bond, 1)
	assert.InDelta(t, 261_137, got.MonthlyAllocation.Stock, 1)
	assert.InDelta(t, 97_927, got.MonthlyAllocation.Etc, 1)
	assert.InDelta(t, 189_446_016, got.FutureValue, 2)

	none := a.Recommend(8000, 15000, 0)
	assert.Equal(t, domain.RiskAggressive, none.Profile)
	assert.Zero(t, none.MonthlySavings)
	assert.Zero(t, none.FutureValue)
	assert.Equal(t, int64(65), none.Allocation.Stock)
}
