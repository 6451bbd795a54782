package service

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAffordability_Evaluate(t *testing.T) {
	e := NewAffordabilityEvaluator()

	tests := []struct {
		name         string
		salary       float64
		assets       float64
		price        float64
		yearly       int64
		salaryRatio  float64
		assetRatio   float64
		salaryBurden bool
		assetBurden  bool
	}{
		{"scenario A", 3600, 2000, 2500, 9_214_120, 25.6, 125.0, false, true},
		{"scenario B", 8000, 15000, 3000, 12_142_400, 15.2, 20.0, false, false},
		{"salary burden", 3000, 20000, 2500, 9_300_000, 31.0, 12.5, true, false},
		{"exactly at limits", 1000, 5000, 2500, 3_000_000, 30.0, 50.0, false, false},
		{"just over limits rounds down", 10000, 10000, 5003, 30_040_000, 30.0, 50.0, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Evaluate(tt.salary, tt.assets, tt.price, tt.yearly)
			assert.Equal(t, tt.salaryRatio, got.SalaryRatio)
			assert.Equal(t, tt.assetRatio, got.AssetRatio)
			assert.Equal(t, tt.salaryBurden, got.IsSalaryBurden)
			assert.Equal(t, tt.assetBurden, got.IsAssetBurden)
		})
	}
}

func TestAffordability_ZeroDenominators(t *testing.T) {
	got := NewAffordabilityEvaluator().Evaluate(0, 0, 2500, 9_000_000)

	assert.Equal(t, Unbounded, got.AssetRatio)
	assert.Equal(t, Unbounded, got.SalaryRatio)
	assert.True(t, got.IsAssetBurden)
	assert.True(t, got.IsSalaryBurden)

	_, err := json.Marshal(got)
	require.NoError(t, err, "ratios must stay JSON encodable")
}
