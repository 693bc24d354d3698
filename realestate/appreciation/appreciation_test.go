package appreciation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"reiproforma/realestate/domain"
)

func TestGradeAWithDefaultCPINoWalkability(t *testing.T) {
	rate := Estimate(domain.GradeA, nil, nil)
	// 0.5*0.045 + 0.3*0.03 + 0.2*0 = 0.0315, rounded to 0.001 -> 0.032
	assert.Equal(t, "0.0320", rate.StringFixed(4))
}

func TestWalkScoreAboveThresholdAddsPremium(t *testing.T) {
	score := 85
	rate := Estimate(domain.GradeC, nil, &score)
	// 0.5*0.025 + 0.3*0.03 + 0.2*0.005 = 0.0225, rounded to 0.001 -> 0.023
	assert.Equal(t, "0.0230", rate.StringFixed(4))
}

func TestClampsToFloor(t *testing.T) {
	low := decimal.Zero
	rate := Estimate(domain.GradeF, &low, nil)
	assert.True(t, rate.GreaterThanOrEqual(decimal.NewFromFloat(0.005)))
}

func TestClampsToCeiling(t *testing.T) {
	high := decimal.NewFromFloat(0.20)
	rate := Estimate(domain.GradeA, &high, nil)
	assert.True(t, rate.LessThanOrEqual(decimal.NewFromFloat(0.060)))
}

func TestUnknownGradeFallsBackToGradeC(t *testing.T) {
	rate := Estimate(domain.NeighborhoodGrade("unknown"), nil, nil)
	known := Estimate(domain.GradeC, nil, nil)
	assert.Equal(t, known.String(), rate.String())
}
