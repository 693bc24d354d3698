package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDealAssumptionsDerivedFields(t *testing.T) {
	a := DealAssumptions{
		PurchasePrice: decimal.NewFromInt(500_000),
		LTV:           decimal.NewFromFloat(0.80),
		ClosingCosts:  decimal.NewFromInt(5_000),
		LoanPoints:    decimal.Zero,
		LandValuePct:  decimal.NewFromFloat(0.20),
		RehabBudget:   RehabBudget{ConditionGrade: ConditionTurnkey},
	}

	assert.Equal(t, "400000", a.LoanAmount().String())
	assert.Equal(t, "100000", a.DownPayment().String())
	assert.Equal(t, "105000", a.TotalInitialInvestment().String())
	assert.Equal(t, "505000", a.TotalBasis().String())
	assert.Equal(t, "404000", a.DepreciableBasis().String())
}

func TestCostSegAllocationValidation(t *testing.T) {
	ok := CostSegAllocation{FiveYear: decimal.NewFromFloat(0.15), SevenYear: decimal.NewFromFloat(0.05)}
	assert.NoError(t, ok.Validate())
	assert.Equal(t, "0.2", ok.ReclassifiedTotal().String())
	assert.Equal(t, "0.8", ok.ResidentialPct().String())

	bad := CostSegAllocation{FiveYear: decimal.NewFromFloat(0.7), SevenYear: decimal.NewFromFloat(0.5)}
	assert.Error(t, bad.Validate())
}

func TestValidateRejectsOutOfRangeMonth(t *testing.T) {
	a := DealAssumptions{PlacedInServiceMonth: 13, HoldYears: 5, LTV: decimal.NewFromFloat(0.8)}
	err := a.Validate()
	assert.Error(t, err)
	var ic *InvalidConfigurationError
	assert.ErrorAs(t, err, &ic)
	assert.Equal(t, "placed_in_service_month", ic.Field)
}

func TestValidateRejectsNonPositiveHoldYears(t *testing.T) {
	a := DealAssumptions{PlacedInServiceMonth: 1, HoldYears: 0, LTV: decimal.NewFromFloat(0.8)}
	err := a.Validate()
	assert.Error(t, err)
}

func TestRehabBudgetTotalCostWithOverride(t *testing.T) {
	override := decimal.NewFromInt(9_000)
	budget := RehabBudget{
		ConditionGrade: ConditionMedium,
		LineItems: []RehabLineItem{
			{Category: RehabPaint, EstimatedCost: decimal.NewFromInt(1_000)},
			{Category: RehabKitchen, EstimatedCost: decimal.NewFromInt(2_000), OverrideCost: &override},
		},
	}
	assert.Equal(t, "10000", budget.TotalCost().String())

	total := decimal.NewFromInt(5_000)
	budget.TotalOverride = &total
	assert.Equal(t, "5000", budget.TotalCost().String())
}
