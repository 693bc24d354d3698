package disposition

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"reiproforma/realestate/domain"
)

func TestLossOnSaleReleasesSuspendedLossesWithNoTax(t *testing.T) {
	assumptions := domain.DealAssumptions{
		PurchasePrice:   decimal.NewFromInt(500_000),
		SellingCostsPct: decimal.Zero,
	}
	investor := domain.InvestorTaxProfile{
		MarginalFederalRate: decimal.NewFromFloat(0.32),
		MarginalStateRate:   decimal.NewFromFloat(0.05),
	}

	result := Compute(assumptions, investor,
		decimal.NewFromInt(400_000), decimal.NewFromInt(375_000),
		decimal.NewFromInt(90_000), decimal.NewFromInt(50_000))

	assert.True(t, result.TotalGain.LessThanOrEqual(decimal.Zero))
	assert.True(t, result.RecaptureTax.IsZero())
	assert.Equal(t, "50000", result.SuspendedLossesReleased.String())
	assert.True(t, result.TaxBenefitFromRelease.GreaterThan(decimal.Zero))
	assert.True(t, result.AfterTaxSaleProceeds.GreaterThan(result.GrossEquityProceeds))
}

func TestGainWithRecaptureCanonicalScenario(t *testing.T) {
	assumptions := domain.DealAssumptions{
		PurchasePrice:   decimal.NewFromInt(505_000),
		ClosingCosts:    decimal.Zero,
		SellingCostsPct: decimal.NewFromInt(36_900).Div(decimal.NewFromInt(615_000)),
	}
	investor := domain.InvestorTaxProfile{
		MarginalFederalRate: decimal.NewFromFloat(0.32),
		MarginalStateRate:   decimal.NewFromFloat(0.093),
	}

	result := Compute(assumptions, investor,
		decimal.NewFromInt(615_000), decimal.NewFromInt(375_000),
		decimal.NewFromInt(90_000), decimal.Zero)

	assert.Equal(t, "163100.00", result.TotalGain.StringFixed(2))
	assert.Equal(t, "90000", result.DepreciationRecapture.String())
	assert.Equal(t, "73100.00", result.CapitalGain.StringFixed(2))
	assert.Equal(t, "22500.00", result.RecaptureTax.StringFixed(2))
}

func TestSuspendedLossReleaseSplitsBetweenGainOffsetAndRemaining(t *testing.T) {
	assumptions := domain.DealAssumptions{
		PurchasePrice:   decimal.NewFromInt(300_000),
		SellingCostsPct: decimal.Zero,
	}
	investor := domain.InvestorTaxProfile{
		MarginalFederalRate: decimal.NewFromFloat(0.24),
		MarginalStateRate:   decimal.Zero,
	}

	result := Compute(assumptions, investor,
		decimal.NewFromInt(500_000), decimal.Zero,
		decimal.NewFromInt(50_000), decimal.NewFromInt(300_000))

	assert.True(t, result.TotalGain.GreaterThan(decimal.Zero))
	assert.Equal(t, "300000", result.SuspendedLossesReleased.String())
	assert.True(t, result.TaxBenefitFromRelease.GreaterThan(decimal.Zero))
}
