package opportunitycost

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSP500EquityCurveCompoundsAnnualReturn(t *testing.T) {
	curve := SP500EquityCurve(decimal.NewFromInt(50_000), 3, decimal.NewFromFloat(0.10))
	assert.Len(t, curve, 4)
	assert.Equal(t, "50000", curve[0].String())
	assert.Equal(t, "55000.00", curve[1].String())
	assert.Equal(t, "60500.00", curve[2].String())
	assert.Equal(t, "66550.00", curve[3].String())
}

func TestSP500AfterTaxProceedsTaxesGainAsLTCGPlusNIITPlusState(t *testing.T) {
	proceeds := SP500AfterTaxProceeds(decimal.NewFromInt(50_000), decimal.NewFromFloat(66550.00), decimal.NewFromFloat(0.05), true)
	assert.Equal(t, "61783.60", proceeds.String())
}

func TestSP500AfterTaxProceedsPassesThroughNonPositiveGain(t *testing.T) {
	proceeds := SP500AfterTaxProceeds(decimal.NewFromInt(50_000), decimal.NewFromInt(45_000), decimal.NewFromFloat(0.05), true)
	assert.Equal(t, "45000", proceeds.String())
}

func TestSharpeRatioZeroVolatilityReturnsZero(t *testing.T) {
	assert.True(t, SharpeRatio(decimal.NewFromFloat(0.09), decimal.Zero, decimal.NewFromFloat(0.04)).IsZero())
}

func TestSharpeRatioComputesExcessReturnOverVolatility(t *testing.T) {
	sharpe := SharpeRatio(decimal.NewFromFloat(0.09), decimal.NewFromFloat(0.06), decimal.NewFromFloat(0.04))
	assert.Equal(t, "0.8333", sharpe.String())
}

func TestBuildComparisonProducesExpectedTotalsAndSharpe(t *testing.T) {
	initial := decimal.NewFromInt(50_000)
	reEquity := []decimal.Decimal{initial, decimal.NewFromInt(55_000), decimal.NewFromInt(60_000), decimal.NewFromInt(65_000)}
	reAfterTaxIRR := decimal.NewFromFloat(0.09)
	reTotalCashReturned := decimal.NewFromInt(70_000)

	comparison := BuildComparison(initial, reEquity, reAfterTaxIRR, reTotalCashReturned, 3, decimal.NewFromFloat(0.05), Options{NIITApplies: true})

	assert.Equal(t, "0.0731", comparison.SP500AfterTaxIRR.String())
	assert.Equal(t, "0.4", comparison.RETotalReturn.String())
	assert.Equal(t, "0.2357", comparison.SP500TotalReturn.String())
	assert.Equal(t, "0.8333", comparison.RESharpe.String())
	assert.Equal(t, "0.2207", comparison.SP500Sharpe.String())
	assert.Len(t, comparison.SP500YearlyEquity, 4)
}

func TestBuildComparisonZeroInitialEquityAvoidsDivideByZero(t *testing.T) {
	comparison := BuildComparison(decimal.Zero, nil, decimal.Zero, decimal.Zero, 5, decimal.NewFromFloat(0.05), Options{})
	assert.True(t, comparison.RETotalReturn.IsZero())
	assert.True(t, comparison.SP500AfterTaxIRR.IsZero())
}
