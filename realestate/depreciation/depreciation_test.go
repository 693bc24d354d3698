package depreciation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"reiproforma/realestate/domain"
)

func canonicalAssumptions() domain.DealAssumptions {
	return domain.DealAssumptions{
		PurchasePrice:        decimal.NewFromInt(500_000),
		ClosingCosts:         decimal.Zero,
		LandValuePct:         decimal.NewFromFloat(0.20),
		LTV:                  decimal.NewFromFloat(0.80),
		PlacedInServiceYear:  2025,
		PlacedInServiceMonth: 1,
	}
}

func TestResidentialMidMonthConventionVariesByMonth(t *testing.T) {
	basis := decimal.NewFromInt(400_000)

	month1 := Residential(basis, 1, 1)
	month12 := Residential(basis, 12, 1)

	assert.Equal(t, "13940.00", month1.StringFixed(2)) // 3.485% of 400000
	assert.True(t, month12.LessThan(month1))
}

func TestResidentialYearsTwoToTwentySevenAreFlatRate(t *testing.T) {
	basis := decimal.NewFromInt(400_000)
	year2 := Residential(basis, 1, 2)
	year10 := Residential(basis, 1, 10)
	assert.Equal(t, year2.String(), year10.String())
	assert.Equal(t, "14544.00", year2.StringFixed(2)) // 3.636% of 400000
}

func TestResidentialYearsTwentyEightAndTwentyNineAreMonthIndependent(t *testing.T) {
	basis := decimal.NewFromInt(400_000)
	for _, year := range []int{28, 29} {
		month1 := Residential(basis, 1, year)
		month12 := Residential(basis, 12, year)
		assert.Equal(t, month1.String(), month12.String())
		assert.Equal(t, "14544.00", month1.StringFixed(2)) // 3.636% of 400000
	}
}

func TestResidentialBeyondYear29IsZero(t *testing.T) {
	basis := decimal.NewFromInt(400_000)
	assert.True(t, Residential(basis, 1, 30).IsZero())
}

func TestMACRSClassSumsToOneHundredPercent(t *testing.T) {
	for class, table := range map[string][]decimal.Decimal{"5": macrs5Year, "7": macrs7Year, "15": macrs15Year} {
		sum := decimal.Zero
		for _, pct := range table {
			sum = sum.Add(pct)
		}
		assert.True(t, sum.Sub(decimal.NewFromInt(100)).Abs().LessThan(decimal.NewFromFloat(0.01)), "class %s sums to %s", class, sum)
	}
}

func TestMACRSBeyondRecoveryVectorIsZero(t *testing.T) {
	assert.True(t, MACRS(decimal.NewFromInt(10_000), "5", 7).IsZero())
	assert.True(t, MACRS(decimal.NewFromInt(10_000), "15", 17).IsZero())
}

func TestBonusRateDefaultsAndOverride(t *testing.T) {
	assert.Equal(t, "1", BonusRate(2025, nil).String())
	assert.Equal(t, "0.8", BonusRate(2023, nil).String())
	assert.True(t, BonusRate(2030, nil).IsZero())

	override := map[int]decimal.Decimal{2030: decimal.NewFromFloat(0.4)}
	assert.Equal(t, "0.4", BonusRate(2030, override).String())
}

func TestComputeYearlyDepreciationNoBonusNoCostSeg(t *testing.T) {
	a := canonicalAssumptions()
	noBonus := map[int]decimal.Decimal{2025: decimal.Zero}

	yearly := ComputeYearlyDepreciation(a, 1, noBonus)

	assert.True(t, yearly.Bonus.IsZero())
	assert.True(t, yearly.FiveYear.IsZero())
	assert.True(t, yearly.Residential.GreaterThan(decimal.Zero))
	assert.Equal(t, yearly.Total.String(), yearly.Residential.String())
}

func TestCostSegregationProducesBonusAndHigherYearOneTotal(t *testing.T) {
	base := canonicalAssumptions()

	withoutCostSeg := ComputeYearlyDepreciation(base, 1, nil)

	base.CostSeg = domain.CostSegAllocation{FiveYear: decimal.NewFromFloat(0.20)}
	withCostSeg := ComputeYearlyDepreciation(base, 1, nil)

	assert.True(t, withCostSeg.Bonus.GreaterThan(decimal.Zero))
	assert.True(t, withCostSeg.Total.GreaterThan(withoutCostSeg.Total))
}

func TestTotalDepreciationTakenAccumulates(t *testing.T) {
	a := canonicalAssumptions()
	a.CostSeg = domain.CostSegAllocation{FiveYear: decimal.NewFromFloat(0.20)}

	year1 := ComputeYearlyDepreciation(a, 1, nil).Total
	year2 := ComputeYearlyDepreciation(a, 2, nil).Total

	total := TotalDepreciationTaken(a, 2, nil)
	assert.Equal(t, year1.Add(year2).String(), total.String())
}
