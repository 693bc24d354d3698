// Package depreciation implements residential straight-line depreciation
// with the mid-month convention, MACRS accelerated schedules for cost-seg
// reclassified basis, and year-1 bonus depreciation.
package depreciation

import (
	"github.com/shopspring/decimal"

	"reiproforma/money"
	"reiproforma/realestate/domain"
)

// Component is one MACRS class's depreciation for one year.
type Component struct {
	MACRSClass string
	Basis      decimal.Decimal
	Year       int
	Amount     decimal.Decimal
	IsBonus    bool
}

// Yearly is the full breakdown of depreciation taken in a single year.
type Yearly struct {
	Year        int
	Residential decimal.Decimal
	FiveYear    decimal.Decimal
	SevenYear   decimal.Decimal
	FifteenYear decimal.Decimal
	Bonus       decimal.Decimal
	Total       decimal.Decimal
}

// Residential computes 27.5-year straight-line depreciation for one year
// using the mid-month convention table, keyed by the month placed in
// service. Years beyond 29 return zero.
func Residential(depreciableBasis decimal.Decimal, placedInServiceMonth, year int) decimal.Decimal {
	if year < 1 || year > len(residentialTable) {
		return decimal.Zero
	}
	monthIndex := placedInServiceMonth - 1
	if monthIndex < 0 || monthIndex > 11 {
		return decimal.Zero
	}
	pct := residentialTable[year-1][monthIndex].Div(decimal.NewFromInt(100))
	return money.Dollars(depreciableBasis.Mul(pct))
}

// MACRS computes accelerated depreciation for 5, 7, or 15-year property under
// the half-year convention for a single year. Years beyond the class's
// recovery vector return zero.
func MACRS(basis decimal.Decimal, macrsClass string, year int) decimal.Decimal {
	table := macrsTable(macrsClass)
	if table == nil || year < 1 || year > len(table) {
		return decimal.Zero
	}
	pct := table[year-1].Div(decimal.NewFromInt(100))
	return money.Dollars(basis.Mul(pct))
}

// ComputeYearlyDepreciation allocates depreciable basis across the
// residential and MACRS classes per the deal's cost-segregation fractions,
// applies bonus depreciation in year 1 only, and sums the result.
func ComputeYearlyDepreciation(assumptions domain.DealAssumptions, year int, bonusRates map[int]decimal.Decimal) Yearly {
	depBasis := assumptions.DepreciableBasis()
	costSeg := assumptions.CostSeg
	bonusRate := BonusRate(assumptions.PlacedInServiceYear, bonusRates)

	fiveYearBasis := depBasis.Mul(costSeg.FiveYear)
	sevenYearBasis := depBasis.Mul(costSeg.SevenYear)
	fifteenYearBasis := depBasis.Mul(costSeg.FifteenYear)
	residentialBasis := depBasis.Mul(costSeg.ResidentialPct())

	var bonus, fiveYearDep, sevenYearDep, fifteenYearDep decimal.Decimal

	if year == 1 && bonusRate.GreaterThan(decimal.Zero) {
		bonusFive := money.Dollars(fiveYearBasis.Mul(bonusRate))
		bonusSeven := money.Dollars(sevenYearBasis.Mul(bonusRate))
		bonusFifteen := money.Dollars(fifteenYearBasis.Mul(bonusRate))
		bonus = bonusFive.Add(bonusSeven).Add(bonusFifteen)

		fiveYearDep = MACRS(fiveYearBasis.Sub(bonusFive), "5", year)
		sevenYearDep = MACRS(sevenYearBasis.Sub(bonusSeven), "7", year)
		fifteenYearDep = MACRS(fifteenYearBasis.Sub(bonusFifteen), "15", year)
	} else {
		remainingFive, remainingSeven, remainingFifteen := fiveYearBasis, sevenYearBasis, fifteenYearBasis
		if bonusRate.GreaterThan(decimal.Zero) {
			retained := decimal.NewFromInt(1).Sub(bonusRate)
			remainingFive = fiveYearBasis.Mul(retained)
			remainingSeven = sevenYearBasis.Mul(retained)
			remainingFifteen = fifteenYearBasis.Mul(retained)
		}
		fiveYearDep = MACRS(remainingFive, "5", year)
		sevenYearDep = MACRS(remainingSeven, "7", year)
		fifteenYearDep = MACRS(remainingFifteen, "15", year)
	}

	residentialDep := Residential(residentialBasis, assumptions.PlacedInServiceMonth, year)

	total := residentialDep.Add(fiveYearDep).Add(sevenYearDep).Add(fifteenYearDep).Add(bonus)

	return Yearly{
		Year:        year,
		Residential: residentialDep,
		FiveYear:    fiveYearDep,
		SevenYear:   sevenYearDep,
		FifteenYear: fifteenYearDep,
		Bonus:       bonus,
		Total:       total,
	}
}

// TotalDepreciationTaken sums depreciation from year 1 through throughYear, inclusive.
func TotalDepreciationTaken(assumptions domain.DealAssumptions, throughYear int, bonusRates map[int]decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for y := 1; y <= throughYear; y++ {
		total = total.Add(ComputeYearlyDepreciation(assumptions, y, bonusRates).Total)
	}
	return total
}
