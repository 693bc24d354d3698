package proforma

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"reiproforma/realestate/domain"
)

func oneYearAssumptions() domain.DealAssumptions {
	return domain.DealAssumptions{
		PurchasePrice:        decimal.NewFromInt(200_000),
		ClosingCosts:         decimal.Zero,
		LandValuePct:         decimal.NewFromFloat(0.20),
		LTV:                  decimal.NewFromFloat(0.75),
		InterestRate:         decimal.NewFromFloat(0.06),
		LoanTermYears:        30,
		LoanPoints:           decimal.Zero,
		LoanType:             "conventional",
		MonthlyRent:          decimal.NewFromInt(1800),
		AnnualRentGrowth:     decimal.Zero,
		VacancyRate:          decimal.NewFromFloat(0.05),
		OtherIncome:          decimal.Zero,
		PropertyTax:          decimal.NewFromInt(2000),
		Insurance:            decimal.NewFromInt(1000),
		MaintenancePct:       decimal.NewFromFloat(0.05),
		ManagementPct:        decimal.NewFromFloat(0.08),
		CapexReservePct:      decimal.NewFromFloat(0.05),
		HOA:                  decimal.Zero,
		AnnualAppreciation:   decimal.NewFromFloat(0.03),
		HoldYears:            1,
		SellingCostsPct:      decimal.NewFromFloat(0.06),
		PlacedInServiceYear:  2026,
		PlacedInServiceMonth: 1,
		AnnualExpenseGrowth:  decimal.NewFromFloat(0.02),
	}
}

func oneYearInvestor() domain.InvestorTaxProfile {
	return domain.InvestorTaxProfile{
		FilingStatus:        domain.FilingSingle,
		AGI:                 decimal.NewFromInt(90_000),
		MarginalFederalRate: decimal.NewFromFloat(0.22),
		MarginalStateRate:   decimal.NewFromFloat(0.05),
		State:               "CA",
	}
}

func assertNearZero(t *testing.T, expected, actual decimal.Decimal, tolerance string) {
	t.Helper()
	diff := expected.Sub(actual).Abs()
	assert.True(t, diff.LessThan(decimal.RequireFromString(tolerance)),
		"expected %s to be within %s of %s, diff %s", actual.String(), tolerance, expected.String(), diff.String())
}

func TestRunSingleYearHoldCanonicalScenario(t *testing.T) {
	result := Run(oneYearAssumptions(), oneYearInvestor(), nil)

	assert.Len(t, result.YearlyProjections, 1)
	year1 := result.YearlyProjections[0]

	assert.Equal(t, "21600", year1.GrossRent.String())
	assert.Equal(t, "1080", year1.VacancyLoss.String())
	assert.Equal(t, "20520", year1.EffectiveGrossIncome.String())
	assert.Equal(t, "6888", year1.TotalExpenses.String())
	assert.Equal(t, "13632", year1.NOI.String())
	assert.Equal(t, "10791.96", year1.DebtService.String())
	assert.Equal(t, "2840.04", year1.CashFlowBeforeTax.String())
	assert.Equal(t, "5576", year1.Depreciation275.String())
	assert.Equal(t, "-893.87", year1.TaxableIncome.String())
	assert.Equal(t, "0", year1.SuspendedLoss.String())
	assert.Equal(t, "241.34", year1.TaxBenefit.String())
	assert.Equal(t, "3081.38", year1.CashFlowAfterTax.String())
	assert.Equal(t, "206000", year1.PropertyValue.String())
	assert.Equal(t, "148157.91", year1.LoanBalance.String())

	assert.Equal(t, "50000", result.TotalInitialInvestment.String())
	assert.Equal(t, "45482.09", result.Disposition.GrossEquityProceeds.String())
	assert.Equal(t, "0", result.Disposition.TotalTaxOnSale.String())
	assert.Equal(t, "45482.09", result.Disposition.AfterTaxSaleProceeds.String())

	assert.Equal(t, "48563.47", result.TotalProfit.Add(result.TotalInitialInvestment).String())
	assertNearZero(t, decimal.RequireFromString("-0.0335574"), result.BeforeTaxIRR, "0.0001")
	assertNearZero(t, decimal.RequireFromString("-0.0287306"), result.AfterTaxIRR, "0.0001")
	assertNearZero(t, decimal.RequireFromString("0.9712694"), result.EquityMultiple, "0.0001")
	assert.Equal(t, "241.34", result.TotalTaxBenefitOperations.String())
}

func TestRunProducesOneProjectionPerHoldYear(t *testing.T) {
	a := oneYearAssumptions()
	a.HoldYears = 3
	result := Run(a, oneYearInvestor(), nil)
	assert.Len(t, result.YearlyProjections, 3)
	assert.Equal(t, 1, result.YearlyProjections[0].Year)
	assert.Equal(t, 3, result.YearlyProjections[2].Year)
}

func TestRunHandlesHoldYearsLongerThanLoanTerm(t *testing.T) {
	a := oneYearAssumptions()
	a.LoanTermYears = 5
	a.HoldYears = 10

	var result domain.AnalysisResult
	assert.NotPanics(t, func() {
		result = Run(a, oneYearInvestor(), nil)
	})

	assert.Len(t, result.YearlyProjections, 10)
	for _, y := range result.YearlyProjections[5:] {
		assert.True(t, y.DebtService.IsZero())
		assert.True(t, y.LoanBalance.IsZero())
	}
	assert.True(t, result.Disposition.LoanPayoff.IsZero())
}

func TestRunCarriesSuspendedLossesAcrossYears(t *testing.T) {
	a := oneYearAssumptions()
	a.HoldYears = 2
	investor := oneYearInvestor()
	investor.AGI = decimal.NewFromInt(160_000) // allowance fully phased out, so each year's loss is suspended

	result := Run(a, investor, nil)
	assert.True(t, result.YearlyProjections[1].SuspendedLoss.GreaterThan(result.YearlyProjections[0].SuspendedLoss))
}
