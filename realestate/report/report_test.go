package report

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"reiproforma/realestate/domain"
)

func sampleResult() domain.AnalysisResult {
	return domain.AnalysisResult{
		YearlyProjections: []domain.YearlyProjection{
			{
				Year:                 1,
				GrossRent:            decimal.NewFromInt(21600),
				EffectiveGrossIncome: decimal.NewFromInt(20520),
				TotalExpenses:        decimal.NewFromInt(6888),
				NOI:                  decimal.NewFromInt(13632),
				DebtService:          decimal.NewFromFloat(10791.96),
				CashFlowBeforeTax:    decimal.NewFromFloat(2840.04),
				CashFlowAfterTax:     decimal.NewFromFloat(3081.38),
				PropertyValue:        decimal.NewFromInt(206000),
				LoanBalance:          decimal.NewFromFloat(148157.91),
				CapRate:              decimal.NewFromFloat(0.0662),
				CashOnCash:           decimal.NewFromFloat(0.0568),
				DSCR:                 decimal.NewFromFloat(1.26),
			},
		},
		Disposition: domain.DispositionResult{
			SalePrice:            decimal.NewFromInt(206000),
			GrossEquityProceeds:  decimal.NewFromFloat(45482.09),
			AfterTaxSaleProceeds: decimal.NewFromFloat(45482.09),
		},
		TotalInitialInvestment: decimal.NewFromInt(50000),
		BeforeTaxIRR:           decimal.NewFromFloat(-0.0335574),
		AfterTaxIRR:            decimal.NewFromFloat(-0.0287306),
		EquityMultiple:         decimal.NewFromFloat(0.9712694),
		TotalProfit:            decimal.NewFromFloat(-1436.53),
	}
}

func TestToCSVIncludesYearlyRowAndTotals(t *testing.T) {
	rep := New("123 Main St", sampleResult(), nil, nil)
	csv := rep.ToCSV()
	assert.Contains(t, csv, "Year,Gross Rent")
	assert.Contains(t, csv, "21600.00")
	assert.Contains(t, csv, "Before-Tax IRR")
}

func TestToJSONRoundTripsAddressAndResult(t *testing.T) {
	rep := New("123 Main St", sampleResult(), nil, nil)
	out := rep.ToJSON()
	assert.Contains(t, out, "123 Main St")
	assert.Contains(t, out, "\"BeforeTaxIRR\"")
}

func TestToCLIIncludesAllSections(t *testing.T) {
	rep := New("123 Main St", sampleResult(), nil, nil)
	cli := rep.ToCLI()
	assert.True(t, strings.Contains(cli, "YEAR-ONE SUMMARY"))
	assert.True(t, strings.Contains(cli, "MULTI-YEAR PROJECTION"))
	assert.True(t, strings.Contains(cli, "DISPOSITION (SALE) ANALYSIS"))
	assert.True(t, strings.Contains(cli, "RETURNS"))
}

func TestToCLIOmitsComparisonSectionWhenNil(t *testing.T) {
	rep := New("123 Main St", sampleResult(), nil, nil)
	cli := rep.ToCLI()
	assert.False(t, strings.Contains(cli, "REAL ESTATE VS. S&P 500"))
}

func TestToCLIIncludesComparisonSectionWhenPresent(t *testing.T) {
	comparison := domain.EquityComparison{
		REAfterTaxIRR:    decimal.NewFromFloat(0.09),
		SP500AfterTaxIRR: decimal.NewFromFloat(0.07),
	}
	rep := New("123 Main St", sampleResult(), nil, &comparison)
	cli := rep.ToCLI()
	assert.True(t, strings.Contains(cli, "REAL ESTATE VS. S&P 500"))
}
