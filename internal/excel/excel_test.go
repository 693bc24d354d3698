package excel

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"

	"reiproforma/realestate/domain"
)

func sampleAnalysis() domain.AnalysisResult {
	return domain.AnalysisResult{
		YearlyProjections: []domain.YearlyProjection{
			{Year: 1, GrossRent: decimal.NewFromInt(21600), NOI: decimal.NewFromInt(13632)},
			{Year: 2, GrossRent: decimal.NewFromInt(22032), NOI: decimal.NewFromInt(14000)},
		},
		Disposition: domain.DispositionResult{
			SalePrice:            decimal.NewFromInt(206000),
			AfterTaxSaleProceeds: decimal.NewFromFloat(45482.09),
		},
		TotalInitialInvestment: decimal.NewFromInt(50000),
		BeforeTaxIRR:           decimal.NewFromFloat(-0.033),
	}
}

func TestExportAnalysisWritesYearlyAndSummarySheets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "analysis.xlsx")
	err := ExportAnalysis(sampleAnalysis(), path)
	assert.NoError(t, err)

	f, err := excelize.OpenFile(path)
	assert.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.Contains(t, sheets, "Yearly")
	assert.Contains(t, sheets, "Summary")
	assert.NotContains(t, sheets, "Sheet1")

	header, err := f.GetCellValue("Yearly", "A1")
	assert.NoError(t, err)
	assert.Equal(t, "Year", header)

	year2, err := f.GetCellValue("Yearly", "A3")
	assert.NoError(t, err)
	assert.Equal(t, "2", year2)
}
