// Package excel exports a pro forma AnalysisResult to a workbook, one row
// per hold year plus a disposition/returns summary sheet.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"reiproforma/realestate/domain"
)

var yearlyColumns = []string{
	"Year", "Gross Rent", "Vacancy Loss", "EGI", "Total Expenses", "NOI",
	"Debt Service", "Cash Flow Before Tax", "Depreciation", "Taxable Income",
	"Suspended Loss", "Tax Benefit", "Cash Flow After Tax", "Property Value",
	"Loan Balance", "Cap Rate", "Cash on Cash", "DSCR",
}

// ExportAnalysis writes result to an xlsx workbook at filename: a "Yearly"
// sheet with one row per hold year and a "Summary" sheet with the
// disposition and whole-hold return metrics.
func ExportAnalysis(result domain.AnalysisResult, filename string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeYearlySheet(f, result); err != nil {
		return err
	}
	if err := writeSummarySheet(f, result); err != nil {
		return err
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("excel: delete default sheet: %w", err)
	}

	if err := f.SaveAs(filename); err != nil {
		return fmt.Errorf("excel: save %q: %w", filename, err)
	}
	return nil
}

func writeYearlySheet(f *excelize.File, result domain.AnalysisResult) error {
	sheet := "Yearly"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("excel: create sheet %q: %w", sheet, err)
	}

	for i, col := range yearlyColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, col); err != nil {
			return fmt.Errorf("excel: write header %q: %w", col, err)
		}
	}

	for rowIdx, y := range result.YearlyProjections {
		row := rowIdx + 2
		values := []any{
			y.Year,
			y.GrossRent.InexactFloat64(),
			y.VacancyLoss.InexactFloat64(),
			y.EffectiveGrossIncome.InexactFloat64(),
			y.TotalExpenses.InexactFloat64(),
			y.NOI.InexactFloat64(),
			y.DebtService.InexactFloat64(),
			y.CashFlowBeforeTax.InexactFloat64(),
			y.TotalDepreciation.InexactFloat64(),
			y.TaxableIncome.InexactFloat64(),
			y.SuspendedLoss.InexactFloat64(),
			y.TaxBenefit.InexactFloat64(),
			y.CashFlowAfterTax.InexactFloat64(),
			y.PropertyValue.InexactFloat64(),
			y.LoanBalance.InexactFloat64(),
			y.CapRate.InexactFloat64(),
			y.CashOnCash.InexactFloat64(),
			y.DSCR.InexactFloat64(),
		}
		for colIdx, v := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, row)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("excel: write row %d: %w", y.Year, err)
			}
		}
	}

	return nil
}

func writeSummarySheet(f *excelize.File, result domain.AnalysisResult) error {
	sheet := "Summary"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("excel: create sheet %q: %w", sheet, err)
	}

	rows := [][2]any{
		{"Total Initial Investment", result.TotalInitialInvestment.InexactFloat64()},
		{"Sale Price", result.Disposition.SalePrice.InexactFloat64()},
		{"Total Tax on Sale", result.Disposition.TotalTaxOnSale.InexactFloat64()},
		{"After-Tax Sale Proceeds", result.Disposition.AfterTaxSaleProceeds.InexactFloat64()},
		{"Before-Tax IRR", result.BeforeTaxIRR.InexactFloat64()},
		{"After-Tax IRR", result.AfterTaxIRR.InexactFloat64()},
		{"Equity Multiple", result.EquityMultiple.InexactFloat64()},
		{"Average Cash on Cash", result.AverageCashOnCash.InexactFloat64()},
		{"Total Profit", result.TotalProfit.InexactFloat64()},
		{"Net Tax Impact", result.NetTaxImpact.InexactFloat64()},
	}

	for i, r := range rows {
		labelCell, _ := excelize.CoordinatesToCellName(1, i+1)
		valueCell, _ := excelize.CoordinatesToCellName(2, i+1)
		if err := f.SetCellValue(sheet, labelCell, r[0]); err != nil {
			return fmt.Errorf("excel: write summary label: %w", err)
		}
		if err := f.SetCellValue(sheet, valueCell, r[1]); err != nil {
			return fmt.Errorf("excel: write summary value: %w", err)
		}
	}

	return nil
}
