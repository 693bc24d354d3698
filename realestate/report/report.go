// Package report formats a pro forma AnalysisResult for a human (CLI table),
// a machine (JSON), or a spreadsheet import (CSV).
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"

	"reiproforma/realestate/domain"
)

// OutputFormat selects the rendering for ToFile.
type OutputFormat int

const (
	FormatCLI OutputFormat = iota
	FormatJSON
	FormatCSV
)

// Report wraps one analysis run plus the assumption manifest that produced
// it, for formatting and export.
type Report struct {
	Address   string
	Result    domain.AnalysisResult
	Manifest  *domain.AssumptionManifest
	Comparison *domain.EquityComparison
}

func New(address string, result domain.AnalysisResult, manifest *domain.AssumptionManifest, comparison *domain.EquityComparison) *Report {
	return &Report{Address: address, Result: result, Manifest: manifest, Comparison: comparison}
}

// Print writes the CLI rendering to stdout.
func (r *Report) Print() {
	fmt.Print(r.ToCLI())
}

// ToFile renders in format and writes it to filename.
func (r *Report) ToFile(filename string, format OutputFormat) error {
	var content string
	switch format {
	case FormatJSON:
		content = r.ToJSON()
	case FormatCSV:
		content = r.ToCSV()
	default:
		content = r.ToCLI()
	}
	return os.WriteFile(filename, []byte(content), 0o644)
}

// ToJSON returns the full result (and comparison, if present) as JSON.
func (r *Report) ToJSON() string {
	payload := struct {
		Address    string                   `json:"address"`
		Result     domain.AnalysisResult    `json:"result"`
		Comparison *domain.EquityComparison `json:"equity_comparison,omitempty"`
	}{Address: r.Address, Result: r.Result, Comparison: r.Comparison}

	data, _ := json.MarshalIndent(payload, "", "  ")
	return string(data)
}

// ToCSV returns the yearly projections plus headline totals as CSV.
func (r *Report) ToCSV() string {
	var sb strings.Builder
	res := r.Result

	sb.WriteString("Year,Gross Rent,EGI,Total Expenses,NOI,Debt Service,CFBT,Depreciation,Taxable Income,Tax Benefit,CFAT,Property Value,Loan Balance,Cap Rate,Cash on Cash,DSCR\n")
	for _, y := range res.YearlyProjections {
		sb.WriteString(fmt.Sprintf("%d,%s,%s,%s,%s,%s,%s,%s,%s,%s,%s,%s,%s,%s,%s,%s\n",
			y.Year,
			y.GrossRent.Round(2).String(),
			y.EffectiveGrossIncome.Round(2).String(),
			y.TotalExpenses.Round(2).String(),
			y.NOI.Round(2).String(),
			y.DebtService.Round(2).String(),
			y.CashFlowBeforeTax.Round(2).String(),
			y.TotalDepreciation.Round(2).String(),
			y.TaxableIncome.Round(2).String(),
			y.TaxBenefit.Round(2).String(),
			y.CashFlowAfterTax.Round(2).String(),
			y.PropertyValue.Round(2).String(),
			y.LoanBalance.Round(2).String(),
			y.CapRate.Round(4).String(),
			y.CashOnCash.Round(4).String(),
			y.DSCR.Round(4).String(),
		))
	}

	sb.WriteString("\nMetric,Value\n")
	sb.WriteString(fmt.Sprintf("Total Initial Investment,%s\n", res.TotalInitialInvestment.Round(2).String()))
	sb.WriteString(fmt.Sprintf("Before-Tax IRR,%s\n", res.BeforeTaxIRR.Round(4).String()))
	sb.WriteString(fmt.Sprintf("After-Tax IRR,%s\n", res.AfterTaxIRR.Round(4).String()))
	sb.WriteString(fmt.Sprintf("Equity Multiple,%s\n", res.EquityMultiple.Round(4).String()))
	sb.WriteString(fmt.Sprintf("Average Cash on Cash,%s\n", res.AverageCashOnCash.Round(4).String()))
	sb.WriteString(fmt.Sprintf("Total Profit,%s\n", res.TotalProfit.Round(2).String()))
	sb.WriteString(fmt.Sprintf("Net Tax Impact,%s\n", res.NetTaxImpact.Round(2).String()))

	return sb.String()
}

// ToCLI returns the full tablewriter-rendered CLI report.
func (r *Report) ToCLI() string {
	var sb strings.Builder
	res := r.Result

	sb.WriteString("\n")
	sb.WriteString("=============================================================================\n")
	sb.WriteString("                        REI PRO FORMA ANALYSIS\n")
	sb.WriteString("=============================================================================\n")

	if r.Address != "" {
		sb.WriteString(fmt.Sprintf("\n  Property: %s\n", r.Address))
	}
	sb.WriteString(fmt.Sprintf("  Hold Period: %d years\n", len(res.YearlyProjections)))

	sb.WriteString(r.formatSummarySection())
	sb.WriteString(r.formatProjectionSection())
	sb.WriteString(r.formatDispositionSection())
	sb.WriteString(r.formatReturnsSection())
	if r.Comparison != nil {
		sb.WriteString(r.formatComparisonSection())
	}
	if r.Manifest != nil {
		sb.WriteString(r.formatManifestSection())
	}

	return sb.String()
}

func (r *Report) formatSummarySection() string {
	var sb strings.Builder
	res := r.Result
	if len(res.YearlyProjections) == 0 {
		return sb.String()
	}
	y1 := res.YearlyProjections[0]

	sb.WriteString("\n-----------------------------------------------------------------------------\n")
	sb.WriteString("  YEAR-ONE SUMMARY\n")
	sb.WriteString("-----------------------------------------------------------------------------\n")

	table := tablewriter.NewTable(&sb)
	table.Append([]string{"Gross Rent", formatMoney(y1.GrossRent)})
	table.Append([]string{"Effective Gross Income", formatMoney(y1.EffectiveGrossIncome)})
	table.Append([]string{"Total Operating Expenses", formatMoney(y1.TotalExpenses)})
	table.Append([]string{"Net Operating Income", formatMoney(y1.NOI)})
	table.Append([]string{"Debt Service", formatMoney(y1.DebtService)})
	table.Append([]string{"Cash Flow Before Tax", formatMoney(y1.CashFlowBeforeTax)})
	table.Append([]string{"Cash Flow After Tax", formatMoney(y1.CashFlowAfterTax)})
	table.Append([]string{"Cap Rate", formatPct(y1.CapRate)})
	table.Append([]string{"Cash on Cash", formatPct(y1.CashOnCash)})
	table.Append([]string{"DSCR", y1.DSCR.Round(2).String()})
	table.Render()

	return sb.String()
}

func (r *Report) formatProjectionSection() string {
	var sb strings.Builder
	projections := r.Result.YearlyProjections

	sb.WriteString("\n-----------------------------------------------------------------------------\n")
	sb.WriteString("  MULTI-YEAR PROJECTION\n")
	sb.WriteString("-----------------------------------------------------------------------------\n")

	table := tablewriter.NewTable(&sb)
	table.Header("Year", "NOI", "CFBT", "CFAT", "Loan Balance", "Property Value", "DSCR")

	for _, p := range projections {
		table.Append([]string{
			fmt.Sprintf("%d", p.Year),
			formatMoney(p.NOI),
			formatMoney(p.CashFlowBeforeTax),
			formatMoney(p.CashFlowAfterTax),
			formatMoney(p.LoanBalance),
			formatMoney(p.PropertyValue),
			p.DSCR.Round(2).String(),
		})
	}
	table.Render()

	return sb.String()
}

func (r *Report) formatDispositionSection() string {
	var sb strings.Builder
	d := r.Result.Disposition

	sb.WriteString("\n-----------------------------------------------------------------------------\n")
	sb.WriteString("  DISPOSITION (SALE) ANALYSIS\n")
	sb.WriteString("-----------------------------------------------------------------------------\n")

	table := tablewriter.NewTable(&sb)
	table.Append([]string{"Sale Price", formatMoney(d.SalePrice)})
	table.Append([]string{"Selling Costs", formatMoney(d.SellingCosts)})
	table.Append([]string{"Loan Payoff", formatMoney(d.LoanPayoff)})
	table.Append([]string{"Gross Equity Proceeds", formatMoney(d.GrossEquityProceeds)})
	table.Append([]string{"Total Gain", formatMoney(d.TotalGain)})
	table.Append([]string{"Depreciation Recapture", formatMoney(d.DepreciationRecapture)})
	table.Append([]string{"Capital Gain", formatMoney(d.CapitalGain)})
	table.Append([]string{"Total Tax on Sale", formatMoney(d.TotalTaxOnSale)})
	table.Append([]string{"After-Tax Sale Proceeds", formatMoney(d.AfterTaxSaleProceeds)})
	table.Render()

	return sb.String()
}

func (r *Report) formatReturnsSection() string {
	var sb strings.Builder
	res := r.Result

	sb.WriteString("\n-----------------------------------------------------------------------------\n")
	sb.WriteString("  RETURNS\n")
	sb.WriteString("-----------------------------------------------------------------------------\n")

	table := tablewriter.NewTable(&sb)
	table.Append([]string{"Total Initial Investment", formatMoney(res.TotalInitialInvestment)})
	table.Append([]string{"Before-Tax IRR", formatPct(res.BeforeTaxIRR)})
	table.Append([]string{"After-Tax IRR", formatPct(res.AfterTaxIRR)})
	table.Append([]string{"Equity Multiple", res.EquityMultiple.Round(2).String() + "x"})
	table.Append([]string{"Average Cash on Cash", formatPct(res.AverageCashOnCash)})
	table.Append([]string{"Total Profit", formatMoney(res.TotalProfit)})
	table.Append([]string{"Net Tax Impact", formatMoney(res.NetTaxImpact)})
	table.Render()

	return sb.String()
}

func (r *Report) formatComparisonSection() string {
	var sb strings.Builder
	c := r.Comparison

	sb.WriteString("\n-----------------------------------------------------------------------------\n")
	sb.WriteString("  REAL ESTATE VS. S&P 500\n")
	sb.WriteString("-----------------------------------------------------------------------------\n")

	table := tablewriter.NewTable(&sb)
	table.Header("", "Real Estate", "S&P 500")
	table.Append([]string{"After-Tax IRR", formatPct(c.REAfterTaxIRR), formatPct(c.SP500AfterTaxIRR)})
	table.Append([]string{"Total Return", formatPct(c.RETotalReturn), formatPct(c.SP500TotalReturn)})
	table.Append([]string{"Sharpe Ratio", c.RESharpe.Round(2).String(), c.SP500Sharpe.Round(2).String()})
	table.Render()

	return sb.String()
}

func (r *Report) formatManifestSection() string {
	var sb strings.Builder
	m := r.Manifest

	sb.WriteString("\n-----------------------------------------------------------------------------\n")
	sb.WriteString("  ASSUMPTION SOURCES\n")
	sb.WriteString("-----------------------------------------------------------------------------\n")

	table := tablewriter.NewTable(&sb)
	table.Header("Field", "Value", "Source", "Confidence")
	for field, d := range m.Details {
		table.Append([]string{field, d.Value.Round(2).String(), string(d.Source), string(d.Confidence)})
	}
	table.Render()

	return sb.String()
}

func formatMoney(d decimal.Decimal) string {
	if d.LessThan(decimal.Zero) {
		return "-$" + d.Abs().Round(0).String()
	}
	return "$" + d.Round(0).String()
}

func formatPct(d decimal.Decimal) string {
	return d.Mul(decimal.NewFromInt(100)).Round(2).String() + "%"
}
