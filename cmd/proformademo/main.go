// Command proformademo runs the full smart-assumption-to-report pipeline
// against one illustrative deal: assumption resolution, the year-by-year pro
// forma, the S&P 500 opportunity-cost comparison, and a CLI report.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"reiproforma/internal/config"
	"reiproforma/internal/telemetry"
	"reiproforma/realestate/assumptionbuilder"
	"reiproforma/realestate/domain"
	"reiproforma/realestate/financing"
	"reiproforma/realestate/opportunitycost"
	"reiproforma/realestate/proforma"
	"reiproforma/realestate/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	closer, err := telemetry.SetGlobal()
	if err != nil {
		fmt.Fprintln(os.Stderr, "telemetry:", err)
		os.Exit(1)
	}
	defer closer.Close()

	property := domain.PropertyDetail{
		Address: domain.Address{
			Street: "456 Maple Street",
			City:   "Austin",
			State:  "TX",
			Zip:    "78701",
			County: "Travis",
		},
		SquareFeet:   3200,
		YearBuilt:    1995,
		PropertyType: domain.PropertyTypeMultiFamily,
	}

	purchasePrice := decimal.NewFromInt(640_000)
	rent := decimal.NewFromInt(4300)
	overrides := domain.UserOverrides{
		PurchasePrice: &purchasePrice,
		MonthlyRent:   &rent,
	}

	assumptions, manifest, err := assumptionbuilder.Build(
		property,
		nil,
		domain.MacroContext{},
		overrides,
		domain.ConditionTurnkey,
		nil,
		nil,
	)
	if err != nil {
		slog.Error("assumptionbuilder failed", "error", err)
		os.Exit(1)
	}

	investor := domain.InvestorTaxProfile{
		FilingStatus:        domain.FilingMFJ,
		AGI:                 decimal.NewFromInt(180_000),
		MarginalFederalRate: decimal.NewFromFloat(0.24),
		MarginalStateRate:   decimal.NewFromFloat(0.0),
		State:               "TX",
	}

	var result domain.AnalysisResult
	if err := telemetry.RunStage(context.Background(), "proforma", func() error {
		result = proforma.Run(assumptions, investor, nil)
		return nil
	}); err != nil {
		slog.Error("proforma run failed", "error", err)
		os.Exit(1)
	}

	comparison := opportunitycost.BuildComparison(
		result.TotalInitialInvestment,
		equityCurve(result),
		result.AfterTaxIRR,
		result.TotalProfit.Add(result.TotalInitialInvestment),
		assumptions.HoldYears,
		investor.MarginalStateRate,
		opportunitycost.Options{NIITApplies: investor.NIITApplies()},
	)

	rep := report.New(property.Address.Street, result, &manifest, &comparison)
	rep.Print()

	if err := os.MkdirAll(cfg.ReportOutputDir, 0o755); err != nil {
		slog.Warn("could not create report output dir", "path", cfg.ReportOutputDir, "error", err)
		return
	}

	outputPath := cfg.ReportOutputDir + "/demo-analysis.csv"
	if err := rep.ToFile(outputPath, report.FormatCSV); err != nil {
		slog.Warn("could not write report file", "path", outputPath, "error", err)
	}

	loan := dealLoan(assumptions)
	fmt.Print(loan.LoanSummary())

	chartPath := cfg.ReportOutputDir + "/demo-amortization.html"
	if _, err := loan.PlotSummary(chartPath); err != nil {
		slog.Warn("could not render amortization chart", "path", chartPath, "error", err)
	}
}

// dealLoan adapts a resolved deal's financing terms into the financing
// package's Loan type, so the same amortization schedule the pro forma ran
// on can also be summarized and charted.
func dealLoan(assumptions domain.DealAssumptions) *financing.Loan {
	startDate := time.Date(assumptions.PlacedInServiceYear, time.Month(assumptions.PlacedInServiceMonth), 1, 0, 0, 0, 0, time.UTC)
	endDate := startDate.AddDate(assumptions.LoanTermYears, 0, -1)
	ratePercent, _ := assumptions.InterestRate.Mul(decimal.NewFromInt(100)).Float64()

	return &financing.Loan{
		HomePrice:    assumptions.PurchasePrice,
		DownPayment:  assumptions.DownPayment(),
		InterestRate: financing.NewInterestRate(ratePercent),
		StartDate:    startDate,
		EndDate:      endDate,
		TermYears:    assumptions.LoanTermYears,
		HoldYears:    assumptions.HoldYears,
	}
}

func equityCurve(result domain.AnalysisResult) []decimal.Decimal {
	curve := make([]decimal.Decimal, 0, len(result.YearlyProjections)+1)
	curve = append(curve, result.TotalInitialInvestment)
	for _, y := range result.YearlyProjections {
		curve = append(curve, y.Equity)
	}
	return curve
}
