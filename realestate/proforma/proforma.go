// Package proforma orchestrates every engine sub-package into the single
// entry point a caller actually needs: given a deal's resolved assumptions
// and an investor's tax profile, run the full multi-year hold and return
// the complete analysis, disposition included.
package proforma

import (
	"github.com/shopspring/decimal"

	"reiproforma/money"
	"reiproforma/realestate/cashflow"
	"reiproforma/realestate/depreciation"
	"reiproforma/realestate/disposition"
	"reiproforma/realestate/domain"
	"reiproforma/realestate/financing"
	"reiproforma/realestate/irr"
	"reiproforma/realestate/passiveactivity"
)

// debtForYear returns the yearly debt window for year, or a zero-service,
// zero-balance window once the loan has been paid off — a hold that
// outlasts the loan term (yearlyDebt shorter than HoldYears) is a valid
// deal, not a bug; the loan is simply retired early and the property is
// held free and clear for the remaining years.
func debtForYear(yearlyDebt []financing.YearlyDebt, year int) financing.YearlyDebt {
	if year-1 < len(yearlyDebt) {
		return yearlyDebt[year-1]
	}
	return financing.YearlyDebt{
		Year:          year,
		Principal:     decimal.Zero,
		Interest:      decimal.Zero,
		DebtService:   decimal.Zero,
		EndingBalance: decimal.Zero,
	}
}

// Run executes the complete pro forma analysis for one deal: amortization,
// yearly income/expense/depreciation/tax projections, disposition, and the
// summary IRR/equity-multiple/profit metrics.
func Run(assumptions domain.DealAssumptions, investor domain.InvestorTaxProfile, bonusRates map[int]decimal.Decimal) domain.AnalysisResult {
	amort := financing.AmortizationSchedule(assumptions.LoanAmount(), assumptions.InterestRate, assumptions.LoanTermYears, assumptions.HoldYears)
	yearlyDebt := financing.YearlyDebtSummary(amort)

	totalInitialInvestment := assumptions.TotalInitialInvestment()

	var projections []domain.YearlyProjection
	priorSuspended := decimal.Zero
	totalDep := decimal.Zero
	totalTaxBenefit := decimal.Zero

	beforeTaxCFs := []decimal.Decimal{totalInitialInvestment.Neg()}
	afterTaxCFs := []decimal.Decimal{totalInitialInvestment.Neg()}

	for year := 1; year <= assumptions.HoldYears; year++ {
		debtYear := debtForYear(yearlyDebt, year)
		annualDebtService := debtYear.DebtService

		gr := cashflow.GrossRent(assumptions, year)
		egi, vacancyLoss := cashflow.EffectiveGrossIncome(assumptions, year)
		expenses := cashflow.OperatingExpenses(assumptions, year)

		yearNOI := cashflow.NOI(assumptions, year)
		cfbt := cashflow.CashFlowBeforeTax(yearNOI, annualDebtService)

		dep := depreciation.ComputeYearlyDepreciation(assumptions, year, bonusRates)
		totalDep = totalDep.Add(dep.Total)

		taxable := passiveactivity.TaxableRentalIncome(yearNOI, debtYear.Interest, dep.Total)

		paEntry := passiveactivity.ComputePassiveActivity(taxable, investor, priorSuspended, year)
		priorSuspended = paEntry.CumulativeSuspended
		totalTaxBenefit = totalTaxBenefit.Add(paEntry.TaxBenefit)

		cfat := cfbt.Add(paEntry.TaxBenefit)

		propValue := cashflow.PropertyValue(assumptions, year)
		equity := propValue.Sub(debtYear.EndingBalance)

		yearCapRate := cashflow.CapRate(yearNOI, assumptions.PurchasePrice)
		yearCoC := cashflow.CashOnCash(cfbt, totalInitialInvestment)
		yearDSCR := cashflow.DSCR(yearNOI, annualDebtService)

		rentMonths := cashflow.RentMonths(assumptions, year)

		projections = append(projections, domain.YearlyProjection{
			Year:                 year,
			GrossRent:            gr,
			VacancyLoss:          vacancyLoss,
			OtherIncome:          assumptions.OtherIncome,
			EffectiveGrossIncome: egi,
			PropertyTax:          expenses.PropertyTax,
			Insurance:            expenses.Insurance,
			Maintenance:          expenses.Maintenance,
			Management:           expenses.Management,
			CapexReserve:         expenses.CapexReserve,
			HOA:                  expenses.HOA,
			TotalExpenses:        expenses.Total,
			NOI:                  yearNOI,
			DebtService:          annualDebtService,
			CashFlowBeforeTax:    cfbt,
			PrincipalPaid:        debtYear.Principal,
			InterestPaid:         debtYear.Interest,
			LoanBalance:          debtYear.EndingBalance,
			Depreciation275:      dep.Residential,
			DepreciationCostSeg:  dep.FiveYear.Add(dep.SevenYear).Add(dep.FifteenYear).Add(dep.Bonus),
			TotalDepreciation:    dep.Total,
			TaxableIncome:        taxable,
			PassiveLoss:          paEntry.RentalIncomeOrLoss,
			SuspendedLoss:        paEntry.CumulativeSuspended,
			TaxBenefit:           paEntry.TaxBenefit,
			CashFlowAfterTax:     cfat,
			PropertyValue:        propValue,
			Equity:               equity,
			CapRate:              yearCapRate,
			CashOnCash:           yearCoC,
			DSCR:                 yearDSCR,
			RentMonths:           rentMonths,
		})

		beforeTaxCFs = append(beforeTaxCFs, cfbt)
		afterTaxCFs = append(afterTaxCFs, cfat)
	}

	finalYear := assumptions.HoldYears
	salePrice := cashflow.PropertyValue(assumptions, finalYear)
	loanBalance := debtForYear(yearlyDebt, finalYear).EndingBalance

	dispositionResult := disposition.Compute(assumptions, investor, salePrice, loanBalance, totalDep, priorSuspended)

	beforeTaxCFs[len(beforeTaxCFs)-1] = beforeTaxCFs[len(beforeTaxCFs)-1].Add(dispositionResult.GrossEquityProceeds)
	afterTaxCFs[len(afterTaxCFs)-1] = afterTaxCFs[len(afterTaxCFs)-1].Add(dispositionResult.AfterTaxSaleProceeds)

	beforeTaxIRR := irr.Compute(beforeTaxCFs)
	afterTaxIRR := irr.Compute(afterTaxCFs)

	totalCFAT := decimal.Zero
	for _, p := range projections {
		totalCFAT = totalCFAT.Add(p.CashFlowAfterTax)
	}
	totalCashReturned := totalCFAT.Add(dispositionResult.AfterTaxSaleProceeds)
	equityMultiple := irr.EquityMultiple(totalCashReturned, totalInitialInvestment)

	avgCoC := decimal.Zero
	if len(projections) > 0 {
		sumCoC := decimal.Zero
		for _, p := range projections {
			sumCoC = sumCoC.Add(p.CashOnCash)
		}
		avgCoC = money.Rate(sumCoC.Div(decimal.NewFromInt(int64(len(projections)))))
	}

	totalTaxOnSale := dispositionResult.RecaptureTax.Add(dispositionResult.CapitalGainsTax).
		Add(dispositionResult.NIITOnGain).Add(dispositionResult.StateTaxOnGain)
	netTaxImpact := totalTaxBenefit.Add(dispositionResult.TaxBenefitFromRelease).Sub(totalTaxOnSale)

	return domain.AnalysisResult{
		YearlyProjections:         projections,
		Disposition:               dispositionResult,
		TotalInitialInvestment:    totalInitialInvestment,
		RehabTotalCost:            assumptions.RehabBudget.TotalCost(),
		RehabMonths:               assumptions.RehabBudget.RehabMonths,
		BeforeTaxIRR:              beforeTaxIRR,
		AfterTaxIRR:               afterTaxIRR,
		EquityMultiple:            equityMultiple,
		AverageCashOnCash:         avgCoC,
		TotalProfit:               totalCashReturned.Sub(totalInitialInvestment),
		TotalDepreciationTaken:    totalDep,
		TotalTaxBenefitOperations: totalTaxBenefit,
		TotalSuspendedLosses:      priorSuspended,
		NetTaxImpact:              netTaxImpact,
	}
}
