package domain

import "github.com/shopspring/decimal"

// YearlyProjection is the full economic picture for one year of the hold,
// year-indexed starting at 1.
type YearlyProjection struct {
	Year int

	GrossRent             decimal.Decimal
	VacancyLoss           decimal.Decimal
	OtherIncome           decimal.Decimal
	EffectiveGrossIncome  decimal.Decimal

	PropertyTax     decimal.Decimal
	Insurance       decimal.Decimal
	Maintenance     decimal.Decimal
	Management      decimal.Decimal
	CapexReserve    decimal.Decimal
	HOA             decimal.Decimal
	TotalExpenses   decimal.Decimal

	NOI                 decimal.Decimal
	DebtService         decimal.Decimal
	CashFlowBeforeTax    decimal.Decimal

	PrincipalPaid decimal.Decimal
	InterestPaid  decimal.Decimal
	LoanBalance   decimal.Decimal

	Depreciation275     decimal.Decimal
	DepreciationCostSeg decimal.Decimal
	TotalDepreciation   decimal.Decimal

	TaxableIncome  decimal.Decimal
	PassiveLoss    decimal.Decimal
	SuspendedLoss  decimal.Decimal
	TaxBenefit     decimal.Decimal
	CashFlowAfterTax decimal.Decimal

	PropertyValue decimal.Decimal
	Equity        decimal.Decimal

	CapRate    decimal.Decimal
	CashOnCash decimal.Decimal
	DSCR       decimal.Decimal

	RentMonths int
}

// DispositionResult is the full tax-aware sale analysis at the end of the hold.
type DispositionResult struct {
	SalePrice            decimal.Decimal
	SellingCosts         decimal.Decimal
	NetSaleProceeds      decimal.Decimal
	LoanPayoff           decimal.Decimal
	GrossEquityProceeds  decimal.Decimal

	AdjustedBasis         decimal.Decimal
	TotalGain             decimal.Decimal
	DepreciationRecapture decimal.Decimal
	CapitalGain           decimal.Decimal

	RecaptureTax     decimal.Decimal
	CapitalGainsTax  decimal.Decimal
	NIITOnGain       decimal.Decimal
	StateTaxOnGain   decimal.Decimal

	SuspendedLossesReleased decimal.Decimal
	TaxBenefitFromRelease   decimal.Decimal

	TotalTaxOnSale       decimal.Decimal
	AfterTaxSaleProceeds decimal.Decimal
}

// AnalysisResult is the complete output of the pro forma runner.
type AnalysisResult struct {
	YearlyProjections []YearlyProjection
	Disposition       DispositionResult

	TotalInitialInvestment decimal.Decimal
	RehabTotalCost         decimal.Decimal
	RehabMonths            int

	BeforeTaxIRR      decimal.Decimal
	AfterTaxIRR       decimal.Decimal
	EquityMultiple    decimal.Decimal
	AverageCashOnCash decimal.Decimal
	TotalProfit       decimal.Decimal

	TotalDepreciationTaken       decimal.Decimal
	TotalTaxBenefitOperations    decimal.Decimal
	TotalSuspendedLosses         decimal.Decimal
	NetTaxImpact                 decimal.Decimal
}

// EquityComparison is the supplemented RE-vs-S&P-500 opportunity cost view.
type EquityComparison struct {
	REInitialEquity    decimal.Decimal
	SP500InitialEquity decimal.Decimal

	REYearlyEquity    []decimal.Decimal
	SP500YearlyEquity []decimal.Decimal

	REAfterTaxIRR    decimal.Decimal
	SP500AfterTaxIRR decimal.Decimal

	RETotalReturn    decimal.Decimal
	SP500TotalReturn decimal.Decimal

	REVolatility    decimal.Decimal
	SP500Volatility decimal.Decimal

	RESharpe    decimal.Decimal
	SP500Sharpe decimal.Decimal
}
