package domain

import "github.com/shopspring/decimal"

// MacroContext is the resolved macroeconomic snapshot (FRED-sourced in the
// upstream system, opaque to the core). Every field is optional: nil means
// "unavailable", and estimators fall back to documented defaults.
type MacroContext struct {
	MortgageRate30Y          *decimal.Decimal
	Treasury10Y              *decimal.Decimal
	CPICurrent               *decimal.Decimal
	CPI5YrCAGR               *decimal.Decimal
	UnemploymentRate         *decimal.Decimal
	MedianHomePriceNational  *decimal.Decimal
}

// LoanOption is a priced loan product with a human-readable rate derivation,
// used verbatim in the assumption manifest.
type LoanOption struct {
	LoanType          string // "conventional" or "dscr"
	InterestRate      decimal.Decimal
	LTV               decimal.Decimal
	LoanTermYears     int
	Points            decimal.Decimal
	RateSource        string
	MinDSCR           *decimal.Decimal
	PrepaymentPenalty string
}
