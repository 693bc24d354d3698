// Package loanproducts prices conventional and DSCR rental loan products
// from a macro rate snapshot plus an investor premium and coverage-tiered
// spread table.
package loanproducts

import (
	"fmt"

	"github.com/shopspring/decimal"

	"reiproforma/realestate/domain"
)

var (
	defaultMortgageRate = decimal.NewFromFloat(0.07)
	investorPremium     = decimal.NewFromFloat(0.0075)
)

// CreditTier is the borrower's credit-score bucket used for conventional
// rate spreads.
type CreditTier string

const (
	CreditExcellent CreditTier = "excellent"
	CreditGood      CreditTier = "good"
	CreditFair      CreditTier = "fair"
)

var creditSpreads = map[CreditTier]decimal.Decimal{
	CreditExcellent: decimal.Zero,
	CreditGood:      decimal.NewFromFloat(0.0025),
	CreditFair:      decimal.NewFromFloat(0.0075),
}

func baseRate(macro domain.MacroContext) decimal.Decimal {
	if macro.MortgageRate30Y != nil {
		return *macro.MortgageRate30Y
	}
	return defaultMortgageRate
}

// Conventional prices a standard 30-year investor loan: base + 75bps
// investor premium + a credit-tier spread, 80% LTV, zero points.
func Conventional(macro domain.MacroContext, tier CreditTier) domain.LoanOption {
	spread, ok := creditSpreads[tier]
	if !ok {
		spread = creditSpreads[CreditExcellent]
	}
	base := baseRate(macro)
	rate := base.Add(investorPremium).Add(spread)

	source := fmt.Sprintf("conventional: base %s + 75bps investor premium + %s credit spread (%s tier)",
		base.StringFixed(4), spread.StringFixed(4), tier)

	return domain.LoanOption{
		LoanType:      "conventional",
		InterestRate:  rate,
		LTV:           decimal.NewFromFloat(0.80),
		LoanTermYears: 30,
		Points:        decimal.Zero,
		RateSource:    source,
	}
}

// DSCR prices a DSCR investor loan keyed on the deal's estimated debt
// service coverage ratio: tighter coverage means a wider spread, lower LTV,
// and more points.
func DSCR(macro domain.MacroContext, estimatedDSCR decimal.Decimal) domain.LoanOption {
	base := baseRate(macro)

	var spread, ltv, points decimal.Decimal
	var tierLabel string
	switch {
	case estimatedDSCR.GreaterThanOrEqual(decimal.NewFromFloat(1.25)):
		spread, ltv, points, tierLabel = decimal.NewFromFloat(0.0100), decimal.NewFromFloat(0.80), decimal.NewFromInt(1), ">=1.25x"
	case estimatedDSCR.GreaterThanOrEqual(decimal.NewFromInt(1)):
		spread, ltv, points, tierLabel = decimal.NewFromFloat(0.0175), decimal.NewFromFloat(0.75), decimal.NewFromFloat(1.5), ">=1.00x"
	default:
		spread, ltv, points, tierLabel = decimal.NewFromFloat(0.0250), decimal.NewFromFloat(0.65), decimal.NewFromInt(2), "<1.00x"
	}

	rate := base.Add(investorPremium).Add(spread)

	source := fmt.Sprintf("dscr: base %s + 75bps investor premium + %s coverage spread (DSCR %s tier)",
		base.StringFixed(4), spread.StringFixed(4), tierLabel)

	minDSCR := decimal.NewFromInt(1)

	return domain.LoanOption{
		LoanType:          "dscr",
		InterestRate:      rate,
		LTV:               ltv,
		LoanTermYears:     30,
		Points:            points,
		RateSource:        source,
		MinDSCR:           &minDSCR,
		PrepaymentPenalty: "3-2-1 stepdown",
	}
}
