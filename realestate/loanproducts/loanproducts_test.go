package loanproducts

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"reiproforma/realestate/domain"
)

func TestConventionalFallsBackToDefaultRate(t *testing.T) {
	opt := Conventional(domain.MacroContext{}, CreditExcellent)
	// 0.07 + 0.0075 + 0 = 0.0775
	assert.Equal(t, "0.0775", opt.InterestRate.String())
	assert.Equal(t, "0.8", opt.LTV.String())
	assert.Equal(t, 30, opt.LoanTermYears)
}

func TestConventionalUsesMacroRateWhenAvailable(t *testing.T) {
	rate := decimal.NewFromFloat(0.065)
	opt := Conventional(domain.MacroContext{MortgageRate30Y: &rate}, CreditFair)
	// 0.065 + 0.0075 + 0.0075 = 0.08
	assert.Equal(t, "0.08", opt.InterestRate.String())
}

func TestDSCRStrongCoverageGetsBestTier(t *testing.T) {
	opt := DSCR(domain.MacroContext{}, decimal.NewFromFloat(1.30))
	assert.Equal(t, "0.0875", opt.InterestRate.String())
	assert.Equal(t, "0.8", opt.LTV.String())
	assert.Equal(t, "1", opt.Points.String())
}

func TestDSCRWeakCoverageGetsWidestSpread(t *testing.T) {
	opt := DSCR(domain.MacroContext{}, decimal.NewFromFloat(0.85))
	assert.Equal(t, "0.1025", opt.InterestRate.String())
	assert.Equal(t, "0.65", opt.LTV.String())
	assert.Equal(t, "2", opt.Points.String())
	assert.Equal(t, "3-2-1 stepdown", opt.PrepaymentPenalty)
}
