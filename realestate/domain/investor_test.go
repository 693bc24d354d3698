package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRentalLossAllowanceBoundaries(t *testing.T) {
	cases := []struct {
		name string
		agi  int64
		want string
	}{
		{"at floor", 100_000, "25000"},
		{"phase-out midpoint", 125_000, "12500"},
		{"at ceiling", 150_000, "0"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := InvestorTaxProfile{FilingStatus: FilingMFJ, AGI: decimal.NewFromInt(c.agi)}
			assert.Equal(t, c.want, p.RentalLossAllowance().String())
		})
	}
}

func TestRealEstateProfessionalBypassesException(t *testing.T) {
	p := InvestorTaxProfile{AGI: decimal.NewFromInt(80_000), IsRealEstateProfessional: true}
	assert.False(t, p.QualifiesFor25kException())
	assert.True(t, p.RentalLossAllowance().IsZero())
}

func TestNIITThresholds(t *testing.T) {
	single := InvestorTaxProfile{FilingStatus: FilingSingle, AGI: decimal.NewFromInt(250_000)}
	assert.True(t, single.NIITApplies())
	assert.Equal(t, "0.038", single.NIITRate().String())

	mfj := InvestorTaxProfile{FilingStatus: FilingMFJ, AGI: decimal.NewFromInt(240_000)}
	assert.False(t, mfj.NIITApplies())
	assert.True(t, mfj.NIITRate().IsZero())
}

func TestCombinedRate(t *testing.T) {
	p := InvestorTaxProfile{MarginalFederalRate: decimal.NewFromFloat(0.37), MarginalStateRate: decimal.NewFromFloat(0.133)}
	assert.Equal(t, "0.503", p.CombinedRate().String())
}
