package passiveactivity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"reiproforma/realestate/domain"
)

func TestLowIncome25KExceptionFullyDeductible(t *testing.T) {
	investor := domain.InvestorTaxProfile{
		FilingStatus:        domain.FilingMFJ,
		AGI:                 decimal.NewFromInt(90_000),
		MarginalFederalRate: decimal.NewFromFloat(0.22),
		MarginalStateRate:   decimal.Zero,
	}

	entry := ComputePassiveActivity(decimal.NewFromInt(-10_000), investor, decimal.Zero, 1)

	assert.Equal(t, "-10000", entry.DeductibleAmount.String())
	assert.True(t, entry.CumulativeSuspended.IsZero())
	assert.Equal(t, "2200.00", entry.TaxBenefit.StringFixed(2))
}

func TestPhaseOutSuspendsExcessLoss(t *testing.T) {
	investor := domain.InvestorTaxProfile{
		FilingStatus:        domain.FilingMFJ,
		AGI:                 decimal.NewFromInt(120_000),
		MarginalFederalRate: decimal.NewFromFloat(0.24),
	}

	entry := ComputePassiveActivity(decimal.NewFromInt(-20_000), investor, decimal.Zero, 1)

	assert.Equal(t, "-15000", entry.DeductibleAmount.String())
	assert.Equal(t, "5000", entry.SuspendedAmount.String())
	assert.Equal(t, "5000", entry.CumulativeSuspended.String())
}

func TestRealEstateProfessionalFullyDeductsLoss(t *testing.T) {
	investor := domain.InvestorTaxProfile{
		AGI:                      decimal.NewFromInt(400_000),
		MarginalFederalRate:      decimal.NewFromFloat(0.37),
		IsRealEstateProfessional: true,
	}

	entry := ComputePassiveActivity(decimal.NewFromInt(-30_000), investor, decimal.NewFromInt(5_000), 1)

	assert.Equal(t, "-30000", entry.DeductibleAmount.String())
	assert.True(t, entry.SuspendedAmount.IsZero())
	assert.Equal(t, "5000", entry.CumulativeSuspended.String())
}

func TestPassiveIncomeReleasesSuspendedLosses(t *testing.T) {
	investor := domain.InvestorTaxProfile{
		AGI:                 decimal.NewFromInt(90_000),
		MarginalFederalRate: decimal.NewFromFloat(0.22),
	}

	entry := ComputePassiveActivity(decimal.NewFromInt(3_000), investor, decimal.NewFromInt(5_000), 2)

	assert.Equal(t, "-3000", entry.DeductibleAmount.String())
	assert.Equal(t, "2000", entry.CumulativeSuspended.String())
	assert.True(t, entry.SuspendedAmount.IsZero())
}

func TestBuildLedgerCarriesSuspendedForward(t *testing.T) {
	investor := domain.InvestorTaxProfile{
		AGI:                 decimal.NewFromInt(200_000),
		MarginalFederalRate: decimal.NewFromFloat(0.35),
	}

	losses := []decimal.Decimal{
		decimal.NewFromInt(-20_000),
		decimal.NewFromInt(-20_000),
	}

	ledger := BuildLedger(losses, investor)

	assert.Len(t, ledger.Entries, 2)
	assert.Equal(t, ledger.Entries[1].CumulativeSuspended.String(), ledger.TotalSuspended().String())
	assert.True(t, ledger.TotalTaxBenefit().GreaterThanOrEqual(decimal.Zero))
}

func TestTaxableRentalIncomeSubtractsInterestAndDepreciation(t *testing.T) {
	got := TaxableRentalIncome(decimal.NewFromInt(20_000), decimal.NewFromInt(12_000), decimal.NewFromInt(15_000))
	assert.Equal(t, "-7000", got.String())
}
