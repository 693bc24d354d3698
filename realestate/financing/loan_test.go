package financing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewLoanFields(t *testing.T) {
	loan := NewLoan(300_000, 60_000, 5.0, Term30Years, 0)

	assert.Equal(t, "300000", loan.HomePrice.String())
	assert.Equal(t, "60000", loan.DownPayment.String())
	assert.Equal(t, "5%", loan.InterestRate.String())
	assert.Equal(t, 30, loan.TermYears)
}

func TestMonthlyPaymentCanonicalScenario(t *testing.T) {
	loan := NewLoan(500_000, 100_000, 7.0, Term30Years, 0)
	monthlyPayment := loan.MonthlyPayment()

	assert.Equal(t, "2661.21", monthlyPayment.StringFixed(2))
}

func TestAmortizationScheduleTruncatesToHoldYears(t *testing.T) {
	loan := NewLoan(500_000, 100_000, 7.0, Term30Years, 7)
	schedule := loan.Schedule()

	assert.Len(t, schedule.Payments, 7*12)
	assert.True(t, schedule.TotalPrincipal.LessThan(loan.LoanAmount()))

	yearly := YearlyDebtSummary(schedule)
	assert.Len(t, yearly, 7)
}

func TestAmortizationFinalPaymentClampsToBalance(t *testing.T) {
	schedule := AmortizationSchedule(decimal.NewFromInt(1_000), decimal.NewFromFloat(0.06), 1, 0)
	last := schedule.Payments[len(schedule.Payments)-1]

	assert.True(t, last.Balance.IsZero())
	assert.True(t, last.Principal.LessThanOrEqual(decimal.NewFromInt(1_000)))
}

func TestGetTotalInterestAndPrincipalSumToTotalPayment(t *testing.T) {
	loan := NewLoan(300_000, 60_000, 5.0, Term30Years, 0)
	total := loan.GetTotalPayment()
	sum := loan.GetTotalInterest().Add(loan.GetTotalPrincipal())

	assert.True(t, total.Sub(sum).Abs().LessThan(decimal.NewFromFloat(0.01)))
}
