// Package passiveactivity tracks IRC 469 passive-activity loss suspension
// year over year: the $25K rental exception, its phase-out, the real-estate
// professional bypass, and suspended-loss release against passive income.
package passiveactivity

import (
	"github.com/shopspring/decimal"

	"reiproforma/money"
	"reiproforma/realestate/domain"
)

// Entry is one year's passive-activity result.
type Entry struct {
	Year                 int
	RentalIncomeOrLoss   decimal.Decimal
	OtherPassiveIncome   decimal.Decimal
	DeductibleAmount     decimal.Decimal
	SuspendedAmount      decimal.Decimal
	CumulativeSuspended  decimal.Decimal
	TaxBenefit           decimal.Decimal
}

// Ledger is the ordered, year-by-year passive-activity history for one deal.
type Ledger struct {
	Entries []Entry
}

// TotalSuspended is the last entry's cumulative suspended loss, zero if empty.
func (l Ledger) TotalSuspended() decimal.Decimal {
	if len(l.Entries) == 0 {
		return decimal.Zero
	}
	return l.Entries[len(l.Entries)-1].CumulativeSuspended
}

// TotalTaxBenefit sums every entry's tax benefit.
func (l Ledger) TotalTaxBenefit() decimal.Decimal {
	total := decimal.Zero
	for _, e := range l.Entries {
		total = total.Add(e.TaxBenefit)
	}
	return total
}

// TaxableRentalIncome = NOI - mortgage interest - depreciation. Principal
// payments are not deductible.
func TaxableRentalIncome(noi, interestPaid, depreciation decimal.Decimal) decimal.Decimal {
	return noi.Sub(interestPaid).Sub(depreciation)
}

// ComputePassiveActivity computes one year's passive-activity entry.
//
// The income branch computes deductible_amount = net_passive - usable_suspended
// and then overwrites it with deductible = -usable_suspended: releasing
// suspended losses reduces taxable income by the released amount, it does
// not additionally report the passive income itself as deductible. Both
// assignments are kept here, in that order, matching the source's intent.
func ComputePassiveActivity(rentalIncomeOrLoss decimal.Decimal, investor domain.InvestorTaxProfile, priorSuspended decimal.Decimal, year int) Entry {
	netPassive := rentalIncomeOrLoss.Add(investor.OtherPassiveIncome)

	if netPassive.GreaterThanOrEqual(decimal.Zero) {
		usable := money.Min(priorSuspended, netPassive)
		deductible := netPassive.Sub(usable)
		deductible = usable.Neg()
		newSuspended := priorSuspended.Sub(usable)
		taxBenefit := money.Dollars(usable.Mul(investor.CombinedRate()))

		return Entry{
			Year:                year,
			RentalIncomeOrLoss:  rentalIncomeOrLoss,
			OtherPassiveIncome:  investor.OtherPassiveIncome,
			DeductibleAmount:    deductible,
			SuspendedAmount:     decimal.Zero,
			CumulativeSuspended: newSuspended,
			TaxBenefit:          taxBenefit,
		}
	}

	loss := netPassive.Abs()

	if investor.IsRealEstateProfessional {
		taxBenefit := money.Dollars(loss.Mul(investor.CombinedRate()))
		return Entry{
			Year:                year,
			RentalIncomeOrLoss:  rentalIncomeOrLoss,
			OtherPassiveIncome:  investor.OtherPassiveIncome,
			DeductibleAmount:    loss.Neg(),
			SuspendedAmount:     decimal.Zero,
			CumulativeSuspended: priorSuspended,
			TaxBenefit:          taxBenefit,
		}
	}

	allowance := investor.RentalLossAllowance()
	deductibleLoss := money.Min(loss, allowance)
	suspended := loss.Sub(deductibleLoss)
	taxBenefit := money.Dollars(deductibleLoss.Mul(investor.CombinedRate()))
	newSuspended := priorSuspended.Add(suspended)

	return Entry{
		Year:                year,
		RentalIncomeOrLoss:  rentalIncomeOrLoss,
		OtherPassiveIncome:  investor.OtherPassiveIncome,
		DeductibleAmount:    deductibleLoss.Neg(),
		SuspendedAmount:     suspended,
		CumulativeSuspended: newSuspended,
		TaxBenefit:          taxBenefit,
	}
}

// BuildLedger runs ComputePassiveActivity across every hold year, carrying
// prior_suspended forward in ascending year order.
func BuildLedger(yearlyRentalIncomeOrLoss []decimal.Decimal, investor domain.InvestorTaxProfile) Ledger {
	ledger := Ledger{}
	priorSuspended := decimal.Zero

	for i, incomeOrLoss := range yearlyRentalIncomeOrLoss {
		entry := ComputePassiveActivity(incomeOrLoss, investor, priorSuspended, i+1)
		ledger.Entries = append(ledger.Entries, entry)
		priorSuspended = entry.CumulativeSuspended
	}

	return ledger
}
