package domain

import "github.com/shopspring/decimal"

// FilingStatus is a closed tagged sum type for US federal filing status —
// spec.md's Design Notes call for true enums at the boundary rather than the
// source's bare strings.
type FilingStatus string

const (
	FilingSingle FilingStatus = "single"
	FilingMFJ    FilingStatus = "married_filing_jointly"
	FilingMFS    FilingStatus = "married_filing_separately"
	FilingHoH    FilingStatus = "head_of_household"
)

var niitThreshold = map[FilingStatus]decimal.Decimal{
	FilingSingle: decimal.NewFromInt(200_000),
	FilingMFJ:    decimal.NewFromInt(250_000),
	FilingMFS:    decimal.NewFromInt(125_000),
	FilingHoH:    decimal.NewFromInt(200_000),
}

var (
	niitRate           = decimal.NewFromFloat(0.038)
	rentalLossCap      = decimal.NewFromInt(25_000)
	rentalLossPhaseLo  = decimal.NewFromInt(100_000)
	rentalLossPhaseHi  = decimal.NewFromInt(150_000)
)

// InvestorTaxProfile captures the investor-side facts needed to tax the
// rental activity and the eventual disposition. Immutable.
type InvestorTaxProfile struct {
	FilingStatus          FilingStatus
	AGI                   decimal.Decimal
	MarginalFederalRate   decimal.Decimal
	MarginalStateRate     decimal.Decimal
	State                 string
	OtherPassiveIncome    decimal.Decimal
	IsRealEstateProfessional bool
}

// CombinedRate is the simplified federal+state marginal rate used for
// ordinary-income tax-benefit calculations (SALT interactions ignored).
func (p InvestorTaxProfile) CombinedRate() decimal.Decimal {
	return p.MarginalFederalRate.Add(p.MarginalStateRate)
}

// NIITApplies reports whether AGI exceeds the filing-status NIIT threshold.
func (p InvestorTaxProfile) NIITApplies() bool {
	threshold, ok := niitThreshold[p.FilingStatus]
	if !ok {
		threshold = niitThreshold[FilingSingle]
	}
	return p.AGI.GreaterThan(threshold)
}

// NIITRate is 3.8% when NIITApplies, else zero.
func (p InvestorTaxProfile) NIITRate() decimal.Decimal {
	if p.NIITApplies() {
		return niitRate
	}
	return decimal.Zero
}

// QualifiesFor25kException reports whether the investor may use the $25,000
// active-participation rental loss allowance (IRC §469). Real-estate
// professionals bypass §469 entirely and never need the exception.
func (p InvestorTaxProfile) QualifiesFor25kException() bool {
	if p.IsRealEstateProfessional {
		return false
	}
	return p.AGI.LessThan(rentalLossPhaseHi)
}

// RentalLossAllowance is the maximum deductible rental loss under the $25K
// exception: full $25,000 at AGI <= 100,000, phased out $0.50 per $1 of AGI
// over 100,000, zero at AGI >= 150,000.
func (p InvestorTaxProfile) RentalLossAllowance() decimal.Decimal {
	if !p.QualifiesFor25kException() {
		return decimal.Zero
	}
	if p.AGI.LessThanOrEqual(rentalLossPhaseLo) {
		return rentalLossCap
	}
	reduction := p.AGI.Sub(rentalLossPhaseLo).Div(decimal.NewFromInt(2))
	allowance := rentalLossCap.Sub(reduction)
	if allowance.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return allowance
}
