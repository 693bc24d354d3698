package domain

import "github.com/shopspring/decimal"

// UserOverrides carries an optional value for every DealAssumptions field the
// user may pin explicitly. nil means "let the builder estimate it".
type UserOverrides struct {
	PurchasePrice      *decimal.Decimal
	LTV                *decimal.Decimal
	InterestRate       *decimal.Decimal
	LoanTermYears      *int
	LoanType           *string
	MonthlyRent        *decimal.Decimal
	AnnualRentGrowth   *decimal.Decimal
	VacancyRate        *decimal.Decimal
	PropertyTax        *decimal.Decimal
	Insurance          *decimal.Decimal
	MaintenancePct     *decimal.Decimal
	ManagementPct      *decimal.Decimal
	CapexReservePct    *decimal.Decimal
	HOA                *decimal.Decimal
	AnnualAppreciation *decimal.Decimal
	LandValuePct       *decimal.Decimal
	AnnualExpenseGrowth *decimal.Decimal
	HoldYears          *int
	SellingCostsPct    *decimal.Decimal
	ClosingCostPct     *decimal.Decimal
}
