package domain

import "github.com/shopspring/decimal"

// CostSegAllocation expresses the fraction of depreciable basis reclassified
// into each shorter MACRS class. The remainder stays on the 27.5-year
// residential schedule.
type CostSegAllocation struct {
	FiveYear    decimal.Decimal
	SevenYear   decimal.Decimal
	FifteenYear decimal.Decimal
}

// ReclassifiedTotal is the sum of the three shorter-class fractions.
func (c CostSegAllocation) ReclassifiedTotal() decimal.Decimal {
	return c.FiveYear.Add(c.SevenYear).Add(c.FifteenYear)
}

// ResidentialPct is the fraction of basis remaining on the 27.5-year schedule.
func (c CostSegAllocation) ResidentialPct() decimal.Decimal {
	return decimal.NewFromInt(1).Sub(c.ReclassifiedTotal())
}

// Validate checks the cost-seg invariant: each fraction in [0,1], sum <= 1.
func (c CostSegAllocation) Validate() error {
	for name, v := range map[string]decimal.Decimal{
		"five_year": c.FiveYear, "seven_year": c.SevenYear, "fifteen_year": c.FifteenYear,
	} {
		if v.LessThan(decimal.Zero) || v.GreaterThan(decimal.NewFromInt(1)) {
			return &InvalidConfigurationError{Field: name, Constraint: "fraction in [0,1]", Received: v.String()}
		}
	}
	if c.ReclassifiedTotal().GreaterThan(decimal.NewFromInt(1)) {
		return &InvalidConfigurationError{Field: "cost_seg", Constraint: "sum of fractions <= 1", Received: c.ReclassifiedTotal().String()}
	}
	return nil
}

// DealAssumptions is the full, resolved input to the pro forma runner. Every
// field here has a matching entry in an AssumptionManifest once produced by
// the assumption builder. Immutable once constructed.
type DealAssumptions struct {
	// Purchase
	PurchasePrice  decimal.Decimal
	ClosingCosts   decimal.Decimal
	LandValuePct   decimal.Decimal

	// Financing
	LTV             decimal.Decimal
	InterestRate    decimal.Decimal
	LoanTermYears   int
	LoanPoints      decimal.Decimal
	LoanType        string

	// Income
	MonthlyRent       decimal.Decimal
	AnnualRentGrowth  decimal.Decimal
	VacancyRate       decimal.Decimal
	OtherIncome       decimal.Decimal

	// Expenses
	PropertyTax       decimal.Decimal
	Insurance         decimal.Decimal
	MaintenancePct    decimal.Decimal
	ManagementPct     decimal.Decimal
	CapexReservePct   decimal.Decimal
	HOA               decimal.Decimal

	// Appreciation & hold
	AnnualAppreciation decimal.Decimal
	HoldYears          int
	SellingCostsPct    decimal.Decimal

	// Depreciation
	CostSeg                  CostSegAllocation
	PlacedInServiceYear       int
	PlacedInServiceMonth      int

	AnnualExpenseGrowth decimal.Decimal

	RehabBudget RehabBudget
}

// LoanAmount = PurchasePrice * LTV.
func (a DealAssumptions) LoanAmount() decimal.Decimal {
	return a.PurchasePrice.Mul(a.LTV)
}

// DownPayment = PurchasePrice - LoanAmount.
func (a DealAssumptions) DownPayment() decimal.Decimal {
	return a.PurchasePrice.Sub(a.LoanAmount())
}

// TotalInitialInvestment = DownPayment + ClosingCosts + LoanPoints + RehabBudget.TotalCost.
func (a DealAssumptions) TotalInitialInvestment() decimal.Decimal {
	return a.DownPayment().Add(a.ClosingCosts).Add(a.LoanPoints).Add(a.RehabBudget.TotalCost())
}

// TotalBasis is the cost basis before land subtraction: purchase price + closing costs.
func (a DealAssumptions) TotalBasis() decimal.Decimal {
	return a.PurchasePrice.Add(a.ClosingCosts)
}

// DepreciableBasis = (TotalBasis - land) + rehab cost. Rehab is 100% depreciable.
func (a DealAssumptions) DepreciableBasis() decimal.Decimal {
	oneLessLand := decimal.NewFromInt(1).Sub(a.LandValuePct)
	return a.TotalBasis().Mul(oneLessLand).Add(a.RehabBudget.TotalCost())
}

// LandValue = TotalBasis * LandValuePct.
func (a DealAssumptions) LandValue() decimal.Decimal {
	return a.TotalBasis().Mul(a.LandValuePct)
}

// Validate enforces the InvalidConfiguration invariants spec.md §7 names:
// cost-seg fractions summing over 1, negative rates, an out-of-range
// placed-in-service month, a non-positive hold period.
func (a DealAssumptions) Validate() error {
	if err := a.CostSeg.Validate(); err != nil {
		return err
	}
	for name, v := range map[string]decimal.Decimal{
		"interest_rate": a.InterestRate, "annual_rent_growth": a.AnnualRentGrowth,
		"vacancy_rate": a.VacancyRate, "maintenance_pct": a.MaintenancePct,
		"management_pct": a.ManagementPct, "capex_reserve_pct": a.CapexReservePct,
		"annual_appreciation": a.AnnualAppreciation, "annual_expense_growth": a.AnnualExpenseGrowth,
		"land_value_pct": a.LandValuePct, "ltv": a.LTV,
	} {
		if v.LessThan(decimal.Zero) {
			return &InvalidConfigurationError{Field: name, Constraint: "rate >= 0", Received: v.String()}
		}
	}
	if a.PlacedInServiceMonth < 1 || a.PlacedInServiceMonth > 12 {
		return &InvalidConfigurationError{
			Field: "placed_in_service_month", Constraint: "in [1,12]",
			Received: decimal.NewFromInt(int64(a.PlacedInServiceMonth)).String(),
		}
	}
	if a.HoldYears <= 0 {
		return &InvalidConfigurationError{
			Field: "hold_years", Constraint: "> 0",
			Received: decimal.NewFromInt(int64(a.HoldYears)).String(),
		}
	}
	return nil
}
