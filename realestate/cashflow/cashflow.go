// Package cashflow computes the pure, I/O-free operating-income metrics that
// feed every year of a pro forma run: gross rent, effective gross income,
// itemized operating expenses, NOI, cash flow before tax, cap rate,
// cash-on-cash return, DSCR, and estimated property value.
package cashflow

import (
	"github.com/shopspring/decimal"

	"reiproforma/money"
	"reiproforma/realestate/domain"
)

// GrossRent is the scheduled rent for a given year (1-indexed), grown at the
// assumed annual rent growth rate. Year 1 is pro-rated when a rehab period
// precedes occupancy: no rental income accrues during the rehab months.
func GrossRent(a domain.DealAssumptions, year int) decimal.Decimal {
	annual := a.MonthlyRent.Mul(decimal.NewFromInt(12))
	growthFactor := decimal.NewFromInt(1).Add(a.AnnualRentGrowth).Pow(decimal.NewFromInt(int64(year - 1)))
	fullYear := money.Dollars(annual.Mul(growthFactor))

	if year == 1 && a.RehabBudget.RehabMonths > 0 {
		rehabMonths := a.RehabBudget.RehabMonths
		if rehabMonths > 12 {
			rehabMonths = 12
		}
		rentMonths := 12 - rehabMonths
		return money.Dollars(fullYear.Mul(decimal.NewFromInt(int64(rentMonths))).Div(decimal.NewFromInt(12)))
	}
	return fullYear
}

// RentMonths returns the number of months rent actually accrues in the given
// year, accounting for a year-1 rehab period.
func RentMonths(a domain.DealAssumptions, year int) int {
	if year == 1 && a.RehabBudget.RehabMonths > 0 {
		rehabMonths := a.RehabBudget.RehabMonths
		if rehabMonths > 12 {
			rehabMonths = 12
		}
		return 12 - rehabMonths
	}
	return 12
}

// EffectiveGrossIncome = gross rent - vacancy loss + other income.
func EffectiveGrossIncome(a domain.DealAssumptions, year int) (egi, vacancyLoss decimal.Decimal) {
	gr := GrossRent(a, year)
	vacancyLoss = money.Dollars(gr.Mul(a.VacancyRate))
	egi = gr.Sub(vacancyLoss).Add(a.OtherIncome)
	return egi, vacancyLoss
}

// OperatingExpenseBreakdown is the itemized expense set for one year of the
// hold, excluding debt service.
type OperatingExpenseBreakdown struct {
	PropertyTax  decimal.Decimal
	Insurance    decimal.Decimal
	Maintenance  decimal.Decimal
	Management   decimal.Decimal
	CapexReserve decimal.Decimal
	HOA          decimal.Decimal
	Total        decimal.Decimal
}

// OperatingExpenses computes the year's itemized operating expenses.
// Property tax and insurance grow with the assumed expense-growth rate; HOA
// is the flat monthly fee times 12 in every year; maintenance/management/capex
// are percentages of that year's gross rent.
func OperatingExpenses(a domain.DealAssumptions, year int) OperatingExpenseBreakdown {
	gr := GrossRent(a, year)
	expenseGrowth := decimal.NewFromInt(1).Add(a.AnnualExpenseGrowth).Pow(decimal.NewFromInt(int64(year - 1)))

	propTax := money.Dollars(a.PropertyTax.Mul(expenseGrowth))
	insurance := money.Dollars(a.Insurance.Mul(expenseGrowth))
	maintenance := money.Dollars(gr.Mul(a.MaintenancePct))
	management := money.Dollars(gr.Mul(a.ManagementPct))
	capex := money.Dollars(gr.Mul(a.CapexReservePct))
	hoa := money.Dollars(a.HOA.Mul(decimal.NewFromInt(12)))

	total := propTax.Add(insurance).Add(maintenance).Add(management).Add(capex).Add(hoa)

	return OperatingExpenseBreakdown{
		PropertyTax:  propTax,
		Insurance:    insurance,
		Maintenance:  maintenance,
		Management:   management,
		CapexReserve: capex,
		HOA:          hoa,
		Total:        total,
	}
}

// NOI = EGI - total operating expenses.
func NOI(a domain.DealAssumptions, year int) decimal.Decimal {
	egi, _ := EffectiveGrossIncome(a, year)
	expenses := OperatingExpenses(a, year)
	return egi.Sub(expenses.Total)
}

// CashFlowBeforeTax = NOI - annual debt service.
func CashFlowBeforeTax(noi, annualDebtService decimal.Decimal) decimal.Decimal {
	return noi.Sub(annualDebtService)
}

// CapRate = a year's NOI / purchase price. Zero when purchase price is zero.
func CapRate(noi, purchasePrice decimal.Decimal) decimal.Decimal {
	if purchasePrice.IsZero() {
		return decimal.Zero
	}
	return money.Rate(noi.Div(purchasePrice))
}

// CashOnCash = annual cash flow before tax / total cash invested.
func CashOnCash(cashFlowBeforeTax, totalInitialInvestment decimal.Decimal) decimal.Decimal {
	if totalInitialInvestment.IsZero() {
		return decimal.Zero
	}
	return money.Rate(cashFlowBeforeTax.Div(totalInitialInvestment))
}

// DSCR = NOI / annual debt service.
func DSCR(noi, annualDebtService decimal.Decimal) decimal.Decimal {
	if annualDebtService.IsZero() {
		return decimal.Zero
	}
	return money.Rate(noi.Div(annualDebtService))
}

// PropertyValue estimates the property's value at the end of the given
// year, compounding the assumed annual appreciation rate off the purchase
// price.
func PropertyValue(a domain.DealAssumptions, year int) decimal.Decimal {
	growth := decimal.NewFromInt(1).Add(a.AnnualAppreciation).Pow(decimal.NewFromInt(int64(year)))
	return money.Dollars(a.PurchasePrice.Mul(growth))
}
