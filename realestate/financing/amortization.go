package financing

import "github.com/shopspring/decimal"

// Payment is one period's amortization row.
type Payment struct {
	Period    int
	Payment   decimal.Decimal
	Principal decimal.Decimal
	Interest  decimal.Decimal
	Balance   decimal.Decimal
}

// Schedule is a full or partial amortization schedule plus its running totals.
type Schedule struct {
	Payments       []Payment
	MonthlyPayment decimal.Decimal
	TotalInterest  decimal.Decimal
	TotalPrincipal decimal.Decimal
}

var twoPlaces = int32(2)

// MonthlyPayment computes the fixed monthly mortgage payment:
//
//	M = P * r(1+r)^n / ((1+r)^n - 1), r = annualRate/12, n = termYears*12
//
// principal <= 0 returns zero; annualRate <= 0 falls back to straight-line
// division of principal over the term.
func MonthlyPayment(principal, annualRate decimal.Decimal, termYears int) decimal.Decimal {
	if principal.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	n := int64(termYears * 12)
	if annualRate.LessThanOrEqual(decimal.Zero) || n == 0 {
		if n == 0 {
			return decimal.Zero
		}
		return principal.Div(decimal.NewFromInt(n)).Round(twoPlaces)
	}

	r := annualRate.Div(decimal.NewFromInt(12))
	one := decimal.NewFromInt(1)
	factor := one.Add(r).Pow(decimal.NewFromInt(n))
	payment := principal.Mul(r).Mul(factor).Div(factor.Sub(one))
	return payment.Round(twoPlaces)
}

// AmortizationSchedule generates a schedule of min(holdYears, termYears)*12
// payments (the full term when holdYears <= 0). Interest accrues monthly on
// the outstanding balance, rounded half-up to the cent before principal is
// derived from it. The final payment is clamped so principal never exceeds
// the remaining balance — the same true-up discipline
// jiangshenghai57-andy-warhol/amortization/amortization.go applies when
// reconciling a pool's terminal balance.
func AmortizationSchedule(principal, annualRate decimal.Decimal, termYears, holdYears int) Schedule {
	pmt := MonthlyPayment(principal, annualRate, termYears)
	r := decimal.Zero
	if annualRate.GreaterThan(decimal.Zero) {
		r = annualRate.Div(decimal.NewFromInt(12))
	}

	years := termYears
	if holdYears > 0 && holdYears < termYears {
		years = holdYears
	}
	nPeriods := years * 12

	payments := make([]Payment, 0, nPeriods)
	balance := principal
	totalInterest := decimal.Zero
	totalPrincipal := decimal.Zero

	for period := 1; period <= nPeriods; period++ {
		interest := balance.Mul(r).Round(twoPlaces)
		principalPaid := pmt.Sub(interest)
		actualPayment := pmt

		if principalPaid.GreaterThan(balance) {
			principalPaid = balance
			actualPayment = interest.Add(principalPaid)
		}

		balance = balance.Sub(principalPaid)
		totalInterest = totalInterest.Add(interest)
		totalPrincipal = totalPrincipal.Add(principalPaid)

		payments = append(payments, Payment{
			Period:    period,
			Payment:   actualPayment,
			Principal: principalPaid,
			Interest:  interest,
			Balance:   balance.Round(twoPlaces),
		})
	}

	return Schedule{
		Payments:       payments,
		MonthlyPayment: pmt,
		TotalInterest:  totalInterest,
		TotalPrincipal: totalPrincipal,
	}
}

// YearlyDebt aggregates one contiguous 12-payment window of a Schedule. The
// final window may be partial when the schedule length is not a multiple of 12.
type YearlyDebt struct {
	Year          int
	Principal     decimal.Decimal
	Interest      decimal.Decimal
	DebtService   decimal.Decimal
	EndingBalance decimal.Decimal
}

// YearlyDebtSummary groups a Schedule's payments into yearly windows.
func YearlyDebtSummary(schedule Schedule) []YearlyDebt {
	var yearly []YearlyDebt
	yearPrincipal := decimal.Zero
	yearInterest := decimal.Zero
	yearDebtService := decimal.Zero

	for i, p := range schedule.Payments {
		yearPrincipal = yearPrincipal.Add(p.Principal)
		yearInterest = yearInterest.Add(p.Interest)
		yearDebtService = yearDebtService.Add(p.Payment)

		isYearEnd := p.Period%12 == 0
		isLast := i == len(schedule.Payments)-1
		if isYearEnd || isLast {
			yearNum := (p.Period-1)/12 + 1
			yearly = append(yearly, YearlyDebt{
				Year:          yearNum,
				Principal:     yearPrincipal,
				Interest:      yearInterest,
				DebtService:   yearDebtService,
				EndingBalance: p.Balance,
			})
			yearPrincipal = decimal.Zero
			yearInterest = decimal.Zero
			yearDebtService = decimal.Zero
		}
	}

	return yearly
}
