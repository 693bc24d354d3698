// Package irr computes internal rate of return and equity multiple for a
// cash-flow vector via a bracketed bisection root-finder — the same
// reliable-convergence-over-speed tradeoff the teacher's projection package
// makes with Newton-Raphson, widened to the search range and tolerance the
// engine's brentq original used.
package irr

import "github.com/shopspring/decimal"

var (
	searchLow     = decimal.NewFromFloat(-0.5)
	searchHigh    = decimal.NewFromInt(10)
	tolerance     = decimal.NewFromFloat(0.00000001)
	maxIterations = 1000
)

// npv discounts a cash-flow vector (index 0 = time 0) at rate.
func npv(cashFlows []decimal.Decimal, rate decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	one := decimal.NewFromInt(1)
	base := one.Add(rate)

	for i, cf := range cashFlows {
		discountFactor := base.Pow(decimal.NewFromInt(int64(i)))
		total = total.Add(cf.Div(discountFactor))
	}
	return total
}

// Compute finds the rate where the discounted cash-flow vector's NPV is
// zero, searching [-0.5, 10.0] by bisection. Returns zero when the vector is
// empty or no sign change brackets a root in that range (no IRR exists).
func Compute(cashFlows []decimal.Decimal) decimal.Decimal {
	if len(cashFlows) == 0 {
		return decimal.Zero
	}

	low, high := searchLow, searchHigh
	npvLow := npv(cashFlows, low)
	npvHigh := npv(cashFlows, high)

	if npvLow.Sign() == npvHigh.Sign() {
		return decimal.Zero
	}

	for i := 0; i < maxIterations; i++ {
		mid := low.Add(high).Div(decimal.NewFromInt(2))
		npvMid := npv(cashFlows, mid)

		if npvMid.Abs().LessThan(tolerance) || high.Sub(low).Abs().LessThan(tolerance) {
			return mid
		}

		if npvMid.Sign() == npvLow.Sign() {
			low = mid
			npvLow = npvMid
		} else {
			high = mid
		}
	}

	return low.Add(high).Div(decimal.NewFromInt(2))
}

// EquityMultiple = total cash returned / total cash invested. Zero when
// nothing was invested.
func EquityMultiple(totalCashReturned, totalCashInvested decimal.Decimal) decimal.Decimal {
	if totalCashInvested.IsZero() {
		return decimal.Zero
	}
	return totalCashReturned.Div(totalCashInvested)
}
