// Package opportunitycost compares a real-estate hold against a buy-and-hold
// S&P 500 position over the same initial equity and horizon: equity curve,
// after-tax proceeds, annualized return, and Sharpe ratio for each side.
package opportunitycost

import (
	"math"

	"github.com/shopspring/decimal"

	"reiproforma/money"
	"reiproforma/realestate/domain"
)

var (
	DefaultSP500AnnualReturn = decimal.NewFromFloat(0.10)
	DefaultSP500Volatility   = decimal.NewFromFloat(0.15)
	DefaultREVolatility      = decimal.NewFromFloat(0.06)
	DefaultRiskFreeRate      = decimal.NewFromFloat(0.04)

	ltcgRate = decimal.NewFromFloat(0.20)
	niitRate = decimal.NewFromFloat(0.038)
)

// SP500EquityCurve returns year-end equity values for a buy-and-hold S&P 500
// position, length holdYears+1 with index 0 the initial investment.
func SP500EquityCurve(initialInvestment decimal.Decimal, holdYears int, annualReturn decimal.Decimal) []decimal.Decimal {
	curve := make([]decimal.Decimal, 0, holdYears+1)
	curve = append(curve, initialInvestment)
	value := initialInvestment
	for i := 0; i < holdYears; i++ {
		value = money.Dollars(value.Mul(decimal.NewFromInt(1).Add(annualReturn)))
		curve = append(curve, value)
	}
	return curve
}

// SP500AfterTaxProceeds taxes the S&P 500 position's gain as long-term
// capital gain: 20% federal, optional 3.8% NIIT, plus the investor's state
// rate. A non-positive gain passes through untaxed.
func SP500AfterTaxProceeds(initialInvestment, finalValue, stateTaxRate decimal.Decimal, niitApplies bool) decimal.Decimal {
	gain := finalValue.Sub(initialInvestment)
	if gain.LessThanOrEqual(decimal.Zero) {
		return finalValue
	}

	federalTax := money.Dollars(gain.Mul(ltcgRate))
	niit := decimal.Zero
	if niitApplies {
		niit = money.Dollars(gain.Mul(niitRate))
	}
	stateTax := money.Dollars(gain.Mul(stateTaxRate))

	return finalValue.Sub(federalTax).Sub(niit).Sub(stateTax)
}

// SharpeRatio = (annualReturn - riskFreeRate) / volatility. Zero volatility
// returns zero rather than dividing by zero.
func SharpeRatio(annualReturn, volatility, riskFreeRate decimal.Decimal) decimal.Decimal {
	if volatility.IsZero() {
		return decimal.Zero
	}
	return money.Rate(annualReturn.Sub(riskFreeRate).Div(volatility))
}

// Options carries the comparison's tunable market assumptions; each field
// defaults to the package's historical constant when left zero-valued by the
// caller's explicit override.
type Options struct {
	SP500AnnualReturn *decimal.Decimal
	SP500Volatility   *decimal.Decimal
	REVolatility      *decimal.Decimal
	RiskFreeRate      *decimal.Decimal
	NIITApplies       bool
}

func (o Options) sp500Return() decimal.Decimal {
	if o.SP500AnnualReturn != nil {
		return *o.SP500AnnualReturn
	}
	return DefaultSP500AnnualReturn
}

func (o Options) sp500Volatility() decimal.Decimal {
	if o.SP500Volatility != nil {
		return *o.SP500Volatility
	}
	return DefaultSP500Volatility
}

func (o Options) reVolatility() decimal.Decimal {
	if o.REVolatility != nil {
		return *o.REVolatility
	}
	return DefaultREVolatility
}

func (o Options) riskFreeRate() decimal.Decimal {
	if o.RiskFreeRate != nil {
		return *o.RiskFreeRate
	}
	return DefaultRiskFreeRate
}

// BuildComparison runs the full RE-vs-S&P-500 comparison for one deal's
// initial equity, year-by-year RE equity curve, after-tax IRR, and total
// cash returned.
func BuildComparison(
	initialEquity decimal.Decimal,
	reYearlyEquity []decimal.Decimal,
	reAfterTaxIRR decimal.Decimal,
	reTotalCashReturned decimal.Decimal,
	holdYears int,
	stateTaxRate decimal.Decimal,
	opts Options,
) domain.EquityComparison {
	sp500Curve := SP500EquityCurve(initialEquity, holdYears, opts.sp500Return())
	sp500Final := sp500Curve[len(sp500Curve)-1]
	sp500AfterTax := SP500AfterTaxProceeds(initialEquity, sp500Final, stateTaxRate, opts.NIITApplies)

	sp500IRR := decimal.Zero
	if initialEquity.GreaterThan(decimal.Zero) && holdYears > 0 {
		ratio, _ := sp500AfterTax.Div(initialEquity).Float64()
		cagr := math.Pow(ratio, 1.0/float64(holdYears)) - 1
		sp500IRR = money.Rate(decimal.NewFromFloat(cagr))
	}

	reTotalReturn := decimal.Zero
	sp500TotalReturn := decimal.Zero
	if initialEquity.GreaterThan(decimal.Zero) {
		reTotalReturn = money.Rate(reTotalCashReturned.Div(initialEquity).Sub(decimal.NewFromInt(1)))
		sp500TotalReturn = money.Rate(sp500AfterTax.Div(initialEquity).Sub(decimal.NewFromInt(1)))
	}

	reVol := opts.reVolatility()
	sp500Vol := opts.sp500Volatility()
	riskFree := opts.riskFreeRate()

	return domain.EquityComparison{
		REInitialEquity:    initialEquity,
		SP500InitialEquity: initialEquity,
		REYearlyEquity:     reYearlyEquity,
		SP500YearlyEquity:  sp500Curve,
		REAfterTaxIRR:      reAfterTaxIRR,
		SP500AfterTaxIRR:   sp500IRR,
		RETotalReturn:      reTotalReturn,
		SP500TotalReturn:   sp500TotalReturn,
		REVolatility:       reVol,
		SP500Volatility:    sp500Vol,
		RESharpe:           SharpeRatio(reAfterTaxIRR, reVol, riskFree),
		SP500Sharpe:        SharpeRatio(sp500IRR, sp500Vol, riskFree),
	}
}
