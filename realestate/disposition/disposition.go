// Package disposition computes after-tax proceeds from a property sale:
// IRC 1250 depreciation recapture, IRC 1231 capital gains, NIIT, state tax,
// and IRC 469(g)(1)(A) release of suspended passive losses.
package disposition

import (
	"github.com/shopspring/decimal"

	"reiproforma/money"
	"reiproforma/realestate/domain"
)

var (
	recaptureRate = decimal.NewFromFloat(0.25) // IRC 1250 unrecaptured Sec 1250 gain
	ltcgRate      = decimal.NewFromFloat(0.20) // IRC 1231 long-term capital gain, top bracket
)

// Compute runs the full disposition analysis for one sale.
func Compute(
	assumptions domain.DealAssumptions,
	investor domain.InvestorTaxProfile,
	salePrice, loanBalance, totalDepreciationTaken, cumulativeSuspendedLosses decimal.Decimal,
) domain.DispositionResult {
	sellingCosts := money.Dollars(salePrice.Mul(assumptions.SellingCostsPct))
	netSaleProceeds := salePrice.Sub(sellingCosts)
	grossEquityProceeds := netSaleProceeds.Sub(loanBalance)

	adjustedBasis := assumptions.TotalBasis().Sub(totalDepreciationTaken)
	totalGain := netSaleProceeds.Sub(adjustedBasis)

	if totalGain.LessThanOrEqual(decimal.Zero) {
		taxBenefitFromRelease := money.Dollars(cumulativeSuspendedLosses.Mul(investor.CombinedRate()))

		return domain.DispositionResult{
			SalePrice:               salePrice,
			SellingCosts:            sellingCosts,
			NetSaleProceeds:         netSaleProceeds,
			LoanPayoff:              loanBalance,
			GrossEquityProceeds:     grossEquityProceeds,
			AdjustedBasis:           adjustedBasis,
			TotalGain:               totalGain,
			SuspendedLossesReleased: cumulativeSuspendedLosses,
			TaxBenefitFromRelease:   taxBenefitFromRelease,
			TotalTaxOnSale:          taxBenefitFromRelease.Neg(),
			AfterTaxSaleProceeds:    grossEquityProceeds.Add(taxBenefitFromRelease),
		}
	}

	depreciationRecapture := money.Min(totalDepreciationTaken, totalGain)
	capitalGain := totalGain.Sub(depreciationRecapture)

	recaptureTax := money.Dollars(depreciationRecapture.Mul(recaptureRate))
	capitalGainsTax := money.Dollars(capitalGain.Mul(ltcgRate))
	niit := money.Dollars(totalGain.Mul(investor.NIITRate()))
	stateTax := money.Dollars(totalGain.Mul(investor.MarginalStateRate))

	suspendedLossesReleased := cumulativeSuspendedLosses

	// IRC 469(g)(1)(A): suspended losses first offset the gain from this
	// activity; the remainder saves tax at the investor's ordinary combined
	// rate. The portion of the offset that lands in the recapture bucket
	// saves at the 25% recapture rate, the rest at the 20% LTCG rate, plus
	// NIIT and state rates on the whole offset.
	gainOffset := money.Min(suspendedLossesReleased, totalGain)
	remainingSuspended := suspendedLossesReleased.Sub(gainOffset)

	offsetInRecapture := money.Min(gainOffset, depreciationRecapture)
	offsetInCapitalGain := money.Max(decimal.Zero, gainOffset.Sub(depreciationRecapture))

	benefitFromGainOffset := money.Dollars(
		offsetInRecapture.Mul(recaptureRate).
			Add(offsetInCapitalGain.Mul(ltcgRate)).
			Add(gainOffset.Mul(investor.NIITRate())).
			Add(gainOffset.Mul(investor.MarginalStateRate)),
	)
	benefitFromRemaining := money.Dollars(remainingSuspended.Mul(investor.CombinedRate()))
	taxBenefitFromRelease := benefitFromGainOffset.Add(benefitFromRemaining)

	totalTax := recaptureTax.Add(capitalGainsTax).Add(niit).Add(stateTax).Sub(taxBenefitFromRelease)
	afterTaxProceeds := grossEquityProceeds.Sub(totalTax)

	return domain.DispositionResult{
		SalePrice:               salePrice,
		SellingCosts:            sellingCosts,
		NetSaleProceeds:         netSaleProceeds,
		LoanPayoff:              loanBalance,
		GrossEquityProceeds:     grossEquityProceeds,
		AdjustedBasis:           adjustedBasis,
		TotalGain:               totalGain,
		DepreciationRecapture:   depreciationRecapture,
		CapitalGain:             capitalGain,
		RecaptureTax:            recaptureTax,
		CapitalGainsTax:         capitalGainsTax,
		NIITOnGain:              niit,
		StateTaxOnGain:          stateTax,
		SuspendedLossesReleased: suspendedLossesReleased,
		TaxBenefitFromRelease:   taxBenefitFromRelease,
		TotalTaxOnSale:          totalTax,
		AfterTaxSaleProceeds:    afterTaxProceeds,
	}
}
