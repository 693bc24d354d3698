// Package appreciation estimates a property's annual appreciation rate as a
// weighted composite of neighborhood grade, long-run CPI growth, and a
// walkability premium.
package appreciation

import (
	"github.com/shopspring/decimal"

	"reiproforma/realestate/domain"
)

var gradePremiums = map[domain.NeighborhoodGrade]decimal.Decimal{
	domain.GradeA: decimal.NewFromFloat(0.045),
	domain.GradeB: decimal.NewFromFloat(0.035),
	domain.GradeC: decimal.NewFromFloat(0.025),
	domain.GradeD: decimal.NewFromFloat(0.015),
	domain.GradeF: decimal.NewFromFloat(0.005),
}

var (
	defaultCPICAGR     = decimal.NewFromFloat(0.030)
	walkabilityPremium = decimal.NewFromFloat(0.005)
	walkScoreThreshold  = 80

	floor = decimal.NewFromFloat(0.005)
	cap   = decimal.NewFromFloat(0.060)
)

// Estimate = 50% grade premium + 30% CPI component + 20% walkability
// component, clamped to [0.005, 0.060] and rounded to 0.001. cpiCAGR of nil
// falls back to the package default 3.0%.
func Estimate(grade domain.NeighborhoodGrade, cpiCAGR *decimal.Decimal, walkScore *int) decimal.Decimal {
	gradePremium, ok := gradePremiums[grade]
	if !ok {
		gradePremium = gradePremiums[domain.GradeC]
	}

	cpi := defaultCPICAGR
	if cpiCAGR != nil {
		cpi = *cpiCAGR
	}

	walkComponent := decimal.Zero
	if walkScore != nil && *walkScore >= walkScoreThreshold {
		walkComponent = walkabilityPremium
	}

	composite := gradePremium.Mul(decimal.NewFromFloat(0.50)).
		Add(cpi.Mul(decimal.NewFromFloat(0.30))).
		Add(walkComponent.Mul(decimal.NewFromFloat(0.20)))

	composite = composite.Round(3)

	switch {
	case composite.LessThan(floor):
		return floor
	case composite.GreaterThan(cap):
		return cap
	default:
		return composite
	}
}
