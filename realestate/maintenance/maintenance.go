// Package maintenance estimates the ongoing maintenance reserve percentage
// of gross rent: an age-based starting point scaled by condition, climate,
// and renter-density multipliers, clamped to a sane band.
package maintenance

import (
	"github.com/shopspring/decimal"

	"reiproforma/realestate/domain"
)

// ClimateZone is the Building America climate classification used to scale
// maintenance reserves.
type ClimateZone string

const (
	ClimateHotHumid   ClimateZone = "hot_humid"
	ClimateHotDry     ClimateZone = "hot_dry"
	ClimateMixedHumid ClimateZone = "mixed_humid"
	ClimateMixedDry   ClimateZone = "mixed_dry"
	ClimateCold       ClimateZone = "cold"
	ClimateVeryCold   ClimateZone = "very_cold"
	ClimateMarine     ClimateZone = "marine"
)

var climateMultipliers = map[ClimateZone]decimal.Decimal{
	ClimateHotHumid:   decimal.NewFromFloat(1.15),
	ClimateHotDry:     decimal.NewFromFloat(1.05),
	ClimateMixedHumid: decimal.NewFromFloat(1.00),
	ClimateMixedDry:   decimal.NewFromFloat(0.95),
	ClimateCold:       decimal.NewFromFloat(1.10),
	ClimateVeryCold:   decimal.NewFromFloat(1.15),
	ClimateMarine:     decimal.NewFromFloat(1.00),
}

var conditionMultipliers = map[domain.ConditionGrade]decimal.Decimal{
	domain.ConditionTurnkey: decimal.NewFromFloat(0.85),
	domain.ConditionLight:   decimal.NewFromFloat(0.95),
	domain.ConditionMedium:  decimal.NewFromFloat(1.00),
	domain.ConditionHeavy:   decimal.NewFromFloat(1.10),
	domain.ConditionFullGut: decimal.NewFromFloat(1.20),
}

var (
	floor = decimal.NewFromFloat(0.03)
	cap   = decimal.NewFromFloat(0.15)
)

func ageBasePct(yearBuilt, asOfYear int) decimal.Decimal {
	age := asOfYear - yearBuilt
	switch {
	case age <= 5:
		return decimal.NewFromFloat(0.03)
	case age <= 15:
		return decimal.NewFromFloat(0.04)
	case age <= 30:
		return decimal.NewFromFloat(0.05)
	case age <= 50:
		return decimal.NewFromFloat(0.07)
	case age <= 75:
		return decimal.NewFromFloat(0.08)
	default:
		return decimal.NewFromFloat(0.10)
	}
}

func renterMultiplier(renterPct *decimal.Decimal) decimal.Decimal {
	if renterPct == nil {
		return decimal.NewFromFloat(1.00)
	}
	switch {
	case renterPct.GreaterThan(decimal.NewFromFloat(0.70)):
		return decimal.NewFromFloat(1.10)
	case renterPct.GreaterThan(decimal.NewFromFloat(0.50)):
		return decimal.NewFromFloat(1.05)
	default:
		return decimal.NewFromFloat(1.00)
	}
}

// Estimate is the clamped maintenance percentage plus its confidence.
type Estimate struct {
	Pct        decimal.Decimal
	Confidence domain.Confidence
}

// EstimatePct computes maintenance_pct = base_age_pct * condition_mult *
// climate_mult * renter_mult, rounded to 0.01 and clamped to [0.03, 0.15].
// Confidence is Medium when renter_pct is known, else Low.
func EstimatePct(yearBuilt, asOfYear int, grade domain.ConditionGrade, climate ClimateZone, renterPct *decimal.Decimal) Estimate {
	base := ageBasePct(yearBuilt, asOfYear)
	condMult, ok := conditionMultipliers[grade]
	if !ok {
		condMult = decimal.NewFromFloat(1.00)
	}
	climateMult, ok := climateMultipliers[climate]
	if !ok {
		climateMult = decimal.NewFromFloat(1.00)
	}
	renterMult := renterMultiplier(renterPct)

	pct := base.Mul(condMult).Mul(climateMult).Mul(renterMult).Round(2)

	switch {
	case pct.LessThan(floor):
		pct = floor
	case pct.GreaterThan(cap):
		pct = cap
	}

	confidence := domain.ConfidenceLow
	if renterPct != nil {
		confidence = domain.ConfidenceMedium
	}

	return Estimate{Pct: pct, Confidence: confidence}
}
