// Package rentestimate blends the tiered rent service's per-tier outputs
// (LLM, HUD Fair Market Rent, RentCast) into a single estimate with a
// confidence score, an agreement-based needs-review flag, and a
// recommended range. The tiers' own fetch/cache/rate-limit plumbing lives
// outside the core; this package only consumes their TierResult output.
package rentestimate

import (
	"github.com/shopspring/decimal"

	"reiproforma/money"
	"reiproforma/realestate/domain"
)

var tierWeights = map[string]decimal.Decimal{
	"llm":      decimal.NewFromFloat(0.3),
	"hud":      decimal.NewFromFloat(0.3),
	"rentcast": decimal.NewFromFloat(0.4),
}

var confidenceNumeric = map[domain.Confidence]decimal.Decimal{
	domain.ConfidenceLow:    decimal.NewFromFloat(0.30),
	domain.ConfidenceMedium: decimal.NewFromFloat(0.60),
	domain.ConfidenceHigh:   decimal.NewFromFloat(0.85),
}

func confidenceGrade(score decimal.Decimal) domain.Confidence {
	switch {
	case score.GreaterThanOrEqual(decimal.NewFromFloat(0.70)):
		return domain.ConfidenceHigh
	case score.GreaterThanOrEqual(decimal.NewFromFloat(0.45)):
		return domain.ConfidenceMedium
	default:
		return domain.ConfidenceLow
	}
}

// Blend combines one or more TierResults into a single RentEstimate per the
// weighted-average / agreement-adjustment / needs-review rules.
func Blend(address string, tiers []domain.TierResult) domain.RentEstimate {
	type valued struct {
		tier       string
		estimate   decimal.Decimal
		confidence domain.Confidence
	}

	var withValues []valued
	for _, t := range tiers {
		if t.Estimate != nil {
			withValues = append(withValues, valued{t.Tier, *t.Estimate, t.Confidence})
		}
	}

	if len(withValues) == 0 {
		return domain.RentEstimate{
			Address:       address,
			EstimatedRent: decimal.Zero,
			Confidence:    domain.ConfidenceLow,
			TierResults:   tiers,
			NeedsReview:   true,
		}
	}

	weightSum := decimal.Zero
	weightedEstimate := decimal.Zero
	weightedConfidence := decimal.Zero
	minEstimate := withValues[0].estimate
	maxEstimate := withValues[0].estimate

	for _, v := range withValues {
		w, ok := tierWeights[v.tier]
		if !ok {
			w = decimal.NewFromFloat(0.3)
		}
		weightSum = weightSum.Add(w)
		weightedEstimate = weightedEstimate.Add(v.estimate.Mul(w))
		weightedConfidence = weightedConfidence.Add(confidenceNumeric[v.confidence].Mul(w))

		if v.estimate.LessThan(minEstimate) {
			minEstimate = v.estimate
		}
		if v.estimate.GreaterThan(maxEstimate) {
			maxEstimate = v.estimate
		}
	}

	blended := weightedEstimate.Div(weightSum)
	confidenceScore := weightedConfidence.Div(weightSum)

	maxDeviation := decimal.Zero
	for _, v := range withValues {
		dev := v.estimate.Sub(blended).Abs()
		if dev.GreaterThan(maxDeviation) {
			maxDeviation = dev
		}
	}

	if !blended.IsZero() {
		deviationRatio := maxDeviation.Div(blended)
		switch {
		case deviationRatio.LessThan(decimal.NewFromFloat(0.10)):
			confidenceScore = confidenceScore.Add(decimal.NewFromFloat(0.10))
		case deviationRatio.GreaterThan(decimal.NewFromFloat(0.25)):
			confidenceScore = confidenceScore.Sub(decimal.NewFromFloat(0.10))
		}
	}

	confidenceScore = money.Clamp(confidenceScore, decimal.Zero, decimal.NewFromInt(1))

	needsReview := primaryTiersDisagree(withValues)

	margin := blended.Mul(decimal.NewFromInt(1).Sub(confidenceScore)).Mul(decimal.NewFromFloat(0.15))

	return domain.RentEstimate{
		Address:              address,
		EstimatedRent:        money.Dollars(blended),
		Confidence:           confidenceGrade(confidenceScore),
		ConfidenceScore:      confidenceScore.Round(2),
		NeedsReview:          needsReview,
		TierResults:          tiers,
		RecommendedRangeLow:  money.Dollars(minEstimate.Sub(margin)),
		RecommendedRangeHigh: money.Dollars(maxEstimate.Add(margin)),
	}
}

func primaryTiersDisagree(withValues []struct {
	tier       string
	estimate   decimal.Decimal
	confidence domain.Confidence
}) bool {
	var llm, hud *decimal.Decimal
	for _, v := range withValues {
		switch v.tier {
		case "llm":
			est := v.estimate
			llm = &est
		case "hud":
			est := v.estimate
			hud = &est
		}
	}
	if llm == nil || hud == nil {
		return false
	}
	mean := llm.Add(*hud).Div(decimal.NewFromInt(2))
	if mean.IsZero() {
		return false
	}
	diff := llm.Sub(*hud).Abs()
	return diff.Div(mean).GreaterThan(decimal.NewFromFloat(0.20))
}
