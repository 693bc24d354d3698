package domain

import "github.com/shopspring/decimal"

// TierResult is one tier's (LLM, HUD-FMR, RentCast) contribution to the
// blended rent estimate.
type TierResult struct {
	Tier       string // "llm" | "hud" | "rentcast"
	Estimate   *decimal.Decimal
	Confidence Confidence
	Reasoning  string
}

// RentEstimate is the tiered rent service's output contract — the only part
// of that service the core consumes.
type RentEstimate struct {
	Address            string
	EstimatedRent      decimal.Decimal
	Confidence         Confidence
	ConfidenceScore    decimal.Decimal
	NeedsReview        bool
	TierResults        []TierResult
	RecommendedRangeLow  decimal.Decimal
	RecommendedRangeHigh decimal.Decimal
}
