package domain

import "github.com/shopspring/decimal"

// NeighborhoodGrade is the composite A-F letter grade produced by the
// neighborhood grader.
type NeighborhoodGrade string

const (
	GradeA NeighborhoodGrade = "A"
	GradeB NeighborhoodGrade = "B"
	GradeC NeighborhoodGrade = "C"
	GradeD NeighborhoodGrade = "D"
	GradeF NeighborhoodGrade = "F"
)

// NeighborhoodDemographics holds ACS-style demographic facts. Pointer fields
// signal "unknown" vs. "zero".
type NeighborhoodDemographics struct {
	MedianHouseholdIncome *int
	MedianHomeValue       *int
	PovertyRate           *decimal.Decimal
	Population            *int
	RenterPct             *decimal.Decimal
}

// WalkScoreResult holds Walk Score API facts.
type WalkScoreResult struct {
	WalkScore    *int
	TransitScore *int
	BikeScore    *int
}

// SchoolInfo is one nearby school's rating.
type SchoolInfo struct {
	Name         string
	Rating       int // 1-10
	Level        string
	DistanceMi   decimal.Decimal
}

// HailFrequency is a three-tier hazard classification used by the insurance
// composite model.
type HailFrequency string

const (
	HailLow      HailFrequency = "low"
	HailModerate HailFrequency = "moderate"
	HailHigh     HailFrequency = "high"
)

// NeighborhoodReport is the full external neighborhood-intelligence payload,
// including the hazard fields consumed by the insurance composite model.
type NeighborhoodReport struct {
	Grade      NeighborhoodGrade
	GradeScore decimal.Decimal

	Demographics *NeighborhoodDemographics
	WalkScore    *WalkScoreResult
	Schools      []SchoolInfo
	AvgSchoolRating *decimal.Decimal
	AINarrative  string

	FloodZone        string
	SeismicPGA       *decimal.Decimal
	WildfireRisk     *int // 1-5
	HurricaneZone    *int // 0-3
	HailFrequency    *HailFrequency
	CrimeRate        *decimal.Decimal // property crime per 100k
	ClimateZone      string
	TrafficNoiseScore *int
}
