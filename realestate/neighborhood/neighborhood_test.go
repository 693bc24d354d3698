package neighborhood

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"reiproforma/realestate/domain"
)

func TestAllMissingDataScoresNeutral(t *testing.T) {
	grade, score := ComputeGrade(domain.NeighborhoodReport{})
	// 10 + 10 + 7 + 7 + 10 + 10 = 54
	assert.Equal(t, "54", score.String())
	assert.Equal(t, domain.GradeC, grade)
}

func TestStrongNeighborhoodGradesA(t *testing.T) {
	income := 150_000
	rating := decimal.NewFromInt(9)
	walkScore := 90
	poverty := decimal.NewFromFloat(0.03)
	renterPct := decimal.NewFromFloat(0.40)
	crime := decimal.NewFromInt(800)

	report := domain.NeighborhoodReport{
		Demographics: &domain.NeighborhoodDemographics{
			MedianHouseholdIncome: &income,
			PovertyRate:           &poverty,
			RenterPct:             &renterPct,
		},
		AvgSchoolRating: &rating,
		WalkScore:       &domain.WalkScoreResult{WalkScore: &walkScore},
		CrimeRate:       &crime,
	}

	grade, score := ComputeGrade(report)
	assert.Equal(t, domain.GradeA, grade)
	assert.True(t, score.GreaterThanOrEqual(decimal.NewFromInt(80)))
}

func TestHazardsDragDownScore(t *testing.T) {
	pga := decimal.NewFromFloat(0.45)
	wildfire := 5
	hurricane := 3
	hailHigh := domain.HailHigh

	hazardous := domain.NeighborhoodReport{
		FloodZone:     "VE",
		SeismicPGA:    &pga,
		WildfireRisk:  &wildfire,
		HurricaneZone: &hurricane,
		HailFrequency: &hailHigh,
	}

	_, cleanScore := ComputeGrade(domain.NeighborhoodReport{})
	_, hazardScore := ComputeGrade(hazardous)
	assert.True(t, hazardScore.LessThan(cleanScore))
}
