// Package neighborhood computes a 0-100 composite grade across six weighted
// dimensions: income, schools, walkability, housing stability, safety, and
// hazard exposure.
package neighborhood

import (
	"github.com/shopspring/decimal"

	"reiproforma/realestate/domain"
)

func incomeScore(demographics *domain.NeighborhoodDemographics) decimal.Decimal {
	if demographics == nil || demographics.MedianHouseholdIncome == nil {
		return decimal.NewFromInt(10)
	}
	income := *demographics.MedianHouseholdIncome
	switch {
	case income >= 100_000:
		return decimal.NewFromInt(20)
	case income >= 75_000:
		return decimal.NewFromInt(16)
	case income >= 50_000:
		return decimal.NewFromInt(12)
	case income >= 35_000:
		return decimal.NewFromInt(8)
	default:
		return decimal.NewFromInt(4)
	}
}

func schoolScore(avgRating *decimal.Decimal) decimal.Decimal {
	if avgRating == nil {
		return decimal.NewFromInt(10)
	}
	return avgRating.Div(decimal.NewFromInt(10)).Mul(decimal.NewFromInt(20)).Round(1)
}

func walkabilityScore(walk *domain.WalkScoreResult) decimal.Decimal {
	if walk == nil || walk.WalkScore == nil {
		return decimal.NewFromInt(7)
	}
	return decimal.NewFromInt(int64(*walk.WalkScore)).Div(decimal.NewFromInt(100)).Mul(decimal.NewFromInt(15)).Round(1)
}

// housingStabilityScore rescales the original four-dimension grader's 15+10
// poverty/renter tiers into the six-dimension model's 8+7 point budget.
func housingStabilityScore(demographics *domain.NeighborhoodDemographics) decimal.Decimal {
	if demographics == nil {
		return decimal.NewFromInt(7)
	}

	score := decimal.Zero
	if demographics.PovertyRate != nil {
		pov := *demographics.PovertyRate
		switch {
		case pov.LessThan(decimal.NewFromFloat(0.05)):
			score = score.Add(decimal.NewFromInt(8))
		case pov.LessThan(decimal.NewFromFloat(0.10)):
			score = score.Add(decimal.NewFromInt(6))
		case pov.LessThan(decimal.NewFromFloat(0.15)):
			score = score.Add(decimal.NewFromInt(5))
		case pov.LessThan(decimal.NewFromFloat(0.25)):
			score = score.Add(decimal.NewFromInt(3))
		default:
			score = score.Add(decimal.NewFromInt(1))
		}
	}

	if demographics.RenterPct != nil {
		rp := *demographics.RenterPct
		switch {
		case rp.GreaterThanOrEqual(decimal.NewFromFloat(0.30)) && rp.LessThanOrEqual(decimal.NewFromFloat(0.60)):
			score = score.Add(decimal.NewFromInt(7))
		case (rp.GreaterThanOrEqual(decimal.NewFromFloat(0.20)) && rp.LessThan(decimal.NewFromFloat(0.30))) ||
			(rp.GreaterThan(decimal.NewFromFloat(0.60)) && rp.LessThanOrEqual(decimal.NewFromFloat(0.70))):
			score = score.Add(decimal.NewFromInt(5))
		case rp.LessThan(decimal.NewFromFloat(0.20)):
			score = score.Add(decimal.NewFromInt(3))
		default:
			score = score.Add(decimal.NewFromInt(2))
		}
	}

	return score
}

func safetyScore(crimeRate *decimal.Decimal) decimal.Decimal {
	if crimeRate == nil {
		return decimal.NewFromInt(10)
	}
	rate := *crimeRate
	switch {
	case rate.LessThan(decimal.NewFromInt(1000)):
		return decimal.NewFromInt(20)
	case rate.LessThan(decimal.NewFromInt(1500)):
		return decimal.NewFromInt(17)
	case rate.LessThan(decimal.NewFromInt(2000)):
		return decimal.NewFromInt(14)
	case rate.LessThan(decimal.NewFromInt(2500)):
		return decimal.NewFromInt(11)
	case rate.LessThan(decimal.NewFromInt(3000)):
		return decimal.NewFromInt(8)
	case rate.LessThan(decimal.NewFromInt(3500)):
		return decimal.NewFromInt(5)
	default:
		return decimal.NewFromInt(2)
	}
}

func hazardScore(report domain.NeighborhoodReport) decimal.Decimal {
	score := decimal.NewFromInt(10)

	switch report.FloodZone {
	case "V", "VE":
		score = score.Sub(decimal.NewFromInt(3))
	case "A", "AE", "AH", "AO", "A99":
		score = score.Sub(decimal.NewFromInt(2))
	case "X500", "B":
		score = score.Sub(decimal.NewFromInt(1))
	}

	if report.SeismicPGA != nil {
		switch {
		case report.SeismicPGA.GreaterThanOrEqual(decimal.NewFromFloat(0.4)):
			score = score.Sub(decimal.NewFromInt(2))
		case report.SeismicPGA.GreaterThanOrEqual(decimal.NewFromFloat(0.2)):
			score = score.Sub(decimal.NewFromInt(1))
		}
	}

	if report.WildfireRisk != nil {
		switch {
		case *report.WildfireRisk >= 4:
			score = score.Sub(decimal.NewFromInt(2))
		case *report.WildfireRisk >= 3:
			score = score.Sub(decimal.NewFromInt(1))
		}
	}

	if report.HurricaneZone != nil {
		switch {
		case *report.HurricaneZone >= 3:
			score = score.Sub(decimal.NewFromInt(2))
		case *report.HurricaneZone >= 1:
			score = score.Sub(decimal.NewFromInt(1))
		}
	}

	if report.HailFrequency != nil && *report.HailFrequency == domain.HailHigh {
		score = score.Sub(decimal.NewFromInt(1))
	}

	if score.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return score
}

// ComputeGrade scores a neighborhood report across all six dimensions and
// assigns the corresponding letter grade.
func ComputeGrade(report domain.NeighborhoodReport) (domain.NeighborhoodGrade, decimal.Decimal) {
	total := incomeScore(report.Demographics).
		Add(schoolScore(report.AvgSchoolRating)).
		Add(walkabilityScore(report.WalkScore)).
		Add(housingStabilityScore(report.Demographics)).
		Add(safetyScore(report.CrimeRate)).
		Add(hazardScore(report))

	total = total.Round(1)

	var grade domain.NeighborhoodGrade
	switch {
	case total.GreaterThanOrEqual(decimal.NewFromInt(80)):
		grade = domain.GradeA
	case total.GreaterThanOrEqual(decimal.NewFromInt(65)):
		grade = domain.GradeB
	case total.GreaterThanOrEqual(decimal.NewFromInt(45)):
		grade = domain.GradeC
	case total.GreaterThanOrEqual(decimal.NewFromInt(30)):
		grade = domain.GradeD
	default:
		grade = domain.GradeF
	}

	return grade, total
}
