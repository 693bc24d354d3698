// Package insurance estimates an annual homeowner/landlord premium as a base
// replacement-cost rate multiplied by a stack of hazard surcharges — flood,
// seismic, wildfire, hurricane, hail, crime, building age, and property
// type. Each active surcharge is recorded in the justification string.
package insurance

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"reiproforma/money"
	"reiproforma/realestate/domain"
)

var (
	baseReplacementPct = decimal.NewFromFloat(0.80)
	baseRate           = decimal.NewFromFloat(0.0035)
	floorAmount        = decimal.NewFromInt(400)
)

// Estimate is the priced premium plus the confidence and explanation the
// manifest needs.
type Estimate struct {
	AnnualPremium decimal.Decimal
	Confidence    domain.Confidence
	Justification string
}

type surcharge struct {
	label string
	mult  decimal.Decimal
}

func floodMultiplier(zone string) surcharge {
	switch strings.ToUpper(zone) {
	case "V", "VE":
		return surcharge{"flood zone " + zone, decimal.NewFromFloat(2.0)}
	case "A", "AE", "AH", "AO":
		return surcharge{"flood zone " + zone, decimal.NewFromFloat(1.5)}
	case "A99":
		return surcharge{"flood zone A99", decimal.NewFromFloat(1.3)}
	case "X500", "B":
		return surcharge{"flood zone " + zone, decimal.NewFromFloat(1.15)}
	default:
		return surcharge{"", decimal.NewFromInt(1)}
	}
}

func earthquakeMultiplier(pga *decimal.Decimal) surcharge {
	if pga == nil {
		return surcharge{"", decimal.NewFromInt(1)}
	}
	switch {
	case pga.GreaterThanOrEqual(decimal.NewFromFloat(0.4)):
		return surcharge{"high seismic hazard (PGA >= 0.4g)", decimal.NewFromFloat(1.40)}
	case pga.GreaterThanOrEqual(decimal.NewFromFloat(0.2)):
		return surcharge{"moderate seismic hazard (PGA >= 0.2g)", decimal.NewFromFloat(1.20)}
	default:
		return surcharge{"", decimal.NewFromInt(1)}
	}
}

func wildfireMultiplier(risk *int) surcharge {
	if risk == nil {
		return surcharge{"", decimal.NewFromInt(1)}
	}
	switch {
	case *risk >= 5:
		return surcharge{"wildfire risk class 5", decimal.NewFromFloat(1.35)}
	case *risk == 4:
		return surcharge{"wildfire risk class 4", decimal.NewFromFloat(1.20)}
	case *risk == 3:
		return surcharge{"wildfire risk class 3", decimal.NewFromFloat(1.10)}
	default:
		return surcharge{"", decimal.NewFromInt(1)}
	}
}

func hurricaneMultiplier(zone *int) surcharge {
	if zone == nil {
		return surcharge{"", decimal.NewFromInt(1)}
	}
	switch {
	case *zone >= 3:
		return surcharge{"hurricane zone 3+", decimal.NewFromFloat(1.30)}
	case *zone >= 1:
		return surcharge{"hurricane zone 1-2", decimal.NewFromFloat(1.15)}
	default:
		return surcharge{"", decimal.NewFromInt(1)}
	}
}

func hailMultiplier(freq *domain.HailFrequency) surcharge {
	if freq == nil {
		return surcharge{"", decimal.NewFromInt(1)}
	}
	switch *freq {
	case domain.HailHigh:
		return surcharge{"high hail frequency", decimal.NewFromFloat(1.15)}
	case domain.HailModerate:
		return surcharge{"moderate hail frequency", decimal.NewFromFloat(1.08)}
	default:
		return surcharge{"", decimal.NewFromInt(1)}
	}
}

func crimeMultiplier(rate *decimal.Decimal) surcharge {
	if rate == nil {
		return surcharge{"", decimal.NewFromInt(1)}
	}
	switch {
	case rate.GreaterThan(decimal.NewFromInt(3500)):
		return surcharge{"high property crime rate", decimal.NewFromFloat(1.15)}
	case rate.GreaterThan(decimal.NewFromInt(2000)):
		return surcharge{"elevated property crime rate", decimal.NewFromFloat(1.05)}
	default:
		return surcharge{"", decimal.NewFromInt(1)}
	}
}

func ageMultiplier(yearBuilt int) surcharge {
	switch {
	case yearBuilt < 1950:
		return surcharge{"built before 1950", decimal.NewFromFloat(1.20)}
	case yearBuilt < 1970:
		return surcharge{"built before 1970", decimal.NewFromFloat(1.10)}
	default:
		return surcharge{"", decimal.NewFromInt(1)}
	}
}

func typeMultiplier(propertyType domain.PropertyType) surcharge {
	switch propertyType {
	case domain.PropertyTypeMultiFamily:
		return surcharge{"multi-family property type", decimal.NewFromFloat(1.15)}
	case domain.PropertyTypeCondo:
		return surcharge{"condo property type", decimal.NewFromFloat(0.80)}
	default:
		return surcharge{"", decimal.NewFromInt(1)}
	}
}

// Estimate prices the annual premium for a property given its value, year
// built, type, and a neighborhood report's hazard fields (any of which may
// be nil/empty, meaning "no data" rather than "no hazard").
func EstimateAnnualInsurance(propertyValue decimal.Decimal, yearBuilt int, propertyType domain.PropertyType, hazards domain.NeighborhoodReport) Estimate {
	base := propertyValue.Mul(baseReplacementPct).Mul(baseRate)

	surcharges := []surcharge{
		floodMultiplier(hazards.FloodZone),
		earthquakeMultiplier(hazards.SeismicPGA),
		wildfireMultiplier(hazards.WildfireRisk),
		hurricaneMultiplier(hazards.HurricaneZone),
		hailMultiplier(hazards.HailFrequency),
		crimeMultiplier(hazards.CrimeRate),
		ageMultiplier(yearBuilt),
		typeMultiplier(propertyType),
	}

	premium := base
	var active []string
	for _, s := range surcharges {
		premium = premium.Mul(s.mult)
		if s.label != "" {
			active = append(active, fmt.Sprintf("%s (x%s)", s.label, s.mult.StringFixed(2)))
		}
	}

	premium = premium.Round(0)
	confidence := domain.ConfidenceMedium

	if premium.LessThan(floorAmount) {
		premium = floorAmount
		confidence = domain.ConfidenceLow
	}

	justification := "base replacement-cost rate"
	if len(active) > 0 {
		justification += "; surcharges: " + strings.Join(active, ", ")
	}

	return Estimate{
		AnnualPremium: money.Dollars(premium),
		Confidence:    confidence,
		Justification: justification,
	}
}
