package depreciation

import "github.com/shopspring/decimal"

// residentialTable is IRS Pub 946 Table A-6 (residential rental property,
// 27.5-year straight-line, mid-month convention): percentages keyed
// [year-1][month placed in service - 1], expressed as whole percent.
// Only year 1 varies by placement month, carrying the partial first-month
// stub; years 2-29 are the flat 3.636% full-year rate, independent of
// placed-in-service month.
var residentialTable = buildResidentialTable()

func buildResidentialTable() [29][12]decimal.Decimal {
	var table [29][12]decimal.Decimal

	year1 := [12]string{"3.485", "3.182", "2.879", "2.576", "2.273", "1.970", "1.667", "1.364", "1.061", "0.758", "0.455", "0.152"}

	for m := 0; m < 12; m++ {
		table[0][m] = decimal.RequireFromString(year1[m])
	}
	for y := 1; y < 29; y++ {
		for m := 0; m < 12; m++ {
			table[y][m] = decimal.RequireFromString("3.636")
		}
	}

	return table
}

// macrs5Year is IRS Pub 946 Table A-1 (200% declining balance, half-year
// convention, 5-year property), percentages by year 1-6.
var macrs5Year = decimalsFromStrings([]string{"20.00", "32.00", "19.20", "11.52", "11.52", "5.76"})

// macrs7Year is Table A-1, 7-year property, years 1-8.
var macrs7Year = decimalsFromStrings([]string{"14.29", "24.49", "17.49", "12.49", "8.93", "8.92", "8.93", "4.46"})

// macrs15Year is Table A-1, 15-year property (150% declining balance), years 1-16.
var macrs15Year = decimalsFromStrings([]string{
	"5.00", "9.50", "8.55", "7.70", "6.93", "6.23", "5.90", "5.90",
	"5.91", "5.90", "5.91", "5.90", "5.91", "5.90", "5.91", "2.95",
})

func decimalsFromStrings(values []string) []decimal.Decimal {
	out := make([]decimal.Decimal, len(values))
	for i, v := range values {
		out[i] = decimal.RequireFromString(v)
	}
	return out
}

// macrsTable returns the half-year-convention percentage vector for a MACRS
// class ("5", "7", or "15"). An unrecognized class returns nil.
func macrsTable(class string) []decimal.Decimal {
	switch class {
	case "5":
		return macrs5Year
	case "7":
		return macrs7Year
	case "15":
		return macrs15Year
	default:
		return nil
	}
}

// defaultBonusRates is the fallback placed-in-service-year -> bonus rate
// schedule. TCJA 100% bonus phased down 20 points/year from 2023 through
// 2026 before the late-2025 reconciliation act restored 100% for property
// placed in service after January 19, 2025. The schedule below uses 100% for
// 2025 and 2026 and 80% for 2027; any year not listed gets zero.
var defaultBonusRates = map[int]decimal.Decimal{
	2022: decimal.NewFromFloat(1.0),
	2023: decimal.NewFromFloat(0.8),
	2024: decimal.NewFromFloat(0.6),
	2025: decimal.NewFromFloat(1.0),
	2026: decimal.NewFromFloat(1.0),
	2027: decimal.NewFromFloat(0.8),
}

// BonusRate looks up the bonus depreciation rate for a placed-in-service
// year, falling back to the package default schedule when the caller does
// not supply its own (rates may be overridden, e.g. for state non-conformity
// modeling or legislative updates).
func BonusRate(placedInServiceYear int, rates map[int]decimal.Decimal) decimal.Decimal {
	if rates == nil {
		rates = defaultBonusRates
	}
	if r, ok := rates[placedInServiceYear]; ok {
		return r
	}
	return decimal.Zero
}
