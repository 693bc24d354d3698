// Package rehab estimates a renovation budget from property attributes and
// an overall condition grade: a per-sqft cost table by category, scaled by
// an age multiplier, with per-category and whole-budget overrides.
package rehab

import (
	"github.com/shopspring/decimal"

	"reiproforma/money"
	"reiproforma/realestate/domain"
)

var costTable = map[domain.ConditionGrade]map[domain.RehabCategory]decimal.Decimal{
	domain.ConditionTurnkey: zeroRow(),
	domain.ConditionLight: {
		domain.RehabPaint:       decimal.NewFromFloat(2.00),
		domain.RehabFlooring:    decimal.NewFromFloat(2.50),
		domain.RehabExterior:    decimal.NewFromFloat(0.50),
		domain.RehabContingency: decimal.NewFromFloat(1.00),
	},
	domain.ConditionMedium: {
		domain.RehabPaint:       decimal.NewFromFloat(2.50),
		domain.RehabFlooring:    decimal.NewFromFloat(4.00),
		domain.RehabKitchen:     decimal.NewFromFloat(5.00),
		domain.RehabBathrooms:   decimal.NewFromFloat(3.50),
		domain.RehabHVAC:        decimal.NewFromFloat(1.50),
		domain.RehabWindows:     decimal.NewFromFloat(1.00),
		domain.RehabExterior:    decimal.NewFromFloat(1.00),
		domain.RehabContingency: decimal.NewFromFloat(2.50),
	},
	domain.ConditionHeavy: {
		domain.RehabPaint:       decimal.NewFromFloat(3.00),
		domain.RehabFlooring:    decimal.NewFromFloat(5.00),
		domain.RehabKitchen:     decimal.NewFromFloat(8.00),
		domain.RehabBathrooms:   decimal.NewFromFloat(6.00),
		domain.RehabHVAC:        decimal.NewFromFloat(4.00),
		domain.RehabElectrical:  decimal.NewFromFloat(3.00),
		domain.RehabPlumbing:    decimal.NewFromFloat(2.50),
		domain.RehabRoof:        decimal.NewFromFloat(3.00),
		domain.RehabWindows:     decimal.NewFromFloat(2.50),
		domain.RehabExterior:    decimal.NewFromFloat(2.00),
		domain.RehabContingency: decimal.NewFromFloat(4.00),
	},
	domain.ConditionFullGut: {
		domain.RehabPaint:       decimal.NewFromFloat(3.50),
		domain.RehabFlooring:    decimal.NewFromFloat(7.00),
		domain.RehabKitchen:     decimal.NewFromFloat(12.00),
		domain.RehabBathrooms:   decimal.NewFromFloat(9.00),
		domain.RehabHVAC:        decimal.NewFromFloat(6.00),
		domain.RehabElectrical:  decimal.NewFromFloat(5.00),
		domain.RehabPlumbing:    decimal.NewFromFloat(4.00),
		domain.RehabRoof:        decimal.NewFromFloat(5.00),
		domain.RehabWindows:     decimal.NewFromFloat(4.00),
		domain.RehabExterior:    decimal.NewFromFloat(3.50),
		domain.RehabContingency: decimal.NewFromFloat(6.00),
	},
}

func zeroRow() map[domain.RehabCategory]decimal.Decimal {
	row := make(map[domain.RehabCategory]decimal.Decimal, len(domain.RehabCategories))
	for _, cat := range domain.RehabCategories {
		row[cat] = decimal.Zero
	}
	return row
}

var defaultRehabMonths = map[domain.ConditionGrade]int{
	domain.ConditionTurnkey: 0,
	domain.ConditionLight:   1,
	domain.ConditionMedium:  3,
	domain.ConditionHeavy:   6,
	domain.ConditionFullGut: 9,
}

func ageMultiplier(yearBuilt int) decimal.Decimal {
	switch {
	case yearBuilt >= 2000:
		return decimal.NewFromFloat(1.00)
	case yearBuilt >= 1970:
		return decimal.NewFromFloat(1.10)
	case yearBuilt >= 1950:
		return decimal.NewFromFloat(1.20)
	default:
		return decimal.NewFromFloat(1.30)
	}
}

// Options lets a caller override individual line items, the rehab
// duration, or the whole-budget total. Zero value estimates everything.
type Options struct {
	RehabMonths        *int
	LineItemOverrides  map[domain.RehabCategory]decimal.Decimal
	TotalOverride      *decimal.Decimal
}

// EstimateBudget builds a RehabBudget from sqft, build year, and condition
// grade: each category's cost is per_sqft * sqft * age_multiplier, rounded
// to the cent, overridden per-category or in total when Options supplies it.
func EstimateBudget(sqft, yearBuilt int, grade domain.ConditionGrade, opts Options) domain.RehabBudget {
	ageMult := ageMultiplier(yearBuilt)
	sqftDec := decimal.NewFromInt(int64(sqft))
	costRow := costTable[grade]

	lineItems := make([]domain.RehabLineItem, 0, len(domain.RehabCategories))
	for _, category := range domain.RehabCategories {
		perSqft := costRow[category]
		estimated := money.Dollars(perSqft.Mul(sqftDec).Mul(ageMult))

		item := domain.RehabLineItem{Category: category, EstimatedCost: estimated}
		if override, ok := opts.LineItemOverrides[category]; ok {
			item.OverrideCost = &override
		}
		lineItems = append(lineItems, item)
	}

	months := defaultRehabMonths[grade]
	if opts.RehabMonths != nil {
		months = *opts.RehabMonths
	}

	return domain.RehabBudget{
		ConditionGrade: grade,
		LineItems:      lineItems,
		RehabMonths:    months,
		TotalOverride:  opts.TotalOverride,
	}
}
