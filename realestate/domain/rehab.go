package domain

import "github.com/shopspring/decimal"

// ConditionGrade is the overall condition assessment feeding both the rehab
// budgeter and the maintenance estimator.
type ConditionGrade string

const (
	ConditionTurnkey ConditionGrade = "turnkey"
	ConditionLight   ConditionGrade = "light"
	ConditionMedium  ConditionGrade = "medium"
	ConditionHeavy   ConditionGrade = "heavy"
	ConditionFullGut ConditionGrade = "full_gut"
)

// RehabCategory enumerates the line items in a rehab budget.
type RehabCategory string

const (
	RehabPaint        RehabCategory = "paint"
	RehabFlooring     RehabCategory = "flooring"
	RehabKitchen      RehabCategory = "kitchen"
	RehabBathrooms    RehabCategory = "bathrooms"
	RehabHVAC         RehabCategory = "hvac"
	RehabElectrical   RehabCategory = "electrical"
	RehabPlumbing     RehabCategory = "plumbing"
	RehabRoof         RehabCategory = "roof"
	RehabWindows      RehabCategory = "windows"
	RehabExterior     RehabCategory = "exterior"
	RehabContingency  RehabCategory = "contingency"
)

// RehabCategories is the fixed, ordered set of categories every budget enumerates.
var RehabCategories = []RehabCategory{
	RehabPaint, RehabFlooring, RehabKitchen, RehabBathrooms, RehabHVAC,
	RehabElectrical, RehabPlumbing, RehabRoof, RehabWindows, RehabExterior,
	RehabContingency,
}

// RehabLineItem is one category's estimated cost, optionally overridden.
type RehabLineItem struct {
	Category      RehabCategory
	EstimatedCost decimal.Decimal
	OverrideCost  *decimal.Decimal
}

// Cost returns OverrideCost when set, else EstimatedCost.
func (i RehabLineItem) Cost() decimal.Decimal {
	if i.OverrideCost != nil {
		return *i.OverrideCost
	}
	return i.EstimatedCost
}

// RehabBudget is the immutable, fully-resolved rehab cost estimate for a deal.
type RehabBudget struct {
	ConditionGrade ConditionGrade
	LineItems      []RehabLineItem
	RehabMonths    int
	TotalOverride  *decimal.Decimal
}

// TotalCost is TotalOverride when set, else the sum of every line item's Cost.
func (b RehabBudget) TotalCost() decimal.Decimal {
	if b.TotalOverride != nil {
		return *b.TotalOverride
	}
	total := decimal.Zero
	for _, item := range b.LineItems {
		total = total.Add(item.Cost())
	}
	return total
}
