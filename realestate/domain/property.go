package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PropertyType enumerates the property shapes the engine prices.
type PropertyType string

const (
	PropertyTypeSFR         PropertyType = "SFR"
	PropertyTypeCondo       PropertyType = "Condo"
	PropertyTypeTownhouse   PropertyType = "Townhouse"
	PropertyTypeMultiFamily PropertyType = "MultiFamily"
)

// Comp is a single comparable sale or rental used by upstream resolvers; the
// core treats it as opaque reference data attached to PropertyDetail.
type Comp struct {
	Address      Address
	Price        decimal.Decimal
	DistanceMi   decimal.Decimal
	ClosedOn     string
	SourceTag    string
	SquareFeet   int
	BedroomCount int
}

// PropertyDetail describes the physical and market facts about a subject
// property. Immutable; every pointer-shaped optional field in the distilled
// Python source is modeled here as a decimal.Decimal zero value plus an
// explicit presence flag where "present vs. zero" matters to a downstream
// estimator (e.g. EstimatedValue).
type PropertyDetail struct {
	ID uuid.UUID

	Address Address

	Beds         decimal.Decimal // fractional, e.g. 3.25 is not meaningful; use for quarter baths only, kept as decimal for symmetry with Baths
	Baths        decimal.Decimal // fractional quarters, e.g. 2.25
	SquareFeet   int
	YearBuilt    int
	LotSquareFeet int
	PropertyType PropertyType

	EstimatedValue  decimal.Decimal
	HasEstimatedValue bool
	LastSalePrice   decimal.Decimal
	HasLastSalePrice bool
	AssessedValue   decimal.Decimal
	AnnualTax       decimal.Decimal
	EstimatedRent   decimal.Decimal

	RentalComps []Comp
	SaleComps   []Comp
}
