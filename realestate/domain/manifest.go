package domain

import "github.com/shopspring/decimal"

// AssumptionSource records where a resolved DealAssumptions field came from.
type AssumptionSource string

const (
	SourceAPIFetched   AssumptionSource = "api_fetched"
	SourceEstimated    AssumptionSource = "estimated"
	SourceUserOverride AssumptionSource = "user_override"
	SourceDefault      AssumptionSource = "default"
)

// Confidence grades how much an estimate should be trusted.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// AssumptionDetail is the auditable record behind one resolved field: what
// value was used, where it came from, how confident the builder is, and a
// free-text justification a human can read in a tooltip.
type AssumptionDetail struct {
	FieldName     string
	Value         decimal.Decimal
	Source        AssumptionSource
	Confidence    Confidence
	Justification string
	DataPoints    map[string]any
}

// AssumptionManifest is the complete set of AssumptionDetail records produced
// alongside a DealAssumptions build, one per scalar field.
type AssumptionManifest struct {
	Details map[string]AssumptionDetail
}

// NewAssumptionManifest returns an empty, ready-to-populate manifest.
func NewAssumptionManifest() AssumptionManifest {
	return AssumptionManifest{Details: make(map[string]AssumptionDetail)}
}

// Get returns the detail for fieldName and whether it was present.
func (m AssumptionManifest) Get(fieldName string) (AssumptionDetail, bool) {
	d, ok := m.Details[fieldName]
	return d, ok
}

// Set records detail under its own FieldName.
func (m AssumptionManifest) Set(detail AssumptionDetail) {
	m.Details[detail.FieldName] = detail
}
