// Package domain holds the immutable value types shared by every pro forma
// component: addresses, property facts, investor tax profile, deal assumptions,
// the smart-assumption manifest, and the yearly/disposition/analysis results.
package domain

import "github.com/shopspring/decimal"

// Address is an immutable value type keying external lookups (geocoding, AVM,
// ACS, hazard data). It carries no behavior of its own.
type Address struct {
	Street string
	City   string
	State  string // two-letter USPS code
	Zip    string
	County string

	Lat decimal.Decimal
	Lon decimal.Decimal

	// FIPS triple, optional — state/county/tract codes used by Census lookups.
	FIPSState  string
	FIPSCounty string
	FIPSTract  string
}
