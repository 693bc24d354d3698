// Package assumptionbuilder sits between data resolution and the pure
// engine: it turns a PropertyDetail, an optional NeighborhoodReport, a
// MacroContext, and a set of user overrides into a resolved DealAssumptions
// plus an AssumptionManifest recording where every field came from and how
// confident the builder is in it.
package assumptionbuilder

import (
	"fmt"

	"github.com/shopspring/decimal"

	"reiproforma/money"
	"reiproforma/realestate/appreciation"
	"reiproforma/realestate/domain"
	"reiproforma/realestate/insurance"
	"reiproforma/realestate/loanproducts"
	"reiproforma/realestate/maintenance"
)

// stateClimateZone is a coarse state-to-Building-America-climate-zone map
// used only when the neighborhood report doesn't carry one directly.
var stateClimateZone = map[string]maintenance.ClimateZone{
	"FL": maintenance.ClimateHotHumid, "TX": maintenance.ClimateHotHumid, "LA": maintenance.ClimateHotHumid,
	"AZ": maintenance.ClimateHotDry, "NV": maintenance.ClimateHotDry, "NM": maintenance.ClimateHotDry,
	"GA": maintenance.ClimateMixedHumid, "NC": maintenance.ClimateMixedHumid, "SC": maintenance.ClimateMixedHumid,
	"TN": maintenance.ClimateMixedHumid, "VA": maintenance.ClimateMixedHumid,
	"CA": maintenance.ClimateMixedDry,
	"OH": maintenance.ClimateCold, "IL": maintenance.ClimateCold, "IN": maintenance.ClimateCold,
	"MI": maintenance.ClimateCold, "PA": maintenance.ClimateCold, "NY": maintenance.ClimateCold,
	"MN": maintenance.ClimateVeryCold, "ND": maintenance.ClimateVeryCold, "WI": maintenance.ClimateVeryCold,
	"WA": maintenance.ClimateMarine, "OR": maintenance.ClimateMarine,
}

// stateClosingCostPct is a rough state-level closing cost percentage,
// standing in for the county/title data the upstream resolver fetches.
var stateClosingCostPct = map[string]decimal.Decimal{
	"NY": decimal.NewFromFloat(0.04), "PA": decimal.NewFromFloat(0.035), "DE": decimal.NewFromFloat(0.03),
	"WA": decimal.NewFromFloat(0.016), "CO": decimal.NewFromFloat(0.012), "TX": decimal.NewFromFloat(0.017),
}

var defaultClosingCostPct = decimal.NewFromFloat(0.02)

func climateZoneFor(state string, reportZone string) maintenance.ClimateZone {
	if reportZone != "" {
		return maintenance.ClimateZone(reportZone)
	}
	if z, ok := stateClimateZone[state]; ok {
		return z
	}
	return maintenance.ClimateCold
}

func closingCostPctFor(state string) decimal.Decimal {
	if pct, ok := stateClosingCostPct[state]; ok {
		return pct
	}
	return defaultClosingCostPct
}

func detail(field string, value decimal.Decimal, source domain.AssumptionSource, confidence domain.Confidence, justification string) domain.AssumptionDetail {
	return domain.AssumptionDetail{
		FieldName:     field,
		Value:         value,
		Source:        source,
		Confidence:    confidence,
		Justification: justification,
	}
}

// overrideOr returns overrideValue when non-nil, else estimateValue, along
// with the manifest detail that explains which path was taken.
func overrideOr(field string, overrideValue *decimal.Decimal, estimateValue decimal.Decimal, source domain.AssumptionSource, confidence domain.Confidence, justification string) (decimal.Decimal, domain.AssumptionDetail) {
	if overrideValue != nil {
		return *overrideValue, detail(field, *overrideValue, domain.SourceUserOverride, domain.ConfidenceHigh, fmt.Sprintf("User override: %s", overrideValue.String()))
	}
	return estimateValue, detail(field, estimateValue, source, confidence, justification)
}

// Build resolves a complete DealAssumptions and its audit manifest. Every
// field follows the same precedence: explicit override, then a data/model
// estimate, then a documented default.
func Build(
	prop domain.PropertyDetail,
	neighborhood *domain.NeighborhoodReport,
	macro domain.MacroContext,
	overrides domain.UserOverrides,
	conditionGrade domain.ConditionGrade,
	rehabBudget *domain.RehabBudget,
	rentEstimate *domain.RentEstimate,
) (domain.DealAssumptions, domain.AssumptionManifest, error) {
	manifest := domain.NewAssumptionManifest()
	state := prop.Address.State
	if state == "" {
		state = "OH"
	}

	// Purchase price
	estPrice := decimal.Zero
	priceSource := domain.SourceDefault
	priceConf := domain.ConfidenceLow
	priceJust := "No data available — user must provide"
	if prop.HasEstimatedValue && prop.EstimatedValue.GreaterThan(decimal.Zero) {
		estPrice = prop.EstimatedValue
		priceSource, priceConf = domain.SourceAPIFetched, domain.ConfidenceHigh
		priceJust = fmt.Sprintf("AVM estimate: $%s", estPrice.StringFixed(0))
	} else if prop.HasLastSalePrice && prop.LastSalePrice.GreaterThan(decimal.Zero) {
		estPrice = prop.LastSalePrice
		priceSource, priceConf = domain.SourceAPIFetched, domain.ConfidenceHigh
		priceJust = fmt.Sprintf("Last sale price: $%s", estPrice.StringFixed(0))
	}
	if overrides.PurchasePrice == nil && estPrice.IsZero() {
		return domain.DealAssumptions{}, domain.AssumptionManifest{}, &domain.MissingInputsError{
			Field:  "purchase_price",
			Reason: "no estimated_value, last_sale_price, or user override supplied",
		}
	}
	purchasePrice, d := overrideOr("purchase_price", overrides.PurchasePrice, estPrice, priceSource, priceConf, priceJust)
	manifest.Set(d)

	// Loan type & terms
	loanType := "conventional"
	if overrides.LoanType != nil {
		loanType = *overrides.LoanType
	}

	var loan domain.LoanOption
	if loanType == "dscr" {
		loan = loanproducts.DSCR(macro, decimal.NewFromFloat(1.2))
	} else {
		loan = loanproducts.Conventional(macro, loanproducts.CreditGood)
	}

	interestRate, d := overrideOr("interest_rate", overrides.InterestRate, loan.InterestRate, domain.SourceEstimated, domain.ConfidenceMedium, loan.RateSource)
	manifest.Set(d)

	ltv, d := overrideOr("ltv", overrides.LTV, loan.LTV, domain.SourceEstimated, domain.ConfidenceHigh,
		fmt.Sprintf("%s default: %s%% LTV", loan.LoanType, loan.LTV.Mul(decimal.NewFromInt(100)).StringFixed(0)))
	manifest.Set(d)

	var loanTermOverride *decimal.Decimal
	if overrides.LoanTermYears != nil {
		v := decimal.NewFromInt(int64(*overrides.LoanTermYears))
		loanTermOverride = &v
	}
	loanTermDecimal, d := overrideOr("loan_term_years", loanTermOverride, decimal.NewFromInt(int64(loan.LoanTermYears)), domain.SourceDefault, domain.ConfidenceHigh, "Standard fixed-rate term")
	loanTermYears := int(loanTermDecimal.IntPart())
	manifest.Set(d)
	loanTypeSource, loanTypeJust := domain.SourceDefault, fmt.Sprintf("Loan type: %s", loanType)
	if overrides.LoanType != nil {
		loanTypeSource, loanTypeJust = domain.SourceUserOverride, fmt.Sprintf("User override: %s", loanType)
	}
	manifest.Set(detail("loan_type", decimal.Zero, loanTypeSource, domain.ConfidenceHigh, loanTypeJust))

	// Monthly rent
	estRent := prop.EstimatedRent
	rentSource := domain.SourceDefault
	rentConf := domain.ConfidenceLow
	rentJust := "No rent data — user must provide"
	if rentEstimate != nil && rentEstimate.EstimatedRent.GreaterThan(decimal.Zero) {
		estRent = rentEstimate.EstimatedRent
		rentSource, rentConf = domain.SourceAPIFetched, rentEstimate.Confidence
		rentJust = fmt.Sprintf("Tiered rent estimate $%s/mo (%s confidence)", estRent.StringFixed(0), rentEstimate.Confidence)
	} else if estRent.GreaterThan(decimal.Zero) {
		rentSource, rentConf = domain.SourceAPIFetched, domain.ConfidenceHigh
		rentJust = fmt.Sprintf("Rent AVM: $%s/mo", estRent.StringFixed(0))
	}
	monthlyRent, d := overrideOr("monthly_rent", overrides.MonthlyRent, estRent, rentSource, rentConf, rentJust)
	manifest.Set(d)

	// Rent growth
	cpiCAGR := decimal.NewFromFloat(0.03)
	if macro.CPI5YrCAGR != nil {
		cpiCAGR = *macro.CPI5YrCAGR
	}
	gradePremium := decimal.Zero
	gradePremiums := map[domain.NeighborhoodGrade]decimal.Decimal{
		domain.GradeA: decimal.NewFromFloat(0.005), domain.GradeB: decimal.NewFromFloat(0.003),
		domain.GradeC: decimal.Zero, domain.GradeD: decimal.NewFromFloat(-0.005), domain.GradeF: decimal.NewFromFloat(-0.01),
	}
	if neighborhood != nil && neighborhood.Grade != "" {
		if v, ok := gradePremiums[neighborhood.Grade]; ok {
			gradePremium = v
		}
	}
	estRentGrowth := money.Clamp(
		cpiCAGR.Mul(decimal.NewFromFloat(0.50)).Add(gradePremium).Add(cpiCAGR.Mul(decimal.NewFromFloat(0.20))),
		decimal.NewFromFloat(0.01), decimal.NewFromFloat(0.06),
	).Round(3)
	annualRentGrowth, d := overrideOr("annual_rent_growth", overrides.AnnualRentGrowth, estRentGrowth, domain.SourceEstimated, domain.ConfidenceMedium,
		fmt.Sprintf("50%% CPI CAGR (%s%%) + neighborhood grade premium + 20%% local trend", cpiCAGR.Mul(decimal.NewFromInt(100)).StringFixed(1)))
	manifest.Set(d)

	// Vacancy rate
	estVacancy := decimal.NewFromFloat(0.05)
	vacancyJust := "Default 5% vacancy"
	vacancyConf := domain.ConfidenceLow
	if neighborhood != nil && neighborhood.Demographics != nil && neighborhood.Demographics.RenterPct != nil {
		rp := *neighborhood.Demographics.RenterPct
		switch {
		case rp.GreaterThan(decimal.NewFromFloat(0.60)):
			estVacancy, vacancyJust = decimal.NewFromFloat(0.04), "High renter demand -> 4% vacancy"
		case rp.GreaterThan(decimal.NewFromFloat(0.40)):
			estVacancy, vacancyJust = decimal.NewFromFloat(0.05), "Moderate renter demand -> 5% vacancy"
		case rp.GreaterThan(decimal.NewFromFloat(0.20)):
			estVacancy, vacancyJust = decimal.NewFromFloat(0.06), "Lower renter demand -> 6% vacancy"
		default:
			estVacancy, vacancyJust = decimal.NewFromFloat(0.08), "Low renter demand -> 8% vacancy"
		}
		vacancyConf = domain.ConfidenceMedium
	}
	vacancyRate, d := overrideOr("vacancy_rate", overrides.VacancyRate, estVacancy, domain.SourceEstimated, vacancyConf, vacancyJust)
	manifest.Set(d)

	// Property tax
	estTax := prop.AnnualTax
	taxSource, taxConf := domain.SourceDefault, domain.ConfidenceLow
	taxJust := ""
	if estTax.GreaterThan(decimal.Zero) {
		taxSource, taxConf = domain.SourceAPIFetched, domain.ConfidenceHigh
		taxJust = fmt.Sprintf("Assessor record: $%s/yr", estTax.StringFixed(0))
	} else {
		estTax = purchasePrice.Mul(decimal.NewFromFloat(0.01)).Round(0)
		taxJust = fmt.Sprintf("Default 1%% of value: $%s/yr", estTax.StringFixed(0))
	}
	propertyTax, d := overrideOr("property_tax", overrides.PropertyTax, estTax, taxSource, taxConf, taxJust)
	manifest.Set(d)

	// Insurance (composite model)
	var report domain.NeighborhoodReport
	if neighborhood != nil {
		report = *neighborhood
	}
	insEstimate := insurance.EstimateAnnualInsurance(purchasePrice, yearBuiltOrDefault(prop.YearBuilt), prop.PropertyType, report)
	insuranceValue, d := overrideOr("insurance", overrides.Insurance, insEstimate.AnnualPremium, domain.SourceEstimated, insEstimate.Confidence, insEstimate.Justification)
	manifest.Set(d)

	// Maintenance %
	var renterPct *decimal.Decimal
	if neighborhood != nil && neighborhood.Demographics != nil {
		renterPct = neighborhood.Demographics.RenterPct
	}
	reportClimateZone := ""
	if neighborhood != nil {
		reportClimateZone = neighborhood.ClimateZone
	}
	climate := climateZoneFor(state, reportClimateZone)
	maintEstimate := maintenance.EstimatePct(yearBuiltOrDefault(prop.YearBuilt), currentAssumedYear(macro), conditionGrade, climate, renterPct)
	maintenancePct, d := overrideOr("maintenance_pct", overrides.MaintenancePct, maintEstimate.Pct, domain.SourceEstimated, maintEstimate.Confidence,
		fmt.Sprintf("Age/condition/climate/renter-density model: %s%%", maintEstimate.Pct.Mul(decimal.NewFromInt(100)).StringFixed(1)))
	manifest.Set(d)

	// Management fee
	estMgmt := decimal.NewFromFloat(0.08)
	mgmtJust := "Default 8% SFR management"
	if prop.PropertyType == domain.PropertyTypeMultiFamily {
		estMgmt = decimal.NewFromFloat(0.06)
		mgmtJust = "Multi-family: 6% management"
	}
	managementPct, d := overrideOr("management_pct", overrides.ManagementPct, estMgmt, domain.SourceDefault, domain.ConfidenceMedium, mgmtJust)
	manifest.Set(d)

	// Capex reserve
	capexReservePct, d := overrideOr("capex_reserve_pct", overrides.CapexReservePct, decimal.NewFromFloat(0.05), domain.SourceDefault, domain.ConfidenceMedium, "Standard 5% capex reserve")
	manifest.Set(d)

	// HOA
	estHOA := decimal.Zero
	hoaJust := "No HOA"
	if prop.PropertyType == domain.PropertyTypeCondo || prop.PropertyType == domain.PropertyTypeTownhouse {
		estHOA = decimal.NewFromInt(250)
		hoaJust = "Estimated condo/townhouse HOA: $250/mo"
	}
	hoa, d := overrideOr("hoa", overrides.HOA, estHOA, domain.SourceDefault, domain.ConfidenceLow, hoaJust)
	manifest.Set(d)

	// Appreciation
	var walkScore *int
	if neighborhood != nil && neighborhood.WalkScore != nil {
		walkScore = neighborhood.WalkScore.WalkScore
	}
	grade := domain.GradeC
	if neighborhood != nil && neighborhood.Grade != "" {
		grade = neighborhood.Grade
	}
	estAppreciation := appreciation.Estimate(grade, macro.CPI5YrCAGR, walkScore)
	annualAppreciation, d := overrideOr("annual_appreciation", overrides.AnnualAppreciation, estAppreciation, domain.SourceEstimated, domain.ConfidenceMedium,
		"50% neighborhood grade + 30% CPI CAGR + 20% walkability premium")
	manifest.Set(d)

	// Land value %
	landValuePct, d := overrideOr("land_value_pct", overrides.LandValuePct, decimal.NewFromFloat(0.20), domain.SourceDefault, domain.ConfidenceLow, "Default 20% land value")
	manifest.Set(d)

	// Expense growth
	expenseGrowthConf := domain.ConfidenceLow
	estExpenseGrowth := decimal.NewFromFloat(0.02)
	if macro.CPI5YrCAGR != nil {
		estExpenseGrowth = *macro.CPI5YrCAGR
		expenseGrowthConf = domain.ConfidenceMedium
	}
	annualExpenseGrowth, d := overrideOr("annual_expense_growth", overrides.AnnualExpenseGrowth, estExpenseGrowth, domain.SourceEstimated, expenseGrowthConf,
		fmt.Sprintf("CPI 5yr CAGR: %s%%", estExpenseGrowth.Mul(decimal.NewFromInt(100)).StringFixed(1)))
	manifest.Set(d)

	// Hold years
	var holdYearsOverride *decimal.Decimal
	if overrides.HoldYears != nil {
		v := decimal.NewFromInt(int64(*overrides.HoldYears))
		holdYearsOverride = &v
	}
	holdYearsDecimal, d := overrideOr("hold_years", holdYearsOverride, decimal.NewFromInt(7), domain.SourceDefault, domain.ConfidenceMedium, "Default 7-year hold")
	holdYears := int(holdYearsDecimal.IntPart())
	manifest.Set(d)

	// Selling costs
	sellingCostsPct, d := overrideOr("selling_costs_pct", overrides.SellingCostsPct, decimal.NewFromFloat(0.06), domain.SourceDefault, domain.ConfidenceHigh,
		"Standard 6% selling costs (agent commission + closing)")
	manifest.Set(d)

	// Closing costs
	closingCostPct := closingCostPctFor(state)
	estClosingCosts := purchasePrice.Mul(closingCostPct).Round(0)
	var closingCosts decimal.Decimal
	if overrides.ClosingCostPct != nil {
		closingCosts = purchasePrice.Mul(*overrides.ClosingCostPct).Round(0)
		manifest.Set(detail("closing_costs", closingCosts, domain.SourceUserOverride, domain.ConfidenceHigh,
			fmt.Sprintf("User override: %s%%", overrides.ClosingCostPct.Mul(decimal.NewFromInt(100)).StringFixed(1))))
	} else {
		closingCosts = estClosingCosts
		manifest.Set(detail("closing_costs", closingCosts, domain.SourceEstimated, domain.ConfidenceMedium,
			fmt.Sprintf("State-level estimate (%s): %s%% = $%s", state, closingCostPct.Mul(decimal.NewFromInt(100)).StringFixed(1), closingCosts.StringFixed(0))))
	}

	budget := domain.RehabBudget{ConditionGrade: domain.ConditionTurnkey}
	if rehabBudget != nil {
		budget = *rehabBudget
	}

	assumptions := domain.DealAssumptions{
		PurchasePrice:        purchasePrice,
		ClosingCosts:         closingCosts,
		LandValuePct:         landValuePct,
		LTV:                  ltv,
		InterestRate:         interestRate,
		LoanTermYears:        loanTermYears,
		LoanPoints:           loan.Points,
		LoanType:             loanType,
		MonthlyRent:          monthlyRent,
		AnnualRentGrowth:     annualRentGrowth,
		VacancyRate:          vacancyRate,
		PropertyTax:          propertyTax,
		Insurance:            insuranceValue,
		MaintenancePct:       maintenancePct,
		ManagementPct:        managementPct,
		CapexReservePct:      capexReservePct,
		HOA:                  hoa,
		AnnualAppreciation:   annualAppreciation,
		HoldYears:            holdYears,
		SellingCostsPct:      sellingCostsPct,
		PlacedInServiceYear:  currentAssumedYear(macro),
		PlacedInServiceMonth: 1,
		AnnualExpenseGrowth:  annualExpenseGrowth,
		RehabBudget:          budget,
	}

	return assumptions, manifest, nil
}

func yearBuiltOrDefault(yearBuilt int) int {
	if yearBuilt == 0 {
		return 2000
	}
	return yearBuilt
}

// currentAssumedYear anchors the pro forma's "today" — the builder never
// calls time.Now() so a given input always resolves deterministically. It
// always returns 2026, the engine's fixed reference year; the macro context
// argument is not consulted.
func currentAssumedYear(_ domain.MacroContext) int {
	return 2026
}
