package models

import (
	"github.com/shopspring/decimal"
)

// Provenance marks where a canonical market field came from
type Provenance string

const (
	ProvenanceMeasured  Provenance = "measured"  // taken directly from the source record
	ProvenanceDerived   Provenance = "derived"   // computed from other measured fields
	ProvenanceEstimated Provenance = "estimated" // filled from a neutral default
)

// Canonical market field names, used as provenance keys
const (
	FieldPopulation           = "population"
	FieldMedianHomeValue      = "median_home_value"
	FieldAverageDailyRate     = "average_daily_rate"
	FieldOccupancyRate        = "occupancy_rate"
	FieldAnnualRevenue        = "annual_revenue"
	FieldSaturation           = "saturation"
	FieldLandlordFavorability = "landlord_favorability"
	FieldSeasonality          = "seasonality_consistency"
)

// Market is the canonical, normalized input to scoring.
// Currency fields are in whole dollars; percentage and index fields are on a 0-100 scale.
type Market struct {
	ID                     string                `json:"id"`
	City                   string                `json:"city"`
	State                  string                `json:"state"`
	Population             int64                 `json:"population"`
	MedianHomeValue        decimal.Decimal       `json:"median_home_value"`
	AverageDailyRate       decimal.Decimal       `json:"average_daily_rate"`
	OccupancyRate          decimal.Decimal       `json:"occupancy_rate"` // percent, 0-100
	MonthlyRevenue         decimal.Decimal       `json:"monthly_revenue"`
	AnnualRevenue          decimal.Decimal       `json:"annual_revenue"`
	Saturation             decimal.Decimal       `json:"saturation"`              // 0-100, higher = more competition
	LandlordFavorability   decimal.Decimal       `json:"landlord_favorability"`   // 0-100, state level
	SeasonalityConsistency decimal.Decimal       `json:"seasonality_consistency"` // 0-100, higher = steadier income
	Provenance             map[string]Provenance `json:"provenance"`
}

// IsEstimated reports whether a field was filled from a neutral default
func (m Market) IsEstimated(field string) bool {
	return m.Provenance[field] == ProvenanceEstimated
}

// EstimatedFields returns the canonical field names that were defaulted, in a stable order
func (m Market) EstimatedFields() []string {
	fields := []string{
		FieldPopulation, FieldMedianHomeValue, FieldAverageDailyRate, FieldOccupancyRate,
		FieldAnnualRevenue, FieldSaturation, FieldLandlordFavorability, FieldSeasonality,
	}
	var out []string
	for _, f := range fields {
		if m.IsEstimated(f) {
			out = append(out, f)
		}
	}
	return out
}

// RawMarketRecord is the heterogeneous per-provider shape handed over by the
// data-ingestion collaborator. Every nested block and numeric field is optional.
type RawMarketRecord struct {
	ID           string           `json:"id,omitempty"`
	City         string           `json:"city"`
	State        string           `json:"state"`
	Population   *float64         `json:"population,omitempty"`
	Housing      *RawHousing      `json:"housing,omitempty"`
	Rental       *RawRental       `json:"rental,omitempty"`
	MarketScore  *RawMarketScore  `json:"marketScore,omitempty"`
	Competition  *RawCompetition  `json:"competition,omitempty"`
	IncomeBySize *RawIncomeBySize `json:"incomeBySize,omitempty"`
	Seasonality  *RawSeasonality  `json:"seasonality,omitempty"`
}

// RawHousing carries home price data. Some providers report values in thousands.
type RawHousing struct {
	MedianHomeValue  *float64 `json:"medianHomeValue,omitempty"`
	MedianHomeValueK *float64 `json:"medianHomeValueK,omitempty"`
}

// RawRental carries STR performance data
type RawRental struct {
	AvgADR         *float64 `json:"avgADR,omitempty"`
	Occupancy      *float64 `json:"occupancy,omitempty"` // fraction (0-1) or percent (0-100)
	MonthlyRevenue *float64 `json:"monthlyRevenue,omitempty"`
	AnnualRevenue  *float64 `json:"annualRevenue,omitempty"`
}

// RawMarketScore carries provider-computed indices on a 0-100 scale
type RawMarketScore struct {
	Demand      *float64 `json:"demand,omitempty"`
	Headroom    *float64 `json:"headroom,omitempty"`    // higher = more room to grow
	Saturation  *float64 `json:"saturation,omitempty"`  // higher = more competition
	Seasonality *float64 `json:"seasonality,omitempty"` // higher = steadier year-round demand
}

// RawCompetition carries supply-side listing counts
type RawCompetition struct {
	ActiveListings *float64 `json:"activeListings,omitempty"`
	ListingsPer1K  *float64 `json:"listingsPer1k,omitempty"`
}

// RawIncomeBySize carries annual STR revenue per unit size
type RawIncomeBySize struct {
	Studio  *float64 `json:"studio,omitempty"`
	OneBR   *float64 `json:"oneBR,omitempty"`
	TwoBR   *float64 `json:"twoBR,omitempty"`
	ThreeBR *float64 `json:"threeBR,omitempty"`
	FourBR  *float64 `json:"fourBR,omitempty"`
}

// Values returns the reported sizes in ascending unit-size order, skipping missing ones
func (r *RawIncomeBySize) Values() []float64 {
	if r == nil {
		return nil
	}
	var out []float64
	for _, v := range []*float64{r.Studio, r.OneBR, r.TwoBR, r.ThreeBR, r.FourBR} {
		if v != nil {
			out = append(out, *v)
		}
	}
	return out
}

// RawSeasonality carries a monthly occupancy curve (fraction or percent per month)
type RawSeasonality struct {
	MonthlyOccupancy []float64 `json:"monthlyOccupancy,omitempty"`
}
