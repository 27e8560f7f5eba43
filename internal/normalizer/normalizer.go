// Package normalizer turns heterogeneous provider records into canonical
// models.Market values with consistent units and documented defaults.
package normalizer

import (
	"math"
	"sort"
	"strings"

	"github.com/cinar/indicator/v2/helper"
	"github.com/cinar/indicator/v2/trend"
	"github.com/shopspring/decimal"

	"github.com/irfndi/strmarket-engine/internal/models"
)

const (
	daysPerYear   = 365
	monthsPerYear = 12
)

// Normalizer converts raw market records to canonical markets.
// It holds no mutable state and is safe for concurrent use.
type Normalizer struct {
	cfg Config
}

// New creates a normalizer after validating its configuration
func New(cfg Config) (*Normalizer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Normalizer{cfg: cfg}, nil
}

// Config returns the configuration the normalizer was built with
func (n *Normalizer) Config() Config {
	return n.cfg
}

// Normalize produces a complete Market from a raw record. Every canonical
// field is populated; missing or unusable inputs fall back to the neutral
// defaults and are marked estimated in the provenance map.
func (n *Normalizer) Normalize(raw models.RawMarketRecord) models.Market {
	d := n.cfg.Defaults
	prov := make(map[string]models.Provenance, 8)

	state := strings.TrimSpace(raw.State)
	if code, ok := StateCode(state); ok {
		state = code
	}
	city := strings.Join(strings.Fields(raw.City), " ")
	if city == strings.ToLower(city) {
		city = models.DisplayName(city)
	}

	id := models.NewMarketID(state, city)
	if raw.ID != "" {
		id = models.NewMarketID("", raw.ID)
	}

	m := models.Market{
		ID:         id,
		City:       city,
		State:      state,
		Provenance: prov,
	}

	// population
	if v, ok := present(raw.Population); ok {
		m.Population = int64(math.Round(math.Max(v, 0)))
		prov[models.FieldPopulation] = models.ProvenanceMeasured
	} else {
		m.Population = d.Population
		prov[models.FieldPopulation] = models.ProvenanceEstimated
	}

	// median home value, reported in dollars or thousands
	homeValue, homeProv := d.MedianHomeValue, models.ProvenanceEstimated
	if raw.Housing != nil {
		if v, ok := present(raw.Housing.MedianHomeValue); ok && v > 0 {
			homeValue, homeProv = v, models.ProvenanceMeasured
		} else if v, ok := present(raw.Housing.MedianHomeValueK); ok && v > 0 {
			homeValue, homeProv = v*1000, models.ProvenanceDerived
		}
	}
	m.MedianHomeValue = decimal.NewFromFloat(homeValue).Round(2)
	prov[models.FieldMedianHomeValue] = homeProv

	// ADR and occupancy
	adr, adrProv := d.AverageDailyRate, models.ProvenanceEstimated
	occ, occProv := d.OccupancyRate, models.ProvenanceEstimated
	if raw.Rental != nil {
		if v, ok := present(raw.Rental.AvgADR); ok {
			adr, adrProv = math.Max(v, 0), models.ProvenanceMeasured
		}
		if v, ok := present(raw.Rental.Occupancy); ok {
			occ, occProv = occupancyPercent(v), models.ProvenanceMeasured
		}
	}
	m.AverageDailyRate = decimal.NewFromFloat(adr).Round(2)
	m.OccupancyRate = decimal.NewFromFloat(occ).Round(2)
	prov[models.FieldAverageDailyRate] = adrProv
	prov[models.FieldOccupancyRate] = occProv

	annual, revProv := n.revenue(raw, adr, occ, adrProv, occProv)
	m.AnnualRevenue = decimal.NewFromFloat(annual).Round(2)
	m.MonthlyRevenue = m.AnnualRevenue.Div(decimal.NewFromInt(monthsPerYear)).Round(2)
	if raw.Rental != nil {
		if v, ok := present(raw.Rental.MonthlyRevenue); ok && raw.Rental.AnnualRevenue == nil {
			m.MonthlyRevenue = decimal.NewFromFloat(math.Max(v, 0)).Round(2)
		}
	}
	prov[models.FieldAnnualRevenue] = revProv

	sat, satProv := n.saturation(raw, m.Population, prov[models.FieldPopulation])
	m.Saturation = decimal.NewFromFloat(sat).Round(2)
	prov[models.FieldSaturation] = satProv

	seasonality, seasonProv := n.seasonality(raw)
	m.SeasonalityConsistency = decimal.NewFromFloat(seasonality).Round(2)
	prov[models.FieldSeasonality] = seasonProv

	if v, ok := LandlordFavorability(state); ok {
		m.LandlordFavorability = decimal.NewFromFloat(v)
		prov[models.FieldLandlordFavorability] = models.ProvenanceMeasured
	} else {
		m.LandlordFavorability = decimal.NewFromFloat(d.LandlordFavorability)
		prov[models.FieldLandlordFavorability] = models.ProvenanceEstimated
	}

	return m
}

// revenue resolves annual STR revenue: annual, then monthly x 12, then
// ADR x occupancy x 365 from measured inputs, then the median of the
// per-unit-size incomes, then ADR x occupancy from whatever was defaulted.
func (n *Normalizer) revenue(raw models.RawMarketRecord, adr, occ float64, adrProv, occProv models.Provenance) (float64, models.Provenance) {
	if raw.Rental != nil {
		if v, ok := present(raw.Rental.AnnualRevenue); ok {
			return math.Max(v, 0), models.ProvenanceMeasured
		}
		if v, ok := present(raw.Rental.MonthlyRevenue); ok {
			return math.Max(v, 0) * monthsPerYear, models.ProvenanceDerived
		}
	}
	if adrProv == models.ProvenanceMeasured && occProv == models.ProvenanceMeasured {
		return adr * occ / 100 * daysPerYear, models.ProvenanceDerived
	}
	if v, ok := median(raw.IncomeBySize.Values()); ok {
		return math.Max(v, 0), models.ProvenanceDerived
	}
	return adr * occ / 100 * daysPerYear, models.ProvenanceEstimated
}

// saturation resolves the competition indicator so that higher always means
// more competition: an explicit saturation index, then inverted headroom,
// then listings density rescaled against FullSaturationDensity.
func (n *Normalizer) saturation(raw models.RawMarketRecord, population int64, popProv models.Provenance) (float64, models.Provenance) {
	if ms := raw.MarketScore; ms != nil {
		if v, ok := present(ms.Saturation); ok {
			return clampPercent(v), models.ProvenanceMeasured
		}
		if v, ok := present(ms.Headroom); ok {
			return 100 - clampPercent(v), models.ProvenanceDerived
		}
	}
	if c := raw.Competition; c != nil {
		if v, ok := present(c.ListingsPer1K); ok {
			return n.densityToSaturation(v), models.ProvenanceDerived
		}
		if v, ok := present(c.ActiveListings); ok && popProv == models.ProvenanceMeasured && population > 0 {
			density := math.Max(v, 0) / float64(population) * 1000
			return n.densityToSaturation(density), models.ProvenanceDerived
		}
	}
	return n.cfg.Defaults.Saturation, models.ProvenanceEstimated
}

func (n *Normalizer) densityToSaturation(perThousand float64) float64 {
	return clampPercent(perThousand * 100 / n.cfg.FullSaturationDensity)
}

// seasonality resolves income consistency: the provider's index if present,
// otherwise the trough-to-peak ratio of the smoothed monthly occupancy curve.
func (n *Normalizer) seasonality(raw models.RawMarketRecord) (float64, models.Provenance) {
	if ms := raw.MarketScore; ms != nil {
		if v, ok := present(ms.Seasonality); ok {
			return clampPercent(v), models.ProvenanceMeasured
		}
	}
	if raw.Seasonality != nil {
		if v, ok := consistencyFromMonthly(raw.Seasonality.MonthlyOccupancy, n.cfg.SeasonalitySmoothing); ok {
			return v, models.ProvenanceDerived
		}
	}
	return n.cfg.Defaults.SeasonalityConsistency, models.ProvenanceEstimated
}

// consistencyFromMonthly smooths the monthly occupancy curve with an SMA,
// treating the year as cyclic, and returns 100 x trough / peak.
// The fraction-or-percent scale is decided once for the whole series.
func consistencyFromMonthly(monthly []float64, period int) (float64, bool) {
	values := make([]float64, 0, len(monthly))
	fractions := true
	for _, v := range monthly {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if v > 1 {
			fractions = false
		}
		values = append(values, v)
	}
	for i, v := range values {
		if fractions {
			v *= 100
		}
		values[i] = clampPercent(v)
	}
	if period < 1 || len(values) < period {
		return 0, false
	}

	series := make([]float64, 0, len(values)+period-1)
	series = append(series, values...)
	series = append(series, values[:period-1]...)

	sma := trend.NewSmaWithPeriod[float64](period)
	smoothed := helper.ChanToSlice(sma.Compute(helper.SliceToChan(series)))
	if len(smoothed) == 0 {
		return 0, false
	}

	lo, hi := smoothed[0], smoothed[0]
	for _, v := range smoothed[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if hi <= 0 {
		return 0, true
	}
	return clampPercent(100 * lo / hi), true
}

// occupancyPercent maps a fraction (<= 1) or a percentage onto 0-100
func occupancyPercent(v float64) float64 {
	if v <= 1 {
		v *= 100
	}
	return clampPercent(v)
}

func clampPercent(v float64) float64 {
	return math.Min(math.Max(v, 0), 100)
}

// present dereferences an optional number, rejecting NaN and infinities
func present(v *float64) (float64, bool) {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return 0, false
	}
	return *v, true
}

func median(values []float64) (float64, bool) {
	clean := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			clean = append(clean, v)
		}
	}
	if len(clean) == 0 {
		return 0, false
	}
	sort.Float64s(clean)
	mid := len(clean) / 2
	if len(clean)%2 == 1 {
		return clean[mid], true
	}
	return (clean[mid-1] + clean[mid]) / 2, true
}
