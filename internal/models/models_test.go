package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponentMaxPoints_SumToHundred(t *testing.T) {
	total := 0
	for _, name := range ComponentOrder {
		assert.Positive(t, name.MaxPoints(), "component %s must have a ceiling", name)
		total += name.MaxPoints()
	}
	assert.Equal(t, MaxTotalScore, total)
	assert.Equal(t, 100, total)
}

func TestComponentName_MaxPoints(t *testing.T) {
	assert.Equal(t, 35, ComponentCashOnCash.MaxPoints())
	assert.Equal(t, 25, ComponentAffordability.MaxPoints())
	assert.Equal(t, 15, ComponentYearRoundIncome.MaxPoints())
	assert.Equal(t, 10, ComponentLandlordFriendly.MaxPoints())
	assert.Equal(t, 15, ComponentRoomToGrow.MaxPoints())
	assert.Equal(t, 0, ComponentName("unknown").MaxPoints())
}

func TestComponents_Get(t *testing.T) {
	var comps Components
	for i, name := range ComponentOrder {
		comps[i] = ScoreComponent{Name: name, MaxPoints: name.MaxPoints(), Earned: decimal.NewFromInt(int64(i))}
	}

	got, ok := comps.Get(ComponentYearRoundIncome)
	require.True(t, ok)
	assert.True(t, got.Earned.Equal(decimal.NewFromInt(2)))

	_, ok = comps.Get("missing")
	assert.False(t, ok)
}

func TestGradeAndVerdictRank(t *testing.T) {
	grades := []Grade{GradeF, GradeD, GradeC, GradeB, GradeBPlus, GradeA, GradeAPlus}
	for i, g := range grades {
		assert.Equal(t, i, g.Rank())
	}
	assert.Equal(t, -1, Grade("Z").Rank())

	verdicts := []Verdict{VerdictAvoid, VerdictCaution, VerdictHold, VerdictBuy, VerdictStrongBuy}
	for i, v := range verdicts {
		assert.Equal(t, i, v.Rank())
	}
	assert.Equal(t, -1, Verdict("sell").Rank())
}

func TestLegalityAndPermitValidity(t *testing.T) {
	for _, s := range []LegalityStatus{LegalityBanned, LegalityRestricted, LegalityLegal, LegalityVaries, LegalityUnknown} {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, LegalityStatus("prohibited").Valid())

	for _, d := range []PermitDifficulty{PermitEasy, PermitModerate, PermitHard, PermitVeryHard, PermitUnknown} {
		assert.True(t, d.Valid(), d)
	}
	assert.False(t, PermitDifficulty("impossible").Valid())
}

func TestRegulationEntry_NightCap(t *testing.T) {
	open := RegulationEntry{LegalityStatus: LegalityLegal}
	assert.False(t, open.HasNightCap())

	capped := RegulationEntry{LegalityStatus: LegalityRestricted, MaxNightsPerYear: Nights(90)}
	require.True(t, capped.HasNightCap())
	assert.Equal(t, 90, *capped.MaxNightsPerYear)
}

func TestMarket_EstimatedFields(t *testing.T) {
	m := Market{
		ID: "tx-austin",
		Provenance: map[string]Provenance{
			FieldPopulation:      ProvenanceMeasured,
			FieldAnnualRevenue:   ProvenanceDerived,
			FieldSaturation:      ProvenanceEstimated,
			FieldMedianHomeValue: ProvenanceEstimated,
		},
	}

	assert.True(t, m.IsEstimated(FieldSaturation))
	assert.False(t, m.IsEstimated(FieldAnnualRevenue))
	assert.False(t, m.IsEstimated(FieldOccupancyRate))
	assert.Equal(t, []string{FieldMedianHomeValue, FieldSaturation}, m.EstimatedFields())
}

func TestRawIncomeBySize_Values(t *testing.T) {
	one, three := 42000.0, 71000.0
	r := &RawIncomeBySize{OneBR: &one, ThreeBR: &three}
	assert.Equal(t, []float64{42000, 71000}, r.Values())

	var missing *RawIncomeBySize
	assert.Nil(t, missing.Values())
}

func TestRawMarketRecord_JSONShape(t *testing.T) {
	payload := `{
		"city": "Gatlinburg",
		"state": "TN",
		"population": 3900,
		"housing": {"medianHomeValueK": 415},
		"rental": {"avgADR": 265.5, "occupancy": 0.61},
		"marketScore": {"headroom": 35, "seasonality": 72},
		"incomeBySize": {"oneBR": 38000, "twoBR": 52000}
	}`

	var rec RawMarketRecord
	require.NoError(t, json.Unmarshal([]byte(payload), &rec))

	assert.Equal(t, "Gatlinburg", rec.City)
	require.NotNil(t, rec.Population)
	assert.Equal(t, 3900.0, *rec.Population)
	require.NotNil(t, rec.Housing)
	assert.Nil(t, rec.Housing.MedianHomeValue)
	assert.Equal(t, 415.0, *rec.Housing.MedianHomeValueK)
	require.NotNil(t, rec.Rental)
	assert.Equal(t, 0.61, *rec.Rental.Occupancy)
	assert.Nil(t, rec.Rental.AnnualRevenue)
	require.NotNil(t, rec.MarketScore)
	assert.Equal(t, 35.0, *rec.MarketScore.Headroom)
	assert.Nil(t, rec.Competition)
	assert.Equal(t, []float64{38000, 52000}, rec.IncomeBySize.Values())
}
