package scoring

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irfndi/strmarket-engine/internal/models"
)

func newTestScorer(t *testing.T) *ComponentScorer {
	t.Helper()
	s, err := NewComponentScorer(DefaultRuleSet(), DefaultInvestmentAssumptions())
	require.NoError(t, err)
	return s
}

func sampleMarket() models.Market {
	return models.Market{
		ID:                     "tn-gatlinburg",
		City:                   "Gatlinburg",
		State:                  "TN",
		Population:             3900,
		MedianHomeValue:        decimal.NewFromInt(300000),
		AverageDailyRate:       decimal.NewFromInt(250),
		OccupancyRate:          decimal.NewFromInt(60),
		AnnualRevenue:          decimal.NewFromInt(50000),
		Saturation:             decimal.NewFromInt(35),
		LandlordFavorability:   decimal.NewFromInt(80),
		SeasonalityConsistency: decimal.NewFromInt(70),
	}
}

func TestComponentScorer_Score(t *testing.T) {
	comps := newTestScorer(t).Score(sampleMarket())

	for i, name := range models.ComponentOrder {
		c := comps[i]
		assert.Equal(t, name, c.Name)
		assert.Equal(t, name.MaxPoints(), c.MaxPoints)
		assert.False(t, c.Earned.IsNegative(), name)
		assert.False(t, c.Earned.GreaterThan(decimal.NewFromInt(int64(c.MaxPoints))), name)
		assert.NotEmpty(t, c.Rating, name)
		assert.NotEmpty(t, c.Unit, name)
	}

	yri, _ := comps.Get(models.ComponentYearRoundIncome)
	assert.True(t, yri.RawValue.Equal(decimal.NewFromInt(64)), "0.6*60 + 0.4*70, got %s", yri.RawValue)
	assert.Equal(t, models.RatingGood, yri.Rating)

	room, _ := comps.Get(models.ComponentRoomToGrow)
	assert.True(t, room.Earned.Equal(decimal.NewFromFloat(10.5)), room.Earned.String())

	landlord, _ := comps.Get(models.ComponentLandlordFriendly)
	assert.True(t, landlord.Earned.Equal(decimal.NewFromFloat(8.4)), landlord.Earned.String())
	assert.Equal(t, models.RatingExcellent, landlord.Rating)

	coc, _ := comps.Get(models.ComponentCashOnCash)
	assert.Equal(t, models.RatingGood, coc.Rating)
	assert.InDelta(t, 27.04, coc.Earned.InexactFloat64(), 0.05)
}

func TestComponentScorer_LandlordDependsOnlyOnState(t *testing.T) {
	s := newTestScorer(t)
	a := sampleMarket()
	b := sampleMarket()
	b.ID, b.City = "tn-pigeon-forge", "Pigeon Forge"
	b.MedianHomeValue = decimal.NewFromInt(520000)
	b.Saturation = decimal.NewFromInt(80)

	la, _ := s.Score(a).Get(models.ComponentLandlordFriendly)
	lb, _ := s.Score(b).Get(models.ComponentLandlordFriendly)
	assert.True(t, la.Earned.Equal(lb.Earned))
	assert.Equal(t, la.Rating, lb.Rating)
}

func TestComponentScorer_ComponentsIndependent(t *testing.T) {
	s := newTestScorer(t)
	base := s.Score(sampleMarket())

	m := sampleMarket()
	m.Saturation = decimal.NewFromInt(90)
	changed := s.Score(m)

	for _, name := range models.ComponentOrder {
		before, _ := base.Get(name)
		after, _ := changed.Get(name)
		if name == models.ComponentRoomToGrow {
			assert.True(t, after.Earned.LessThan(before.Earned))
			continue
		}
		assert.True(t, before.Earned.Equal(after.Earned), name)
	}
}

func TestNewComponentScorer_RejectsInvalidRules(t *testing.T) {
	rules := DefaultRuleSet()
	rules.CashOnCash.Bands = nil
	_, err := NewComponentScorer(rules, DefaultInvestmentAssumptions())
	assert.Error(t, err)

	inv := DefaultInvestmentAssumptions()
	inv.MortgageTermYears = 0
	_, err = NewComponentScorer(DefaultRuleSet(), inv)
	assert.Error(t, err)
}
