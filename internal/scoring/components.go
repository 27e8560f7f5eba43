package scoring

import (
	"github.com/shopspring/decimal"

	"github.com/irfndi/strmarket-engine/internal/models"
)

// ComponentScorer computes the five component scores of a market
type ComponentScorer struct {
	rules      RuleSet
	investment InvestmentAssumptions
}

// NewComponentScorer validates the rule set and assumptions and returns a scorer
func NewComponentScorer(rules RuleSet, investment InvestmentAssumptions) (*ComponentScorer, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if err := investment.Validate(); err != nil {
		return nil, err
	}
	return &ComponentScorer{rules: rules, investment: investment}, nil
}

// Rules returns the scorer's rule set
func (s *ComponentScorer) Rules() RuleSet {
	return s.rules
}

// Score computes every component independently, in models.ComponentOrder
func (s *ComponentScorer) Score(m models.Market) models.Components {
	return models.Components{
		s.cashOnCash(m),
		s.evaluate(s.rules.Affordability, m.MedianHomeValue),
		s.evaluate(s.rules.YearRoundIncome, s.YearRoundIndex(m)),
		s.evaluate(s.rules.LandlordFriendly, m.LandlordFavorability),
		s.evaluate(s.rules.RoomToGrow, m.Saturation),
	}
}

// YearRoundIndex blends occupancy and seasonality consistency into one 0-100 index
func (s *ComponentScorer) YearRoundIndex(m models.Market) decimal.Decimal {
	w := s.rules.OccupancyWeight
	return m.OccupancyRate.Mul(w).Add(m.SeasonalityConsistency.Mul(decimal.NewFromInt(1).Sub(w))).Round(2)
}

func (s *ComponentScorer) cashOnCash(m models.Market) models.ScoreComponent {
	curve := s.rules.CashOnCash
	coc, ok := s.investment.Analyze(m).CashOnCash()
	if !ok {
		points, rating := curve.Worst()
		return component(curve, decimal.Zero, points, rating)
	}
	points, rating := curve.Evaluate(coc)
	return component(curve, coc, points, rating)
}

func (s *ComponentScorer) evaluate(curve ScoreCurve, raw decimal.Decimal) models.ScoreComponent {
	points, rating := curve.Evaluate(raw)
	return component(curve, raw, points, rating)
}

func component(curve ScoreCurve, raw, points decimal.Decimal, rating models.Rating) models.ScoreComponent {
	maxPoints := curve.Component.MaxPoints()
	earned := decimal.Min(decimal.Max(points, decimal.Zero), decimal.NewFromInt(int64(maxPoints)))
	return models.ScoreComponent{
		Name:      curve.Component,
		MaxPoints: maxPoints,
		Earned:    earned,
		RawValue:  raw,
		Unit:      curve.Unit,
		Rating:    rating,
	}
}
