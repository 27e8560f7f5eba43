// Package scoring implements the market investment scoring engine: five
// component curves, the regulation penalty, aggregation, grading and the
// state roll-up. Every function here is pure and safe for concurrent use.
package scoring

import (
	"github.com/shopspring/decimal"

	"github.com/irfndi/strmarket-engine/internal/models"
	"github.com/irfndi/strmarket-engine/internal/utils"
)

// RulesVersion identifies the stock rule tables. Bump it when a curve changes
// so cached results computed under the old rules are not reused.
const RulesVersion = "2025.1"

// RatingBand is one segment of a score curve. Raw values in [Low, High) earn
// points interpolated linearly from LowPoints to HighPoints.
type RatingBand struct {
	Rating     models.Rating
	Low        decimal.Decimal
	High       decimal.Decimal
	LowPoints  decimal.Decimal
	HighPoints decimal.Decimal
}

func band(rating models.Rating, low, high, lowPoints, highPoints float64) RatingBand {
	return RatingBand{
		Rating:     rating,
		Low:        decimal.NewFromFloat(low),
		High:       decimal.NewFromFloat(high),
		LowPoints:  decimal.NewFromFloat(lowPoints),
		HighPoints: decimal.NewFromFloat(highPoints),
	}
}

func (b RatingBand) interpolate(raw decimal.Decimal) decimal.Decimal {
	ratio := raw.Sub(b.Low).Div(b.High.Sub(b.Low))
	return b.LowPoints.Add(ratio.Mul(b.HighPoints.Sub(b.LowPoints)))
}

// ScoreCurve maps a component's raw value to earned points and a rating.
// Bands are listed in ascending raw order and must be contiguous. Values
// outside the covered range clamp to the nearest end of the curve.
type ScoreCurve struct {
	Component      models.ComponentName
	Unit           string
	HigherIsBetter bool
	Bands          []RatingBand
}

// Evaluate returns the points earned for raw and the rating of the band it
// falls in. Points and rating always come from the same band.
func (c ScoreCurve) Evaluate(raw decimal.Decimal) (decimal.Decimal, models.Rating) {
	if len(c.Bands) == 0 {
		return decimal.Zero, models.RatingPoor
	}
	first, last := c.Bands[0], c.Bands[len(c.Bands)-1]
	if raw.LessThan(first.Low) {
		return first.LowPoints, first.Rating
	}
	for _, b := range c.Bands {
		if raw.LessThan(b.High) {
			return b.interpolate(raw).Round(2), b.Rating
		}
	}
	return last.HighPoints, last.Rating
}

// Worst returns the lowest score the curve can produce and its rating
func (c ScoreCurve) Worst() (decimal.Decimal, models.Rating) {
	if len(c.Bands) == 0 {
		return decimal.Zero, models.RatingPoor
	}
	if c.HigherIsBetter {
		return c.Bands[0].LowPoints, c.Bands[0].Rating
	}
	last := c.Bands[len(c.Bands)-1]
	return last.HighPoints, last.Rating
}

// Validate checks that the curve is contiguous, monotonic in the declared
// direction, reaches exactly the component ceiling, and that its labels agree
// with its points: Excellent never in the bottom half, Poor never in the top half.
func (c ScoreCurve) Validate() error {
	maxPoints := decimal.NewFromInt(int64(c.Component.MaxPoints()))
	if maxPoints.IsZero() {
		return utils.NewValidationErrorf("curve for unknown component %q", c.Component)
	}
	if len(c.Bands) == 0 {
		return utils.NewValidationErrorf("%s: curve has no bands", c.Component)
	}

	half := maxPoints.Div(decimal.NewFromInt(2))
	best := decimal.Zero
	for i, b := range c.Bands {
		if !b.Low.LessThan(b.High) {
			return utils.NewValidationErrorf("%s: band %d has empty raw range", c.Component, i)
		}
		lo, hi := decimal.Min(b.LowPoints, b.HighPoints), decimal.Max(b.LowPoints, b.HighPoints)
		if lo.IsNegative() || hi.GreaterThan(maxPoints) {
			return utils.NewValidationErrorf("%s: band %d points outside [0, %s]", c.Component, i, maxPoints)
		}
		best = decimal.Max(best, hi)

		if c.HigherIsBetter && b.LowPoints.GreaterThan(b.HighPoints) ||
			!c.HigherIsBetter && b.LowPoints.LessThan(b.HighPoints) {
			return utils.NewValidationErrorf("%s: band %d points run against the curve direction", c.Component, i)
		}
		switch b.Rating {
		case models.RatingExcellent:
			if lo.LessThan(half) {
				return utils.NewValidationErrorf("%s: Excellent band %d reaches the bottom half of the range", c.Component, i)
			}
		case models.RatingPoor:
			if hi.GreaterThan(half) {
				return utils.NewValidationErrorf("%s: Poor band %d reaches the top half of the range", c.Component, i)
			}
		case models.RatingGood, models.RatingFair:
		default:
			return utils.NewValidationErrorf("%s: band %d has unknown rating %q", c.Component, i, b.Rating)
		}

		if i == 0 {
			continue
		}
		prev := c.Bands[i-1]
		if !prev.High.Equal(b.Low) {
			return utils.NewValidationErrorf("%s: gap or overlap between bands %d and %d", c.Component, i-1, i)
		}
		if c.HigherIsBetter {
			if prev.HighPoints.GreaterThan(b.LowPoints) || ratingRank(prev.Rating) > ratingRank(b.Rating) {
				return utils.NewValidationErrorf("%s: bands %d and %d are not monotonic", c.Component, i-1, i)
			}
		} else if prev.HighPoints.LessThan(b.LowPoints) || ratingRank(prev.Rating) < ratingRank(b.Rating) {
			return utils.NewValidationErrorf("%s: bands %d and %d are not monotonic", c.Component, i-1, i)
		}
	}
	if !best.Equal(maxPoints) {
		return utils.NewValidationErrorf("%s: curve tops out at %s, want %s", c.Component, best, maxPoints)
	}
	return nil
}

func ratingRank(r models.Rating) int {
	switch r {
	case models.RatingPoor:
		return 0
	case models.RatingFair:
		return 1
	case models.RatingGood:
		return 2
	case models.RatingExcellent:
		return 3
	}
	return -1
}

// RuleSet bundles the five component curves
type RuleSet struct {
	Version          string
	CashOnCash       ScoreCurve
	Affordability    ScoreCurve
	YearRoundIncome  ScoreCurve
	LandlordFriendly ScoreCurve
	RoomToGrow       ScoreCurve
	// OccupancyWeight is the share of occupancy in the year-round income
	// index; the remainder goes to seasonality consistency.
	OccupancyWeight decimal.Decimal
}

// DefaultRuleSet returns the stock curves
func DefaultRuleSet() RuleSet {
	return RuleSet{
		Version: RulesVersion,
		CashOnCash: ScoreCurve{
			Component:      models.ComponentCashOnCash,
			Unit:           "percent",
			HigherIsBetter: true,
			Bands: []RatingBand{
				band(models.RatingPoor, 0, 4, 0, 12),
				band(models.RatingFair, 4, 8, 12, 22),
				band(models.RatingGood, 8, 12, 22, 30),
				band(models.RatingExcellent, 12, 20, 30, 35),
			},
		},
		Affordability: ScoreCurve{
			Component: models.ComponentAffordability,
			Unit:      "usd",
			Bands: []RatingBand{
				band(models.RatingExcellent, 100000, 200000, 25, 20),
				band(models.RatingGood, 200000, 350000, 20, 14),
				band(models.RatingFair, 350000, 600000, 14, 6),
				band(models.RatingPoor, 600000, 1200000, 6, 0),
			},
		},
		YearRoundIncome: ScoreCurve{
			Component:      models.ComponentYearRoundIncome,
			Unit:           "index",
			HigherIsBetter: true,
			Bands: []RatingBand{
				band(models.RatingPoor, 0, 40, 0, 5),
				band(models.RatingFair, 40, 55, 5, 9),
				band(models.RatingGood, 55, 70, 9, 12),
				band(models.RatingExcellent, 70, 85, 12, 15),
			},
		},
		LandlordFriendly: ScoreCurve{
			Component:      models.ComponentLandlordFriendly,
			Unit:           "index",
			HigherIsBetter: true,
			Bands: []RatingBand{
				band(models.RatingPoor, 0, 35, 0, 3),
				band(models.RatingFair, 35, 55, 3, 6),
				band(models.RatingGood, 55, 75, 6, 8),
				band(models.RatingExcellent, 75, 100, 8, 10),
			},
		},
		RoomToGrow: ScoreCurve{
			Component: models.ComponentRoomToGrow,
			Unit:      "index",
			Bands: []RatingBand{
				band(models.RatingExcellent, 0, 25, 15, 12),
				band(models.RatingGood, 25, 45, 12, 9),
				band(models.RatingFair, 45, 65, 9, 5),
				band(models.RatingPoor, 65, 100, 5, 0),
			},
		},
		OccupancyWeight: decimal.NewFromFloat(0.6),
	}
}

// Curves returns the curves in models.ComponentOrder
func (rs RuleSet) Curves() [models.ComponentCount]ScoreCurve {
	return [models.ComponentCount]ScoreCurve{
		rs.CashOnCash,
		rs.Affordability,
		rs.YearRoundIncome,
		rs.LandlordFriendly,
		rs.RoomToGrow,
	}
}

// Validate checks every curve and the year-round income weighting
func (rs RuleSet) Validate() error {
	for i, curve := range rs.Curves() {
		if curve.Component != models.ComponentOrder[i] {
			return utils.NewValidationErrorf("curve %d is for %q, want %q", i, curve.Component, models.ComponentOrder[i])
		}
		if err := curve.Validate(); err != nil {
			return err
		}
	}
	if rs.OccupancyWeight.IsNegative() || rs.OccupancyWeight.GreaterThan(decimal.NewFromInt(1)) {
		return utils.NewValidationError("occupancy weight must be between 0 and 1")
	}
	return nil
}
