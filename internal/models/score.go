package models

import (
	"github.com/shopspring/decimal"
)

// ComponentName identifies one of the five scoring components
type ComponentName string

const (
	ComponentCashOnCash       ComponentName = "cash_on_cash"
	ComponentAffordability    ComponentName = "affordability"
	ComponentYearRoundIncome  ComponentName = "year_round_income"
	ComponentLandlordFriendly ComponentName = "landlord_friendly"
	ComponentRoomToGrow       ComponentName = "room_to_grow"
)

// ComponentCount is the fixed number of scoring components
const ComponentCount = 5

// Point ceilings per component. They sum to MaxTotalScore.
const (
	MaxPointsCashOnCash       = 35
	MaxPointsAffordability    = 25
	MaxPointsYearRoundIncome  = 15
	MaxPointsLandlordFriendly = 10
	MaxPointsRoomToGrow       = 15

	MaxTotalScore = 100
)

// ComponentOrder is the canonical order of components in a result
var ComponentOrder = [ComponentCount]ComponentName{
	ComponentCashOnCash,
	ComponentAffordability,
	ComponentYearRoundIncome,
	ComponentLandlordFriendly,
	ComponentRoomToGrow,
}

// MaxPoints returns the point ceiling of a component, or 0 for an unknown name
func (n ComponentName) MaxPoints() int {
	switch n {
	case ComponentCashOnCash:
		return MaxPointsCashOnCash
	case ComponentAffordability:
		return MaxPointsAffordability
	case ComponentYearRoundIncome:
		return MaxPointsYearRoundIncome
	case ComponentLandlordFriendly:
		return MaxPointsLandlordFriendly
	case ComponentRoomToGrow:
		return MaxPointsRoomToGrow
	}
	return 0
}

// Rating is the qualitative label attached to a component score
type Rating string

const (
	RatingExcellent Rating = "Excellent"
	RatingGood      Rating = "Good"
	RatingFair      Rating = "Fair"
	RatingPoor      Rating = "Poor"
)

// ScoreComponent is one weighted sub-score of a market
type ScoreComponent struct {
	Name      ComponentName   `json:"name"`
	MaxPoints int             `json:"max_points"`
	Earned    decimal.Decimal `json:"earned"`
	RawValue  decimal.Decimal `json:"raw_value"`
	Unit      string          `json:"unit"`
	Rating    Rating          `json:"rating"`
}

// Components is the fixed-size set of component scores
type Components [ComponentCount]ScoreComponent

// Get returns the component with the given name
func (c Components) Get(name ComponentName) (ScoreComponent, bool) {
	for _, comp := range c {
		if comp.Name == name {
			return comp, true
		}
	}
	return ScoreComponent{}, false
}

// RegulationPenalty is the deduction derived from a regulation classification
type RegulationPenalty struct {
	Applied          bool             `json:"applied"`
	PointsDeducted   int              `json:"points_deducted"`
	Reason           string           `json:"reason"`
	LegalityStatus   LegalityStatus   `json:"legality_status"`
	PermitDifficulty PermitDifficulty `json:"permit_difficulty"`
}

// Grade is the letter grade of a market score
type Grade string

const (
	GradeAPlus Grade = "A+"
	GradeA     Grade = "A"
	GradeBPlus Grade = "B+"
	GradeB     Grade = "B"
	GradeC     Grade = "C"
	GradeD     Grade = "D"
	GradeF     Grade = "F"
)

// Verdict is the product-facing investment recommendation
type Verdict string

const (
	VerdictStrongBuy Verdict = "strong-buy"
	VerdictBuy       Verdict = "buy"
	VerdictHold      Verdict = "hold"
	VerdictCaution   Verdict = "caution"
	VerdictAvoid     Verdict = "avoid"
)

// Rank orders verdicts from worst (0) to best (4); unknown verdicts rank -1
func (v Verdict) Rank() int {
	switch v {
	case VerdictAvoid:
		return 0
	case VerdictCaution:
		return 1
	case VerdictHold:
		return 2
	case VerdictBuy:
		return 3
	case VerdictStrongBuy:
		return 4
	}
	return -1
}

// Rank orders grades from worst (0) to best (6); unknown grades rank -1
func (g Grade) Rank() int {
	switch g {
	case GradeF:
		return 0
	case GradeD:
		return 1
	case GradeC:
		return 2
	case GradeB:
		return 3
	case GradeBPlus:
		return 4
	case GradeA:
		return 5
	case GradeAPlus:
		return 6
	}
	return -1
}

// MarketScoreResult is the immutable output of one scoring call
type MarketScoreResult struct {
	MarketID         string            `json:"market_id"`
	City             string            `json:"city"`
	State            string            `json:"state"`
	Population       int64             `json:"population"`
	Components       Components        `json:"components"`
	Penalty          RegulationPenalty `json:"penalty"`
	RegulationSource RegulationSource  `json:"regulation_source"`
	TotalScore       int               `json:"total_score"`
	Grade            Grade             `json:"grade"`
	Verdict          Verdict           `json:"verdict"`
	EstimatedFields  []string          `json:"estimated_fields,omitempty"`
}

// StateScoreResult is the roll-up of a state's city results
type StateScoreResult struct {
	State           string  `json:"state"`
	TotalScore      int     `json:"total_score"`
	Grade           Grade   `json:"grade"`
	Verdict         Verdict `json:"verdict"`
	TopMarketID     string  `json:"top_market_id,omitempty"`
	MarketCount     int     `json:"market_count"`
	QualifyingCount int     `json:"qualifying_count"`
	AverageScore    float64 `json:"average_score"`
}
