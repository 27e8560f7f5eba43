package scoring

import (
	"github.com/irfndi/strmarket-engine/internal/models"
	"github.com/irfndi/strmarket-engine/internal/utils"
)

// GradeBand assigns a grade and verdict to every score at or above MinScore
// and below the next band's MinScore.
type GradeBand struct {
	MinScore int
	Grade    models.Grade
	Verdict  models.Verdict
}

// DefaultGradeBands returns the stock bands, best first
func DefaultGradeBands() []GradeBand {
	return []GradeBand{
		{MinScore: 90, Grade: models.GradeAPlus, Verdict: models.VerdictStrongBuy},
		{MinScore: 80, Grade: models.GradeA, Verdict: models.VerdictStrongBuy},
		{MinScore: 70, Grade: models.GradeBPlus, Verdict: models.VerdictBuy},
		{MinScore: 60, Grade: models.GradeB, Verdict: models.VerdictHold},
		{MinScore: 50, Grade: models.GradeC, Verdict: models.VerdictCaution},
		{MinScore: 40, Grade: models.GradeD, Verdict: models.VerdictAvoid},
		{MinScore: 0, Grade: models.GradeF, Verdict: models.VerdictAvoid},
	}
}

// GradeClassifier maps a total score to a grade and verdict
type GradeClassifier struct {
	bands []GradeBand
}

// NewGradeClassifier validates that the bands cover 0-100 without gaps or
// overlaps and that a better grade never carries a worse verdict.
func NewGradeClassifier(bands []GradeBand) (*GradeClassifier, error) {
	if len(bands) == 0 {
		return nil, utils.NewValidationError("grade bands are empty")
	}
	if bands[0].MinScore > models.MaxTotalScore {
		return nil, utils.NewValidationErrorf("top grade band starts above %d", models.MaxTotalScore)
	}
	if last := bands[len(bands)-1]; last.MinScore != 0 {
		return nil, utils.NewValidationError("lowest grade band must start at 0")
	}
	for i, b := range bands {
		if b.Grade.Rank() < 0 || b.Verdict.Rank() < 0 {
			return nil, utils.NewValidationErrorf("grade band %d has unknown grade or verdict", i)
		}
		if i == 0 {
			continue
		}
		prev := bands[i-1]
		if b.MinScore >= prev.MinScore {
			return nil, utils.NewValidationErrorf("grade bands %d and %d overlap", i-1, i)
		}
		if b.Grade.Rank() >= prev.Grade.Rank() {
			return nil, utils.NewValidationErrorf("grade bands %d and %d are not in descending grade order", i-1, i)
		}
		if b.Verdict.Rank() > prev.Verdict.Rank() {
			return nil, utils.NewValidationErrorf("grade band %d has a better verdict than band %d", i, i-1)
		}
	}

	owned := make([]GradeBand, len(bands))
	copy(owned, bands)
	return &GradeClassifier{bands: owned}, nil
}

// Classify returns the grade and verdict for a score. Scores outside 0-100
// are clamped first.
func (g *GradeClassifier) Classify(score int) (models.Grade, models.Verdict) {
	if score > models.MaxTotalScore {
		score = models.MaxTotalScore
	}
	for _, b := range g.bands {
		if score >= b.MinScore {
			return b.Grade, b.Verdict
		}
	}
	last := g.bands[len(g.bands)-1]
	return last.Grade, last.Verdict
}

// FloorFor returns the lowest score that earns at least the given verdict,
// or MaxTotalScore+1 when no band reaches it.
func (g *GradeClassifier) FloorFor(verdict models.Verdict) int {
	floor := models.MaxTotalScore + 1
	for _, b := range g.bands {
		if b.Verdict.Rank() >= verdict.Rank() && b.MinScore < floor {
			floor = b.MinScore
		}
	}
	return floor
}

// HoldFloor is the lowest score with a hold verdict or better
func (g *GradeClassifier) HoldFloor() int {
	return g.FloorFor(models.VerdictHold)
}
