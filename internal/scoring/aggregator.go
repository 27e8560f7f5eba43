package scoring

import (
	"github.com/shopspring/decimal"

	"github.com/irfndi/strmarket-engine/internal/models"
)

var maxTotal = decimal.NewFromInt(models.MaxTotalScore)

// Aggregate is the only place a market's total score is computed:
// round(sum of earned points) minus the penalty, clamped to [0, 100].
func Aggregate(components models.Components, penalty models.RegulationPenalty) int {
	sum := decimal.Zero
	for _, c := range components {
		sum = sum.Add(c.Earned)
	}

	deducted := int64(penalty.PointsDeducted)
	if deducted < 0 {
		deducted = 0
	}

	total := sum.Round(0).Sub(decimal.NewFromInt(deducted))
	switch {
	case total.IsNegative():
		return 0
	case total.GreaterThan(maxTotal):
		return models.MaxTotalScore
	}
	return int(total.IntPart())
}
