//go:build go1.18

package scoring

import (
	"math"
	"testing"

	"github.com/irfndi/strmarket-engine/internal/models"
)

// FuzzAggregateBounds checks that the total stays within [0, 100] and that a
// penalty never raises the score.
func FuzzAggregateBounds(f *testing.F) {
	f.Add(35.0, 25.0, 15.0, 10.0, 15.0, 0)    // perfect market
	f.Add(27.04, 17.0, 11.4, 8.4, 10.5, 25)   // restricted hard
	f.Add(0.0, 0.0, 0.0, 0.0, 0.0, 60)        // worst market, banned
	f.Add(35.0, 25.0, 15.0, 10.0, 15.0, 60)   // perfect but banned
	f.Add(-3.0, 400.0, 0.5, 0.49, 0.01, -7)   // out-of-domain inputs
	f.Add(1e9, -1e9, 1e-9, 0.0, 15.0, 100000) // extremes

	f.Fuzz(func(t *testing.T, e1, e2, e3, e4, e5 float64, deducted int) {
		earned := []float64{e1, e2, e3, e4, e5}
		for _, e := range earned {
			// Skip infinity and NaN
			if math.IsInf(e, 0) || math.IsNaN(e) {
				return
			}
			// Skip values that would not fit the int64 part
			if math.Abs(e) > 1e15 {
				return
			}
		}

		comps := componentsWith(earned...)
		penalized := Aggregate(comps, models.RegulationPenalty{PointsDeducted: deducted, Applied: deducted > 0})
		clean := Aggregate(comps, models.RegulationPenalty{})

		if penalized < 0 || penalized > models.MaxTotalScore {
			t.Errorf("total %d out of range for earned=%v deducted=%d", penalized, earned, deducted)
		}
		if penalized > clean {
			t.Errorf("penalty raised the score: %d > %d for earned=%v deducted=%d", penalized, clean, earned, deducted)
		}
	})
}
