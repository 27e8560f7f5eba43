package scoring

import (
	"math"
	"sort"

	"github.com/irfndi/strmarket-engine/internal/models"
)

// StateRollup derives a state's score from its city results. The state takes
// the best qualifying city's score, so adding a market can only keep or raise it.
type StateRollup struct {
	minPopulation int64
	classifier    *GradeClassifier
}

// NewStateRollup creates a roll-up that only counts cities with at least minPopulation residents
func NewStateRollup(minPopulation int64, classifier *GradeClassifier) *StateRollup {
	if minPopulation < 0 {
		minPopulation = 0
	}
	return &StateRollup{minPopulation: minPopulation, classifier: classifier}
}

// RollUp summarises the results belonging to state. Results for other states
// are ignored. A state with no qualifying city scores 0.
func (r *StateRollup) RollUp(state string, results []models.MarketScoreResult) models.StateScoreResult {
	out := models.StateScoreResult{State: state}

	best := -1
	sum := 0
	for _, res := range results {
		if res.State != state {
			continue
		}
		out.MarketCount++
		if res.Population < r.minPopulation {
			continue
		}
		out.QualifyingCount++
		sum += res.TotalScore
		if res.TotalScore > best || res.TotalScore == best && res.MarketID < out.TopMarketID {
			best = res.TotalScore
			out.TopMarketID = res.MarketID
		}
	}

	if out.QualifyingCount > 0 {
		out.TotalScore = best
		out.AverageScore = math.Round(float64(sum)/float64(out.QualifyingCount)*100) / 100
	}
	out.Grade, out.Verdict = r.classifier.Classify(out.TotalScore)
	return out
}

// RollUpAll groups results by state and rolls each one up, sorted by state
func (r *StateRollup) RollUpAll(results []models.MarketScoreResult) []models.StateScoreResult {
	seen := make(map[string]struct{})
	var states []string
	for _, res := range results {
		if _, ok := seen[res.State]; ok {
			continue
		}
		seen[res.State] = struct{}{}
		states = append(states, res.State)
	}
	sort.Strings(states)

	out := make([]models.StateScoreResult, 0, len(states))
	for _, s := range states {
		out = append(out, r.RollUp(s, results))
	}
	return out
}
