package scoring

import (
	"encoding/json"
	"strconv"

	"github.com/cespare/xxhash/v2"

	"github.com/irfndi/strmarket-engine/internal/models"
	"github.com/irfndi/strmarket-engine/internal/normalizer"
	"github.com/irfndi/strmarket-engine/internal/regulation"
)

// RegulationLookup resolves a market ID to its regulation entry. It must be
// total: every ID yields an entry.
type RegulationLookup interface {
	Lookup(marketID string) (models.RegulationEntry, models.RegulationSource)
}

// Options configures an Engine. Zero-valued fields fall back to the stock
// rules; Regulations and Normalizer default to the curated registry and the
// default normalizer configuration.
type Options struct {
	Regulations        RegulationLookup
	Normalizer         *normalizer.Normalizer
	Rules              *RuleSet
	Investment         *InvestmentAssumptions
	Penalty            *PenaltyRules
	GradeBands         []GradeBand
	MinStatePopulation int64
}

// Engine wires the scoring pipeline:
// normalize -> components + regulation lookup -> penalty -> aggregate -> classify.
type Engine struct {
	regulations RegulationLookup
	normalizer  *normalizer.Normalizer
	scorer      *ComponentScorer
	penalty     *PenaltyCalculator
	classifier  *GradeClassifier
	rollup      *StateRollup
	fingerprint string
}

// NewEngine validates every rule table and assembles the pipeline
func NewEngine(opts Options) (*Engine, error) {
	if opts.Regulations == nil {
		opts.Regulations = regulation.NewCuratedRegistry()
	}
	if opts.Normalizer == nil {
		n, err := normalizer.New(normalizer.DefaultConfig())
		if err != nil {
			return nil, err
		}
		opts.Normalizer = n
	}
	rules := DefaultRuleSet()
	if opts.Rules != nil {
		rules = *opts.Rules
	}
	investment := DefaultInvestmentAssumptions()
	if opts.Investment != nil {
		investment = *opts.Investment
	}
	penalty := DefaultPenaltyRules()
	if opts.Penalty != nil {
		penalty = *opts.Penalty
	}
	bands := opts.GradeBands
	if len(bands) == 0 {
		bands = DefaultGradeBands()
	}

	classifier, err := NewGradeClassifier(bands)
	if err != nil {
		return nil, err
	}
	scorer, err := NewComponentScorer(rules, investment)
	if err != nil {
		return nil, err
	}
	calc, err := NewPenaltyCalculator(penalty, classifier.HoldFloor())
	if err != nil {
		return nil, err
	}

	fingerprint, err := tablesFingerprint(rules, investment, penalty, bands, opts.Normalizer.Config())
	if err != nil {
		return nil, err
	}

	return &Engine{
		regulations: opts.Regulations,
		normalizer:  opts.Normalizer,
		scorer:      scorer,
		penalty:     calc,
		classifier:  classifier,
		rollup:      NewStateRollup(opts.MinStatePopulation, classifier),
		fingerprint: fingerprint,
	}, nil
}

// tablesFingerprint hashes every table that can change a market's result, so
// two engines with equal fingerprints score identical inputs identically.
func tablesFingerprint(rules RuleSet, investment InvestmentAssumptions, penalty PenaltyRules, bands []GradeBand, norm normalizer.Config) (string, error) {
	data, err := json.Marshal(struct {
		Rules      RuleSet
		Investment InvestmentAssumptions
		Penalty    PenaltyRules
		Bands      []GradeBand
		Normalizer normalizer.Config
	}{rules, investment, penalty, bands, norm})
	if err != nil {
		return "", err
	}
	return rules.Version + "-" + strconv.FormatUint(xxhash.Sum64(data), 16), nil
}

// Normalize exposes the engine's normalizer
func (e *Engine) Normalize(raw models.RawMarketRecord) models.Market {
	return e.normalizer.Normalize(raw)
}

// RulesVersion returns the version of the component curves in use
func (e *Engine) RulesVersion() string {
	return e.scorer.Rules().Version
}

// Fingerprint identifies the rule version together with every tunable table.
// Cached results are only valid for an engine with the same fingerprint.
func (e *Engine) Fingerprint() string {
	return e.fingerprint
}

// Regulation resolves the regulation entry the engine would apply to marketID
func (e *Engine) Regulation(marketID string) (models.RegulationEntry, models.RegulationSource) {
	return e.regulations.Lookup(marketID)
}

// ScoreRecord normalizes a raw record and scores it
func (e *Engine) ScoreRecord(raw models.RawMarketRecord) models.MarketScoreResult {
	return e.ScoreMarket(e.normalizer.Normalize(raw))
}

// ScoreMarket scores a canonical market. The result is built fresh on every
// call and depends only on the market and the engine's tables.
func (e *Engine) ScoreMarket(m models.Market) models.MarketScoreResult {
	components := e.scorer.Score(m)
	entry, source := e.regulations.Lookup(m.ID)
	penalty := e.penalty.ComputePenalty(entry)
	total := Aggregate(components, penalty)
	grade, verdict := e.classifier.Classify(total)

	return models.MarketScoreResult{
		MarketID:         m.ID,
		City:             m.City,
		State:            m.State,
		Population:       m.Population,
		Components:       components,
		Penalty:          penalty,
		RegulationSource: source,
		TotalScore:       total,
		Grade:            grade,
		Verdict:          verdict,
		EstimatedFields:  m.EstimatedFields(),
	}
}

// Classify maps a total score to its grade and verdict
func (e *Engine) Classify(score int) (models.Grade, models.Verdict) {
	return e.classifier.Classify(score)
}

// RollUpState summarises the results of one state
func (e *Engine) RollUpState(state string, results []models.MarketScoreResult) models.StateScoreResult {
	return e.rollup.RollUp(state, results)
}

// RollUpStates summarises every state present in results
func (e *Engine) RollUpStates(results []models.MarketScoreResult) []models.StateScoreResult {
	return e.rollup.RollUpAll(results)
}
