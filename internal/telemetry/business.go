package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/irfndi/strmarket-engine/internal/models"
)

// ScoringTracer provides spans for the market scoring workflow
type ScoringTracer struct {
	tracer trace.Tracer
}

// NewScoringTracer creates a new instance of ScoringTracer backed by the global provider.
func NewScoringTracer() *ScoringTracer {
	return &ScoringTracer{tracer: GetScoringTracer()}
}

// TraceBatchScoring starts a span covering one batch of markets.
func (st *ScoringTracer) TraceBatchScoring(ctx context.Context, runID string, size int, rulesVersion string) (context.Context, trace.Span) {
	return st.tracer.Start(ctx, "market_scoring.batch",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("scoring.run_id", runID),
			attribute.Int("scoring.batch_size", size),
			attribute.String("scoring.rules_version", rulesVersion),
		),
	)
}

// RecordBatchResult adds aggregate counts to a batch span
func (st *ScoringTracer) RecordBatchResult(span trace.Span, scored int, cacheHits int) {
	span.SetAttributes(
		attribute.Int("scoring.scored", scored),
		attribute.Int("scoring.cache_hits", cacheHits),
	)
	span.SetStatus(codes.Ok, "batch scored")
}

// TraceMarketScoring starts a span for a single market
func (st *ScoringTracer) TraceMarketScoring(ctx context.Context, marketID string) (context.Context, trace.Span) {
	return st.tracer.Start(ctx, "market_scoring.market",
		trace.WithAttributes(attribute.String("market.id", marketID)),
	)
}

// RecordMarketScore adds the outcome of a scoring call to a market span
func (st *ScoringTracer) RecordMarketScore(span trace.Span, result models.MarketScoreResult, cached bool) {
	span.SetAttributes(
		attribute.Int("market.total_score", result.TotalScore),
		attribute.String("market.grade", string(result.Grade)),
		attribute.String("market.verdict", string(result.Verdict)),
		attribute.String("market.regulation_source", string(result.RegulationSource)),
		attribute.Int("market.penalty", result.Penalty.PointsDeducted),
		attribute.Int("market.estimated_fields", len(result.EstimatedFields)),
		attribute.Bool("market.cached", cached),
	)
}

// RecordError records an error on a span and marks it failed
func RecordError(span trace.Span, err error, description string) {
	if err == nil || !span.IsRecording() {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, description)
}

// AddSpanAttribute adds an attribute to the span carried by ctx
func AddSpanAttribute(ctx context.Context, key string, value interface{}) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}
	switch v := value.(type) {
	case string:
		span.SetAttributes(attribute.String(key, v))
	case int:
		span.SetAttributes(attribute.Int(key, v))
	case int64:
		span.SetAttributes(attribute.Int64(key, v))
	case float64:
		span.SetAttributes(attribute.Float64(key, v))
	case bool:
		span.SetAttributes(attribute.Bool(key, v))
	default:
		span.SetAttributes(attribute.String(key, fmt.Sprintf("%v", value)))
	}
}
