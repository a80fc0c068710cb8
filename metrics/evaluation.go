/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package metrics

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// Evaluation provides OpenTelemetry metrics for judge evaluations:
// a histogram of per-dimension scores and a histogram of evaluation
// durations, both tagged by query.
//
// Evaluation satisfies the judge.Recorder interface.
type Evaluation struct {
	meter          metric.Meter
	dimensionScore metric.Float64Histogram
	duration       metric.Float64Histogram
	attrEnricher   AttributeEnricher
}

// NewEvaluation creates a new Evaluation metrics instance.
// Uses graceful degradation: if any instrument fails to initialize, logs a
// warning and uses a no-op instrument instead of failing entirely.
func NewEvaluation() *Evaluation {
	meter := otel.Meter(meterName, metric.WithInstrumentationVersion("1.0.0"))

	dimensionScore, err := meter.Float64Histogram("judge.dimension.score",
		metric.WithDescription("Per-dimension evaluation scores"),
		metric.WithUnit("1"))
	if err != nil {
		slog.Warn("Failed to create dimension score histogram, metrics will be disabled", "error", err, "meter", meterName)
		dimensionScore = noop.Float64Histogram{}
	}

	duration, err := meter.Float64Histogram("judge.evaluation.duration",
		metric.WithDescription("Wall-clock duration of full evaluations"),
		metric.WithUnit("s"))
	if err != nil {
		slog.Warn("Failed to create duration histogram, metrics will be disabled", "error", err, "meter", meterName)
		duration = noop.Float64Histogram{}
	}

	return &Evaluation{
		meter:          meter,
		dimensionScore: dimensionScore,
		duration:       duration,
	}
}

// SetAttributeEnricher sets the attribute enricher for this metrics instance.
func (m *Evaluation) SetAttributeEnricher(enricher AttributeEnricher) {
	m.attrEnricher = enricher
}

// RecordScore records one dimension score sample tagged by query and dimension.
func (m *Evaluation) RecordScore(ctx context.Context, queryID, dimension string, score float64) {
	baseAttrs := []attribute.KeyValue{
		attribute.String("query", queryID),
		attribute.String("dimension", dimension),
	}
	if m.attrEnricher != nil {
		baseAttrs = m.attrEnricher(ctx, baseAttrs)
	}

	m.dimensionScore.Record(ctx, score, metric.WithAttributes(baseAttrs...))
}

// RecordDuration records the wall-clock duration of one evaluation.
func (m *Evaluation) RecordDuration(ctx context.Context, queryID string, d time.Duration) {
	baseAttrs := []attribute.KeyValue{
		attribute.String("query", queryID),
	}
	if m.attrEnricher != nil {
		baseAttrs = m.attrEnricher(ctx, baseAttrs)
	}

	m.duration.Record(ctx, d.Seconds(), metric.WithAttributes(baseAttrs...))
}
