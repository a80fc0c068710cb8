/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package metrics provides OpenTelemetry instrumentation for oracle calls
// and evaluations. All instruments degrade gracefully to no-ops if metric
// creation fails, so instrumentation never takes down the caller.
package metrics

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// meterName is the unified meter shared by all oversight instruments.
// The model name serves as a dimension on the recorded metrics to
// differentiate between providers (Claude, Gemini, OpenAI, etc.).
const meterName = "chainguard.ai.oversight"

// Oracle provides OpenTelemetry metrics for oracle completion calls:
// counters for token usage (prompt and completion) and total calls.
type Oracle struct {
	meter            metric.Meter
	promptTokens     metric.Int64Counter
	completionTokens metric.Int64Counter
	callCounter      metric.Int64Counter
	attrEnricher     AttributeEnricher
}

// NewOracle creates a new Oracle metrics instance.
// Uses graceful degradation: if any metric counter fails to initialize,
// logs a warning and uses a no-op counter instead of failing entirely.
func NewOracle() *Oracle {
	meter := otel.Meter(meterName, metric.WithInstrumentationVersion("1.0.0"))

	promptTokens, err := meter.Int64Counter("oracle.token.prompt",
		metric.WithDescription("The number of prompt tokens used"),
		metric.WithUnit("{tokens}"))
	if err != nil {
		slog.Warn("Failed to create prompt tokens counter, metrics will be disabled", "error", err, "meter", meterName)
		promptTokens = noop.Int64Counter{}
	}

	completionTokens, err := meter.Int64Counter("oracle.token.completion",
		metric.WithDescription("The number of completion tokens used"),
		metric.WithUnit("{tokens}"))
	if err != nil {
		slog.Warn("Failed to create completion tokens counter, metrics will be disabled", "error", err, "meter", meterName)
		completionTokens = noop.Int64Counter{}
	}

	callCounter, err := meter.Int64Counter("oracle.calls",
		metric.WithDescription("The number of oracle completion calls made"),
		metric.WithUnit("{calls}"))
	if err != nil {
		slog.Warn("Failed to create call counter, metrics will be disabled", "error", err, "meter", meterName)
		callCounter = noop.Int64Counter{}
	}

	return &Oracle{
		meter:            meter,
		promptTokens:     promptTokens,
		completionTokens: completionTokens,
		callCounter:      callCounter,
	}
}

// SetAttributeEnricher sets the attribute enricher for this metrics instance.
// The enricher is called before recording each metric to add contextual attributes.
func (m *Oracle) SetAttributeEnricher(enricher AttributeEnricher) {
	m.attrEnricher = enricher
}

// RecordTokens records prompt and completion token usage with optional enrichment.
// The model parameter is added as a base attribute, and the enricher (if set)
// can add additional contextual attributes.
func (m *Oracle) RecordTokens(ctx context.Context, model string, promptTokens, completionTokens int64, attrs ...attribute.KeyValue) {
	baseAttrs := []attribute.KeyValue{
		attribute.String("model", model),
	}
	if m.attrEnricher != nil {
		baseAttrs = m.attrEnricher(ctx, baseAttrs)
	}
	baseAttrs = append(baseAttrs, attrs...)

	m.promptTokens.Add(ctx, promptTokens, metric.WithAttributes(baseAttrs...))
	m.completionTokens.Add(ctx, completionTokens, metric.WithAttributes(baseAttrs...))
}

// RecordCall records a completion call with optional enrichment.
func (m *Oracle) RecordCall(ctx context.Context, model string, attrs ...attribute.KeyValue) {
	baseAttrs := []attribute.KeyValue{
		attribute.String("model", model),
	}
	if m.attrEnricher != nil {
		baseAttrs = m.attrEnricher(ctx, baseAttrs)
	}
	baseAttrs = append(baseAttrs, attrs...)

	m.callCounter.Add(ctx, 1, metric.WithAttributes(baseAttrs...))
}
