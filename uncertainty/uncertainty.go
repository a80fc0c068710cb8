/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package uncertainty quantifies how trustworthy a piece of data or a
// judgment is. The Quantifier turns an Estimator's raw confidence into
// clamped scalars, structured reports, and threshold decisions, and
// hosts fire-and-forget mitigation hooks. Every operation is a pure
// function of its inputs; the package keeps no internal state between
// calls.
package uncertainty

import (
	"context"
	"fmt"

	"github.com/chainguard-dev/clog"
)

// Type is a coarse uncertainty bucket, communicated even when a report
// carries no detailed metrics.
type Type string

const (
	// None indicates the data is trustworthy enough to act on.
	None Type = "none"
	// Partial indicates moderate residual uncertainty.
	Partial Type = "partial"
	// High indicates significant uncertainty.
	High Type = "high"
	// Unknown indicates confidence too low to characterize.
	Unknown Type = "unknown"
)

// Report is the structured output of Quantify.
type Report struct {
	// Confidence is the clamped scalar trustworthiness estimate.
	Confidence float64 `json:"confidence"`

	// Type buckets the confidence coarsely. Higher confidence means
	// lower uncertainty.
	Type Type `json:"uncertainty_type"`

	// Metrics carries optional named measurements behind the estimate.
	Metrics map[string]float64 `json:"metrics,omitempty"`
}

// Mitigation is a named remediation hook, such as requesting more
// evidence or retrying at a lower temperature.
type Mitigation func(ctx context.Context, params map[string]float64) error

// Quantifier computes confidence estimates and threshold decisions.
// It is safe for concurrent use.
type Quantifier struct {
	estimator   Estimator
	mitigations map[string]Mitigation
}

// New creates a Quantifier. Without options it estimates from
// inter-dimension agreement and has no registered mitigations.
func New(opts ...Option) (*Quantifier, error) {
	q := &Quantifier{
		estimator:   AgreementEstimator{},
		mitigations: map[string]Mitigation{},
	}
	for _, opt := range opts {
		if err := opt(q); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}
	return q, nil
}

// Confidence returns a coarse scalar trustworthiness estimate for data,
// clamped to [0, 1].
func (q *Quantifier) Confidence(data any) float64 {
	return clamp(q.estimator.Confidence(data))
}

// Quantify returns a structured uncertainty report for data. The params
// are passed through to the report's metrics untouched.
func (q *Quantifier) Quantify(data any, params map[string]float64) *Report {
	c := q.Confidence(data)
	return &Report{
		Confidence: c,
		Type:       typeFor(c),
		Metrics:    params,
	}
}

// WithinThreshold reports whether data's confidence meets the threshold.
// It is true exactly when Confidence(data) >= threshold.
func (q *Quantifier) WithinThreshold(data any, threshold float64) bool {
	return q.Confidence(data) >= threshold
}

// ApplyMitigation runs the named mitigation strategy. Unknown strategies
// and handler failures are logged and never propagated: a failed
// remediation must not mask the caller's already-decided path.
func (q *Quantifier) ApplyMitigation(ctx context.Context, strategy string, params map[string]float64) {
	log := clog.FromContext(ctx).With("strategy", strategy)

	m, ok := q.mitigations[strategy]
	if !ok {
		log.Warn("Unknown mitigation strategy")
		return
	}
	if err := m(ctx, params); err != nil {
		log.Warnf("Mitigation failed: %v", err)
		return
	}
	log.Info("Applied mitigation")
}

// typeFor buckets a clamped confidence into an uncertainty type.
func typeFor(confidence float64) Type {
	switch {
	case confidence >= 0.9:
		return None
	case confidence >= 0.6:
		return Partial
	case confidence >= 0.3:
		return High
	default:
		return Unknown
	}
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
