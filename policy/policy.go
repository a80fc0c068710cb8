/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package policy decides whether an evaluation is trustworthy enough to
// accept automatically or needs human review. The Escalator combines an
// uncertainty check with per-dimension score floors; when either fails,
// it opens a collaboration session through the escalation port.
package policy

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/chainguard-dev/clog"

	"chainguard.dev/oversight/collab"
	"chainguard.dev/oversight/judge"
)

// Quantifier is the confidence capability the Escalator consumes. The
// uncertainty package provides the standard implementation.
type Quantifier interface {
	Confidence(data any) float64
	WithinThreshold(data any, threshold float64) bool
}

// Config holds the escalation policy knobs.
type Config struct {
	// ConfidenceThreshold is the minimum confidence to accept an
	// evaluation without human review.
	ConfidenceThreshold float64

	// DimensionFloors are per-dimension minimum scores; a dimension
	// scoring below its floor forces escalation regardless of overall
	// confidence.
	DimensionFloors map[judge.Dimension]float64

	// Participants are the humans pulled into escalation sessions.
	Participants []string

	// SessionPrefix prefixes escalation session names; the session for
	// query "q-1" is named "<prefix>/q-1". Defaults to "review".
	SessionPrefix string
}

// Validate checks that the config is well-formed.
func (c *Config) Validate() error {
	if c.ConfidenceThreshold < 0 || c.ConfidenceThreshold > 1 {
		return fmt.Errorf("confidence threshold must be between 0.0 and 1.0, got %f", c.ConfidenceThreshold)
	}
	for d, floor := range c.DimensionFloors {
		if !d.Valid() {
			return fmt.Errorf("unknown dimension: %q", d)
		}
		if floor < 0 || floor > 1 {
			return fmt.Errorf("floor for %s must be between 0.0 and 1.0, got %f", d, floor)
		}
	}
	if len(c.Participants) == 0 {
		return errors.New("at least one participant is required")
	}
	return nil
}

// Decision is the outcome of reviewing one evaluation.
type Decision struct {
	// Escalated reports whether a collaboration session was opened.
	Escalated bool `json:"escalated"`

	// Confidence is the quantifier's estimate for the evaluation.
	Confidence float64 `json:"confidence"`

	// Reasons name the checks that forced escalation. Empty when the
	// evaluation was accepted.
	Reasons []string `json:"reasons,omitempty"`
}

// Escalator reviews evaluations against the configured policy.
// It is safe for concurrent use.
type Escalator struct {
	port       collab.Port
	quantifier Quantifier
	cfg        Config
}

// New creates an Escalator.
func New(port collab.Port, q Quantifier, cfg Config) (*Escalator, error) {
	if port == nil {
		return nil, errors.New("escalation port cannot be nil")
	}
	if q == nil {
		return nil, errors.New("quantifier cannot be nil")
	}
	if cfg.SessionPrefix == "" {
		cfg.SessionPrefix = "review"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Escalator{
		port:       port,
		quantifier: q,
		cfg:        cfg,
	}, nil
}

// Review checks the evaluation against the confidence threshold and the
// per-dimension floors. When every check passes, the evaluation is
// accepted. Otherwise an escalation session is opened through the port;
// a port failure fails the review, since an unreported escalation
// failure would let a low-confidence response ship unreviewed.
func (e *Escalator) Review(ctx context.Context, eval *judge.Evaluation) (*Decision, error) {
	if eval == nil {
		return nil, errors.New("evaluation cannot be nil")
	}
	if eval.QueryID == "" {
		return nil, errors.New("evaluation has no query ID")
	}
	reviewCounter.Inc()

	log := clog.FromContext(ctx).With("query", eval.QueryID)
	confidence := e.quantifier.Confidence(eval)

	var reasons []string
	if !e.quantifier.WithinThreshold(eval, e.cfg.ConfidenceThreshold) {
		reasons = append(reasons, fmt.Sprintf("confidence %.2f below threshold %.2f", confidence, e.cfg.ConfidenceThreshold))
	}
	// Floors are checked in canonical dimension order so the reasons are
	// deterministic.
	for _, d := range judge.AllDimensions() {
		floor, ok := e.cfg.DimensionFloors[d]
		if !ok {
			continue
		}
		if r, ok := eval.Dimension(d); ok && r.Score < floor {
			reasons = append(reasons, fmt.Sprintf("%s %.2f below floor %.2f", d, r.Score, floor))
		}
	}

	if len(reasons) == 0 {
		log.With("confidence", confidence).Info("Accepted evaluation")
		return &Decision{Confidence: confidence}, nil
	}

	escalationCounter.Inc()
	req := &collab.Request{
		SessionName:  e.cfg.SessionPrefix + "/" + eval.QueryID,
		Description:  strings.Join(reasons, "; "),
		Participants: e.cfg.Participants,
	}
	if err := e.port.CreateSession(ctx, req); err != nil {
		escalationFailureCounter.Inc()
		return nil, fmt.Errorf("creating collaboration session %q: %w", req.SessionName, err)
	}

	log.With("confidence", confidence).
		With("session", req.SessionName).
		With("reasons", len(reasons)).
		Info("Escalated evaluation for human review")
	return &Decision{
		Escalated:  true,
		Confidence: confidence,
		Reasons:    reasons,
	}, nil
}
