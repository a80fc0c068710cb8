/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package judge

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chainguard-dev/clog"
	"golang.org/x/sync/errgroup"

	"chainguard.dev/oversight/evidence"
	"chainguard.dev/oversight/oracle"
)

// Request contains the inputs for one evaluation.
type Request struct {
	// QueryID identifies the evaluated exchange, for metrics tagging.
	QueryID string `json:"query_id"`

	// Query is the original question.
	Query string `json:"query"`

	// Response is the candidate answer to evaluate.
	Response string `json:"response"`

	// Context is the read-only evidence the response is judged against.
	Context *evidence.Context `json:"context,omitempty"`
}

// Validate checks that the request is well-formed.
func (r *Request) Validate() error {
	if r == nil {
		return errors.New("request cannot be nil")
	}
	if r.QueryID == "" {
		return errors.New("query ID is required")
	}
	if r.Query == "" {
		return errors.New("query is required")
	}
	if r.Response == "" {
		return errors.New("response is required")
	}
	return nil
}

// Recorder receives the evaluation's observable side effects: one score
// sample per dimension plus one duration sample per evaluation. The
// metrics package provides an OpenTelemetry implementation; the default
// is a no-op so the core is testable in isolation.
type Recorder interface {
	RecordScore(ctx context.Context, queryID, dimension string, score float64)
	RecordDuration(ctx context.Context, queryID string, d time.Duration)
}

// noopRecorder discards all samples.
type noopRecorder struct{}

func (noopRecorder) RecordScore(context.Context, string, string, float64) {}
func (noopRecorder) RecordDuration(context.Context, string, time.Duration) {}

// Judge evaluates candidate responses with a reasoning oracle.
// It is safe for concurrent use as long as its oracle is.
type Judge struct {
	oracle      oracle.Interface
	recorder    Recorder
	evalTemp    float64
	rewriteTemp float64
	tokenCaps   map[Dimension]int64
	suggestions bool
	maxEvidence int
	rewriteCap  int64
	suggestCap  int64
}

// New creates a Judge backed by the given oracle.
func New(o oracle.Interface, opts ...Option) (*Judge, error) {
	if o == nil {
		return nil, errors.New("oracle cannot be nil")
	}
	j := &Judge{
		oracle:      o,
		recorder:    noopRecorder{},
		evalTemp:    0.1, // near-deterministic judgments
		rewriteTemp: 0.7, // allow creative rewording
		tokenCaps:   map[Dimension]int64{},
		suggestions: true,
		maxEvidence: 3,
		rewriteCap:  4096,
		suggestCap:  1024,
	}
	for _, opt := range opts {
		if err := opt(j); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}
	return j, nil
}

// Evaluate scores the request's response on all four dimensions,
// synthesizes improvement suggestions, and returns the aggregated
// evaluation with its wall-clock cost. The recorded duration spans the
// dimension calls and the suggestion synthesis, not just assembly.
//
// The four dimension calls are dispatched concurrently; they share no
// state beyond the oracle client. Any dimension failure fails the whole
// evaluation: a partial evaluation would let a missing dimension pass
// downstream threshold checks unnoticed. Cancelling ctx aborts in-flight
// oracle calls and propagates the cancellation.
func (j *Judge) Evaluate(ctx context.Context, req *Request) (*Evaluation, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	log := clog.FromContext(ctx)
	start := time.Now()

	dims := AllDimensions()
	results := make([]DimensionResult, len(dims))

	g, gctx := errgroup.WithContext(ctx)
	for i, d := range dims {
		g.Go(func() error {
			res, err := j.evaluateDimension(gctx, d, req)
			if err != nil {
				return fmt.Errorf("evaluating %s: %w", d.label(), err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	eval := &Evaluation{
		QueryID:    req.QueryID,
		Dimensions: results,
	}

	if j.suggestions {
		suggestions, err := j.SynthesizeSuggestions(ctx, req, eval)
		if err != nil {
			return nil, fmt.Errorf("synthesizing suggestions: %w", err)
		}
		eval.Suggestions = suggestions
	}

	eval.Duration = time.Since(start)

	for _, r := range eval.Dimensions {
		j.recorder.RecordScore(ctx, req.QueryID, string(r.Dimension), r.Score)
	}
	j.recorder.RecordDuration(ctx, req.QueryID, eval.Duration)

	dim, low := eval.MinScore()
	log.With("query", req.QueryID).
		With("duration", eval.Duration).
		With("min_dimension", string(dim)).
		With("min_score", low).
		Info("Completed evaluation")

	return eval, nil
}

// evaluateDimension runs a single dimension's oracle call and normalizes
// its free-form reply. Oracle failures propagate; a score is never
// invented for a call that did not answer.
func (j *Judge) evaluateDimension(ctx context.Context, d Dimension, req *Request) (DimensionResult, error) {
	prompt, err := dimensionPrompt(d)
	if err != nil {
		return DimensionResult{}, err
	}

	bound, err := req.Bind(prompt)
	if err != nil {
		return DimensionResult{}, fmt.Errorf("failed to bind request to prompt: %w", err)
	}
	userPrompt, err := bound.Build()
	if err != nil {
		return DimensionResult{}, fmt.Errorf("failed to build prompt: %w", err)
	}

	text, err := j.oracle.Complete(ctx, &oracle.Request{
		SystemPrompt:    dimensionSystem(d),
		UserPrompt:      userPrompt,
		Temperature:     j.evalTemp,
		MaxOutputTokens: j.tokenCap(d),
	})
	if err != nil {
		return DimensionResult{}, err
	}

	return DimensionResult{
		Dimension: d,
		Score:     ExtractScore(text),
		Rationale: text,
	}, nil
}

// tokenCap returns the configured or default output cap for a dimension.
func (j *Judge) tokenCap(d Dimension) int64 {
	if c, ok := j.tokenCaps[d]; ok {
		return c
	}
	return d.maxOutputTokens()
}
