/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package judge_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"chainguard.dev/oversight/evidence"
	"chainguard.dev/oversight/judge"
	"chainguard.dev/oversight/oracle/oracletest"
)

// scriptedFake returns a fake oracle answering each dimension prompt with
// the given score line and the suggestion prompt with two items.
func scriptedFake() *oracletest.Fake {
	f := &oracletest.Fake{}
	// The suggestion rule is registered first so its prompt, which also
	// names the four dimensions, never hits a dimension rule.
	f.ReplyWhen("synthesizing improvement suggestions", "1. Add a citation for claim Y.\n2. Shorten paragraph 3.")
	f.ReplyWhen("evaluating the factual accuracy", "Score: 0.9\nEvery claim is supported by the evidence.")
	f.ReplyWhen("evaluating the reasoning quality", "Score: 0.8\nThe argument is mostly sound.")
	f.ReplyWhen("evaluating the relevance", "Score: 0.7\nLargely on topic with one digression.")
	f.ReplyWhen("evaluating the completeness", "Score: 0.6\nThe second half of the question is unaddressed.")
	return f
}

func testRequest() *judge.Request {
	return &judge.Request{
		QueryID:  "q-123",
		Query:    "What drives the observed latency regression?",
		Response: "The regression is caused by lock contention in the cache layer.",
		Context: &evidence.Context{
			Documents: []evidence.KnowledgeDocument{{
				Title:   "profiling notes",
				Source:  "perf/2025-08.md",
				Content: "Mutex wait time tripled after the cache rewrite.",
			}},
		},
	}
}

func TestEvaluate(t *testing.T) {
	fake := scriptedFake()
	j, err := judge.New(fake)
	if err != nil {
		t.Fatalf("New() = %v", err)
	}

	eval, err := j.Evaluate(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("Evaluate() = %v", err)
	}

	if eval.QueryID != "q-123" {
		t.Errorf("QueryID = %q, wanted %q", eval.QueryID, "q-123")
	}
	if eval.Duration <= 0 {
		t.Errorf("Duration = %v, wanted > 0", eval.Duration)
	}

	wantScores := map[judge.Dimension]float64{
		judge.FactualAccuracy:  0.9,
		judge.ReasoningQuality: 0.8,
		judge.Relevance:        0.7,
		judge.Completeness:     0.6,
	}
	if len(eval.Dimensions) != len(wantScores) {
		t.Fatalf("len(Dimensions) = %d, wanted %d", len(eval.Dimensions), len(wantScores))
	}
	// Results come back in canonical order regardless of dispatch order.
	for i, d := range judge.AllDimensions() {
		r := eval.Dimensions[i]
		if r.Dimension != d {
			t.Errorf("Dimensions[%d] = %q, wanted %q", i, r.Dimension, d)
		}
		if r.Score != wantScores[d] {
			t.Errorf("%s score = %v, wanted %v", d, r.Score, wantScores[d])
		}
		if r.Rationale == "" {
			t.Errorf("%s rationale is empty", d)
		}
	}

	wantSuggestions := []string{
		"1. Add a citation for claim Y.",
		"2. Shorten paragraph 3.",
	}
	if len(eval.Suggestions) != len(wantSuggestions) {
		t.Fatalf("Suggestions = %v, wanted %v", eval.Suggestions, wantSuggestions)
	}
	for i, want := range wantSuggestions {
		if eval.Suggestions[i] != want {
			t.Errorf("Suggestions[%d] = %q, wanted %q", i, eval.Suggestions[i], want)
		}
	}

	// Four dimension calls plus one suggestion call.
	calls := fake.Calls()
	if len(calls) != 5 {
		t.Errorf("len(Calls()) = %d, wanted 5", len(calls))
	}
}

func TestEvaluateDimensionFailureFailsWhole(t *testing.T) {
	fake := &oracletest.Fake{Reply: "Score: 0.9\nLooks fine."}
	// Rules are first-hit-wins, so the failure must precede any fallback.
	fake.FailWhen("evaluating the reasoning quality", errors.New("oracle unavailable"))
	j, err := judge.New(fake)
	if err != nil {
		t.Fatalf("New() = %v", err)
	}

	eval, err := j.Evaluate(context.Background(), testRequest())
	if err == nil {
		t.Fatal("Evaluate() = nil error, wanted failure")
	}
	if eval != nil {
		t.Errorf("Evaluate() = %v, wanted nil evaluation on dimension failure", eval)
	}
	if !strings.Contains(err.Error(), "reasoning quality") {
		t.Errorf("error %q does not name the failed dimension", err)
	}
}

func TestEvaluateValidation(t *testing.T) {
	j, err := judge.New(&oracletest.Fake{Reply: "Score: 0.5"})
	if err != nil {
		t.Fatalf("New() = %v", err)
	}

	tests := []struct {
		name string
		req  *judge.Request
	}{{
		name: "nil request",
		req:  nil,
	}, {
		name: "missing query ID",
		req:  &judge.Request{Query: "q", Response: "r"},
	}, {
		name: "missing query",
		req:  &judge.Request{QueryID: "id", Response: "r"},
	}, {
		name: "missing response",
		req:  &judge.Request{QueryID: "id", Query: "q"},
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := j.Evaluate(context.Background(), tt.req); err == nil {
				t.Error("Evaluate() = nil error, wanted validation failure")
			}
		})
	}
}

func TestEvaluateWithoutSuggestions(t *testing.T) {
	fake := scriptedFake()
	j, err := judge.New(fake, judge.WithoutSuggestions())
	if err != nil {
		t.Fatalf("New() = %v", err)
	}

	eval, err := j.Evaluate(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("Evaluate() = %v", err)
	}
	if len(eval.Suggestions) != 0 {
		t.Errorf("Suggestions = %v, wanted none", eval.Suggestions)
	}
	if calls := fake.Calls(); len(calls) != 4 {
		t.Errorf("len(Calls()) = %d, wanted 4", len(calls))
	}
}

func TestEvaluateTemperatures(t *testing.T) {
	fake := scriptedFake()
	j, err := judge.New(fake,
		judge.WithEvaluationTemperature(0.2),
		judge.WithRewriteTemperature(0.9))
	if err != nil {
		t.Fatalf("New() = %v", err)
	}

	if _, err := j.Evaluate(context.Background(), testRequest()); err != nil {
		t.Fatalf("Evaluate() = %v", err)
	}

	for _, c := range fake.Calls() {
		if strings.Contains(c.UserPrompt, "synthesizing improvement suggestions") {
			if c.Temperature != 0.9 {
				t.Errorf("suggestion temperature = %v, wanted 0.9", c.Temperature)
			}
			continue
		}
		if c.Temperature != 0.2 {
			t.Errorf("dimension temperature = %v, wanted 0.2", c.Temperature)
		}
	}
}

func TestEvaluateTokenCap(t *testing.T) {
	fake := scriptedFake()
	j, err := judge.New(fake, judge.WithTokenCap(judge.Relevance, 256))
	if err != nil {
		t.Fatalf("New() = %v", err)
	}

	if _, err := j.Evaluate(context.Background(), testRequest()); err != nil {
		t.Fatalf("Evaluate() = %v", err)
	}

	found := false
	for _, c := range fake.Calls() {
		if strings.Contains(c.UserPrompt, "evaluating the relevance") {
			found = true
			if c.MaxOutputTokens != 256 {
				t.Errorf("relevance output cap = %d, wanted 256", c.MaxOutputTokens)
			}
		}
	}
	if !found {
		t.Error("no relevance call observed")
	}
}

func TestEvaluateCancelled(t *testing.T) {
	j, err := judge.New(scriptedFake())
	if err != nil {
		t.Fatalf("New() = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := j.Evaluate(ctx, testRequest()); !errors.Is(err, context.Canceled) {
		t.Errorf("Evaluate() = %v, wanted %v", err, context.Canceled)
	}
}

// countingRecorder counts the samples the judge reports.
type countingRecorder struct {
	mu        sync.Mutex
	scores    map[string]float64
	durations int
}

func (r *countingRecorder) RecordScore(_ context.Context, _, dimension string, score float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.scores == nil {
		r.scores = map[string]float64{}
	}
	r.scores[dimension] = score
}

func (r *countingRecorder) RecordDuration(context.Context, string, time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.durations++
}

func TestEvaluateRecords(t *testing.T) {
	rec := &countingRecorder{}
	j, err := judge.New(scriptedFake(), judge.WithRecorder(rec))
	if err != nil {
		t.Fatalf("New() = %v", err)
	}

	if _, err := j.Evaluate(context.Background(), testRequest()); err != nil {
		t.Fatalf("Evaluate() = %v", err)
	}

	if len(rec.scores) != 4 {
		t.Errorf("recorded %d score samples, wanted 4", len(rec.scores))
	}
	if got := rec.scores["completeness"]; got != 0.6 {
		t.Errorf("completeness sample = %v, wanted 0.6", got)
	}
	if rec.durations != 1 {
		t.Errorf("recorded %d duration samples, wanted 1", rec.durations)
	}
}

func TestNewRequiresOracle(t *testing.T) {
	if _, err := judge.New(nil); err == nil {
		t.Error("New(nil) = nil error, wanted failure")
	}
}
