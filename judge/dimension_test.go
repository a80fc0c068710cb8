/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package judge_test

import (
	"testing"

	"chainguard.dev/oversight/judge"
	"chainguard.dev/oversight/oracle/oracletest"
)

func TestAllDimensions(t *testing.T) {
	want := []judge.Dimension{
		judge.FactualAccuracy,
		judge.ReasoningQuality,
		judge.Relevance,
		judge.Completeness,
	}
	got := judge.AllDimensions()
	if len(got) != len(want) {
		t.Fatalf("AllDimensions() = %v, wanted %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("AllDimensions()[%d] = %q, wanted %q", i, got[i], want[i])
		}
	}
}

func TestDimensionValid(t *testing.T) {
	for _, d := range judge.AllDimensions() {
		if !d.Valid() {
			t.Errorf("%q.Valid() = false, wanted true", d)
		}
	}
	for _, d := range []judge.Dimension{"", "style", "Factual_Accuracy"} {
		if d.Valid() {
			t.Errorf("%q.Valid() = true, wanted false", d)
		}
	}
}

func TestJudgeOptionValidation(t *testing.T) {
	fake := &oracletest.Fake{}
	tests := []struct {
		name string
		opt  judge.Option
	}{{
		name: "nil recorder",
		opt:  judge.WithRecorder(nil),
	}, {
		name: "evaluation temperature out of range",
		opt:  judge.WithEvaluationTemperature(1.5),
	}, {
		name: "rewrite temperature negative",
		opt:  judge.WithRewriteTemperature(-0.1),
	}, {
		name: "token cap for unknown dimension",
		opt:  judge.WithTokenCap("style", 100),
	}, {
		name: "non-positive token cap",
		opt:  judge.WithTokenCap(judge.Relevance, 0),
	}, {
		name: "negative evidence bound",
		opt:  judge.WithMaxEvidenceDocuments(-1),
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := judge.New(fake, tt.opt); err == nil {
				t.Error("New() = nil error, wanted option failure")
			}
		})
	}
}
