/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package judge

import (
	"fmt"
	"strings"
	"time"
)

// DimensionResult captures one dimension's judgment.
type DimensionResult struct {
	// Dimension identifies the evaluation axis.
	Dimension Dimension `json:"dimension"`

	// Score is the normalized judgment from 0.0 (awful) to 1.0 (ideal).
	Score float64 `json:"score"`

	// Rationale is the judge's full reply text, kept verbatim for
	// auditability.
	Rationale string `json:"rationale"`
}

// Evaluation is the aggregated judgment for one (query, response) pair.
// It is immutable after construction: exactly one result per known
// dimension, in canonical order, regardless of dispatch order.
type Evaluation struct {
	// QueryID identifies the evaluated exchange.
	QueryID string `json:"query_id"`

	// Dimensions holds one result per dimension, in AllDimensions order.
	Dimensions []DimensionResult `json:"dimensions"`

	// Suggestions are ranked improvement recommendations. May be empty
	// for strong responses.
	Suggestions []string `json:"suggestions,omitempty"`

	// Duration is the wall-clock cost of producing this evaluation,
	// measured from entry into Evaluate through suggestion synthesis, so
	// it covers every oracle call behind the result.
	Duration time.Duration `json:"duration"`
}

// Dimension returns the result for the named dimension.
func (e *Evaluation) Dimension(d Dimension) (DimensionResult, bool) {
	for _, r := range e.Dimensions {
		if r.Dimension == d {
			return r, true
		}
	}
	return DimensionResult{}, false
}

// MinScore returns the lowest-scoring dimension and its score.
func (e *Evaluation) MinScore() (Dimension, float64) {
	if len(e.Dimensions) == 0 {
		return "", 0
	}
	low := e.Dimensions[0]
	for _, r := range e.Dimensions[1:] {
		if r.Score < low.Score {
			low = r
		}
	}
	return low.Dimension, low.Score
}

// String returns a formatted representation of the evaluation
func (e *Evaluation) String() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Evaluation %s (%.2fs)\n", e.QueryID, e.Duration.Seconds()))
	for _, r := range e.Dimensions {
		sb.WriteString(fmt.Sprintf("  %s: %.2f\n", r.Dimension.label(), r.Score))
	}
	for _, suggestion := range e.Suggestions {
		sb.WriteString(fmt.Sprintf("  Suggestion: %s\n", suggestion))
	}

	return strings.TrimRight(sb.String(), "\n")
}
