/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package judge

import "fmt"

// Dimension is one of the fixed evaluation axes.
type Dimension string

const (
	// FactualAccuracy measures whether the response's claims are supported
	// by the supplied evidence.
	FactualAccuracy Dimension = "factual_accuracy"
	// ReasoningQuality measures the soundness of the response's logic.
	ReasoningQuality Dimension = "reasoning_quality"
	// Relevance measures how directly the response addresses the query.
	Relevance Dimension = "relevance"
	// Completeness measures whether the response covers all aspects of the query.
	Completeness Dimension = "completeness"
)

// AllDimensions returns the four evaluation dimensions in canonical order.
func AllDimensions() []Dimension {
	return []Dimension{FactualAccuracy, ReasoningQuality, Relevance, Completeness}
}

// Valid reports whether d is a known dimension.
func (d Dimension) Valid() bool {
	switch d {
	case FactualAccuracy, ReasoningQuality, Relevance, Completeness:
		return true
	}
	return false
}

// maxOutputTokens returns the output-length cap for this dimension's
// oracle call. Factual accuracy and reasoning quality get a larger cap
// because their rationales cite specific contradictions.
func (d Dimension) maxOutputTokens() int64 {
	switch d {
	case FactualAccuracy, ReasoningQuality:
		return 2048
	case Relevance, Completeness:
		return 1024
	default:
		return 1024
	}
}

// label returns the human-readable form used in prompts and reports.
func (d Dimension) label() string {
	switch d {
	case FactualAccuracy:
		return "factual accuracy"
	case ReasoningQuality:
		return "reasoning quality"
	case Relevance:
		return "relevance"
	case Completeness:
		return "completeness"
	default:
		return string(d)
	}
}

// validateDimension returns an error for unknown dimensions.
func validateDimension(d Dimension) error {
	if !d.Valid() {
		return fmt.Errorf("unknown dimension: %q", d)
	}
	return nil
}
