/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package judge

import (
	"errors"
	"fmt"
)

// Option is a functional option for configuring a Judge.
type Option func(*Judge) error

// WithRecorder sets the metrics recorder. The default discards samples.
func WithRecorder(r Recorder) Option {
	return func(j *Judge) error {
		if r == nil {
			return errors.New("recorder cannot be nil")
		}
		j.recorder = r
		return nil
	}
}

// WithEvaluationTemperature overrides the sampling temperature for the
// per-dimension judgment calls. The default 0.1 keeps judgments
// near-deterministic.
func WithEvaluationTemperature(temp float64) Option {
	return func(j *Judge) error {
		if temp < 0.0 || temp > 1.0 {
			return fmt.Errorf("temperature must be between 0.0 and 1.0, got %f", temp)
		}
		j.evalTemp = temp
		return nil
	}
}

// WithRewriteTemperature overrides the sampling temperature for the
// suggestion-synthesis and regeneration calls. The default 0.7 allows
// creative rewording.
func WithRewriteTemperature(temp float64) Option {
	return func(j *Judge) error {
		if temp < 0.0 || temp > 1.0 {
			return fmt.Errorf("temperature must be between 0.0 and 1.0, got %f", temp)
		}
		j.rewriteTemp = temp
		return nil
	}
}

// WithTokenCap overrides the output-length cap for one dimension's
// oracle call.
func WithTokenCap(d Dimension, tokens int64) Option {
	return func(j *Judge) error {
		if err := validateDimension(d); err != nil {
			return err
		}
		if tokens <= 0 {
			return fmt.Errorf("token cap must be positive, got %d", tokens)
		}
		j.tokenCaps[d] = tokens
		return nil
	}
}

// WithoutSuggestions disables the suggestion-synthesis call during
// Evaluate. SynthesizeSuggestions remains available to call directly.
func WithoutSuggestions() Option {
	return func(j *Judge) error {
		j.suggestions = false
		return nil
	}
}

// WithMaxEvidenceDocuments bounds how many evidence documents the
// regeneration prompt embeds. The default is 3, to control prompt size.
func WithMaxEvidenceDocuments(n int) Option {
	return func(j *Judge) error {
		if n < 0 {
			return fmt.Errorf("max evidence documents cannot be negative, got %d", n)
		}
		j.maxEvidence = n
		return nil
	}
}
