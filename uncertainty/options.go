/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package uncertainty

import "errors"

// Option is a functional option for configuring a Quantifier.
type Option func(*Quantifier) error

// WithEstimator replaces the default agreement-based estimator.
func WithEstimator(e Estimator) Option {
	return func(q *Quantifier) error {
		if e == nil {
			return errors.New("estimator cannot be nil")
		}
		q.estimator = e
		return nil
	}
}

// WithMitigation registers a named mitigation strategy for
// ApplyMitigation to run.
func WithMitigation(strategy string, m Mitigation) Option {
	return func(q *Quantifier) error {
		if strategy == "" {
			return errors.New("strategy name cannot be empty")
		}
		if m == nil {
			return errors.New("mitigation cannot be nil")
		}
		q.mitigations[strategy] = m
		return nil
	}
}
