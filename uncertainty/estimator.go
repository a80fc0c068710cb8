/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package uncertainty

import "chainguard.dev/oversight/judge"

// Estimator produces a raw confidence estimate for arbitrary data. The
// Quantifier clamps the result, so implementations need not.
type Estimator interface {
	Confidence(data any) float64
}

// EstimatorFunc adapts a function to the Estimator interface.
type EstimatorFunc func(data any) float64

// Confidence implements Estimator.
func (f EstimatorFunc) Confidence(data any) float64 {
	return f(data)
}

// StaticEstimator returns the same confidence for every input. Useful as
// a placeholder and in tests.
func StaticEstimator(confidence float64) Estimator {
	return EstimatorFunc(func(any) float64 {
		return confidence
	})
}

// AgreementEstimator derives confidence from how much an evaluation's
// dimension judgments agree with each other: four judges scoring alike
// inspire more trust than four judges scoring apart.
type AgreementEstimator struct{}

// Confidence implements Estimator. For a *judge.Evaluation it returns
// one minus the spread between the highest and lowest dimension score;
// anything else gets the neutral 0.5.
func (AgreementEstimator) Confidence(data any) float64 {
	eval, ok := data.(*judge.Evaluation)
	if !ok || eval == nil || len(eval.Dimensions) == 0 {
		return 0.5
	}

	low, high := eval.Dimensions[0].Score, eval.Dimensions[0].Score
	for _, r := range eval.Dimensions[1:] {
		if r.Score < low {
			low = r.Score
		}
		if r.Score > high {
			high = r.Score
		}
	}
	return 1 - (high - low)
}
