/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package judge implements multi-dimensional evaluation of candidate
// responses using a reasoning oracle as the judge.
//
// A Judge scores a (query, response, evidence) triple on four fixed
// dimensions: factual accuracy, reasoning quality, relevance, and
// completeness. Each dimension is one oracle call with near-deterministic
// sampling; the free-form judge text is normalized to a [0,1] score by
// ExtractScore and kept verbatim as the dimension's rationale for
// auditability. The aggregated evaluation is then fed back to the oracle
// to synthesize ranked improvement suggestions, and optionally to
// regenerate an improved response.
//
// Judge text is parsed, never trusted: unparseable score text degrades to
// a neutral 0.5, and unstructured suggestion text degrades to a single
// suggestion. Oracle transport failures are the opposite case and always
// propagate; a missing dimension is a failed evaluation, not a neutral
// one.
package judge
