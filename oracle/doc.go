/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package oracle defines the completion contract the evaluation core uses
// to reach a hosted reasoning model, along with implementations for
// Anthropic Claude (direct API or Vertex AI), Google Gemini, and OpenAI.
//
// The core is agnostic to the concrete provider: everything upstream of
// this package speaks Interface. Implementations must be safe for
// concurrent use by multiple in-flight calls, enforce a bounded per-call
// timeout, and retry transient provider errors (rate limits, overload)
// with exponential backoff. Exhausted retries surface as errors; a failed
// call is never papered over with fabricated text.
package oracle
