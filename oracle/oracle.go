/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package oracle

import (
	"context"
	"errors"
	"fmt"
	"time"

	"chainguard.dev/oversight/metrics"
	"chainguard.dev/oversight/oracle/retry"
)

// Request describes a single completion call to a reasoning oracle.
type Request struct {
	// SystemPrompt sets the oracle's role for this call.
	SystemPrompt string `json:"system_prompt,omitempty"`

	// UserPrompt is the content to complete against.
	UserPrompt string `json:"user_prompt"`

	// Temperature controls sampling randomness. Evaluation calls use low
	// values for near-deterministic output; rewrite calls use moderate
	// values to allow creative rewording.
	Temperature float64 `json:"temperature"`

	// MaxOutputTokens bounds the length of the oracle's reply.
	MaxOutputTokens int64 `json:"max_output_tokens"`
}

// Validate checks that the request is well-formed.
func (r *Request) Validate() error {
	if r == nil {
		return errors.New("request cannot be nil")
	}
	if r.UserPrompt == "" {
		return errors.New("user prompt is required")
	}
	if r.Temperature < 0.0 || r.Temperature > 1.0 {
		return fmt.Errorf("temperature must be between 0.0 and 1.0, got %f", r.Temperature)
	}
	if r.MaxOutputTokens <= 0 {
		return fmt.Errorf("max output tokens must be positive, got %d", r.MaxOutputTokens)
	}
	return nil
}

// Interface is the completion contract consumed by the evaluation core.
// Implementations must be safe for concurrent use.
type Interface interface {
	// Complete submits the request and returns the oracle's reply text.
	// A transport, auth, rate-limit, or timeout failure is returned as an
	// error; implementations never substitute default text for a failed call.
	Complete(ctx context.Context, req *Request) (string, error)
}

// settings holds configuration shared by all provider implementations.
type settings struct {
	model       string
	timeout     time.Duration
	retryConfig retry.Config
	metrics     *metrics.Oracle
}

// defaultSettings returns the baseline configuration applied before options.
func defaultSettings(model string) settings {
	return settings{
		model:       model,
		timeout:     60 * time.Second,
		retryConfig: retry.DefaultConfig(),
		metrics:     metrics.NewOracle(),
	}
}

// callContext derives the bounded per-call context for one completion.
func (s *settings) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}
