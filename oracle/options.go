/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package oracle

import (
	"fmt"
	"time"

	"chainguard.dev/oversight/metrics"
	"chainguard.dev/oversight/oracle/retry"
)

// Option is a functional option for configuring a provider client.
type Option func(*settings) error

// WithModel overrides the provider's default model name.
func WithModel(model string) Option {
	return func(s *settings) error {
		if model == "" {
			return fmt.Errorf("model cannot be empty")
		}
		s.model = model
		return nil
	}
}

// WithTimeout sets the bounded per-call timeout. A call that exceeds the
// timeout is treated as a failure, not as an empty or neutral reply.
func WithTimeout(d time.Duration) Option {
	return func(s *settings) error {
		if d <= 0 {
			return fmt.Errorf("timeout must be positive, got %v", d)
		}
		s.timeout = d
		return nil
	}
}

// WithRetryConfig sets the retry configuration for handling transient
// provider errors. This is particularly useful for handling 429 rate limit
// and overloaded errors. If not set, a default configuration is used.
func WithRetryConfig(cfg retry.Config) Option {
	return func(s *settings) error {
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid retry config: %w", err)
		}
		s.retryConfig = cfg
		return nil
	}
}

// WithAttributeEnricher sets a custom attribute enricher for token-usage
// metrics, allowing the embedding application to add contextual attributes.
func WithAttributeEnricher(enricher metrics.AttributeEnricher) Option {
	return func(s *settings) error {
		s.metrics.SetAttributeEnricher(enricher)
		return nil
	}
}
