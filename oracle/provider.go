/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package oracle

import (
	"context"
	"fmt"
	"strings"
)

// Config selects and configures a concrete oracle provider.
type Config struct {
	// Provider names the backend: "claude", "claude-vertex", "google",
	// "google-vertex", or "openai".
	Provider string

	// Model overrides the provider's default model.
	Model string

	// ProjectID and Region are required for the Vertex-backed providers.
	ProjectID string
	Region    string
}

// New creates an oracle for the configured provider, delegating to the
// appropriate implementation. Additional options apply on top of the
// config's model selection.
func New(ctx context.Context, cfg Config, opts ...Option) (Interface, error) {
	if cfg.Model != "" {
		opts = append([]Option{WithModel(cfg.Model)}, opts...)
	}

	switch strings.ToLower(cfg.Provider) {
	case "claude":
		return NewClaude(ctx, opts...)
	case "claude-vertex":
		return NewClaudeVertex(ctx, cfg.ProjectID, cfg.Region, opts...)
	case "google":
		return NewGoogle(ctx, opts...)
	case "google-vertex":
		return NewGoogleVertex(ctx, cfg.ProjectID, cfg.Region, opts...)
	case "openai":
		return NewOpenAI(ctx, opts...)
	default:
		return nil, fmt.Errorf("unsupported provider: %q (expected claude, claude-vertex, google, google-vertex, or openai)", cfg.Provider)
	}
}
