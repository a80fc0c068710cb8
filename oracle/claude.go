/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package oracle

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/vertex"
	"github.com/chainguard-dev/clog"

	"chainguard.dev/oversight/oracle/retry"
)

// defaultClaudeModel is used when no model option is provided.
const defaultClaudeModel = "claude-sonnet-4@20250514"

// claude implements Interface using the Anthropic API.
type claude struct {
	settings
	client anthropic.Client
}

// NewClaude creates a Claude oracle authenticated via the standard
// Anthropic environment credentials (ANTHROPIC_API_KEY).
func NewClaude(_ context.Context, opts ...Option) (Interface, error) {
	return newClaude(anthropic.NewClient(), opts...)
}

// NewClaudeVertex creates a Claude oracle served through Vertex AI,
// authenticated with Google application-default credentials.
func NewClaudeVertex(ctx context.Context, projectID, region string, opts ...Option) (Interface, error) {
	if projectID == "" || region == "" {
		return nil, errors.New("project ID and region are required for Vertex authentication")
	}
	return newClaude(anthropic.NewClient(
		vertex.WithGoogleAuth(ctx, region, projectID),
	), opts...)
}

func newClaude(client anthropic.Client, opts ...Option) (Interface, error) {
	c := &claude{
		settings: defaultSettings(defaultClaudeModel),
		client:   client,
	}
	for _, opt := range opts {
		if err := opt(&c.settings); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}
	if !strings.HasPrefix(c.model, "claude-") {
		return nil, fmt.Errorf("model %q does not appear to be a Claude model (expected claude-* format)", c.model)
	}
	return c, nil
}

// Complete implements Interface.
func (c *claude) Complete(ctx context.Context, req *Request) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	ctx, cancel := c.callContext(ctx)
	defer cancel()

	log := clog.FromContext(ctx)

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: req.MaxOutputTokens,
		Messages: []anthropic.MessageParam{{
			Role: anthropic.MessageParamRoleUser,
			Content: []anthropic.ContentBlockParamUnion{
				anthropic.NewTextBlock(req.UserPrompt),
			},
		}},
	}
	params.Temperature = anthropic.Float(req.Temperature)
	if req.SystemPrompt != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.SystemPrompt}}
	}

	log.With("model", c.model).
		With("prompt_length", len(req.UserPrompt)).
		Info("Submitting Claude completion")

	message, err := retry.WithBackoff(ctx, c.retryConfig, "claude_complete", isRetryableClaudeError, func() (*anthropic.Message, error) {
		return c.client.Messages.New(ctx, params)
	})
	if err != nil {
		return "", fmt.Errorf("failed to complete Claude request: %w", err)
	}

	c.metrics.RecordCall(ctx, c.model)
	if message.Usage.InputTokens > 0 || message.Usage.OutputTokens > 0 {
		c.metrics.RecordTokens(ctx, c.model, message.Usage.InputTokens, message.Usage.OutputTokens)
	}

	var text strings.Builder
	for _, content := range message.Content {
		if content.Type == "text" {
			text.WriteString(content.Text)
		}
	}
	if text.Len() == 0 {
		return "", errors.New("Claude returned no text content")
	}
	return text.String(), nil
}

// isRetryableClaudeError checks if an error is a retryable Anthropic API error.
// Returns true for rate limit, overloaded, and transient server errors.
func isRetryableClaudeError(err error) bool {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case 429, 503, 504, 529:
			return true
		}
	}
	return false
}
