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

	"github.com/chainguard-dev/clog"
	"google.golang.org/genai"

	"chainguard.dev/oversight/oracle/retry"
)

// defaultGeminiModel is used when no model option is provided.
const defaultGeminiModel = "gemini-2.5-pro"

// google implements Interface using Google Gemini.
type google struct {
	settings
	client *genai.Client
}

// NewGoogle creates a Gemini oracle using the Gemini API with the standard
// environment credentials (GOOGLE_API_KEY / GEMINI_API_KEY).
func NewGoogle(ctx context.Context, opts ...Option) (Interface, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Google AI client: %w", err)
	}
	return newGoogle(client, opts...)
}

// NewGoogleVertex creates a Gemini oracle served through Vertex AI,
// authenticated with Google application-default credentials.
func NewGoogleVertex(ctx context.Context, projectID, region string, opts ...Option) (Interface, error) {
	if projectID == "" || region == "" {
		return nil, errors.New("project ID and region are required for Vertex authentication")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Project:  projectID,
		Location: region,
		Backend:  genai.BackendVertexAI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Google AI client: %w", err)
	}
	return newGoogle(client, opts...)
}

func newGoogle(client *genai.Client, opts ...Option) (Interface, error) {
	g := &google{
		settings: defaultSettings(defaultGeminiModel),
		client:   client,
	}
	for _, opt := range opts {
		if err := opt(&g.settings); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}
	if !strings.HasPrefix(g.model, "gemini-") {
		return nil, fmt.Errorf("model %q does not appear to be a Gemini model (expected gemini-* format)", g.model)
	}
	return g, nil
}

// Complete implements Interface.
func (g *google) Complete(ctx context.Context, req *Request) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	ctx, cancel := g.callContext(ctx)
	defer cancel()

	log := clog.FromContext(ctx)

	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(req.Temperature)),
		MaxOutputTokens: int32(req.MaxOutputTokens),
	}
	if req.SystemPrompt != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{
				Text: req.SystemPrompt,
			}},
		}
	}

	contents := []*genai.Content{{
		Role: genai.RoleUser,
		Parts: []*genai.Part{{
			Text: req.UserPrompt,
		}},
	}}

	log.With("model", g.model).
		With("prompt_length", len(req.UserPrompt)).
		Info("Submitting Gemini completion")

	response, err := retry.WithBackoff(ctx, g.retryConfig, "gemini_complete", isRetryableGeminiError, func() (*genai.GenerateContentResponse, error) {
		return g.client.Models.GenerateContent(ctx, g.model, contents, config)
	})
	if err != nil {
		return "", fmt.Errorf("failed to complete Gemini request: %w", err)
	}

	g.metrics.RecordCall(ctx, g.model)
	if response.UsageMetadata != nil {
		g.metrics.RecordTokens(ctx, g.model,
			int64(response.UsageMetadata.PromptTokenCount),
			int64(response.UsageMetadata.CandidatesTokenCount))
	}

	if len(response.Candidates) == 0 {
		return "", errors.New("no content generated - no candidates")
	}

	var text strings.Builder
	candidate := response.Candidates[0]
	if candidate.Content != nil {
		for _, part := range candidate.Content.Parts {
			if part.Text != "" && !part.Thought {
				text.WriteString(part.Text)
			}
		}
	}
	if text.Len() == 0 {
		return "", errors.New("Gemini returned no text content")
	}
	return text.String(), nil
}

// isRetryableGeminiError checks if an error is a retryable Gemini error.
// Returns true for rate limit, quota exhaustion, and transient server errors.
func isRetryableGeminiError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "Resource exhausted") ||
		strings.Contains(errStr, "429") ||
		strings.Contains(errStr, "RESOURCE_EXHAUSTED") ||
		strings.Contains(errStr, "rate limit") ||
		strings.Contains(errStr, "Overloaded") ||
		strings.Contains(errStr, "503") ||
		strings.Contains(errStr, "quota exceeded") ||
		strings.Contains(errStr, "Internal error") ||
		strings.Contains(errStr, "server error")
}
