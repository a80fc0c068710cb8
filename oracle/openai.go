/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package oracle

import (
	"context"
	"errors"
	"fmt"

	"github.com/chainguard-dev/clog"
	"github.com/openai/openai-go"
	openaiopt "github.com/openai/openai-go/option"

	"chainguard.dev/oversight/oracle/retry"
)

// defaultOpenAIModel is used when no model option is provided.
const defaultOpenAIModel = "gpt-4o"

// oai implements Interface using OpenAI chat completions.
type oai struct {
	settings
	client openai.Client
}

// NewOpenAI creates an OpenAI oracle authenticated via the standard
// environment credentials (OPENAI_API_KEY).
func NewOpenAI(_ context.Context, opts ...Option) (Interface, error) {
	return newOpenAI(openai.NewClient(), opts...)
}

// NewOpenAIWithBaseURL creates an OpenAI oracle against a compatible
// endpoint, useful for proxies and self-hosted gateways.
func NewOpenAIWithBaseURL(_ context.Context, baseURL string, opts ...Option) (Interface, error) {
	if baseURL == "" {
		return nil, errors.New("base URL cannot be empty")
	}
	return newOpenAI(openai.NewClient(openaiopt.WithBaseURL(baseURL)), opts...)
}

func newOpenAI(client openai.Client, opts ...Option) (Interface, error) {
	o := &oai{
		settings: defaultSettings(defaultOpenAIModel),
		client:   client,
	}
	for _, opt := range opts {
		if err := opt(&o.settings); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}
	return o, nil
}

// Complete implements Interface.
func (o *oai) Complete(ctx context.Context, req *Request) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	ctx, cancel := o.callContext(ctx)
	defer cancel()

	log := clog.FromContext(ctx)

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if req.SystemPrompt != "" {
		messages = append(messages, openai.SystemMessage(req.SystemPrompt))
	}
	messages = append(messages, openai.UserMessage(req.UserPrompt))

	params := openai.ChatCompletionNewParams{
		Model:               openai.ChatModel(o.model),
		Messages:            messages,
		Temperature:         openai.Float(req.Temperature),
		MaxCompletionTokens: openai.Int(req.MaxOutputTokens),
	}

	log.With("model", o.model).
		With("prompt_length", len(req.UserPrompt)).
		Info("Submitting OpenAI completion")

	completion, err := retry.WithBackoff(ctx, o.retryConfig, "openai_complete", isRetryableOpenAIError, func() (*openai.ChatCompletion, error) {
		return o.client.Chat.Completions.New(ctx, params)
	})
	if err != nil {
		return "", fmt.Errorf("failed to complete OpenAI request: %w", err)
	}

	o.metrics.RecordCall(ctx, o.model)
	if completion.Usage.PromptTokens > 0 || completion.Usage.CompletionTokens > 0 {
		o.metrics.RecordTokens(ctx, o.model, completion.Usage.PromptTokens, completion.Usage.CompletionTokens)
	}

	if len(completion.Choices) == 0 {
		return "", errors.New("OpenAI returned no choices")
	}
	text := completion.Choices[0].Message.Content
	if text == "" {
		return "", errors.New("OpenAI returned no text content")
	}
	return text, nil
}

// isRetryableOpenAIError checks if an error is a retryable OpenAI API error.
// Returns true for rate limit and transient server errors.
func isRetryableOpenAIError(err error) bool {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case 429, 500, 502, 503, 504:
			return true
		}
	}
	return false
}
