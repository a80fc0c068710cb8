/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package judge

import (
	"context"
	"errors"
	"fmt"

	"github.com/chainguard-dev/clog"

	"chainguard.dev/oversight/oracle"
)

// dimensionSummary is the shape in which scores and rationales are
// embedded in the suggestion prompt.
type dimensionSummary struct {
	Dimension string  `yaml:"dimension"`
	Score     float64 `yaml:"score"`
	Rationale string  `yaml:"rationale"`
}

// SynthesizeSuggestions feeds the aggregated evaluation back to the
// oracle and parses its reply into 3-5 ranked improvement suggestions.
func (j *Judge) SynthesizeSuggestions(ctx context.Context, req *Request, eval *Evaluation) ([]string, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if eval == nil || len(eval.Dimensions) == 0 {
		return nil, errors.New("evaluation has no dimension results")
	}

	summaries := make([]dimensionSummary, 0, len(eval.Dimensions))
	for _, r := range eval.Dimensions {
		summaries = append(summaries, dimensionSummary{
			Dimension: r.Dimension.label(),
			Score:     r.Score,
			Rationale: r.Rationale,
		})
	}

	prompt, err := suggestionPrompt.BindXML("query", struct {
		XMLName struct{} `xml:"query"`
		Content string   `xml:",chardata"`
	}{
		Content: req.Query,
	})
	if err != nil {
		return nil, err
	}
	if prompt, err = prompt.BindXML("response", struct {
		XMLName struct{} `xml:"response"`
		Content string   `xml:",chardata"`
	}{
		Content: req.Response,
	}); err != nil {
		return nil, err
	}
	if prompt, err = prompt.BindYAML("evaluation", struct {
		Dimensions []dimensionSummary `yaml:"dimensions"`
	}{
		Dimensions: summaries,
	}); err != nil {
		return nil, err
	}

	userPrompt, err := prompt.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build prompt: %w", err)
	}

	text, err := j.oracle.Complete(ctx, &oracle.Request{
		SystemPrompt:    "You are an editor synthesizing concrete improvements from an evaluation of a response.",
		UserPrompt:      userPrompt,
		Temperature:     j.rewriteTemp,
		MaxOutputTokens: j.suggestCap,
	})
	if err != nil {
		return nil, err
	}

	suggestions := ParseSuggestions(text)
	clog.FromContext(ctx).With("query", req.QueryID).
		With("suggestions", len(suggestions)).
		Info("Synthesized improvement suggestions")
	return suggestions, nil
}

// Regenerate asks the oracle to rewrite the response applying the
// evaluation's suggestions, grounded in a bounded excerpt of the
// supporting evidence. The rewritten text is returned verbatim, as a
// fresh candidate; callers may feed it into another evaluation round.
func (j *Judge) Regenerate(ctx context.Context, req *Request, eval *Evaluation) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	if eval == nil {
		return "", errors.New("evaluation cannot be nil")
	}

	suggestions := eval.Suggestions
	if len(suggestions) == 0 {
		var err error
		if suggestions, err = j.SynthesizeSuggestions(ctx, req, eval); err != nil {
			return "", fmt.Errorf("synthesizing suggestions: %w", err)
		}
	}

	// Bound the embedded evidence to control prompt size.
	excerpted := &Request{
		QueryID:  req.QueryID,
		Query:    req.Query,
		Response: req.Response,
		Context:  req.Context.Excerpt(j.maxEvidence),
	}

	prompt, err := excerpted.Bind(regeneratePrompt)
	if err != nil {
		return "", fmt.Errorf("failed to bind request to prompt: %w", err)
	}
	if prompt, err = prompt.BindYAML("suggestions", struct {
		Suggestions []string `yaml:"suggestions"`
	}{
		Suggestions: suggestions,
	}); err != nil {
		return "", err
	}

	userPrompt, err := prompt.Build()
	if err != nil {
		return "", fmt.Errorf("failed to build prompt: %w", err)
	}

	text, err := j.oracle.Complete(ctx, &oracle.Request{
		SystemPrompt:    "You are an editor rewriting a response to address specific improvement suggestions.",
		UserPrompt:      userPrompt,
		Temperature:     j.rewriteTemp,
		MaxOutputTokens: j.rewriteCap,
	})
	if err != nil {
		return "", err
	}

	clog.FromContext(ctx).With("query", req.QueryID).
		With("response_length", len(text)).
		Info("Regenerated response")
	return text, nil
}
