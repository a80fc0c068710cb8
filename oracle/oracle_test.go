/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package oracle_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"chainguard.dev/oversight/oracle"
)

func TestRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     *oracle.Request
		wantErr bool
	}{{
		name: "valid",
		req: &oracle.Request{
			SystemPrompt:    "You are an impartial judge.",
			UserPrompt:      "Evaluate this response.",
			Temperature:     0.1,
			MaxOutputTokens: 1024,
		},
	}, {
		name: "system prompt optional",
		req: &oracle.Request{
			UserPrompt:      "Evaluate this response.",
			Temperature:     0.7,
			MaxOutputTokens: 512,
		},
	}, {
		name:    "nil request",
		req:     nil,
		wantErr: true,
	}, {
		name: "missing user prompt",
		req: &oracle.Request{
			Temperature:     0.1,
			MaxOutputTokens: 1024,
		},
		wantErr: true,
	}, {
		name: "temperature above one",
		req: &oracle.Request{
			UserPrompt:      "x",
			Temperature:     1.5,
			MaxOutputTokens: 1024,
		},
		wantErr: true,
	}, {
		name: "negative temperature",
		req: &oracle.Request{
			UserPrompt:      "x",
			Temperature:     -0.1,
			MaxOutputTokens: 1024,
		},
		wantErr: true,
	}, {
		name: "non-positive output cap",
		req: &oracle.Request{
			UserPrompt:  "x",
			Temperature: 0.1,
		},
		wantErr: true,
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wanted error: %t", err, tt.wantErr)
			}
		})
	}
}

func TestNewUnsupportedProvider(t *testing.T) {
	if _, err := oracle.New(context.Background(), oracle.Config{Provider: "llama"}); err == nil {
		t.Error("New() = nil error, wanted unsupported provider failure")
	}
}

func TestNewClaudeModelValidation(t *testing.T) {
	if _, err := oracle.NewClaude(context.Background(), oracle.WithModel("gpt-4o")); err == nil {
		t.Error("NewClaude(gpt-4o) = nil error, wanted model mismatch failure")
	} else if !strings.Contains(err.Error(), "Claude model") {
		t.Errorf("error = %v, wanted a model mismatch message", err)
	}
}

func TestNewClaudeVertexRequiresProject(t *testing.T) {
	if _, err := oracle.NewClaudeVertex(context.Background(), "", "us-east5"); err == nil {
		t.Error("NewClaudeVertex() = nil error, wanted missing project failure")
	}
}

func TestOptionValidation(t *testing.T) {
	tests := []struct {
		name string
		opt  oracle.Option
	}{{
		name: "empty model",
		opt:  oracle.WithModel(""),
	}, {
		name: "non-positive timeout",
		opt:  oracle.WithTimeout(-time.Second),
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := oracle.NewClaude(context.Background(), tt.opt); err == nil {
				t.Error("NewClaude() = nil error, wanted option failure")
			}
		})
	}
}
