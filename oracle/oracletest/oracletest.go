/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package oracletest provides observable oracle fakes for tests and for
// embedders exercising the evaluation core without a hosted model.
package oracletest

import (
	"context"
	"strings"
	"sync"

	"chainguard.dev/oversight/oracle"
)

// Call records a single observed completion request.
type Call struct {
	SystemPrompt    string
	UserPrompt      string
	Temperature     float64
	MaxOutputTokens int64
}

// Fake implements oracle.Interface with scripted replies.
// It is safe for concurrent use.
type Fake struct {
	mu      sync.Mutex
	calls   []Call
	replies []reply

	// Reply, when set, answers every call not covered by a scripted rule.
	Reply string

	// Err, when set, fails every call not covered by a scripted rule.
	Err error
}

type reply struct {
	match string
	text  string
	err   error
}

// ReplyWhen scripts a reply for calls whose user prompt contains match.
// Rules are checked in registration order; the first hit wins.
func (f *Fake) ReplyWhen(match, text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.replies = append(f.replies, reply{match: match, text: text})
}

// FailWhen scripts a failure for calls whose user prompt contains match.
func (f *Fake) FailWhen(match string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.replies = append(f.replies, reply{match: match, err: err})
}

// Complete implements oracle.Interface.
func (f *Fake) Complete(ctx context.Context, req *oracle.Request) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := req.Validate(); err != nil {
		return "", err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, Call{
		SystemPrompt:    req.SystemPrompt,
		UserPrompt:      req.UserPrompt,
		Temperature:     req.Temperature,
		MaxOutputTokens: req.MaxOutputTokens,
	})

	for _, r := range f.replies {
		if strings.Contains(req.UserPrompt, r.match) {
			if r.err != nil {
				return "", r.err
			}
			return r.text, nil
		}
	}
	if f.Err != nil {
		return "", f.Err
	}
	return f.Reply, nil
}

// Calls returns a copy of all observed calls.
func (f *Fake) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Call, len(f.calls))
	copy(out, f.calls)
	return out
}
