/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package collabtest provides observable escalation-port fakes.
package collabtest

import (
	"context"
	"sync"

	"chainguard.dev/oversight/collab"
)

// Fake implements collab.Port, recording every session request.
// It is safe for concurrent use.
type Fake struct {
	mu       sync.Mutex
	sessions []collab.Request

	// Err, when set, fails every CreateSession call.
	Err error
}

// CreateSession implements collab.Port.
func (f *Fake) CreateSession(ctx context.Context, req *collab.Request) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	f.sessions = append(f.sessions, *req)
	return nil
}

// Sessions returns a copy of all recorded session requests.
func (f *Fake) Sessions() []collab.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]collab.Request, len(f.sessions))
	copy(out, f.sessions)
	return out
}
