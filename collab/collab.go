/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package collab defines the escalation port: the capability to open a
// human-collaboration session when automated confidence is insufficient.
// The evaluation and uncertainty layers may request human review through
// this interface but must never depend on a concrete collaboration
// implementation; the dependency points the other way.
package collab

import (
	"context"
	"errors"
)

// Request describes the collaboration session to open.
type Request struct {
	// SessionName identifies the session, typically derived from the
	// query under review.
	SessionName string `json:"session_name"`

	// Description explains why the session was opened.
	Description string `json:"description,omitempty"`

	// Participants are the identifiers of the humans to pull in.
	Participants []string `json:"participants"`
}

// Validate checks that the request is well-formed.
func (r *Request) Validate() error {
	if r == nil {
		return errors.New("request cannot be nil")
	}
	if r.SessionName == "" {
		return errors.New("session name is required")
	}
	if len(r.Participants) == 0 {
		return errors.New("at least one participant is required")
	}
	return nil
}

// Port opens human-collaboration sessions. Implementations own delivery
// semantics; the caller interprets nothing beyond success or failure.
// An unavailable implementation must fail the call loudly rather than
// proceed as if a human had reviewed.
type Port interface {
	CreateSession(ctx context.Context, req *Request) error
}
