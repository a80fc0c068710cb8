/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package collab_test

import (
	"testing"

	"chainguard.dev/oversight/collab"
)

func TestRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     *collab.Request
		wantErr bool
	}{{
		name: "valid",
		req: &collab.Request{
			SessionName:  "review/q-123",
			Description:  "factual accuracy below floor",
			Participants: []string{"alice"},
		},
	}, {
		name: "description optional",
		req: &collab.Request{
			SessionName:  "review/q-123",
			Participants: []string{"alice", "bob"},
		},
	}, {
		name:    "nil request",
		req:     nil,
		wantErr: true,
	}, {
		name: "missing session name",
		req: &collab.Request{
			Participants: []string{"alice"},
		},
		wantErr: true,
	}, {
		name: "no participants",
		req: &collab.Request{
			SessionName: "review/q-123",
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
