/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package promptbuilder

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewPrompt(t *testing.T) {
	tests := []struct {
		name         string
		template     stringLiteral
		wantErr      string
		placeholders []string
	}{{
		name:         "no placeholders",
		template:     `Evaluate the following response.`,
		placeholders: nil,
	}, {
		name:         "single placeholder",
		template:     `Evaluate {{response}} carefully.`,
		placeholders: []string{"response"},
	}, {
		name:         "repeated placeholder counted once",
		template:     `{{query}} then {{query}} again`,
		placeholders: []string{"query"},
	}, {
		name:         "multiple placeholders",
		template:     `{{query}} {{response}} {{evidence}}`,
		placeholders: []string{"evidence", "query", "response"},
	}, {
		name:     "unclosed binding",
		template: `Evaluate {{response`,
		wantErr:  "unclosed binding",
	}, {
		name:     "invalid identifier",
		template: `Evaluate {{1response}}`,
		wantErr:  "invalid binding identifier",
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPrompt(tt.template)
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("NewPrompt() error = nil, wanted containing %q", tt.wantErr)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("NewPrompt() error = %v, wanted containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewPrompt() error = %v, wanted nil", err)
			}

			want := make(map[string]struct{}, len(tt.placeholders))
			for _, name := range tt.placeholders {
				want[name] = struct{}{}
			}
			if diff := cmp.Diff(want, p.Placeholders()); diff != "" {
				t.Errorf("Placeholders() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBindAndBuild(t *testing.T) {
	p := MustNewPrompt(`Query: {{query}}
Response: {{response}}`)

	bound, err := p.BindXML("query", struct {
		XMLName struct{} `xml:"query"`
		Content string   `xml:",chardata"`
	}{Content: "What is the boiling point of water?"})
	if err != nil {
		t.Fatalf("BindXML() error = %v, wanted nil", err)
	}

	// Building with an unbound placeholder must fail.
	if _, err := bound.Build(); err == nil {
		t.Error("Build() error = nil, wanted unbound placeholder error")
	}

	bound, err = bound.BindXML("response", struct {
		XMLName struct{} `xml:"response"`
		Content string   `xml:",chardata"`
	}{Content: "100C at sea level."})
	if err != nil {
		t.Fatalf("BindXML() error = %v, wanted nil", err)
	}

	out, err := bound.Build()
	if err != nil {
		t.Fatalf("Build() error = %v, wanted nil", err)
	}
	for _, want := range []string{"<query>", "boiling point", "<response>", "100C"} {
		if !strings.Contains(out, want) {
			t.Errorf("Build() output missing %q:\n%s", want, out)
		}
	}
}

func TestBindImmutability(t *testing.T) {
	p := MustNewPrompt(`{{name}}`)

	first, err := p.BindStringLiteral("name", `first`)
	if err != nil {
		t.Fatalf("BindStringLiteral() error = %v, wanted nil", err)
	}

	// The original prompt is untouched, so binding again succeeds.
	second, err := p.BindStringLiteral("name", `second`)
	if err != nil {
		t.Fatalf("BindStringLiteral() on original error = %v, wanted nil", err)
	}

	// Rebinding on an already-bound prompt fails.
	if _, err := first.BindStringLiteral("name", `again`); err == nil {
		t.Error("rebinding error = nil, wanted already-bound error")
	}

	got1, err := first.Build()
	if err != nil {
		t.Fatalf("Build() error = %v, wanted nil", err)
	}
	got2, err := second.Build()
	if err != nil {
		t.Fatalf("Build() error = %v, wanted nil", err)
	}
	if got1 != "first" || got2 != "second" {
		t.Errorf("Build() = %q/%q, wanted first/second", got1, got2)
	}
}

func TestBindUnknownPlaceholder(t *testing.T) {
	p := MustNewPrompt(`{{present}}`)
	if _, err := p.BindStringLiteral("absent", `x`); err == nil {
		t.Error("BindStringLiteral(absent) error = nil, wanted not-found error")
	}
}

func TestBindJSONAndYAML(t *testing.T) {
	type doc struct {
		Title  string `json:"title" yaml:"title"`
		Source string `json:"source" yaml:"source"`
	}

	p := MustNewPrompt(`JSON: {{j}}
YAML: {{y}}`)
	p, err := p.BindJSON("j", doc{Title: "WHO factsheet", Source: "who.int"})
	if err != nil {
		t.Fatalf("BindJSON() error = %v, wanted nil", err)
	}
	p, err = p.BindYAML("y", doc{Title: "WHO factsheet", Source: "who.int"})
	if err != nil {
		t.Fatalf("BindYAML() error = %v, wanted nil", err)
	}

	out, err := p.Build()
	if err != nil {
		t.Fatalf("Build() error = %v, wanted nil", err)
	}
	if !strings.Contains(out, `"title": "WHO factsheet"`) {
		t.Errorf("Build() missing JSON marshaling:\n%s", out)
	}
	if !strings.Contains(out, "title: WHO factsheet") {
		t.Errorf("Build() missing YAML marshaling:\n%s", out)
	}
}
