/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package evidence holds the read-only inputs an evaluation is judged
// against: retrieved knowledge documents and multi-perspective analyses.
// The evaluation core never mutates these; it only excerpts them when
// building oracle prompts.
package evidence

// KnowledgeDocument is a single retrieved document supporting a response.
type KnowledgeDocument struct {
	Title   string `json:"title" yaml:"title"`
	Source  string `json:"source" yaml:"source"`
	Content string `json:"content" yaml:"content"`
}

// PerspectiveResult is one perspective's analysis of the original query.
type PerspectiveResult struct {
	Perspective string `json:"perspective" yaml:"perspective"`
	Analysis    string `json:"analysis" yaml:"analysis"`
}

// MultiPerspectiveAnalysis aggregates ordered perspectives with a
// synthesis across them.
type MultiPerspectiveAnalysis struct {
	Perspectives []PerspectiveResult `json:"perspectives" yaml:"perspectives"`
	Synthesis    string              `json:"synthesis" yaml:"synthesis"`
}

// Context bundles the evidentiary inputs for one evaluation.
type Context struct {
	Documents []KnowledgeDocument       `json:"documents,omitempty" yaml:"documents,omitempty"`
	Analysis  *MultiPerspectiveAnalysis `json:"analysis,omitempty" yaml:"analysis,omitempty"`
}

// Excerpt returns a copy of the context with at most n documents, used to
// bound prompt size when embedding evidence in oracle prompts.
func (c *Context) Excerpt(n int) *Context {
	if c == nil {
		return nil
	}
	out := &Context{Analysis: c.Analysis}
	if n < 0 {
		n = 0
	}
	if len(c.Documents) < n {
		n = len(c.Documents)
	}
	out.Documents = c.Documents[:n]
	return out
}

// Empty reports whether the context carries no evidence at all.
func (c *Context) Empty() bool {
	return c == nil || (len(c.Documents) == 0 && c.Analysis == nil)
}
