/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package promptbuilder

// Bindable represents a type that can bind values to a Prompt.
// Callers that build oracle prompts expect request types to implement this
// interface so that each request can bind its own data into the template.
type Bindable interface {
	// Bind takes a prompt and returns a new prompt with bound values.
	// The implementation should bind any necessary values from the receiver
	// to the prompt.
	Bind(prompt *Prompt) (*Prompt, error)
}

// Noop is a no-op implementation of Bindable that passes through the prompt unchanged
type Noop struct{}

// Bind implements Bindable by returning the prompt unchanged
func (Noop) Bind(prompt *Prompt) (*Prompt, error) {
	return prompt, nil
}

// Must is a helper that wraps a call to a function returning (*Prompt, error)
// and panics if the error is non-nil. It is intended for use in variable
// initializations such as:
//
//	var p = promptbuilder.Must(promptbuilder.NewPrompt(`Hello {{name}}`))
func Must(p *Prompt, err error) *Prompt {
	if err != nil {
		panic(err)
	}
	return p
}

// MustNewPrompt creates a new prompt from a template literal and panics on error.
// This is syntactic sugar for Must(NewPrompt(...))
func MustNewPrompt(template stringLiteral) *Prompt {
	return Must(NewPrompt(template))
}
