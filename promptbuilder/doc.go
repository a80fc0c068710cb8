/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package promptbuilder provides templated prompt construction for oracle
// calls. Templates contain {{name}} placeholders that must be bound before
// the prompt can be built.
//
// Binding is immutable: each Bind* call returns a new Prompt with the
// binding applied, leaving the original untouched. Build fails if any
// placeholder remains unbound, so a prompt can never reach an oracle with
// a hole in it.
//
// Untrusted runtime content (candidate responses, evidence documents,
// judge rationales) must be bound through BindXML, BindJSON, or BindYAML
// so that it is wrapped in a structural encoding rather than spliced into
// the template verbatim. BindStringLiteral only accepts untyped string
// constants and is reserved for developer-authored fragments.
package promptbuilder
