/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package judge

import (
	"fmt"

	"chainguard.dev/oversight/promptbuilder"
)

// factualAccuracyPrompt evaluates whether the response's claims are
// supported by the evidence.
var factualAccuracyPrompt = promptbuilder.MustNewPrompt(`<task>
You are evaluating the factual accuracy of a response to a query.
Check every claim in the response against the supporting evidence.
</task>

{{query}}

{{response}}

{{evidence}}

<instructions>
1. Identify the factual claims the response makes
2. Check each claim against the supporting evidence and well-established knowledge
3. Cite any contradiction between the response and the evidence, quoting the conflicting passages
4. Provide a score from 0.0 to 1.0, where 1.0 means every claim is accurate and supported, 0.5 means a mix of supported and unverifiable claims, and 0.0 means the response is dominated by claims the evidence contradicts
</instructions>

<output_format>
Start your reply with a line of the form:

Score: <number from 0.0 to 1.0>

Then explain your reasoning, citing the specific claims and evidence that drove the score.
</output_format>`)

// reasoningQualityPrompt evaluates the soundness of the response's logic.
var reasoningQualityPrompt = promptbuilder.MustNewPrompt(`<task>
You are evaluating the reasoning quality of a response to a query.
Judge the soundness of the argument, not the conclusion.
</task>

{{query}}

{{response}}

{{evidence}}

<instructions>
1. Trace the response's chain of reasoning from premises to conclusion
2. Identify logical gaps, unsupported leaps, circular arguments, or contradictions within the response itself, quoting the offending passages
3. Check whether the response's inferences are consistent with the supporting evidence
4. Provide a score from 0.0 to 1.0, where 1.0 means the reasoning is rigorous and each step follows from the last, 0.5 means the argument reaches a plausible conclusion through shaky steps, and 0.0 means the reasoning is incoherent or self-contradictory
</instructions>

<output_format>
Start your reply with a line of the form:

Score: <number from 0.0 to 1.0>

Then explain your reasoning, citing the specific inferential steps that drove the score.
</output_format>`)

// relevancePrompt evaluates how directly the response addresses the query.
var relevancePrompt = promptbuilder.MustNewPrompt(`<task>
You are evaluating the relevance of a response to a query.
Judge only whether the response answers what was asked.
</task>

{{query}}

{{response}}

{{evidence}}

<instructions>
1. Restate what the query is actually asking for
2. Judge how much of the response serves that question, and how much is tangential or off-topic
3. Provide a score from 0.0 to 1.0, where 1.0 means the response is entirely on point, 0.5 means it partially addresses the question among digressions, and 0.0 means it answers a different question
</instructions>

<output_format>
Start your reply with a line of the form:

Score: <number from 0.0 to 1.0>

Then briefly explain what the query asked and how directly the response addressed it.
</output_format>`)

// completenessPrompt evaluates whether the response covers all aspects of
// the query.
var completenessPrompt = promptbuilder.MustNewPrompt(`<task>
You are evaluating the completeness of a response to a query.
Judge coverage, not correctness.
</task>

{{query}}

{{response}}

{{evidence}}

<instructions>
1. Enumerate the distinct aspects the query asks about
2. Check which aspects the response covers and which it omits, including relevant material present in the evidence but missing from the response
3. Provide a score from 0.0 to 1.0, where 1.0 means every aspect is covered, 0.5 means the main aspect is covered but secondary ones are missing, and 0.0 means the response covers almost none of what was asked
</instructions>

<output_format>
Start your reply with a line of the form:

Score: <number from 0.0 to 1.0>

Then briefly list the covered and omitted aspects.
</output_format>`)

// suggestionPrompt asks the oracle to synthesize concrete improvements
// from the aggregated evaluation.
var suggestionPrompt = promptbuilder.MustNewPrompt(`<task>
You are synthesizing improvement suggestions for a response that has been
evaluated on factual accuracy, reasoning quality, relevance, and
completeness.
</task>

{{query}}

{{response}}

{{evaluation}}

<instructions>
1. Read the per-dimension scores and rationales
2. Identify the changes that would most improve the weakest dimensions
3. Provide 3 to 5 concrete, distinct improvements as a numbered list
</instructions>

<output_format>
Reply with a numbered list only, one improvement per item:

1. <first improvement>
2. <second improvement>
...

Focus on specific, missing elements rather than general advice. Each
suggestion should address a distinct aspect of improvement.
</output_format>`)

// regeneratePrompt asks the oracle to rewrite the response applying the
// improvement suggestions.
var regeneratePrompt = promptbuilder.MustNewPrompt(`<task>
You are rewriting a response to a query, applying a list of improvement
suggestions produced by an evaluation of the original response.
</task>

{{query}}

{{response}}

{{suggestions}}

{{evidence}}

<instructions>
1. Apply every suggestion that improves the response
2. Keep everything the original response already gets right
3. Ground new or corrected claims in the supporting evidence
</instructions>

<output_format>
Reply with the rewritten response only. Do not include commentary about
the changes you made.
</output_format>`)

// dimensionPrompt returns the prompt template for a dimension.
func dimensionPrompt(d Dimension) (*promptbuilder.Prompt, error) {
	switch d {
	case FactualAccuracy:
		return factualAccuracyPrompt, nil
	case ReasoningQuality:
		return reasoningQualityPrompt, nil
	case Relevance:
		return relevancePrompt, nil
	case Completeness:
		return completenessPrompt, nil
	default:
		return nil, fmt.Errorf("unknown dimension: %q", d)
	}
}

// dimensionSystem returns the system prompt for a dimension's oracle call.
func dimensionSystem(d Dimension) string {
	return fmt.Sprintf("You are an impartial judge. Evaluate the %s of the response provided by the user.", d.label())
}

// Bind implements promptbuilder.Bindable for Request, binding the query,
// response, and evidence placeholders shared by the dimension prompts.
func (r *Request) Bind(prompt *promptbuilder.Prompt) (*promptbuilder.Prompt, error) {
	var err error

	if prompt, err = prompt.BindXML("query", struct {
		XMLName struct{} `xml:"query"`
		Content string   `xml:",chardata"`
	}{
		Content: r.Query,
	}); err != nil {
		return nil, err
	}

	if prompt, err = prompt.BindXML("response", struct {
		XMLName struct{} `xml:"response"`
		Content string   `xml:",chardata"`
	}{
		Content: r.Response,
	}); err != nil {
		return nil, err
	}

	return bindEvidence(prompt, r)
}

// bindEvidence binds the evidence placeholder, degrading to an explicit
// "no evidence" marker when the request carries none.
func bindEvidence(prompt *promptbuilder.Prompt, r *Request) (*promptbuilder.Prompt, error) {
	if r.Context.Empty() {
		return prompt.BindStringLiteral("evidence", `<evidence>
(no supporting evidence provided)
</evidence>`)
	}
	return prompt.BindYAML("evidence", struct {
		Evidence any `yaml:"evidence"`
	}{
		Evidence: r.Context,
	})
}
