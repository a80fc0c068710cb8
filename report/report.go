/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package report renders evaluation results as human-readable markdown
// tables, for CI logs and review summaries.
package report

import (
	"bytes"
	"fmt"
	"io"

	"chainguard.dev/oversight/judge"
)

// Render writes a markdown summary of the evaluations: one row per
// evaluation with its per-dimension scores, the lowest score, and the
// wall-clock cost, plus a closing averages row. Scores below threshold
// are flagged. The returned bool reports whether any evaluation fell
// below the threshold.
func Render(w io.Writer, evals []*judge.Evaluation, threshold float64) (bool, error) {
	if len(evals) == 0 {
		_, err := fmt.Fprintln(w, "No evaluations to report.")
		return false, err
	}

	dims := judge.AllDimensions()
	headers := []string{"Query"}
	for _, d := range dims {
		headers = append(headers, string(d))
	}
	headers = append(headers, "Min", "Duration")

	var buf bytes.Buffer
	table := createStandardTable(headers, &buf)

	hasFailure := false
	sums := make([]float64, len(dims))
	counts := make([]int, len(dims))
	for _, eval := range evals {
		row := []string{eval.QueryID}
		for i, d := range dims {
			r, ok := eval.Dimension(d)
			if !ok {
				row = append(row, "-")
				continue
			}
			sums[i] += r.Score
			counts[i]++
			row = append(row, formatScore(r.Score, threshold))
		}

		_, low := eval.MinScore()
		if low < threshold {
			hasFailure = true
		}
		row = append(row, formatScore(low, threshold), fmt.Sprintf("%.2fs", eval.Duration.Seconds()))
		_ = table.Append(row)
	}

	// Closing averages row. Averages are over the evaluations that
	// actually carried the dimension, so a missing result stays missing
	// instead of counting as zero.
	avgRow := []string{"Average"}
	minAvg := 1.0
	for i := range dims {
		if counts[i] == 0 {
			avgRow = append(avgRow, "-")
			continue
		}
		avg := sums[i] / float64(counts[i])
		if avg < minAvg {
			minAvg = avg
		}
		avgRow = append(avgRow, formatScore(avg, threshold))
	}
	avgRow = append(avgRow, formatScore(minAvg, threshold), "-")
	_ = table.Append(avgRow)

	_ = table.Render()

	_, err := fmt.Fprintf(w, "## Evaluation Summary\n\n%s", buf.String())
	return hasFailure, err
}

// formatScore renders a score, flagging values below the threshold.
func formatScore(score, threshold float64) string {
	if score < threshold {
		return fmt.Sprintf("❌ %.2f", score)
	}
	return fmt.Sprintf("%.2f", score)
}
