/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package judge

import (
	"regexp"
	"strconv"
)

var (
	// labeledScore matches "score", "rating", or "rate", optionally
	// followed by "of"/"as"/"is" or a colon, then a number.
	labeledScore = regexp.MustCompile(`(?i)\b(?:score|rating|rate)(?:\s+(?:of|as|is))?\s*:?\s*(\d+(?:\.\d+)?)`)

	// bareDecimal matches free-floating unsigned decimals like "0.82".
	bareDecimal = regexp.MustCompile(`\d+\.\d+`)
)

// ExtractScore normalizes free-form judge text to a score in [0,1].
//
// A labeled pattern ("Score: 0.82", "rating of 1") wins and is clamped
// into range. Failing that, the text is scanned for bare decimals and the
// first one already inside [0,1] is returned; out-of-range decimals are
// skipped rather than clamped, since clamping a free-floating number
// risks silently accepting garbage. If neither yields a score, the
// neutral default 0.5 signals "don't know".
func ExtractScore(text string) float64 {
	if m := labeledScore.FindStringSubmatch(text); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			return clamp(v)
		}
	}

	for _, raw := range bareDecimal.FindAllString(text, -1) {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			continue
		}
		if v >= 0.0 && v <= 1.0 {
			return v
		}
	}

	return 0.5
}

// clamp forces v into [0,1].
func clamp(v float64) float64 {
	if v < 0.0 {
		return 0.0
	}
	if v > 1.0 {
		return 1.0
	}
	return v
}
