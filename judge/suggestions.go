/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package judge

import (
	"regexp"
	"strings"
)

// itemMarker matches the start of a numbered or bulleted list item.
var itemMarker = regexp.MustCompile(`^(\d+\.|-|\*)\s`)

// ParseSuggestions splits free-form judge text into an ordered list of
// improvement suggestions.
//
// The text is walked line by line. A line opening with a list marker
// ("1. ", "- ", "* ") starts a new suggestion; continuation lines are
// folded into the current one, markers included in the item text. Blank
// lines are dropped, not treated as separators. Text with no markers at
// all becomes a single suggestion.
func ParseSuggestions(text string) []string {
	var suggestions []string
	var current []string

	flush := func() {
		if len(current) > 0 {
			suggestions = append(suggestions, strings.TrimSpace(strings.Join(current, " ")))
			current = nil
		}
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if itemMarker.MatchString(line) {
			flush()
		}
		current = append(current, line)
	}
	flush()

	return suggestions
}
