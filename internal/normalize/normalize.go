// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package normalize turns raw user input into a clean, ordered item list.
// Two input shapes are supported: a single delimited line (commas and
// semicolons) and a sequence of lines ended by a terminator. Both produce
// trimmed, non-empty items in insertion order; an empty result is a normal
// outcome that callers handle by re-prompting, never an error.
package normalize

import (
	"regexp"
	"strings"
)

// terminator ends multiline input. Matched case-insensitively against the
// trimmed line.
const terminator = "END"

// semicolonRuns matches one or more consecutive semicolons.
var semicolonRuns = regexp.MustCompile(`[;]+`)

// commaSpacing matches a comma together with any whitespace around it.
var commaSpacing = regexp.MustCompile(`\s*,\s*`)

// Items parses a delimited line. Runs of semicolons count as a single
// comma and whitespace around commas is collapsed before splitting; each
// piece is trimmed and empty pieces are dropped.
func Items(raw string) []string {
	normalized := semicolonRuns.ReplaceAllString(raw, ",")
	normalized = commaSpacing.ReplaceAllString(normalized, ",")

	var items []string
	for _, piece := range strings.Split(normalized, ",") {
		if item := strings.TrimSpace(piece); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// ItemsFromLines parses multiline input: one item per line, stopping at the
// terminator line. Kept lines are trimmed, blank lines are skipped, and the
// terminator itself is never included; anything after it is ignored.
func ItemsFromLines(lines []string) []string {
	var items []string
	for _, line := range lines {
		if IsTerminator(line) {
			break
		}
		if item := strings.TrimSpace(line); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// IsTerminator reports whether line ends multiline input. The line is
// trimmed first and compared ignoring case, so "  end " terminates too.
func IsTerminator(line string) bool {
	return strings.EqualFold(strings.TrimSpace(line), terminator)
}
