// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package session

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/negation-engine/internal/catalog"
	"github.com/pdiddy/negation-engine/internal/generate"
	"github.com/pdiddy/negation-engine/pkg/types"
)

// runSession drives a full session over scripted input and returns
// everything written to the output.
func runSession(t *testing.T, input string) string {
	t.Helper()

	gen, err := generate.New(types.GenerateConfig{Seed: 1}, catalog.Descriptors())
	require.NoError(t, err)

	var out bytes.Buffer
	s := New(strings.NewReader(input), &out, gen, nil)
	require.NoError(t, s.Run())
	return out.String()
}

func TestRunImmediateExit(t *testing.T) {
	out := runSession(t, "exit\n")

	assert.Contains(t, out, mainPrompt)
	assert.NotContains(t, out, "Good version")
	assert.NotContains(t, out, "Bad version")
}

func TestRunExitIsCaseInsensitive(t *testing.T) {
	out := runSession(t, "EXIT\n")
	assert.NotContains(t, out, "Good version")
}

func TestRunEndOfInput(t *testing.T) {
	out := runSession(t, "")
	assert.Equal(t, 1, strings.Count(out, mainPrompt))
}

func TestRunSingleRound(t *testing.T) {
	out := runSession(t, "cat, dog\n\nexit\n")

	assert.Contains(t, out, "Good version (")
	assert.Contains(t, out, "Bad version (")
	assert.Contains(t, out, reshufflePrompt)

	// Good block comes first and starts by cycling the original items.
	good := strings.Index(out, "Good version")
	bad := strings.Index(out, "Bad version")
	require.True(t, good >= 0 && bad >= 0)
	assert.Less(t, good, bad)
	assert.Contains(t, out, "\ncat, dog")

	// Pressing Enter at the reshuffle prompt skips the second pass.
	assert.Equal(t, 1, strings.Count(out, "Good version"))
	assert.NotContains(t, out, randomizedHeader)

	// Two prompts: the round's and the one answered with exit.
	assert.Equal(t, 2, strings.Count(out, mainPrompt))

	// The rendered bad list stays inside the character budget.
	lines := strings.Split(out, "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, "Bad version (") {
			require.Less(t, i+1, len(lines))
			assert.LessOrEqual(t, utf8.RuneCountInString(lines[i+1]), types.DefaultBudget)
		}
	}
}

func TestRunEmptyItemsReprompts(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty line", "\nexit\n"},
		{"delimiters only", ";;; , ,\nexit\n"},
		{"whitespace", "   \nexit\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := runSession(t, tt.input)

			assert.Contains(t, out, noItemsNotice)
			assert.NotContains(t, out, "Good version")
			assert.Equal(t, 2, strings.Count(out, mainPrompt))
		})
	}
}

func TestRunMultiline(t *testing.T) {
	out := runSession(t, "multiline\nx\ny\nEND\n\nexit\n")

	assert.Contains(t, out, multilineHeader)
	assert.Contains(t, out, "Good version (")
	assert.Contains(t, out, "\nx, y")
}

func TestRunMultilineNoItems(t *testing.T) {
	out := runSession(t, "MULTILINE\nEND\nexit\n")

	assert.Contains(t, out, multilineHeader)
	assert.Contains(t, out, noItemsNotice)
	assert.NotContains(t, out, "Good version")
}

func TestRunMultilineEndOfInput(t *testing.T) {
	// Input ends before the terminator; collected lines still make a round.
	out := runSession(t, "multiline\nx\ny\n")

	assert.Contains(t, out, "Good version (")
	assert.Contains(t, out, "\nx, y")
}

func TestRunReshuffle(t *testing.T) {
	out := runSession(t, "cat, dog\nrandom\nexit\n")

	assert.Contains(t, out, randomizedHeader)
	assert.Equal(t, 2, strings.Count(out, "Good version"), "reshuffle should render a second pass")
	assert.Equal(t, 2, strings.Count(out, "Bad version"))

	// The second pass is display-only; only one reshuffle prompt per round.
	assert.Equal(t, 1, strings.Count(out, reshufflePrompt))
}

func TestRunReshuffleKeywordCaseInsensitive(t *testing.T) {
	out := runSession(t, "cat\nRANDOM\nexit\n")
	assert.Contains(t, out, randomizedHeader)
}

func TestRunKeywordsNotTrimmed(t *testing.T) {
	// A padded keyword is treated as a one-item list, not a command.
	out := runSession(t, " exit \n")

	assert.Contains(t, out, "Good version (")
	assert.Contains(t, out, "\nexit")
}

func TestRunMultipleRounds(t *testing.T) {
	out := runSession(t, "cat\n\ndog\n\nexit\n")

	assert.Equal(t, 2, strings.Count(out, "Good version"))
	assert.Equal(t, 3, strings.Count(out, mainPrompt))
}
