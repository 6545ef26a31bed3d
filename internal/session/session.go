// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package session runs the interactive prompt loop: read items, show
// the good/bad pair for a round, offer a reshuffled rerun, repeat
// until the user exits.
package session

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/negation-engine/internal/generate"
	"github.com/pdiddy/negation-engine/internal/normalize"
)

const (
	mainPrompt       = "Enter a list (commas/semicolons), 'multiline' for line-by-line input, or 'exit' to quit: "
	multilineHeader  = "Enter items one per line. Type 'END' on a new line when finished:"
	noItemsNotice    = "No non-empty items found. Please enter a valid list."
	reshufflePrompt  = "\nType 'random' to shuffle items & rebuild Good/Bad versions, or press Enter to continue: "
	randomizedHeader = "\n-- Randomized Output --"
)

const (
	keywordExit      = "exit"
	keywordMultiline = "multiline"
	keywordRandom    = "random"
)

type state int

const (
	statePrompting state = iota
	stateNormalizing
	stateGenerating
	stateAwaitingReshuffle
	stateDone
)

// Session drives the interactive loop over one reader/writer pair. A
// single Generator is reused for the whole session so every round
// draws from the same seeded stream.
type Session struct {
	in     *bufio.Scanner
	out    io.Writer
	gen    *generate.Generator
	logger *zap.Logger

	state     state
	raw       string
	multiline bool
	items     []string
}

// New returns a Session reading from in and writing to out. A nil
// logger is replaced with a no-op one.
func New(in io.Reader, out io.Writer, gen *generate.Generator, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		in:     bufio.NewScanner(in),
		out:    out,
		gen:    gen,
		logger: logger,
		state:  statePrompting,
	}
}

// Run executes the session loop until the user exits or input ends.
// End-of-input is a clean exit, not an error.
func (s *Session) Run() error {
	s.logger.Debug("session started", zap.Int64("seed", s.gen.Seed()))

	for s.state != stateDone {
		switch s.state {
		case statePrompting:
			s.state = s.stepPrompting()
		case stateNormalizing:
			s.state = s.stepNormalizing()
		case stateGenerating:
			s.state = s.stepGenerating()
		case stateAwaitingReshuffle:
			s.state = s.stepAwaitingReshuffle()
		}
	}

	if err := s.in.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	s.logger.Debug("session ended")
	return nil
}

// stepPrompting reads the main prompt line and routes it: exit keyword,
// multiline mode, or a delimited item list.
func (s *Session) stepPrompting() state {
	fmt.Fprint(s.out, mainPrompt)
	line, ok := s.readLine()
	if !ok {
		return stateDone
	}

	switch {
	case strings.EqualFold(line, keywordExit):
		return stateDone
	case strings.EqualFold(line, keywordMultiline):
		s.multiline = true
		s.raw = ""
	default:
		s.multiline = false
		s.raw = line
	}
	return stateNormalizing
}

// stepNormalizing turns the pending input into items. An empty result
// is a notice and a re-prompt, never an error.
func (s *Session) stepNormalizing() state {
	if s.multiline {
		s.items = normalize.ItemsFromLines(s.collectLines())
	} else {
		s.items = normalize.Items(s.raw)
	}

	if len(s.items) == 0 {
		fmt.Fprintln(s.out, noItemsNotice)
		return statePrompting
	}
	return stateGenerating
}

func (s *Session) stepGenerating() state {
	s.render(s.items)
	return stateAwaitingReshuffle
}

// stepAwaitingReshuffle offers one reshuffled rerun of the current
// items. Any answer other than the random keyword moves on.
func (s *Session) stepAwaitingReshuffle() state {
	fmt.Fprint(s.out, reshufflePrompt)
	line, ok := s.readLine()
	if !ok {
		return stateDone
	}

	if strings.EqualFold(line, keywordRandom) {
		fmt.Fprintln(s.out, randomizedHeader)
		s.render(s.gen.ShuffledItems(s.items))
	}

	fmt.Fprintln(s.out)
	return statePrompting
}

// render builds one round from items and writes the two output blocks.
func (s *Session) render(items []string) {
	round, err := s.gen.BuildRound(items)
	if err != nil {
		fmt.Fprintln(s.out, noItemsNotice)
		return
	}

	s.logger.Debug("round built",
		zap.String("round_id", round.ID),
		zap.Int("items", len(round.Items)),
		zap.Int("combined", len(round.Combined)),
		zap.Int("dropped", round.Dropped()))

	generate.FormatBlocks(round, s.out)
}

// collectLines reads multiline-mode lines up to and including the
// terminator. End-of-input ends collection early.
func (s *Session) collectLines() []string {
	fmt.Fprintln(s.out, multilineHeader)

	var lines []string
	for {
		line, ok := s.readLine()
		if !ok {
			return lines
		}
		lines = append(lines, line)
		if normalize.IsTerminator(line) {
			return lines
		}
	}
}

func (s *Session) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}
