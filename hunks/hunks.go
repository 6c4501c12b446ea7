// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package hunks groups a raw edit script from [sitterdiff.dev/sitterdiff.Diff] into the hunks a
// renderer displays, and computes intra-line emphasis for hunks that replace one line with
// another.
package hunks

import (
	"sitterdiff.dev/sitterdiff/internal/types"
)

// Segment is a span of text within a hunk's emphasis highlighting.
//
//   - Match: the span is identical on both sides.
//   - Delete: the span only exists on the left side.
//   - Insert: the span only exists on the right side.
type Segment struct {
	Op   types.Op
	Text string
}

// Hunk is a contiguous, displayable group of changes: a run of deletions, a run of insertions,
// or both when a deletion run is immediately followed by an insertion run in the edit script.
type Hunk struct {
	// Del and Ins are the deleted and inserted tokens that make up this hunk. Exactly one may
	// be empty (a pure insertion or pure deletion), but not both.
	Del, Ins []types.Token

	// DelLine and InsLine are the source line each side starts on. Zero if the corresponding
	// side is empty.
	DelLine, InsLine int

	// Segments describes intra-line emphasis for a paired hunk (both Del and Ins non-empty):
	// the character-level diff between the text of Del and of Ins, each side's tokens joined with
	// single spaces. It is nil for
	// a pure deletion or insertion, which has nothing to contrast against.
	Segments []Segment
}

// Assemble groups edits into hunks. edits must be in the order returned by
// [sitterdiff.dev/sitterdiff.Diff].
func Assemble(edits []types.Edit, opts ...Option) []Hunk {
	cfg := config{emphasis: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	groups := group(edits)
	if len(groups) == 0 {
		return nil
	}
	out := make([]Hunk, 0, len(groups))
	for i := 0; i < len(groups); i++ {
		g := groups[i]
		h := Hunk{}
		switch g.op {
		case types.Delete:
			h.Del = g.tokens
			h.DelLine = g.line
		case types.Insert:
			h.Ins = g.tokens
			h.InsLine = g.line
		}

		// A deletion run immediately followed by an insertion run pairs into one hunk: this is
		// what a line replacement looks like in an edit script with matches filtered out.
		if g.op == types.Delete && i+1 < len(groups) && groups[i+1].op == types.Insert {
			i++
			h.Ins = groups[i].tokens
			h.InsLine = groups[i].line
			if cfg.emphasis {
				h.Segments = emphasize(h.Del, h.Ins)
			}
		}

		out = append(out, h)
	}
	return out
}

// Option configures [Assemble].
type Option func(*config)

type config struct {
	emphasis bool
}

// WithEmphasis controls whether paired hunks get intra-line emphasis computed. It defaults to
// enabled; tests and callers that only care about hunk boundaries can disable it to skip the
// extra work.
func WithEmphasis(enabled bool) Option {
	return func(cfg *config) { cfg.emphasis = enabled }
}

type tokenGroup struct {
	op       types.Op
	line     int
	lastLine int
	tokens   []types.Token
}

// group splits edits into maximal runs that share an operation and span contiguous source
// lines. Edits are first grouped by (op, line), then consecutive same-op groups whose lines are
// adjacent are merged into a single multi-line run, so a multi-line replacement pairs as one
// hunk instead of cross-pairing its lines with Assemble's single-lookahead pairing.
func group(edits []types.Edit) []tokenGroup {
	var perLine []tokenGroup
	for _, e := range edits {
		line := e.Token.Origin.Line
		if n := len(perLine); n > 0 && perLine[n-1].op == e.Op && perLine[n-1].lastLine == line {
			perLine[n-1].tokens = append(perLine[n-1].tokens, e.Token)
			continue
		}
		perLine = append(perLine, tokenGroup{op: e.Op, line: line, lastLine: line, tokens: []types.Token{e.Token}})
	}

	var out []tokenGroup
	for _, g := range perLine {
		if n := len(out); n > 0 && out[n-1].op == g.op && g.line == out[n-1].lastLine+1 {
			out[n-1].tokens = append(out[n-1].tokens, g.tokens...)
			out[n-1].lastLine = g.lastLine
			continue
		}
		out = append(out, g)
	}
	return out
}
