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

// Package leaves turns the leaves of a parsed syntax tree into the token sequence
// [sitterdiff.dev/sitterdiff.Diff] compares.
package leaves

import (
	"slices"
	"strings"

	"github.com/clipperhouse/uax29/v2/graphemes"

	"sitterdiff.dev/sitterdiff/astparse"
	"sitterdiff.dev/sitterdiff/internal/types"
)

// Config controls which leaves become tokens and how their text is normalized.
type Config struct {
	// ExcludeKinds lists node kinds to drop entirely, e.g. "comment". Checked before
	// IncludeKinds.
	ExcludeKinds []string

	// IncludeKinds, if non-empty, restricts the output to only these node kinds.
	IncludeKinds []string

	// StripWhitespace drops any leaf whose entire text is whitespace (e.g. a lexer's "newline"
	// token). It never touches a leaf that has any non-whitespace content, even if that leaf's
	// text has leading or trailing padding.
	StripWhitespace bool

	// SplitGraphemes, if true, emits one token per grapheme cluster of a leaf's text instead of
	// one token for the whole leaf. This raises the comparison granularity from "identifier" or
	// "string literal" down to individual characters, at the cost of noisier hunks for anything
	// that isn't a single-character edit.
	SplitGraphemes bool
}

// Extract walks tree's leaves in source order and returns them as tokens, applying cfg's
// filters in order: ExcludeKinds, then IncludeKinds, then StripWhitespace, then SplitGraphemes.
func Extract(tree *astparse.Tree, cfg Config) []types.Token {
	src := tree.Source()
	var out []types.Token
	line, col := 1, 1
	pos := 0
	for n := range tree.Leaves() {
		start, end := int(n.StartByte()), int(n.EndByte())
		line, col = advance(line, col, src[pos:start])
		pos = start

		kind := n.Type()
		if slices.Contains(cfg.ExcludeKinds, kind) {
			pos = end
			continue
		}
		if len(cfg.IncludeKinds) > 0 && !slices.Contains(cfg.IncludeKinds, kind) {
			pos = end
			continue
		}

		text := src[start:end]
		if cfg.StripWhitespace && isAllWhitespace(text) {
			pos = end
			continue
		}

		if cfg.SplitGraphemes {
			out = append(out, splitGraphemes(text, start, kind, line, col)...)
		} else {
			out = append(out, types.Token{
				Text: string(text),
				Kind: kind,
				Origin: types.Origin{
					Line:      line,
					Column:    col,
					StartByte: uint32(start),
					EndByte:   uint32(end),
				},
			})
		}
		pos = end
	}
	return out
}

// splitGraphemes turns a single leaf's text into one token per grapheme cluster, tracking byte
// offset and line/column as it walks forward from (start, line, col).
func splitGraphemes(text []byte, start int, kind string, line, col int) []types.Token {
	var out []types.Token
	iter := graphemes.FromBytes(text)
	for iter.Next() {
		g := iter.Value()
		gline, gcol := advance(line, col, text[:iter.Start()])
		out = append(out, types.Token{
			Text: string(g),
			Kind: kind,
			Origin: types.Origin{
				Line:      gline,
				Column:    gcol,
				StartByte: uint32(start + iter.Start()),
				EndByte:   uint32(start + iter.End()),
			},
		})
	}
	return out
}

// isAllWhitespace reports whether every grapheme cluster in text is whitespace. An empty text is
// trivially all-whitespace.
func isAllWhitespace(text []byte) bool {
	iter := graphemes.FromBytes(text)
	for iter.Next() {
		if strings.TrimSpace(string(iter.Value())) != "" {
			return false
		}
	}
	return true
}

// advance returns the line and column reached after skipping over b, which starts at (line,
// col).
func advance(line, col int, b []byte) (int, int) {
	for _, r := range string(b) {
		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}
