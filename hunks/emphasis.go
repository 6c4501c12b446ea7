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

package hunks

import (
	"strings"

	"github.com/clipperhouse/uax29/v2/graphemes"

	diffconfig "sitterdiff.dev/sitterdiff/internal/config"
	"sitterdiff.dev/sitterdiff/internal/impl"
	"sitterdiff.dev/sitterdiff/internal/types"
)

// emphasize computes a character-level diff between the text of del and the text of ins (each
// side's tokens joined with single spaces), grouped into [Segment]s of consecutive
// Match/Delete/Insert grapheme clusters.
//
// This is a second, independent application of the same edit-script engine [sitterdiff.Diff]
// uses, just run over grapheme clusters instead of tokens, and over the whole hunk's text at
// once rather than per line-pair: recomputing it per pair would be quadratic in hunk size for no
// benefit the renderer needs.
func emphasize(del, ins []types.Token) []Segment {
	a := graphemeClusters(joinText(del))
	b := graphemeClusters(joinText(ins))
	rx, ry := impl.DiffKeyed(a, b, graphemeKey, diffconfig.Default)
	return segments(a, b, rx, ry)
}

// graphemeKey is the identity key: a grapheme cluster's string content is the whole of its
// identity, there's no equivalent of a token's kind or position to ignore.
func graphemeKey(s string) string { return s }

func joinText(toks []types.Token) string {
	var sb strings.Builder
	for i, t := range toks {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(t.Text)
	}
	return sb.String()
}

func graphemeClusters(s string) []string {
	var out []string
	iter := graphemes.FromString(s)
	for iter.Next() {
		out = append(out, iter.Value())
	}
	return out
}

// segments walks the result vectors from a DiffKeyed call in the same order as
// [sitterdiff.dev/sitterdiff.Diff]'s edit-script builder, but keeps Match spans instead of
// dropping them and coalesces consecutive clusters of the same kind into a single Segment.
func segments(a, b []string, rx, ry []bool) []Segment {
	n, m := len(rx)-1, len(ry)-1
	var out []Segment
	push := func(op types.Op, text string) {
		if k := len(out); k > 0 && out[k-1].Op == op {
			out[k-1].Text += text
			return
		}
		out = append(out, Segment{Op: op, Text: text})
	}
	for s, t := 0, 0; s < n || t < m; {
		for s < n && rx[s] {
			push(types.Delete, a[s])
			s++
		}
		for t < m && ry[t] {
			push(types.Insert, b[t])
			t++
		}
		for s < n && t < m && !rx[s] && !ry[t] {
			push(types.Match, a[s])
			s++
			t++
		}
	}
	return out
}
