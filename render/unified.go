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

package render

import (
	"fmt"
	"strings"

	"sitterdiff.dev/sitterdiff"
	"sitterdiff.dev/sitterdiff/hunks"
	"sitterdiff.dev/sitterdiff/internal/byteview"
	"sitterdiff.dev/sitterdiff/render/color"
)

// Unified renders hs as a unified-style listing: a "line N:" title per hunk, a separator the same
// length as the title, then its deleted line (prefixed "-") and/or inserted line (prefixed "+"),
// with intra-line emphasis applied when a hunk has [hunks.Hunk.Segments].
//
// Unlike the Unix diff -u format, there is no surrounding context: sitterdiff hunks only ever
// contain the tokens that changed.
func Unified(hs []hunks.Hunk, theme color.Theme) string {
	var b byteview.Builder[string]
	for _, h := range hs {
		writeHunkHeader(&b, h, theme)
		writeUnifiedSide(&b, h, sitterdiff.Delete, theme.DeletePrefix, theme.Delete, theme.EmphasisDelete)
		writeUnifiedSide(&b, h, sitterdiff.Insert, theme.InsertPrefix, theme.Insert, theme.EmphasisInsert)
	}
	return b.Build()
}

// writeHunkHeader writes a hunk's title followed by a separator line, mirroring the reference
// tool's print_hunk_title: the title on its own line, then a run of "-" as long as the title.
func writeHunkHeader(b *byteview.Builder[string], h hunks.Hunk, theme color.Theme) {
	header := headerText(h)
	b.WriteString(wrap(header, theme.HunkHeader))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("-", len(header)))
	b.WriteString("\n")
}

func headerText(h hunks.Hunk) string {
	switch {
	case len(h.Del) > 0 && len(h.Ins) > 0:
		return fmt.Sprintf("line %d / line %d:", h.DelLine, h.InsLine)
	case len(h.Del) > 0:
		return fmt.Sprintf("line %d:", h.DelLine)
	default:
		return fmt.Sprintf("line %d:", h.InsLine)
	}
}

func writeUnifiedSide(b *byteview.Builder[string], h hunks.Hunk, op sitterdiff.Op, prefix, base, emphasis string) {
	var toks []sitterdiff.Token
	if op == sitterdiff.Delete {
		toks = h.Del
	} else {
		toks = h.Ins
	}
	if len(toks) == 0 {
		return
	}
	b.WriteString(prefix)
	if len(h.Segments) > 0 {
		b.WriteString(styledSegments(h.Segments, op, base, emphasis))
	} else {
		b.WriteString(wrap(joinText(toks), base))
	}
	b.WriteString("\n")
}
