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

// SplitWidth is the default column width used by [Split] for each side.
const SplitWidth = 60

// Split renders hs side by side, the deleted tokens on the left and inserted tokens on the right,
// separated by " | ", with the left column right-padded to width bytes. It carries no extra
// information over [Unified] and produces no patch-applicable output.
func Split(hs []hunks.Hunk, width int, theme color.Theme) string {
	if width <= 0 {
		width = SplitWidth
	}
	var b byteview.Builder[string]
	for _, h := range hs {
		left := splitCell(h, sitterdiff.Delete, theme.DeletePrefix, theme.Delete, theme.EmphasisDelete)
		right := splitCell(h, sitterdiff.Insert, theme.InsertPrefix, theme.Insert, theme.EmphasisInsert)
		fmt.Fprintf(&b, "%s | %s\n", pad(left, width), right)
	}
	return b.Build()
}

func splitCell(h hunks.Hunk, op sitterdiff.Op, prefix, base, emphasis string) string {
	var toks []sitterdiff.Token
	if op == sitterdiff.Delete {
		toks = h.Del
	} else {
		toks = h.Ins
	}
	if len(toks) == 0 {
		return prefixMatch
	}
	if len(h.Segments) > 0 {
		return prefix + styledSegments(h.Segments, op, base, emphasis)
	}
	return prefix + wrap(joinText(toks), base)
}

// pad right-pads s to width and returns s unchanged if it is already at least that long. Length
// is plain byte length, ANSI escapes included (ignoring them would require a visible-width
// calculation; this is a best-effort display aid, not a patch format).
func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
