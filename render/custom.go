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
	"strings"

	"sitterdiff.dev/sitterdiff"
	"sitterdiff.dev/sitterdiff/hunks"
	"sitterdiff.dev/sitterdiff/internal/byteview"
	"sitterdiff.dev/sitterdiff/render/color"
)

// CustomFormat controls the per-hunk prefixes, header, and styling used by [Custom]. It's the
// same shape as [Unified]'s fixed format, just with every literal made configurable; Custom(hs,
// DefaultFormat) and Unified(hs, color.None) produce identical output.
type CustomFormat struct {
	Header       func(h hunks.Hunk) string
	DeletePrefix string
	InsertPrefix string

	// Theme styles each side the same way [Unified] does. Its DeletePrefix/InsertPrefix are
	// ignored in favor of the fields above, which Custom always uses for the line prefix.
	Theme color.Theme
}

// DefaultFormat is the [CustomFormat] equivalent of [Unified]'s built-in format, with no
// coloring.
var DefaultFormat = CustomFormat{
	Header:       headerText,
	DeletePrefix: prefixDelete,
	InsertPrefix: prefixInsert,
}

// Custom renders hs using a caller-supplied format, allowing front ends to match an external
// tool's hunk header and prefix conventions (e.g. a particular code review tool) without
// reimplementing hunk traversal.
func Custom(hs []hunks.Hunk, format CustomFormat) string {
	var b byteview.Builder[string]
	theme := format.Theme
	for _, h := range hs {
		header := format.Header(h)
		b.WriteString(wrap(header, theme.HunkHeader))
		b.WriteString("\n")
		b.WriteString(strings.Repeat("-", len(header)))
		b.WriteString("\n")
		writeCustomSide(&b, h, sitterdiff.Delete, format.DeletePrefix, theme.Delete, theme.EmphasisDelete)
		writeCustomSide(&b, h, sitterdiff.Insert, format.InsertPrefix, theme.Insert, theme.EmphasisInsert)
	}
	return b.Build()
}

func writeCustomSide(b *byteview.Builder[string], h hunks.Hunk, op sitterdiff.Op, prefix, base, emphasis string) {
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
