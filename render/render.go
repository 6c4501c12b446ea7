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
	"sitterdiff.dev/sitterdiff"
	"sitterdiff.dev/sitterdiff/hunks"
	"sitterdiff.dev/sitterdiff/render/color"
)

const (
	prefixMatch  = " "
	prefixDelete = "-"
	prefixInsert = "+"
)

// joinText renders a hunk side (a run of deleted or inserted tokens) as a single line of text,
// separating tokens with a single space.
func joinText(toks []sitterdiff.Token) string {
	if len(toks) == 0 {
		return ""
	}
	out := toks[0].Text
	for _, t := range toks[1:] {
		out += " " + t.Text
	}
	return out
}

// styledSegments renders a hunk's emphasis [hunks.Segment]s for one side (Delete or Insert),
// wrapping emphasized spans in the corresponding emphasis color and leaving matching spans in
// the side's base color. want selects which side's spans to include; the opposite side's spans
// are skipped entirely.
func styledSegments(segs []hunks.Segment, want sitterdiff.Op, base, emphasis string) string {
	var out string
	for _, seg := range segs {
		switch seg.Op {
		case sitterdiff.Match:
			out += wrap(seg.Text, base)
		case want:
			out += wrap(seg.Text, emphasis)
		default:
			// The other side's exclusive span; not part of this side's rendering.
		}
	}
	return out
}

func wrap(text, code string) string {
	if code == "" {
		return text
	}
	return code + text + color.Reset
}
