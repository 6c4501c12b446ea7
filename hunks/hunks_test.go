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

package hunks_test

import (
	"testing"

	"sitterdiff.dev/sitterdiff"
	"sitterdiff.dev/sitterdiff/hunks"
)

func tok(line int, text string) sitterdiff.Token {
	return sitterdiff.Token{Text: text, Origin: sitterdiff.Origin{Line: line}}
}

func TestAssemblePureDeletion(t *testing.T) {
	edits := []sitterdiff.Edit{
		{Op: sitterdiff.Delete, Token: tok(2, "let")},
		{Op: sitterdiff.Delete, Token: tok(2, "x")},
		{Op: sitterdiff.Delete, Token: tok(2, "=")},
		{Op: sitterdiff.Delete, Token: tok(2, "1")},
		{Op: sitterdiff.Delete, Token: tok(2, ";")},
	}
	got := hunks.Assemble(edits)
	if len(got) != 1 {
		t.Fatalf("Assemble(...) = %d hunks, want 1", len(got))
	}
	h := got[0]
	if len(h.Ins) != 0 || h.DelLine != 2 || len(h.Del) != 5 {
		t.Errorf("Assemble(...) = %+v, want a pure deletion hunk on line 2 with 5 tokens", h)
	}
}

func TestAssemblePairsAdjacentDeleteInsert(t *testing.T) {
	edits := []sitterdiff.Edit{
		{Op: sitterdiff.Delete, Token: tok(1, "one")},
		{Op: sitterdiff.Insert, Token: tok(1, "two")},
	}
	got := hunks.Assemble(edits, hunks.WithEmphasis(false))
	if len(got) != 1 {
		t.Fatalf("Assemble(...) = %d hunks, want 1", len(got))
	}
	h := got[0]
	if len(h.Del) != 1 || len(h.Ins) != 1 {
		t.Errorf("Assemble(...) did not pair adjacent delete/insert runs: %+v", h)
	}
}

func TestAssembleUnpairedRunsStayStandalone(t *testing.T) {
	edits := []sitterdiff.Edit{
		{Op: sitterdiff.Insert, Token: tok(1, "one")},
		{Op: sitterdiff.Delete, Token: tok(2, "two")},
		{Op: sitterdiff.Insert, Token: tok(3, "three")},
	}
	got := hunks.Assemble(edits, hunks.WithEmphasis(false))
	if len(got) != 2 {
		t.Fatalf("Assemble(...) = %d hunks, want 2", len(got))
	}
	if len(got[0].Ins) != 1 || len(got[0].Del) != 0 {
		t.Errorf("first hunk = %+v, want a standalone insertion", got[0])
	}
	if len(got[1].Del) != 1 || len(got[1].Ins) != 1 {
		t.Errorf("second hunk = %+v, want a paired delete/insert", got[1])
	}
}

func TestAssembleEmphasis(t *testing.T) {
	edits := []sitterdiff.Edit{
		{Op: sitterdiff.Delete, Token: tok(1, "one")},
		{Op: sitterdiff.Insert, Token: tok(1, "two")},
	}
	got := hunks.Assemble(edits)
	if len(got) != 1 {
		t.Fatalf("Assemble(...) = %d hunks, want 1", len(got))
	}
	if got[0].Segments == nil {
		t.Error("Assemble(...) did not compute emphasis for a paired hunk")
	}
}

func TestAssembleMergesContiguousMultiLineReplacement(t *testing.T) {
	edits := []sitterdiff.Edit{
		{Op: sitterdiff.Delete, Token: tok(2, "foo")},
		{Op: sitterdiff.Delete, Token: tok(3, "bar")},
		{Op: sitterdiff.Insert, Token: tok(2, "alpha")},
		{Op: sitterdiff.Insert, Token: tok(3, "beta")},
	}
	got := hunks.Assemble(edits, hunks.WithEmphasis(false))
	if len(got) != 1 {
		t.Fatalf("Assemble(...) = %d hunks, want 1", len(got))
	}
	h := got[0]
	if len(h.Del) != 2 || len(h.Ins) != 2 {
		t.Fatalf("Assemble(...) = %+v, want both lines of each side merged into one hunk", h)
	}
	if h.Del[0].Text != "foo" || h.Del[1].Text != "bar" {
		t.Errorf("Assemble(...) Del = %+v, want [foo bar] in order", h.Del)
	}
	if h.Ins[0].Text != "alpha" || h.Ins[1].Text != "beta" {
		t.Errorf("Assemble(...) Ins = %+v, want [alpha beta] in order", h.Ins)
	}
}

func TestAssembleDoesNotMergeNonContiguousSameOpLines(t *testing.T) {
	edits := []sitterdiff.Edit{
		{Op: sitterdiff.Delete, Token: tok(2, "one")},
		{Op: sitterdiff.Delete, Token: tok(50, "two")},
	}
	got := hunks.Assemble(edits, hunks.WithEmphasis(false))
	if len(got) != 2 {
		t.Fatalf("Assemble(...) = %d hunks, want 2 (lines 2 and 50 are not adjacent)", len(got))
	}
}

// TestAssembleCoverage pins the coverage invariant: every edit in the input script appears in
// exactly one hunk of the output, with none dropped or duplicated.
func TestAssembleCoverage(t *testing.T) {
	edits := []sitterdiff.Edit{
		{Op: sitterdiff.Insert, Token: tok(1, "one")},
		{Op: sitterdiff.Delete, Token: tok(2, "two")},
		{Op: sitterdiff.Insert, Token: tok(3, "three")},
		{Op: sitterdiff.Delete, Token: tok(5, "four")},
		{Op: sitterdiff.Insert, Token: tok(5, "five")},
	}
	got := hunks.Assemble(edits, hunks.WithEmphasis(false))

	count := func(op sitterdiff.Op, text string) int {
		n := 0
		for _, h := range got {
			for _, tk := range h.Del {
				if op == sitterdiff.Delete && tk.Text == text {
					n++
				}
			}
			for _, tk := range h.Ins {
				if op == sitterdiff.Insert && tk.Text == text {
					n++
				}
			}
		}
		return n
	}
	for _, e := range edits {
		if n := count(e.Op, e.Token.Text); n != 1 {
			t.Errorf("edit %+v appears in %d hunks, want exactly 1", e, n)
		}
	}
}

func TestAssembleNoEdits(t *testing.T) {
	if got := hunks.Assemble(nil); got != nil {
		t.Errorf("Assemble(nil) = %v, want nil", got)
	}
}
