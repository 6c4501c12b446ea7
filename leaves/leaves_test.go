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

package leaves_test

import (
	"context"
	"testing"

	"sitterdiff.dev/sitterdiff/astparse"
	"sitterdiff.dev/sitterdiff/grammar"
	"sitterdiff.dev/sitterdiff/leaves"
)

func parse(t *testing.T, src string) *astparse.Tree {
	t.Helper()
	h, err := grammar.NewStaticProvider().Lookup("go")
	if err != nil {
		t.Fatalf("Lookup(go) = %v", err)
	}
	tree, err := astparse.Parse(context.Background(), []byte(src), h)
	if err != nil {
		t.Fatalf("Parse(...) = %v", err)
	}
	return tree
}

func TestExtractBasic(t *testing.T) {
	tree := parse(t, "package p\n\nfunc f() int { return 1 }\n")
	toks := leaves.Extract(tree, leaves.Config{})
	if len(toks) == 0 {
		t.Fatal("Extract(...) returned no tokens")
	}
	if toks[0].Text != "package" || toks[0].Origin.Line != 1 {
		t.Errorf("first token = %+v, want Text=package, Line=1", toks[0])
	}
}

func TestExtractExcludeKinds(t *testing.T) {
	tree := parse(t, "package p\n\n// a comment\nfunc f() {}\n")
	toks := leaves.Extract(tree, leaves.Config{ExcludeKinds: []string{"comment"}})
	for _, tok := range toks {
		if tok.Kind == "comment" {
			t.Errorf("Extract(...) with ExcludeKinds did not drop a comment token: %+v", tok)
		}
	}
}

func TestExtractIncludeKinds(t *testing.T) {
	tree := parse(t, "package p\n\nfunc f() int { return 1 }\n")
	toks := leaves.Extract(tree, leaves.Config{IncludeKinds: []string{"int_literal"}})
	if len(toks) != 1 || toks[0].Text != "1" {
		t.Errorf("Extract(...) with IncludeKinds = %+v, want one token \"1\"", toks)
	}
}

func TestExtractStripWhitespaceKeepsTokenTextIntact(t *testing.T) {
	tree := parse(t, "package p\n\n// hi   \nfunc f() {}\n")
	toks := leaves.Extract(tree, leaves.Config{IncludeKinds: []string{"comment"}, StripWhitespace: true})
	if len(toks) != 1 || toks[0].Text != "// hi   " {
		t.Errorf(`Extract(...) with StripWhitespace = %+v, want one token "// hi   " unmodified`, toks)
	}
}

// TestExtractMonotonicByteRanges pins the monotonicity invariant: consecutive tokens' byte
// ranges never overlap and never move backward through the source.
func TestExtractMonotonicByteRanges(t *testing.T) {
	tree := parse(t, "package p\n\nfunc f(a, b int) int {\n\treturn a + b\n}\n")
	toks := leaves.Extract(tree, leaves.Config{})
	for i := 1; i < len(toks); i++ {
		prev, cur := toks[i-1], toks[i]
		if cur.Origin.StartByte < prev.Origin.EndByte {
			t.Errorf("token %d (%+v) overlaps token %d (%+v)", i, cur, i-1, prev)
		}
	}
}

// TestExtractFilterPrecedence pins the filter-precedence invariant: a kind listed in both
// ExcludeKinds and IncludeKinds is dropped.
func TestExtractFilterPrecedence(t *testing.T) {
	tree := parse(t, "package p\n\nfunc f() int { return 1 }\n")
	toks := leaves.Extract(tree, leaves.Config{
		ExcludeKinds: []string{"int_literal"},
		IncludeKinds: []string{"int_literal"},
	})
	for _, tok := range toks {
		if tok.Kind == "int_literal" {
			t.Errorf("Extract(...) kept a token of kind listed in both Exclude/IncludeKinds: %+v", tok)
		}
	}
}

func TestExtractSplitGraphemes(t *testing.T) {
	tree := parse(t, `package p

var s = "café"
`)
	toks := leaves.Extract(tree, leaves.Config{IncludeKinds: []string{"string_literal"}, SplitGraphemes: true})
	var got []string
	for _, tok := range toks {
		got = append(got, tok.Text)
	}
	want := []string{`"`, "c", "a", "f", "é", `"`}
	if len(got) != len(want) {
		t.Fatalf("Extract(...) with SplitGraphemes = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Extract(...) with SplitGraphemes[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
