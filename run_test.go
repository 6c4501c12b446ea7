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

package sitterdiff_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"sitterdiff.dev/sitterdiff"
	"sitterdiff.dev/sitterdiff/grammar"
	"sitterdiff.dev/sitterdiff/leaves"
)

func TestRun(t *testing.T) {
	opts := sitterdiff.RunOptions{
		Grammar: grammar.NewStaticProvider(),
		Leaves: leaves.Config{
			ExcludeKinds:    []string{"comment"},
			StripWhitespace: true,
		},
	}
	a := sitterdiff.Request{Source: []byte("package p\n\nfunc f() int { return 1 }\n"), Language: "go"}
	b := sitterdiff.Request{Source: []byte("package p\n\nfunc f() int { return 2 }\n"), Language: "go"}

	hs, err := sitterdiff.Run(context.Background(), a, b, opts)
	if err != nil {
		t.Fatalf("Run(...) = %v", err)
	}
	if len(hs) != 1 {
		t.Fatalf("Run(...) produced %d hunks, want 1", len(hs))
	}
	h := hs[0]
	if len(h.Del) != 1 || h.Del[0].Text != "1" {
		t.Errorf("Del = %v, want a single token \"1\"", h.Del)
	}
	if len(h.Ins) != 1 || h.Ins[0].Text != "2" {
		t.Errorf("Ins = %v, want a single token \"2\"", h.Ins)
	}
}

func TestRunRequiresGrammar(t *testing.T) {
	_, err := sitterdiff.Run(context.Background(), sitterdiff.Request{}, sitterdiff.Request{}, sitterdiff.RunOptions{})
	if err == nil {
		t.Fatal("Run(...) = nil error, want error for a nil Grammar provider")
	}
	var internalErr *sitterdiff.InternalError
	if !errors.As(err, &internalErr) {
		t.Errorf("Run(...) = %v, want a *sitterdiff.InternalError", err)
	}
}

// The following six tests are the seed scenarios named literally, end to end through
// [sitterdiff.Run] using the "rust" grammar, the way a front end would actually see them.

func TestRunSeedFormattingOnlyChange(t *testing.T) {
	opts := sitterdiff.RunOptions{Grammar: grammar.NewStaticProvider()}
	a := sitterdiff.Request{Source: []byte("fn main() {\n    let x = 1;\n}\n"), Language: "rust"}
	b := sitterdiff.Request{Source: []byte("fn\n\n\n\nmain\n\n()\n\n{\n    let x = 1;\n}\n"), Language: "rust"}
	hs, err := sitterdiff.Run(context.Background(), a, b, opts)
	if err != nil {
		t.Fatalf("Run(...) = %v", err)
	}
	if len(hs) != 0 {
		t.Errorf("Run(...) = %d hunks, want 0 for a reformatting-only change", len(hs))
	}
}

func TestRunSeedPureDeletion(t *testing.T) {
	opts := sitterdiff.RunOptions{Grammar: grammar.NewStaticProvider()}
	a := sitterdiff.Request{Source: []byte("fn main() {\n    let x = 1;\n}\n"), Language: "rust"}
	b := sitterdiff.Request{Source: []byte("fn main() {\n}\n"), Language: "rust"}
	hs, err := sitterdiff.Run(context.Background(), a, b, opts)
	if err != nil {
		t.Fatalf("Run(...) = %v", err)
	}
	if len(hs) != 1 {
		t.Fatalf("Run(...) = %d hunks, want 1", len(hs))
	}
	h := hs[0]
	if h.DelLine != 2 || len(h.Ins) != 0 {
		t.Fatalf("Run(...) hunk = %+v, want a pure deletion on line 2", h)
	}
	var got []string
	for _, tk := range h.Del {
		got = append(got, tk.Text)
	}
	want := []string{"let", "x", "=", "1", ";"}
	if strings.Join(got, " ") != strings.Join(want, " ") {
		t.Errorf("Run(...) deleted tokens = %v, want %v", got, want)
	}
}

func TestRunSeedPairedChange(t *testing.T) {
	opts := sitterdiff.RunOptions{Grammar: grammar.NewStaticProvider()}
	a := sitterdiff.Request{Source: []byte("fn add_one {}\n"), Language: "rust"}
	b := sitterdiff.Request{Source: []byte("fn add_two() {}\n"), Language: "rust"}
	hs, err := sitterdiff.Run(context.Background(), a, b, opts)
	if err != nil {
		t.Fatalf("Run(...) = %v", err)
	}
	if len(hs) != 1 {
		t.Fatalf("Run(...) = %d hunks, want 1", len(hs))
	}
	h := hs[0]
	if h.DelLine != 1 || len(h.Del) == 0 || len(h.Ins) == 0 {
		t.Fatalf("Run(...) hunk = %+v, want a paired hunk on line 1", h)
	}
	if h.Segments == nil {
		t.Fatal("Run(...) hunk has no emphasis segments")
	}
	var hasOne, hasTwo bool
	for _, s := range h.Segments {
		if s.Op == sitterdiff.Delete && strings.Contains(s.Text, "one") {
			hasOne = true
		}
		if s.Op == sitterdiff.Insert && strings.Contains(s.Text, "two") {
			hasTwo = true
		}
	}
	if !hasOne || !hasTwo {
		t.Errorf("Run(...) segments = %+v, want a deleted span containing \"one\" and an inserted span containing \"two\"", h.Segments)
	}
}

func TestRunSeedDisjointAddition(t *testing.T) {
	opts := sitterdiff.RunOptions{Grammar: grammar.NewStaticProvider()}
	a := sitterdiff.Request{Source: []byte("fn main() {}\n"), Language: "rust"}
	b := sitterdiff.Request{Source: []byte("fn main() {}\nfn addition() {}\n"), Language: "rust"}
	hs, err := sitterdiff.Run(context.Background(), a, b, opts)
	if err != nil {
		t.Fatalf("Run(...) = %v", err)
	}
	if len(hs) != 1 {
		t.Fatalf("Run(...) = %d hunks, want 1", len(hs))
	}
	h := hs[0]
	if h.InsLine != 2 || len(h.Del) != 0 {
		t.Fatalf("Run(...) hunk = %+v, want a pure addition on line 2", h)
	}
	var got []string
	for _, tk := range h.Ins {
		got = append(got, tk.Text)
	}
	want := []string{"fn", "addition", "(", ")", "{", "}"}
	if strings.Join(got, " ") != strings.Join(want, " ") {
		t.Errorf("Run(...) inserted tokens = %v, want %v", got, want)
	}
}

func TestRunSeedUnknownLanguage(t *testing.T) {
	opts := sitterdiff.RunOptions{Grammar: grammar.NewStaticProvider()}
	a := sitterdiff.Request{Source: []byte("a"), Language: "xyz"}
	b := sitterdiff.Request{Source: []byte("b"), Language: "xyz"}
	_, err := sitterdiff.Run(context.Background(), a, b, opts)
	if err == nil {
		t.Fatal("Run(...) = nil error, want NoGrammar for an unassociated language")
	}
	var noSuchLang *grammar.ErrNoSuchLanguage
	if !errors.As(err, &noSuchLang) {
		t.Errorf("Run(...) = %v, want an error wrapping *grammar.ErrNoSuchLanguage", err)
	}
}

func TestRunSeedGraphemeSplitEmphasis(t *testing.T) {
	opts := sitterdiff.RunOptions{
		Grammar: grammar.NewStaticProvider(),
		Leaves:  leaves.Config{SplitGraphemes: true},
	}
	a := sitterdiff.Request{Source: []byte(`let s = "café";` + "\n"), Language: "rust"}
	b := sitterdiff.Request{Source: []byte(`let s = "cafe";` + "\n"), Language: "rust"}
	hs, err := sitterdiff.Run(context.Background(), a, b, opts)
	if err != nil {
		t.Fatalf("Run(...) = %v", err)
	}
	if len(hs) != 1 {
		t.Fatalf("Run(...) = %d hunks, want 1", len(hs))
	}
	h := hs[0]
	if len(h.Del) != 1 || h.Del[0].Text != "é" {
		t.Errorf("Run(...) Del = %v, want a single grapheme \"é\"", h.Del)
	}
	if len(h.Ins) != 1 || h.Ins[0].Text != "e" {
		t.Errorf("Run(...) Ins = %v, want a single grapheme \"e\"", h.Ins)
	}
}
