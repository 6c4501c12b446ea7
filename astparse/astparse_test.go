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

package astparse_test

import (
	"context"
	"testing"

	"sitterdiff.dev/sitterdiff/astparse"
	"sitterdiff.dev/sitterdiff/grammar"
)

func TestParseLeaves(t *testing.T) {
	h, err := grammar.NewStaticProvider().Lookup("go")
	if err != nil {
		t.Fatalf("Lookup(go) = %v", err)
	}
	src := []byte("package p\n\nfunc f() int { return 1 }\n")
	tree, err := astparse.Parse(context.Background(), src, h)
	if err != nil {
		t.Fatalf("Parse(...) = %v", err)
	}

	var texts []string
	for n := range tree.Leaves() {
		if n.ChildCount() != 0 {
			t.Errorf("Leaves() yielded a non-leaf node of type %s", n.Type())
		}
		texts = append(texts, string(src[n.StartByte():n.EndByte()]))
	}
	if len(texts) == 0 {
		t.Fatal("Leaves() yielded no nodes")
	}
	if texts[0] != "package" {
		t.Errorf("first leaf = %q, want %q", texts[0], "package")
	}
}
