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

// Package astparse drives a tree-sitter parse of a source buffer and exposes its leaves for
// token extraction.
package astparse

import (
	"context"
	"fmt"
	"iter"

	sitter "github.com/smacker/go-tree-sitter"

	"sitterdiff.dev/sitterdiff/grammar"
)

// ParseFailed is returned when tree-sitter could not produce a tree at all, e.g. because the
// grammar rejected the input outright. A syntax error inside otherwise-parseable input is not a
// ParseFailed: tree-sitter's error-recovery nodes are ordinary nodes in the tree and are left for
// the caller to deal with.
type ParseFailed struct {
	Language string
	Err      error
}

func (e *ParseFailed) Error() string {
	return fmt.Sprintf("astparse: failed to parse %s source: %v", e.Language, e.Err)
}

func (e *ParseFailed) Unwrap() error { return e.Err }

// Tree is a parsed syntax tree together with the source buffer it was parsed from. The source
// buffer must outlive the Tree: nodes reference it by byte offset, they don't copy it.
type Tree struct {
	raw *sitter.Tree
	src []byte
	h   grammar.Handle
}

// Parse parses src using the grammar in h.
func Parse(ctx context.Context, src []byte, h grammar.Handle) (*Tree, error) {
	p := sitter.NewParser()
	p.SetLanguage(h.Language())
	raw, err := p.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, &ParseFailed{Language: h.Name(), Err: err}
	}
	if raw == nil || raw.RootNode() == nil {
		return nil, &ParseFailed{Language: h.Name(), Err: fmt.Errorf("tree-sitter returned an empty tree")}
	}
	return &Tree{raw: raw, src: src, h: h}, nil
}

// Source returns the buffer the tree was parsed from.
func (t *Tree) Source() []byte { return t.src }

// RootNode returns the root node of the tree.
func (t *Tree) RootNode() *sitter.Node { return t.raw.RootNode() }

// Leaves returns an iterator over every leaf node in the tree in depth-first, left-to-right
// order -- the order the corresponding text appears in the source.
func (t *Tree) Leaves() iter.Seq[*sitter.Node] {
	return func(yield func(*sitter.Node) bool) {
		var walk func(n *sitter.Node) bool
		walk = func(n *sitter.Node) bool {
			if n == nil {
				return true
			}
			if n.ChildCount() == 0 {
				return yield(n)
			}
			for i := range int(n.ChildCount()) {
				if !walk(n.Child(i)) {
					return false
				}
			}
			return true
		}
		walk(t.RootNode())
	}
}
