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

// Package types holds the token/edit vocabulary shared between the root sitterdiff package and
// its leaves/hunks subpackages. It exists only to break the import cycle that would otherwise
// result from those subpackages depending on these types while the root package depends on the
// subpackages; the root package re-exports everything here under its original names via type
// aliases and constant redeclarations, so this package is not part of the public API.
package types

import "strconv"

// Origin locates a token in the source buffer it was extracted from.
type Origin struct {
	Line, Column       int    // 1-based position of the first byte of the token.
	StartByte, EndByte uint32 // Byte offsets into the source buffer, [StartByte, EndByte).
}

// Token is a single leaf of a parsed syntax tree: a grammar-defined kind plus the source text it
// spans.
//
// Two tokens are considered equal for the purposes of [Diff] iff their Text is equal; Kind and
// Origin are carried along for rendering and are not part of the token's identity. This mirrors
// how a human reader compares two pieces of code: renaming an identifier's token kind without
// changing its spelling is not something that can happen, but the reverse -- two different kinds
// of token that happen to render to the same text -- should still be treated as a match.
type Token struct {
	Text   string
	Kind   string
	Origin Origin
}

// Equal reports whether a and b are the same token for diffing purposes.
func (a Token) Equal(b Token) bool {
	return a.Text == b.Text
}

// Op describes an edit operation.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Op
type Op int

const (
	Match  Op = iota // The token is unchanged.
	Delete           // The token only exists on the left side.
	Insert           // The token only exists on the right side.
)

const _Op_name = "MatchDeleteInsert"

var _Op_index = [...]uint8{0, 5, 11, 17}

func (i Op) String() string {
	if i < 0 || i >= Op(len(_Op_index)-1) {
		return "Op(" + strconv.FormatInt(int64(i), 10) + ")"
	}
	return _Op_name[_Op_index[i]:_Op_index[i+1]]
}

// Edit describes a single insertion or deletion in an edit script.
//
//   - For Delete, Token is the token that only exists on the left side.
//   - For Insert, Token is the token that only exists on the right side.
//
// Op is never [Match]: [Diff] only reports the tokens that changed. The unchanged tokens that
// align the two sides can be reconstructed from the surrounding context in a and b.
type Edit struct {
	Op    Op
	Token Token
}
