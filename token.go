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

package sitterdiff

import "sitterdiff.dev/sitterdiff/internal/types"

// Origin locates a token in the source buffer it was extracted from.
type Origin = types.Origin

// Token is a single leaf of a parsed syntax tree: a grammar-defined kind plus the source text it
// spans.
//
// Two tokens are considered equal for the purposes of [Diff] iff their Text is equal; Kind and
// Origin are carried along for rendering and are not part of the token's identity. This mirrors
// how a human reader compares two pieces of code: renaming an identifier's token kind without
// changing its spelling is not something that can happen, but the reverse -- two different kinds
// of token that happen to render to the same text -- should still be treated as a match.
type Token = types.Token
