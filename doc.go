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

// Package sitterdiff compares two parsed syntax trees token by token and computes the minimal
// edit script needed to turn one into the other.
//
// sitterdiff operates on leaf [Token]s extracted from a tree-sitter parse tree (see
// [sitterdiff.dev/sitterdiff/astparse] and [sitterdiff.dev/sitterdiff/leaves]), not on raw bytes
// or lines: two files that differ only in formatting produce an empty diff, because the leaf
// tokens on both sides are identical.
//
// [Diff] returns the raw edit script. [sitterdiff.dev/sitterdiff/hunks] groups that script into
// displayable hunks with intra-line emphasis, and [sitterdiff.dev/sitterdiff/render] turns hunks
// into formatted output.
//
// Performance: by default, Diff finds a minimal edit script in O(ND) time where N = len(a) +
// len(b) and D is the number of edits. Use [Heuristic] or [Fast] to trade minimality for speed on
// very large inputs.
package sitterdiff
