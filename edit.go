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

import (
	"sitterdiff.dev/sitterdiff/internal/config"
	"sitterdiff.dev/sitterdiff/internal/impl"
	"sitterdiff.dev/sitterdiff/internal/types"
)

// Edit describes a single insertion or deletion in an edit script.
//
//   - For Delete, Token is the token that only exists on the left side.
//   - For Insert, Token is the token that only exists on the right side.
//
// Op is never [Match]: [Diff] only reports the tokens that changed. The unchanged tokens that
// align the two sides can be reconstructed from the surrounding context in a and b.
type Edit = types.Edit

// Diff compares the leaf tokens of two parsed syntax trees and returns the minimal edit script
// needed to turn a into b.
//
// Two tokens are equal iff [Token.Equal] reports true; token kind is irrelevant to the
// comparison. The returned edits are ordered left to right by their position in the respective
// input slice and, for a run of changes at the same position, all deletions are reported before
// any insertions. This makes the result deterministic: running Diff twice on the same inputs
// always yields the same edit script.
//
// By default, Diff finds a minimal edit script irrespective of cost. For very large token
// sequences this can be expensive; use [Fast] to bound the cost by falling back to heuristics
// that may produce a non-minimal, but still correct, edit script.
func Diff(a, b []Token, opts ...Option) []Edit {
	cfg := config.FromOptions(opts, config.Minimal|config.Heuristic|config.Fast)
	rx, ry := impl.DiffKeyed(a, b, tokenKey, cfg)
	return edits(a, b, rx, ry)
}

// tokenKey is the equality key [Diff] compares tokens by: identical text, regardless of kind or
// source position. See [Token.Equal].
func tokenKey(t Token) string { return t.Text }

func edits(a, b []Token, rx, ry []bool) []Edit {
	n, m := len(rx)-1, len(ry)-1
	var nedits int
	for s, t := 0, 0; s < n || t < m; {
		for s < n && rx[s] {
			nedits++
			s++
		}
		for t < m && ry[t] {
			nedits++
			t++
		}
		for s < n && t < m && !rx[s] && !ry[t] {
			s++
			t++
		}
	}
	if nedits == 0 {
		return nil
	}

	out := make([]Edit, 0, nedits)
	for s, t := 0, 0; s < n || t < m; {
		for s < n && rx[s] {
			out = append(out, Edit{Op: Delete, Token: a[s]})
			s++
		}
		for t < m && ry[t] {
			out = append(out, Edit{Op: Insert, Token: b[t]})
			t++
		}
		for s < n && t < m && !rx[s] && !ry[t] {
			s++
			t++
		}
	}
	return out
}
