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

import "sitterdiff.dev/sitterdiff/internal/config"

// Option configures the behavior of [Diff].
type Option = config.Option

// Heuristic limits the cost of [Diff] for large token sequences by applying heuristics that
// reduce the time complexity at the cost of producing a non-minimal (but still correct) edit
// script.
//
// With this option, the runtime is O(N^1.5 log N) where N = len(a) + len(b).
func Heuristic() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Mode = config.ModeDefault
		return config.Heuristic
	}
}

// Fast finds a diff as fast as possible, in O(N log N) time, at the cost of a result that may be
// far from minimal. Intended for very large files where even [Heuristic] is too slow.
func Fast() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Mode = config.ModeFast
		return config.Fast
	}
}

// Minimal finds a minimal edit script irrespective of cost, in O(ND) time where N = len(a) +
// len(b) and D is the number of edits. This is the default.
func Minimal() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Mode = config.ModeMinimal
		return config.Minimal
	}
}
