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

// Package render formats [sitterdiff.dev/sitterdiff/hunks.Hunk] values for display.
//
// [Unified] is the default, plain listing format. [Custom] exposes the same traversal with a
// configurable header and prefixes. [Split] is a supplemental side-by-side format; like the
// others, it is display-only and produces no patch-applicable output.
package render
