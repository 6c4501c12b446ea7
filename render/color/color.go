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

// Package color provides configuration for coloring sitterdiff output using ANSI escape
// sequences.
//
// Specifying colors uses [Select Graphic Rendition parameters]. For example the code below
// presents the hunk header in bold yellow:
//
//	HunkHeaders(1, 33)
//
// This is equivalent to the raw ANSI sequence \033[1;33m. It's the caller's responsibility to
// ensure the parameters are correct and supported by the underlying terminal.
//
// [Select Graphic Rendition parameters]: https://en.wikipedia.org/wiki/ANSI_escape_code#SGR
package color

import (
	"fmt"
	"strings"
)

// Reset is the SGR sequence that ends any styling started by a Theme field.
const Reset = "\033[0m"

// Theme collects the SGR prefixes used to style each part of sitterdiff's output, plus the line
// prefixes used by the unified and split renderers. A zero-value styling field means "no
// styling" for that part.
type Theme struct {
	HunkHeader     string
	Match          string
	Delete         string
	Insert         string
	EmphasisDelete string
	EmphasisInsert string

	// DeletePrefix and InsertPrefix are written before a deleted or inserted line, "-" and "+"
	// by default. A config's style entries can override them (e.g. to match another tool's
	// convention).
	DeletePrefix string
	InsertPrefix string
}

// Default is a theme suitable for a typical dark-background terminal: a bold cyan hunk header,
// plain matches, red deletions, green insertions, and a stronger/underlined variant of each for
// emphasized (intra-line changed) spans.
var Default = Theme{
	HunkHeader:     format([]int{1, 36}),
	Delete:         format([]int{31}),
	Insert:         format([]int{32}),
	EmphasisDelete: format([]int{1, 4, 31}),
	EmphasisInsert: format([]int{1, 4, 32}),
	DeletePrefix:   "-",
	InsertPrefix:   "+",
}

// None is a theme with no coloring, used when output is not a terminal or color is turned off.
// It still carries the default "-"/"+" line prefixes, since those are a format convention, not a
// color.
var None = Theme{
	DeletePrefix: "-",
	InsertPrefix: "+",
}

// Option customizes a [Theme] built with [New].
type Option func(*Theme)

// New builds a Theme starting from [Default] and applying opts in order.
func New(opts ...Option) Theme {
	t := Default
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

// HunkHeaders colors hunk headers.
func HunkHeaders(params ...int) Option {
	code := format(params)
	return func(t *Theme) { t.HunkHeader = code }
}

// Matches colors matching tokens.
func Matches(params ...int) Option {
	code := format(params)
	return func(t *Theme) { t.Match = code }
}

// Deletes colors deleted tokens.
func Deletes(params ...int) Option {
	code := format(params)
	return func(t *Theme) { t.Delete = code }
}

// Inserts colors inserted tokens.
func Inserts(params ...int) Option {
	code := format(params)
	return func(t *Theme) { t.Insert = code }
}

// EmphasisDeletes colors the deleted spans of intra-line emphasis.
func EmphasisDeletes(params ...int) Option {
	code := format(params)
	return func(t *Theme) { t.EmphasisDelete = code }
}

// EmphasisInserts colors the inserted spans of intra-line emphasis.
func EmphasisInserts(params ...int) Option {
	code := format(params)
	return func(t *Theme) { t.EmphasisInsert = code }
}

// SGR builds an SGR escape sequence from the given parameters, e.g. SGR(1, 31) for bold red. It's
// exported for callers (such as [sitterdiff.dev/sitterdiff/render.ThemeFromFormatting]) that build
// a Theme's styling strings from data rather than from [Option]s.
func SGR(params ...int) string {
	return format(params)
}

func format(params []int) string {
	if len(params) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("\033[")
	for i, v := range params {
		if i > 0 {
			sb.WriteRune(';')
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteRune('m')
	return sb.String()
}
