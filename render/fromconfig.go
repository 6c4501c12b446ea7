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

package render

import (
	"fmt"

	"sitterdiff.dev/sitterdiff/config"
	"sitterdiff.dev/sitterdiff/render/color"
)

// namedColors maps the config schema's color names to their SGR foreground parameter. The
// "bright-" variants use the high-intensity aixterm codes (90-97) rather than the bold
// attribute, so they compose cleanly with an entry's own Bold flag.
var namedColors = map[string]int{
	"black":          30,
	"red":            31,
	"green":          32,
	"yellow":         33,
	"blue":           34,
	"magenta":        35,
	"cyan":           36,
	"white":          37,
	"bright-black":   90,
	"bright-red":     91,
	"bright-green":   92,
	"bright-yellow":  93,
	"bright-blue":    94,
	"bright-magenta": 95,
	"bright-cyan":    96,
	"bright-white":   97,
}

// ThemeFromFormatting applies a config's formatting.unified style entries on top of base,
// producing the theme [Unified] should render with. Style entry fields left unset in the config
// (nil colors, false bold/underline, empty prefix) keep base's corresponding value.
func ThemeFromFormatting(f config.Formatting, base color.Theme) color.Theme {
	t := base
	applyStyleEntry(f.Unified.Deletion, &t.Delete, &t.EmphasisDelete, &t.DeletePrefix)
	applyStyleEntry(f.Unified.Addition, &t.Insert, &t.EmphasisInsert, &t.InsertPrefix)
	return t
}

// CustomFormatFromConfig builds a [CustomFormat] for the named entry in f.Custom, layering its
// style entries over base. It returns an error if name is not declared; config.Parse already
// rejects a declared custom format whose type isn't "unified", so this never needs to re-check
// that here.
func CustomFormatFromConfig(f config.Formatting, name string, base color.Theme) (CustomFormat, error) {
	cf, ok := f.Custom[name]
	if !ok {
		return CustomFormat{}, fmt.Errorf("render: no custom format named %q", name)
	}
	theme := base
	applyStyleEntry(cf.Deletion, &theme.Delete, &theme.EmphasisDelete, &theme.DeletePrefix)
	applyStyleEntry(cf.Addition, &theme.Insert, &theme.EmphasisInsert, &theme.InsertPrefix)
	return CustomFormat{
		Header:       headerText,
		DeletePrefix: theme.DeletePrefix,
		InsertPrefix: theme.InsertPrefix,
		Theme:        theme,
	}, nil
}

// applyStyleEntry overwrites regular, emphasized, and prefix with e's settings, for whichever
// fields e actually sets. regular and emphasized both pick up e.Highlight as a background and
// e.Bold/e.Underline as additional SGR attributes.
func applyStyleEntry(e config.StyleEntry, regular, emphasized, prefix *string) {
	if e.Prefix != "" {
		*prefix = e.Prefix
	}
	if params := styleParams(e, e.RegularForeground); params != nil {
		*regular = color.SGR(params...)
	}
	if params := styleParams(e, e.EmphasizedForeground); params != nil {
		*emphasized = color.SGR(params...)
	}
}

// styleParams collects the SGR parameters for one foreground color slot (regular or emphasized)
// of a style entry, combining it with the entry's shared bold/underline/highlight attributes. It
// returns nil when the entry contributes nothing for that slot, so the caller's base styling is
// left untouched.
func styleParams(e config.StyleEntry, fg *config.Color) []int {
	var params []int
	if e.Bold {
		params = append(params, 1)
	}
	if e.Underline {
		params = append(params, 4)
	}
	if e.Highlight != nil {
		params = append(params, backgroundParams(*e.Highlight)...)
	}
	if fg != nil {
		params = append(params, foregroundParams(*fg)...)
	}
	if len(params) == 0 {
		return nil
	}
	return params
}

// foregroundParams returns the SGR parameter(s) selecting c as a foreground color: a single
// named-color code, or the three-parameter 38;5;n form for an 8-bit palette index.
func foregroundParams(c config.Color) []int {
	if c.Code256Set {
		return []int{38, 5, c.Code256}
	}
	if p, ok := namedColors[c.Name]; ok {
		return []int{p}
	}
	return []int{39} // default foreground
}

// backgroundParams mirrors foregroundParams for background colors: named codes shift by 10, and
// an 8-bit palette index uses the 48;5;n form.
func backgroundParams(c config.Color) []int {
	if c.Code256Set {
		return []int{48, 5, c.Code256}
	}
	if p, ok := namedColors[c.Name]; ok {
		return []int{p + 10}
	}
	return []int{49} // default background
}
