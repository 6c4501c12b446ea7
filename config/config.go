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

// Package config reads sitterdiff's user configuration file.
//
// The file format is JSON5-flavored JSON (comments and trailing commas are allowed) because
// that's what the reference tool this package's schema is modeled on uses; none of the modules
// this repository is grounded on import a JSON5 library, so the tolerant-comment/trailing-comma
// preprocessing is hand-written here and documented as a deliberate stdlib fallback rather than
// an oversight.
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config is the on-disk configuration schema.
type Config struct {
	// FileAssociations overrides which grammar is used for a file extension, e.g.
	// {"cpp": "cpp", "h": "c"}.
	FileAssociations map[string]string `json:"file-associations,omitempty"`

	// DylibOverrides maps a language name to an absolute or relative path of a grammar shared
	// object, consumed by a [sitterdiff.dev/sitterdiff/grammar.DynamicProvider].
	DylibOverrides map[string]string `json:"dylib-overrides,omitempty"`

	// ExcludeKinds and IncludeKinds mirror [sitterdiff.dev/sitterdiff/leaves.Config].
	ExcludeKinds []string `json:"exclude-kinds,omitempty"`
	IncludeKinds []string `json:"include-kinds,omitempty"`

	// StripWhitespace and SplitGraphemes mirror the same-named fields of
	// [sitterdiff.dev/sitterdiff/leaves.Config]. StripWhitespace defaults to true: a config file
	// that wants whitespace-sensitive diffing has to opt back in explicitly.
	StripWhitespace bool `json:"strip-whitespace,omitempty"`
	SplitGraphemes  bool `json:"split-graphemes,omitempty"`

	// Format selects the renderer: "unified" (default) or "split".
	Format string `json:"format,omitempty"`

	// Color selects whether ANSI styling is used: "auto" (default, based on terminal
	// detection), "always", or "never".
	Color string `json:"color,omitempty"`

	// FallbackCmd, if set, is invoked as `cmd OLD NEW` when no grammar matches either file
	// instead of failing the run.
	FallbackCmd string `json:"fallback-cmd,omitempty"`

	// Formatting holds the unified format's style overrides and any named custom formats.
	Formatting Formatting `json:"formatting,omitempty"`
}

// Color is a terminal color: either a name (e.g. "red", "bright-green") or an 8-bit palette
// index, written as {"color256": n}.
type Color struct {
	Name       string
	Code256    int
	Code256Set bool
}

// UnmarshalJSON accepts either a JSON string (a named color) or an object of the form
// {"color256": n}.
func (c *Color) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*c = Color{Name: name}
		return nil
	}
	var obj struct {
		Color256 *int `json:"color256"`
	}
	if err := json.Unmarshal(data, &obj); err != nil || obj.Color256 == nil {
		return fmt.Errorf(`color: want a name string or {"color256": n}`)
	}
	*c = Color{Code256: *obj.Color256, Code256Set: true}
	return nil
}

// MarshalJSON is the inverse of UnmarshalJSON.
func (c Color) MarshalJSON() ([]byte, error) {
	if c.Code256Set {
		return json.Marshal(struct {
			Color256 int `json:"color256"`
		}{c.Code256})
	}
	return json.Marshal(c.Name)
}

// StyleEntry describes how to render one kind of hunk line (an addition or a deletion), per the
// formatting.unified.addition/.deletion and formatting.custom.<name>.addition/.deletion keys.
type StyleEntry struct {
	// Highlight sets a background color for the whole line.
	Highlight *Color `json:"highlight,omitempty"`

	// RegularForeground and EmphasizedForeground color, respectively, the unchanged and
	// changed (emphasized) spans of a line.
	RegularForeground    *Color `json:"regular-foreground,omitempty"`
	EmphasizedForeground *Color `json:"emphasized-foreground,omitempty"`

	Bold      bool `json:"bold,omitempty"`
	Underline bool `json:"underline,omitempty"`

	// Prefix overrides the line's leading marker, "-"/"+" by default.
	Prefix string `json:"prefix,omitempty"`
}

// UnifiedFormatting overrides the built-in unified renderer's addition/deletion styling.
type UnifiedFormatting struct {
	Addition StyleEntry `json:"addition,omitempty"`
	Deletion StyleEntry `json:"deletion,omitempty"`
}

// CustomFormatting declares a named render mode. Type must be "unified": a custom mode inherits
// the unified renderer's layout and overrides only its style entries.
type CustomFormatting struct {
	Type     string     `json:"type,omitempty"`
	Addition StyleEntry `json:"addition,omitempty"`
	Deletion StyleEntry `json:"deletion,omitempty"`
}

// Formatting is the formatting section of the config schema: the built-in unified format's
// overrides, plus any number of named custom formats.
type Formatting struct {
	Unified UnifiedFormatting           `json:"unified,omitempty"`
	Custom  map[string]CustomFormatting `json:"custom,omitempty"`
}

// ConfigError reports a problem loading or parsing a config file: an unreadable path, malformed
// JSON5, an unknown field, or a schema constraint a plain decode can't express (e.g. a custom
// format's type). Callers that want to distinguish a bad config from a missing one can match it
// with errors.As.
type ConfigError struct {
	Path string // empty when the error isn't tied to a specific file, e.g. a schema violation
	Err  error
}

func (e *ConfigError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("config: %v", e.Err)
	}
	return fmt.Sprintf("config: %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Default is the configuration used when no config file is found.
var Default = Config{
	Format:          "unified",
	Color:           "auto",
	StripWhitespace: true,
}

// SearchPaths returns the configuration file locations to check, in priority order, following
// the usual XDG convention: $XDG_CONFIG_HOME/sitterdiff/config, then
// $HOME/.config/sitterdiff/config. It does not include the path from the DIFFSITTER_CONFIG
// environment variable, which [Load] checks ahead of these.
func SearchPaths() []string {
	var paths []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "sitterdiff", "config"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "sitterdiff", "config"))
	}
	return paths
}

// Load reads and parses the config file, checking the DIFFSITTER_CONFIG environment variable
// before falling back to [SearchPaths]. It returns [Default], with no error, if
// DIFFSITTER_CONFIG is unset and none of the search paths exist.
func Load() (Config, error) {
	if path := os.Getenv("DIFFSITTER_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, &ConfigError{Path: path, Err: err}
		}
		return Parse(data)
	}
	for _, path := range SearchPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return Config{}, &ConfigError{Path: path, Err: err}
		}
		return Parse(data)
	}
	return Default, nil
}

// Parse parses a JSON5-flavored config file: // and /* */ comments and trailing commas are
// allowed, unknown fields are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default
	clean := stripTrailingCommas(stripComments(data))
	dec := json.NewDecoder(bytes.NewReader(clean))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, &ConfigError{Err: err}
	}
	for name, cf := range cfg.Formatting.Custom {
		if cf.Type != "unified" {
			return Config{}, &ConfigError{Err: fmt.Errorf(`formatting.custom.%s: type must be "unified", got %q`, name, cf.Type)}
		}
	}
	return cfg, nil
}
