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

// Package grammar resolves a language name to a tree-sitter grammar handle.
//
// Grammars are an external collaborator: this package only defines the interface
// [sitterdiff.dev/sitterdiff] needs to obtain one (a [Handle]) and two providers that satisfy it,
// a [StaticProvider] backed by grammars linked into the binary at compile time, and a
// [DynamicProvider] that resolves grammars from shared objects at runtime. A real deployment is
// expected to wire in whatever combination of the two its build supports.
package grammar

import (
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
)

// Handle is an opaque reference to a loaded tree-sitter grammar.
type Handle struct {
	name string
	lang *sitter.Language
}

// Name returns the language name the handle was resolved for.
func (h Handle) Name() string { return h.name }

// Language returns the underlying tree-sitter language. It is nil for the zero Handle.
func (h Handle) Language() *sitter.Language { return h.lang }

// Provider resolves a language name to a grammar [Handle].
type Provider interface {
	Lookup(name string) (Handle, error)
}

// ErrNoSuchLanguage is returned by a [Provider] when it has no grammar for the requested
// language.
type ErrNoSuchLanguage struct {
	Name string
}

func (e *ErrNoSuchLanguage) Error() string {
	return fmt.Sprintf("grammar: no such language: %s", e.Name)
}

// Registry composes a static and a dynamic provider, looking up languages in the static
// provider first and falling back to the dynamic provider. This mirrors the precedence a
// statically-linked build would give a user-supplied grammar: compiled-in grammars win, dynamic
// resolution is the fallback for everything else.
type Registry struct {
	Static  Provider
	Dynamic Provider
}

// Lookup resolves name using the static provider, then the dynamic provider.
func (r Registry) Lookup(name string) (Handle, error) {
	if r.Static != nil {
		if h, err := r.Static.Lookup(name); err == nil {
			return h, nil
		}
	}
	if r.Dynamic != nil {
		return r.Dynamic.Lookup(name)
	}
	return Handle{}, &ErrNoSuchLanguage{Name: name}
}

// FileExtensions maps common file extensions to tree-sitter language names, following the same
// convention as the reference implementation this package's behavior is modeled on.
var FileExtensions = map[string]string{
	"go":    "go",
	"rs":    "rust",
	"py":    "python",
	"js":    "javascript",
	"jsx":   "javascript",
	"mjs":   "javascript",
	"ts":    "typescript",
	"tsx":   "tsx",
	"c":     "c",
	"h":     "c",
	"cc":    "cpp",
	"cpp":   "cpp",
	"hpp":   "cpp",
	"java":  "java",
	"json":  "json",
	"yaml":  "yaml",
	"yml":   "yaml",
	"toml":  "toml",
	"sh":    "bash",
	"bash":  "bash",
	"rb":    "ruby",
	"html":  "html",
	"css":   "css",
}
