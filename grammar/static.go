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

package grammar

import (
	"slices"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/bash"
	"github.com/smacker/go-tree-sitter/c"
	"github.com/smacker/go-tree-sitter/cpp"
	"github.com/smacker/go-tree-sitter/css"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/java"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/python"
	"github.com/smacker/go-tree-sitter/ruby"
	"github.com/smacker/go-tree-sitter/rust"
	"github.com/smacker/go-tree-sitter/toml"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
	"github.com/smacker/go-tree-sitter/yaml"
)

// StaticProvider resolves languages that were linked into the binary at compile time. Unlike
// [DynamicProvider], lookups never touch the filesystem and can never fail with an I/O error.
type StaticProvider struct {
	languages map[string]*sitter.Language
}

// NewStaticProvider returns a StaticProvider supporting the languages this module was built
// with, which is every grammar the github.com/smacker/go-tree-sitter module vendors bindings
// for.
func NewStaticProvider() *StaticProvider {
	return &StaticProvider{languages: map[string]*sitter.Language{
		"go":         golang.GetLanguage(),
		"rust":       rust.GetLanguage(),
		"python":     python.GetLanguage(),
		"javascript": javascript.GetLanguage(),
		"typescript": typescript.GetLanguage(),
		"tsx":        tsx.GetLanguage(),
		"yaml":       yaml.GetLanguage(),
		"toml":       toml.GetLanguage(),
		"bash":       bash.GetLanguage(),
		"c":          c.GetLanguage(),
		"cpp":        cpp.GetLanguage(),
		"java":       java.GetLanguage(),
		"ruby":       ruby.GetLanguage(),
		"css":        css.GetLanguage(),
	}}
}

// Languages returns the sorted list of languages this provider supports.
func (p *StaticProvider) Languages() []string {
	names := make([]string, 0, len(p.languages))
	for name := range p.languages {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Lookup implements [Provider].
func (p *StaticProvider) Lookup(name string) (Handle, error) {
	lang, ok := p.languages[name]
	if !ok {
		return Handle{}, &ErrNoSuchLanguage{Name: name}
	}
	return Handle{name: name, lang: lang}, nil
}
