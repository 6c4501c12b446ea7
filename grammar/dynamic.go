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

//go:build unix

package grammar

import (
	"fmt"
	"plugin"
	"sync"
	"unsafe"

	sitter "github.com/smacker/go-tree-sitter"
)

// DynamicProvider resolves languages from an explicit language-name-to-shared-object-path
// mapping, analogous to the reference implementation's dlopen-based grammar loading.
//
// Go's plugin package, unlike dlopen, requires the shared object to have been built by the Go
// toolchain as a Go plugin exporting a symbol of a known name; it cannot load an arbitrary
// tree-sitter grammar .so produced by a C/Rust toolchain. DynamicProvider is therefore only
// useful for grammars packaged as Go plugins that export a `TreeSitterLanguage() unsafe.Pointer`
// function returning a `*tree_sitter_language` C struct pointer, and is documented as such; for
// a real diffsitter-style deployment, StaticProvider covers the common case.
type DynamicProvider struct {
	overrides map[string]string

	mu     sync.Mutex
	cached map[string]Handle
}

// NewDynamicProvider returns a DynamicProvider that resolves each language in overrides to the
// shared object path it maps to.
func NewDynamicProvider(overrides map[string]string) *DynamicProvider {
	return &DynamicProvider{overrides: overrides}
}

// DynamicLoadFailed wraps an error encountered while resolving or opening a grammar plugin.
type DynamicLoadFailed struct {
	Name string
	Err  error
}

func (e *DynamicLoadFailed) Error() string {
	return fmt.Sprintf("grammar: failed to dynamically load %q: %v", e.Name, e.Err)
}

func (e *DynamicLoadFailed) Unwrap() error { return e.Err }

// Lookup implements [Provider].
func (p *DynamicProvider) Lookup(name string) (Handle, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if h, ok := p.cached[name]; ok {
		return h, nil
	}

	path, ok := p.overrides[name]
	if !ok {
		return Handle{}, &ErrNoSuchLanguage{Name: name}
	}
	h, err := p.open(name, path)
	if err != nil {
		return Handle{}, &DynamicLoadFailed{Name: name, Err: err}
	}
	if p.cached == nil {
		p.cached = make(map[string]Handle)
	}
	p.cached[name] = h
	return h, nil
}

func (p *DynamicProvider) open(name, path string) (Handle, error) {
	plug, err := plugin.Open(path)
	if err != nil {
		return Handle{}, err
	}
	sym, err := plug.Lookup("TreeSitterLanguage")
	if err != nil {
		return Handle{}, err
	}
	fn, ok := sym.(func() unsafe.Pointer)
	if !ok {
		return Handle{}, fmt.Errorf("%s: TreeSitterLanguage has unexpected signature", path)
	}
	lang := sitter.NewLanguage(fn())
	return Handle{name: name, lang: lang}, nil
}
