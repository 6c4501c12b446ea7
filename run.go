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
	"context"
	"fmt"
	"sync"

	"sitterdiff.dev/sitterdiff/astparse"
	"sitterdiff.dev/sitterdiff/grammar"
	"sitterdiff.dev/sitterdiff/hunks"
	"sitterdiff.dev/sitterdiff/leaves"
)

// Request describes a single file to be compared: its raw bytes and the language used to parse
// it.
type Request struct {
	Source   []byte
	Language string
}

// RunOptions configures [Run].
type RunOptions struct {
	Grammar grammar.Provider
	Leaves  leaves.Config
	Diff    []Option
}

// Run parses a and b with the grammars named in each [Request], extracts their leaf tokens,
// diffs them, and groups the result into displayable hunks. It is the glue between
// [sitterdiff.dev/sitterdiff/grammar], [sitterdiff.dev/sitterdiff/astparse],
// [sitterdiff.dev/sitterdiff/leaves], [Diff], and [sitterdiff.dev/sitterdiff/hunks] that a
// front end (a CLI, a git diff driver, ...) would otherwise have to reimplement.
func Run(ctx context.Context, a, b Request, opts RunOptions) ([]hunks.Hunk, error) {
	if opts.Grammar == nil {
		return nil, &InternalError{Msg: "RunOptions.Grammar must not be nil"}
	}

	// The two sides are independent: neither's parse/extract depends on the other's result, so
	// they run on their own goroutines and join before diffing.
	var (
		wg   sync.WaitGroup
		toks [2][]Token
		errs [2]error
		reqs = [2]Request{a, b}
	)
	wg.Add(2)
	for i := range reqs {
		go func(i int) {
			defer wg.Done()
			toks[i], errs[i] = parseAndExtract(ctx, reqs[i], opts)
		}(i)
	}
	wg.Wait()

	if errs[0] != nil {
		return nil, fmt.Errorf("sitterdiff: left side: %w", errs[0])
	}
	if errs[1] != nil {
		return nil, fmt.Errorf("sitterdiff: right side: %w", errs[1])
	}

	edits := Diff(toks[0], toks[1], opts.Diff...)
	return hunks.Assemble(edits), nil
}

func parseAndExtract(ctx context.Context, req Request, opts RunOptions) ([]Token, error) {
	h, err := opts.Grammar.Lookup(req.Language)
	if err != nil {
		return nil, err
	}
	tree, err := astparse.Parse(ctx, req.Source, h)
	if err != nil {
		return nil, err
	}
	return leaves.Extract(tree, opts.Leaves), nil
}
