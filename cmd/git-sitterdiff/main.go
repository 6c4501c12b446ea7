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

// Command git-sitterdiff is a GIT_EXTERNAL_DIFF driver: configure git to run syntax-aware diffs
// for "git diff" by setting
//
//	GIT_EXTERNAL_DIFF=git-sitterdiff git diff
//
// Git invokes the driver once per changed file with seven positional arguments; see
// gitdiffinterface(7).
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"sitterdiff.dev/sitterdiff"
	"sitterdiff.dev/sitterdiff/config"
	"sitterdiff.dev/sitterdiff/grammar"
	"sitterdiff.dev/sitterdiff/leaves"
	"sitterdiff.dev/sitterdiff/render"
	"sitterdiff.dev/sitterdiff/render/color"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "git-sitterdiff: %v\n", err)
		os.Exit(1)
	}
}

// run implements the driver side of GIT_EXTERNAL_DIFF: path, old-file, old-hex, old-mode,
// new-file, new-hex, new-mode, and an optional trailing rename-score argument.
func run(args []string) error {
	if len(args) < 8 {
		return fmt.Errorf("expected at least 8 args, got %d: %v", len(args), args)
	}
	path, oldFile, _, _, newFile, _, _ := args[1], args[2], args[3], args[4], args[5], args[6], args[7]

	old, err := readOrEmpty(oldFile)
	if err != nil {
		return &sitterdiff.IoError{Path: oldFile, Err: err}
	}
	new, err := readOrEmpty(newFile)
	if err != nil {
		return &sitterdiff.IoError{Path: newFile, Err: err}
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	lang := languageFor(path, cfg)
	provider := grammar.Registry{Static: grammar.NewStaticProvider()}
	if len(cfg.DylibOverrides) > 0 {
		provider.Dynamic = grammar.NewDynamicProvider(cfg.DylibOverrides)
	}

	opts := sitterdiff.RunOptions{
		Grammar: provider,
		Leaves: leaves.Config{
			ExcludeKinds:    cfg.ExcludeKinds,
			IncludeKinds:    cfg.IncludeKinds,
			StripWhitespace: cfg.StripWhitespace,
			SplitGraphemes:  cfg.SplitGraphemes,
		},
	}
	hs, err := sitterdiff.Run(context.Background(),
		sitterdiff.Request{Source: old, Language: lang},
		sitterdiff.Request{Source: new, Language: lang},
		opts)
	if err != nil {
		var noSuchLang *grammar.ErrNoSuchLanguage
		if errors.As(err, &noSuchLang) && cfg.FallbackCmd != "" {
			return runFallback(cfg.FallbackCmd, oldFile, newFile)
		}
		return fmt.Errorf("diffing %s: %w", path, err)
	}

	fmt.Printf("diff --sitterdiff a/%s b/%s\n", path, path)
	fmt.Printf("--- a/%s\n", path)
	fmt.Printf("+++ b/%s\n", path)
	theme := render.ThemeFromFormatting(cfg.Formatting, resolveTheme(cfg))
	fmt.Print(render.Unified(hs, theme))
	return nil
}

// runFallback invokes cfg.FallbackCmd as "cmd OLD NEW" when no grammar matches, mirroring
// cmd/sitterdiff's fallback path so the git driver degrades the same way the standalone binary
// does.
func runFallback(cmd, oldFile, newFile string) error {
	parts := strings.Fields(cmd)
	if len(parts) == 0 {
		return fmt.Errorf("fallback-cmd is empty")
	}
	c := exec.Command(parts[0], append(parts[1:], oldFile, newFile)...)
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	return c.Run()
}

func readOrEmpty(path string) ([]byte, error) {
	if path == "/dev/null" {
		return nil, nil
	}
	return os.ReadFile(path)
}

// resolveTheme follows cfg.Color, falling back to terminal detection for "auto". Git normally
// pipes the driver's output through a pager, so stdout is rarely a terminal in practice; users
// who want color through a pager set "color" to "on" in the config file and use a pager that
// understands ANSI codes (e.g. "less -R").
func resolveTheme(cfg config.Config) color.Theme {
	switch cfg.Color {
	case "on", "always":
		return color.Default
	case "off", "never":
		return color.None
	default:
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return color.Default
		}
		return color.None
	}
}

func languageFor(path string, cfg config.Config) string {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if lang, ok := cfg.FileAssociations[ext]; ok {
		return lang
	}
	if lang, ok := grammar.FileExtensions[ext]; ok {
		return lang
	}
	return ext
}
