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

// Command sitterdiff prints a syntax-aware diff of two files.
//
// Usage:
//
//	sitterdiff [options] <OLD> <NEW>
//	sitterdiff --cmd dump_default_config
//	sitterdiff gen-completion <bash|zsh|fish>
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	flag "github.com/spf13/pflag"
	"golang.org/x/term"

	"sitterdiff.dev/sitterdiff"
	"sitterdiff.dev/sitterdiff/config"
	"sitterdiff.dev/sitterdiff/grammar"
	"sitterdiff.dev/sitterdiff/hunks"
	"sitterdiff.dev/sitterdiff/leaves"
	"sitterdiff.dev/sitterdiff/render"
	"sitterdiff.dev/sitterdiff/render/color"
)

const (
	exitOK    = 0
	exitError = 1
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) > 0 && args[0] == "gen-completion" {
		return genCompletion(args[1:])
	}

	fs := flag.NewFlagSet("sitterdiff", flag.ContinueOnError)
	fileType := fs.StringP("file-type", "t", "", "force the grammar used for both files")
	configPath := fs.StringP("config", "c", "", "path to a config file")
	colorMode := fs.String("color", "auto", `colorize output: "auto", "on", or "off"`)
	noConfig := fs.BoolP("no-config", "n", false, "don't read a config file")
	debug := fs.BoolP("debug", "d", false, "enable debug logging")
	cmd := fs.String("cmd", "", `run a subcommand instead of diffing: "dump_default_config"`)
	split := fs.Bool("split", false, "render a side-by-side diff instead of unified")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <OLD> <NEW>\n", fs.Name())
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return exitOK
		}
		return exitError
	}

	logLevel := slog.LevelWarn
	if *debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))

	if *cmd == "dump_default_config" {
		return dumpDefaultConfig()
	}
	if *cmd != "" {
		fmt.Fprintf(os.Stderr, "sitterdiff: unknown --cmd %q\n", *cmd)
		return exitError
	}

	if fs.NArg() != 2 {
		fs.Usage()
		return exitError
	}
	oldPath, newPath := fs.Arg(0), fs.Arg(1)

	cfg, err := resolveConfig(*configPath, *noConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sitterdiff: %v\n", err)
		return exitError
	}

	theme := resolveTheme(cfg, *colorMode)

	lang := *fileType
	if lang == "" {
		lang = languageFor(oldPath, cfg)
	}

	oldSrc, err := os.ReadFile(oldPath)
	if err != nil {
		ioErr := &sitterdiff.IoError{Path: oldPath, Err: err}
		fmt.Fprintf(os.Stderr, "%v\n", ioErr)
		return exitError
	}
	newSrc, err := os.ReadFile(newPath)
	if err != nil {
		ioErr := &sitterdiff.IoError{Path: newPath, Err: err}
		fmt.Fprintf(os.Stderr, "%v\n", ioErr)
		return exitError
	}

	slog.Debug("resolved language", "language", lang, "old", oldPath, "new", newPath)

	provider := buildProvider(cfg)
	opts := sitterdiff.RunOptions{
		Grammar: provider,
		Leaves: leaves.Config{
			ExcludeKinds:    cfg.ExcludeKinds,
			IncludeKinds:    cfg.IncludeKinds,
			StripWhitespace: cfg.StripWhitespace,
			SplitGraphemes:  cfg.SplitGraphemes,
		},
	}

	hs, err := sitterdiff.Run(context.Background(), sitterdiff.Request{Source: oldSrc, Language: lang}, sitterdiff.Request{Source: newSrc, Language: lang}, opts)
	if err != nil {
		var noSuchLang *grammar.ErrNoSuchLanguage
		if errors.As(err, &noSuchLang) && cfg.FallbackCmd != "" {
			slog.Debug("no grammar for language, invoking fallback", "language", lang, "fallback-cmd", cfg.FallbackCmd)
			return runFallback(cfg.FallbackCmd, oldPath, newPath)
		}
		fmt.Fprintf(os.Stderr, "sitterdiff: %v\n", err)
		return exitError
	}

	out, err := renderHunks(hs, cfg, theme, *split)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sitterdiff: %v\n", err)
		return exitError
	}
	fmt.Print(out)
	return exitOK
}

// renderHunks dispatches to the configured renderer: --split forces the side-by-side layout
// regardless of config, otherwise cfg.Format selects "unified" (the default), "split", or the
// name of a formatting.custom.<name> entry.
func renderHunks(hs []hunks.Hunk, cfg config.Config, theme color.Theme, split bool) (string, error) {
	if split {
		return render.Split(hs, render.SplitWidth, theme), nil
	}
	switch cfg.Format {
	case "", "unified":
		return render.Unified(hs, render.ThemeFromFormatting(cfg.Formatting, theme)), nil
	case "split":
		return render.Split(hs, render.SplitWidth, theme), nil
	default:
		format, err := render.CustomFormatFromConfig(cfg.Formatting, cfg.Format, theme)
		if err != nil {
			return "", fmt.Errorf("format %q: %w", cfg.Format, err)
		}
		return render.Custom(hs, format), nil
	}
}

// runFallback invokes the user's configured fallback-cmd as "cmd OLD NEW" when no grammar can
// parse either file, per the [sitterdiff.dev/sitterdiff/config.Config.FallbackCmd] contract.
func runFallback(cmd, oldPath, newPath string) int {
	parts := strings.Fields(cmd)
	if len(parts) == 0 {
		fmt.Fprintln(os.Stderr, "sitterdiff: fallback-cmd is empty")
		return exitError
	}
	c := exec.Command(parts[0], append(parts[1:], oldPath, newPath)...)
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	if err := c.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "sitterdiff: fallback-cmd: %v\n", err)
		return exitError
	}
	return exitOK
}

func resolveConfig(path string, skip bool) (config.Config, error) {
	if skip {
		return config.Default, nil
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return config.Config{}, &config.ConfigError{Path: path, Err: err}
		}
		return config.Parse(data)
	}
	return config.Load()
}

func resolveTheme(cfg config.Config, flagValue string) color.Theme {
	mode := cfg.Color
	if flagValue != "" && flagValue != "auto" {
		mode = flagValue
	}
	switch mode {
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

func buildProvider(cfg config.Config) grammar.Provider {
	reg := grammar.Registry{Static: grammar.NewStaticProvider()}
	if len(cfg.DylibOverrides) > 0 {
		reg.Dynamic = grammar.NewDynamicProvider(cfg.DylibOverrides)
	}
	return reg
}

func dumpDefaultConfig() int {
	data, err := json.MarshalIndent(config.Default, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "sitterdiff: %v\n", err)
		return exitError
	}
	fmt.Println(string(data))
	return exitOK
}

func genCompletion(args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Usage: sitterdiff gen-completion <bash|zsh|fish>")
		return exitError
	}
	tmpl, ok := completionTemplates[args[0]]
	if !ok {
		fmt.Fprintf(os.Stderr, "sitterdiff: unknown shell %q\n", args[0])
		return exitError
	}
	fmt.Print(tmpl)
	return exitOK
}

var completionTemplates = map[string]string{
	"bash": `_sitterdiff() {
    local cur prev
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    COMPREPLY=( $(compgen -W "--file-type --config --color --no-config --debug --cmd --split" -- "$cur") )
}
complete -F _sitterdiff -o default sitterdiff
`,
	"zsh": `#compdef sitterdiff
_arguments \
  '(-t --file-type)'{-t,--file-type}'[force grammar]:language:' \
  '(-c --config)'{-c,--config}'[config file]:path:_files' \
  '--color[colorize output]:mode:(auto on off)' \
  '(-n --no-config)'{-n,--no-config}'[skip config file]' \
  '(-d --debug)'{-d,--debug}'[enable debug logging]' \
  '--cmd[run a subcommand]:cmd:(dump_default_config)' \
  '--split[side-by-side output]' \
  '*:file:_files'
`,
	"fish": `complete -c sitterdiff -l file-type -s t -d 'force grammar'
complete -c sitterdiff -l config -s c -d 'config file' -r
complete -c sitterdiff -l color -d 'colorize output' -xa 'auto on off'
complete -c sitterdiff -l no-config -s n -d 'skip config file'
complete -c sitterdiff -l debug -s d -d 'enable debug logging'
complete -c sitterdiff -l cmd -d 'run a subcommand' -xa 'dump_default_config'
complete -c sitterdiff -l split -d 'side-by-side output'
`,
}
