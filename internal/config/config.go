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

// Package config provides shared configuration mechanisms for packages this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// sitterdiff.Option.
package config

// Mode describes the mode of the diff algorithm.
type Mode int

const (
	// Find a minimal diff irrespective of the cost. This is the default: token sequences are
	// small enough that the heuristics below rarely pay for themselves, and the minimality
	// invariant is easier to reason about without them.
	ModeMinimal Mode = iota

	// Limit the cost for large inputs with many differences by applying heuristics that reduce the
	// time complexity at the cost of non-minimal diffs.
	ModeDefault

	// Find a diff as fast as possible.
	ModeFast
)

// Config collects all configurable parameters for comparison functions in this module.
type Config struct {
	// Diff algorithm mode.
	Mode Mode

	// If set, the anchoring heuristic is always used in ModeDefault, regardless of input size. It
	// may only be combined with ModeDefault. This configuration is not exposed via an option API,
	// its main use is for testing.
	ForceAnchoringHeuristic bool
}

// Default is the default configuration.
var Default = Config{
	Mode:                    ModeMinimal,
	ForceAnchoringHeuristic: false,
}

// Flag describes a single config entry. This is used to detect if configurations are being set
// that are not allowed by the calling context.
type Flag int

const (
	Minimal Flag = 1 << iota
	Heuristic
	Fast
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	if cfg.Mode != ModeDefault && cfg.ForceAnchoringHeuristic {
		panic("ForceAnchoringHeuristic may only be set for ModeDefault")
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case Minimal:
		return "sitterdiff.Minimal"
	case Heuristic:
		return "sitterdiff.Heuristic"
	case Fast:
		return "sitterdiff.Fast"
	default:
		panic("never reached")
	}
}
