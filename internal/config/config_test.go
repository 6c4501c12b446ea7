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

package config_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"sitterdiff.dev/sitterdiff/internal/config"
)

func opt(flag config.Flag, set func(*config.Config)) config.Option {
	return func(cfg *config.Config) config.Flag {
		set(cfg)
		return flag
	}
}

func TestFromOptions(t *testing.T) {
	tests := []struct {
		name string
		opts []config.Option
		want config.Config
	}{
		{
			name: "default",
			opts: nil,
			want: config.Default,
		},
		{
			name: "heuristic",
			opts: []config.Option{
				opt(config.Heuristic, func(c *config.Config) { c.Mode = config.ModeDefault }),
			},
			want: config.Config{Mode: config.ModeDefault},
		},
		{
			name: "fast",
			opts: []config.Option{
				opt(config.Fast, func(c *config.Config) { c.Mode = config.ModeFast }),
			},
			want: config.Config{Mode: config.ModeFast},
		},
		{
			name: "override",
			opts: []config.Option{
				opt(config.Heuristic, func(c *config.Config) { c.Mode = config.ModeDefault }),
				opt(config.Minimal, func(c *config.Config) { c.Mode = config.ModeMinimal }),
			},
			want: config.Config{Mode: config.ModeMinimal},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := config.FromOptions(tt.opts, config.Minimal|config.Heuristic|config.Fast)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FromOptions(...) result are different [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestFromOptionsPanicsOnDisallowed(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("FromOptions(...) did not panic")
		}
	}()
	config.FromOptions([]config.Option{
		opt(config.Fast, func(c *config.Config) { c.Mode = config.ModeFast }),
	}, config.Minimal)
}
